package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pixperk/sheetsql/internal/etl"
	"github.com/pixperk/sheetsql/internal/logx"
	"github.com/pixperk/sheetsql/internal/poller"
	"github.com/pixperk/sheetsql/internal/sheet"
	"github.com/pixperk/sheetsql/internal/sqlgen"
	"github.com/pixperk/sheetsql/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	watchFlags    runFlags
	watchInterval time.Duration
)

// watchRetry rereads a file that was caught mid-save. Bad labels, batch
// sizes and sheet names will not fix themselves.
var watchRetry = func() etl.RetryConfig {
	cfg := etl.DefaultRetryConfig
	cfg.Retryable = func(err error) bool {
		return !errors.Is(err, context.Canceled) &&
			!errors.Is(err, sqlgen.ErrInvalidColumnLabel) &&
			!errors.Is(err, sqlgen.ErrInvalidBatchSize) &&
			!errors.Is(err, sheet.ErrSheetNotFound)
	}
	return cfg
}()

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate SQL whenever the spreadsheet changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logx.StyledLog

		cfg, err := watchFlags.resolve(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		interval := watchInterval
		if !cmd.Flags().Changed("interval") && cfg.Watch.Interval > 0 {
			interval = time.Duration(cfg.Watch.Interval) * time.Second
		}

		ui.PrintBox("Watching",
			"File: "+cfg.File+"\n"+
				"Interval: "+interval.String()+"\n"+
				"Press Ctrl+C to stop")

		p := poller.NewPoller(poller.PollConfig{
			Path:     cfg.File,
			Interval: interval,
			OnChange: func(modTime time.Time) error {
				log.Highlight(fmt.Sprintf("Change detected at %s, regenerating", modTime.Format(time.TimeOnly)))
				var result *etl.Result
				err := etl.Retry(cmd.Context(), watchRetry, func() error {
					var err error
					result, err = runGeneration(cmd, cfg)
					return err
				})
				if err != nil {
					log.Error("Generation failed: "+err.Error(), zap.Error(err))
					return err
				}
				printResult(result)
				return nil
			},
		})

		err = p.Start(cmd.Context())
		if errors.Is(err, context.Canceled) {
			log.Info("Stopped watching")
			return nil
		}
		return err
	},
}

func init() {
	watchFlags.register(watchCmd)
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 2*time.Second, "How often to check the file for changes")
	rootCmd.AddCommand(watchCmd)
}
