package cmd

import (
	"fmt"
	"strings"

	"github.com/pixperk/sheetsql/internal/config"
	"github.com/pixperk/sheetsql/internal/etl"
	"github.com/pixperk/sheetsql/internal/logx"
	"github.com/pixperk/sheetsql/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var generateFlags runFlags

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate SQL statements from spreadsheet rows",
	Example: `  sheetsql generate -f users.xlsx -c A -t "INSERT INTO users (name) VALUES ('{value}');"
  sheetsql generate -f users.xlsx -c A,B -t "INSERT INTO users (name, age) VALUES ('{1}', {2});" -o users.sql
  sheetsql generate -f users.xlsx -c A --rows-per-statement 500 -t "DELETE FROM users WHERE id IN ({values});"
  sheetsql generate -f users.xlsx -c A,B --rows-per-statement 1000 -t "INSERT INTO users (id, name) VALUES {@row};" -o out/users.sql --output-batch-size 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := generateFlags.resolve(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		ui.PrintTitle("Generating SQL")
		result, err := runGeneration(cmd, cfg)
		if err != nil {
			return err
		}

		printResult(result)
		return nil
	},
}

func runGeneration(cmd *cobra.Command, cfg *config.Config) (*etl.Result, error) {
	log := logx.StyledLog

	return etl.Run(cmd.Context(), cfg, cmd.OutOrStdout(), &etl.RunOptions{
		OnExtracted: func(rowCount int) {
			log.Info(fmt.Sprintf("Read %d rows from the spreadsheet", rowCount),
				zap.String("file", cfg.File),
				zap.Int("rows", rowCount),
			)
		},
		OnGenerated: func(statementCount int, mode string) {
			log.Debug("Rendered statements",
				zap.Int("statements", statementCount),
				zap.String("mode", mode),
			)
		},
		OnWritten: func(files []string) {
			for _, f := range files {
				log.Success("SQL written to " + f)
			}
		},
	})
}

func printResult(result *etl.Result) {
	output := "console"
	if len(result.Files) > 0 {
		output = strings.Join(result.Files, "\n        ")
	}

	logx.StyledLog.Success(fmt.Sprintf("Generated %d SQL statements", result.StatementCount),
		zap.Int("statements", result.StatementCount),
		zap.Duration("duration", result.Duration),
	)
	ui.PrintBox("Summary", fmt.Sprintf(
		"File:   %s\nSheet:  %s\nRows:   %d\nMode:   %s\nSQL:    %d\nOutput: %s",
		result.File, result.Sheet, result.RowCount, result.Mode, result.StatementCount, output,
	))
}

func init() {
	generateFlags.register(generateCmd)
	rootCmd.AddCommand(generateCmd)
}
