package cmd

import (
	"fmt"
	"os"

	"github.com/pixperk/sheetsql/internal/config"
	"github.com/pixperk/sheetsql/internal/logx"
	"github.com/pixperk/sheetsql/internal/ui"
	"github.com/spf13/cobra"
)

var sampleConfigForce bool

var sampleConfigCmd = &cobra.Command{
	Use:   "sample-config",
	Short: "Generate a sample config file (" + config.DefaultPath + ")",
	RunE: func(cmd *cobra.Command, args []string) error {
		ui.PrintTitle("Configuration Generator")
		ui.PrintSubtitle("Creating a sample configuration file")

		log := logx.StyledLog

		if _, err := os.Stat(config.DefaultPath); err == nil && !sampleConfigForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", config.DefaultPath)
		}

		if err := os.WriteFile(config.DefaultPath, []byte(config.Sample), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", config.DefaultPath, err)
		}

		log.Success("Sample config written to " + config.DefaultPath)

		ui.PrintBox("Next Steps",
			"1. Point 'file' at your spreadsheet and pick 'columns'\n"+
				"2. Write a 'template' using {value}, {1} or {A} placeholders\n"+
				"3. Run 'sheetsql generate' to render the SQL")
		return nil
	},
}

func init() {
	sampleConfigCmd.Flags().BoolVar(&sampleConfigForce, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(sampleConfigCmd)
}
