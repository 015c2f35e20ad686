package cmd

import (
	"os"

	"github.com/pixperk/sheetsql/api"
	"github.com/pixperk/sheetsql/internal/config"
	"github.com/pixperk/sheetsql/internal/logx"
	"github.com/pixperk/sheetsql/internal/ui"
	"github.com/spf13/cobra"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server for HTTP-based generation",
	Long:  `Starts a REST API that renders SQL from JSON rows or uploaded spreadsheets`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ui.PrintTitle("sheetsql API Server")
		ui.PrintSubtitle("REST API for spreadsheet to SQL generation")

		if port := os.Getenv(config.EnvPort); port != "" && !cmd.Flags().Changed("port") {
			servePort = port
		}

		log := logx.StyledLog
		server := api.NewServer(log.GetZapLogger())

		ui.PrintBox("Configuration",
			"Server Port: "+servePort+"\n"+
				"Version:     "+api.Version)

		log.Highlight("Starting API server on http://localhost:" + servePort)
		log.Info("Endpoints available:")
		log.Info("  GET  /health                - Health check")
		log.Info("  POST /api/v1/generate       - Generate from JSON rows")
		log.Info("  POST /api/v1/upload         - Generate from an uploaded .xlsx/.csv")
		log.Highlight("Press Ctrl+C to stop")

		if err := server.Start(cmd.Context(), ":"+servePort); err != nil {
			return err
		}
		log.Success("API server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to run the API server on (env "+config.EnvPort+")")
	rootCmd.AddCommand(serveCmd)
}
