package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pixperk/sheetsql/internal/config"
	"github.com/pixperk/sheetsql/internal/logx"
	"github.com/pixperk/sheetsql/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	useInteractive bool
	verboseLogging bool
)

var rootCmd = &cobra.Command{
	Use:   "sheetsql",
	Short: "sheetsql turns spreadsheet rows into SQL statements",
	Long: `sheetsql reads columns from an Excel or CSV file and renders
them through a SQL template, one statement per row or batched
into IN lists and multi-row VALUES inserts.
It never connects to a database; it only writes text.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logx.InitLoggerWithLevel(verboseLogging)
		if err := config.LoadDotEnv(""); err != nil {
			logx.StyledLog.Warn("Ignoring .env file", zap.Error(err))
		}

		if useInteractive && cmd.Name() == "sheetsql" {
			showInteractiveUI(cmd.Root())
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		showLogo()
		cmd.Help()
	},
}

func showLogo() {
	ui.PrintLogo()
	ui.PrintTitle("sheetsql: spreadsheet rows to SQL")
	ui.PrintSubtitle("Templates in, statements out")
	fmt.Fprintln(ui.Out)
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	logx.Sync()
	if err != nil {
		logx.StyledLog.Error(err.Error(), zap.Error(err))
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&useInteractive, "interactive", "i", false, "Show the interactive overview screen")
	rootCmd.PersistentFlags().BoolVarP(&verboseLogging, "verbose", "v", false, "Enable verbose logging (shows all operations)")
}

func commandSummaries(root *cobra.Command) []ui.Command {
	var commands []ui.Command
	for _, c := range root.Commands() {
		if c.Hidden || c.Name() == "help" || c.Name() == "completion" {
			continue
		}
		commands = append(commands, ui.Command{Name: c.Name(), Summary: c.Short})
	}
	return commands
}

func showInteractiveUI(root *cobra.Command) {
	p := tea.NewProgram(ui.NewAppModel(commandSummaries(root)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logx.StyledLog.Error("Error running interactive UI", zap.Error(err))
		os.Exit(1)
	}
	os.Exit(0)
}
