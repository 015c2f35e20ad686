package cmd

import (
	"strings"

	"github.com/pixperk/sheetsql/internal/config"
	"github.com/pixperk/sheetsql/internal/logx"
	"github.com/pixperk/sheetsql/internal/sqlgen"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runFlags are the generation flags shared by generate and watch.
type runFlags struct {
	configPath       string
	file             string
	sheet            string
	columns          []string
	startRow         int
	template         string
	rowsPerStatement int
	output           string
	outputBatchSize  int
	skipEmpty        bool
}

func (f *runFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.configPath, "config", "", "Path to YAML config file (default: "+config.DefaultPath+")")
	flags.StringVarP(&f.file, "file", "f", "", "Excel (.xlsx) or CSV file to read")
	flags.StringVarP(&f.sheet, "sheet", "s", "", "Sheet name (default: first sheet)")
	flags.StringSliceVarP(&f.columns, "column", "c", nil, "Column labels to read, e.g. A or A,B,C (order sets {1}, {2}, ...)")
	flags.IntVarP(&f.startRow, "start-row", "r", config.DefaultStartRow, "First row to read (1-based)")
	flags.StringVarP(&f.template, "template", "t", "", "SQL template, e.g. \"INSERT INTO t (name) VALUES ('{value}');\"")
	flags.IntVar(&f.rowsPerStatement, "rows-per-statement", 0, "Rows folded into each statement (enables {values}, {@row}, {#N} markers)")
	flags.StringVarP(&f.output, "output", "o", "", "Output file (default: print to console)")
	flags.IntVar(&f.outputBatchSize, "output-batch-size", 0, "Statements per output file; splits output into name_1.sql, name_2.sql, ...")
	flags.BoolVar(&f.skipEmpty, "skip-empty", true, "Skip rows whose selected cells are all blank")
}

// resolve loads the config file, if any, and lets explicitly set flags
// override it.
func (f *runFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	cfg, err := config.Load(f.configPath)
	if err != nil {
		if flags.Changed("config") {
			return nil, err
		}
		logx.StyledLog.Debug("No config file loaded, using flags", zap.Error(err))
		cfg = &config.Config{}
	}

	if flags.Changed("file") {
		cfg.File = f.file
	}
	if flags.Changed("sheet") {
		cfg.Sheet = f.sheet
	}
	if flags.Changed("column") {
		cfg.Columns = sqlgen.ParseColumnList(strings.Join(f.columns, ","))
	}
	if flags.Changed("start-row") {
		n := f.startRow
		cfg.StartRow = &n
	}
	if flags.Changed("template") {
		cfg.Template = f.template
	}
	if flags.Changed("rows-per-statement") {
		n := f.rowsPerStatement
		cfg.RowsPerStatement = &n
	}
	if flags.Changed("output") {
		cfg.Output = f.output
	}
	if flags.Changed("output-batch-size") {
		n := f.outputBatchSize
		cfg.OutputBatchSize = &n
	}
	if flags.Changed("skip-empty") || cfg.SkipEmpty == nil {
		skip := f.skipEmpty
		cfg.SkipEmpty = &skip
	}

	return cfg, nil
}
