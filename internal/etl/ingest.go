package etl

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pixperk/sheetsql/internal/config"
	"github.com/pixperk/sheetsql/internal/logx"
	"github.com/pixperk/sheetsql/internal/sheet"
	"go.uber.org/zap"
)

// Result summarises one run.
type Result struct {
	File           string
	Sheet          string
	RowCount       int
	StatementCount int
	Mode           string
	Files          []string
	Duration       time.Duration
}

// RunOptions contains optional callbacks for progress reporting.
type RunOptions struct {
	OnLoaded    func(sheet string, gridRows int)
	OnExtracted func(rowCount int)
	OnGenerated func(statementCount int, mode string)
	OnWritten   func(files []string)
}

// Run loads the spreadsheet, extracts rows, renders statements and writes
// them to the configured output. Console output goes to console.
func Run(ctx context.Context, cfg *config.Config, console io.Writer, opts *RunOptions) (*Result, error) {
	if opts == nil {
		opts = &RunOptions{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	startTime := time.Now()
	result := &Result{File: cfg.File}

	grid, err := sheet.Open(cfg.File, cfg.Sheet)
	if err != nil {
		return nil, err
	}
	result.Sheet = grid.Sheet
	logx.Logger.Info("Loaded sheet",
		zap.String("file", cfg.File),
		zap.String("sheet", grid.Sheet),
		zap.Int("grid_rows", len(grid.Rows)),
	)
	if opts.OnLoaded != nil {
		opts.OnLoaded(grid.Sheet, len(grid.Rows))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := ExtractRows(grid, cfg.Columns, cfg.EffectiveStartRow(), cfg.EffectiveSkipEmpty())
	if err != nil {
		return nil, err
	}
	result.RowCount = len(rows)
	logx.Logger.Info("Extracted rows",
		zap.Strings("columns", cfg.Columns),
		zap.Int("start_row", cfg.EffectiveStartRow()),
		zap.Int("rows", len(rows)),
	)
	if opts.OnExtracted != nil {
		opts.OnExtracted(len(rows))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	statements, mode, err := GenerateStatements(rows, cfg.Template, cfg.Columns, cfg.BatchRows())
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}
	result.StatementCount = len(statements)
	result.Mode = mode
	if opts.OnGenerated != nil {
		opts.OnGenerated(len(statements), mode)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := WriteStatements(statements, cfg.Output, cfg.ShardSize(), console)
	if err != nil {
		return nil, err
	}
	result.Files = files
	if opts.OnWritten != nil {
		opts.OnWritten(files)
	}

	result.Duration = time.Since(startTime)
	return result, nil
}
