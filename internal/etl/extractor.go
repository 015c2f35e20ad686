package etl

import (
	"fmt"

	"github.com/pixperk/sheetsql/internal/sheet"
	"github.com/pixperk/sheetsql/internal/sqlgen"
)

// ExtractRows pulls the labelled columns out of grid, starting at the
// 1-based startRow.
func ExtractRows(grid *sheet.Grid, labels []string, startRow int, skipEmpty bool) ([]sqlgen.Row, error) {
	cols, err := sqlgen.ResolveColumns(labels)
	if err != nil {
		return nil, err
	}

	rows, err := sqlgen.ExtractRows(grid.Rows, startRow, cols, skipEmpty)
	if err != nil {
		return nil, fmt.Errorf("sheet %q, columns %v: %w", grid.Sheet, labels, err)
	}
	return rows, nil
}
