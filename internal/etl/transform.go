package etl

import (
	"slices"

	"github.com/pixperk/sheetsql/internal/sqlgen"
)

// ModeSingleRow names the one-statement-per-row mode in results and logs.
const ModeSingleRow = "single-row"

// GenerateStatements renders rows with template. rowsPerStatement of 0 gives
// one statement per row; anything else batches rows through the generator.
func GenerateStatements(rows []sqlgen.Row, template string, labels []string, rowsPerStatement int) ([]string, string, error) {
	if rowsPerStatement == 0 {
		return slices.Collect(sqlgen.SingleRow(template, rows, labels)), ModeSingleRow, nil
	}

	g, err := sqlgen.NewGenerator(template, labels, rowsPerStatement)
	if err != nil {
		return nil, "", err
	}
	return g.Generate(rows), g.Mode().String(), nil
}
