package sqlgen

import "strings"

// Row holds one value per requested column, in request order.
type Row []string

func (r Row) isBlank() bool {
	for _, v := range r {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// ExtractRows collects the requested columns from every grid row at or after
// startRow (1-based). Cells past the end of a short row read as "". With
// skipEmpty, rows whose values are all blank are dropped.
func ExtractRows(grid [][]string, startRow int, cols []int, skipEmpty bool) ([]Row, error) {
	start := max(startRow-1, 0)

	var rows []Row
	for i := start; i < len(grid); i++ {
		cells := grid[i]
		row := make(Row, len(cols))
		for j, col := range cols {
			if col >= 0 && col < len(cells) {
				row[j] = cells[col]
			}
		}

		if skipEmpty && row.isBlank() {
			continue
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrNoDataFound
	}
	return rows, nil
}

// Column returns the i-th value of every row.
func Column(rows []Row, i int) []string {
	values := make([]string, len(rows))
	for r, row := range rows {
		if i < len(row) {
			values[r] = row[i]
		}
	}
	return values
}
