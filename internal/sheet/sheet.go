// Package sheet loads spreadsheet files into row-major string grids.
package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var ErrSheetNotFound = errors.New("sheet not found")

// Grid is one sheet's cells, row-major. Rows may have different lengths;
// trailing empty cells are not materialised.
type Grid struct {
	Sheet string
	Rows  [][]string
}

// Cell returns the trimmed value at (row, col), or "" when out of range.
func (g *Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g.Rows) || col < 0 || col >= len(g.Rows[row]) {
		return ""
	}
	return g.Rows[row][col]
}

// Width is the length of the longest row.
func (g *Grid) Width() int {
	width := 0
	for _, r := range g.Rows {
		width = max(width, len(r))
	}
	return width
}

func isCSV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".csv")
}

// csvSheetName is the single sheet name a CSV file exposes.
func csvSheetName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Open reads one sheet of an .xlsx workbook or a .csv file. An empty sheet
// name selects the first sheet.
func Open(path, sheet string) (*Grid, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	if isCSV(path) {
		return openCSV(path, sheet)
	}
	return openWorkbook(path, sheet)
}

// Sheets lists the sheet names in file order.
func Sheets(path string) ([]string, error) {
	if isCSV(path) {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		return []string{csvSheetName(path)}, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

func openWorkbook(path, sheet string) (*Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	name, err := pickSheet(f.GetSheetList(), sheet)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
	}

	return &Grid{Sheet: name, Rows: trimCells(rows)}, nil
}

func openCSV(path, sheet string) (*Grid, error) {
	name, err := pickSheet([]string{csvSheetName(path)}, sheet)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	return &Grid{Sheet: name, Rows: trimCells(rows)}, nil
}

func pickSheet(names []string, want string) (string, error) {
	if len(names) == 0 {
		return "", fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
	}
	if want == "" {
		return names[0], nil
	}
	for _, n := range names {
		if n == want {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %q (available: %s)", ErrSheetNotFound, want, strings.Join(names, ", "))
}

func trimCells(rows [][]string) [][]string {
	for _, row := range rows {
		for j, cell := range row {
			row[j] = strings.TrimSpace(cell)
		}
	}
	return rows
}
