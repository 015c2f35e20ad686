package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Out receives all status output. It defaults to stderr so generated SQL
// on stdout can be piped.
var Out io.Writer = os.Stderr

// PrintLogo prints the sheetsql logo
func PrintLogo() {
	fmt.Fprintln(Out, LogoStyle.Render(Logo))
}

// PrintTitle prints a styled title
func PrintTitle(title string) {
	fmt.Fprintln(Out, TitleStyle.Render(title))
}

// PrintSubtitle prints a styled subtitle
func PrintSubtitle(subtitle string) {
	fmt.Fprintln(Out, SubtitleStyle.Render(subtitle))
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Fprintln(Out, SuccessStyle.Render("✓ "+message))
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintln(Out, ErrorStyle.Render("✗ "+message))
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Fprintln(Out, WarningStyle.Render("! "+message))
}

// PrintInfo prints an info message
func PrintInfo(message string) {
	fmt.Fprintln(Out, InfoStyle.Render(message))
}

// PrintHighlight prints a highlighted message
func PrintHighlight(message string) {
	fmt.Fprintln(Out, HighlightStyle.Render(message))
}

// PrintBox prints content in a styled box
func PrintBox(title string, content string) {
	titleText := HighlightStyle.Render(title)
	contentText := InfoStyle.Render(content)
	boxContent := lipgloss.JoinVertical(lipgloss.Left, titleText, contentText)
	fmt.Fprintln(Out, BoxStyle.Render(boxContent))
}

// RenderTable renders headers and rows as an aligned table. Rows shorter
// than the header are padded with empty cells.
func RenderTable(headers []string, rows [][]string) string {
	colWidths := make([]int, len(headers))
	for i, header := range headers {
		colWidths[i] = lipgloss.Width(header)
	}

	for _, row := range rows {
		for i, cell := range row {
			if i < len(colWidths) && lipgloss.Width(cell) > colWidths[i] {
				colWidths[i] = lipgloss.Width(cell)
			}
		}
	}

	var lines []string

	headerCells := make([]string, len(headers))
	for i, header := range headers {
		headerCells[i] = TableHeaderStyle.Render(
			lipgloss.PlaceHorizontal(colWidths[i]+2, lipgloss.Left, header),
		)
	}
	lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, headerCells...))

	separator := make([]string, len(headers))
	for i, width := range colWidths {
		separator[i] = strings.Repeat("─", width+2)
	}
	lines = append(lines, HighlightStyle.Render(strings.Join(separator, "")))

	for _, row := range rows {
		rowCells := make([]string, len(headers))
		for i := range headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			rowCells[i] = TableCellStyle.Render(
				lipgloss.PlaceHorizontal(colWidths[i]+2, lipgloss.Left, cell),
			)
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, rowCells...))
	}

	return strings.Join(lines, "\n")
}

// DisplayTable prints a styled table with headers and rows
func DisplayTable(headers []string, rows [][]string) {
	fmt.Fprintln(Out, RenderTable(headers, rows))
}
