package ui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Out
	Out = &buf
	t.Cleanup(func() { Out = prev })
	return &buf
}

func TestPrintHelpersWriteToOut(t *testing.T) {
	buf := captureOut(t)

	PrintSuccess("done")
	PrintError("broken")
	PrintBox("Summary", "rows: 3")

	out := buf.String()
	assert.Contains(t, out, "done")
	assert.Contains(t, out, "broken")
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "rows: 3")
}

func TestRenderTable(t *testing.T) {
	table := RenderTable([]string{"A", "B"}, [][]string{{"1", "Alice"}, {"2"}})
	lines := strings.Split(table, "\n")

	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "A")
	assert.Contains(t, lines[2], "Alice")
	assert.Contains(t, lines[3], "2")
}

func TestAppModel(t *testing.T) {
	m := NewAppModel([]Command{{Name: "generate", Summary: "render SQL"}})
	assert.Equal(t, "Loading...", m.View())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	view := next.(AppModel).View()
	assert.Contains(t, view, "generate")
	assert.Contains(t, view, "{@row}")

	_, cmd := next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.NotNil(t, cmd)
}
