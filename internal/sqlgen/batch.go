package sqlgen

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

const (
	valuesMarker = "{values}"
	rowMarker    = "{@row}"
)

// Mode is the batch rendering strategy picked from the template text.
type Mode int

const (
	ModeAggregate Mode = iota
	ModeInClause
	ModeValuesList
)

func (m Mode) String() string {
	switch m {
	case ModeInClause:
		return "in-clause"
	case ModeValuesList:
		return "values-list"
	default:
		return "aggregate"
	}
}

// DetectMode inspects the template for batch markers. When several are
// present the priority is fixed: {values}, then {@row}, then aggregate
// markers ({#1}, {#A}).
func DetectMode(template string) Mode {
	switch {
	case strings.Contains(template, valuesMarker):
		return ModeInClause
	case strings.Contains(template, rowMarker):
		return ModeValuesList
	default:
		return ModeAggregate
	}
}

// Generator renders one statement per chunk of rowsPerStatement rows.
type Generator struct {
	template string
	labels   []string
	size     int
	mode     Mode
	rowSpan  string
}

func NewGenerator(template string, labels []string, rowsPerStatement int) (*Generator, error) {
	if rowsPerStatement < 1 {
		return nil, fmt.Errorf("%w: rows per statement is %d", ErrInvalidBatchSize, rowsPerStatement)
	}

	upper := make([]string, len(labels))
	for i, l := range labels {
		upper[i] = strings.ToUpper(l)
	}

	g := &Generator{
		template: template,
		labels:   upper,
		size:     rowsPerStatement,
		mode:     DetectMode(template),
	}
	if g.mode == ModeValuesList {
		g.rowSpan = findRowSpan(template)
	}
	return g, nil
}

func (g *Generator) Mode() Mode {
	return g.mode
}

// Statements lazily yields statements in row order. Ranging over the
// sequence again starts from the first chunk.
func (g *Generator) Statements(rows []Row) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; i < len(rows); i += g.size {
			end := min(i+g.size, len(rows))
			if !yield(g.render(rows[i:end])) {
				return
			}
		}
	}
}

func (g *Generator) Generate(rows []Row) []string {
	return slices.Collect(g.Statements(rows))
}

func (g *Generator) render(chunk []Row) string {
	switch g.mode {
	case ModeInClause:
		return strings.ReplaceAll(g.template, valuesMarker, quoteAll(Column(chunk, 0)))
	case ModeValuesList:
		return g.renderValuesList(chunk)
	default:
		return g.renderAggregate(chunk)
	}
}

// findRowSpan returns the text from {@row} through the next closing brace.
// The search starts at the marker's own opening brace, so the span closes on
// the marker itself.
func findRowSpan(template string) string {
	start := strings.Index(template, rowMarker)
	if start < 0 {
		return ""
	}
	end := strings.IndexByte(template[start:], '}')
	return template[start : start+end+1]
}

func (g *Generator) renderValuesList(chunk []Row) string {
	baseline := strings.Replace(g.rowSpan, rowMarker, "", 1)

	parts := make([]string, len(chunk))
	for i, row := range chunk {
		rendered := substitute(baseline, row, g.labels, Quote)
		// A span that comes out unchanged had no row placeholders; this also
		// catches a row whose values reproduce the baseline text exactly.
		if rendered == baseline {
			rendered = "(" + quoteAll(row) + ")"
		}
		parts[i] = rendered
	}

	return strings.ReplaceAll(g.template, g.rowSpan, strings.Join(parts, ", "))
}

func (g *Generator) renderAggregate(chunk []Row) string {
	out := g.template
	for i, label := range g.labels {
		byIndex := "{#" + strconv.Itoa(i+1) + "}"
		byLabel := "{#" + label + "}"

		hasIndex := strings.Contains(out, byIndex)
		hasLabel := strings.Contains(out, byLabel)
		if !hasIndex && !hasLabel {
			continue
		}

		joined := quoteAll(Column(chunk, i))
		if hasIndex {
			out = strings.ReplaceAll(out, byIndex, joined)
		}
		if hasLabel {
			out = strings.ReplaceAll(out, byLabel, joined)
		}
	}
	return out
}

// StatementCount reports how many statements rowCount rows produce.
// rowsPerStatement of 0 means single-row mode.
func StatementCount(rowCount, rowsPerStatement int) int {
	if rowsPerStatement <= 0 {
		return rowCount
	}
	return (rowCount + rowsPerStatement - 1) / rowsPerStatement
}
