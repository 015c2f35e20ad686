package sqlgen

import (
	"iter"
	"strconv"
	"strings"
)

const legacyValueToken = "{value}"

// Substitute renders one statement for a single row. Placeholders are
// replaced in three passes: positional {1}..{n}, named {A}/{B}/..., then
// {value} when the row has exactly one value. Values are escaped but not
// quoted; the template supplies the quotes. Unknown tokens are left as-is.
func Substitute(template string, values []string, labels []string) string {
	return substitute(template, values, labels, Escape)
}

// substitute backs both single-row rendering and VALUES-list rows. Each pass
// works on the previous pass's output.
func substitute(template string, values []string, labels []string, render func(string) string) string {
	out := template
	for i, v := range values {
		out = strings.ReplaceAll(out, positionalToken(i), render(v))
	}

	for i, label := range labels {
		if i >= len(values) {
			break
		}
		out = strings.ReplaceAll(out, "{"+strings.ToUpper(label)+"}", render(values[i]))
	}

	if len(values) == 1 {
		out = strings.ReplaceAll(out, legacyValueToken, render(values[0]))
	}
	return out
}

func positionalToken(i int) string {
	return "{" + strconv.Itoa(i+1) + "}"
}

// SingleRow yields one statement per row.
func SingleRow(template string, rows []Row, labels []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, row := range rows {
			if !yield(Substitute(template, row, labels)) {
				return
			}
		}
	}
}
