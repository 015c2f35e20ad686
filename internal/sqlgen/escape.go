package sqlgen

import "strings"

// Escape makes a value safe to embed inside a single-quoted SQL literal.
// Quotes are doubled first, then backslashes. It is not idempotent: escape
// each raw value exactly once.
func Escape(value string) string {
	escaped := strings.ReplaceAll(value, "'", "''")
	return strings.ReplaceAll(escaped, `\`, `\\`)
}

// Quote wraps an escaped value in single quotes.
func Quote(value string) string {
	return "'" + Escape(value) + "'"
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = Quote(v)
	}
	return strings.Join(quoted, ", ")
}
