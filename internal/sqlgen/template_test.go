package sqlgen

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name     string
		template string
		values   []string
		labels   []string
		want     string
	}{
		{
			name:     "legacy value",
			template: "INSERT INTO users (name) VALUES ('{value}');",
			values:   []string{"张三"},
			labels:   []string{"A"},
			want:     "INSERT INTO users (name) VALUES ('张三');",
		},
		{
			name:     "positional",
			template: "INSERT INTO users (name, age) VALUES ('{1}', {2});",
			values:   []string{"张三", "25"},
			labels:   []string{"A", "B"},
			want:     "INSERT INTO users (name, age) VALUES ('张三', 25);",
		},
		{
			name:     "named",
			template: "UPDATE t SET name = '{C}' WHERE id = {A};",
			values:   []string{"7", "O'Hara"},
			labels:   []string{"A", "C"},
			want:     "UPDATE t SET name = 'O''Hara' WHERE id = 7;",
		},
		{
			name:     "lowercase labels match uppercase tokens",
			template: "SELECT {AA};",
			values:   []string{"x"},
			labels:   []string{"aa"},
			want:     "SELECT x;",
		},
		{
			name:     "repeated tokens",
			template: "{1}{1}{A}",
			values:   []string{"z"},
			labels:   []string{"A"},
			want:     "zzz",
		},
		{
			name:     "value ignored with several columns",
			template: "'{value}' '{1}'",
			values:   []string{"a", "b"},
			labels:   []string{"A", "B"},
			want:     "'{value}' 'a'",
		},
		{
			name:     "unmatched tokens stay",
			template: "{3} {Z} {name} {1}",
			values:   []string{"a", "b"},
			labels:   []string{"A", "B"},
			want:     "{3} {Z} {name} a",
		},
		{
			name:     "backslash escaped",
			template: "'{1}'",
			values:   []string{`C:\tmp`},
			labels:   []string{"A"},
			want:     `'C:\\tmp'`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Substitute(tt.template, tt.values, tt.labels))
		})
	}
}

func TestSubstitute_LaterPassesSeeEarlierOutput(t *testing.T) {
	// A value that looks like a later placeholder is replaced by that pass.
	got := Substitute("{1}-{2}", []string{"{2}", "x"}, []string{"A", "B"})
	assert.Equal(t, "x-x", got)

	got = Substitute("{1}", []string{"{A}"}, []string{"A"})
	assert.Equal(t, "{A}", got)
}

func TestSingleRow(t *testing.T) {
	rows := []Row{{"1"}, {"2"}, {"3"}}
	got := slices.Collect(SingleRow("DELETE FROM t WHERE id = {value};", rows, []string{"A"}))
	assert.Equal(t, []string{
		"DELETE FROM t WHERE id = 1;",
		"DELETE FROM t WHERE id = 2;",
		"DELETE FROM t WHERE id = 3;",
	}, got)
	assert.Len(t, got, StatementCount(len(rows), 0))
}
