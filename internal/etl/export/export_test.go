package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixperk/sheetsql/internal/sqlgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var statements = []string{
	"INSERT INTO t VALUES ('1');",
	"INSERT INTO t VALUES ('2');",
	"INSERT INTO t VALUES ('3');",
	"INSERT INTO t VALUES ('4');",
	"INSERT INTO t VALUES ('5');",
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestShardPath(t *testing.T) {
	tests := []struct {
		path  string
		index int
		want  string
	}{
		{"users.sql", 1, "users_1.sql"},
		{filepath.Join("out", "users.sql"), 12, filepath.Join("out", "users_12.sql")},
		{"archive.tar.sql", 2, "archive.tar_2.sql"},
		{"users", 3, "users_3"},
		{".sql", 1, ".sql_1"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := ShardPath(tt.path, tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShardPath_Invalid(t *testing.T) {
	for _, path := range []string{"", "out/", ".", ".."} {
		_, err := ShardPath(path, 1)
		assert.ErrorIs(t, err, ErrInvalidOutputPath, path)
	}
}

func TestConsoleSink(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&ConsoleSink{W: &buf}).Write(statements[:2]))

	out := buf.String()
	assert.Contains(t, out, "-- SQL 1:\nINSERT INTO t VALUES ('1');\n\n")
	assert.Contains(t, out, "-- SQL 2:\nINSERT INTO t VALUES ('2');\n\n")
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.sql")
	sink := &FileSink{Path: path}
	require.NoError(t, sink.Write(statements[:3]))

	assert.Equal(t,
		"INSERT INTO t VALUES ('1');\n\nINSERT INTO t VALUES ('2');\n\nINSERT INTO t VALUES ('3');\n",
		readFile(t, path))
	assert.Equal(t, []string{path}, sink.Files())
}

func TestFileSink_CreateError(t *testing.T) {
	sink := &FileSink{Path: filepath.Join(t.TempDir(), "missing", "out.sql")}
	err := sink.Write(statements)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestShardedSink(t *testing.T) {
	dir := t.TempDir()
	sink := &ShardedSink{Path: filepath.Join(dir, "users.sql"), BatchSize: 2}
	require.NoError(t, sink.Write(statements))

	files := sink.Files()
	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join(dir, "users_1.sql"), files[0])
	assert.Equal(t, filepath.Join(dir, "users_3.sql"), files[2])

	assert.Equal(t, "INSERT INTO t VALUES ('1');\n\nINSERT INTO t VALUES ('2');\n", readFile(t, files[0]))
	assert.Equal(t, "INSERT INTO t VALUES ('3');\n\nINSERT INTO t VALUES ('4');\n", readFile(t, files[1]))
	assert.Equal(t, "INSERT INTO t VALUES ('5');\n", readFile(t, files[2]))
}

func TestShardedSink_InvalidBatchSize(t *testing.T) {
	sink := &ShardedSink{Path: filepath.Join(t.TempDir(), "x.sql")}
	assert.ErrorIs(t, sink.Write(statements), sqlgen.ErrInvalidBatchSize)
}

func TestNewSink(t *testing.T) {
	var buf bytes.Buffer
	assert.IsType(t, &ConsoleSink{}, NewSink("", 10, &buf))
	assert.IsType(t, &ShardedSink{}, NewSink("x.sql", 10, &buf))
	assert.IsType(t, &FileSink{}, NewSink("x.sql", 0, &buf))
}
