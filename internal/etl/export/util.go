package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var ErrInvalidOutputPath = errors.New("invalid output path")

// ShardPath inserts _<index> before the extension of path:
// out/users.sql becomes out/users_3.sql for index 3.
func ShardPath(path string, index int) (string, error) {
	if path == "" || strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q has no file name", ErrInvalidOutputPath, path)
	}

	dir, file := filepath.Split(path)
	if file == "" || file == "." || file == ".." {
		return "", fmt.Errorf("%w: %q has no file name", ErrInvalidOutputPath, path)
	}

	ext := filepath.Ext(file)
	stem := strings.TrimSuffix(file, ext)
	if stem == "" {
		// dotfiles such as ".sql" have no stem; treat the whole name as the stem
		stem, ext = file, ""
	}

	return filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, index, ext)), nil
}

func shardCount(total, size int) int {
	return (total + size - 1) / size
}
