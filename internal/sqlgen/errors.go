package sqlgen

import "errors"

var (
	ErrInvalidColumnLabel = errors.New("invalid column label")
	ErrNoDataFound        = errors.New("no data found in the selected columns")
	ErrInvalidBatchSize   = errors.New("batch size must be at least 1")
)
