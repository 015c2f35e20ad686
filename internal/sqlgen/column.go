package sqlgen

import (
	"fmt"
	"math"
	"strings"
)

// ResolveColumn converts a spreadsheet column label into a zero-based index
// (A=0, B=1, ..., Z=25, AA=26, ...).
func ResolveColumn(label string) (int, error) {
	label = strings.ToUpper(label)
	if label == "" {
		return 0, fmt.Errorf("%w: empty label", ErrInvalidColumnLabel)
	}

	index := 0
	weight := 1
	for i := len(label) - 1; i >= 0; i-- {
		ch := label[i]
		if ch < 'A' || ch > 'Z' {
			return 0, fmt.Errorf("%w: %s", ErrInvalidColumnLabel, label)
		}
		digit := int(ch - 'A' + 1)
		if weight > (math.MaxInt-index)/digit {
			return 0, fmt.Errorf("%w: %s is out of range", ErrInvalidColumnLabel, label)
		}
		index += digit * weight
		if i > 0 {
			if weight > math.MaxInt/26 {
				return 0, fmt.Errorf("%w: %s is out of range", ErrInvalidColumnLabel, label)
			}
			weight *= 26
		}
	}

	return index - 1, nil
}

func ResolveColumns(labels []string) ([]int, error) {
	indices := make([]int, len(labels))
	for i, label := range labels {
		idx, err := ResolveColumn(label)
		if err != nil {
			return nil, err
		}
		indices[i] = idx
	}
	return indices, nil
}

// ParseColumnList splits a comma separated list such as "A, b,C" into
// upper-cased labels. Blank entries are dropped.
func ParseColumnList(list string) []string {
	var labels []string
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		labels = append(labels, strings.ToUpper(part))
	}
	return labels
}
