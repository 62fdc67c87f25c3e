package dataset

import (
	"strconv"
	"strings"
)

// CompareCells imposes a total order over two possibly-absent cell values.
// It returns a negative number, zero, or a positive number as a sorts
// before, equal to, or after b.
//
// Absent values order before present ones; two absent values are equal.
// When both values parse as numbers they compare numerically; otherwise
// they fall back to ordinal string comparison. The fallback means a column
// mixing numeric and non-numeric cells does not have a consistent numeric
// order — that is a documented limitation carried over for compatibility,
// not something to fix here. The upside is that comparison never fails,
// even over mixed-type columns.
func CompareCells(a string, aPresent bool, b string, bPresent bool) int {
	switch {
	case !aPresent && !bPresent:
		return 0
	case !aPresent:
		return -1
	case !bPresent:
		return 1
	}

	af, aErr := strconv.ParseFloat(strings.TrimSpace(a), 64)
	bf, bErr := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if aErr == nil && bErr == nil {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}

	return strings.Compare(a, b)
}
