package id

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatOrdinal returns the display ordinal for a 0-based index, e.g. "#3".
func FormatOrdinal(index int) string {
	return "#" + strconv.Itoa(index+1)
}

// ParseOrdinal parses "3" or "#3" into the 0-based index 2. It rejects
// anything that is not a positive integer; range checks are left to the
// ledger.
func ParseOrdinal(s string) (int, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(s), "#")
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid ordinal %q: %w", s, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("invalid ordinal %q: must be 1 or greater", s)
	}
	return n - 1, nil
}
