package errors

import (
	"strconv"
	"strings"
)

// Column budget accepted by the layout and the interactive view.
const (
	MinColumns = 1
	MaxColumns = 10
)

// ParseColumns parses a column count given on the command line.
//
// The value must be an integer; anything else is reported with
// ErrCodeInvalidColumns. Range checking is done by [ValidateColumns].
func ParseColumns(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, New(ErrCodeInvalidColumns, "columns count must be integer: %q", s)
	}
	if err := ValidateColumns(n); err != nil {
		return 0, err
	}
	return n, nil
}

// ValidateColumns checks that n is within [MinColumns, MaxColumns].
func ValidateColumns(n int) error {
	if n < MinColumns || n > MaxColumns {
		return New(ErrCodeInvalidColumns, "columns count must be between %d and %d, got %d", MinColumns, MaxColumns, n)
	}
	return nil
}

// ValidateSeparator validates a path separator for input records.
// It must be a single non-whitespace character.
func ValidateSeparator(sep string) error {
	if len([]rune(sep)) != 1 {
		return New(ErrCodeInvalidInput, "path separator must be a single character, got %q", sep)
	}
	if strings.TrimSpace(sep) == "" {
		return New(ErrCodeInvalidInput, "path separator cannot be whitespace")
	}
	return nil
}
