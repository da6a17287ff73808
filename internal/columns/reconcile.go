// Package columns reconciles row widths and detects the normalization width of a stream.
package columns

import (
	"errors"
	"fmt"
)

var (
	// ErrColumnMismatch indicates a row whose width disagrees with the target width.
	ErrColumnMismatch = errors.New("column count mismatch")

	// ErrMissingColumns indicates a row with fewer fields than the target width.
	ErrMissingColumns = fmt.Errorf("%w: missing columns", ErrColumnMismatch)

	// ErrExtraColumns indicates a row with more fields than the target width.
	ErrExtraColumns = fmt.Errorf("%w: extra columns", ErrColumnMismatch)
)

// WidthError reports a row rejected by strict width validation.
type WidthError struct {
	// Row is the 1-based ordinal of the row after header skipping. 0 if unknown.
	Row int
	// Expected is the target width.
	Expected int
	// Actual is the width of the offending row.
	Actual int
	// Err is ErrMissingColumns or ErrExtraColumns.
	Err error
}

// Error returns a formatted error message with position information.
func (e *WidthError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: expected %d columns, got %d: %v", e.Row, e.Expected, e.Actual, e.Err)
	}
	return fmt.Sprintf("expected %d columns, got %d: %v", e.Expected, e.Actual, e.Err)
}

// Unwrap returns the underlying error.
func (e *WidthError) Unwrap() error {
	return e.Err
}

// Policy holds the strict validation flags.
type Policy struct {
	RaiseOnMissing bool
	RaiseOnExtra   bool
}

// Reconcile returns row with exactly width fields.
//
// Short rows are padded on the right with empty fields and long rows are
// truncated, unless the matching Policy flag turns the mismatch into a
// *WidthError. A row already at width is returned unchanged.
func Reconcile(row []string, width int, p Policy) ([]string, error) {
	switch n := len(row); {
	case n < width:
		if p.RaiseOnMissing {
			return nil, &WidthError{Expected: width, Actual: n, Err: ErrMissingColumns}
		}
		padded := make([]string, width)
		copy(padded, row)
		return padded, nil
	case n > width:
		if p.RaiseOnExtra {
			return nil, &WidthError{Expected: width, Actual: n, Err: ErrExtraColumns}
		}
		return row[:width:width], nil
	default:
		return row, nil
	}
}

// Blank reports whether every field of row is empty. A zero-field row is blank.
func Blank(row []string) bool {
	for _, f := range row {
		if f != "" {
			return false
		}
	}
	return true
}
