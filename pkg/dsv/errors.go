package dsv

import (
	"errors"

	"github.com/shapestone/shape-dsv/internal/columns"
	"github.com/shapestone/shape-dsv/internal/source"
)

// ErrInvalidConfig is wrapped by every *ConfigError.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "dsv: invalid " + e.Field + ": " + e.Message
}

// Unwrap returns ErrInvalidConfig.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// RecordWidthError reports a row rejected by RaiseOnMissingColumns or
// RaiseOnExtraColumns. Row is the 1-based position of the row after header
// skipping, counting blank lines, or 0 when returned by Reconcile.
type RecordWidthError = columns.WidthError

// DecodingError reports input that is not valid in the configured encoding.
type DecodingError = source.DecodingError

// Width errors. ErrMissingColumns and ErrExtraColumns both match ErrColumnMismatch.
var (
	ErrColumnMismatch = columns.ErrColumnMismatch
	ErrMissingColumns = columns.ErrMissingColumns
	ErrExtraColumns   = columns.ErrExtraColumns
)
