package myers

import (
	"errors"
	"fmt"
)

// Common engine errors
var (
	// ErrMaxErrorsNegative indicates a negative error budget was passed to Search
	ErrMaxErrorsNegative = errors.New("max errors must be non-negative")

	// ErrPatternTooLong indicates the pattern needs more column words than
	// the configured ceiling allows
	ErrPatternTooLong = errors.New("pattern too long")

	// ErrInvalidConfig indicates invalid configuration was provided
	ErrInvalidConfig = errors.New("invalid engine configuration")
)

// LimitError reports a pattern that exceeds the configured length ceiling.
type LimitError struct {
	PatternLen int
	MaxLen     int
}

// Error implements the error interface
func (e *LimitError) Error() string {
	return fmt.Sprintf("pattern length %d exceeds configured maximum %d", e.PatternLen, e.MaxLen)
}

// Unwrap returns ErrPatternTooLong so callers can test with errors.Is.
func (e *LimitError) Unwrap() error {
	return ErrPatternTooLong
}
