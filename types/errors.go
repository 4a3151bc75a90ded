package types

import (
	"errors"
	"fmt"
)

// Reasons a fraction can be rejected at construction time.
var (
	ErrZeroDenominator       = errors.New("denominator must not be zero")
	ErrNumeratorOutOfRange   = errors.New("numerator below supported minimum")
	ErrDenominatorOutOfRange = errors.New("denominator below supported minimum")
)

// InvalidFractionError reports which component of a fraction failed
// validation and why. It is returned by NewWithFeedback; the detail-free
// constructors signal the same conditions with a plain false.
type InvalidFractionError struct {
	// Field is "numerator" or "denominator".
	Field string
	// Value is the rejected input.
	Value int64

	reason error
}

var _ error = (*InvalidFractionError)(nil)

func (e *InvalidFractionError) Error() string {
	if e == nil {
		return "(nil)"
	}
	return fmt.Sprintf("invalid fraction: %s %d: %s", e.Field, e.Value, e.reason)
}

// Unwrap exposes the sentinel reason so callers can test with errors.Is.
func (e *InvalidFractionError) Unwrap() error {
	return e.reason
}
