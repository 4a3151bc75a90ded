// Package fraction provides an immutable, exact rational number type with
// safe construction, arithmetic, comparison and normalization, for callers
// that need fractional arithmetic without floating point rounding error.
//
// The implementation lives in the types subpackage; this package re-exports
// the public surface so most callers only need a single import.
package fraction

import (
	"github.com/exactmath/fraction/types"
)

// Fraction is an exact rational number with int64 components.
type Fraction = types.Fraction

// InvalidFractionError carries the field classification for a rejected
// construction.
type InvalidFractionError = types.InvalidFractionError

// MinSupported is the smallest accepted numerator or denominator.
const MinSupported = types.MinSupported

// Construction error sentinels, usable with errors.Is.
var (
	ErrZeroDenominator       = types.ErrZeroDenominator
	ErrNumeratorOutOfRange   = types.ErrNumeratorOutOfRange
	ErrDenominatorOutOfRange = types.ErrDenominatorOutOfRange
)

// New creates a validated Fraction. See types.New.
func New(num, den int64) (Fraction, bool) {
	return types.New(num, den)
}

// NewWithFeedback creates a validated Fraction, reporting which component
// failed and why. See types.NewWithFeedback.
func NewWithFeedback(num, den int64) (Fraction, error) {
	return types.NewWithFeedback(num, den)
}

// NewUnchecked creates a Fraction without validation, for literal values
// already known valid. See types.NewUnchecked.
func NewUnchecked(num, den int64) Fraction {
	return types.NewUnchecked(num, den)
}

// FromPair creates a validated Fraction from a [numerator, denominator]
// pair.
func FromPair(p [2]int64) (Fraction, bool) {
	return types.FromPair(p)
}

// ParseFraction parses "numerator/denominator" or a bare integer.
func ParseFraction(s string) (Fraction, error) {
	return types.ParseFraction(s)
}

// AlignDenominators rescales two fractions to a shared denominator without
// changing their values.
func AlignDenominators(f, g Fraction) (Fraction, Fraction) {
	return types.AlignDenominators(f, g)
}

// AlignAllDenominators rescales all fractions to their denominators' least
// common multiple, preserving order and values.
func AlignAllDenominators(fs []Fraction) []Fraction {
	return types.AlignAllDenominators(fs)
}

// Sort sorts fractions in place into nondecreasing rational value.
func Sort(fs []Fraction) {
	types.Sort(fs)
}

// Sorted returns a sorted copy of fs.
func Sorted(fs []Fraction) []Fraction {
	return types.Sorted(fs)
}
