// Package types provides the exact rational number type and the operations
// over it.
package types

import (
	"math"

	"github.com/exactmath/fraction/internal/numeric"
)

// MinSupported is the smallest value accepted for either component of a
// Fraction. It excludes exactly the most negative int64, because negating
// that value overflows back to itself and simplification and reciprocal
// must be able to negate either component.
const MinSupported = math.MinInt64 + 1

// Fraction is an exact rational number: an integer numerator over a nonzero
// integer denominator. Values are immutable and every operation returns a
// new Fraction, so they are safe for unrestricted concurrent use.
//
// A Fraction is not kept in lowest terms and the denominator may be
// negative; Simplify is an explicit operation, not an automatic one.
// The == operator compares stored components, not rational values. Use
// Equal for value comparison (1/2 == 2/4 as rationals but not as structs).
type Fraction struct {
	num int64
	den int64
}

// New creates a Fraction from numerator and denominator. It returns false
// if the denominator is zero or either component is below MinSupported.
func New(num, den int64) (Fraction, bool) {
	if den == 0 || num < MinSupported || den < MinSupported {
		return Fraction{}, false
	}
	return Fraction{num, den}, true
}

// NewWithFeedback is like New but reports which component failed validation
// and why, as an *InvalidFractionError wrapping one of the sentinel errors.
func NewWithFeedback(num, den int64) (Fraction, error) {
	if num < MinSupported {
		return Fraction{}, &InvalidFractionError{Field: "numerator", Value: num, reason: ErrNumeratorOutOfRange}
	}
	if den == 0 {
		return Fraction{}, &InvalidFractionError{Field: "denominator", Value: den, reason: ErrZeroDenominator}
	}
	if den < MinSupported {
		return Fraction{}, &InvalidFractionError{Field: "denominator", Value: den, reason: ErrDenominatorOutOfRange}
	}
	return Fraction{num, den}, nil
}

// NewUnchecked creates a Fraction without any validation. It is meant for
// literal values already known to be valid. Passing a zero denominator or a
// component below MinSupported leaves the result in a state where Simplify,
// Reciprocal and the comparisons have unreliable results.
func NewUnchecked(num, den int64) Fraction {
	return Fraction{num, den}
}

// FromPair creates a Fraction from a [numerator, denominator] pair.
// It validates exactly like New.
func FromPair(p [2]int64) (Fraction, bool) {
	return New(p[0], p[1])
}

// Numerator returns the stored numerator, without simplification.
func (f Fraction) Numerator() int64 {
	return f.num
}

// Denominator returns the stored denominator, without simplification.
func (f Fraction) Denominator() int64 {
	return f.den
}

// IsZero returns true if the numerator is zero, for any denominator.
func (f Fraction) IsZero() bool {
	return f.num == 0
}

// IsOne returns true if numerator and denominator are equal as stored.
// 3/3 is one, 2/1 is not until the caller simplifies it.
func (f Fraction) IsOne() bool {
	return f.num == f.den
}

// IsNegativeOne returns true if the negated numerator equals the
// denominator as stored.
func (f Fraction) IsNegativeOne() bool {
	return -f.num == f.den
}

// IsWholeNumber returns true if the fraction simplifies to a denominator
// of 1.
func (f Fraction) IsWholeNumber() bool {
	return f.Simplify().den == 1
}

// Sign returns -1, 0 or 1 for a negative, zero or positive rational value.
func (f Fraction) Sign() int {
	if f.num == 0 {
		return 0
	}
	if (f.num < 0) == (f.den < 0) {
		return 1
	}
	return -1
}

// Neg returns the negated fraction. Safe for every valid Fraction because
// MinSupported excludes the one value whose negation overflows.
func (f Fraction) Neg() Fraction {
	return Fraction{-f.num, f.den}
}

// Simplify reduces the fraction to lowest terms and normalizes the sign so
// the denominator is positive. It returns the canonical representative of
// the same rational value and is idempotent.
func (f Fraction) Simplify() Fraction {
	d := numeric.GCD(f.num, f.den)
	num, den := f.num/d, f.den/d
	if den < 0 {
		num, den = -num, -den
	}
	return Fraction{num, den}
}

// Reciprocal returns the fraction with numerator and denominator swapped,
// routed through the validating constructor. It returns false if the
// numerator is zero, since that would become an invalid denominator.
func (f Fraction) Reciprocal() (Fraction, bool) {
	return New(f.den, f.num)
}
