package types

import "math"

// Mul returns the componentwise product. The result is not simplified and
// no overflow check is performed: products beyond the int64 range wrap
// silently. Callers operating near the range limits should simplify the
// operands first or bound their magnitudes themselves.
func (f Fraction) Mul(g Fraction) Fraction {
	return Fraction{f.num * g.num, f.den * g.den}
}

// Div divides f by g by multiplying with g's reciprocal. It returns false
// exactly when g's numerator is zero or its reciprocal fails validation.
func (f Fraction) Div(g Fraction) (Fraction, bool) {
	r, ok := g.Reciprocal()
	if !ok {
		return Fraction{}, false
	}
	return f.Mul(r), true
}

// Add returns f + g over a common denominator. The result is not
// simplified. Like Mul, there is no overflow detection.
func (f Fraction) Add(g Fraction) Fraction {
	a, b := alignPair(f, g)
	return Fraction{a.num + b.num, a.den}
}

// Sub returns f - g over a common denominator. The result is not
// simplified. Like Mul, there is no overflow detection.
func (f Fraction) Sub(g Fraction) Fraction {
	a, b := alignPair(f, g)
	return Fraction{a.num - b.num, a.den}
}

// Float64 returns the floating-point quotient of the components. This is a
// lossy projection: it can lose precision and produces infinities for
// extreme magnitudes.
func (f Fraction) Float64() float64 {
	return float64(f.num) / float64(f.den)
}

// Round returns the nearest integer to the fraction's value, rounding
// halves away from zero. It goes through Float64 and shares its loss of
// precision.
func (f Fraction) Round() int64 {
	return int64(math.Round(f.Float64()))
}
