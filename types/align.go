package types

import "github.com/exactmath/fraction/internal/numeric"

// alignPair brings two fractions to a common denominator. When one
// denominator evenly divides the other, only the operand with the smaller
// denominator is scaled by the integer quotient, which keeps intermediate
// magnitudes smaller than cross-multiplying both. Otherwise both are
// rescaled to the LCM of the denominators. Either way each result is
// numerically equal to its input.
func alignPair(f, g Fraction) (Fraction, Fraction) {
	switch {
	case f.den == g.den:
		return f, g
	case g.den%f.den == 0:
		return Fraction{f.num * (g.den / f.den), g.den}, g
	case f.den%g.den == 0:
		return f, Fraction{g.num * (f.den / g.den), f.den}
	}
	l := numeric.LCM(f.den, g.den)
	return Fraction{f.num * (l / f.den), l}, Fraction{g.num * (l / g.den), l}
}

// AlignDenominators rescales two fractions to a shared denominator.
// Fractions that already share a denominator are returned unchanged; each
// output is Equal to its input.
func AlignDenominators(f, g Fraction) (Fraction, Fraction) {
	return alignPair(f, g)
}

// AlignAllDenominators rescales every fraction in the slice to the LCM of
// all denominators, preserving order. Each output is Equal to its input.
// An empty slice yields an empty slice.
func AlignAllDenominators(fs []Fraction) []Fraction {
	dens := make([]int64, len(fs))
	for i, f := range fs {
		dens[i] = f.den
	}
	l := numeric.LCMOf(dens...)

	out := make([]Fraction, len(fs))
	for i, f := range fs {
		out[i] = Fraction{f.num * (l / f.den), l}
	}
	return out
}
