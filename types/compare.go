package types

import "slices"

// Compare orders f and g by rational value: -1 if f < g, 0 if equal,
// 1 if f > g. Both fractions are aligned to a common denominator and the
// numerators compared; a negative common denominator inverts the numerator
// order. This is a total order consistent with the rational values, not
// with the stored representation, so 1/2 and 2/4 compare equal.
func (f Fraction) Compare(g Fraction) int {
	a, b := alignPair(f, g)
	an, bn := a.num, b.num
	if a.den < 0 {
		an, bn = bn, an
	}
	switch {
	case an < bn:
		return -1
	case an > bn:
		return 1
	default:
		return 0
	}
}

// Equal reports whether f and g represent the same rational value,
// regardless of representation.
func (f Fraction) Equal(g Fraction) bool {
	return f.Compare(g) == 0
}

// Sort sorts the slice in place into nondecreasing rational value.
// The sort is stable, so fractions that compare equal keep their order.
func Sort(fs []Fraction) {
	slices.SortStableFunc(fs, Fraction.Compare)
}

// Sorted returns a sorted copy, leaving the input untouched.
func Sorted(fs []Fraction) []Fraction {
	out := slices.Clone(fs)
	Sort(out)
	return out
}
