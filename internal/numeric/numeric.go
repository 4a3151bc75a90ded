// Package numeric provides the integer helpers used for fraction
// simplification and denominator alignment.
package numeric

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of a and b, always non-negative.
// GCD(0, b) is |b|, so callers can reduce fractions with a zero numerator
// without a special case. GCD(0, 0) is 0.
func GCD[T constraints.Signed](a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b, always non-negative.
// LCM with a zero argument is 0.
func LCM[T constraints.Signed](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		l = -l
	}
	return l
}

// LCMOf folds LCM over all given values, seeded at 1.
// With no arguments it returns 1.
func LCMOf[T constraints.Signed](vs ...T) T {
	l := T(1)
	for _, v := range vs {
		l = LCM(l, v)
	}
	return l
}
