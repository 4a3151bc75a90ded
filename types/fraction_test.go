package types

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frac builds a fraction for test inputs already known valid.
func frac(num, den int64) Fraction {
	return NewUnchecked(num, den)
}

func TestNewRoundTrip(t *testing.T) {
	nums := []int64{-7, -1, 0, 1, 2, 46, math.MaxInt64, MinSupported}
	dens := []int64{-10, -3, 1, 2, 7, 60, math.MaxInt64, MinSupported}
	for _, n := range nums {
		for _, d := range dens {
			f, ok := New(n, d)
			require.True(t, ok, "New(%d, %d)", n, d)
			assert.Equal(t, n, f.Numerator())
			assert.Equal(t, d, f.Denominator())
		}
	}
}

func TestNewRejectsZeroDenominator(t *testing.T) {
	for _, n := range []int64{0, 1, -1, math.MaxInt64, MinSupported} {
		_, ok := New(n, 0)
		assert.False(t, ok, "New(%d, 0)", n)
	}
}

func TestNewRejectsMostNegativeInt(t *testing.T) {
	_, ok := New(math.MinInt64, 2)
	assert.False(t, ok)

	_, ok = New(2, math.MinInt64)
	assert.False(t, ok)

	// the minimum itself is still accepted
	f, ok := New(MinSupported, MinSupported)
	require.True(t, ok)
	assert.Equal(t, int64(MinSupported), f.Numerator())
	assert.Equal(t, int64(MinSupported), f.Denominator())
}

func TestNewWithFeedback(t *testing.T) {
	f, err := NewWithFeedback(3, 4)
	require.NoError(t, err)
	assert.Equal(t, frac(3, 4), f)

	_, err = NewWithFeedback(1, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrZeroDenominator)

	_, err = NewWithFeedback(math.MinInt64, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNumeratorOutOfRange)

	_, err = NewWithFeedback(2, math.MinInt64)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDenominatorOutOfRange)
}

func TestNewWithFeedbackClassifiesField(t *testing.T) {
	_, err := NewWithFeedback(1, 0)
	var invalid *InvalidFractionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "denominator", invalid.Field)
	assert.Equal(t, int64(0), invalid.Value)
	assert.Contains(t, err.Error(), "denominator")

	_, err = NewWithFeedback(math.MinInt64, 2)
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "numerator", invalid.Field)
	assert.Contains(t, err.Error(), "numerator")

	// the numerator is checked first when both components are bad
	_, err = NewWithFeedback(math.MinInt64, 0)
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "numerator", invalid.Field)
	assert.True(t, errors.Is(err, ErrNumeratorOutOfRange))
}

func TestNewUnchecked(t *testing.T) {
	// no validation, components stored verbatim
	f := NewUnchecked(1, 0)
	assert.Equal(t, int64(1), f.Numerator())
	assert.Equal(t, int64(0), f.Denominator())
}

func TestFromPair(t *testing.T) {
	f, ok := FromPair([2]int64{3, 4})
	require.True(t, ok)
	assert.Equal(t, frac(3, 4), f)

	_, ok = FromPair([2]int64{3, 0})
	assert.False(t, ok)
}

func TestIsZero(t *testing.T) {
	assert.True(t, frac(0, 5).IsZero())
	assert.True(t, frac(0, -5).IsZero())
	assert.False(t, frac(1, 5).IsZero())
}

func TestIsOne(t *testing.T) {
	assert.True(t, frac(3, 3).IsOne())
	assert.True(t, frac(-4, -4).IsOne())
	// structural, so 2/1 only counts after the caller simplifies
	assert.False(t, frac(2, 1).IsOne())
	assert.False(t, frac(2, 4).IsOne())
}

func TestIsNegativeOne(t *testing.T) {
	assert.True(t, frac(-3, 3).IsNegativeOne())
	assert.True(t, frac(3, -3).IsNegativeOne())
	assert.False(t, frac(3, 3).IsNegativeOne())
	assert.False(t, frac(-2, 4).IsNegativeOne())
}

func TestIsWholeNumber(t *testing.T) {
	assert.True(t, frac(4, 2).IsWholeNumber())
	assert.True(t, frac(-4, 2).IsWholeNumber())
	assert.True(t, frac(3, 3).IsWholeNumber())
	assert.True(t, frac(0, 7).IsWholeNumber())
	assert.False(t, frac(1, 2).IsWholeNumber())
	assert.False(t, frac(20, 12).IsWholeNumber())
}

func TestSign(t *testing.T) {
	assert.Equal(t, 0, frac(0, 3).Sign())
	assert.Equal(t, 1, frac(2, 3).Sign())
	assert.Equal(t, 1, frac(-2, -3).Sign())
	assert.Equal(t, -1, frac(-2, 3).Sign())
	assert.Equal(t, -1, frac(2, -3).Sign())
}

func TestNeg(t *testing.T) {
	assert.Equal(t, frac(-2, 3), frac(2, 3).Neg())
	assert.Equal(t, frac(2, 3), frac(2, 3).Neg().Neg())
}

func TestSimplify(t *testing.T) {
	assert.Equal(t, frac(1, 2), frac(2, 4).Simplify())
	assert.Equal(t, frac(23, 30), frac(46, 60).Simplify())
	assert.Equal(t, frac(3, 7), frac(3, 7).Simplify())
	assert.Equal(t, frac(2, 1), frac(4, 2).Simplify())
}

func TestSimplifyNormalizesSign(t *testing.T) {
	assert.Equal(t, frac(-1, 2), frac(1, -2).Simplify())
	assert.Equal(t, frac(-1, 2), frac(-1, 2).Simplify())
	assert.Equal(t, frac(2, 3), frac(-4, -6).Simplify())
}

func TestSimplifyZeroNumerator(t *testing.T) {
	assert.Equal(t, frac(0, 1), frac(0, 5).Simplify())
	assert.Equal(t, frac(0, 1), frac(0, -5).Simplify())
}

func TestSimplifyIdempotentWithPositiveDenominator(t *testing.T) {
	inputs := []Fraction{
		frac(2, 4), frac(46, 60), frac(3, 7), frac(-9, 10),
		frac(1, -2), frac(-4, -6), frac(0, 9), frac(20, 12),
	}
	for _, f := range inputs {
		s := f.Simplify()
		assert.Equal(t, s, s.Simplify(), "simplify not idempotent for %s", f)
		assert.Greater(t, s.Denominator(), int64(0), "denominator not positive for %s", f)
	}
}

func TestReciprocal(t *testing.T) {
	r, ok := frac(3, 4).Reciprocal()
	require.True(t, ok)
	assert.Equal(t, frac(4, 3), r)

	r, ok = frac(-2, 5).Reciprocal()
	require.True(t, ok)
	assert.Equal(t, frac(5, -2), r)
}

func TestReciprocalFailsOnZeroNumerator(t *testing.T) {
	_, ok := frac(0, 5).Reciprocal()
	assert.False(t, ok)
}

func TestReciprocalInvolution(t *testing.T) {
	inputs := []Fraction{frac(1, 2), frac(-3, 7), frac(5, -9), frac(46, 60)}
	for _, f := range inputs {
		r, ok := f.Reciprocal()
		require.True(t, ok)
		rr, ok := r.Reciprocal()
		require.True(t, ok)
		assert.Equal(t, f, rr)
	}
}
