// Package rational_test: continued-fraction decimal recovery tests.
package rational_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsteps/rational"
)

func TestFromFloat_RecoversLowDenominators(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   float64
		want string
	}{
		{"one third from repeating decimal", 0.3333333333333333, "1/3"},
		{"one tenth", 0.1, "1/10"},
		{"one half", 0.5, "1/2"},
		{"two sevenths", 2.0 / 7.0, "2/7"},
		{"negative two thirds", -2.0 / 3.0, "-2/3"},
		{"three halves", 1.5, "3/2"},
		{"seventeen fortieths", 0.425, "17/40"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r, err := rational.FromFloat(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, r.String())
		})
	}
}

func TestFromFloat_IntegerFastPath(t *testing.T) {
	r, err := rational.FromFloat(4.0)
	require.NoError(t, err)
	require.Equal(t, int64(4), r.Num())
	require.Equal(t, int64(1), r.Den())

	// Rounding noise around an integer still lands on the integer.
	r, err = rational.FromFloat(3.0000000000001e0 - 1e-13)
	require.NoError(t, err)
	require.True(t, r.IsInteger())
}

func TestFromFloat_DenominatorCap(t *testing.T) {
	// 1/30000 exceeds the default cap of 10000; the expansion must stop at
	// the last convergent inside the bound rather than overflowing it.
	r, err := rational.FromFloat(1.0/30000.0, rational.WithMaxDenominator(10000))
	require.NoError(t, err)
	require.LessOrEqual(t, r.Den(), int64(10000))

	// Raising the cap recovers the true fraction.
	r, err = rational.FromFloat(1.0/30000.0, rational.WithMaxDenominator(100000))
	require.NoError(t, err)
	require.Equal(t, "1/30000", r.String())
}

func TestFromFloat_Tolerance(t *testing.T) {
	// A loose tolerance accepts a coarser convergent of π.
	r, err := rational.FromFloat(3.14159265358979, rational.WithTolerance(1e-2))
	require.NoError(t, err)
	require.Equal(t, "22/7", r.String())

	// The default tolerance walks further down the expansion (355/113).
	r, err = rational.FromFloat(3.14159265358979, rational.WithTolerance(1e-6))
	require.NoError(t, err)
	require.Equal(t, "355/113", r.String())
}

func TestFromFloat_NotFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := rational.FromFloat(v)
		require.ErrorIs(t, err, rational.ErrNotFinite)
	}
}
