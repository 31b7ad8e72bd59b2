// Package cofactor_test contains unit tests for the Laplace expansion
// engine: values, axis selection, trace invariants and the formula line.
package cofactor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsteps/cofactor"
	"github.com/katalvlaran/linsteps/field"
	"github.com/katalvlaran/linsteps/matrix"
	"github.com/katalvlaran/linsteps/rational"
	"github.com/katalvlaran/linsteps/trace"
)

func TestDeterminant_1x1(t *testing.T) {
	f := field.NewReal()
	res, err := cofactor.Determinant(f, [][]float64{{7}})
	require.NoError(t, err)
	require.Equal(t, 7.0, res.Determinant)
	require.Len(t, res.Steps, 1)
	require.Equal(t, "1×1 determinant", res.Steps[0].Title)
	require.Equal(t, "det(A) = 7", res.ExpansionFormula)
}

func TestDeterminant_2x2(t *testing.T) {
	f := field.NewReal()
	res, err := cofactor.Determinant(f, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, -2.0, res.Determinant)
	require.Len(t, res.Steps, 1) // ad − bc is one terminal step
	require.Equal(t, "det(A) = 1·4 − 2·3 = -2", res.ExpansionFormula)
}

func TestDeterminant_3x3_Reference(t *testing.T) {
	// det([[5,-2,4],[6,7,-3],[3,0,2]]) == 28, expanding along row 3 (one zero).
	f := field.NewReal()
	res, err := cofactor.Determinant(f, [][]float64{
		{5, -2, 4},
		{6, 7, -3},
		{3, 0, 2},
	})
	require.NoError(t, err)
	require.InDelta(t, 28.0, res.Determinant, 1e-9)

	// The axis-choice step leads the trace and names row 3.
	require.Equal(t, "Choose expansion axis", res.Steps[0].Title)
	require.Equal(t, "expand along row 3", res.Steps[0].Operation)

	// The zero at a[3][2] is skipped without recursing into its minor.
	var skipped int
	for _, s := range res.Steps {
		if s.Title == "Skip zero term" {
			skipped++
			require.Equal(t, 2, s.ExcludedRow)
			require.Equal(t, 1, s.ExcludedCol)
		}
	}
	require.Equal(t, 1, skipped)

	require.Equal(t, "det(A) = +(3)·(-22) +(2)·(47) = 28", res.ExpansionFormula)
}

func TestDeterminant_3x3_Exact(t *testing.T) {
	f := field.NewExact()
	res, err := cofactor.Determinant(f, matrix.OfInts(f, [][]int64{
		{5, -2, 4},
		{6, 7, -3},
		{3, 0, 2},
	}))
	require.NoError(t, err)
	require.True(t, res.Determinant.Equal(rational.FromInt(28)))

	// Exact runs carry the rational snapshot alongside the float one.
	require.NotNil(t, res.Steps[0].RatMatrix)
	require.True(t, res.Steps[0].RatMatrix[0][0].Equal(rational.FromInt(5)))
}

func TestAxisSelection_FullZeroRowWins(t *testing.T) {
	// Row 2 is entirely zero (count 3); column 1 has only two zeros. The
	// full zero row must win, and the determinant is 0 outright.
	f := field.NewReal()
	res, err := cofactor.Determinant(f, [][]float64{
		{1, 0, 2},
		{0, 0, 0},
		{4, 0, 6},
	})
	require.NoError(t, err)
	require.Equal(t, 0.0, res.Determinant)
	require.Equal(t, "expand along row 2", res.Steps[0].Operation)
}

func TestDeterminant_Hilbert3_Exact(t *testing.T) {
	// Hilbert matrices are brutally ill-conditioned for floats; the exact
	// instantiation nails det(H₃) = 1/2160 with zero drift.
	f := field.NewExact()
	h := make([][]rational.Rational, 3)
	for i := range h {
		h[i] = make([]rational.Rational, 3)
		for j := range h[i] {
			h[i][j] = rational.MustNew(1, int64(i+j+1))
		}
	}
	res, err := cofactor.Determinant(f, h)
	require.NoError(t, err)
	require.True(t, res.Determinant.Equal(rational.MustNew(1, 2160)))
}

func TestTraceInvariants(t *testing.T) {
	f := field.NewReal()
	input := [][]float64{
		{2, 0, 1},
		{1, 3, 2},
		{1, 1, 1},
	}
	res, err := cofactor.Determinant(f, input)
	require.NoError(t, err)

	// Ids are 1-based, contiguous, strictly increasing.
	for i, s := range res.Steps {
		require.Equal(t, i+1, s.ID)
	}

	// Minor extractions tag the struck-out row and column.
	var sawMinor, sawNested bool
	for _, s := range res.Steps {
		if s.Title == "Extract minor" {
			sawMinor = true
			require.NotEqual(t, trace.NoIndex, s.ExcludedRow)
			require.NotEqual(t, trace.NoIndex, s.ExcludedCol)
		}
		if s.Level > 0 {
			sawNested = true
		}
	}
	require.True(t, sawMinor)
	require.True(t, sawNested) // 3×3 recursion reaches level 1 (2×2 minors)

	// Snapshots are frozen: mutating the input after the run changes nothing.
	first := res.Steps[0].Matrix[0][0]
	input[0][0] = 999
	require.Equal(t, first, res.Steps[0].Matrix[0][0])
}

func TestDet_MatchesInstrumentedRun(t *testing.T) {
	f := field.NewReal()
	m := [][]float64{
		{1, 2, 3, 4},
		{0, 5, 0, 7},
		{2, 0, 6, 0},
		{1, 1, 1, 1},
	}
	res, err := cofactor.Determinant(f, m)
	require.NoError(t, err)
	plain, err := cofactor.Det(f, m)
	require.NoError(t, err)
	require.InDelta(t, res.Determinant, plain, 1e-9)
}

func TestDeterminant_NonSquare(t *testing.T) {
	f := field.NewReal()
	_, err := cofactor.Determinant(f, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = cofactor.Det(f, [][]float64{})
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)
}

func TestDeterminant_InputNeverMutated(t *testing.T) {
	f := field.NewExact()
	m := matrix.OfInts(f, [][]int64{{1, 2}, {3, 4}})
	_, err := cofactor.Determinant(f, m)
	require.NoError(t, err)
	require.True(t, m[0][0].Equal(rational.FromInt(1)))
	require.True(t, m[1][1].Equal(rational.FromInt(4)))
}
