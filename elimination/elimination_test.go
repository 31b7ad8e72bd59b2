// Package elimination_test contains unit tests for the Gaussian and
// Gauss–Jordan solvers and the elimination determinant: classification,
// trace contents and cross-engine agreement with cofactor expansion.
package elimination_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsteps/cofactor"
	"github.com/katalvlaran/linsteps/elimination"
	"github.com/katalvlaran/linsteps/field"
	"github.com/katalvlaran/linsteps/matrix"
	"github.com/katalvlaran/linsteps/rational"
)

func requireExactlyOneFlag[T any](t *testing.T, s elimination.Solution[T]) {
	t.Helper()
	count := 0
	for _, flag := range []bool{s.IsUnique, s.HasInfiniteSolutions, s.HasNoSolution} {
		if flag {
			count++
		}
	}
	require.Equal(t, 1, count, "exactly one classification flag must be set")
}

func TestSolve_Unique(t *testing.T) {
	f := field.NewReal()
	res, err := elimination.Solve(f, [][]float64{{2, 1}, {1, 3}}, []float64{6, 13})
	require.NoError(t, err)
	requireExactlyOneFlag(t, res.Solution)
	require.True(t, res.Solution.IsUnique)
	require.InDelta(t, 1.0, res.Solution.Values[0], 1e-9)
	require.InDelta(t, 4.0, res.Solution.Values[1], 1e-9)
}

func TestSolveGaussJordan_Unique(t *testing.T) {
	f := field.NewReal()
	res, err := elimination.SolveGaussJordan(f, [][]float64{{2, 1}, {1, 3}}, []float64{6, 13})
	require.NoError(t, err)
	require.True(t, res.Solution.IsUnique)
	require.InDelta(t, 1.0, res.Solution.Values[0], 1e-9)
	require.InDelta(t, 4.0, res.Solution.Values[1], 1e-9)

	// The reduced form ends with normalization and backward elimination.
	var sawNormalize, sawBackward bool
	for _, s := range res.Steps {
		switch s.Title {
		case "Normalize pivot row":
			sawNormalize = true
		case "Eliminate above pivot":
			sawBackward = true
		}
	}
	require.True(t, sawNormalize)
	require.True(t, sawBackward)
}

func TestSolve_ExactFractions(t *testing.T) {
	f := field.NewExact()
	a := matrix.OfInts(f, [][]int64{{2, 1}, {1, 3}})
	b := matrix.VecOfInts(f, []int64{8, 13})

	res, err := elimination.Solve(f, a, b)
	require.NoError(t, err)
	require.True(t, res.Solution.IsUnique)
	require.True(t, res.Solution.Values[0].Equal(rational.MustNew(11, 5)))
	require.True(t, res.Solution.Values[1].Equal(rational.MustNew(18, 5)))

	gj, err := elimination.SolveGaussJordan(f, a, b)
	require.NoError(t, err)
	require.True(t, gj.Solution.Values[0].Equal(rational.MustNew(11, 5)))
	require.True(t, gj.Solution.Values[1].Equal(rational.MustNew(18, 5)))
}

func TestSolve_InfiniteSolutions(t *testing.T) {
	// Proportional rows, consistent constants.
	f := field.NewReal()
	res, err := elimination.Solve(f, [][]float64{{1, 2}, {2, 4}}, []float64{3, 6})
	require.NoError(t, err)
	requireExactlyOneFlag(t, res.Solution)
	require.True(t, res.Solution.HasInfiniteSolutions)
	require.Empty(t, res.Solution.Values)
}

func TestSolve_NoSolution(t *testing.T) {
	// Proportional rows, contradictory constants.
	f := field.NewReal()
	res, err := elimination.Solve(f, [][]float64{{1, 2}, {2, 4}}, []float64{3, 7})
	require.NoError(t, err)
	requireExactlyOneFlag(t, res.Solution)
	require.True(t, res.Solution.HasNoSolution)
	require.Empty(t, res.Solution.Values)

	// The inconsistency step points at the contradictory row.
	var found bool
	for _, s := range res.Steps {
		if s.Title == "No solution" {
			found = true
			require.Contains(t, s.Description, "0 = ")
		}
	}
	require.True(t, found)
}

func TestSolveGaussJordan_DeadColumnClassifies(t *testing.T) {
	f := field.NewReal()

	// Underdetermined but consistent: a dead pivot column must NOT be
	// reported as unsolvable — the rank analysis classifies it.
	res, err := elimination.SolveGaussJordan(f, [][]float64{{0, 1}, {0, 2}}, []float64{1, 2})
	require.NoError(t, err)
	requireExactlyOneFlag(t, res.Solution)
	require.True(t, res.Solution.HasInfiniteSolutions)

	var sawDead bool
	for _, s := range res.Steps {
		if s.Title == "Dead pivot column" {
			sawDead = true
		}
	}
	require.True(t, sawDead)

	// Same shape but contradictory constants: genuinely unsolvable.
	res, err = elimination.SolveGaussJordan(f, [][]float64{{0, 1}, {0, 2}}, []float64{1, 3})
	require.NoError(t, err)
	require.True(t, res.Solution.HasNoSolution)
}

func TestDeterminant_Reference(t *testing.T) {
	f := field.NewReal()
	res, err := elimination.Determinant(f, [][]float64{
		{5, -2, 4},
		{6, 7, -3},
		{3, 0, 2},
	})
	require.NoError(t, err)
	require.InDelta(t, 28.0, res.Determinant, 1e-9)
	require.False(t, res.Singular)
}

func TestDeterminant_SwapParity(t *testing.T) {
	f := field.NewReal()
	res, err := elimination.Determinant(f, [][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)
	require.InDelta(t, -1.0, res.Determinant, 1e-12)

	var sawSwap bool
	for _, s := range res.Steps {
		if s.Title == "Swap rows" {
			sawSwap = true
			require.Equal(t, "R1 ↔ R2", s.Operation)
		}
	}
	require.True(t, sawSwap)
}

func TestDeterminant_SingularStopsEarly(t *testing.T) {
	f := field.NewReal()
	res, err := elimination.Determinant(f, [][]float64{{1, 1}, {1, 1}})
	require.NoError(t, err)
	require.True(t, res.Singular)
	require.Equal(t, 0.0, res.Determinant)
	require.Equal(t, "Singular matrix", res.Steps[len(res.Steps)-1].Title)
}

func TestDeterminant_AgreesWithCofactor(t *testing.T) {
	// Cross-engine agreement on sizes 1–6, floating within tolerance.
	cases := [][][]float64{
		{{4}},
		{{1, 2}, {3, 4}},
		{{5, -2, 4}, {6, 7, -3}, {3, 0, 2}},
		{{1, 2, 3, 4}, {0, 5, 0, 7}, {2, 0, 6, 0}, {1, 1, 1, 1}},
		{
			{2, 0, 1, 0, 3},
			{0, 1, 0, 2, 0},
			{1, 0, 4, 0, 1},
			{0, 2, 0, 1, 0},
			{3, 0, 1, 0, 2},
		},
		{
			{1, 0, 0, 2, 0, 0},
			{0, 3, 0, 0, 4, 0},
			{0, 0, 5, 0, 0, 6},
			{2, 0, 0, 7, 0, 0},
			{0, 4, 0, 0, 8, 0},
			{0, 0, 6, 0, 0, 9},
		},
	}
	f := field.NewReal()
	for _, m := range cases {
		elim, err := elimination.Determinant(f, m)
		require.NoError(t, err)
		cof, err := cofactor.Determinant(f, m)
		require.NoError(t, err)
		require.InDelta(t, cof.Determinant, elim.Determinant, 1e-6)
	}
}

func TestDeterminant_AgreesWithCofactor_Exact(t *testing.T) {
	// The rational variants must agree exactly, not just within tolerance.
	f := field.NewExact()
	ints := [][][]int64{
		{{7}},
		{{1, 2}, {3, 4}},
		{{5, -2, 4}, {6, 7, -3}, {3, 0, 2}},
		{{1, 2, 3, 4}, {0, 5, 0, 7}, {2, 0, 6, 0}, {1, 1, 1, 1}},
	}
	for _, raw := range ints {
		m := matrix.OfInts(f, raw)
		elim, err := elimination.Determinant(f, m)
		require.NoError(t, err)
		cof, err := cofactor.Determinant(f, m)
		require.NoError(t, err)
		require.True(t, elim.Determinant.Equal(cof.Determinant),
			"elimination %s vs cofactor %s", elim.Determinant, cof.Determinant)
	}
}

func TestSolve_ShapeErrors(t *testing.T) {
	f := field.NewReal()
	_, err := elimination.Solve(f, [][]float64{{1, 2, 3}, {4, 5, 6}}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = elimination.SolveGaussJordan(f, [][]float64{{1, 2}, {3, 4}}, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = elimination.Determinant(f, [][]float64{{1, 2}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestSolve_InputsNeverMutated(t *testing.T) {
	f := field.NewReal()
	a := [][]float64{{2, 1}, {1, 3}}
	b := []float64{6, 13}
	_, err := elimination.Solve(f, a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 1}, {1, 3}}, a)
	require.Equal(t, []float64{6, 13}, b)
}

func TestSolve_TraceIDsContiguous(t *testing.T) {
	f := field.NewExact()
	a := matrix.OfInts(f, [][]int64{{2, 1}, {1, 3}})
	b := matrix.VecOfInts(f, []int64{8, 13})
	res, err := elimination.SolveGaussJordan(f, a, b)
	require.NoError(t, err)
	for i, s := range res.Steps {
		require.Equal(t, i+1, s.ID)
		require.NotNil(t, s.RatMatrix) // exact runs carry both views
	}
}
