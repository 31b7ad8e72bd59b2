// Package adjugate_test contains unit tests for adjugate-based inversion:
// reference inverses, singular classification, trace contents and the
// identity verification step.
package adjugate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsteps/adjugate"
	"github.com/katalvlaran/linsteps/field"
	"github.com/katalvlaran/linsteps/matrix"
	"github.com/katalvlaran/linsteps/rational"
)

func TestInverse_Reference2x2(t *testing.T) {
	f := field.NewReal()
	res, err := adjugate.Inverse(f, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.True(t, res.Invertible)
	require.InDelta(t, -2.0, res.Determinant, 1e-12)

	want := [][]float64{{-2, 1}, {1.5, -0.5}}
	for i := range want {
		for j := range want[i] {
			require.InDelta(t, want[i][j], res.Inverse[i][j], 1e-9, "entry [%d][%d]", i, j)
		}
	}
}

func TestInverse_Exact2x2(t *testing.T) {
	f := field.NewExact()
	m := matrix.OfInts(f, [][]int64{{1, 2}, {3, 4}})

	res, err := adjugate.Inverse(f, m)
	require.NoError(t, err)
	require.True(t, res.Invertible)
	require.True(t, res.Determinant.Equal(rational.FromInt(-2)))

	// adj(A) precedes the scaling: [[4, -2], [-3, 1]] for [[1,2],[3,4]].
	require.True(t, res.Adjugate[0][0].Equal(rational.FromInt(4)))
	require.True(t, res.Adjugate[0][1].Equal(rational.FromInt(-2)))
	require.True(t, res.Adjugate[1][0].Equal(rational.FromInt(-3)))
	require.True(t, res.Adjugate[1][1].Equal(rational.FromInt(1)))
	require.True(t, res.Verified)

	want := [][]rational.Rational{
		{rational.FromInt(-2), rational.FromInt(1)},
		{rational.MustNew(3, 2), rational.MustNew(-1, 2)},
	}
	for i := range want {
		for j := range want[i] {
			require.True(t, res.Inverse[i][j].Equal(want[i][j]),
				"entry [%d][%d]: got %s want %s", i, j, res.Inverse[i][j], want[i][j])
		}
	}

	// Exact arithmetic: the identity exactly, not approximately, and from
	// both sides.
	identity := matrix.Identity(f, 2)
	for _, pair := range [][2][][]rational.Rational{{m, res.Inverse}, {res.Inverse, m}} {
		product, err := matrix.Mul(f, pair[0], pair[1])
		require.NoError(t, err)
		for i := range identity {
			for j := range identity[i] {
				require.True(t, product[i][j].Equal(identity[i][j]))
			}
		}
	}
}

func TestInverse_Singular(t *testing.T) {
	f := field.NewReal()
	res, err := adjugate.Inverse(f, [][]float64{{1, 2}, {2, 4}})
	require.NoError(t, err)
	require.False(t, res.Invertible)
	require.Nil(t, res.Inverse)
	require.Nil(t, res.Adjugate)
	require.False(t, res.Verified)
	require.InDelta(t, 0.0, res.Determinant, 1e-12)
	require.Equal(t, "Not invertible", res.Steps[len(res.Steps)-1].Title)
}

func TestInverse_1x1(t *testing.T) {
	f := field.NewReal()
	res, err := adjugate.Inverse(f, [][]float64{{4}})
	require.NoError(t, err)
	require.True(t, res.Invertible)
	require.InDelta(t, 0.25, res.Inverse[0][0], 1e-12)
}

func TestInverse_Exact3x3(t *testing.T) {
	f := field.NewExact()
	m := matrix.OfInts(f, [][]int64{
		{2, 0, 0},
		{0, 3, 0},
		{0, 0, 4},
	})

	res, err := adjugate.Inverse(f, m)
	require.NoError(t, err)
	require.True(t, res.Invertible)
	require.True(t, res.Determinant.Equal(rational.FromInt(24)))
	require.True(t, res.Inverse[0][0].Equal(rational.MustNew(1, 2)))
	require.True(t, res.Inverse[1][1].Equal(rational.MustNew(1, 3)))
	require.True(t, res.Inverse[2][2].Equal(rational.MustNew(1, 4)))
	require.True(t, res.Inverse[0][1].IsZero())
}

func TestInverse_VerificationStep(t *testing.T) {
	f := field.NewReal()
	res, err := adjugate.Inverse(f, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	last := res.Steps[len(res.Steps)-1]
	require.Equal(t, "Verify the inverse", last.Title)
	require.Contains(t, last.Description, "matches the identity")
	require.Len(t, last.Matrix, 2) // snapshot of A·A⁻¹
}

func TestInverse_TraceShape(t *testing.T) {
	f := field.NewExact()
	m := matrix.OfInts(f, [][]int64{{1, 2}, {3, 4}})
	res, err := adjugate.Inverse(f, m)
	require.NoError(t, err)

	// Contiguous IDs and one cofactor step per entry.
	cofactors := 0
	for i, s := range res.Steps {
		require.Equal(t, i+1, s.ID)
		if s.Title == "Compute cofactor" {
			cofactors++
			require.GreaterOrEqual(t, s.ExcludedRow, 0)
			require.GreaterOrEqual(t, s.ExcludedCol, 0)
		}
	}
	require.Equal(t, 4, cofactors)
}

func TestInverse_ShapeErrors(t *testing.T) {
	f := field.NewReal()
	_, err := adjugate.Inverse(f, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = adjugate.Inverse(f, [][]float64{})
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)
}

func TestInverse_InputNeverMutated(t *testing.T) {
	f := field.NewReal()
	m := [][]float64{{1, 2}, {3, 4}}
	_, err := adjugate.Inverse(f, m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m)
}
