// Package elimination: the elimination-determinant facade.

package elimination

import (
	"fmt"

	"github.com/katalvlaran/linsteps/field"
	"github.com/katalvlaran/linsteps/matrix"
	"github.com/katalvlaran/linsteps/trace"
)

// Determinant computes det(m) by forward elimination: reduce to upper
// triangular form with partial pivoting, multiply the diagonal, and flip
// the sign once per row swap.
//
// Implementation:
//   - Stage 1: Validate m square; clone into a working copy; record it.
//   - Stage 2: For each pivot column, partial-pivot swap (counting swaps)
//     and eliminate below. A dead pivot column means the matrix is
//     singular: the determinant is 0 and the run stops immediately.
//   - Stage 3: Multiply the diagonal entries and apply the swap parity.
//
// Inputs:
//   - f: numeric adapter (field.Real or field.Exact).
//   - m: square matrix (n×n).
//
// Returns:
//   - DetResult[T]: steps, determinant value and the Singular flag.
//   - error       : shape sentinels wrapped with "Determinant".
//
// Determinism:
//   - Fixed column order; pivot ties keep the lowest row.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Determinant[T any](f field.Field[T], m [][]T) (DetResult[T], error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return DetResult[T]{}, eliminationErrorf(opDeterminant, err)
	}

	n := len(m)
	rec := trace.NewRecorder()
	work := matrix.Clone(m)

	s := trace.NewStep(
		"Start elimination",
		"Reduce to upper triangular form; the determinant is the diagonal product, sign-flipped once per row swap.",
	)
	recordState(f, work, rec, s)

	var (
		col, p, r     int
		pivot, factor T
		swaps         int
	)
	for col = 0; col < n; col++ {
		p = findPivot(f, work, col, col)
		if f.IsZero(work[p][col]) {
			// Singular: a whole pivot column is dead, det = 0, stop now.
			s = trace.NewStep(
				"Singular matrix",
				fmt.Sprintf("Column %d has no nonzero pivot at or below row %d: the determinant is 0.", col+1, col+1),
			)
			s.RowIndex = col
			recordState(f, work, rec, s)

			return DetResult[T]{Steps: rec.Steps(), Determinant: f.Zero(), Singular: true}, nil
		}

		if p != col {
			matrix.SwapRows(work, col, p)
			swaps++
			s = trace.NewStep(
				"Swap rows",
				fmt.Sprintf("Partial pivoting: bring the largest entry of column %d onto the diagonal; each swap flips the determinant's sign.", col+1),
			)
			s.Operation = fmt.Sprintf("R%d ↔ R%d", col+1, p+1)
			s.RowIndex = col
			s.HasPivot = true
			s.PivotValue = f.Float(work[col][col])
			s.PivotRat, _ = f.Rat(work[col][col])
			recordState(f, work, rec, s)
		}

		pivot = work[col][col]
		for r = col + 1; r < n; r++ {
			if f.IsZero(work[r][col]) {
				continue
			}
			factor, _ = f.Div(work[r][col], pivot)
			matrix.AddScaledRow(f, work, r, col, f.Neg(factor))
			s = trace.NewStep(
				"Eliminate below pivot",
				fmt.Sprintf("Clear a[%d][%d] by subtracting %s times row %d from row %d.",
					r+1, col+1, f.Format(factor), col+1, r+1),
			)
			s.Operation = fmt.Sprintf("R%d ← R%d − (%s)·R%d", r+1, r+1, f.Format(factor), col+1)
			s.RowIndex = r
			s.HasPivot = true
			s.PivotValue = f.Float(pivot)
			s.PivotRat, _ = f.Rat(pivot)
			recordState(f, work, rec, s)
		}
	}

	// Diagonal product with swap parity.
	det := f.One()
	for col = 0; col < n; col++ {
		det = f.Mul(det, work[col][col])
	}
	parity := ""
	if swaps%2 == 1 {
		det = f.Neg(det)
		parity = fmt.Sprintf(" (sign flipped: %d swap(s))", swaps)
	}

	s = trace.NewStep(
		"Multiply the diagonal",
		fmt.Sprintf("det = product of the diagonal entries%s = %s.", parity, f.Format(det)),
	)
	recordState(f, work, rec, s)

	return DetResult[T]{Steps: rec.Steps(), Determinant: det, Singular: f.IsZero(det)}, nil
}
