// Package elimination: shared phase kernels for the solve/determinant
// facades. Everything here operates on engine-owned working copies; caller
// input is never touched.

package elimination

import (
	"fmt"

	"github.com/katalvlaran/linsteps/field"
	"github.com/katalvlaran/linsteps/matrix"
	"github.com/katalvlaran/linsteps/trace"
)

// findPivot returns the row index in [from, len(m)) whose entry in col has
// the greatest magnitude — partial pivoting. Ties keep the lowest row.
// Determinism: fixed top-down scan.
// Complexity: O(rows).
func findPivot[T any](f field.Field[T], m [][]T, col, from int) int {
	best := from
	bestAbs := f.Abs(m[from][col])
	var cand T
	for r := from + 1; r < len(m); r++ {
		cand = f.Abs(m[r][col])
		if f.Less(bestAbs, cand) {
			best, bestAbs = r, cand
		}
	}

	return best
}

// recordState appends a step with a fresh snapshot of work.
func recordState[T any](f field.Field[T], work [][]T, rec *trace.Recorder, s trace.Step) {
	s.Matrix, s.RatMatrix = trace.Snapshot(f, work)
	rec.Add(s)
}

// forwardPhase reduces work to row-echelon form over its first width
// columns: for each pivot column, partial-pivot swap, optional pivot-row
// normalization (Gauss–Jordan), then elimination below. A dead pivot column
// (all zero at or below the diagonal) is recorded and skipped — the final
// rank analysis decides what it means.
//
// Returns the number of row swaps performed (each flips the determinant
// sign) — callers tracking parity need it; solvers may ignore it.
//
// Determinism:
//   - Fixed column order; fixed top-down elimination; pivot ties keep the
//     lowest row.
//
// Complexity:
//   - Time O(n²·width), Space O(n·width) per recorded snapshot.
func forwardPhase[T any](f field.Field[T], work [][]T, width int, normalize bool, rec *trace.Recorder) int {
	n := len(work)
	swaps := 0

	var (
		col, p, r     int
		pivot, factor T
		s             trace.Step
	)
	for col = 0; col < width && col < n; col++ {
		// Partial pivoting: greatest magnitude at or below the diagonal.
		p = findPivot(f, work, col, col)
		if f.IsZero(work[p][col]) {
			s = trace.NewStep(
				"Dead pivot column",
				fmt.Sprintf("Column %d has no usable pivot at or below row %d; elimination skips it and a later column may still pivot.", col+1, col+1),
			)
			s.RowIndex = col
			recordState(f, work, rec, s)
			continue
		}

		// Swap the pivot row into position (sign flip for determinants).
		if p != col {
			matrix.SwapRows(work, col, p)
			swaps++
			s = trace.NewStep(
				"Swap rows",
				fmt.Sprintf("Partial pivoting: |a[%d][%d]| = %s is the largest candidate in column %d, swap it onto the diagonal.",
					p+1, col+1, f.Format(f.Abs(work[col][col])), col+1),
			)
			s.Operation = fmt.Sprintf("R%d ↔ R%d", col+1, p+1)
			s.RowIndex = col
			s.HasPivot = true
			s.PivotValue = f.Float(work[col][col])
			s.PivotRat, _ = f.Rat(work[col][col])
			recordState(f, work, rec, s)
		}
		pivot = work[col][col]

		// Gauss–Jordan: normalize the pivot row so the diagonal becomes 1.
		if normalize {
			// Pivot verified nonzero above; Div cannot fail here.
			factor, _ = f.Div(f.One(), pivot)
			matrix.ScaleRow(f, work, col, factor)
			s = trace.NewStep(
				"Normalize pivot row",
				fmt.Sprintf("Divide row %d by its pivot %s so the diagonal entry becomes exactly 1.", col+1, f.Format(pivot)),
			)
			s.Operation = fmt.Sprintf("R%d ← R%d ÷ (%s)", col+1, col+1, f.Format(pivot))
			s.RowIndex = col
			s.HasPivot = true
			s.PivotValue = f.Float(pivot)
			s.PivotRat, _ = f.Rat(pivot)
			recordState(f, work, rec, s)
			pivot = work[col][col] // now exactly 1
		}

		// Eliminate the pivot column below the diagonal.
		for r = col + 1; r < n; r++ {
			if f.IsZero(work[r][col]) {
				continue // already clear
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

	return swaps
}

// backwardPhase (Gauss–Jordan only) eliminates above each live pivot from
// the last column to the first, completing the reduction to reduced
// row-echelon form. Assumes forwardPhase ran with normalize=true, so every
// live diagonal entry is exactly 1.
// Complexity: O(n²·width).
func backwardPhase[T any](f field.Field[T], work [][]T, width int, rec *trace.Recorder) {
	n := len(work)

	var (
		col, r int
		factor T
		s      trace.Step
	)
	for col = min(width, n) - 1; col >= 0; col-- {
		if f.IsZero(work[col][col]) {
			continue // dead column, nothing to clear against
		}
		for r = col - 1; r >= 0; r-- {
			if f.IsZero(work[r][col]) {
				continue
			}
			factor = work[r][col] // pivot is 1, the factor is the entry itself
			matrix.AddScaledRow(f, work, r, col, f.Neg(factor))
			s = trace.NewStep(
				"Eliminate above pivot",
				fmt.Sprintf("Backward phase: clear a[%d][%d] by subtracting %s times row %d from row %d.",
					r+1, col+1, f.Format(factor), col+1, r+1),
			)
			s.Operation = fmt.Sprintf("R%d ← R%d − (%s)·R%d", r+1, r+1, f.Format(factor), col+1)
			s.RowIndex = r
			s.HasPivot = true
			s.PivotValue = f.Float(work[col][col])
			s.PivotRat, _ = f.Rat(work[col][col])
			recordState(f, work, rec, s)
		}
	}
}

// classify runs the rank/consistency analysis both solve paths share:
// rank([A|b]) > rank(A) → inconsistent; rank(A) < n → underdetermined;
// otherwise uniquely determined (Values left for the caller to fill).
// The echelon form in work is scanned for the offending "0 = c" row so the
// inconsistency step can point at it.
func classify[T any](f field.Field[T], a [][]T, b []T, work [][]T, rec *trace.Recorder) (Solution[T], error) {
	n := len(a)

	rankA, err := matrix.Rank(f, a)
	if err != nil {
		return Solution[T]{}, err
	}
	aug, err := matrix.Augment(a, b)
	if err != nil {
		return Solution[T]{}, err
	}
	rankAug, err := matrix.Rank(f, aug)
	if err != nil {
		return Solution[T]{}, err
	}

	if rankAug > rankA {
		// Point at a zero coefficient row demanding a nonzero constant.
		desc := fmt.Sprintf("Rank of [A|b] (%d) exceeds rank of A (%d): the system is inconsistent and has no solution.", rankAug, rankA)
		s := trace.NewStep("No solution", desc)
		for i := 0; i < n; i++ {
			if matrix.ZerosInRow(f, work, i, n) == n && !f.IsZero(work[i][n]) {
				s.Description = fmt.Sprintf("Row %d reduced to 0 = %s, a contradiction: the system is inconsistent and has no solution.",
					i+1, f.Format(work[i][n]))
				s.RowIndex = i
				break
			}
		}
		recordState(f, work, rec, s)

		return Solution[T]{HasNoSolution: true}, nil
	}

	if rankA < n {
		s := trace.NewStep(
			"Infinitely many solutions",
			fmt.Sprintf("Coefficient rank %d is below the %d unknowns and the system is consistent: infinitely many solutions.", rankA, n),
		)
		recordState(f, work, rec, s)

		return Solution[T]{HasInfiniteSolutions: true}, nil
	}

	return Solution[T]{IsUnique: true}, nil
}
