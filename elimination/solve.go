// Package elimination: the plain Gaussian-elimination solve facade.

package elimination

import (
	"fmt"

	"github.com/katalvlaran/linsteps/field"
	"github.com/katalvlaran/linsteps/matrix"
	"github.com/katalvlaran/linsteps/trace"
)

// Solve solves A·x = b by Gaussian elimination with partial pivoting and
// back-substitution, returning a classified Solution plus the full trace.
//
// Implementation:
//   - Stage 1: Validate A square and b conformable; build the augmented
//     working copy [A|b]; record it as the opening step.
//   - Stage 2: Forward phase (no normalization): partial pivoting, swaps,
//     elimination below the diagonal; dead columns are skipped.
//   - Stage 3: Rank/consistency classification; a unique system finishes
//     with back-substitution from the last row up, one step per variable.
//
// Behavior highlights:
//   - Degenerate systems return classified Solutions with an explanatory
//     step — never an error.
//   - Pure function of its inputs; A and b are never mutated.
//
// Inputs:
//   - f: numeric adapter (field.Real or field.Exact).
//   - A: square coefficient matrix (n×n).
//   - b: constants vector of length n.
//
// Returns:
//   - SolveResult[T]: steps plus the classified solution.
//   - error         : shape sentinels wrapped with "Solve".
//
// Determinism:
//   - Fixed phase and loop orders; identical inputs replay identically.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Solve[T any](f field.Field[T], a [][]T, b []T) (SolveResult[T], error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return SolveResult[T]{}, eliminationErrorf(opSolve, err)
	}
	if err := matrix.ValidateSystem(a, b); err != nil {
		return SolveResult[T]{}, eliminationErrorf(opSolve, err)
	}

	n := len(a)
	rec := trace.NewRecorder()

	work, err := matrix.Augment(a, b)
	if err != nil {
		return SolveResult[T]{}, eliminationErrorf(opSolve, err)
	}
	s := trace.NewStep(
		"Build augmented matrix",
		fmt.Sprintf("Adjoin the constants as column %d to form [A|b]; all row operations now act on both sides at once.", n+1),
	)
	recordState(f, work, rec, s)

	// Forward phase: echelon form, no pivot normalization.
	forwardPhase(f, work, n, false, rec)

	// Classification decides unique / infinite / none.
	sol, err := classify(f, a, b, work, rec)
	if err != nil {
		return SolveResult[T]{}, eliminationErrorf(opSolve, err)
	}
	if !sol.IsUnique {
		return SolveResult[T]{Steps: rec.Steps(), Solution: sol}, nil
	}

	// Back-substitution: x[i] = (b[i] − Σ_{j>i} a[i][j]·x[j]) / a[i][i].
	x := make([]T, n)
	var (
		i, j int
		sum  T
	)
	for i = n - 1; i >= 0; i-- {
		sum = work[i][n]
		for j = i + 1; j < n; j++ {
			sum = f.Sub(sum, f.Mul(work[i][j], x[j]))
		}
		// Full coefficient rank guarantees a nonzero diagonal here.
		x[i], _ = f.Div(sum, work[i][i])

		s = trace.NewStep(
			"Back-substitute",
			fmt.Sprintf("x[%d] = (%s) ÷ (%s) = %s using the already-known variables below it.",
				i+1, f.Format(sum), f.Format(work[i][i]), f.Format(x[i])),
		)
		s.RowIndex = i
		s.HasPivot = true
		s.PivotValue = f.Float(work[i][i])
		s.PivotRat, _ = f.Rat(work[i][i])
		recordState(f, work, rec, s)
	}
	sol.Values = x

	s = trace.NewStep("Unique solution", describeSolution(f, x))
	recordState(f, work, rec, s)

	return SolveResult[T]{Steps: rec.Steps(), Solution: sol}, nil
}

// describeSolution renders the solved variables for the closing step.
func describeSolution[T any](f field.Field[T], x []T) string {
	out := "Solution: "
	for i := range x {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("x[%d] = %s", i+1, f.Format(x[i]))
	}

	return out
}
