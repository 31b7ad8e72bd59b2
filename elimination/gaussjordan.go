// Package elimination: the Gauss–Jordan solve facade.

package elimination

import (
	"fmt"

	"github.com/katalvlaran/linsteps/field"
	"github.com/katalvlaran/linsteps/matrix"
	"github.com/katalvlaran/linsteps/trace"
)

// SolveGaussJordan solves A·x = b by full Gauss–Jordan reduction: forward
// phase with pivot-row normalization, then a backward phase eliminating
// above every pivot, leaving the reduced row-echelon form whose augmented
// column holds the solution directly.
//
// Implementation:
//   - Stage 1: Validate A square and b conformable; build [A|b]; record it.
//   - Stage 2: Forward phase with normalization (diagonal pivots become
//     exactly 1); dead pivot columns are skipped, not fatal — the shared
//     rank/consistency analysis classifies the run afterwards, so an
//     underdetermined consistent system is reported as such rather than
//     as unsolvable.
//   - Stage 3: For a unique system, backward phase to RREF and read x off
//     the augmented column.
//
// Inputs:
//   - f: numeric adapter (field.Real or field.Exact).
//   - A: square coefficient matrix (n×n).
//   - b: constants vector of length n.
//
// Returns:
//   - SolveResult[T]: steps plus the classified solution.
//   - error         : shape sentinels wrapped with "SolveGaussJordan".
//
// Determinism:
//   - Fixed phase and loop orders; identical inputs replay identically.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func SolveGaussJordan[T any](f field.Field[T], a [][]T, b []T) (SolveResult[T], error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return SolveResult[T]{}, eliminationErrorf(opGaussJordan, err)
	}
	if err := matrix.ValidateSystem(a, b); err != nil {
		return SolveResult[T]{}, eliminationErrorf(opGaussJordan, err)
	}

	n := len(a)
	rec := trace.NewRecorder()

	work, err := matrix.Augment(a, b)
	if err != nil {
		return SolveResult[T]{}, eliminationErrorf(opGaussJordan, err)
	}
	s := trace.NewStep(
		"Build augmented matrix",
		fmt.Sprintf("Adjoin the constants as column %d to form [A|b]; Gauss–Jordan will reduce A all the way to the identity.", n+1),
	)
	recordState(f, work, rec, s)

	// Forward phase with normalization: live diagonals become exactly 1.
	forwardPhase(f, work, n, true, rec)

	// Classification decides unique / infinite / none before the backward
	// phase — no point polishing a degenerate echelon form.
	sol, err := classify(f, a, b, work, rec)
	if err != nil {
		return SolveResult[T]{}, eliminationErrorf(opGaussJordan, err)
	}
	if !sol.IsUnique {
		return SolveResult[T]{Steps: rec.Steps(), Solution: sol}, nil
	}

	// Backward phase: eliminate above every pivot → reduced row-echelon form.
	backwardPhase(f, work, n, rec)

	// The augmented column now holds the solution directly.
	x := make([]T, n)
	for i := 0; i < n; i++ {
		x[i] = work[i][n]
	}
	sol.Values = x

	s = trace.NewStep(
		"Read off solution",
		"A is reduced to the identity; the augmented column is the solution. "+describeSolution(f, x),
	)
	recordState(f, work, rec, s)

	return SolveResult[T]{Steps: rec.Steps(), Solution: sol}, nil
}
