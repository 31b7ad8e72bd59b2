package cramer

import (
	"fmt"

	"github.com/katalvlaran/linsteps/cofactor"
	"github.com/katalvlaran/linsteps/field"
	"github.com/katalvlaran/linsteps/matrix"
	"github.com/katalvlaran/linsteps/trace"
)

// Solve solves A·x = b by Cramer's rule: xᵢ = det(Aᵢ) / det(A), where Aᵢ
// is A with column i replaced by b.
//
// Implementation:
//   - Stage 1: Validate A square and b conformable; record [A|b].
//   - Stage 2: det(A) by cofactor expansion; the expansion's own trace is
//     merged in, relabeled and indented one level below the announcement.
//   - Stage 3: det(A) = 0 → rank analysis classifies the system (no
//     solution vs infinitely many) and the run ends. Same analysis as the
//     elimination solvers, so all solvers agree on degenerate inputs.
//   - Stage 4: Per variable, substitute b into column i, expand det(Aᵢ)
//     (merged sub-trace again) and record the ratio xᵢ = det(Aᵢ)/det(A).
//
// Inputs:
//   - f: numeric adapter (field.Real or field.Exact).
//   - A: square coefficient matrix (n×n).
//   - b: constants vector of length n.
//
// Returns:
//   - Result[T]: steps, det(A), values and the classification flags.
//   - error    : shape sentinels wrapped with "Solve".
//
// Determinism:
//   - Fixed variable order; identical inputs replay identically.
//
// Complexity:
//   - Time O((n+1)·n!), Space O(n²) per snapshot. Small systems only.
func Solve[T any](f field.Field[T], a [][]T, b []T) (Result[T], error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return Result[T]{}, cramerErrorf(opSolve, err)
	}
	if err := matrix.ValidateSystem(a, b); err != nil {
		return Result[T]{}, cramerErrorf(opSolve, err)
	}

	n := len(a)
	rec := trace.NewRecorder()

	aug, err := matrix.Augment(a, b)
	if err != nil {
		return Result[T]{}, cramerErrorf(opSolve, err)
	}
	s := trace.NewStep(
		"Apply Cramer's rule",
		fmt.Sprintf("Each of the %d unknowns is a ratio of determinants: x[i] = det(A with column i replaced by b) ÷ det(A).", n),
	)
	s.Matrix, s.RatMatrix = trace.Snapshot(f, aug)
	rec.Add(s)

	// det(A): the shared denominator. The expansion trace nests below.
	s = trace.NewStep(
		"Expand det(A)",
		"Compute the denominator det(A) by cofactor expansion.",
	)
	s.Matrix, s.RatMatrix = trace.Snapshot(f, a)
	rec.Add(s)

	detRes, err := cofactor.Determinant(f, a)
	if err != nil {
		return Result[T]{}, cramerErrorf(opSolve, err)
	}
	rec.Merge(detRes.Steps)
	det := detRes.Determinant

	if f.IsZero(det) {
		return classifySingular(f, a, b, aug, det, rec)
	}

	x := make([]T, n)
	var (
		i  int
		di T
	)
	for i = 0; i < n; i++ {
		ai, err := matrix.ReplaceColumn(a, i, b)
		if err != nil {
			return Result[T]{}, cramerErrorf(opSolve, err)
		}
		s = trace.NewStep(
			fmt.Sprintf("Substitute b into column %d", i+1),
			fmt.Sprintf("Build A%d by replacing column %d of A with the constants, then expand its determinant.", i+1, i+1),
		)
		s.ExcludedCol = i
		s.Matrix, s.RatMatrix = trace.Snapshot(f, ai)
		rec.Add(s)

		sub, err := cofactor.Determinant(f, ai)
		if err != nil {
			return Result[T]{}, cramerErrorf(opSolve, err)
		}
		rec.Merge(sub.Steps)
		di = sub.Determinant

		// det verified nonzero above; Div cannot fail here.
		x[i], _ = f.Div(di, det)
		s = trace.NewStep(
			fmt.Sprintf("Solve for x[%d]", i+1),
			fmt.Sprintf("x[%d] = det(A%d) ÷ det(A) = (%s) ÷ (%s) = %s.",
				i+1, i+1, f.Format(di), f.Format(det), f.Format(x[i])),
		)
		s.HasPivot = true
		s.PivotValue = f.Float(x[i])
		s.PivotRat, _ = f.Rat(x[i])
		s.Matrix, s.RatMatrix = trace.Snapshot(f, ai)
		rec.Add(s)
	}

	s = trace.NewStep("Unique solution", describeSolution(f, x))
	s.Matrix, s.RatMatrix = trace.Snapshot(f, aug)
	rec.Add(s)

	return Result[T]{Steps: rec.Steps(), Determinant: det, Values: x, IsUnique: true}, nil
}

// classifySingular handles det(A) = 0: rank([A|b]) > rank(A) means the
// system is inconsistent, otherwise it is consistent but underdetermined.
func classifySingular[T any](f field.Field[T], a [][]T, b []T, aug [][]T, det T, rec *trace.Recorder) (Result[T], error) {
	rankA, err := matrix.Rank(f, a)
	if err != nil {
		return Result[T]{}, cramerErrorf(opSolve, err)
	}
	rankAug, err := matrix.Rank(f, aug)
	if err != nil {
		return Result[T]{}, cramerErrorf(opSolve, err)
	}

	res := Result[T]{Determinant: det}
	var s trace.Step
	if rankAug > rankA {
		res.HasNoSolution = true
		s = trace.NewStep(
			"No solution",
			fmt.Sprintf("det(A) = 0 and rank of [A|b] (%d) exceeds rank of A (%d): the system is inconsistent.", rankAug, rankA),
		)
	} else {
		res.HasInfiniteSolutions = true
		s = trace.NewStep(
			"Infinitely many solutions",
			fmt.Sprintf("det(A) = 0 but the ranks agree (%d): the system is consistent and underdetermined.", rankA),
		)
	}
	s.Matrix, s.RatMatrix = trace.Snapshot(f, aug)
	rec.Add(s)
	res.Steps = rec.Steps()

	return res, nil
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
