// Package cofactor: the instrumented Laplace expansion engine.

package cofactor

import (
	"fmt"

	"github.com/katalvlaran/linsteps/field"
	"github.com/katalvlaran/linsteps/matrix"
	"github.com/katalvlaran/linsteps/trace"
)

const opDeterminant = "Determinant"

// cofactorErrorf wraps err with an operation tag, preserving the original
// error via %w. Call only with err != nil.
func cofactorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Determinant computes det(m) by cofactor expansion with a full step trace.
//
// Implementation:
//   - Stage 1: Validate m square (ErrNonSquare et al. from matrix validators).
//   - Stage 2: Recursively expand on a cloned working copy, appending one
//     step per decision into a fresh per-invocation recorder.
//   - Stage 3: Re-derive the top-level expansion formula via the traceless
//     recursion and assemble the Result.
//
// Behavior highlights:
//   - Pure function of its inputs: the input matrix is never mutated and no
//     state crosses invocations, so independent concurrent calls are safe.
//   - Axis choice, skipped zero terms, minor extractions, signed cofactor
//     contributions and the final sum are all individually recorded.
//
// Inputs:
//   - f: numeric adapter (field.Real or field.Exact).
//   - m: square matrix, n ≥ 1.
//
// Returns:
//   - Result[T]: steps, determinant and the top-level expansion formula.
//   - error    : shape sentinels wrapped with "Determinant".
//
// Determinism:
//   - Fixed scan orders everywhere; identical inputs replay identically.
//
// Complexity:
//   - Time O(n!) worst case (zero skipping prunes aggressively), recursion
//     depth ≤ n, Space O(n²) per recursion level for minors and snapshots.
func Determinant[T any](f field.Field[T], m [][]T) (Result[T], error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return Result[T]{}, cofactorErrorf(opDeterminant, err)
	}

	rec := trace.NewRecorder()
	det, err := expand(f, matrix.Clone(m), rec)
	if err != nil {
		return Result[T]{}, cofactorErrorf(opDeterminant, err)
	}

	return Result[T]{
		Steps:            rec.Steps(),
		Determinant:      det,
		ExpansionFormula: formula(f, m, det),
	}, nil
}

// selectAxis scans every row and then every column of m, counting zero
// entries under the field's zero policy, and returns the axis with the
// strictly greatest count. Rows are checked before columns and the lower
// index wins ties within the same type, so a full zero row always beats any
// column with fewer zeros.
// Complexity: O(n²).
func selectAxis[T any](f field.Field[T], m [][]T) (Axis, int, int) {
	axis, index, zeros := AxisRow, 0, matrix.ZerosInRow(f, m, 0, -1)

	var i, count int
	for i = 1; i < len(m); i++ {
		if count = matrix.ZerosInRow(f, m, i, -1); count > zeros {
			axis, index, zeros = AxisRow, i, count
		}
	}
	for i = 0; i < len(m[0]); i++ {
		if count = matrix.ZerosInCol(f, m, i); count > zeros {
			axis, index, zeros = AxisCol, i, count
		}
	}

	return axis, index, zeros
}

// expand is the recursive engine body: terminal formulas for 1×1 and 2×2,
// zero-maximizing axis expansion for n ≥ 3. Steps are appended to rec at the
// recorder's current level; recursive sub-expansions run one level deeper.
func expand[T any](f field.Field[T], m [][]T, rec *trace.Recorder) (T, error) {
	n := len(m)
	fm, rm := trace.Snapshot(f, m)

	// Base case 1×1: the determinant is the single entry.
	if n == 1 {
		s := trace.NewStep(
			"1×1 determinant",
			fmt.Sprintf("The determinant of a 1×1 matrix is its single entry: det = %s.", f.Format(m[0][0])),
		)
		s.Matrix, s.RatMatrix = fm, rm
		rec.Add(s)

		return m[0][0], nil
	}

	// Base case 2×2: det = a·d − b·c as one terminal step.
	if n == 2 {
		ad := f.Mul(m[0][0], m[1][1])
		bc := f.Mul(m[0][1], m[1][0])
		det := f.Sub(ad, bc)
		s := trace.NewStep(
			"2×2 determinant",
			fmt.Sprintf("det = %s·%s − %s·%s = %s",
				f.Format(m[0][0]), f.Format(m[1][1]), f.Format(m[0][1]), f.Format(m[1][0]), f.Format(det)),
		)
		s.Matrix, s.RatMatrix = fm, rm
		rec.Add(s)

		return det, nil
	}

	// Axis selection: the row or column with the most zeros wins.
	axis, index, zeros := selectAxis(f, m)
	s := trace.NewStep(
		"Choose expansion axis",
		fmt.Sprintf("Expand along %s %d: it carries %d zero entr%s, each of which skips an entire sub-determinant.",
			axis, index+1, zeros, plural(zeros, "y", "ies")),
	)
	s.Matrix, s.RatMatrix = fm, rm
	s.Operation = fmt.Sprintf("expand along %s %d", axis, index+1)
	rec.Add(s)

	sum := f.Zero()
	var (
		t, row, col int
		entry, sub  T
		err         error
	)
	for t = 0; t < n; t++ {
		// Resolve the (row, col) of the t-th term along the chosen axis.
		if axis == AxisRow {
			row, col = index, t
		} else {
			row, col = t, index
		}
		entry = m[row][col]

		// Zero terms contribute nothing; skip without building the minor.
		if f.IsZero(entry) {
			s = trace.NewStep(
				"Skip zero term",
				fmt.Sprintf("a[%d][%d] = %s is zero, so the term contributes nothing and its minor is never computed.",
					row+1, col+1, f.Format(entry)),
			)
			s.Matrix, s.RatMatrix = fm, rm
			s.ExcludedRow, s.ExcludedCol = row, col
			rec.Add(s)
			continue
		}

		// Extract the minor: delete this term's row and column.
		sub2, mErr := matrix.Minor(m, row, col)
		if mErr != nil {
			return f.Zero(), mErr
		}
		s = trace.NewStep(
			"Extract minor",
			fmt.Sprintf("Strike out row %d and column %d to form the %d×%d minor of a[%d][%d] = %s.",
				row+1, col+1, n-1, n-1, row+1, col+1, f.Format(entry)),
		)
		s.Matrix, s.RatMatrix = fm, rm
		s.ExcludedRow, s.ExcludedCol = row, col
		rec.Add(s)

		// Recurse into the minor one level deeper; the sub-expansion picks
		// its own optimal axis.
		rec.Descend()
		sub, err = expand(f, sub2, rec)
		rec.Ascend()
		if err != nil {
			return f.Zero(), err
		}

		// Signed contribution: (−1)^(row+col) · entry · det(minor).
		contribution := f.Mul(entry, sub)
		signGlyph := "+"
		if (row+col)%2 == 1 {
			contribution = f.Neg(contribution)
			signGlyph = "−"
		}
		sum = f.Add(sum, contribution)

		s = trace.NewStep(
			"Add cofactor term",
			fmt.Sprintf("Cofactor sign (−1)^(%d+%d) = %s1, so the term is %s(%s)·(%s) = %s; running total %s.",
				row+1, col+1, signGlyph, signGlyph, f.Format(entry), f.Format(sub),
				f.Format(contribution), f.Format(sum)),
		)
		s.Matrix, s.RatMatrix = fm, rm
		s.ExcludedRow, s.ExcludedCol = row, col
		s.HasPivot = true
		s.PivotValue = f.Float(entry)
		s.PivotRat, _ = f.Rat(entry)
		rec.Add(s)
	}

	// Final summation step for this expansion level.
	s = trace.NewStep(
		"Sum expansion terms",
		fmt.Sprintf("All terms along %s %d are in: det = %s.", axis, index+1, f.Format(sum)),
	)
	s.Matrix, s.RatMatrix = fm, rm
	rec.Add(s)

	return sum, nil
}

// Det computes det(m) with the same axis-selection policy but without any
// trace — the step-free inner recursion the expansion formula and the other
// engines (adjugate, cramer) lean on when only the value matters.
//
// Returns:
//   - T    : the determinant.
//   - error: shape sentinels wrapped with "Determinant".
//
// Complexity: as Determinant, minus all snapshot work.
func Det[T any](f field.Field[T], m [][]T) (T, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		var zero T
		return zero, cofactorErrorf(opDeterminant, err)
	}

	return det(f, m), nil
}

// det is the unvalidated recursive core of Det.
func det[T any](f field.Field[T], m [][]T) T {
	n := len(m)
	if n == 1 {
		return m[0][0]
	}
	if n == 2 {
		return f.Sub(f.Mul(m[0][0], m[1][1]), f.Mul(m[0][1], m[1][0]))
	}

	axis, index, _ := selectAxis(f, m)
	sum := f.Zero()
	var t, row, col int
	var entry T
	for t = 0; t < n; t++ {
		if axis == AxisRow {
			row, col = index, t
		} else {
			row, col = t, index
		}
		entry = m[row][col]
		if f.IsZero(entry) {
			continue
		}
		// Minor indices are in range by construction.
		sub, _ := matrix.Minor(m, row, col)
		contribution := f.Mul(entry, det(f, sub))
		if (row+col)%2 == 1 {
			contribution = f.Neg(contribution)
		}
		sum = f.Add(sum, contribution)
	}

	return sum
}

// plural picks the singular or plural suffix for a count.
func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}
