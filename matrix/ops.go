// SPDX-License-Identifier: MIT
// Package matrix: generic dense kernels shared by every engine.
// All kernels use the central validators and return plain sentinels or wrap
// them with an operation tag at the facade, mirroring one uniform
// "Op: underlying" error shape across the package.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/linsteps/field"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul        = "Mul"
	opMatVec     = "MatVec"
	opAugment    = "Augment"
	opMinor      = "Minor"
	opReplaceCol = "ReplaceColumn"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is/As still match. Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Clone returns a deep copy of m: fresh outer slice, fresh rows. Mutating
// the clone can never change the original — this is the invariant every
// step snapshot and every recursive minor relies on.
// Complexity: O(r·c) time and space.
func Clone[T any](m [][]T) [][]T {
	out := make([][]T, len(m))
	for i := range m {
		out[i] = make([]T, len(m[i]))
		copy(out[i], m[i])
	}

	return out
}

// CloneVec returns a deep copy of v.
// Complexity: O(n).
func CloneVec[T any](v []T) []T {
	out := make([]T, len(v))
	copy(out, v)

	return out
}

// SwapRows exchanges rows i and j of m in place. Applied only to
// engine-owned working copies; never to caller input.
// Complexity: O(1) (slice headers swap).
func SwapRows[T any](m [][]T, i, j int) {
	m[i], m[j] = m[j], m[i]
}

// ScaleRow multiplies every entry of m[row] by alpha in place.
// Determinism: fixed left-to-right order.
// Complexity: O(c).
func ScaleRow[T any](f field.Field[T], m [][]T, row int, alpha T) {
	for j := range m[row] {
		m[row][j] = f.Mul(m[row][j], alpha)
	}
}

// AddScaledRow performs m[dst] ← m[dst] + alpha·m[src] in place — the
// elimination engines' only mutation besides swaps and normalization.
// Determinism: fixed left-to-right order.
// Complexity: O(c).
func AddScaledRow[T any](f field.Field[T], m [][]T, dst, src int, alpha T) {
	for j := range m[dst] {
		m[dst][j] = f.Add(m[dst][j], f.Mul(alpha, m[src][j]))
	}
}

// Minor returns the submatrix of m with row and col deleted, as a fresh
// sliced copy: each recursive cofactor call owns its own matrix value, so
// no row/column aliasing ever crosses call boundaries.
//
// Implementation:
//   - Stage 1: Validate m rectangular and (row, col) in bounds.
//   - Stage 2: Copy every surviving entry in fixed i→j order.
//
// Returns:
//   - [][]T: the (r−1)×(c−1) minor.
//   - error: ErrEmptyMatrix / ErrRaggedMatrix / ErrOutOfRange, tagged "Minor".
//
// Complexity:
//   - Time O(r·c), Space O(r·c).
func Minor[T any](m [][]T, row, col int) ([][]T, error) {
	if err := ValidateRectangular(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if row < 0 || row >= len(m) || col < 0 || col >= len(m[0]) {
		return nil, matrixErrorf(opMinor, ErrOutOfRange)
	}

	out := make([][]T, 0, len(m)-1)
	var i, j int
	for i = 0; i < len(m); i++ {
		if i == row {
			continue // struck-out row
		}
		line := make([]T, 0, len(m[i])-1)
		for j = 0; j < len(m[i]); j++ {
			if j == col {
				continue // struck-out column
			}
			line = append(line, m[i][j])
		}
		out = append(out, line)
	}

	return out, nil
}

// Augment builds the augmented matrix [A|b] as a fresh copy.
//
// Returns:
//   - [][]T: n×(c+1) matrix with b as the final column.
//   - error: shape sentinels from ValidateSystem, tagged "Augment".
//
// Complexity:
//   - Time O(r·c), Space O(r·c).
func Augment[T any](a [][]T, b []T) ([][]T, error) {
	if err := ValidateSystem(a, b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	out := make([][]T, len(a))
	for i := range a {
		row := make([]T, len(a[i])+1)
		copy(row, a[i])
		row[len(a[i])] = b[i]
		out[i] = row
	}

	return out, nil
}

// ReplaceColumn returns a fresh copy of m with column col replaced by v —
// the substitution at the heart of Cramer's rule.
//
// Returns:
//   - [][]T: the substituted matrix, same shape as m.
//   - error: shape sentinels, ErrOutOfRange for a bad column index, or
//     ErrDimensionMismatch when len(v) differs from the row count, all
//     tagged "ReplaceColumn".
//
// Complexity:
//   - Time O(r·c), Space O(r·c).
func ReplaceColumn[T any](m [][]T, col int, v []T) ([][]T, error) {
	if err := ValidateRectangular(m); err != nil {
		return nil, matrixErrorf(opReplaceCol, err)
	}
	if col < 0 || col >= len(m[0]) {
		return nil, matrixErrorf(opReplaceCol, ErrOutOfRange)
	}
	if len(v) != len(m) {
		return nil, matrixErrorf(opReplaceCol, ErrDimensionMismatch)
	}

	out := Clone(m)
	for i := range out {
		out[i][col] = v[i]
	}

	return out, nil
}

// SplitAugmented separates an augmented matrix [A|b] back into fresh copies
// of A and b. The inverse of Augment; assumes at least two columns.
// Complexity: O(r·c).
func SplitAugmented[T any](m [][]T) ([][]T, []T) {
	a := make([][]T, len(m))
	b := make([]T, len(m))
	for i := range m {
		w := len(m[i]) - 1
		a[i] = make([]T, w)
		copy(a[i], m[i][:w])
		b[i] = m[i][w]
	}

	return a, b
}

// Identity returns the n×n identity matrix over f.
// Complexity: O(n²).
func Identity[T any](f field.Field[T], n int) [][]T {
	out := make([][]T, n)
	var i, j int
	for i = 0; i < n; i++ {
		out[i] = make([]T, n)
		for j = 0; j < n; j++ {
			if i == j {
				out[i][j] = f.One()
			} else {
				out[i][j] = f.Zero()
			}
		}
	}

	return out
}

// OfInts embeds an integer matrix into the field — the usual way tests and
// examples build inputs for either adapter from one literal.
// Complexity: O(r·c).
func OfInts[T any](f field.Field[T], rows [][]int64) [][]T {
	out := make([][]T, len(rows))
	for i := range rows {
		out[i] = make([]T, len(rows[i]))
		for j := range rows[i] {
			out[i][j] = f.FromInt(rows[i][j])
		}
	}

	return out
}

// VecOfInts embeds an integer vector into the field.
// Complexity: O(n).
func VecOfInts[T any](f field.Field[T], v []int64) []T {
	out := make([]T, len(v))
	for i := range v {
		out[i] = f.FromInt(v[i])
	}

	return out
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A and B rectangular and inner dimensions match
//     (A.Cols == B.Rows).
//   - Stage 2: Fixed i→j→k triple loop, skipping zero A[i,k] terms.
//
// Returns:
//   - [][]T: fresh (r×c) product.
//   - error: shape sentinels tagged "Mul".
//
// Determinism:
//   - Fixed loop order; zero-skip depends only on the field's zero policy.
//
// Complexity:
//   - Time O(r·n·c), Space O(r·c).
func Mul[T any](f field.Field[T], a, b [][]T) ([][]T, error) {
	if err := ValidateRectangular(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateRectangular(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if len(a[0]) != len(b) {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	rows, inner, cols := len(a), len(b), len(b[0])
	out := make([][]T, rows)
	var i, j, k int
	var acc T
	for i = 0; i < rows; i++ {
		out[i] = make([]T, cols)
		for j = 0; j < cols; j++ {
			acc = f.Zero()
			for k = 0; k < inner; k++ {
				if f.IsZero(a[i][k]) {
					continue // skip zero for performance
				}
				acc = f.Add(acc, f.Mul(a[i][k], b[k][j]))
			}
			out[i][j] = acc
		}
	}

	return out, nil
}

// MatVec computes y = m · x for a column vector x.
//
// Returns:
//   - []T  : fresh result of length rows.
//   - error: shape sentinels tagged "MatVec".
//
// Complexity:
//   - Time O(r·c), Space O(r).
func MatVec[T any](f field.Field[T], m [][]T, x []T) ([]T, error) {
	if err := ValidateRectangular(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if len(x) != len(m[0]) {
		return nil, matrixErrorf(opMatVec, ErrDimensionMismatch)
	}

	y := make([]T, len(m))
	var i, j int
	var acc T
	for i = 0; i < len(m); i++ {
		acc = f.Zero()
		for j = 0; j < len(m[i]); j++ {
			acc = f.Add(acc, f.Mul(m[i][j], x[j]))
		}
		y[i] = acc
	}

	return y, nil
}

// Transpose returns mᵀ as a fresh matrix. Assumes rectangular input
// (engine-internal use after validation).
// Complexity: O(r·c).
func Transpose[T any](m [][]T) [][]T {
	if len(m) == 0 {
		return nil
	}
	out := make([][]T, len(m[0]))
	var i, j int
	for j = 0; j < len(m[0]); j++ {
		out[j] = make([]T, len(m))
		for i = 0; i < len(m); i++ {
			out[j][i] = m[i][j]
		}
	}

	return out
}

// ZerosInRow counts zero entries (under the field's zero policy) in row i,
// optionally restricted to the first width columns when width ≥ 0 — the
// solvers scan only the coefficient block of an augmented matrix.
// Complexity: O(c).
func ZerosInRow[T any](f field.Field[T], m [][]T, i, width int) int {
	limit := len(m[i])
	if width >= 0 && width < limit {
		limit = width
	}
	count := 0
	for j := 0; j < limit; j++ {
		if f.IsZero(m[i][j]) {
			count++
		}
	}

	return count
}

// ZerosInCol counts zero entries (under the field's zero policy) in column j.
// Complexity: O(r).
func ZerosInCol[T any](f field.Field[T], m [][]T, j int) int {
	count := 0
	for i := 0; i < len(m); i++ {
		if f.IsZero(m[i][j]) {
			count++
		}
	}

	return count
}
