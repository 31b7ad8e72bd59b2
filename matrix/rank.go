// SPDX-License-Identifier: MIT
// Package matrix: row rank via partial-pivoted forward elimination.

package matrix

import "github.com/katalvlaran/linsteps/field"

// Rank computes the row rank of m: the number of rows retaining a nonzero
// leading entry after forward elimination on a scratch copy. The input is
// never mutated.
//
// Implementation:
//   - Stage 1: Validate m rectangular; clone into a scratch working copy.
//   - Stage 2: For each column, pick the largest-magnitude entry at or below
//     the current pivot row (partial pivoting — bounds float error growth
//     and avoids needless fraction blowup); a dead column is skipped, a live
//     pivot eliminates everything below it and advances the pivot row.
//
// Behavior highlights:
//   - Zero policy comes from the field: tolerance-based for Real, exact for
//     Exact — so near-singular float inputs and exactly singular rational
//     inputs both classify correctly for their representation.
//
// Returns:
//   - int  : the rank (0 ≤ rank ≤ min(r, c)).
//   - error: shape sentinels from ValidateRectangular.
//
// Determinism:
//   - Fixed column order; ties in pivot magnitude keep the lowest row.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r·c) for the scratch copy.
func Rank[T any](f field.Field[T], m [][]T) (int, error) {
	if err := ValidateRectangular(m); err != nil {
		return 0, err
	}

	work := Clone(m)
	rows, cols := len(work), len(work[0])

	var (
		rank       int // next pivot row == rank so far
		col, i     int // loop iterators
		pivotRow   int // row holding the current best pivot candidate
		best, cand T   // candidate magnitudes
		factor     T   // elimination multiplier
	)
	for col = 0; col < cols && rank < rows; col++ {
		// Partial pivoting: largest |entry| at or below the pivot row.
		pivotRow = rank
		best = f.Abs(work[rank][col])
		for i = rank + 1; i < rows; i++ {
			cand = f.Abs(work[i][col])
			if f.Less(best, cand) {
				pivotRow, best = i, cand
			}
		}
		if f.IsZero(work[pivotRow][col]) {
			continue // dead column; a later column may still pivot
		}
		if pivotRow != rank {
			SwapRows(work, rank, pivotRow)
		}

		// Eliminate below the pivot.
		for i = rank + 1; i < rows; i++ {
			if f.IsZero(work[i][col]) {
				continue
			}
			// Pivot verified nonzero above; Div cannot fail here.
			factor, _ = f.Div(work[i][col], work[rank][col])
			AddScaledRow(f, work, i, rank, f.Neg(factor))
		}
		rank++
	}

	return rank, nil
}
