// SPDX-License-Identifier: MIT
// Package matrix: central fail-fast shape validators.
// Every engine entry point funnels its inputs through these before touching
// a single element, so the kernels themselves can assume clean rectangular
// (or square) layouts and index freely.

package matrix

// ValidateNonEmpty reports ErrEmptyMatrix when m has no rows or its first
// row has no entries.
// Complexity: O(1).
func ValidateNonEmpty[T any](m [][]T) error {
	if len(m) == 0 || len(m[0]) == 0 {
		return ErrEmptyMatrix
	}

	return nil
}

// ValidateRectangular reports ErrEmptyMatrix for empty input and
// ErrRaggedMatrix when any row's length differs from the first row's.
// Complexity: O(rows).
func ValidateRectangular[T any](m [][]T) error {
	if err := ValidateNonEmpty(m); err != nil {
		return err
	}
	cols := len(m[0])
	for i := 1; i < len(m); i++ {
		if len(m[i]) != cols {
			return ErrRaggedMatrix
		}
	}

	return nil
}

// ValidateSquare reports, in priority order: ErrEmptyMatrix, ErrRaggedMatrix,
// then ErrNonSquare when row count differs from column count.
// Complexity: O(rows).
func ValidateSquare[T any](m [][]T) error {
	if err := ValidateRectangular(m); err != nil {
		return err
	}
	if len(m) != len(m[0]) {
		return ErrNonSquare
	}

	return nil
}

// ValidateSystem validates a linear system A·x = b: A must be rectangular
// and b must have exactly one entry per row of A (ErrDimensionMismatch
// otherwise).
// Complexity: O(rows).
func ValidateSystem[T any](a [][]T, b []T) error {
	if err := ValidateRectangular(a); err != nil {
		return err
	}
	if len(b) != len(a) {
		return ErrDimensionMismatch
	}

	return nil
}
