// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All helpers MUST return these sentinels and tests MUST
// check them via errors.Is. No helper panics on user-triggered conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrEmptyMatrix is returned when a matrix with zero rows (or a row of
	// zero length where entries are required) reaches a helper.
	ErrEmptyMatrix = errors.New("matrix: empty matrix")

	// ErrRaggedMatrix is returned when rows have unequal lengths; every
	// helper requires a rectangular layout.
	ErrRaggedMatrix = errors.New("matrix: ragged rows")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't. Determinant/inverse surfaces reject non-square inputs with
	// this sentinel rather than leaving the behavior undefined.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Mul where a.Cols != b.Rows, or a constants vector
	// whose length differs from the coefficient row count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside the
	// valid bounds of the matrix it addresses.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
