// Package matrix provides the dense-matrix primitives the linsteps engines
// are built on: cloning, row operations, minor extraction, augmentation,
// multiplication and rank — all generic over the numeric field, with strict
// fail-fast validation and clear sentinel errors on shape violations.
//
// 🚀 What is matrix?
//
//	The shared toolbox beneath cofactor, elimination, adjugate and cramer:
//		• Clone / CloneVec — deep copies, the no-aliasing backbone of traces
//		• SwapRows / ScaleRow / AddScaledRow — elementary row operations
//		• Minor — fresh (n−1)×(n−1) submatrix, no cross-call aliasing
//		• Augment / SplitAugmented — [A|b] plumbing for the solvers
//		• Identity / Mul / MatVec — verification arithmetic (A·A⁻¹ ≟ I)
//		• ZerosInRow / ZerosInCol — the cofactor engine's axis heuristic
//		• Rank — row rank via partial-pivoted forward elimination
//
// ✨ Conventions (shared with the rest of linsteps):
//   - Matrices are [][]T in row-major order; all rows must be equal length.
//   - Helpers that read shapes validate first and return plain sentinels
//     (ErrEmptyMatrix, ErrRaggedMatrix, ErrNonSquare, ErrDimensionMismatch),
//     matched via errors.Is; nothing here panics on user input.
//   - Mutating helpers (SwapRows, ScaleRow, AddScaledRow) operate in place
//     and are only ever applied to engine-owned working copies; everything
//     handed outward is a fresh Clone.
//   - Deterministic fixed i→j loop orders throughout.
package matrix
