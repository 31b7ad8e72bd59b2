// Package adjugate inverts square matrices by the classical adjugate
// construction, producing a full explanatory trace alongside the result.
//
// 🚀 What is adjugate?
//
//	The textbook inversion route: A⁻¹ = adj(A) / det(A), where adj(A) is
//	the transpose of the cofactor matrix C with C[i][j] = (−1)^(i+j) ·
//	det(minor(A, i, j)). Every cofactor, the transposition and the final
//	scaling appear as individual trace steps, so the output doubles as a
//	worked textbook example.
//
// ✨ Why the adjugate and not elimination?
//
//	Elimination inverts faster, but the adjugate route is the one whose
//	intermediate artifacts (cofactors, the adjugate matrix) carry
//	standalone meaning — exactly what an explainable trace wants. For
//	exact-rational inputs every entry of the inverse is an exact fraction.
//
// ⚙️ Behavior highlights:
//   - A singular matrix is a classified outcome, not an error: the result
//     carries Invertible=false and a closing step explaining det = 0.
//   - After inverting, the product A·A⁻¹ is computed and compared against
//     the identity; the outcome is recorded as a verification step. The
//     check never alters the returned inverse.
//   - Pure function of its input; the argument matrix is never mutated.
//
// ⚙️ Usage:
//
//	f := field.NewExact()
//	res, err := adjugate.Inverse(f, matrix.OfInts(f, [][]int64{{1, 2}, {3, 4}}))
//	// res.Determinant = -2, res.Inverse = [[-2 1] [3/2 -1/2]]
package adjugate
