// Package elimination solves linear systems and computes determinants by
// row reduction: plain Gaussian elimination with back-substitution, full
// Gauss–Jordan reduction to reduced row-echelon form, and an elimination
// determinant — all with partial pivoting and a complete step trace.
//
// 🚀 What is elimination?
//
//	A state machine over the augmented matrix [A|b] (or A alone for the
//	determinant form):
//
//	  • Forward phase — for each pivot column, swap up the entry of
//	    greatest magnitude at or below the diagonal (partial pivoting:
//	    bounds float error growth and avoids needless fraction blowup),
//	    then eliminate everything below it.
//	  • Backward phase (Gauss–Jordan only) — normalize pivots to 1 and
//	    eliminate above, leaving the solution in the augmented column.
//	  • Classification — zero coefficient row against a nonzero constant
//	    means no solution; coefficient rank below n means infinitely many;
//	    otherwise back-substitution yields the unique solution.
//
// ✨ Behavior:
//   - Degeneracy is data: Solution carries exactly one of IsUnique,
//     HasInfiniteSolutions, HasNoSolution — degenerate systems classify,
//     they never error.
//   - A dead pivot column never aborts a solve: elimination skips it and
//     the final rank/consistency analysis decides the outcome. (Both solve
//     paths share this policy; see DESIGN.md for the deviation note.)
//   - Every swap, normalization and row elimination is recorded with the
//     affected row and the pivot value used, enabling exact replay.
//   - The determinant form stops at the first dead column (determinant 0)
//     and otherwise returns the diagonal product, sign-flipped once per
//     row swap.
//
// In the exact instantiation partial pivoting compares magnitudes through
// the float view — selection only; the arithmetic itself stays exact.
//
// ⚙️ Usage:
//
//	f := field.NewReal()
//	res, err := elimination.Solve(f, [][]float64{{2, 1}, {1, 3}}, []float64{8, 13})
//	// res.Solution.IsUnique == true, res.Solution.Values == [1 4]
//
// Performance:
//   - Time O(n³), Space O(n²) — polynomial, unlike cofactor expansion, and
//     the practical choice beyond ~6×6.
package elimination
