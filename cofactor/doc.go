// Package cofactor computes determinants by recursive Laplace (cofactor)
// expansion, instrumented with a full calculation trace and a zero-maximizing
// choice of expansion axis.
//
// 🚀 What is cofactor?
//
//	The classical determinant-by-minors algorithm:
//
//	  det(A) = Σⱼ (−1)^(i+j) · a[i][j] · det(minor(i, j))
//
//	expanded along whichever row or column carries the most zero entries.
//	Every zero entry skips an entire recursive subproblem, which is the
//	dominant optimization available to an otherwise O(n!) recursion.
//
// ✨ Behavior:
//   - 1×1 and 2×2 matrices resolve in a single terminal step.
//   - For n ≥ 3 every row and column is scanned for zeros; the axis with
//     the strictly greatest count wins, rows before columns, lower index
//     on ties. The choice is local to each minor — sub-expansions pick
//     their own optimal axis independently.
//   - Each decision becomes a trace step: the axis choice, every skipped
//     zero term, every minor extraction (tagged with the struck-out row
//     and column), every signed cofactor contribution, and the final sum.
//   - ExpansionFormula re-derives the top-level expansion as one
//     human-readable line with literal entry values, minor determinants
//     and correct signs.
//
// Instantiate with field.Real for floating arithmetic (zero test within
// 1e-10) or field.Exact for exact fractions: cofactor expansion chains many
// multiplications through deep recursion, which is precisely where float
// error compounds fastest and exact arithmetic pays off.
//
// ⚙️ Usage:
//
//	f := field.NewReal()
//	res, err := cofactor.Determinant(f, [][]float64{
//	    {5, -2, 4},
//	    {6, 7, -3},
//	    {3, 0, 2},
//	})
//	// res.Determinant == 28; res.Steps replays the whole expansion
//
// Performance:
//   - Time: O(n!) worst case, sharply reduced by zero skipping.
//   - Recursion depth ≤ n, bounding stack use for the target sizes (≤ ~10).
package cofactor
