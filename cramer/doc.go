// Package cramer solves square linear systems by Cramer's rule, with every
// embedded determinant expansion folded into one continuous step trace.
//
// 🚀 What is cramer?
//
//	The determinant-ratio solver: for A·x = b with det(A) ≠ 0, each
//	variable is xᵢ = det(Aᵢ) / det(A), where Aᵢ is A with column i
//	replaced by b. The package computes det(A) and every det(Aᵢ) by
//	cofactor expansion and merges those sub-traces into the solver's own
//	trace, relabeled to contiguous ids and indented one level deeper.
//
// ✨ Why Cramer next to elimination?
//
//	Elimination is the workhorse; Cramer's rule is the explainer. Its
//	per-variable determinant ratios are the closest a solver gets to a
//	closed-form answer, which makes the trace genuinely instructive —
//	at factorial cost, so it suits small systems only.
//
// ⚙️ Behavior highlights:
//   - det(A) = 0 is a classified outcome, not an error: the rank of A
//     against the rank of [A|b] decides between no solution and
//     infinitely many, same analysis as the elimination solvers.
//   - Pure function of its inputs; A and b are never mutated.
//
// ⚙️ Usage:
//
//	f := field.NewReal()
//	res, err := cramer.Solve(f, [][]float64{{2, 1}, {1, 3}}, []float64{6, 13})
//	// res.Values = [1 4], res.IsUnique = true
package cramer
