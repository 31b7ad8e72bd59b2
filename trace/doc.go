// Package trace records the explainable calculation trail every linsteps
// engine produces: one immutable, numbered Step per state-changing or
// decision-making action, replayable front-to-back by any renderer.
//
// 🚀 What is trace?
//
//	The sole explainability interface of the library. Engines append a
//	Step after each pivot choice, row swap, normalization, elimination,
//	minor extraction, skipped term and cofactor evaluation; consumers
//	(CLIs, notebooks, animation layers) replay the sequence however they
//	like. The core imposes no UI concerns but guarantees:
//
//	  • ids are 1-based, contiguous and strictly increasing within a run
//	  • every embedded matrix is a frozen point-in-time deep copy
//	  • steps are append-only and never retroactively edited
//
// ✨ Design:
//   - Recorder is scoped to one top-level invocation — never a module
//     global — so independent concurrent computations stay isolated.
//   - Recursion depth is threaded through Descend/Ascend and stamped on
//     each Step, letting renderers indent nested minor expansions.
//   - Snapshot converts a working [][]T matrix into the Step's float view
//     plus, for exact runs, a parallel rational view derived from the same
//     source (the two views are consistent by construction).
//
// ⚙️ Usage:
//
//	rec := trace.NewRecorder()
//	fm, rm := trace.Snapshot(f, work)
//	s := trace.NewStep("Swap rows", "R1 ↔ R3")
//	s.Matrix, s.RatMatrix, s.RowIndex = fm, rm, 0
//	rec.Add(s)
//	for _, step := range rec.Steps() { render(step) }
package trace
