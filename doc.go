// Package linsteps is an exact, explainable linear-algebra playground:
// determinants, linear systems and matrix inverses computed over exact
// rational arithmetic, with every intermediate algebraic move recorded
// as a replayable calculation step.
//
// 🚀 What is linsteps?
//
//	A small, pure-Go library that brings together:
//		• Exact fractions: int64/int64 rationals, always in lowest terms
//		• Decimal recovery: 0.3333… → 1/3 via continued fractions
//		• Cofactor engine: Laplace expansion with zero-maximizing pivots
//		• Elimination engine: Gaussian & Gauss–Jordan with partial pivoting
//		• Inverses: adjugate method with a self-verification pass
//		• Cramer's rule: per-variable determinant ratios
//		• Step traces: numbered, deep-copied snapshots of every decision
//
// ✨ Why choose linsteps?
//
//   - Exact by construction – no floating-point drift in fraction mode
//   - Explainable – each pivot, swap, minor and cofactor is a recorded step
//   - Degeneracy as data – singular/inconsistent/underdetermined systems are
//     classified results, never errors
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under focused subpackages:
//
//	rational/    — exact fraction type with normalization & formatting
//	field/       — numeric capability set: float64 and exact adapters
//	trace/       — calculation steps and per-run recorders
//	matrix/      — generic dense helpers, validators and sentinels
//	cofactor/    — recursive determinant by minors, instrumented
//	elimination/ — Gaussian / Gauss–Jordan solve & determinant engines
//	adjugate/    — matrix inverse via the cofactor matrix
//	cramer/      — Cramer's-rule system solver
//
// Quick taste:
//
//	f := field.NewExact()
//	m := [][]rational.Rational{
//	    {rational.FromInt(5), rational.FromInt(-2), rational.FromInt(4)},
//	    {rational.FromInt(6), rational.FromInt(7), rational.FromInt(-3)},
//	    {rational.FromInt(3), rational.FromInt(0), rational.FromInt(2)},
//	}
//	res, _ := cofactor.Determinant(f, m)
//	fmt.Println(res.Determinant.String()) // 28
//
// Dive into each subpackage's doc.go for algorithm details, determinism
// guarantees and worked examples.
//
//	go get github.com/katalvlaran/linsteps
package linsteps
