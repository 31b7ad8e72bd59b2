// Package field abstracts the numeric representation the linsteps engines
// compute over, so each algorithm is written exactly once and instantiated
// for both float64 and exact-rational arithmetic.
//
// 🚀 What is field?
//
//	A capability set — {Zero, One, Add, Sub, Mul, Div, Neg, Abs, IsZero,
//	Less, Float, Rat, Format} — expressed as the generic interface
//	Field[T], plus the two adapters every engine is instantiated with:
//
//	  • Real  — float64 arithmetic with tolerance-based zero detection
//	            (default epsilon 1e-10, configurable via WithEpsilon)
//	  • Exact — rational.Rational arithmetic with exact zero detection
//
// ✨ Why a capability set?
//
//	Cofactor expansion and Gauss–Jordan elimination are structurally
//	identical in floating and fraction mode; only the zero test, the
//	comparison policy and the arithmetic differ. Collapsing the two
//	near-identical engine bodies into one generic implementation keeps a
//	single source of truth for the algorithm and its step trace.
//
// Pivoting note: Less orders values by signed magnitude of the raw value;
// engines compare Abs(a) for partial pivoting. The Exact adapter compares
// fractions exactly, so pivot selection never depends on float rounding
// even though the arithmetic guarantee only requires it for correctness
// of the values themselves.
//
// ⚙️ Usage:
//
//	fr := field.NewReal()                             // tolerance 1e-10
//	fe := field.NewExact()                            // exact fractions
//	sum := fe.Add(rational.MustNew(1, 2), fe.One())   // 3/2
package field
