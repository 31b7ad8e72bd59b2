// Package rational implements exact fractions over int64 numerators and
// denominators, always stored in lowest terms with a positive denominator.
//
// 🚀 What is rational?
//
//	The arithmetic bedrock of linsteps: every fraction-mode determinant,
//	elimination and inverse is computed over these values, so there is no
//	floating-point drift anywhere above this package.
//
// ✨ Key guarantees:
//   - Normal form: gcd(num, den) == 1 and den > 0; the sign lives in the
//     numerator. Constructors enforce this, so Equal can compare fields.
//   - Value semantics: Rational is an immutable value type; assignment is
//     a deep copy and no operation mutates its receiver.
//   - Safe zero value: the zero value of Rational equals 0/1 and is valid.
//   - No panics: invalid construction (zero denominator) and division by
//     zero return sentinel errors, matched via errors.Is.
//
// Decimal recovery:
//
//	FromFloat runs a continued-fraction expansion to pull low-denominator
//	fractions back out of their decimal approximations — 0.3333333333333333
//	becomes 1/3, 0.1 becomes 1/10 — bounded by a configurable maximum
//	denominator (default 10000) and convergence tolerance (default 1e-10).
//
// ⚙️ Usage:
//
//	a, _ := rational.New(1, 2)        // 1/2
//	b, _ := rational.FromFloat(0.25)  // 1/4
//	sum := a.Add(b)                   // 3/4
//	fmt.Println(sum.String())         // "3/4"
//
// Overflow note: numerators and denominators must fit in int64 throughout a
// computation; the package targets small dense matrices (≤ ~10×10) where the
// chained products stay comfortably in range. Arbitrary precision is out of
// scope by design.
package rational
