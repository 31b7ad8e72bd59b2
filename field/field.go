// Package field: the Field[T] capability set shared by all engines.

package field

import "github.com/katalvlaran/linsteps/rational"

// Field is the numeric capability set the engines are generic over.
//
// Contract (all adapters):
//   - All operations are pure: no receiver or argument is ever mutated.
//   - Div returns rational.ErrDivisionByZero (matched via errors.Is) when
//     the divisor is zero under the adapter's zero policy.
//   - IsZero implements the adapter's zero policy: tolerance-based for
//     Real, exact for Exact. Engines must gate every Div behind IsZero.
//   - Float/Rat provide display views for step snapshots; Rat reports
//     ok=false when the adapter has no exact representation.
//
// Complexity notes: every method is O(1) up to gcd reduction in Exact.
type Field[T any] interface {
	// Zero returns the additive identity.
	Zero() T

	// One returns the multiplicative identity.
	One() T

	// FromInt embeds an integer into the field.
	FromInt(n int64) T

	// Add returns a + b.
	Add(a, b T) T

	// Sub returns a − b.
	Sub(a, b T) T

	// Mul returns a × b.
	Mul(a, b T) T

	// Div returns a ÷ b, or rational.ErrDivisionByZero when IsZero(b).
	Div(a, b T) (T, error)

	// Neg returns −a.
	Neg(a T) T

	// Abs returns |a|.
	Abs(a T) T

	// IsZero reports whether a is zero under the adapter's zero policy.
	IsZero(a T) bool

	// Less reports a < b in the field's natural order.
	Less(a, b T) bool

	// Float returns the display/comparison view of a as float64.
	Float(a T) float64

	// Rat returns the exact view of a; ok is false when none exists.
	Rat(a T) (r rational.Rational, ok bool)

	// Format renders a for step descriptions and formulas.
	Format(a T) string
}
