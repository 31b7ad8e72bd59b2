// Package field: exact-rational adapter.

package field

import "github.com/katalvlaran/linsteps/rational"

// Exact is the Field[rational.Rational] adapter: exact fraction arithmetic
// with an exact zero policy. Instantiating an engine with Exact eliminates
// the entire class of tolerance misclassification for matrices whose entries
// are representable as fractions — chained multiplications deep in cofactor
// recursion stay exact instead of compounding float error.
type Exact struct{}

// NewExact builds the exact adapter. Stateless; copy it freely.
func NewExact() Exact { return Exact{} }

// Zero returns 0/1.
func (Exact) Zero() rational.Rational { return rational.Zero() }

// One returns 1/1.
func (Exact) One() rational.Rational { return rational.One() }

// FromInt embeds n as n/1.
func (Exact) FromInt(n int64) rational.Rational { return rational.FromInt(n) }

// Add returns a + b, renormalized.
func (Exact) Add(a, b rational.Rational) rational.Rational { return a.Add(b) }

// Sub returns a − b, renormalized.
func (Exact) Sub(a, b rational.Rational) rational.Rational { return a.Sub(b) }

// Mul returns a × b, renormalized.
func (Exact) Mul(a, b rational.Rational) rational.Rational { return a.Mul(b) }

// Div returns a ÷ b, or rational.ErrDivisionByZero when b is exactly zero.
func (Exact) Div(a, b rational.Rational) (rational.Rational, error) {
	return a.Div(b)
}

// Neg returns −a.
func (Exact) Neg(a rational.Rational) rational.Rational { return a.Neg() }

// Abs returns |a|.
func (Exact) Abs(a rational.Rational) rational.Rational { return a.Abs() }

// IsZero reports whether a is exactly zero. No tolerance is involved.
func (Exact) IsZero(a rational.Rational) bool { return a.IsZero() }

// Less reports a < b via exact cross-multiplied comparison.
func (Exact) Less(a, b rational.Rational) bool { return a.Less(b) }

// Float returns the display view of a. Pivot selection may compare these
// magnitudes; the arithmetic itself never does.
func (Exact) Float(a rational.Rational) float64 { return a.Float() }

// Rat returns a itself; every value has an exact view.
func (Exact) Rat(a rational.Rational) (rational.Rational, bool) {
	return a, true
}

// Format renders a as "num/den" (integers bare).
func (Exact) Format(a rational.Rational) string { return a.String() }
