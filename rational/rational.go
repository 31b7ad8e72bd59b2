// Package rational: the Rational value type and its arithmetic.
// Construction normalizes once; every operation preserves the normal form
// (lowest terms, positive denominator), so downstream comparisons may rely
// on field equality instead of cross-multiplication.

package rational

import (
	"fmt"
	"strconv"
)

// Rational is an exact fraction with an int64 numerator and denominator.
//
// Internally the denominator is stored biased by one, which makes the zero
// value of the type a valid representation of 0/1. Valid values are obtained
// from the zero value, from constructors (New, MustNew, FromInt, FromFloat),
// from arithmetic on valid values, or by copying a valid value. Two valid
// values can be compared with == (normal form makes equality structural).
type Rational struct {
	num  int64 // numerator; carries the sign of the fraction
	denB int64 // denominator minus one; actual denominator is denB+1 (≥ 1)
}

// norm builds a Rational from num/den with den != 0, moving the sign into the
// numerator and reducing by the greatest common divisor.
// Internal invariant helper: every arithmetic result funnels through here.
// Complexity: O(log min(|num|, |den|)) for the gcd.
func norm(num, den int64) Rational {
	// Zero numerator collapses to the canonical 0/1 regardless of den.
	if num == 0 {
		return Rational{}
	}
	// Move the sign into the numerator.
	if den < 0 {
		num, den = -num, -den
	}
	// Reduce to lowest terms.
	g := gcd(abs64(num), den)

	return Rational{num: num / g, denB: den/g - 1}
}

// gcd returns the greatest common divisor of two non-negative int64 values
// via the Euclidean algorithm. gcd(0, b) == b.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// abs64 returns |v| for int64 (undefined for math.MinInt64, outside the
// supported numeric range of this package).
func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}

// New constructs the fraction num/den in normal form.
//
// Implementation:
//   - Stage 1: Validate den != 0 (ErrZeroDenominator otherwise).
//   - Stage 2: Normalize sign into the numerator and reduce by gcd.
//
// Inputs:
//   - num: numerator (any int64).
//   - den: denominator (any nonzero int64; sign is folded into num).
//
// Returns:
//   - Rational: num/den in lowest terms with positive denominator.
//   - error   : ErrZeroDenominator when den == 0.
//
// Determinism:
//   - Pure function of its inputs; no ambient state.
//
// Complexity:
//   - Time O(log min(|num|,|den|)), Space O(1).
func New(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, ErrZeroDenominator
	}

	return norm(num, den), nil
}

// MustNew is New that panics on error. Reserved for compile-time-known
// literals in tests and examples; library code must use New.
func MustNew(num, den int64) Rational {
	r, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("rational.MustNew(%d,%d): %v", num, den, err))
	}

	return r
}

// FromInt returns n as the fraction n/1.
// Complexity: O(1).
func FromInt(n int64) Rational {
	return Rational{num: n}
}

// Zero returns the canonical zero fraction 0/1.
// Complexity: O(1).
func Zero() Rational { return Rational{} }

// One returns the fraction 1/1.
// Complexity: O(1).
func One() Rational { return Rational{num: 1} }

// Num returns the numerator (sign included).
// Complexity: O(1).
func (r Rational) Num() int64 { return r.num }

// Den returns the denominator (always ≥ 1).
// Complexity: O(1).
func (r Rational) Den() int64 { return r.denB + 1 }

// Add returns r + other, renormalized.
// Cross-multiplication: a/b + c/d = (a·d + c·b)/(b·d).
// Complexity: O(log) for the reduction.
func (r Rational) Add(other Rational) Rational {
	return norm(r.num*other.Den()+other.num*r.Den(), r.Den()*other.Den())
}

// Sub returns r − other, renormalized.
// Cross-multiplication: a/b − c/d = (a·d − c·b)/(b·d).
// Complexity: O(log) for the reduction.
func (r Rational) Sub(other Rational) Rational {
	return norm(r.num*other.Den()-other.num*r.Den(), r.Den()*other.Den())
}

// Mul returns r × other, renormalized.
// (a/b)·(c/d) = (a·c)/(b·d).
// Complexity: O(log) for the reduction.
func (r Rational) Mul(other Rational) Rational {
	return norm(r.num*other.num, r.Den()*other.Den())
}

// Div returns r ÷ other.
//
// Implementation:
//   - Stage 1: Validate other is nonzero (ErrDivisionByZero otherwise).
//   - Stage 2: Multiply by the reciprocal: (a/b)/(c/d) = (a·d)/(b·c).
//
// Returns:
//   - Rational: the exact quotient in normal form.
//   - error   : ErrDivisionByZero when other.IsZero().
//
// Complexity:
//   - Time O(log), Space O(1).
func (r Rational) Div(other Rational) (Rational, error) {
	if other.num == 0 {
		return Rational{}, ErrDivisionByZero
	}

	return norm(r.num*other.Den(), r.Den()*other.num), nil
}

// Inv returns the reciprocal 1/r, or ErrDivisionByZero when r is zero.
// Used by the adjugate engine to scale by 1/det exactly.
// Complexity: O(1) (already reduced; only the sign may move).
func (r Rational) Inv() (Rational, error) {
	if r.num == 0 {
		return Rational{}, ErrDivisionByZero
	}

	return norm(r.Den(), r.num), nil
}

// Neg returns −r.
// Complexity: O(1).
func (r Rational) Neg() Rational {
	return Rational{num: -r.num, denB: r.denB}
}

// Abs returns |r|.
// Complexity: O(1).
func (r Rational) Abs() Rational {
	return Rational{num: abs64(r.num), denB: r.denB}
}

// IsZero reports whether r equals 0. Exact test, no tolerance involved.
// Complexity: O(1).
func (r Rational) IsZero() bool { return r.num == 0 }

// IsInteger reports whether r is a whole number (denominator 1).
// Complexity: O(1).
func (r Rational) IsInteger() bool { return r.denB == 0 }

// Sign returns -1, 0 or +1 according to the sign of r.
// Complexity: O(1).
func (r Rational) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// Cmp three-way compares r and other: -1 if r < other, 0 if equal, +1 if
// r > other. Denominators are positive by invariant, so cross-multiplied
// numerators compare directly without sign correction.
// Complexity: O(1).
func (r Rational) Cmp(other Rational) int {
	lhs, rhs := r.num*other.Den(), other.num*r.Den()
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

// Less reports whether r < other.
// Complexity: O(1).
func (r Rational) Less(other Rational) bool { return r.Cmp(other) < 0 }

// Equal reports whether r and other denote the same fraction.
// Because every Rational is kept in normal form, this is a plain field
// comparison; unreduced pairs never exist past a constructor.
// Complexity: O(1).
func (r Rational) Equal(other Rational) bool {
	return r.num == other.num && r.denB == other.denB
}

// Float returns the fraction as a float64 via direct division. Precision may
// be lost for extreme numerators/denominators; this is a display and
// verification fallback only, never fed back into exact arithmetic.
// Complexity: O(1).
func (r Rational) Float() float64 {
	return float64(r.num) / float64(r.Den())
}

// String renders integers bare ("3", "-7") and proper fractions as
// "num/den" ("-1/2"). Implements fmt.Stringer.
// Complexity: O(digits).
func (r Rational) String() string {
	if r.denB == 0 {
		return strconv.FormatInt(r.num, 10)
	}

	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.Den(), 10)
}

// Latex renders the fraction for LaTeX consumers: integers bare, fractions
// as \frac{|num|}{den} with the sign hoisted in front.
// Complexity: O(digits).
func (r Rational) Latex() string {
	if r.denB == 0 {
		return strconv.FormatInt(r.num, 10)
	}
	body := fmt.Sprintf(`\frac{%d}{%d}`, abs64(r.num), r.Den())
	if r.num < 0 {
		return "-" + body
	}

	return body
}
