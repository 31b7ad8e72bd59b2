// Package field: float64 adapter with tolerance-based zero detection.

package field

import (
	"math"
	"strconv"

	"github.com/katalvlaran/linsteps/rational"
)

// DefaultEpsilon is the magnitude below which a float64 is treated as zero.
// Chosen to match the exact engines' agreement tolerance: values this small
// arising from elimination on well-scaled inputs are rounding residue.
const DefaultEpsilon = 1e-10

// RealOption mutates the Real adapter configuration.
type RealOption func(*Real)

// WithEpsilon overrides the zero-detection tolerance.
// Non-positive values are ignored and leave the default in place.
func WithEpsilon(eps float64) RealOption {
	return func(r *Real) {
		if eps > 0 {
			r.eps = eps
		}
	}
}

// Real is the Field[float64] adapter: native floating arithmetic with a
// tolerance-based zero policy. Tolerance comparisons are a recognized source
// of false positives/negatives near true singularity; callers needing exact
// classification use the Exact adapter instead.
type Real struct {
	eps float64 // zero-detection tolerance, always > 0
}

// NewReal builds the float64 adapter with DefaultEpsilon, overridable via
// WithEpsilon. The adapter is a small value; copy it freely.
func NewReal(opts ...RealOption) Real {
	r := Real{eps: DefaultEpsilon}
	for _, opt := range opts {
		opt(&r)
	}

	return r
}

// Epsilon returns the configured zero-detection tolerance.
func (f Real) Epsilon() float64 { return f.eps }

// Zero returns 0.
func (f Real) Zero() float64 { return 0 }

// One returns 1.
func (f Real) One() float64 { return 1 }

// FromInt embeds n as a float64.
func (f Real) FromInt(n int64) float64 { return float64(n) }

// Add returns a + b.
func (f Real) Add(a, b float64) float64 { return a + b }

// Sub returns a − b.
func (f Real) Sub(a, b float64) float64 { return a - b }

// Mul returns a × b.
func (f Real) Mul(a, b float64) float64 { return a * b }

// Div returns a ÷ b, or rational.ErrDivisionByZero when b is zero within
// the adapter's tolerance. Gating on the tolerance (not b == 0) keeps the
// adapter from emitting huge garbage quotients near singularity.
func (f Real) Div(a, b float64) (float64, error) {
	if f.IsZero(b) {
		return 0, rational.ErrDivisionByZero
	}

	return a / b, nil
}

// Neg returns −a.
func (f Real) Neg(a float64) float64 { return -a }

// Abs returns |a|.
func (f Real) Abs(a float64) float64 { return math.Abs(a) }

// IsZero reports |a| < epsilon.
func (f Real) IsZero(a float64) bool { return math.Abs(a) < f.eps }

// Less reports a < b.
func (f Real) Less(a, b float64) bool { return a < b }

// Float returns a unchanged.
func (f Real) Float(a float64) float64 { return a }

// Rat reports no exact view: float64 values are display-only in traces.
func (f Real) Rat(float64) (rational.Rational, bool) {
	return rational.Rational{}, false
}

// Format renders a with the shortest representation that round-trips.
func (f Real) Format(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}
