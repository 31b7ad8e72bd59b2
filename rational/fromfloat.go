// Package rational: decimal → fraction recovery via continued fractions.
// This is the bridge from "user typed 0.3333" to an exact 1/3: every
// fraction-mode pipeline starts here, so the expansion must reliably recover
// low-denominator fractions from decimals that carry float rounding noise.

package rational

import "math"

// DefaultMaxDenominator bounds the continued-fraction expansion: convergents
// whose denominator would exceed it are rejected and the previous convergent
// is returned instead.
const DefaultMaxDenominator = int64(10000)

// DefaultTolerance is the convergence threshold: the expansion stops once the
// convergent approximates the input within this absolute error.
const DefaultTolerance = 1e-10

// Options configures FromFloat. Construct via functional options; the zero
// configuration is never used directly.
type Options struct {
	// MaxDenominator caps convergent denominators (> 0). Default 10000.
	MaxDenominator int64
	// Tolerance is the absolute convergence error (> 0). Default 1e-10.
	Tolerance float64
}

// Option mutates Options (functional-options pattern).
type Option func(*Options)

// WithMaxDenominator overrides the convergent denominator cap.
// Non-positive values are ignored and leave the default in place.
func WithMaxDenominator(n int64) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxDenominator = n
		}
	}
}

// WithTolerance overrides the convergence error threshold.
// Non-positive values are ignored and leave the default in place.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol > 0 {
			o.Tolerance = tol
		}
	}
}

// newOptions applies opts over the defaults.
func newOptions(opts ...Option) Options {
	o := Options{MaxDenominator: DefaultMaxDenominator, Tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// FromFloat recovers an exact fraction from a decimal approximation.
//
// Implementation:
//   - Stage 1: Validate v is finite (ErrNotFinite for NaN/±Inf). If v is an
//     integer within tolerance, return it directly as v/1.
//   - Stage 2: Run a continued-fraction expansion on |v|: maintain convergent
//     pairs (h₋₁/k₋₁, h/k) with hₙ = aₙ·hₙ₋₁ + hₙ₋₂, kₙ = aₙ·kₙ₋₁ + kₙ₋₂.
//     Iterate while the next denominator stays ≤ MaxDenominator and the
//     approximation error exceeds Tolerance; on overflow of the cap, keep the
//     last in-bound convergent.
//   - Stage 3: Reapply the sign and normalize.
//
// Behavior highlights:
//   - Recovers 1/3 from 0.3333333333333333 and 1/10 from 0.1, including
//     decimals carrying float64 rounding noise.
//   - Deterministic: identical inputs and options yield identical fractions.
//
// Inputs:
//   - v   : finite decimal to convert.
//   - opts: WithMaxDenominator / WithTolerance overrides.
//
// Returns:
//   - Rational: the best convergent within the denominator cap.
//   - error   : ErrNotFinite for NaN/±Inf input.
//
// Complexity:
//   - Time O(log MaxDenominator) iterations, Space O(1).
func FromFloat(v float64, opts ...Option) (Rational, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Rational{}, ErrNotFinite
	}
	o := newOptions(opts...)

	// Integer fast path: v/1 with no expansion.
	rounded := math.Round(v)
	if math.Abs(v-rounded) <= o.Tolerance {
		return FromInt(int64(rounded)), nil
	}

	// Work on the magnitude; restore the sign at the end.
	neg := v < 0
	target := math.Abs(v)

	// Convergent state: (hPrev/kPrev) then (h/k), seeded so the first loop
	// iteration produces h = a₀, k = 1.
	var (
		hPrev, kPrev = int64(0), int64(1)
		h, k         = int64(1), int64(0)
		x            = target // remaining tail of the expansion
	)
	for {
		a := int64(math.Floor(x))
		hNext := a*h + hPrev
		kNext := a*k + kPrev
		if kNext > o.MaxDenominator {
			// Cap exceeded: keep the last convergent inside the bound.
			break
		}
		hPrev, kPrev, h, k = h, k, hNext, kNext

		// Converged within tolerance: stop expanding.
		if math.Abs(target-float64(h)/float64(k)) <= o.Tolerance {
			break
		}

		// Recurse into the fractional tail; a degenerate tail ends the walk.
		frac := x - math.Floor(x)
		if frac <= o.Tolerance {
			break
		}
		x = 1 / frac
	}

	num := h
	if neg {
		num = -num
	}

	return norm(num, k), nil
}
