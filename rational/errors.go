// Package rational: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// rational package. All constructors and operations MUST return these
// sentinels and tests MUST check them via errors.Is. No function in this
// package panics on user-triggered error conditions (MustNew excepted,
// which exists precisely to trade the error for a panic in literals).

package rational

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "rational: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap at the outer boundary
// with fmt.Errorf("ctx: %w", ErrX) — callers still match via errors.Is.

var (
	// ErrZeroDenominator is returned when a Rational is constructed with
	// denominator 0. A fraction with a zero denominator has no value;
	// construction fails fast rather than producing a poisoned result.
	ErrZeroDenominator = errors.New("rational: zero denominator")

	// ErrDivisionByZero is returned by Div and Inv when the divisor (or the
	// receiver, for Inv) is a zero-valued Rational.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrNotFinite is returned by FromFloat when the input is NaN or ±Inf;
	// only finite decimals can be recovered as fractions.
	ErrNotFinite = errors.New("rational: value is not finite")
)
