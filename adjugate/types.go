package adjugate

import (
	"fmt"

	"github.com/katalvlaran/linsteps/trace"
)

// opInverse tags errors escaping Inverse.
const opInverse = "Inverse"

// adjugateErrorf wraps a sentinel with the operation tag, preserving
// errors.Is matching.
func adjugateErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Result carries the outcome of an inversion run.
//
// Invertible=false means det(A) = 0: Inverse is nil, Determinant is the
// (zero) determinant, and the trace ends with a step explaining why the
// run stopped. It is a classified outcome, not an error.
type Result[T any] struct {
	// Steps is the complete ordered trace of the run.
	Steps []trace.Step

	// Determinant is det(A), computed before anything else.
	Determinant T

	// Adjugate is the transposed cofactor matrix; nil when Invertible is
	// false. Kept alongside Inverse because it carries standalone meaning
	// in the worked trace.
	Adjugate [][]T

	// Inverse is the n×n inverse matrix; nil when Invertible is false.
	Inverse [][]T

	// Invertible reports whether det(A) is nonzero.
	Invertible bool

	// Verified reports whether A·A⁻¹ matched the identity under the
	// field's zero test. Informational; Inverse is returned either way.
	Verified bool
}
