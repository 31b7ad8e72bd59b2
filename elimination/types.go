// Package elimination: result and classification types.

package elimination

import (
	"fmt"

	"github.com/katalvlaran/linsteps/trace"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSolve       = "Solve"
	opGaussJordan = "SolveGaussJordan"
	opDeterminant = "Determinant"
)

// eliminationErrorf wraps err with an operation tag, preserving the original
// error via %w. Call only with err != nil.
func eliminationErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Solution classifies the outcome of solving A·x = b. Exactly one of the
// three flags is true for any returned Solution; Values is empty unless
// IsUnique is true.
type Solution[T any] struct {
	// Values holds x in variable order for a uniquely determined system.
	Values []T

	// IsUnique reports a single solution (coefficient rank == n, consistent).
	IsUnique bool

	// HasInfiniteSolutions reports a consistent but underdetermined system
	// (coefficient rank < n, augmented rank equal).
	HasInfiniteSolutions bool

	// HasNoSolution reports an inconsistent system (a zero coefficient row
	// demands a nonzero constant).
	HasNoSolution bool
}

// SolveResult bundles a solve's step trace with its classified solution.
type SolveResult[T any] struct {
	Steps    []trace.Step
	Solution Solution[T]
}

// DetResult bundles an elimination determinant's trace with its value.
// Singular is a convenience flag: true exactly when the determinant is zero
// under the field's zero policy.
type DetResult[T any] struct {
	Steps       []trace.Step
	Determinant T
	Singular    bool
}
