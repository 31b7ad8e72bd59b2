package cramer

import (
	"fmt"

	"github.com/katalvlaran/linsteps/trace"
)

// opSolve tags errors escaping Solve.
const opSolve = "Solve"

// cramerErrorf wraps a sentinel with the operation tag, preserving
// errors.Is matching.
func cramerErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Result carries the outcome of a Cramer's-rule run.
//
// Exactly one of IsUnique, HasInfiniteSolutions, HasNoSolution is true.
// Values is populated only for the unique case.
type Result[T any] struct {
	// Steps is the complete ordered trace, embedded determinant expansions
	// included (relabeled and indented one level).
	Steps []trace.Step

	// Determinant is det(A); the denominator of every variable.
	Determinant T

	// Values holds x, one entry per unknown; nil unless IsUnique.
	Values []T

	// Classification flags, mutually exclusive.
	IsUnique             bool
	HasInfiniteSolutions bool
	HasNoSolution        bool
}
