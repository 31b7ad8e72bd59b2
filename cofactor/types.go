// Package cofactor: result types and expansion-axis constants.

package cofactor

import "github.com/katalvlaran/linsteps/trace"

// Axis identifies the direction of a Laplace expansion.
type Axis int

const (
	// AxisRow expands along a row: terms iterate over columns.
	AxisRow Axis = iota

	// AxisCol expands along a column: terms iterate over rows.
	AxisCol
)

// String implements fmt.Stringer for step descriptions.
func (a Axis) String() string {
	if a == AxisCol {
		return "column"
	}

	return "row"
}

// Result carries everything one determinant run produces.
type Result[T any] struct {
	// Steps is the ordered, replayable calculation trace.
	Steps []trace.Step

	// Determinant is the final value in the instantiated field.
	Determinant T

	// ExpansionFormula is the top-level expansion rendered as one line,
	// e.g. "det(A) = +(3)·(-22) +(2)·(47) = 28".
	ExpansionFormula string
}
