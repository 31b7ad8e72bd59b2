// Package trace: the Step record.

package trace

import "github.com/katalvlaran/linsteps/rational"

// NoIndex marks an index field (RowIndex, ExcludedRow, ExcludedCol) as not
// applicable to a given step.
const NoIndex = -1

// Step is one immutable, numbered moment of an algorithm's execution.
//
// Matrix snapshots are deep copies taken at emission time: later mutation of
// the engine's working matrix never retroactively changes an emitted step.
// Index fields hold NoIndex when the step involves no such position.
type Step struct {
	// ID is the 1-based sequence number, contiguous within one run.
	// Assigned by Recorder.Add; zero until recorded.
	ID int

	// Title is the short human-readable headline of the step.
	Title string

	// Description explains the algebraic action in full sentences.
	Description string

	// Matrix is the float view of the working matrix at this moment.
	Matrix [][]float64

	// RatMatrix is the exact view for fraction-mode runs; nil otherwise.
	RatMatrix [][]rational.Rational

	// Operation summarizes the row/column operation, e.g. "R2 ← R2 − 3·R1".
	Operation string

	// RowIndex is the row this step acts on, or NoIndex.
	RowIndex int

	// PivotValue is the float view of the pivot involved; meaningful only
	// when HasPivot is true.
	PivotValue float64

	// PivotRat is the exact view of the pivot for fraction-mode runs;
	// meaningful only when HasPivot is true.
	PivotRat rational.Rational

	// HasPivot reports whether PivotValue/PivotRat identify a pivot.
	HasPivot bool

	// ExcludedRow is the row struck out to form a minor, or NoIndex.
	ExcludedRow int

	// ExcludedCol is the column struck out to form a minor, or NoIndex.
	ExcludedCol int

	// Level is the recursion depth at emission (0 for top-level actions).
	// Stamped by Recorder.Add.
	Level int
}

// NewStep builds a Step with the given headline and description and all
// index fields preset to NoIndex. Callers fill snapshots and positional
// fields before handing the step to Recorder.Add.
func NewStep(title, description string) Step {
	return Step{
		Title:       title,
		Description: description,
		RowIndex:    NoIndex,
		ExcludedRow: NoIndex,
		ExcludedCol: NoIndex,
	}
}
