// Package trace: the per-invocation step Recorder.

package trace

// Recorder accumulates the step sequence for exactly one top-level engine
// invocation. It is deliberately NOT safe for concurrent use and NOT shared
// across invocations: every public entry point of the library constructs its
// own Recorder, which is what keeps concurrent independent computations
// isolated without any synchronization.
type Recorder struct {
	steps []Step // append-only sequence, ids == position+1
	level int    // current recursion depth, stamped onto added steps
}

// NewRecorder returns an empty recorder positioned at recursion level 0.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Add stamps the next contiguous 1-based id and the current recursion level
// onto s, appends it, and returns the stored step. The caller's snapshots
// are adopted as-is; callers must hand over deep copies (see Snapshot) and
// must not retain or mutate them afterwards.
// Complexity: amortized O(1).
func (r *Recorder) Add(s Step) Step {
	s.ID = len(r.steps) + 1
	s.Level = r.level
	r.steps = append(r.steps, s)

	return s
}

// Merge appends an already-numbered sub-trace (e.g. an embedded cofactor
// run inside Cramer's rule), relabeling each step with the next contiguous
// ids of this recorder and shifting its level below the current one.
// Complexity: O(len(sub)).
func (r *Recorder) Merge(sub []Step) {
	var s Step // value copy per iteration; the source slice stays intact
	for i := range sub {
		s = sub[i]
		s.ID = len(r.steps) + 1
		s.Level += r.level + 1
		r.steps = append(r.steps, s)
	}
}

// Descend enters one recursion level; paired with Ascend.
func (r *Recorder) Descend() { r.level++ }

// Ascend leaves one recursion level; paired with Descend.
func (r *Recorder) Ascend() {
	if r.level > 0 {
		r.level--
	}
}

// Level returns the current recursion depth.
func (r *Recorder) Level() int { return r.level }

// Len returns the number of recorded steps.
func (r *Recorder) Len() int { return len(r.steps) }

// Steps returns a copy of the accumulated sequence. Copying keeps the
// recorder's internal slice append-only even if the caller mutates the
// returned value.
// Complexity: O(n) for the top-level slice (snapshots are shared frozen
// copies by contract).
func (r *Recorder) Steps() []Step {
	out := make([]Step, len(r.steps))
	copy(out, r.steps)

	return out
}
