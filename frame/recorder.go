// SPDX-License-Identifier: MIT
//
// File: recorder.go
// Role: append-only frame builder used by every generator.

package frame

import "strconv"

// Annotation decorates a frame while it is being recorded.
// Highlight and Scalar implement it.
type Annotation interface {
	annotate(f *Frame)
}

func (h Highlight) annotate(f *Frame) {
	if len(h.IDs) == 0 {
		return
	}
	f.Highlights = append(f.Highlights, h.In(h.Scope))
}

// Scalar is a key/value display annotation (pivot index, formula, popped value).
type Scalar struct {
	Key   string
	Value string
}

func (s Scalar) annotate(f *Frame) {
	if f.Scalars == nil {
		f.Scalars = make(map[string]string, 2)
	}
	f.Scalars[s.Key] = s.Value
}

// Int returns an integer Scalar.
func Int(key string, v int) Scalar { return Scalar{Key: key, Value: strconv.Itoa(v)} }

// Text returns a string Scalar.
func Text(key, v string) Scalar { return Scalar{Key: key, Value: v} }

// Recorder accumulates frames for one run.
//
// A Recorder is not safe for concurrent use; generators own one for the
// duration of a single synchronous call.
type Recorder struct {
	initial State
	frames  []Frame
	sealed  bool
}

// NewRecorder starts a sequence whose first frame holds a clone of initial.
func NewRecorder(initial State, description string, notes ...Annotation) *Recorder {
	r := &Recorder{initial: initial.Clone()}
	r.push(initial, description, OutcomeNone, notes)

	return r
}

// Record appends a non-terminal frame holding a clone of state.
// Recording on a sealed recorder is a no-op.
func (r *Recorder) Record(state State, description string, notes ...Annotation) {
	if r.sealed {
		return
	}
	r.push(state, description, OutcomeNone, notes)
}

// Finish appends the terminal frame and returns the sealed sequence.
// OutcomeNone is promoted to OutcomeDone.
func (r *Recorder) Finish(state State, outcome Outcome, description string, notes ...Annotation) Sequence {
	if !r.sealed {
		if outcome == OutcomeNone {
			outcome = OutcomeDone
		}
		r.push(state, description, outcome, notes)
		r.sealed = true
	}

	return Sequence(r.frames)
}

// Reject seals the sequence with a terminal frame whose state is the
// untouched initial state. It is used for overflow, underflow, empty,
// duplicate and not-found runs that never mutate the structure.
func (r *Recorder) Reject(outcome Outcome, description string, notes ...Annotation) Sequence {
	return r.Finish(r.initial, outcome, description, notes...)
}

// Len returns the number of frames recorded so far.
func (r *Recorder) Len() int { return len(r.frames) }

func (r *Recorder) push(state State, description string, outcome Outcome, notes []Annotation) {
	f := Frame{
		Index:       len(r.frames),
		Kind:        state.Kind(),
		State:       state.Clone(),
		Description: description,
		Outcome:     outcome,
	}
	for _, n := range notes {
		if n != nil {
			n.annotate(&f)
		}
	}
	r.frames = append(r.frames, f)
}
