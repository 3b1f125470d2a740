// SPDX-License-Identifier: MIT

package frame

import "fmt"

// Sequence is the ordered, finite list of frames produced by one run.
// Treat it as read-only: use At to obtain frames that are safe to modify.
type Sequence []Frame

// Len returns the number of frames.
func (s Sequence) Len() int { return len(s) }

// At returns a clone of frame i and true, or a zero Frame and false when i
// is out of range.
func (s Sequence) At(i int) (Frame, bool) {
	if i < 0 || i >= len(s) {
		return Frame{}, false
	}

	return s[i].Clone(), true
}

// Last returns a clone of the terminal frame.
func (s Sequence) Last() (Frame, bool) { return s.At(len(s) - 1) }

// Outcome returns the outcome of the terminal frame, or OutcomeNone for an
// empty sequence.
func (s Sequence) Outcome() Outcome {
	if len(s) == 0 {
		return OutcomeNone
	}

	return s[len(s)-1].Outcome
}

// CountRole returns how many frames carry a non-empty highlight with role.
func (s Sequence) CountRole(role Role) int {
	n := 0
	for _, f := range s {
		if f.HasRole(role) {
			n++
		}
	}

	return n
}

// Validate checks the structural contract: at least one frame, frames
// numbered 0..n-1, non-nil states, and exactly one terminal frame, last.
func (s Sequence) Validate() error {
	if len(s) == 0 {
		return ErrEmptySequence
	}
	last := len(s) - 1
	for i, f := range s {
		if f.Index != i {
			return fmt.Errorf("%w: frame %d has index %d", ErrMalformedSequence, i, f.Index)
		}
		if f.State == nil {
			return fmt.Errorf("%w: frame %d has nil state", ErrMalformedSequence, i)
		}
		if f.Terminal() != (i == last) {
			return fmt.Errorf("%w: frame %d terminal=%t", ErrMalformedSequence, i, f.Terminal())
		}
	}

	return nil
}

// Clone returns a deep copy of s.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	for i, f := range s {
		out[i] = f.Clone()
	}

	return out
}
