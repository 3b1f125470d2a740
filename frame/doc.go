// SPDX-License-Identifier: MIT

// Package frame defines the replayable step model shared by every algorithm
// generator and by the playback controller.
//
// A Frame is one discrete, self-contained instant of an algorithm run:
//
//   - State: a full snapshot of the data structure (never a diff), so any
//     frame can be rendered without replaying earlier ones.
//   - Description: a human-readable sentence about the step.
//   - Highlights: role-tagged id sets used only for emphasis.
//   - Scalars: optional opaque display values (pivot index, formula).
//   - Outcome: set on the terminal frame only.
//
// Generators build sequences exclusively through a Recorder:
//
//	rec := frame.NewRecorder(frame.NewArrayState(values), "Initial state")
//	rec.Record(state, "Comparing 5 and 3", frame.Mark(frame.RoleComparing, 0, 1))
//	seq := rec.Finish(state, frame.OutcomeDone, "Sorting complete",
//		frame.Mark(frame.RoleSorted, 0, 1))
//
// The recorder clones every state it receives, numbers frames, and seals the
// sequence with exactly one terminal frame. Once returned, a Sequence is
// read-only; Sequence.At hands out clones.
//
// Errors:
//
//	ErrInvalidInput      - pre-flight validation failure; no frames are produced.
//	ErrEmptySequence     - a sequence without frames.
//	ErrMalformedSequence - a sequence that violates the first/last frame contract.
//
// Invalid input is distinct from a terminal frame: "value not found" or
// "stack underflow" are valid outcomes of a run, while ErrInvalidInput means
// the run never started.
package frame
