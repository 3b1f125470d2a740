// SPDX-License-Identifier: MIT

package arrayops

import (
	"errors"

	"github.com/katalvlaran/algoviz/frame"
)

// Direction selects the rotation direction.
type Direction string

const (
	Right Direction = "right"
	Left  Direction = "left"
)

// Sentinel errors for array operations. Each is returned wrapped together
// with frame.ErrInvalidInput.
var (
	// ErrIndexOutOfRange indicates an insert index outside [0, size] or a
	// delete index outside [0, size).
	ErrIndexOutOfRange = errors.New("arrayops: index out of range")

	// ErrInvalidSize indicates Size < 0 or Size > capacity.
	ErrInvalidSize = errors.New("arrayops: invalid size")

	// ErrInvalidSteps indicates a rotation count below 1.
	ErrInvalidSteps = errors.New("arrayops: rotation steps must be >= 1")

	// ErrInvalidDirection indicates an unknown rotation direction.
	ErrInvalidDirection = errors.New("arrayops: invalid direction")
)

// op carries one run over a private copy of the input.
type op struct {
	a   frame.ArrayState
	rec *frame.Recorder
}

func validate(in frame.ArrayState) error {
	if in.Size < 0 || in.Size > len(in.Values) {
		return frame.Invalidf(ErrInvalidSize, "size %d with capacity %d", in.Size, len(in.Values))
	}

	return nil
}

func begin(in frame.ArrayState, description string, notes ...frame.Annotation) *op {
	o := &op{a: in.Copy()}
	o.rec = frame.NewRecorder(o.a, description, notes...)

	return o
}

func (o *op) step(description string, notes ...frame.Annotation) {
	o.rec.Record(o.a, description, notes...)
}

func (o *op) done(description string, notes ...frame.Annotation) frame.Sequence {
	return o.rec.Finish(o.a, frame.OutcomeDone, description, notes...)
}
