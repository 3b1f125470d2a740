// SPDX-License-Identifier: MIT

// Package arrayops produces frame sequences for fixed-capacity array
// insertion, deletion, reversal and rotation.
//
// The input is a frame.ArrayState whose Values length is the capacity and
// whose Size counts the live prefix. Every element shift is its own pair of
// frames: one highlighting source and destination (RoleCurrent), one after
// the move (RoleSwapping). Inserting into a full array ends with
// OutcomeOverflow and no mutation.
package arrayops

import (
	"fmt"

	"github.com/katalvlaran/algoviz/frame"
)

// Insert places value at index, shifting arr[index:size] one slot right.
// index must be in [0, size].
func Insert(in frame.ArrayState, index, value int) (frame.Sequence, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	if index < 0 || index > in.Size {
		return nil, frame.Invalidf(ErrIndexOutOfRange, "insert index %d not in [0,%d]", index, in.Size)
	}

	o := begin(in, fmt.Sprintf("Starting insertion of %d at index %d", value, index))
	if in.Size >= len(in.Values) {
		return o.rec.Reject(frame.OutcomeOverflow,
			fmt.Sprintf("Array is full (capacity %d), cannot insert %d", len(in.Values), value)), nil
	}

	for i := o.a.Size; i > index; i-- {
		o.step(fmt.Sprintf("Shifting element at %d to %d", i-1, i), frame.Mark(frame.RoleCurrent, i, i-1))
		o.a.Values[i] = o.a.Values[i-1]
		o.step(fmt.Sprintf("Moved %d to index %d", o.a.Values[i], i), frame.Mark(frame.RoleSwapping, i))
	}

	o.step(fmt.Sprintf("Inserting %d at index %d", value, index), frame.Mark(frame.RoleCurrent, index))
	o.a.Values[index] = value
	o.a.Size++

	return o.done("Insertion complete", frame.Mark(frame.RoleFound, index), frame.Int("size", o.a.Size)), nil
}

// Delete removes arr[index], shifting arr[index+1:size] one slot left and
// zeroing the vacated last slot. index must be in [0, size).
func Delete(in frame.ArrayState, index int) (frame.Sequence, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	if index < 0 || index >= in.Size {
		return nil, frame.Invalidf(ErrIndexOutOfRange, "delete index %d not in [0,%d)", index, in.Size)
	}

	o := begin(in, fmt.Sprintf("Deleting element at index %d", index), frame.Mark(frame.RoleCurrent, index))
	removed := o.a.Values[index]

	for i := index; i < o.a.Size-1; i++ {
		o.step(fmt.Sprintf("Shifting element at %d to %d", i+1, i), frame.Mark(frame.RoleCurrent, i, i+1))
		o.a.Values[i] = o.a.Values[i+1]
		o.step(fmt.Sprintf("Moved %d to index %d", o.a.Values[i], i), frame.Mark(frame.RoleSwapping, i))
	}

	o.a.Values[o.a.Size-1] = 0
	o.a.Size--

	return o.done(fmt.Sprintf("Deletion complete, removed %d", removed),
		frame.Int("removed", removed), frame.Int("size", o.a.Size)), nil
}

// Reverse reverses the live prefix with two converging pointers.
func Reverse(in frame.ArrayState) (frame.Sequence, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	o := begin(in, "Reversing array")
	for start, end := 0, o.a.Size-1; start < end; start, end = start+1, end-1 {
		o.step(fmt.Sprintf("Swapping index %d and %d", start, end), frame.Mark(frame.RoleComparing, start, end))
		o.a.Values[start], o.a.Values[end] = o.a.Values[end], o.a.Values[start]
		o.step(fmt.Sprintf("Swapped %d and %d", o.a.Values[start], o.a.Values[end]),
			frame.Mark(frame.RoleSwapping, start, end))
	}

	return o.done("Reversal complete"), nil
}

// Rotate cyclically rotates the live prefix by k%size positions. Each step
// is a pair of frames: the element about to wrap around is highlighted, then
// shown at its new end. k must be >= 1; an empty dir means Right.
func Rotate(in frame.ArrayState, k int, dir Direction) (frame.Sequence, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	if k < 1 {
		return nil, frame.Invalidf(ErrInvalidSteps, "k=%d", k)
	}
	if dir == "" {
		dir = Right
	}
	if dir != Right && dir != Left {
		return nil, frame.Invalidf(ErrInvalidDirection, "%q", dir)
	}

	n := in.Size
	if n <= 1 {
		o := begin(in, fmt.Sprintf("Rotating %s by %d", dir, k))
		return o.done("Nothing to rotate"), nil
	}

	eff := k % n
	o := begin(in, fmt.Sprintf("Rotating %s by %d steps (effective %d)", dir, k, eff), frame.Int("k", eff))
	live := o.a.Values[:n]
	for step := 1; step <= eff; step++ {
		if dir == Right {
			o.step(fmt.Sprintf("Step %d: moving last element to front", step), frame.Mark(frame.RoleCurrent, n-1))
			last := live[n-1]
			copy(live[1:], live[:n-1])
			live[0] = last
			o.step(fmt.Sprintf("Moved %d to index 0", last), frame.Mark(frame.RoleSwapping, 0))
		} else {
			o.step(fmt.Sprintf("Step %d: moving first element to back", step), frame.Mark(frame.RoleCurrent, 0))
			first := live[0]
			copy(live, live[1:])
			live[n-1] = first
			o.step(fmt.Sprintf("Moved %d to index %d", first, n-1), frame.Mark(frame.RoleSwapping, n-1))
		}
	}

	return o.done("Rotation complete"), nil
}
