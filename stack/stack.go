// SPDX-License-Identifier: MIT

// Package stack produces frame sequences for Push, Pop and Peek on a bounded
// stack, rendered either as a fixed array or as a linked list of nodes.
//
// Overflow (push on full), underflow (pop on empty) and peek on empty are
// terminal frames, not errors: the run is exactly two frames and the state is
// untouched. Pop frames expose the removed value in the "popped" scalar.
package stack

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algoviz/frame"
)

// Mode selects the storage the frames describe.
type Mode string

const (
	ModeArray  Mode = "array"
	ModeLinked Mode = "linked-list"
)

// Sentinel errors for stack operations.
var (
	ErrInvalidCapacity = errors.New("stack: capacity must be >= 1")
	ErrInvalidMode     = errors.New("stack: invalid mode")
	ErrInconsistent    = errors.New("stack: inconsistent state")
)

// State is a stack snapshot. Items are ordered bottom to top.
// Top is the index of the top item; it is -1 for an empty stack and may
// transiently differ from len(Items)-1 while a pointer is being moved.
type State struct {
	Items    []int `json:"items" yaml:"items"`
	Top      int   `json:"top" yaml:"top"`
	Capacity int   `json:"capacity" yaml:"capacity"`
	Mode     Mode  `json:"mode" yaml:"mode"`
}

// New returns a stack in mode holding items (bottom first).
func New(mode Mode, capacity int, items ...int) State {
	return State{Items: append([]int{}, items...), Top: len(items) - 1, Capacity: capacity, Mode: mode}
}

// Kind implements frame.State.
func (State) Kind() frame.Kind { return frame.KindStack }

// Clone implements frame.State.
func (s State) Clone() frame.State {
	s.Items = append([]int{}, s.Items...)
	return s
}

// Len returns the number of items.
func (s State) Len() int { return len(s.Items) }

// Full reports whether the stack holds Capacity items.
func (s State) Full() bool { return len(s.Items) >= s.Capacity }

// Validate checks mode, capacity and the top pointer.
func (s State) Validate() error {
	switch {
	case s.Mode != ModeArray && s.Mode != ModeLinked:
		return frame.Invalidf(ErrInvalidMode, "%q", s.Mode)
	case s.Capacity < 1:
		return frame.Invalidf(ErrInvalidCapacity, "capacity %d", s.Capacity)
	case len(s.Items) > s.Capacity:
		return frame.Invalidf(ErrInconsistent, "%d items exceed capacity %d", len(s.Items), s.Capacity)
	case s.Top != len(s.Items)-1:
		return frame.Invalidf(ErrInconsistent, "top %d with %d items", s.Top, len(s.Items))
	}

	return nil
}

// Push adds value on top.
func Push(in State, value int) (frame.Sequence, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	s := in.Clone().(State)
	rec := frame.NewRecorder(s, fmt.Sprintf("Push %d", value))
	if s.Full() {
		return rec.Reject(frame.OutcomeOverflow,
			fmt.Sprintf("Stack overflow! Cannot push %d, stack is full (capacity %d)", value, s.Capacity)), nil
	}

	if s.Mode == ModeArray {
		rec.Record(s, "Step 1: checking if stack is full", at(frame.RoleCurrent, s.Top), frame.Int("top", s.Top))
		s.Top++
		rec.Record(s, "Step 2: incrementing top pointer", frame.Int("top", s.Top))
		s.Items = append(s.Items, value)
		rec.Record(s, fmt.Sprintf("Step 3: pushed %d to index %d", value, s.Top),
			frame.Mark(frame.RoleSwapping, s.Top), frame.Int("top", s.Top))
	} else {
		rec.Record(s, fmt.Sprintf("Step 1: create new node with value %d", value), frame.Int("node", value))
		rec.Record(s, "Step 2: set new node's next pointer to current top",
			at(frame.RoleCurrent, s.Top), frame.Int("node", value))
		s.Items = append(s.Items, value)
		s.Top++
		rec.Record(s, "Step 3: update top pointer to new node", frame.Mark(frame.RoleSwapping, s.Top))
	}

	return rec.Finish(s, frame.OutcomeDone, "Push successful", frame.Mark(frame.RoleFound, s.Top)), nil
}

// Pop removes the top item.
func Pop(in State) (frame.Sequence, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	s := in.Clone().(State)
	rec := frame.NewRecorder(s, "Pop")
	if len(s.Items) == 0 {
		return rec.Reject(frame.OutcomeUnderflow, "Stack underflow! Cannot pop, stack is empty"), nil
	}

	top := s.Items[s.Top]
	popped := frame.Int("popped", top)
	if s.Mode == ModeArray {
		rec.Record(s, fmt.Sprintf("Step 1: accessing top element: %d", top), at(frame.RoleCurrent, s.Top))
		s.Items = s.Items[:s.Top]
		s.Top--
		rec.Record(s, "Step 2: decrementing top pointer", popped, frame.Int("top", s.Top))
	} else {
		rec.Record(s, fmt.Sprintf("Step 1: accessing top node: %d", top), at(frame.RoleCurrent, s.Top))
		s.Top--
		rec.Record(s, "Step 2: move top pointer to next node",
			frame.Mark(frame.RoleSwapping, len(s.Items)-1), at(frame.RoleCurrent, s.Top), popped)
		s.Items = s.Items[:len(s.Items)-1]
		rec.Record(s, "Step 3: free memory of old top node", popped)
	}

	return rec.Finish(s, frame.OutcomeDone, fmt.Sprintf("Pop successful! Returned: %d", top), popped), nil
}

// Peek reports the top item without removing it.
func Peek(in State) (frame.Sequence, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	rec := frame.NewRecorder(in, "Peek")
	if len(in.Items) == 0 {
		return rec.Reject(frame.OutcomeEmpty, "Stack is empty, nothing to peek"), nil
	}
	top := in.Items[in.Top]

	return rec.Finish(in, frame.OutcomeFound, fmt.Sprintf("Peek: top element is %d", top),
		frame.Mark(frame.RoleFound, in.Top), frame.Int("top", top)), nil
}

// at highlights index i, or nothing when the stack is empty (i == -1).
func at(role frame.Role, i int) frame.Highlight {
	if i < 0 {
		return frame.Mark(role)
	}

	return frame.Mark(role, i)
}
