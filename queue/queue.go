// SPDX-License-Identifier: MIT

// Package queue produces frame sequences for Enqueue, Dequeue and Front on a
// fixed-capacity array queue, in linear or circular variants.
//
// Conventions:
//
//   - Front = Rear = -1 when the queue is empty.
//   - Linear: full when Rear == cap-1 (freed front slots are not reused).
//   - Circular: full when (Rear+1) % cap == Front.
//   - Enqueue into an empty queue sets Front = Rear = 0.
//   - Dequeuing the last element resets Front = Rear = -1.
//
// Overflow, underflow and front-of-empty are terminal frames, not errors.
// A state whose pointers disagree with its filled slots is invalid input.
package queue

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algoviz/frame"
)

// Variant selects the index arithmetic.
type Variant string

const (
	Linear   Variant = "linear"
	Circular Variant = "circular"
)

// Sentinel errors for queue operations.
var (
	ErrInvalidCapacity = errors.New("queue: capacity must be >= 1")
	ErrInvalidVariant  = errors.New("queue: invalid variant")
	ErrInconsistent    = errors.New("queue: inconsistent front/rear")
)

// Slot is one array cell.
type Slot struct {
	Value  int  `json:"value" yaml:"value"`
	Filled bool `json:"filled" yaml:"filled"`
}

// State is a queue snapshot.
type State struct {
	Slots   []Slot  `json:"slots" yaml:"slots"`
	Front   int     `json:"front" yaml:"front"`
	Rear    int     `json:"rear" yaml:"rear"`
	Variant Variant `json:"variant" yaml:"variant"`
}

// New returns a queue of the given capacity holding values in slots
// 0..len(values)-1.
func New(variant Variant, capacity int, values ...int) State {
	if capacity < 0 {
		capacity = 0
	}
	s := State{Slots: make([]Slot, capacity), Front: -1, Rear: -1, Variant: variant}
	for i, v := range values {
		if i >= capacity {
			break
		}
		s.Slots[i] = Slot{Value: v, Filled: true}
		s.Front, s.Rear = 0, i
	}

	return s
}

// Kind implements frame.State.
func (State) Kind() frame.Kind { return frame.KindQueue }

// Clone implements frame.State.
func (s State) Clone() frame.State {
	s.Slots = append([]Slot{}, s.Slots...)
	return s
}

// Capacity returns the number of slots.
func (s State) Capacity() int { return len(s.Slots) }

// Empty reports Front == -1.
func (s State) Empty() bool { return s.Front == -1 }

// Len returns the number of queued elements.
func (s State) Len() int {
	switch {
	case s.Empty():
		return 0
	case s.Rear >= s.Front:
		return s.Rear - s.Front + 1
	default:
		return len(s.Slots) - s.Front + s.Rear + 1
	}
}

// Full reports whether Enqueue would overflow.
func (s State) Full() bool {
	if s.Variant == Circular {
		return (s.Rear+1)%len(s.Slots) == s.Front
	}

	return s.Rear == len(s.Slots)-1
}

// Values returns the queued values front to rear.
func (s State) Values() []int {
	out := make([]int, 0, s.Len())
	for i, n := s.Front, s.Len(); n > 0; n-- {
		out = append(out, s.Slots[i].Value)
		i = s.next(i)
	}

	return out
}

func (s State) next(i int) int {
	if s.Variant == Circular {
		return (i + 1) % len(s.Slots)
	}

	return i + 1
}

// Validate checks the variant, capacity and pointer/slot agreement.
func (s State) Validate() error {
	capacity := len(s.Slots)
	switch {
	case s.Variant != Linear && s.Variant != Circular:
		return frame.Invalidf(ErrInvalidVariant, "%q", s.Variant)
	case capacity < 1:
		return frame.Invalidf(ErrInvalidCapacity, "capacity %d", capacity)
	case (s.Front == -1) != (s.Rear == -1):
		return frame.Invalidf(ErrInconsistent, "front %d rear %d", s.Front, s.Rear)
	case s.Front < -1 || s.Front >= capacity || s.Rear < -1 || s.Rear >= capacity:
		return frame.Invalidf(ErrInconsistent, "front %d rear %d outside capacity %d", s.Front, s.Rear, capacity)
	case s.Variant == Linear && s.Rear < s.Front:
		return frame.Invalidf(ErrInconsistent, "linear queue with rear %d before front %d", s.Rear, s.Front)
	}

	live := make([]bool, capacity)
	for i, n := s.Front, s.Len(); n > 0; n-- {
		live[i] = true
		i = s.next(i)
	}
	for i, slot := range s.Slots {
		if slot.Filled != live[i] {
			return frame.Invalidf(ErrInconsistent, "slot %d filled=%t outside [front,rear]", i, slot.Filled)
		}
	}

	return nil
}

// Enqueue appends value at the rear.
func Enqueue(in State, value int) (frame.Sequence, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	s := in.Clone().(State)
	rec := frame.NewRecorder(s, fmt.Sprintf("Enqueue %d", value), pointers(s)...)
	if s.Full() {
		return rec.Reject(frame.OutcomeOverflow, "Queue overflow! Cannot enqueue, queue is full"), nil
	}

	if s.Empty() {
		s.Front, s.Rear = 0, 0
		rec.Record(s, "Step 1: queue is empty, initializing front and rear to 0",
			append(pointers(s), frame.Mark(frame.RoleCurrent, 0))...)
	} else {
		nr := s.next(s.Rear)
		rec.Record(s, fmt.Sprintf("Step 1: incrementing rear from %d to %d", s.Rear, nr),
			append(pointers(s), frame.Mark(frame.RoleCurrent, nr))...)
		s.Rear = nr
	}
	s.Slots[s.Rear] = Slot{Value: value, Filled: true}
	rec.Record(s, fmt.Sprintf("Step 2: enqueued %d at index %d", value, s.Rear),
		append(pointers(s), frame.Mark(frame.RoleSwapping, s.Rear))...)

	return rec.Finish(s, frame.OutcomeDone,
		fmt.Sprintf("Enqueue successful! Front = %d, Rear = %d", s.Front, s.Rear),
		append(pointers(s), frame.Mark(frame.RoleFound, s.Rear))...), nil
}

// Dequeue removes the front element.
func Dequeue(in State) (frame.Sequence, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	s := in.Clone().(State)
	rec := frame.NewRecorder(s, "Dequeue", pointers(s)...)
	if s.Empty() {
		return rec.Reject(frame.OutcomeUnderflow, "Queue underflow! Cannot dequeue, queue is empty"), nil
	}

	v := s.Slots[s.Front].Value
	out := frame.Int("dequeued", v)
	rec.Record(s, fmt.Sprintf("Step 1: getting front element: %d at index %d", v, s.Front),
		append(pointers(s), frame.Mark(frame.RoleCurrent, s.Front), out)...)

	s.Slots[s.Front] = Slot{}
	if s.Front == s.Rear {
		s.Front, s.Rear = -1, -1
		rec.Record(s, "Step 2: queue is now empty, resetting front and rear to -1", out)
	} else {
		s.Front = s.next(s.Front)
		rec.Record(s, fmt.Sprintf("Step 2: dequeued %d, incrementing front to %d", v, s.Front),
			append(pointers(s), out)...)
	}

	return rec.Finish(s, frame.OutcomeDone, fmt.Sprintf("Dequeue successful! Returned: %d", v),
		append(pointers(s), out)...), nil
}

// Front reports the front element without removing it.
func Front(in State) (frame.Sequence, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	rec := frame.NewRecorder(in, "Front", pointers(in)...)
	if in.Empty() {
		return rec.Reject(frame.OutcomeEmpty, "Queue is empty, no front element"), nil
	}
	v := in.Slots[in.Front].Value

	return rec.Finish(in, frame.OutcomeFound, fmt.Sprintf("Front element is %d", v),
		frame.Mark(frame.RoleFound, in.Front), frame.Int("front", v)), nil
}

// pointers exposes front and rear as scalars.
func pointers(s State) []frame.Annotation {
	return []frame.Annotation{frame.Int("frontIndex", s.Front), frame.Int("rearIndex", s.Rear)}
}
