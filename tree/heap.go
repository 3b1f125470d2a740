// SPDX-License-Identifier: MIT

package tree

import (
	"fmt"

	"github.com/katalvlaran/algoviz/frame"
)

// HeapState is an array-backed max-heap snapshot.
type HeapState struct {
	Values   []int `json:"values" yaml:"values"`
	Capacity int   `json:"capacity" yaml:"capacity"`
}

// NewHeap builds a heap of the given capacity by inserting values in order.
// Values beyond capacity are dropped.
func NewHeap(capacity int, values ...int) HeapState {
	h := HeapState{Capacity: capacity}
	for _, v := range values {
		if len(h.Values) >= capacity {
			break
		}
		h.Values = append(h.Values, v)
		for i := len(h.Values) - 1; i > 0 && h.Values[parent(i)] < h.Values[i]; i = parent(i) {
			h.swap(i, parent(i))
		}
	}

	return h
}

// Kind implements frame.State.
func (HeapState) Kind() frame.Kind { return frame.KindHeap }

// Clone implements frame.State.
func (h HeapState) Clone() frame.State { return h.copy() }

func (h HeapState) copy() HeapState {
	h.Values = append([]int{}, h.Values...)
	return h
}

// Len returns the number of stored values.
func (h HeapState) Len() int { return len(h.Values) }

// Validate checks capacity bounds and the max-heap property.
func (h HeapState) Validate() error {
	if h.Capacity < 1 || len(h.Values) > h.Capacity {
		return frame.Invalidf(ErrInvalidCapacity, "capacity %d with %d values", h.Capacity, len(h.Values))
	}
	for i := 1; i < len(h.Values); i++ {
		if h.Values[parent(i)] < h.Values[i] {
			return frame.Invalidf(ErrNotHeap, "index %d (%d) exceeds parent %d (%d)",
				i, h.Values[i], parent(i), h.Values[parent(i)])
		}
	}

	return nil
}

func (h HeapState) swap(i, j int) { h.Values[i], h.Values[j] = h.Values[j], h.Values[i] }

func parent(i int) int { return (i - 1) / 2 }

// HeapInsert appends value and sifts it up to restore the heap property.
func HeapInsert(in HeapState, value int) (frame.Sequence, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	h := in.copy()
	rec := frame.NewRecorder(h, fmt.Sprintf("Inserting %d into max-heap", value))
	if len(h.Values) >= h.Capacity {
		return rec.Reject(frame.OutcomeOverflow, fmt.Sprintf("Heap is full (capacity %d), cannot insert %d", h.Capacity, value)), nil
	}

	h.Values = append(h.Values, value)
	i := len(h.Values) - 1
	rec.Record(h, fmt.Sprintf("Placed %d at index %d", value, i), frame.Mark(frame.RoleCurrent, i))
	for i > 0 {
		p := parent(i)
		rec.Record(h, fmt.Sprintf("Comparing %d with parent %d", h.Values[i], h.Values[p]),
			frame.Mark(frame.RoleComparing, i, p))
		if h.Values[p] >= h.Values[i] {
			break
		}
		h.swap(i, p)
		rec.Record(h, fmt.Sprintf("%d > %d, swapping with parent", h.Values[p], h.Values[i]),
			frame.Mark(frame.RoleSwapping, i, p))
		i = p
	}

	return rec.Finish(h, frame.OutcomeDone, fmt.Sprintf("Inserted %d at index %d", value, i),
		frame.Mark(frame.RoleFound, i), frame.Int("size", len(h.Values))), nil
}

// ExtractMax removes the root, moves the last value to the root and sifts
// it down.
func ExtractMax(in HeapState) (frame.Sequence, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	h := in.copy()
	rec := frame.NewRecorder(h, "Extracting maximum from max-heap")
	if len(h.Values) == 0 {
		return rec.Reject(frame.OutcomeUnderflow, "Heap is empty, nothing to extract"), nil
	}

	top := h.Values[0]
	maxNote := frame.Int("max", top)
	rec.Record(h, fmt.Sprintf("Maximum is %d at the root", top), frame.Mark(frame.RoleFound, 0), maxNote)
	last := len(h.Values) - 1
	h.Values[0] = h.Values[last]
	h.Values = h.Values[:last]
	if len(h.Values) == 0 {
		return rec.Finish(h, frame.OutcomeDone, fmt.Sprintf("Extracted %d, heap is now empty", top), maxNote), nil
	}
	rec.Record(h, fmt.Sprintf("Moved last value %d to the root", h.Values[0]), frame.Mark(frame.RoleCurrent, 0), maxNote)

	i := 0
	for {
		l, r, big := 2*i+1, 2*i+2, i
		if l >= len(h.Values) {
			break
		}
		cmp := []int{i, l}
		if r < len(h.Values) {
			cmp = append(cmp, r)
		}
		rec.Record(h, fmt.Sprintf("Comparing %d with its children", h.Values[i]), frame.Mark(frame.RoleComparing, cmp...), maxNote)
		if h.Values[l] > h.Values[big] {
			big = l
		}
		if r < len(h.Values) && h.Values[r] > h.Values[big] {
			big = r
		}
		if big == i {
			break
		}
		h.swap(i, big)
		rec.Record(h, fmt.Sprintf("Swapping %d with larger child %d", h.Values[big], h.Values[i]),
			frame.Mark(frame.RoleSwapping, i, big), maxNote)
		i = big
	}

	return rec.Finish(h, frame.OutcomeDone, fmt.Sprintf("Extracted %d", top), maxNote), nil
}
