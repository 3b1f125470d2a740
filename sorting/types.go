// SPDX-License-Identifier: MIT

package sorting

import (
	"errors"

	"github.com/katalvlaran/algoviz/frame"
)

// Algorithm names a supported sort.
type Algorithm string

const (
	Bubble    Algorithm = "bubble"
	Selection Algorithm = "selection"
	Insertion Algorithm = "insertion"
	Merge     Algorithm = "merge"
	Quick     Algorithm = "quick"
)

// Algorithms lists every supported sort in presentation order.
var Algorithms = []Algorithm{Bubble, Selection, Insertion, Merge, Quick}

// Sentinel errors for sorting.
var (
	// ErrUnknownAlgorithm is returned by Sort for an unsupported Algorithm.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")
)

// Option configures a sort run.
type Option func(*Options)

// Options holds sort tuning knobs.
type Options struct {
	// EarlyExit stops Bubble sort after a pass with no swaps.
	EarlyExit bool
}

// DefaultOptions returns full-pass behavior.
func DefaultOptions() Options {
	return Options{EarlyExit: false}
}

// WithEarlyExit enables Bubble sort's stop-on-no-swap optimisation.
func WithEarlyExit() Option {
	return func(o *Options) { o.EarlyExit = true }
}

// sorter carries the mutable state of one run.
type sorter struct {
	arr    []int
	rec    *frame.Recorder
	sorted []bool
	opts   Options
}

func newSorter(values []int, opts []Option) *sorter {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &sorter{
		arr:    append([]int{}, values...),
		sorted: make([]bool, len(values)),
		opts:   o,
	}
	s.rec = frame.NewRecorder(s.state(), "Initial state")

	return s
}

func (s *sorter) state() frame.ArrayState {
	return frame.ArrayState{Values: s.arr, Size: len(s.arr)}
}

// markSorted adds ids to the cumulative sorted set.
func (s *sorter) markSorted(ids ...int) {
	for _, id := range ids {
		if id >= 0 && id < len(s.sorted) {
			s.sorted[id] = true
		}
	}
}

func (s *sorter) sortedIDs() []int {
	ids := make([]int, 0, len(s.sorted))
	for i, ok := range s.sorted {
		if ok {
			ids = append(ids, i)
		}
	}

	return ids
}

// step records a frame of the current array plus the sorted set.
func (s *sorter) step(description string, notes ...frame.Annotation) {
	notes = append(notes, frame.Mark(frame.RoleSorted, s.sortedIDs()...))
	s.rec.Record(s.state(), description, notes...)
}

func (s *sorter) finish() frame.Sequence {
	all := make([]int, len(s.arr))
	for i := range all {
		all[i] = i
	}
	s.markSorted(all...)

	return s.rec.Finish(s.state(), frame.OutcomeDone, "Sorting complete",
		frame.Mark(frame.RoleSorted, all...))
}
