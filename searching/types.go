// SPDX-License-Identifier: MIT

package searching

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algoviz/frame"
)

// Algorithm names a supported search.
type Algorithm string

const (
	Linear        Algorithm = "linear"
	Binary        Algorithm = "binary"
	Jump          Algorithm = "jump"
	Interpolation Algorithm = "interpolation"
	Exponential   Algorithm = "exponential"
	Fibonacci     Algorithm = "fibonacci"
	Ternary       Algorithm = "ternary"
)

// Algorithms lists every supported search in presentation order.
var Algorithms = []Algorithm{Linear, Binary, Jump, Interpolation, Exponential, Fibonacci, Ternary}

// ErrUnknownAlgorithm is returned by Search for an unsupported Algorithm.
var ErrUnknownAlgorithm = errors.New("searching: unknown algorithm")

// searcher carries one run. The array is never mutated.
type searcher struct {
	arr    []int
	target int
	rec    *frame.Recorder
}

func newSearcher(values []int, target int, description string, notes ...frame.Annotation) *searcher {
	s := &searcher{arr: append([]int{}, values...), target: target}
	s.rec = frame.NewRecorder(s.state(), description, notes...)

	return s
}

func (s *searcher) state() frame.ArrayState {
	return frame.ArrayState{Values: s.arr, Size: len(s.arr)}
}

func (s *searcher) step(description string, notes ...frame.Annotation) {
	s.rec.Record(s.state(), description, notes...)
}

func (s *searcher) found(i int, description string) frame.Sequence {
	return s.rec.Finish(s.state(), frame.OutcomeFound, description,
		frame.Mark(frame.RoleFound, i), frame.Int("index", i))
}

// notFound ends the run without highlights; no candidate range remains.
func (s *searcher) notFound(description string) frame.Sequence {
	return s.rec.Finish(s.state(), frame.OutcomeNotFound, description)
}

func (s *searcher) foundAt(i int) frame.Sequence {
	return s.found(i, fmt.Sprintf("Found %d at index %d", s.target, i))
}

func (s *searcher) missing() frame.Sequence {
	return s.notFound(fmt.Sprintf("%d not found in array", s.target))
}

// bounds highlights the inclusive candidate range [l, r].
// An empty range yields an empty mark, which the recorder drops.
func bounds(l, r int) frame.Highlight {
	switch {
	case r < l:
		return frame.Mark(frame.RoleRangeBound)
	case l == r:
		return frame.Mark(frame.RoleRangeBound, l)
	default:
		return frame.Mark(frame.RoleRangeBound, l, r)
	}
}
