// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"

	"github.com/katalvlaran/algoviz/frame"
)

// Sort dispatches to the generator for alg.
// The input slice is never modified.
func Sort(alg Algorithm, values []int, opts ...Option) (frame.Sequence, error) {
	switch alg {
	case Bubble:
		return BubbleSort(values, opts...), nil
	case Selection:
		return SelectionSort(values, opts...), nil
	case Insertion:
		return InsertionSort(values, opts...), nil
	case Merge:
		return MergeSort(values, opts...), nil
	case Quick:
		return QuickSort(values, opts...), nil
	default:
		return nil, frame.Invalidf(ErrUnknownAlgorithm, "%q", alg)
	}
}

// BubbleSort repeatedly swaps adjacent out-of-order pairs.
func BubbleSort(values []int, opts ...Option) frame.Sequence {
	s := newSorter(values, opts)
	n := len(s.arr)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			s.step(fmt.Sprintf("Comparing %d and %d", s.arr[j], s.arr[j+1]),
				frame.Mark(frame.RoleComparing, j, j+1))
			if s.arr[j] > s.arr[j+1] {
				s.arr[j], s.arr[j+1] = s.arr[j+1], s.arr[j]
				swapped = true
				s.step(fmt.Sprintf("Swapping %d and %d", s.arr[j], s.arr[j+1]),
					frame.Mark(frame.RoleSwapping, j, j+1))
			}
		}
		s.markSorted(n - 1 - i)
		s.step(fmt.Sprintf("%d is now in sorted position", s.arr[n-1-i]))

		if s.opts.EarlyExit && !swapped {
			break
		}
	}

	return s.finish()
}

// SelectionSort moves the minimum of the unsorted suffix to its front.
func SelectionSort(values []int, opts ...Option) frame.Sequence {
	s := newSorter(values, opts)
	n := len(s.arr)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			s.step(fmt.Sprintf("Finding minimum: comparing current min %d with %d", s.arr[minIdx], s.arr[j]),
				frame.Mark(frame.RoleComparing, minIdx, j))
			if s.arr[j] < s.arr[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			s.arr[i], s.arr[minIdx] = s.arr[minIdx], s.arr[i]
			s.step(fmt.Sprintf("Swapped minimum %d to position %d", s.arr[i], i),
				frame.Mark(frame.RoleSwapping, i, minIdx))
		}
		s.markSorted(i)
	}

	return s.finish()
}

// InsertionSort grows a sorted prefix by shifting larger elements right.
func InsertionSort(values []int, opts ...Option) frame.Sequence {
	s := newSorter(values, opts)
	n := len(s.arr)
	if n > 0 {
		s.markSorted(0)
	}
	for i := 1; i < n; i++ {
		key := s.arr[i]
		j := i - 1
		s.step(fmt.Sprintf("Selected %d to insert into sorted portion", key),
			frame.Mark(frame.RoleCurrent, i))

		for j >= 0 && s.arr[j] > key {
			s.step(fmt.Sprintf("%d > %d, shifting %d right", s.arr[j], key, s.arr[j]),
				frame.Mark(frame.RoleComparing, j, j+1))
			s.arr[j+1] = s.arr[j]
			s.arr[j] = key
			s.step("Shifted", frame.Mark(frame.RoleSwapping, j, j+1))
			j--
		}
		s.markSorted(i)
		s.step(fmt.Sprintf("Inserted %d at position %d", key, j+1))
	}

	return s.finish()
}
