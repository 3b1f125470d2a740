// SPDX-License-Identifier: MIT
//
// File: divide.go
// Role: divide-and-conquer sorts (Merge, Quick) as genuine recursion over one recorder.

package sorting

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/algoviz/frame"
)

// MergeSort sorts by recursive halving and merging.
func MergeSort(values []int, opts ...Option) frame.Sequence {
	s := newSorter(values, opts)
	s.mergeSort(0, len(s.arr)-1)

	return s.finish()
}

func (s *sorter) mergeSort(left, right int) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	s.mergeSort(left, mid)
	s.mergeSort(mid+1, right)
	s.merge(left, mid, right)
}

// merge combines arr[left..mid] and arr[mid+1..right]. Writes made by the
// outermost merge are final, so they join the sorted set.
func (s *sorter) merge(left, mid, right int) {
	outermost := left == 0 && right == len(s.arr)-1
	L := append([]int{}, s.arr[left:mid+1]...)
	R := append([]int{}, s.arr[mid+1:right+1]...)

	s.step(fmt.Sprintf("Merging subarrays: [%s] and [%s]", join(L), join(R)),
		frame.Mark(frame.RoleRangeBound, left, right))

	place := func(k int, description string) {
		if outermost {
			s.markSorted(k)
		}
		s.step(description, frame.Mark(frame.RoleSwapping, k))
	}

	i, j, k := 0, 0, left
	for i < len(L) && j < len(R) {
		s.step(fmt.Sprintf("Comparing %d and %d", L[i], R[j]),
			frame.Mark(frame.RoleComparing, left+i, mid+1+j))
		if L[i] <= R[j] {
			s.arr[k] = L[i]
			i++
		} else {
			s.arr[k] = R[j]
			j++
		}
		place(k, fmt.Sprintf("Placed %d at position %d", s.arr[k], k))
		k++
	}
	for ; i < len(L); i, k = i+1, k+1 {
		s.arr[k] = L[i]
		place(k, fmt.Sprintf("Placed remaining %d at position %d", s.arr[k], k))
	}
	for ; j < len(R); j, k = j+1, k+1 {
		s.arr[k] = R[j]
		place(k, fmt.Sprintf("Placed remaining %d at position %d", s.arr[k], k))
	}
}

// QuickSort sorts by Lomuto partitioning around the last element.
func QuickSort(values []int, opts ...Option) frame.Sequence {
	s := newSorter(values, opts)
	s.quickSort(0, len(s.arr)-1)

	return s.finish()
}

func (s *sorter) quickSort(low, high int) {
	if low > high {
		return
	}
	if low == high {
		s.markSorted(low)
		return
	}
	p := s.partition(low, high)
	s.quickSort(low, p-1)
	s.quickSort(p+1, high)
}

func (s *sorter) partition(low, high int) int {
	pivot := s.arr[high]
	i := low - 1

	s.step(fmt.Sprintf("Partitioning with pivot %d at index %d", pivot, high),
		frame.Mark(frame.RolePivot, high), frame.Mark(frame.RoleRangeBound, low, high), frame.Int("pivot", high))

	for j := low; j < high; j++ {
		s.step(fmt.Sprintf("Comparing %d with pivot %d", s.arr[j], pivot),
			frame.Mark(frame.RoleComparing, j, high), frame.Mark(frame.RolePivot, high), frame.Int("pivot", high))
		if s.arr[j] < pivot {
			i++
			s.arr[i], s.arr[j] = s.arr[j], s.arr[i]
			s.step(fmt.Sprintf("Swapping %d and %d", s.arr[i], s.arr[j]),
				frame.Mark(frame.RoleSwapping, i, j), frame.Mark(frame.RolePivot, high), frame.Int("pivot", high))
		}
	}

	p := i + 1
	s.arr[p], s.arr[high] = s.arr[high], s.arr[p]
	s.markSorted(p)
	s.step(fmt.Sprintf("Placed pivot %d at correct position %d", pivot, p),
		frame.Mark(frame.RoleSwapping, p, high), frame.Mark(frame.RolePivot, p), frame.Int("pivot", p))

	return p
}

func join(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}
