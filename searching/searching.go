// SPDX-License-Identifier: MIT

package searching

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algoviz/frame"
)

// Search dispatches to the generator for alg.
func Search(alg Algorithm, values []int, target int) (frame.Sequence, error) {
	switch alg {
	case Linear:
		return LinearSearch(values, target), nil
	case Binary:
		return BinarySearch(values, target), nil
	case Jump:
		return JumpSearch(values, target), nil
	case Interpolation:
		return InterpolationSearch(values, target), nil
	case Exponential:
		return ExponentialSearch(values, target), nil
	case Fibonacci:
		return FibonacciSearch(values, target), nil
	case Ternary:
		return TernarySearch(values, target), nil
	default:
		return nil, frame.Invalidf(ErrUnknownAlgorithm, "%q", alg)
	}
}

// LinearSearch checks every index in order.
func LinearSearch(values []int, target int) frame.Sequence {
	s := newSearcher(values, target, fmt.Sprintf("Searching for %d", target))
	for i, v := range s.arr {
		s.step(fmt.Sprintf("Checking index %d: is %d == %d?", i, v, target),
			frame.Mark(frame.RoleComparing, i))
		if v == target {
			return s.foundAt(i)
		}
	}

	return s.missing()
}

// BinarySearch narrows the inclusive range [left, right] around
// mid = (left+right)/2 until it is found or left > right.
func BinarySearch(values []int, target int) frame.Sequence {
	n := len(values)
	s := newSearcher(values, target, fmt.Sprintf("Initialize left = 0, right = %d", n-1),
		bounds(0, n-1), frame.Int("left", 0), frame.Int("right", n-1))
	if i, ok := s.binary(0, n-1); ok {
		return s.foundAt(i)
	}

	return s.missing()
}

// binary runs the textbook loop on [l, r] and reports the match index.
func (s *searcher) binary(l, r int) (int, bool) {
	for l <= r {
		m := (l + r) / 2
		s.step(fmt.Sprintf("Calculate mid = floor((%d + %d) / 2) = %d", l, r, m),
			bounds(l, r), frame.Mark(frame.RoleCurrent, m),
			frame.Int("left", l), frame.Int("right", r), frame.Int("mid", m))
		s.step(fmt.Sprintf("Comparing target %d with mid value %d", s.target, s.arr[m]),
			bounds(l, r), frame.Mark(frame.RoleComparing, m),
			frame.Int("left", l), frame.Int("right", r), frame.Int("mid", m))

		switch {
		case s.arr[m] == s.target:
			return m, true
		case s.arr[m] < s.target:
			l = m + 1
			s.step(fmt.Sprintf("%d < %d, searching right half (left = mid + 1)", s.arr[m], s.target),
				bounds(l, r), frame.Int("left", l), frame.Int("right", r))
		default:
			r = m - 1
			s.step(fmt.Sprintf("%d > %d, searching left half (right = mid - 1)", s.arr[m], s.target),
				bounds(l, r), frame.Int("left", l), frame.Int("right", r))
		}
	}

	return -1, false
}

// JumpSearch checks block ends of width floor(sqrt(n)), then scans the
// block that may hold the target.
func JumpSearch(values []int, target int) frame.Sequence {
	n := len(values)
	width := int(math.Sqrt(float64(n)))
	s := newSearcher(values, target, fmt.Sprintf("Block size = sqrt(%d) = %d", n, width), frame.Int("step", width))
	if n == 0 {
		return s.missing()
	}

	prev, step := 0, width
	for s.arr[min(step, n)-1] < target {
		end := min(step, n) - 1
		s.step(fmt.Sprintf("Target %d > %d (at index %d)", target, s.arr[end], end),
			bounds(prev, end), frame.Mark(frame.RoleComparing, end), frame.Int("step", width))
		prev = step
		step += width
		if prev >= n {
			return s.notFound("Target not found (passed end of array)")
		}
		s.step(fmt.Sprintf("Jumping ahead to index %d", prev),
			frame.Mark(frame.RoleCurrent, prev), frame.Int("step", width))
	}

	end := min(step, n)
	s.step(fmt.Sprintf("Target is in block [%d, %d]", prev, end),
		bounds(prev, end-1), frame.Int("step", width))

	for s.arr[prev] < target {
		s.step(fmt.Sprintf("Checking index %d: %d < %d", prev, s.arr[prev], target),
			bounds(prev, end-1), frame.Mark(frame.RoleCurrent, prev))
		prev++
		if prev == end {
			return s.notFound("Target not found in block")
		}
	}

	s.step(fmt.Sprintf("Checking index %d: %d", prev, s.arr[prev]), frame.Mark(frame.RoleComparing, prev))
	if s.arr[prev] == target {
		return s.foundAt(prev)
	}

	return s.missing()
}

// ExponentialSearch checks index 0, doubles i while arr[i] <= target, then
// binary-searches [i/2, min(i, n-1)].
func ExponentialSearch(values []int, target int) frame.Sequence {
	n := len(values)
	s := newSearcher(values, target, fmt.Sprintf("Searching for %d", target))
	if n == 0 {
		return s.missing()
	}

	s.step(fmt.Sprintf("Checking index 0: %d", s.arr[0]), frame.Mark(frame.RoleComparing, 0))
	if s.arr[0] == target {
		return s.foundAt(0)
	}

	i := 1
	s.step("Starting exponential range finding", frame.Mark(frame.RoleCurrent, i))
	for i < n && s.arr[i] <= target {
		s.step(fmt.Sprintf("Index %d (%d) <= %d, doubling index", i, s.arr[i], target),
			bounds(i/2, i), frame.Mark(frame.RoleCurrent, i))
		i *= 2
	}

	left, right := i/2, min(i, n-1)
	s.step(fmt.Sprintf("Target is in range [%d, %d], starting binary search", left, right),
		bounds(left, right), frame.Int("left", left), frame.Int("right", right))
	if idx, ok := s.binary(left, right); ok {
		return s.foundAt(idx)
	}

	return s.missing()
}
