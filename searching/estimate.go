// SPDX-License-Identifier: MIT
//
// File: estimate.go
// Role: value-guided and Fibonacci/ternary splitting searches.

package searching

import (
	"fmt"

	"github.com/katalvlaran/algoviz/frame"
)

// InterpolationSearch estimates the next position from the target value:
//
//	pos = lo + (target-arr[lo])*(hi-lo)/(arr[hi]-arr[lo])
//
// The loop runs while lo <= hi and arr[lo] <= target <= arr[hi]. Equal end
// values collapse the estimate to lo. The formula is carried in the
// "formula" scalar.
func InterpolationSearch(values []int, target int) frame.Sequence {
	n := len(values)
	s := newSearcher(values, target, fmt.Sprintf("Searching for %d in [0, %d]", target, n-1), bounds(0, n-1))

	lo, hi := 0, n-1
	for lo <= hi && target >= s.arr[lo] && target <= s.arr[hi] {
		if lo == hi {
			s.step(fmt.Sprintf("Single element range at index %d", lo),
				bounds(lo, hi), frame.Mark(frame.RoleComparing, lo))
			if s.arr[lo] == target {
				return s.found(lo, fmt.Sprintf("Found %d at single element range (index %d)", target, lo))
			}
			break
		}

		pos, formula := estimate(s.arr, lo, hi, target)
		s.step("Estimating position", bounds(lo, hi), frame.Mark(frame.RoleCurrent, pos),
			frame.Text("formula", formula), frame.Int("pos", pos))

		switch {
		case s.arr[pos] == target:
			return s.foundAt(pos)
		case s.arr[pos] < target:
			lo = pos + 1
			s.step(fmt.Sprintf("%d < %d, look higher", s.arr[pos], target), bounds(lo, hi))
		default:
			hi = pos - 1
			s.step(fmt.Sprintf("%d > %d, look lower", s.arr[pos], target), bounds(lo, hi))
		}
	}

	return s.missing()
}

// estimate computes the interpolated index clamped to [lo, hi].
func estimate(arr []int, lo, hi, target int) (int, string) {
	den := arr[hi] - arr[lo]
	pos := lo
	if den != 0 {
		pos = lo + floorDiv((target-arr[lo])*(hi-lo), den)
	}
	pos = max(lo, min(pos, hi))
	formula := fmt.Sprintf("pos = %d + ((%d-%d) * (%d-%d) / (%d-%d)) = %d",
		lo, target, arr[lo], hi, lo, arr[hi], arr[lo], pos)

	return pos, formula
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

// FibonacciSearch splits the range at Fibonacci offsets. fibM is the
// smallest Fibonacci number >= n; each checked index is min(offset+fib2, n-1).
//
// The final single-candidate check also requires offset+1 < n.
func FibonacciSearch(values []int, target int) frame.Sequence {
	n := len(values)
	fib2, fib1 := 0, 1
	fibM := fib2 + fib1
	for fibM < n {
		fib2, fib1 = fib1, fibM
		fibM = fib2 + fib1
	}
	fibs := func() []frame.Annotation {
		return []frame.Annotation{frame.Int("fibM", fibM), frame.Int("fib1", fib1), frame.Int("fib2", fib2)}
	}

	s := newSearcher(values, target,
		fmt.Sprintf("Initialized fibM=%d, fib1=%d, fib2=%d", fibM, fib1, fib2), fibs()...)

	offset := -1
	for fibM > 1 {
		i := min(offset+fib2, n-1)
		s.step(fmt.Sprintf("Comparing at index %d (offset %d + fib2 %d)", i, offset, fib2),
			append(fibs(), bounds(offset+1, n-1), frame.Mark(frame.RoleComparing, i))...)

		switch {
		case s.arr[i] < target:
			fibM = fib1
			fib1 = fib2
			fib2 = fibM - fib1
			offset = i
			s.step(fmt.Sprintf("%d < %d, eliminate left part and shift fibs down by one", s.arr[i], target),
				append(fibs(), bounds(offset+1, n-1), frame.Int("offset", offset))...)
		case s.arr[i] > target:
			fibM = fib2
			fib1 = fib1 - fib2
			fib2 = fibM - fib1
			s.step(fmt.Sprintf("%d > %d, eliminate right part and shift fibs down by two", s.arr[i], target),
				append(fibs(), bounds(offset+1, n-1), frame.Int("offset", offset))...)
		default:
			return s.foundAt(i)
		}
	}

	if fib1 == 1 && offset+1 < n {
		s.step(fmt.Sprintf("Checking last candidate at index %d", offset+1),
			frame.Mark(frame.RoleComparing, offset+1))
		if s.arr[offset+1] == target {
			return s.foundAt(offset + 1)
		}
	}

	return s.missing()
}

// TernarySearch splits [l, r] at m1 = l+(r-l)/3 and m2 = r-(r-l)/3.
func TernarySearch(values []int, target int) frame.Sequence {
	n := len(values)
	s := newSearcher(values, target, fmt.Sprintf("Searching for %d in [0, %d]", target, n-1), bounds(0, n-1))

	l, r := 0, n-1
	for r >= l {
		m1 := l + (r-l)/3
		m2 := r - (r-l)/3
		s.step(fmt.Sprintf("Range [%d, %d]: mid1=%d, mid2=%d", l, r, m1, m2),
			bounds(l, r), frame.Mark(frame.RoleComparing, m1, m2),
			frame.Int("mid1", m1), frame.Int("mid2", m2))

		switch {
		case s.arr[m1] == target:
			return s.found(m1, fmt.Sprintf("Found %d at mid1 (%d)", target, m1))
		case s.arr[m2] == target:
			return s.found(m2, fmt.Sprintf("Found %d at mid2 (%d)", target, m2))
		case target < s.arr[m1]:
			r = m1 - 1
			s.step(fmt.Sprintf("%d < %d, search left third", target, s.arr[m1]), bounds(l, r))
		case target > s.arr[m2]:
			l = m2 + 1
			s.step(fmt.Sprintf("%d > %d, search right third", target, s.arr[m2]), bounds(l, r))
		default:
			l, r = m1+1, m2-1
			s.step(fmt.Sprintf("Between %d and %d, search middle third", s.arr[m1], s.arr[m2]), bounds(l, r))
		}
	}

	return s.missing()
}
