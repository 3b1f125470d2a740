// SPDX-License-Identifier: MIT
//
// File: budget.go
// Role: worst-case frame counts, checked before a generator runs.
//
// Bounds (n = Params.size()):
//   - Bubble, Selection, Insertion, Quick: n² + n + 2
//   - Merge: 2·n·bitlen(n) + 2
//   - everything else: 4·n + 16 (at most a few frames per element)

package catalog

import "math/bits"

// DefaultMaxFrames bounds the frames of one run made by the package-level
// Generate. 90 values is the largest quadratic sort it admits.
const DefaultMaxFrames = 8192

// quadratic lists generators whose frame count grows with n².
var quadratic = map[ID]bool{
	BubbleSort:    true,
	SelectionSort: true,
	InsertionSort: true,
	QuickSort:     true,
}

// estimateFrames returns an upper bound on the frames id records for p.
func estimateFrames(id ID, p Params) int {
	n := p.size()
	switch {
	case quadratic[id]:
		return n*n + n + 2
	case id == MergeSort:
		return 2*n*bits.Len(uint(n)) + 2
	default:
		return 4*n + 16
	}
}
