// SPDX-License-Identifier: MIT

// Package sorting produces step-by-step frame sequences for the five
// classic comparison sorts: Bubble, Selection, Insertion, Merge and Quick.
//
// What
//
//   - Every comparison is preceded by a frame highlighting the compared
//     indices (RoleComparing).
//   - Every swap or placement is followed by a frame highlighting the
//     written indices (RoleSwapping).
//   - Every frame carries the cumulative RoleSorted set; once an index is
//     reported sorted it stays sorted for the rest of the run.
//   - The terminal frame holds the sorted array, all indices sorted, and
//     OutcomeDone.
//
// Algorithms
//
//   - Bubble: n-1 full passes; index n-1-i is final after pass i.
//     WithEarlyExit stops after the first pass without swaps.
//   - Selection: index i is final after pass i.
//   - Insertion: the prefix [0, i] is sorted after inserting element i.
//     Each shift is one comparing frame and one swapping frame.
//   - Merge: top-down recursion with mid = left + (right-left)/2; positions
//     written by the outermost merge are final.
//   - Quick: Lomuto partition, pivot = arr[high]. Each partition frame
//     carries the pivot highlight and the "pivot" scalar; the pivot's final
//     index and single-element subranges become sorted.
//
// Determinism
//
//	Generators are pure: identical input and options yield deeply equal
//	sequences.
//
// Complexity
//
//	Frame count is proportional to the number of comparisons plus writes:
//	O(n²) for Bubble/Selection/Insertion, O(n log n) for Merge, and
//	O(n log n) expected / O(n²) worst for Quick.
//
// Usage
//
//	seq, err := sorting.Sort(sorting.Bubble, []int{5, 3, 4, 1, 2})
//	if err != nil {
//		// errors.Is(err, frame.ErrInvalidInput)
//	}
//	last, _ := seq.Last()
package sorting
