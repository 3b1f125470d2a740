// SPDX-License-Identifier: MIT

// Package searching produces step-by-step frame sequences for seven array
// searches: Linear, Binary, Jump, Interpolation, Exponential, Fibonacci and
// Ternary.
//
// Each generator reproduces textbook index arithmetic exactly (integer floor
// division, inclusive bounds). Frames highlight the live candidate range with
// RoleRangeBound and the inspected index with RoleCurrent or RoleComparing.
//
// A run ends in exactly one of:
//
//   - OutcomeFound, with a RoleFound highlight on the matching index and the
//     "index" scalar;
//   - OutcomeNotFound, with no highlights at all.
//
// Sortedness is the caller's responsibility and is not validated; an
// unsorted array yields a well-formed (if unhelpful) sequence. An empty array
// is valid input and ends in OutcomeNotFound.
package searching
