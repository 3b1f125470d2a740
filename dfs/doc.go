// SPDX-License-Identifier: MIT

// Package dfs records a recursive depth-first traversal over a graph.Graph
// as a frame.Sequence.
//
// What:
//
//   - DFS explores as far as possible along each branch before backtracking,
//     using ordinary Go recursion.
//   - One "Visiting node X" frame per vertex.
//   - One "Exploring neighbors of X" frame when X still has unvisited
//     neighbors; revisits are skipped without a frame.
//   - The recursion stack is exposed as State.Frontier and the "stack" scalar.
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//   - WithMaxDepth(limit)       stops recursion beyond given depth (>=0).
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing.
//   - context.Canceled          if ctx is done.
package dfs
