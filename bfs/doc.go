// SPDX-License-Identifier: MIT

// Package bfs records a breadth-first search over a graph.Graph as a
// frame.Sequence.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - One "Visiting node X" frame per dequeued vertex.
//   - One "Adding neighbors of X to queue" frame whenever X discovers at
//     least one new vertex; already discovered vertices are skipped without
//     a frame.
//   - The FIFO frontier is carried in every frame's State.Frontier and
//     rendered in the "queue" scalar.
//   - The terminal frame highlights the full visit order as visited.
//
// Determinism
//
//	graph.Neighbors returns ids ascending and BFS enqueues them in that
//	order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V * E) with the edge-list neighbor scan, O(V) frames.
//   - Memory: O(V) per frame snapshot.
//
// Options
//
//   - WithContext(ctx):   set a custom context for cancellation.
//   - WithMaxDepth(d):    do not discover vertices beyond depth d (>0).
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//
// All three wrap frame.ErrInvalidInput.
package bfs
