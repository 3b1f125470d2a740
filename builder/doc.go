// SPDX-License-Identifier: MIT

// Package builder produces deterministic datasets for the frame generators:
// random and sorted arrays, graph topologies, and ready-made trees, hash
// tables, stacks, queues and linked lists.
//
// Graphs are assembled with BuildGraph from Constructors (Path, Cycle, Star,
// Complete) under functional BuilderOptions. Vertex labels come from an IDFn
// (ExcelColumnIDFn by default: A, B, ..., Z, AA, AB, ...).
//
// Randomness is explicit: RandomArray draws from a *rand.Rand resolved from
// WithSeed or WithRand. Seed 0 maps to a fixed default seed, so the same
// options always yield the same dataset.
package builder
