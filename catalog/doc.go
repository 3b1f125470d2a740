// SPDX-License-Identifier: MIT

// Package catalog is the single entry point for running an algorithm by ID.
//
// Every supported algorithm has a stable ID (bubble_sort, graph_bfs, ...),
// an Entry with presentation metadata loaded from an embedded YAML file,
// and a generator that turns Params into a frame.Sequence:
//
//	p, _ := catalog.DefaultParams(catalog.BinarySearch)
//	run, err := catalog.Generate(catalog.BinarySearch, p)
//	if err != nil { ... }
//	last, _ := run.Frames.Last()
//	fmt.Println(last.Description)
//
// Errors from Generate match frame.ErrInvalidInput, plus ErrMissingParam,
// ErrUnknownAlgorithm or ErrInputTooLarge where applicable.
package catalog
