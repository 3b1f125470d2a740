// Package algoviz turns classic algorithms into replayable frame sequences:
// every comparison, swap, pointer move and visit becomes one snapshot with a
// human-readable description, ready to be stepped through or played back.
//
// 🚀 What is algoviz?
//
//	A deterministic, dependency-light library (plus a small HTTP service) that brings together:
//		• Sorting: Bubble, Selection, Insertion, Merge, Quick
//		• Searching: Linear, Binary, Jump, Interpolation, Exponential, Fibonacci, Ternary
//		• Linear structures: array insert/delete/reverse/rotate, stacks, queues, linked lists
//		• Trees: BST insert/search, four traversals, max-heap insert/extract
//		• Graphs: BFS, DFS over a small labelled graph
//		• Hashing: separate chaining with narrated collisions
//		• Playback: play/pause/step/seek/reset over any recorded sequence
//
// ✨ Guarantees
//
//   - Same input, same frames: generation is synchronous, total and seed-free
//   - First frame is the input, last frame is the only terminal one
//   - Invalid input is an error before any frame; algorithmic dead ends
//     (overflow, not found, duplicates) are terminal frames
//
// Under the hood, everything is organized in flat subpackages:
//
//	frame/           Frame, Recorder, Sequence and shared error classes
//	sorting/, searching/, arrayops/, stack/, queue/, linkedlist/, tree/,
//	graph/, bfs/, dfs/, hashing/
//	                 one frame generator family each
//	builder/         seeded datasets and graph topologies
//	catalog/         algorithm IDs, metadata and Generate(id, params)
//	playback/        the transport controller
//	cmd/visualizerd  HTTP service over catalog and playback
//
// Quick example:
//
//	run, _ := catalog.Generate(catalog.BubbleSort, catalog.Params{Values: []int{5, 3, 4, 1, 2}})
//	ctl := playback.New()
//	_ = ctl.Load(run.Frames)
//	ctl.Play()
//
//	go get github.com/katalvlaran/algoviz
package algoviz
