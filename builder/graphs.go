// SPDX-License-Identifier: MIT
//
// File: graphs.go
// Role: BuildGraph orchestrator and topology constructors.
//
// Determinism:
//   - Vertices are added in ascending index order with labels from cfg.idFn.
//   - Edges are emitted in a fixed order per constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/algoviz/graph"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters first and return
// sentinel errors instead of panicking.
type Constructor func(g *graph.Graph, cfg builderConfig) error

// Canonical constructor names used in error context.
const (
	MethodPath     = "Path"
	MethodCycle    = "Cycle"
	MethodStar     = "Star"
	MethodComplete = "Complete"
)

// Minimum vertex counts.
const (
	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinCompleteNodes = 1
)

// BuildGraph creates a graph with gopts, resolves bopts and applies cons in
// order. Constructor errors are wrapped with "BuildGraph: %w".
func BuildGraph(gopts []graph.Option, bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	g := graph.New(gopts...)
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices appends n labelled vertices and returns their ids.
func addVertices(method string, g *graph.Graph, cfg builderConfig, n int) ([]int, error) {
	ids := make([]int, n)
	for i := 0; i < n; i++ {
		id, err := g.AddVertex(cfg.idFn(i))
		if err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, cfg.idFn(i), err)
		}
		ids[i] = id
	}

	return ids, nil
}

func addEdge(method string, g *graph.Graph, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s): %w: %w", method, g.Label(u), g.Label(v), ErrConstructFailed, err)
	}

	return nil
}

// Path returns a Constructor that builds the simple path P_n: 0-1-...-(n-1).
func Path(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(MethodPath, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(MethodPath, g, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds C_n: a path closed by (n-1)-0.
func Cycle(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(MethodCycle, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(MethodCycle, g, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor with hub index 0 and spokes hub→leaf for
// leaves 1..n-1.
func Star(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(MethodStar, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(MethodStar, g, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor for K_n. Directed graphs get both arcs of
// every pair.
func Complete(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(MethodComplete, g, cfg, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(MethodComplete, g, ids[i], ids[j]); err != nil {
					return err
				}
				if g.Directed {
					if err = addEdge(MethodComplete, g, ids[j], ids[i]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// sampleEdges is the A-F tree shown by the traversal lessons.
var sampleEdges = [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}, {2, 5}}

// SampleGraph returns the six-vertex lesson graph:
//
//	    A
//	   / \
//	  B   C
//	 / \   \
//	D   E   F
func SampleGraph(gopts ...graph.Option) *graph.Graph {
	g := graph.New(gopts...)
	for i := 0; i < 6; i++ {
		_, _ = g.AddVertex(ExcelColumnIDFn(i))
	}
	for _, e := range sampleEdges {
		_ = g.AddEdge(e[0], e[1])
	}

	return g
}
