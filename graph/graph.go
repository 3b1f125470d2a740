// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Vertex/Edge/Graph model, construction and neighbor enumeration.
//
// Determinism:
//   - Vertex ids are assigned densely in insertion order (0, 1, 2, ...).
//   - Neighbors() returns ids sorted ascending.

// Package graph defines the small, id-addressed graph model walked by the
// bfs and dfs frame generators.
//
// A Graph is a plain value: Vertices are indexed by ID, Edges are stored as
// inserted. Undirected graphs treat every edge as usable in both
// directions. Self-loops and parallel edges are rejected.
package graph

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/algoviz/frame"
)

// Sentinel errors for graph construction.
var (
	// ErrEmptyLabel indicates a vertex with an empty label.
	ErrEmptyLabel = errors.New("graph: vertex label is empty")

	// ErrDuplicateLabel indicates a second vertex with an existing label.
	ErrDuplicateLabel = errors.New("graph: duplicate vertex label")

	// ErrVertexNotFound indicates an edge or query referencing a missing vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge.
	ErrMultiEdgeNotAllowed = errors.New("graph: multi-edges not allowed")

	// ErrInconsistent indicates vertex ids that are not dense and ordered.
	ErrInconsistent = errors.New("graph: inconsistent vertex ids")
)

// Vertex is one labelled node.
type Vertex struct {
	ID    int    `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// Edge connects From to To. For undirected graphs the order is irrelevant.
type Edge struct {
	From int `json:"from" yaml:"from"`
	To   int `json:"to" yaml:"to"`
}

// Graph is a vertex list plus an edge list.
type Graph struct {
	Vertices []Vertex `json:"vertices" yaml:"vertices"`
	Edges    []Edge   `json:"edges" yaml:"edges"`
	Directed bool     `json:"directed" yaml:"directed"`
}

// Option configures a Graph at construction.
type Option func(*Graph)

// WithDirected makes every edge one-way.
func WithDirected() Option {
	return func(g *Graph) { g.Directed = true }
}

// New returns an empty graph.
func New(opts ...Option) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddVertex appends a vertex labelled label and returns its id.
func (g *Graph) AddVertex(label string) (int, error) {
	if label == "" {
		return Nil, ErrEmptyLabel
	}
	if _, ok := g.Lookup(label); ok {
		return Nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
	}
	id := len(g.Vertices)
	g.Vertices = append(g.Vertices, Vertex{ID: id, Label: label})

	return id, nil
}

// AddEdge connects from and to.
func (g *Graph) AddEdge(from, to int) error {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return fmt.Errorf("%w: edge %d-%d", ErrVertexNotFound, from, to)
	}
	if from == to {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, from)
	}
	for _, e := range g.Edges {
		if (e.From == from && e.To == to) || (!g.Directed && e.From == to && e.To == from) {
			return fmt.Errorf("%w: %d-%d", ErrMultiEdgeNotAllowed, from, to)
		}
	}
	g.Edges = append(g.Edges, Edge{From: from, To: to})

	return nil
}

// Nil is the absent-vertex id.
const Nil = -1

// HasVertex reports whether id names a vertex.
func (g *Graph) HasVertex(id int) bool { return id >= 0 && id < len(g.Vertices) }

// Lookup returns the id of the vertex labelled label.
func (g *Graph) Lookup(label string) (int, bool) {
	for _, v := range g.Vertices {
		if v.Label == label {
			return v.ID, true
		}
	}

	return Nil, false
}

// Label returns the label of id, or "?" for an unknown id.
func (g *Graph) Label(id int) string {
	if !g.HasVertex(id) {
		return "?"
	}

	return g.Vertices[id].Label
}

// Labels maps ids to labels.
func (g *Graph) Labels(ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = g.Label(id)
	}

	return out
}

// Neighbors returns the ids reachable from id over one edge, ascending.
func (g *Graph) Neighbors(id int) []int {
	var out []int
	for _, e := range g.Edges {
		switch {
		case e.From == id:
			out = append(out, e.To)
		case !g.Directed && e.To == id:
			out = append(out, e.From)
		}
	}
	sort.Ints(out)

	return out
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	cp := g.copy()
	return &cp
}

func (g Graph) copy() Graph {
	g.Vertices = append([]Vertex(nil), g.Vertices...)
	g.Edges = append([]Edge(nil), g.Edges...)

	return g
}

// Validate checks dense vertex ids, unique labels and edge endpoints.
func (g *Graph) Validate() error {
	seen := make(map[string]bool, len(g.Vertices))
	for i, v := range g.Vertices {
		if v.ID != i {
			return frame.Invalidf(ErrInconsistent, "vertex at %d has id %d", i, v.ID)
		}
		if v.Label == "" {
			return frame.Invalidf(ErrEmptyLabel, "vertex %d", i)
		}
		if seen[v.Label] {
			return frame.Invalidf(ErrDuplicateLabel, "%q", v.Label)
		}
		seen[v.Label] = true
	}
	for _, e := range g.Edges {
		if !g.HasVertex(e.From) || !g.HasVertex(e.To) {
			return frame.Invalidf(ErrVertexNotFound, "edge %d-%d", e.From, e.To)
		}
		if e.From == e.To {
			return frame.Invalidf(ErrLoopNotAllowed, "%d", e.From)
		}
	}

	return nil
}
