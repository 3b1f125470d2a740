// SPDX-License-Identifier: MIT
//
// File: state.go
// Role: traversal snapshot shared by the bfs and dfs generators.

package graph

import "github.com/katalvlaran/algoviz/frame"

// State is one instant of a graph traversal.
//
// Visited lists vertices in visit order. Frontier holds the pending queue
// (BFS) or the active recursion stack, bottom first (DFS). Current is the
// vertex being visited, or Nil.
type State struct {
	Graph    Graph `json:"graph" yaml:"graph"`
	Visited  []int `json:"visited" yaml:"visited"`
	Frontier []int `json:"frontier" yaml:"frontier"`
	Current  int   `json:"current" yaml:"current"`
}

// NewState returns the initial traversal state over a copy of g.
func NewState(g *Graph) State {
	return State{Graph: g.copy(), Current: Nil}
}

// Kind implements frame.State.
func (State) Kind() frame.Kind { return frame.KindGraph }

// Clone implements frame.State.
func (s State) Clone() frame.State { return s.Copy() }

// Copy returns a deep copy with the concrete type preserved.
func (s State) Copy() State {
	s.Graph = s.Graph.copy()
	s.Visited = append([]int(nil), s.Visited...)
	s.Frontier = append([]int(nil), s.Frontier...)

	return s
}
