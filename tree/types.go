// SPDX-License-Identifier: MIT

package tree

import (
	"errors"

	"github.com/katalvlaran/algoviz/frame"
)

// Nil is the null child link.
const Nil = -1

// Sentinel errors for tree and heap operations.
var (
	// ErrInconsistent indicates broken child links (unreachable or shared
	// nodes, dangling ids).
	ErrInconsistent = errors.New("tree: inconsistent links")

	// ErrNotBST indicates a node set that violates strict BST ordering.
	ErrNotBST = errors.New("tree: binary search tree ordering violated")

	// ErrInvalidCapacity indicates a heap capacity below 1 or below its size.
	ErrInvalidCapacity = errors.New("tree: invalid heap capacity")

	// ErrNotHeap indicates an array violating the max-heap property.
	ErrNotHeap = errors.New("tree: max-heap property violated")

	// ErrUnknownOrder indicates an unsupported traversal order.
	ErrUnknownOrder = errors.New("tree: unknown traversal order")
)

// Node is one arena cell of a binary tree.
type Node struct {
	ID    int `json:"id" yaml:"id"`
	Value int `json:"value" yaml:"value"`
	Left  int `json:"left" yaml:"left"`
	Right int `json:"right" yaml:"right"`
}

// State is an id-addressed binary search tree snapshot. Nodes are kept in
// ascending ID order.
type State struct {
	Nodes  []Node `json:"nodes" yaml:"nodes"`
	Root   int    `json:"root" yaml:"root"`
	NextID int    `json:"nextId" yaml:"nextId"`
}

// Empty returns a tree with no nodes.
func Empty() State { return State{Root: Nil} }

// NewBST inserts values in order into an empty tree, ignoring duplicates.
func NewBST(values ...int) State {
	s := Empty()
	for _, v := range values {
		s.insert(v)
	}

	return s
}

// Kind implements frame.State.
func (State) Kind() frame.Kind { return frame.KindTree }

// Clone implements frame.State.
func (s State) Clone() frame.State { return s.copy() }

func (s State) copy() State {
	s.Nodes = append([]Node(nil), s.Nodes...)
	return s
}

// Len returns the number of nodes.
func (s State) Len() int { return len(s.Nodes) }

// Node returns the node with id.
func (s State) Node(id int) (Node, bool) {
	if p := s.node(id); p != nil {
		return *p, true
	}

	return Node{}, false
}

func (s *State) node(id int) *Node {
	for i := range s.Nodes {
		if s.Nodes[i].ID == id {
			return &s.Nodes[i]
		}
	}

	return nil
}

func (s *State) create(value int) int {
	id := s.NextID
	s.NextID++
	s.Nodes = append(s.Nodes, Node{ID: id, Value: value, Left: Nil, Right: Nil})

	return id
}

// insert adds value without recording frames; duplicates are ignored.
func (s *State) insert(value int) {
	if s.Root == Nil {
		s.Root = s.create(value)
		return
	}
	for cur := s.Root; ; {
		nd := s.node(cur)
		switch {
		case value < nd.Value:
			if nd.Left == Nil {
				id := s.create(value)
				s.node(cur).Left = id
				return
			}
			cur = nd.Left
		case value > nd.Value:
			if nd.Right == Nil {
				id := s.create(value)
				s.node(cur).Right = id
				return
			}
			cur = nd.Right
		default:
			return
		}
	}
}

// Values returns node values in order (sorted for a valid BST).
func (s State) Values() []int {
	var out []int
	var walk func(id int)
	walk = func(id int) {
		if id == Nil {
			return
		}
		nd := s.node(id)
		walk(nd.Left)
		out = append(out, nd.Value)
		walk(nd.Right)
	}
	walk(s.Root)

	return out
}

// Validate checks that every node is reachable exactly once from Root and
// that values obey strict BST ordering.
func (s State) Validate() error {
	ids := make(map[int]bool, len(s.Nodes))
	for _, nd := range s.Nodes {
		if ids[nd.ID] || nd.ID < 0 || nd.ID >= s.NextID {
			return frame.Invalidf(ErrInconsistent, "bad node id %d", nd.ID)
		}
		ids[nd.ID] = true
	}
	if len(s.Nodes) == 0 {
		if s.Root != Nil {
			return frame.Invalidf(ErrInconsistent, "empty tree with root %d", s.Root)
		}
		return nil
	}

	seen := make(map[int]bool, len(s.Nodes))
	var check func(id int, lo, hi *int) error
	check = func(id int, lo, hi *int) error {
		if id == Nil {
			return nil
		}
		nd := s.node(id)
		if nd == nil || seen[id] {
			return frame.Invalidf(ErrInconsistent, "node %d dangling or shared", id)
		}
		seen[id] = true
		if (lo != nil && nd.Value <= *lo) || (hi != nil && nd.Value >= *hi) {
			return frame.Invalidf(ErrNotBST, "node %d value %d out of order", id, nd.Value)
		}
		if err := check(nd.Left, lo, &nd.Value); err != nil {
			return err
		}

		return check(nd.Right, &nd.Value, hi)
	}
	if err := check(s.Root, nil, nil); err != nil {
		return err
	}
	if len(seen) != len(s.Nodes) {
		return frame.Invalidf(ErrInconsistent, "%d of %d nodes reachable from root", len(seen), len(s.Nodes))
	}

	return nil
}
