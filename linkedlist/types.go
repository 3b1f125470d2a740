// SPDX-License-Identifier: MIT

package linkedlist

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algoviz/frame"
)

// Nil is the null link.
const Nil = -1

// Variant selects the link discipline.
type Variant string

const (
	Singly   Variant = "singly"
	Doubly   Variant = "doubly"
	Circular Variant = "circular"
)

// Sentinel errors for list operations.
var (
	ErrInvalidVariant     = errors.New("linkedlist: invalid variant")
	ErrPositionOutOfRange = errors.New("linkedlist: position out of range")
	ErrInconsistent       = errors.New("linkedlist: inconsistent links")
)

// Node is one arena cell. Next and Prev hold node IDs or Nil.
// Prev is only maintained by the doubly variant.
type Node struct {
	ID    int `json:"id" yaml:"id"`
	Value int `json:"value" yaml:"value"`
	Next  int `json:"next" yaml:"next"`
	Prev  int `json:"prev" yaml:"prev"`
}

// State is an id-addressed list snapshot. Nodes are kept in ascending ID
// order; list order is given by following Next from Head.
type State struct {
	Nodes   []Node  `json:"nodes" yaml:"nodes"`
	Head    int     `json:"head" yaml:"head"`
	Variant Variant `json:"variant" yaml:"variant"`
	NextID  int     `json:"nextId" yaml:"nextId"`
}

// New builds a well-formed list of values in order.
func New(variant Variant, values ...int) State {
	s := State{Head: Nil, Variant: variant}
	n := len(values)
	for i, v := range values {
		nd := Node{ID: i, Value: v, Next: i + 1, Prev: Nil}
		if i == n-1 {
			nd.Next = Nil
			if variant == Circular {
				nd.Next = 0
			}
		}
		if variant == Doubly && i > 0 {
			nd.Prev = i - 1
		}
		s.Nodes = append(s.Nodes, nd)
	}
	if n > 0 {
		s.Head = 0
	}
	s.NextID = n

	return s
}

// Kind implements frame.State.
func (State) Kind() frame.Kind { return frame.KindList }

// Clone implements frame.State.
func (s State) Clone() frame.State { return s.copy() }

func (s State) copy() State {
	s.Nodes = append([]Node(nil), s.Nodes...)
	return s
}

// Len returns the number of nodes.
func (s State) Len() int { return len(s.Nodes) }

// Order returns node IDs from Head following Next, visiting each at most once.
func (s State) Order() []int {
	out := make([]int, 0, len(s.Nodes))
	seen := make(map[int]bool, len(s.Nodes))
	for id := s.Head; id != Nil && !seen[id]; {
		nd := s.node(id)
		if nd == nil {
			break
		}
		seen[id] = true
		out = append(out, id)
		id = nd.Next
	}

	return out
}

// Values returns node values in list order.
func (s State) Values() []int {
	ids := s.Order()
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = s.node(id).Value
	}

	return out
}

// Validate checks the variant and that links form exactly one list over
// every node, with the variant's tail and Prev conventions.
func (s State) Validate() error {
	if s.Variant != Singly && s.Variant != Doubly && s.Variant != Circular {
		return frame.Invalidf(ErrInvalidVariant, "%q", s.Variant)
	}
	ids := make(map[int]bool, len(s.Nodes))
	for _, nd := range s.Nodes {
		if ids[nd.ID] || nd.ID < 0 || nd.ID >= s.NextID {
			return frame.Invalidf(ErrInconsistent, "bad node id %d", nd.ID)
		}
		ids[nd.ID] = true
	}
	if len(s.Nodes) == 0 {
		if s.Head != Nil {
			return frame.Invalidf(ErrInconsistent, "empty list with head %d", s.Head)
		}
		return nil
	}

	order := s.Order()
	if len(order) != len(s.Nodes) {
		return frame.Invalidf(ErrInconsistent, "%d of %d nodes reachable from head", len(order), len(s.Nodes))
	}
	tail := s.node(order[len(order)-1])
	wantTail := Nil
	if s.Variant == Circular {
		wantTail = s.Head
	}
	if tail.Next != wantTail {
		return frame.Invalidf(ErrInconsistent, "tail %d links to %d", tail.ID, tail.Next)
	}
	for i, id := range order {
		wantPrev := Nil
		if s.Variant == Doubly && i > 0 {
			wantPrev = order[i-1]
		}
		if got := s.node(id).Prev; got != wantPrev {
			return frame.Invalidf(ErrInconsistent, "node %d prev %d, want %d", id, got, wantPrev)
		}
	}

	return nil
}

func (s *State) node(id int) *Node {
	for i := range s.Nodes {
		if s.Nodes[i].ID == id {
			return &s.Nodes[i]
		}
	}

	return nil
}

// create appends an unlinked node and returns its ID.
func (s *State) create(value int) int {
	id := s.NextID
	s.NextID++
	s.Nodes = append(s.Nodes, Node{ID: id, Value: value, Next: Nil, Prev: Nil})

	return id
}

// free removes node id from the arena.
func (s *State) free(id int) {
	for i := range s.Nodes {
		if s.Nodes[i].ID == id {
			s.Nodes = append(s.Nodes[:i], s.Nodes[i+1:]...)
			return
		}
	}
}

// walker records one run.
type walker struct {
	s   State
	rec *frame.Recorder
}

func begin(in State, description string) *walker {
	w := &walker{s: in.copy()}
	w.rec = frame.NewRecorder(w.s, description)

	return w
}

func (w *walker) step(description string, notes ...frame.Annotation) {
	w.rec.Record(w.s, description, notes...)
}

func (w *walker) done(description string, notes ...frame.Annotation) frame.Sequence {
	return w.rec.Finish(w.s, frame.OutcomeDone, description, notes...)
}

// hop records a traversal frame on node id.
func (w *walker) hop(id, pos int) {
	w.step(fmt.Sprintf("Traversing: at node %d (position %d)", w.s.node(id).Value, pos),
		frame.Mark(frame.RoleCurrent, id), frame.Int("position", pos))
}

// walkTo records one hop per node from Head up to position pos and returns
// that node's ID.
func (w *walker) walkTo(pos int) int {
	id := w.s.Head
	for i := 0; ; i++ {
		w.hop(id, i)
		if i == pos {
			return id
		}
		id = w.s.node(id).Next
	}
}
