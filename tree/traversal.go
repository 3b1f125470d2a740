// SPDX-License-Identifier: MIT

package tree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/algoviz/frame"
)

// Order names a depth-first visiting order.
type Order string

const (
	InOrderKind   Order = "inorder"
	PreOrderKind  Order = "preorder"
	PostOrderKind Order = "postorder"
	LevelKind     Order = "level"
)

// traversal records visits in order.
type traversal struct {
	s     State
	rec   *frame.Recorder
	order []int
	vals  []int
}

func (t *traversal) visit(id int, notes ...frame.Annotation) {
	nd, _ := t.s.Node(id)
	t.order = append(t.order, id)
	t.vals = append(t.vals, nd.Value)
	notes = append(notes,
		frame.Mark(frame.RoleCurrent, id),
		frame.Mark(frame.RoleVisited, t.order...),
		frame.Text("order", join(t.vals)))
	t.rec.Record(t.s, fmt.Sprintf("Visiting %d", nd.Value), notes...)
}

func (t *traversal) finish(name string) frame.Sequence {
	return t.rec.Finish(t.s, frame.OutcomeDone, fmt.Sprintf("%s traversal complete: %s", name, join(t.vals)),
		frame.Mark(frame.RoleVisited, t.order...), frame.Text("order", join(t.vals)))
}

func start(in State, name string) (*traversal, frame.Sequence, error) {
	if err := in.Validate(); err != nil {
		return nil, nil, err
	}
	t := &traversal{s: in.copy()}
	t.rec = frame.NewRecorder(t.s, fmt.Sprintf("Starting %s traversal", name))
	if in.Root == Nil {
		return nil, t.rec.Reject(frame.OutcomeEmpty, "Tree is empty, nothing to traverse"), nil
	}

	return t, nil, nil
}

// Traverse dispatches to the traversal for order.
func Traverse(in State, order Order) (frame.Sequence, error) {
	switch order {
	case InOrderKind:
		return InOrder(in)
	case PreOrderKind:
		return PreOrder(in)
	case PostOrderKind:
		return PostOrder(in)
	case LevelKind:
		return LevelOrder(in)
	default:
		return nil, frame.Invalidf(ErrUnknownOrder, "%q", order)
	}
}

// InOrder visits left subtree, node, right subtree.
func InOrder(in State) (frame.Sequence, error) {
	return depthFirst(in, "In-order", func(t *traversal, id int, rec func(int)) {
		nd, _ := t.s.Node(id)
		rec(nd.Left)
		t.visit(id)
		rec(nd.Right)
	})
}

// PreOrder visits node, left subtree, right subtree.
func PreOrder(in State) (frame.Sequence, error) {
	return depthFirst(in, "Pre-order", func(t *traversal, id int, rec func(int)) {
		nd, _ := t.s.Node(id)
		t.visit(id)
		rec(nd.Left)
		rec(nd.Right)
	})
}

// PostOrder visits left subtree, right subtree, node.
func PostOrder(in State) (frame.Sequence, error) {
	return depthFirst(in, "Post-order", func(t *traversal, id int, rec func(int)) {
		nd, _ := t.s.Node(id)
		rec(nd.Left)
		rec(nd.Right)
		t.visit(id)
	})
}

func depthFirst(in State, name string, body func(t *traversal, id int, rec func(int))) (frame.Sequence, error) {
	t, seq, err := start(in, name)
	if t == nil {
		return seq, err
	}
	var rec func(id int)
	rec = func(id int) {
		if id == Nil {
			return
		}
		body(t, id, rec)
	}
	rec(t.s.Root)

	return t.finish(name), nil
}

// LevelOrder visits nodes breadth-first with an explicit FIFO queue.
func LevelOrder(in State) (frame.Sequence, error) {
	t, seq, err := start(in, "Level-order")
	if t == nil {
		return seq, err
	}

	queue := []int{t.s.Root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		nd, _ := t.s.Node(id)
		for _, c := range []int{nd.Left, nd.Right} {
			if c != Nil {
				queue = append(queue, c)
			}
		}
		t.visit(id, frame.Text("queue", t.queueValues(queue)))
	}

	return t.finish("Level-order"), nil
}

func (t *traversal) queueValues(queue []int) string {
	vals := make([]int, len(queue))
	for i, id := range queue {
		nd, _ := t.s.Node(id)
		vals[i] = nd.Value
	}

	return "[" + join(vals) + "]"
}

func join(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ", ")
}
