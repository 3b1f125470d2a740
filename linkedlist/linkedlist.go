// SPDX-License-Identifier: MIT

package linkedlist

import (
	"fmt"

	"github.com/katalvlaran/algoviz/frame"
)

// InsertHead links a new node in front of Head.
func InsertHead(in State, value int) (frame.Sequence, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	w := begin(in, fmt.Sprintf("Insert %d at beginning", value))
	w.insertHead(value)

	return w.done(fmt.Sprintf("Inserted %d at beginning! List size: %d", value, w.s.Len()),
		frame.Mark(frame.RoleFound, w.s.Head)), nil
}

func (w *walker) insertHead(value int) {
	id := w.s.create(value)
	w.step(fmt.Sprintf("Step 1: creating new node with data = %d", value), frame.Mark(frame.RoleCurrent, id))

	old := w.s.Head
	if old == Nil {
		if w.s.Variant == Circular {
			w.s.node(id).Next = id
			w.step("Step 2: list is empty, new node's next points to itself", frame.Mark(frame.RoleCurrent, id))
		} else {
			w.step("Step 2: list is empty, new node's next points to NULL", frame.Mark(frame.RoleCurrent, id))
		}
	} else {
		tail := w.tail()
		w.s.node(id).Next = old
		w.step(fmt.Sprintf("Step 2: new node's next points to current head (%d)", w.s.node(old).Value),
			frame.Mark(frame.RoleCurrent, id), frame.Mark(frame.RoleVisited, old))
		switch w.s.Variant {
		case Doubly:
			w.s.node(old).Prev = id
			w.step("Current head's prev points to new node", frame.Mark(frame.RoleCurrent, old))
		case Circular:
			w.s.node(tail).Next = id
			w.step("Last node's next now points to new node", frame.Mark(frame.RoleCurrent, tail))
		}
	}

	w.s.Head = id
	w.step("Step 3: updated head to point to new node", frame.Mark(frame.RoleSwapping, id))
}

// tail returns the last node in list order, or Nil.
func (w *walker) tail() int {
	order := w.s.Order()
	if len(order) == 0 {
		return Nil
	}

	return order[len(order)-1]
}

// InsertTail links a new node after the last node.
func InsertTail(in State, value int) (frame.Sequence, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	w := begin(in, fmt.Sprintf("Insert %d at end", value))
	if in.Len() == 0 {
		w.step("List is empty, inserting at beginning")
		w.insertHead(value)
	} else {
		w.step("Step 1: traversing to the last node")
		last := w.walkTo(in.Len() - 1)
		w.insertAfter(last, value)
	}

	return w.done(fmt.Sprintf("Inserted %d at end! List size: %d", value, w.s.Len()),
		frame.Mark(frame.RoleFound, w.tail())), nil
}

// InsertAt links a new node so that it ends up at position pos.
// pos must be in [0, len].
func InsertAt(in State, pos, value int) (frame.Sequence, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if pos < 0 || pos > in.Len() {
		return nil, frame.Invalidf(ErrPositionOutOfRange, "insert position %d not in [0,%d]", pos, in.Len())
	}
	w := begin(in, fmt.Sprintf("Insert %d at position %d", value, pos))
	var id int
	if pos == 0 {
		w.insertHead(value)
		id = w.s.Head
	} else {
		w.step(fmt.Sprintf("Step 1: traversing to position %d", pos-1))
		prev := w.walkTo(pos - 1)
		id = w.insertAfter(prev, value)
	}

	return w.done(fmt.Sprintf("Inserted %d at position %d! List size: %d", value, pos, w.s.Len()),
		frame.Mark(frame.RoleFound, id)), nil
}

// insertAfter links a new node after prev, one frame per pointer update.
func (w *walker) insertAfter(prev, value int) int {
	id := w.s.create(value)
	w.step(fmt.Sprintf("Step 2: creating new node with data = %d", value), frame.Mark(frame.RoleCurrent, id))

	next := w.s.node(prev).Next
	w.s.node(id).Next = next
	switch {
	case next == Nil:
		w.step("New node's next points to NULL", frame.Mark(frame.RoleCurrent, id))
	case next == w.s.Head && w.s.Variant == Circular:
		w.step("New node's next points back to head", frame.Mark(frame.RoleCurrent, id), frame.Mark(frame.RoleVisited, next))
	default:
		w.step(fmt.Sprintf("New node's next points to %d", w.s.node(next).Value),
			frame.Mark(frame.RoleCurrent, id), frame.Mark(frame.RoleVisited, next))
	}

	if w.s.Variant == Doubly {
		w.s.node(id).Prev = prev
		w.step("New node's prev points to previous node", frame.Mark(frame.RoleCurrent, id), frame.Mark(frame.RoleVisited, prev))
		if next != Nil {
			w.s.node(next).Prev = id
			w.step("Next node's prev points to new node", frame.Mark(frame.RoleCurrent, next))
		}
	}

	w.s.node(prev).Next = id
	w.step(fmt.Sprintf("Step 3: node %d's next now points to new node", w.s.node(prev).Value),
		frame.Mark(frame.RoleSwapping, prev, id))

	return id
}

// Delete unlinks the node at position pos. pos must be in [0, len).
func Delete(in State, pos int) (frame.Sequence, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if pos < 0 || pos >= in.Len() {
		return nil, frame.Invalidf(ErrPositionOutOfRange, "delete position %d not in [0,%d)", pos, in.Len())
	}
	w := begin(in, fmt.Sprintf("Delete node at position %d", pos))
	var removed int
	if pos == 0 {
		removed = w.unlinkHead()
	} else {
		w.step(fmt.Sprintf("Step 1: traversing to position %d", pos))
		prev := w.walkTo(pos - 1)
		removed = w.unlinkAfter(prev)
	}

	return w.done(fmt.Sprintf("Deleted node at position %d", pos), frame.Int("removed", removed)), nil
}

// DeleteValue unlinks the first node holding value. A missing value ends
// with OutcomeNotFound and the list unchanged.
func DeleteValue(in State, value int) (frame.Sequence, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	w := begin(in, fmt.Sprintf("Delete first node with value %d", value))
	if in.Len() == 0 {
		return w.rec.Reject(frame.OutcomeNotFound, "List is empty"), nil
	}

	prev := Nil
	for pos, id := range w.s.Order() {
		w.step(fmt.Sprintf("Checking node %d: is %d == %d?", pos, w.s.node(id).Value, value),
			frame.Mark(frame.RoleComparing, id))
		if w.s.node(id).Value != value {
			prev = id
			continue
		}
		var removed int
		if prev == Nil {
			removed = w.unlinkHead()
		} else {
			removed = w.unlinkAfter(prev)
		}
		return w.done(fmt.Sprintf("Deleted node with value %d at position %d", value, pos),
			frame.Int("removed", removed)), nil
	}

	return w.rec.Finish(w.s, frame.OutcomeNotFound, fmt.Sprintf("%d not found in list", value)), nil
}

// unlinkHead removes the head node and returns its value.
func (w *walker) unlinkHead() int {
	old := w.s.Head
	v := w.s.node(old).Value
	w.step(fmt.Sprintf("Step 1: deleting head node (%d)", v), frame.Mark(frame.RoleCurrent, old))

	next := w.s.node(old).Next
	if next == old || next == Nil {
		w.s.Head = Nil
		w.step("Step 2: list becomes empty, head is NULL", frame.Mark(frame.RoleCurrent, old))
	} else {
		if w.s.Variant == Circular {
			tail := w.tail()
			w.s.node(tail).Next = next
			w.step("Last node's next now points to the new head", frame.Mark(frame.RoleCurrent, tail))
		}
		w.s.Head = next
		w.step("Step 2: moving head to next node", frame.Mark(frame.RoleSwapping, next))
		if w.s.Variant == Doubly {
			w.s.node(next).Prev = Nil
			w.step("New head's prev points to NULL", frame.Mark(frame.RoleCurrent, next))
		}
	}

	w.s.free(old)
	w.step(fmt.Sprintf("Freed node %d", v))

	return v
}

// unlinkAfter removes the node following prev and returns its value.
func (w *walker) unlinkAfter(prev int) int {
	target := w.s.node(prev).Next
	v := w.s.node(target).Value
	w.step(fmt.Sprintf("Step 2: deleting node with data = %d", v), frame.Mark(frame.RoleCurrent, target))

	next := w.s.node(target).Next
	w.s.node(prev).Next = next
	w.step("Step 3: updating previous node's next pointer", frame.Mark(frame.RoleSwapping, prev))
	if w.s.Variant == Doubly && next != Nil {
		w.s.node(next).Prev = prev
		w.step("Next node's prev points to previous node", frame.Mark(frame.RoleSwapping, next))
	}

	w.s.free(target)
	w.step(fmt.Sprintf("Freed node %d", v))

	return v
}

// Reverse reverses link direction with prev/current/next pointers.
// Lists with fewer than two nodes are returned unchanged.
func Reverse(in State) (frame.Sequence, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	w := begin(in, "Reverse list")
	if in.Len() < 2 {
		return w.done("List has 0 or 1 node, nothing to reverse"), nil
	}

	w.step("Starting reversal using 3 pointers: prev, current, next")
	oldHead := w.s.Head
	prev, cur := Nil, w.s.Head
	for i, n := 0, w.s.Len(); i < n; i++ {
		nd := w.s.node(cur)
		next := nd.Next
		nd.Next = prev
		if w.s.Variant == Doubly {
			nd.Prev = next
		}
		w.step(fmt.Sprintf("Reversing pointer of node %d at position %d", nd.Value, i),
			frame.Mark(frame.RoleCurrent, cur), ptr("prev", prev), ptr("current", cur), ptr("next", next))
		prev, cur = cur, next
	}

	if w.s.Variant == Circular {
		w.s.node(oldHead).Next = prev
		w.step("Old head's next now points to the new head", frame.Mark(frame.RoleCurrent, oldHead))
	}
	w.s.Head = prev
	w.step("Head now points to the last visited node", frame.Mark(frame.RoleSwapping, prev))

	return w.done("List reversed successfully!"), nil
}

func ptr(name string, id int) frame.Scalar {
	if id == Nil {
		return frame.Text(name, "NULL")
	}

	return frame.Int(name, id)
}
