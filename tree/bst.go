// SPDX-License-Identifier: MIT

package tree

import (
	"fmt"

	"github.com/katalvlaran/algoviz/frame"
)

// Insert adds value to the tree, recording one frame per node on the
// descent path.
func Insert(in State, value int) (frame.Sequence, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	s := in.copy()
	rec := frame.NewRecorder(s, fmt.Sprintf("Inserting %d into BST", value))

	if s.Root == Nil {
		s.Root = s.create(value)
		rec.Record(s, fmt.Sprintf("Tree is empty, created root with value %d", value), frame.Mark(frame.RoleCurrent, s.Root))
		return rec.Finish(s, frame.OutcomeDone, fmt.Sprintf("Inserted %d successfully!", value),
			frame.Mark(frame.RoleFound, s.Root)), nil
	}

	var path []int
	for cur := s.Root; ; {
		nd := *s.node(cur)
		path = append(path, cur)
		visited := frame.Mark(frame.RoleVisited, path...)
		switch {
		case value < nd.Value:
			rec.Record(s, fmt.Sprintf("%d < %d, going left", value, nd.Value), frame.Mark(frame.RoleComparing, cur), visited)
			if nd.Left != Nil {
				cur = nd.Left
				continue
			}
			id := s.create(value)
			s.node(cur).Left = id
			rec.Record(s, fmt.Sprintf("Created new node with value %d as left child of %d", value, nd.Value),
				frame.Mark(frame.RoleCurrent, id), visited)
			return rec.Finish(s, frame.OutcomeDone, fmt.Sprintf("Inserted %d successfully!", value),
				frame.Mark(frame.RoleFound, id)), nil
		case value > nd.Value:
			rec.Record(s, fmt.Sprintf("%d > %d, going right", value, nd.Value), frame.Mark(frame.RoleComparing, cur), visited)
			if nd.Right != Nil {
				cur = nd.Right
				continue
			}
			id := s.create(value)
			s.node(cur).Right = id
			rec.Record(s, fmt.Sprintf("Created new node with value %d as right child of %d", value, nd.Value),
				frame.Mark(frame.RoleCurrent, id), visited)
			return rec.Finish(s, frame.OutcomeDone, fmt.Sprintf("Inserted %d successfully!", value),
				frame.Mark(frame.RoleFound, id)), nil
		default:
			return rec.Finish(in, frame.OutcomeDuplicate, fmt.Sprintf("Value %d already exists in tree", value),
				frame.Mark(frame.RoleFound, cur)), nil
		}
	}
}

// Search looks value up, recording one frame per node visited.
func Search(in State, value int) (frame.Sequence, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	rec := frame.NewRecorder(in, fmt.Sprintf("Searching for %d in BST", value))

	var path []int
	for cur := in.Root; cur != Nil; {
		nd, _ := in.Node(cur)
		path = append(path, cur)
		rec.Record(in, fmt.Sprintf("Visiting node %d", nd.Value),
			frame.Mark(frame.RoleCurrent, cur), frame.Mark(frame.RoleVisited, path...))
		switch {
		case value == nd.Value:
			return rec.Finish(in, frame.OutcomeFound, fmt.Sprintf("Found %d!", value),
				frame.Mark(frame.RoleFound, cur), frame.Mark(frame.RoleVisited, path...)), nil
		case value < nd.Value:
			rec.Record(in, fmt.Sprintf("%d < %d, searching left subtree", value, nd.Value),
				frame.Mark(frame.RoleVisited, path...))
			cur = nd.Left
		default:
			rec.Record(in, fmt.Sprintf("%d > %d, searching right subtree", value, nd.Value),
				frame.Mark(frame.RoleVisited, path...))
			cur = nd.Right
		}
	}

	return rec.Finish(in, frame.OutcomeNotFound, fmt.Sprintf("Reached null, %d not found in tree", value)), nil
}
