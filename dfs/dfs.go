// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/algoviz/frame"
	"github.com/katalvlaran/algoviz/graph"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *graph.Graph // underlying graph
	opts    Options      // traversal options
	visited []bool
	state   State
	rec     *frame.Recorder
}

// DFS records a recursive depth-first traversal of g from start.
func DFS(g *graph.Graph, start int, opts ...Option) (frame.Sequence, error) {
	// 1. Validate graph
	if g == nil {
		return nil, frame.Invalidf(ErrGraphNil, "dfs")
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	// 2. Build options
	dopts := DefaultOptions()
	for _, opt := range opts {
		opt(&dopts)
	}

	// 3. Verify start
	if !g.HasVertex(start) {
		return nil, frame.Invalidf(ErrStartVertexNotFound, "id %d", start)
	}

	w := &dfsWalker{
		graph:   g,
		opts:    dopts,
		visited: make([]bool, len(g.Vertices)),
		state:   graph.NewState(g),
	}
	w.rec = frame.NewRecorder(w.state, fmt.Sprintf("Starting DFS from node %s", g.Label(start)))

	// 4. Traverse
	if err := w.traverse(start, 0); err != nil {
		return nil, err
	}
	w.state.Current = graph.Nil
	order := g.Labels(w.state.Visited)

	return w.rec.Finish(w.state, frame.OutcomeDone, "DFS traversal complete!",
		frame.Mark(frame.RoleVisited, w.state.Visited...),
		frame.Text("order", strings.Join(order, ", "))), nil
}

// traverse visits vertex id at the given depth, recursing into neighbors
// that are still unvisited when their turn comes.
func (w *dfsWalker) traverse(id, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and push onto the recursion stack
	w.visited[id] = true
	w.state.Visited = append(w.state.Visited, id)
	w.state.Frontier = append(w.state.Frontier, id)
	w.state.Current = id
	w.rec.Record(w.state, fmt.Sprintf("Visiting node %s", w.graph.Label(id)), w.notes(id)...)
	defer func() { w.state.Frontier = w.state.Frontier[:len(w.state.Frontier)-1] }()

	// 3. Depth limit: do not descend further
	if w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth {
		return nil
	}

	// 4. Announce the unvisited neighbors, then recurse
	var pending []int
	for _, nid := range w.graph.Neighbors(id) {
		if !w.visited[nid] {
			pending = append(pending, nid)
		}
	}
	if len(pending) == 0 {
		return nil
	}
	desc := fmt.Sprintf("Exploring neighbors of %s: %s", w.graph.Label(id), strings.Join(w.graph.Labels(pending), ", "))
	w.rec.Record(w.state, desc, append(w.notes(id), frame.Mark(frame.RoleComparing, pending...))...)

	for _, nid := range pending {
		// a sibling's subtree may have reached nid already
		if w.visited[nid] {
			continue
		}
		if err := w.traverse(nid, depth+1); err != nil {
			return err
		}
	}

	return nil
}

func (w *dfsWalker) notes(current int) []frame.Annotation {
	return []frame.Annotation{
		frame.Mark(frame.RoleCurrent, current),
		frame.Mark(frame.RoleVisited, w.state.Visited...),
		frame.Text("stack", "["+strings.Join(w.graph.Labels(w.state.Frontier), ", ")+"]"),
	}
}
