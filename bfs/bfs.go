// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/algoviz/frame"
	"github.com/katalvlaran/algoviz/graph"
)

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph      *graph.Graph
	opts       Options
	ctx        context.Context
	queue      []queueItem
	discovered []bool
	state      State
	rec        *frame.Recorder
}

// BFS records a breadth-first traversal of g from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or the context error on cancellation.
func BFS(g *graph.Graph, start int, opts ...Option) (frame.Sequence, error) {
	if g == nil {
		return nil, frame.Invalidf(ErrGraphNil, "bfs")
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if !g.HasVertex(start) {
		return nil, frame.Invalidf(ErrStartVertexNotFound, "id %d", start)
	}

	n := len(g.Vertices)
	w := &walker{
		graph:      g,
		opts:       o,
		ctx:        o.Ctx,
		queue:      make([]queueItem, 0, n),
		discovered: make([]bool, n),
		state:      graph.NewState(g),
	}
	w.rec = frame.NewRecorder(w.state, fmt.Sprintf("Starting BFS from node %s", g.Label(start)))

	w.enqueue(start, 0)
	if err := w.loop(); err != nil {
		return nil, err
	}
	w.state.Current = graph.Nil
	order := g.Labels(w.state.Visited)

	return w.rec.Finish(w.state, frame.OutcomeDone, "BFS traversal complete!",
		frame.Mark(frame.RoleVisited, w.state.Visited...),
		frame.Text("order", strings.Join(order, ", "))), nil
}

// enqueue marks id discovered at depth d and appends it to the frontier.
func (w *walker) enqueue(id, d int) {
	w.discovered[id] = true
	w.queue = append(w.queue, queueItem{id: id, depth: d})
	w.state.Frontier = append(w.state.Frontier, id)
}

// loop processes the queue until empty or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		w.visit(item)
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item off the queue and the state frontier.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.state.Frontier = w.state.Frontier[1:]

	return item
}

// visit records the vertex in Visited and emits its frame.
func (w *walker) visit(item queueItem) {
	w.state.Current = item.id
	w.state.Visited = append(w.state.Visited, item.id)
	w.rec.Record(w.state, fmt.Sprintf("Visiting node %s", w.graph.Label(item.id)), w.notes(item.id)...)
}

// enqueueNeighbors discovers unseen neighbors within MaxDepth and records
// one frame naming them. Already discovered vertices are skipped silently.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	var added []int
	for _, nbr := range w.graph.Neighbors(item.id) {
		if !w.discovered[nbr] {
			w.enqueue(nbr, next)
			added = append(added, nbr)
		}
	}
	if len(added) == 0 {
		return
	}
	desc := fmt.Sprintf("Adding neighbors of %s to queue: %s",
		w.graph.Label(item.id), strings.Join(w.graph.Labels(added), ", "))
	w.rec.Record(w.state, desc, append(w.notes(item.id), frame.Mark(frame.RoleComparing, added...))...)
}

func (w *walker) notes(current int) []frame.Annotation {
	return []frame.Annotation{
		frame.Mark(frame.RoleCurrent, current),
		frame.Mark(frame.RoleVisited, w.state.Visited...),
		frame.Text("queue", "["+strings.Join(w.graph.Labels(w.state.Frontier), ", ")+"]"),
	}
}
