// SPDX-License-Identifier: MIT
//
// File: generate.go
// Role: dispatch from algorithm ID to frame generator.
//
// Contract:
//   - Generate never returns a partial Run: either a valid Sequence or an
//     error matching frame.ErrInvalidInput (or a context error for graphs).
//   - Params are used as given; callers wanting demo inputs merge
//     DefaultParams first.

package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/algoviz/arrayops"
	"github.com/katalvlaran/algoviz/bfs"
	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/dfs"
	"github.com/katalvlaran/algoviz/frame"
	"github.com/katalvlaran/algoviz/graph"
	"github.com/katalvlaran/algoviz/hashing"
	"github.com/katalvlaran/algoviz/linkedlist"
	"github.com/katalvlaran/algoviz/queue"
	"github.com/katalvlaran/algoviz/searching"
	"github.com/katalvlaran/algoviz/sorting"
	"github.com/katalvlaran/algoviz/stack"
	"github.com/katalvlaran/algoviz/tree"
)

// DefaultMaxInput bounds dataset sizes accepted by the package-level Generate.
const DefaultMaxInput = 256

// Run is one generated frame sequence.
type Run struct {
	ID        uuid.UUID      `json:"id"`
	Algorithm ID             `json:"algorithm"`
	Params    Params         `json:"params"`
	Frames    frame.Sequence `json:"frames"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Generator turns (ID, Params) into a Run.
type Generator struct {
	// MaxInput bounds every dataset carried by Params. Zero disables the check.
	MaxInput int

	// MaxFrames bounds the frames of one run. Runs whose worst case exceeds
	// it are refused before generation. Zero disables the check.
	MaxFrames int
}

// NewGenerator returns a Generator bounded by maxInput and maxFrames.
func NewGenerator(maxInput, maxFrames int) *Generator {
	return &Generator{MaxInput: maxInput, MaxFrames: maxFrames}
}

var std = NewGenerator(DefaultMaxInput, DefaultMaxFrames)

// Generate runs id on p with the default Generator.
func Generate(id ID, p Params) (*Run, error) {
	return std.Generate(context.Background(), id, p)
}

// Generate runs id on p. ctx bounds graph traversals.
func (g *Generator) Generate(ctx context.Context, id ID, p Params) (*Run, error) {
	if _, err := Lookup(id); err != nil {
		return nil, err
	}
	fn, ok := generators[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q has no generator", ErrUnknownAlgorithm, id)
	}
	if n := p.size(); g.MaxInput > 0 && n > g.MaxInput {
		return nil, fmt.Errorf("%w: %d > %d", ErrInputTooLarge, n, g.MaxInput)
	}
	if est := estimateFrames(id, p); g.MaxFrames > 0 && est > g.MaxFrames {
		return nil, fmt.Errorf("%w: %s on %d items may record %d frames > %d",
			ErrInputTooLarge, id, p.size(), est, g.MaxFrames)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	seq, err := fn(ctx, p)
	if err != nil {
		return nil, invalid(err)
	}
	if err = seq.Validate(); err != nil {
		return nil, fmt.Errorf("catalog: %s produced %w", id, err)
	}
	if g.MaxFrames > 0 && seq.Len() > g.MaxFrames {
		return nil, fmt.Errorf("%w: %s recorded %d frames > %d", ErrInputTooLarge, id, seq.Len(), g.MaxFrames)
	}

	return &Run{
		ID:        uuid.New(),
		Algorithm: id,
		Params:    p,
		Frames:    seq,
		CreatedAt: time.Now().UTC(),
	}, nil
}

type generateFunc func(ctx context.Context, p Params) (frame.Sequence, error)

var generators = map[ID]generateFunc{
	BubbleSort:    sortWith(sorting.Bubble),
	SelectionSort: sortWith(sorting.Selection),
	InsertionSort: sortWith(sorting.Insertion),
	MergeSort:     sortWith(sorting.Merge),
	QuickSort:     sortWith(sorting.Quick),

	LinearSearch:        searchWith(searching.Linear),
	BinarySearch:        searchWith(searching.Binary),
	JumpSearch:          searchWith(searching.Jump),
	InterpolationSearch: searchWith(searching.Interpolation),
	ExponentialSearch:   searchWith(searching.Exponential),
	FibonacciSearch:     searchWith(searching.Fibonacci),
	TernarySearch:       searchWith(searching.Ternary),

	ArrayInsert:  arrayInsert,
	ArrayDelete:  arrayDelete,
	ArrayReverse: arrayReverse,
	ArrayRotate:  arrayRotate,

	StackPush: stackPush,
	StackPop:  withStack(stack.Pop),
	StackPeek: withStack(stack.Peek),

	QueueEnqueue: queueEnqueue,
	QueueDequeue: withQueue(queue.Dequeue),
	QueueFront:   withQueue(queue.Front),

	ListInsertHead:  listValue(linkedlist.InsertHead),
	ListInsertTail:  listValue(linkedlist.InsertTail),
	ListInsertAt:    listInsertAt,
	ListDelete:      listDelete,
	ListDeleteValue: listValue(linkedlist.DeleteValue),
	ListReverse:     listReverse,

	BSTInsert:      bstInsert,
	BSTSearch:      bstSearch,
	TreeInOrder:    traverse(tree.InOrderKind),
	TreePreOrder:   traverse(tree.PreOrderKind),
	TreePostOrder:  traverse(tree.PostOrderKind),
	TreeLevelOrder: traverse(tree.LevelKind),
	HeapInsert:     heapInsert,
	HeapExtractMax: heapExtractMax,

	GraphBFS: graphBFS,
	GraphDFS: graphDFS,

	HashInsert: hashInsert,
	HashSearch: hashSearch,
}

// Sorting and searching.

func sortWith(alg sorting.Algorithm) generateFunc {
	return func(_ context.Context, p Params) (frame.Sequence, error) {
		if p.Values == nil {
			return nil, missing("values")
		}
		var opts []sorting.Option
		if p.EarlyExit {
			opts = append(opts, sorting.WithEarlyExit())
		}

		return sorting.Sort(alg, p.Values, opts...)
	}
}

func searchWith(alg searching.Algorithm) generateFunc {
	return func(_ context.Context, p Params) (frame.Sequence, error) {
		if p.Values == nil {
			return nil, missing("values")
		}
		if p.Target == nil {
			return nil, missing("target")
		}

		return searching.Search(alg, p.Values, *p.Target)
	}
}

// Array operations.

// arrayState lays Values out in a backing array of Capacity slots.
// A zero Capacity means exactly len(Values).
func arrayState(p Params) (frame.ArrayState, error) {
	if p.Values == nil {
		return frame.ArrayState{}, missing("values")
	}
	capacity := p.Capacity
	if capacity == 0 {
		capacity = len(p.Values)
	}
	if capacity < len(p.Values) {
		return frame.ArrayState{}, fmt.Errorf("%w: capacity %d holds fewer than %d values",
			frame.ErrInvalidInput, capacity, len(p.Values))
	}
	slots := make([]int, capacity)
	copy(slots, p.Values)

	return frame.ArrayState{Values: slots, Size: len(p.Values)}, nil
}

func arrayInsert(_ context.Context, p Params) (frame.Sequence, error) {
	in, err := arrayState(p)
	if err != nil {
		return nil, err
	}
	if p.Index == nil {
		return nil, missing("index")
	}
	if p.Value == nil {
		return nil, missing("value")
	}

	return arrayops.Insert(in, *p.Index, *p.Value)
}

func arrayDelete(_ context.Context, p Params) (frame.Sequence, error) {
	in, err := arrayState(p)
	if err != nil {
		return nil, err
	}
	if p.Index == nil {
		return nil, missing("index")
	}

	return arrayops.Delete(in, *p.Index)
}

func arrayReverse(_ context.Context, p Params) (frame.Sequence, error) {
	in, err := arrayState(p)
	if err != nil {
		return nil, err
	}

	return arrayops.Reverse(in)
}

func arrayRotate(_ context.Context, p Params) (frame.Sequence, error) {
	in, err := arrayState(p)
	if err != nil {
		return nil, err
	}
	if p.Steps == nil {
		return nil, missing("steps")
	}
	return arrayops.Rotate(in, *p.Steps, arrayops.Direction(p.Direction))
}

// Stacks and queues.

func stackState(p Params) (stack.State, error) {
	if p.Capacity == 0 {
		return stack.State{}, missing("capacity")
	}
	mode := stack.Mode(p.Mode)
	if mode == "" {
		mode = stack.ModeArray
	}

	return builder.Stack(mode, p.Capacity, p.Values...)
}

func withStack(op func(stack.State) (frame.Sequence, error)) generateFunc {
	return func(_ context.Context, p Params) (frame.Sequence, error) {
		in, err := stackState(p)
		if err != nil {
			return nil, err
		}

		return op(in)
	}
}

func stackPush(_ context.Context, p Params) (frame.Sequence, error) {
	in, err := stackState(p)
	if err != nil {
		return nil, err
	}
	if p.Value == nil {
		return nil, missing("value")
	}

	return stack.Push(in, *p.Value)
}

func queueState(p Params) (queue.State, error) {
	if p.Capacity == 0 {
		return queue.State{}, missing("capacity")
	}
	variant := queue.Variant(p.Variant)
	if variant == "" {
		variant = queue.Linear
	}

	return builder.Queue(variant, p.Capacity, p.Values...)
}

func withQueue(op func(queue.State) (frame.Sequence, error)) generateFunc {
	return func(_ context.Context, p Params) (frame.Sequence, error) {
		in, err := queueState(p)
		if err != nil {
			return nil, err
		}

		return op(in)
	}
}

func queueEnqueue(_ context.Context, p Params) (frame.Sequence, error) {
	in, err := queueState(p)
	if err != nil {
		return nil, err
	}
	if p.Value == nil {
		return nil, missing("value")
	}

	return queue.Enqueue(in, *p.Value)
}

// Linked lists.

func listState(p Params) (linkedlist.State, error) {
	variant := linkedlist.Variant(p.Variant)
	if variant == "" {
		variant = linkedlist.Singly
	}

	return builder.List(variant, p.Values...)
}

func listValue(op func(linkedlist.State, int) (frame.Sequence, error)) generateFunc {
	return func(_ context.Context, p Params) (frame.Sequence, error) {
		in, err := listState(p)
		if err != nil {
			return nil, err
		}
		if p.Value == nil {
			return nil, missing("value")
		}

		return op(in, *p.Value)
	}
}

func listInsertAt(_ context.Context, p Params) (frame.Sequence, error) {
	in, err := listState(p)
	if err != nil {
		return nil, err
	}
	if p.Index == nil {
		return nil, missing("index")
	}
	if p.Value == nil {
		return nil, missing("value")
	}

	return linkedlist.InsertAt(in, *p.Index, *p.Value)
}

func listDelete(_ context.Context, p Params) (frame.Sequence, error) {
	in, err := listState(p)
	if err != nil {
		return nil, err
	}
	if p.Index == nil {
		return nil, missing("index")
	}

	return linkedlist.Delete(in, *p.Index)
}

func listReverse(_ context.Context, p Params) (frame.Sequence, error) {
	in, err := listState(p)
	if err != nil {
		return nil, err
	}

	return linkedlist.Reverse(in)
}

// Trees and heaps.

func bstState(p Params) tree.State {
	if p.Tree != nil {
		return *p.Tree
	}

	return builder.BST(p.Values...)
}

func bstInsert(_ context.Context, p Params) (frame.Sequence, error) {
	if p.Value == nil {
		return nil, missing("value")
	}

	return tree.Insert(bstState(p), *p.Value)
}

func bstSearch(_ context.Context, p Params) (frame.Sequence, error) {
	if p.Target == nil {
		return nil, missing("target")
	}

	return tree.Search(bstState(p), *p.Target)
}

func traverse(order tree.Order) generateFunc {
	return func(_ context.Context, p Params) (frame.Sequence, error) {
		return tree.Traverse(bstState(p), order)
	}
}

func heapState(p Params) (tree.HeapState, error) {
	if p.Heap != nil {
		return *p.Heap, nil
	}
	if p.Capacity == 0 {
		return tree.HeapState{}, missing("capacity")
	}

	return builder.Heap(p.Capacity, p.Values...)
}

func heapInsert(_ context.Context, p Params) (frame.Sequence, error) {
	in, err := heapState(p)
	if err != nil {
		return nil, err
	}
	if p.Value == nil {
		return nil, missing("value")
	}

	return tree.HeapInsert(in, *p.Value)
}

func heapExtractMax(_ context.Context, p Params) (frame.Sequence, error) {
	in, err := heapState(p)
	if err != nil {
		return nil, err
	}

	return tree.ExtractMax(in)
}

// Graphs.

// graphStart resolves the Graph and the Start label. Without an explicit
// Graph, one is built from Topology and Start defaults to its first vertex.
func graphStart(p Params) (*graph.Graph, int, error) {
	g, start := p.Graph, p.Start
	if g == nil {
		if p.Topology == "" {
			return nil, graph.Nil, missing("graph or topology")
		}
		built, err := buildTopology(p)
		if err != nil {
			return nil, graph.Nil, err
		}
		g = built
		if start == "" {
			start = g.Label(0)
		}
	}
	if start == "" {
		return nil, graph.Nil, missing("start")
	}
	id, ok := g.Lookup(start)
	if !ok {
		return nil, graph.Nil, frame.Invalidf(graph.ErrVertexNotFound, "start %q", start)
	}

	return g, id, nil
}

// buildTopology assembles the graph named by p.Topology.
func buildTopology(p Params) (*graph.Graph, error) {
	if p.Vertices == 0 {
		return nil, missing("vertices")
	}
	cons, err := builder.ConstructorFor(p.Topology, p.Vertices)
	if err != nil {
		return nil, err
	}
	var gopts []graph.Option
	if p.Directed {
		gopts = append(gopts, graph.WithDirected())
	}
	bopts := []builder.BuilderOption{builder.WithIDScheme(builder.IDSchemeFor(p.Labels))}

	return builder.BuildGraph(gopts, bopts, cons)
}

func graphBFS(ctx context.Context, p Params) (frame.Sequence, error) {
	g, start, err := graphStart(p)
	if err != nil {
		return nil, err
	}
	opts := []bfs.Option{bfs.WithContext(ctx)}
	if p.MaxDepth != nil {
		opts = append(opts, bfs.WithMaxDepth(*p.MaxDepth))
	}

	return bfs.BFS(g, start, opts...)
}

func graphDFS(ctx context.Context, p Params) (frame.Sequence, error) {
	g, start, err := graphStart(p)
	if err != nil {
		return nil, err
	}
	opts := []dfs.Option{dfs.WithContext(ctx)}
	if p.MaxDepth != nil {
		opts = append(opts, dfs.WithMaxDepth(*p.MaxDepth))
	}

	return dfs.DFS(g, start, opts...)
}

// Hashing.

func tableState(p Params) (hashing.State, error) {
	if p.Table != nil {
		return *p.Table, nil
	}
	if p.TableSize == 0 {
		return hashing.State{}, missing("tableSize")
	}

	return builder.HashTable(p.TableSize, p.Keys...)
}

func hashInsert(_ context.Context, p Params) (frame.Sequence, error) {
	in, err := tableState(p)
	if err != nil {
		return nil, err
	}
	if p.Key == "" {
		return nil, missing("key")
	}
	if p.Value == nil {
		return nil, missing("value")
	}

	return hashing.Insert(in, p.Key, *p.Value)
}

func hashSearch(_ context.Context, p Params) (frame.Sequence, error) {
	in, err := tableState(p)
	if err != nil {
		return nil, err
	}
	if p.Key == "" {
		return nil, missing("key")
	}

	return hashing.Search(in, p.Key)
}
