// SPDX-License-Identifier: MIT

package catalog_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/catalog"
	"github.com/katalvlaran/algoviz/frame"
	"github.com/katalvlaran/algoviz/graph"
)

var allIDs = []catalog.ID{
	catalog.BubbleSort, catalog.SelectionSort, catalog.InsertionSort, catalog.MergeSort, catalog.QuickSort,
	catalog.LinearSearch, catalog.BinarySearch, catalog.JumpSearch, catalog.InterpolationSearch,
	catalog.ExponentialSearch, catalog.FibonacciSearch, catalog.TernarySearch,
	catalog.ArrayInsert, catalog.ArrayDelete, catalog.ArrayReverse, catalog.ArrayRotate,
	catalog.StackPush, catalog.StackPop, catalog.StackPeek,
	catalog.QueueEnqueue, catalog.QueueDequeue, catalog.QueueFront,
	catalog.ListInsertHead, catalog.ListInsertTail, catalog.ListInsertAt,
	catalog.ListDelete, catalog.ListDeleteValue, catalog.ListReverse,
	catalog.BSTInsert, catalog.BSTSearch, catalog.TreeInOrder, catalog.TreePreOrder,
	catalog.TreePostOrder, catalog.TreeLevelOrder, catalog.HeapInsert, catalog.HeapExtractMax,
	catalog.GraphBFS, catalog.GraphDFS, catalog.HashInsert, catalog.HashSearch,
}

func TestList_CoversEveryID(t *testing.T) {
	entries, err := catalog.List()
	require.NoError(t, err)
	assert.Len(t, entries, len(allIDs))

	for _, id := range allIDs {
		e, err := catalog.Lookup(id)
		require.NoError(t, err, "id=%s", id)
		assert.Equal(t, id, e.ID)
		assert.NotEmpty(t, e.Title, "id=%s", id)
		assert.NotEmpty(t, e.Topic, "id=%s", id)
		assert.NotEmpty(t, e.Steps, "id=%s", id)
		assert.NotEmpty(t, e.Complexity.Worst, "id=%s", id)
	}
	assert.Equal(t, catalog.BubbleSort, entries[0].ID, "YAML order is preserved")
}

func TestLookup_Unknown(t *testing.T) {
	_, err := catalog.Lookup("bogo_sort")
	assert.ErrorIs(t, err, catalog.ErrUnknownAlgorithm)
	assert.ErrorIs(t, err, frame.ErrInvalidInput)
}

// TestGenerate_Defaults runs every algorithm on its demo inputs.
func TestGenerate_Defaults(t *testing.T) {
	for _, id := range allIDs {
		t.Run(string(id), func(t *testing.T) {
			p, err := catalog.DefaultParams(id)
			require.NoError(t, err)
			run, err := catalog.Generate(id, p)
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, run.ID)
			assert.Equal(t, id, run.Algorithm)
			assert.NoError(t, run.Frames.Validate())
			assert.False(t, run.CreatedAt.IsZero())
		})
	}
}

func TestDefaultParams_Independent(t *testing.T) {
	p, err := catalog.DefaultParams(catalog.BinarySearch)
	require.NoError(t, err)
	require.NotNil(t, p.Target)
	assert.Equal(t, 23, *p.Target)
	*p.Target = 99
	p.Values[0] = -1

	again, err := catalog.DefaultParams(catalog.BinarySearch)
	require.NoError(t, err)
	assert.Equal(t, 23, *again.Target)
	assert.Equal(t, 2, again.Values[0])
}

func TestDefaultParams_GeneratedDatasets(t *testing.T) {
	a, err := catalog.DefaultParams(catalog.BubbleSort)
	require.NoError(t, err)
	b, err := catalog.DefaultParams(catalog.BubbleSort)
	require.NoError(t, err)
	assert.Len(t, a.Values, 8)
	assert.Equal(t, a.Values, b.Values, "fixed default seed")

	g, err := catalog.DefaultParams(catalog.GraphBFS)
	require.NoError(t, err)
	require.NotNil(t, g.Graph)
	assert.Len(t, g.Graph.Vertices, 6)
	assert.Equal(t, "A", g.Start)
}

func TestGenerate_BinarySearchReference(t *testing.T) {
	run, err := catalog.Generate(catalog.BinarySearch, catalog.Params{
		Values: []int{2, 5, 8, 12, 16, 23, 38, 56, 72, 91},
		Target: catalog.Int(23),
	})
	require.NoError(t, err)
	assert.Equal(t, frame.OutcomeFound, run.Frames.Outcome())
	last, ok := run.Frames.Last()
	require.True(t, ok)
	assert.Equal(t, []int{5}, last.Highlighted(frame.RoleFound))
}

func TestGenerate_MissingParam(t *testing.T) {
	cases := []struct {
		id catalog.ID
		p  catalog.Params
	}{
		{catalog.BubbleSort, catalog.Params{}},
		{catalog.BinarySearch, catalog.Params{Values: []int{1, 2}}},
		{catalog.ArrayInsert, catalog.Params{Values: []int{1}, Capacity: 4, Index: catalog.Int(0)}},
		{catalog.StackPush, catalog.Params{Value: catalog.Int(1)}},
		{catalog.BSTSearch, catalog.Params{Values: []int{1}}},
		{catalog.HeapExtractMax, catalog.Params{Values: []int{1}}},
		{catalog.GraphBFS, catalog.Params{Start: "A"}},
		{catalog.HashSearch, catalog.Params{TableSize: 7}},
	}
	for _, tc := range cases {
		_, err := catalog.Generate(tc.id, tc.p)
		assert.ErrorIs(t, err, catalog.ErrMissingParam, "id=%s", tc.id)
		assert.ErrorIs(t, err, frame.ErrInvalidInput, "id=%s", tc.id)
	}
}

func TestGenerate_InvalidInput(t *testing.T) {
	_, err := catalog.Generate(catalog.ArrayInsert, catalog.Params{
		Values: []int{1, 2, 3}, Capacity: 2, Index: catalog.Int(0), Value: catalog.Int(9),
	})
	assert.ErrorIs(t, err, frame.ErrInvalidInput, "capacity below value count")

	_, err = catalog.Generate(catalog.GraphDFS, catalog.Params{Graph: builder.SampleGraph(), Start: "Z"})
	assert.ErrorIs(t, err, frame.ErrInvalidInput, "unknown start label")

	_, err = catalog.Generate(catalog.QueueEnqueue, catalog.Params{
		Capacity: 2, Values: []int{1, 2, 3}, Value: catalog.Int(4),
	})
	assert.ErrorIs(t, err, frame.ErrInvalidInput, "builder errors are invalid input")

	_, err = catalog.Generate("bogo_sort", catalog.Params{})
	assert.ErrorIs(t, err, catalog.ErrUnknownAlgorithm)
}

func TestGenerate_RejectionIsAFrameSequence(t *testing.T) {
	run, err := catalog.Generate(catalog.StackPop, catalog.Params{Capacity: 4})
	require.NoError(t, err)
	require.Equal(t, 2, run.Frames.Len())
	assert.Equal(t, frame.OutcomeUnderflow, run.Frames.Outcome())
	first, _ := run.Frames.At(0)
	last, _ := run.Frames.Last()
	assert.Equal(t, first.State, last.State)
}

func TestGenerator_MaxInput(t *testing.T) {
	g := catalog.NewGenerator(4, 0)
	_, err := g.Generate(context.Background(), catalog.BubbleSort, catalog.Params{Values: []int{5, 4, 3, 2, 1}})
	assert.ErrorIs(t, err, catalog.ErrInputTooLarge)
	assert.ErrorIs(t, err, frame.ErrInvalidInput)

	run, err := g.Generate(context.Background(), catalog.BubbleSort, catalog.Params{Values: []int{2, 1}})
	require.NoError(t, err)
	last, ok := run.Frames.Last()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, last.State.(frame.ArrayState).Values)
}

// descending returns n, n-1, ..., 1.
func descending(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = n - i
	}

	return values
}

// ascending returns 1, 2, ..., n.
func ascending(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i + 1
	}

	return values
}

func TestGenerator_MaxFrames(t *testing.T) {
	values := descending(256)
	_, err := catalog.Generate(catalog.BubbleSort, catalog.Params{Values: values})
	assert.ErrorIs(t, err, catalog.ErrInputTooLarge, "256 values pass MaxInput but not the frame budget")
	assert.ErrorIs(t, err, frame.ErrInvalidInput)

	run, err := catalog.Generate(catalog.LinearSearch, catalog.Params{Values: values, Target: catalog.Int(1)})
	require.NoError(t, err, "linear generators keep the full input bound")
	assert.LessOrEqual(t, run.Frames.Len(), catalog.DefaultMaxFrames)

	g := catalog.NewGenerator(0, 100)
	_, err = g.Generate(context.Background(), catalog.SelectionSort, catalog.Params{Values: descending(10)})
	assert.ErrorIs(t, err, catalog.ErrInputTooLarge)
	_, err = g.Generate(context.Background(), catalog.SelectionSort, catalog.Params{Values: descending(9)})
	assert.NoError(t, err)
}

func TestGenerator_FrameBoundHolds(t *testing.T) {
	g := catalog.NewGenerator(0, 0)
	n := 64
	for _, id := range []catalog.ID{
		catalog.BubbleSort, catalog.SelectionSort, catalog.InsertionSort, catalog.QuickSort, catalog.MergeSort,
	} {
		for _, values := range [][]int{descending(n), ascending(n)} {
			run, err := g.Generate(context.Background(), id, catalog.Params{Values: values})
			require.NoError(t, err, "id=%s", id)
			assert.LessOrEqual(t, run.Frames.Len(), n*n+n+2, "id=%s", id)
		}
	}
}

func TestGenerate_BuiltTopology(t *testing.T) {
	cases := []struct {
		id    catalog.ID
		p     catalog.Params
		order string
	}{
		{catalog.GraphBFS, catalog.Params{Topology: "cycle", Vertices: 5}, "A, B, E, C, D"},
		{catalog.GraphDFS, catalog.Params{Topology: "cycle", Vertices: 5}, "A, B, C, D, E"},
		{catalog.GraphBFS, catalog.Params{Topology: "star", Vertices: 4, Labels: "numbers", Start: "2"}, "2, 0, 1, 3"},
		{catalog.GraphDFS, catalog.Params{Topology: "path", Vertices: 3, Labels: "v", Directed: true, Start: "v1"}, "v1, v2"},
	}
	for _, tc := range cases {
		run, err := catalog.Generate(tc.id, tc.p)
		require.NoError(t, err, "id=%s topology=%s", tc.id, tc.p.Topology)
		last, ok := run.Frames.Last()
		require.True(t, ok)
		order, ok := last.Scalar("order")
		require.True(t, ok)
		assert.Equal(t, tc.order, order, "id=%s topology=%s", tc.id, tc.p.Topology)
		assert.Len(t, last.State.(graph.State).Graph.Vertices, tc.p.Vertices)
	}
}

func TestGenerate_BuiltTopology_Errors(t *testing.T) {
	_, err := catalog.Generate(catalog.GraphBFS, catalog.Params{Topology: "wheel", Vertices: 5})
	assert.ErrorIs(t, err, builder.ErrUnknownTopology)
	assert.ErrorIs(t, err, frame.ErrInvalidInput)

	_, err = catalog.Generate(catalog.GraphDFS, catalog.Params{Topology: "cycle", Vertices: 2})
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	assert.ErrorIs(t, err, frame.ErrInvalidInput)

	_, err = catalog.Generate(catalog.GraphDFS, catalog.Params{Topology: "cycle"})
	assert.ErrorIs(t, err, catalog.ErrMissingParam)

	_, err = catalog.Generate(catalog.GraphBFS, catalog.Params{Topology: "complete", Vertices: 40})
	assert.ErrorIs(t, err, catalog.ErrInputTooLarge, "K40 has 780 edges")
}

func TestMerge_TopologyKeepsDefaultGraphOut(t *testing.T) {
	defaults, err := catalog.DefaultParams(catalog.GraphBFS)
	require.NoError(t, err)
	p := catalog.Params{Topology: "path", Vertices: 3, Labels: "numbers"}.Merge(defaults)
	assert.Nil(t, p.Graph)
	assert.Empty(t, p.Start)

	run, err := catalog.Generate(catalog.GraphBFS, p)
	require.NoError(t, err)
	first, _ := run.Frames.At(0)
	st := first.State.(graph.State)
	assert.Equal(t, []string{"0", "1", "2"}, st.Graph.Labels([]int{0, 1, 2}))
}

func TestGenerate_CancelledGraph(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p, err := catalog.DefaultParams(catalog.GraphBFS)
	require.NoError(t, err)
	_, err = catalog.NewGenerator(0, 0).Generate(ctx, catalog.GraphBFS, p)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, frame.ErrInvalidInput)
}

func TestGenerate_Deterministic(t *testing.T) {
	p, err := catalog.DefaultParams(catalog.QuickSort)
	require.NoError(t, err)
	a, err := catalog.Generate(catalog.QuickSort, p)
	require.NoError(t, err)
	b, err := catalog.Generate(catalog.QuickSort, p)
	require.NoError(t, err)
	assert.Equal(t, a.Frames, b.Frames)
	assert.NotEqual(t, a.ID, b.ID)
}
