// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/graph"
	"github.com/katalvlaran/algoviz/hashing"
	"github.com/katalvlaran/algoviz/linkedlist"
	"github.com/katalvlaran/algoviz/queue"
	"github.com/katalvlaran/algoviz/stack"
)

func TestRandomArray_Deterministic(t *testing.T) {
	a, err := builder.RandomArray(20, builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.RandomArray(20, builder.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, _ := builder.RandomArray(20, builder.WithSeed(43))
	assert.NotEqual(t, a, c)

	zero, _ := builder.RandomArray(20, builder.WithSeed(0))
	dflt, _ := builder.RandomArray(20)
	assert.Equal(t, dflt, zero, "seed 0 selects the default seed")
}

func TestRandomArray_Range(t *testing.T) {
	vals, err := builder.RandomArray(500, builder.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)
	for _, v := range vals {
		assert.GreaterOrEqual(t, v, builder.DefaultMinValue)
		assert.LessOrEqual(t, v, builder.DefaultMaxValue)
	}

	vals, _ = builder.RandomArray(50, builder.WithRange(3, 3))
	for _, v := range vals {
		assert.Equal(t, 3, v)
	}

	_, err = builder.RandomArray(0)
	assert.ErrorIs(t, err, builder.ErrBadSize)
	assert.Panics(t, func() { builder.WithRange(5, 1) })
}

func TestSortedArray(t *testing.T) {
	vals, err := builder.SortedArray(30, builder.WithSeed(9))
	require.NoError(t, err)
	assert.True(t, sort.IntsAreSorted(vals))
}

func TestExcelColumnIDFn(t *testing.T) {
	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "AB", builder.ExcelColumnIDFn(27))
	assert.Equal(t, "v3", builder.SymbolNumberIDFn("v")(3))
}

func TestTopologies(t *testing.T) {
	cases := []struct {
		name  string
		cons  builder.Constructor
		gopts []graph.Option
		v, e  int
	}{
		{"path", builder.Path(4), nil, 4, 3},
		{"cycle", builder.Cycle(5), nil, 5, 5},
		{"star", builder.Star(4), nil, 4, 3},
		{"complete", builder.Complete(4), nil, 4, 6},
		{"complete-directed", builder.Complete(3), []graph.Option{graph.WithDirected()}, 3, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.gopts, nil, tc.cons)
			require.NoError(t, err)
			require.NoError(t, g.Validate())
			assert.Len(t, g.Vertices, tc.v)
			assert.Len(t, g.Edges, tc.e)
		})
	}
}

func TestTopologies_Errors(t *testing.T) {
	for _, cons := range []builder.Constructor{builder.Path(1), builder.Cycle(2), builder.Star(1), builder.Complete(0)} {
		_, err := builder.BuildGraph(nil, nil, cons)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	}
	_, err := builder.BuildGraph(nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	// two constructors reuse the same labels
	_, err = builder.BuildGraph(nil, nil, builder.Path(2), builder.Path(2))
	assert.ErrorIs(t, err, graph.ErrDuplicateLabel)
}

func TestBuildGraph_IDScheme(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDScheme(builder.DecimalIDFn)}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2"}, g.Labels([]int{0, 1, 2}))
}

func TestConstructorFor(t *testing.T) {
	for _, name := range []string{"path", "Cycle", "STAR", "complete"} {
		cons, err := builder.ConstructorFor(name, 4)
		require.NoError(t, err, name)
		g, err := builder.BuildGraph(nil, nil, cons)
		require.NoError(t, err, name)
		assert.Len(t, g.Edges, builder.EdgeCount(name, 4, false), name)
	}

	cons, err := builder.ConstructorFor(builder.MethodComplete, 4)
	require.NoError(t, err)
	g, err := builder.BuildGraph([]graph.Option{graph.WithDirected()}, nil, cons)
	require.NoError(t, err)
	assert.Len(t, g.Edges, builder.EdgeCount(builder.MethodComplete, 4, true))

	_, err = builder.ConstructorFor("wheel", 4)
	assert.ErrorIs(t, err, builder.ErrUnknownTopology)
	assert.Zero(t, builder.EdgeCount("wheel", 4, false))
}

func TestIDSchemeFor(t *testing.T) {
	assert.Equal(t, "C", builder.IDSchemeFor("")(2))
	assert.Equal(t, "C", builder.IDSchemeFor(builder.SchemeLetters)(2))
	assert.Equal(t, "2", builder.IDSchemeFor(builder.SchemeNumbers)(2))
	assert.Equal(t, "node2", builder.IDSchemeFor("node")(2))
}

func TestSampleGraph(t *testing.T) {
	g := builder.SampleGraph()
	require.NoError(t, g.Validate())
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, g.Labels([]int{0, 1, 2, 3, 4, 5}))
	assert.Equal(t, []int{0, 3, 4}, g.Neighbors(1))
	assert.True(t, builder.SampleGraph(graph.WithDirected()).Directed)
}

func TestStructureFixtures(t *testing.T) {
	bst := builder.BST(50, 30, 70)
	assert.Equal(t, []int{30, 50, 70}, bst.Values())

	h, err := builder.Heap(4, 1, 9, 5)
	require.NoError(t, err)
	assert.Equal(t, 9, h.Values[0])
	_, err = builder.Heap(1, 1, 2)
	assert.ErrorIs(t, err, builder.ErrBadSize)

	ht, err := builder.HashTable(7, "ab", "ba", "c")
	require.NoError(t, err)
	require.NoError(t, ht.Validate())
	assert.Equal(t, []hashing.Entry{{Key: "ab", Value: 0}, {Key: "ba", Value: 1}}, ht.Buckets[6])
	_, err = builder.HashTable(0)
	assert.ErrorIs(t, err, builder.ErrBadSize)

	st, err := builder.Stack(stack.ModeArray, 5, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Top)
	_, err = builder.Stack(stack.ModeArray, 1, 1, 2)
	assert.Error(t, err)

	q, err := builder.Queue(queue.Circular, 4, 1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, q.Values())
	_, err = builder.Queue(queue.Linear, 2, 1, 2, 3)
	assert.ErrorIs(t, err, builder.ErrBadSize)

	l, err := builder.List(linkedlist.Doubly, 4, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, l.Values())
}
