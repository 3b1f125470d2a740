// SPDX-License-Identifier: MIT

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/frame"
	"github.com/katalvlaran/algoviz/tree"
)

func sample() tree.State { return tree.NewBST(50, 30, 70, 20, 40, 60, 80) }

func lastTree(t *testing.T, seq frame.Sequence) tree.State {
	t.Helper()
	require.NoError(t, seq.Validate())
	got := seq[seq.Len()-1].State.(tree.State)
	require.NoError(t, got.Validate())

	return got
}

func TestNewBST(t *testing.T) {
	s := sample()
	require.NoError(t, s.Validate())
	assert.Equal(t, 7, s.Len())
	assert.Equal(t, []int{20, 30, 40, 50, 60, 70, 80}, s.Values())

	dup := tree.NewBST(3, 3, 1)
	assert.Equal(t, 2, dup.Len())
}

func TestInsert(t *testing.T) {
	seq, err := tree.Insert(sample(), 65)
	require.NoError(t, err)
	got := lastTree(t, seq)
	assert.Equal(t, 6, seq.Len(), "start, three descents, create, finish")
	assert.Equal(t, frame.OutcomeDone, seq.Outcome())
	assert.Equal(t, []int{20, 30, 40, 50, 60, 65, 70, 80}, got.Values())
	assert.Equal(t, []int{7}, seq[seq.Len()-1].Highlighted(frame.RoleFound))
	assert.Equal(t, "65 > 50, going right", seq[1].Description)
	assert.Equal(t, "65 < 70, going left", seq[2].Description)

	seq, err = tree.Insert(tree.Empty(), 9)
	require.NoError(t, err)
	got = lastTree(t, seq)
	assert.Equal(t, 3, seq.Len())
	assert.Equal(t, []int{9}, got.Values())
}

func TestInsert_Duplicate(t *testing.T) {
	in := sample()
	seq, err := tree.Insert(in, 40)
	require.NoError(t, err)
	require.NoError(t, seq.Validate())
	assert.Equal(t, frame.OutcomeDuplicate, seq.Outcome())
	assert.Equal(t, 4, seq.Len())
	assert.Equal(t, seq[0].State, seq[seq.Len()-1].State, "duplicate insert leaves tree unchanged")
	assert.Equal(t, 7, in.Len(), "input is not mutated")
}

func TestSearch(t *testing.T) {
	seq, err := tree.Search(sample(), 60)
	require.NoError(t, err)
	require.NoError(t, seq.Validate())
	assert.Equal(t, frame.OutcomeFound, seq.Outcome())
	assert.Equal(t, 7, seq.Len())
	assert.Equal(t, []int{5}, seq[seq.Len()-1].Highlighted(frame.RoleFound))

	seq, err = tree.Search(sample(), 55)
	require.NoError(t, err)
	assert.Equal(t, frame.OutcomeNotFound, seq.Outcome())
	assert.Equal(t, 8, seq.Len())
	assert.Empty(t, seq[seq.Len()-1].Highlights)

	seq, err = tree.Search(tree.Empty(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, seq.Len())
	assert.Equal(t, frame.OutcomeNotFound, seq.Outcome())
}

func TestTraversals(t *testing.T) {
	cases := []struct {
		order tree.Order
		want  string
	}{
		{tree.InOrderKind, "20, 30, 40, 50, 60, 70, 80"},
		{tree.PreOrderKind, "50, 30, 20, 40, 70, 60, 80"},
		{tree.PostOrderKind, "20, 40, 30, 60, 80, 70, 50"},
		{tree.LevelKind, "50, 30, 70, 20, 40, 60, 80"},
	}
	for _, tc := range cases {
		t.Run(string(tc.order), func(t *testing.T) {
			seq, err := tree.Traverse(sample(), tc.order)
			require.NoError(t, err)
			require.NoError(t, seq.Validate())
			assert.Equal(t, 9, seq.Len())
			last := seq[seq.Len()-1]
			order, ok := last.Scalar("order")
			require.True(t, ok)
			assert.Equal(t, tc.want, order)
			assert.Len(t, last.Highlighted(frame.RoleVisited), 7)
		})
	}
}

func TestLevelOrder_QueueScalar(t *testing.T) {
	seq, err := tree.LevelOrder(sample())
	require.NoError(t, err)
	q, ok := seq[1].Scalar("queue")
	require.True(t, ok)
	assert.Equal(t, "[30, 70]", q)
	q, _ = seq[7].Scalar("queue")
	assert.Equal(t, "[]", q)
}

func TestTraversal_Empty(t *testing.T) {
	for _, fn := range []func(tree.State) (frame.Sequence, error){tree.InOrder, tree.PreOrder, tree.PostOrder, tree.LevelOrder} {
		seq, err := fn(tree.Empty())
		require.NoError(t, err)
		assert.Equal(t, 2, seq.Len())
		assert.Equal(t, frame.OutcomeEmpty, seq.Outcome())
	}

	_, err := tree.Traverse(sample(), "zigzag")
	assert.ErrorIs(t, err, tree.ErrUnknownOrder)
	assert.ErrorIs(t, err, frame.ErrInvalidInput)
}

func TestValidate(t *testing.T) {
	bad := tree.State{
		Nodes:  []tree.Node{{ID: 0, Value: 5, Left: 1, Right: tree.Nil}, {ID: 1, Value: 9, Left: tree.Nil, Right: tree.Nil}},
		Root:   0,
		NextID: 2,
	}
	_, err := tree.Insert(bad, 1)
	assert.ErrorIs(t, err, tree.ErrNotBST)

	orphan := tree.State{
		Nodes:  []tree.Node{{ID: 0, Value: 5, Left: tree.Nil, Right: tree.Nil}, {ID: 1, Value: 9, Left: tree.Nil, Right: tree.Nil}},
		Root:   0,
		NextID: 2,
	}
	_, err = tree.Search(orphan, 1)
	assert.ErrorIs(t, err, tree.ErrInconsistent)
}

func TestHeapInsert(t *testing.T) {
	h := tree.NewHeap(7, 50, 30, 40, 10)
	require.NoError(t, h.Validate())
	assert.Equal(t, []int{50, 30, 40, 10}, h.Values)

	seq, err := tree.HeapInsert(h, 45)
	require.NoError(t, err)
	require.NoError(t, seq.Validate())
	got := seq[seq.Len()-1].State.(tree.HeapState)
	require.NoError(t, got.Validate())
	assert.Equal(t, []int{50, 45, 40, 10, 30}, got.Values)
	assert.Equal(t, 6, seq.Len())
	assert.Equal(t, 1, seq.CountRole(frame.RoleSwapping))
	assert.Equal(t, []int{1}, seq[seq.Len()-1].Highlighted(frame.RoleFound))
	assert.Equal(t, []int{50, 30, 40, 10}, h.Values, "input is not mutated")
}

func TestHeapInsert_Overflow(t *testing.T) {
	seq, err := tree.HeapInsert(tree.NewHeap(2, 5, 3), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, seq.Len())
	assert.Equal(t, frame.OutcomeOverflow, seq.Outcome())
	assert.Equal(t, seq[0].State, seq[1].State)
}

func TestExtractMax(t *testing.T) {
	seq, err := tree.ExtractMax(tree.HeapState{Values: []int{50, 45, 40, 10, 30}, Capacity: 7})
	require.NoError(t, err)
	require.NoError(t, seq.Validate())
	got := seq[seq.Len()-1].State.(tree.HeapState)
	require.NoError(t, got.Validate())
	assert.Equal(t, []int{45, 30, 40, 10}, got.Values)
	m, ok := seq[seq.Len()-1].Scalar("max")
	require.True(t, ok)
	assert.Equal(t, "50", m)

	seq, err = tree.ExtractMax(tree.NewHeap(3, 7))
	require.NoError(t, err)
	assert.Equal(t, 3, seq.Len())
	assert.Empty(t, seq[seq.Len()-1].State.(tree.HeapState).Values)
}

func TestExtractMax_Underflow(t *testing.T) {
	seq, err := tree.ExtractMax(tree.NewHeap(3))
	require.NoError(t, err)
	assert.Equal(t, 2, seq.Len())
	assert.Equal(t, frame.OutcomeUnderflow, seq.Outcome())

	_, err = tree.ExtractMax(tree.HeapState{Values: []int{1, 5}, Capacity: 3})
	assert.ErrorIs(t, err, tree.ErrNotHeap)
	_, err = tree.HeapInsert(tree.HeapState{}, 1)
	assert.ErrorIs(t, err, tree.ErrInvalidCapacity)
}
