// SPDX-License-Identifier: MIT

package arrayops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/arrayops"
	"github.com/katalvlaran/algoviz/frame"
)

func fixture() frame.ArrayState {
	return frame.ArrayState{Values: []int{10, 20, 30, 40, 50, 0, 0, 0}, Size: 5}
}

func final(t *testing.T, seq frame.Sequence) frame.ArrayState {
	t.Helper()
	require.NoError(t, seq.Validate())
	last, ok := seq.Last()
	require.True(t, ok)

	return last.State.(frame.ArrayState)
}

func TestInsert(t *testing.T) {
	in := fixture()
	seq, err := arrayops.Insert(in, 1, 15)
	require.NoError(t, err)

	got := final(t, seq)
	assert.Equal(t, []int{10, 15, 20, 30, 40, 50, 0, 0}, got.Values)
	assert.Equal(t, 6, got.Size)
	assert.Equal(t, frame.OutcomeDone, seq.Outcome())
	// 4 shifts, 2 frames each
	assert.Equal(t, 4, seq.CountRole(frame.RoleSwapping))
	assert.Equal(t, fixture(), in, "input untouched")
	assert.Equal(t, in, seq[0].State)
}

func TestInsert_AtEnd(t *testing.T) {
	seq, err := arrayops.Insert(fixture(), 5, 60)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30, 40, 50, 60, 0, 0}, final(t, seq).Values)
	assert.Equal(t, 0, seq.CountRole(frame.RoleSwapping))
}

func TestInsert_Overflow(t *testing.T) {
	full := frame.ArrayState{Values: []int{1, 2, 3}, Size: 3}
	seq, err := arrayops.Insert(full, 0, 9)
	require.NoError(t, err)
	require.Equal(t, 2, seq.Len())
	assert.Equal(t, frame.OutcomeOverflow, seq.Outcome())
	assert.Equal(t, seq[0].State, seq[1].State)
}

func TestInsert_Invalid(t *testing.T) {
	_, err := arrayops.Insert(fixture(), 6, 1)
	assert.ErrorIs(t, err, frame.ErrInvalidInput)
	assert.ErrorIs(t, err, arrayops.ErrIndexOutOfRange)

	_, err = arrayops.Insert(fixture(), -1, 1)
	assert.ErrorIs(t, err, arrayops.ErrIndexOutOfRange)

	_, err = arrayops.Insert(frame.ArrayState{Values: []int{1}, Size: 4}, 0, 1)
	assert.ErrorIs(t, err, arrayops.ErrInvalidSize)
}

func TestDelete(t *testing.T) {
	seq, err := arrayops.Delete(fixture(), 1)
	require.NoError(t, err)
	got := final(t, seq)
	assert.Equal(t, []int{10, 30, 40, 50, 0, 0, 0, 0}, got.Values)
	assert.Equal(t, 4, got.Size)
	assert.Equal(t, 3, seq.CountRole(frame.RoleSwapping))
	removed, _ := seq[seq.Len()-1].Scalar("removed")
	assert.Equal(t, "20", removed)

	_, err = arrayops.Delete(fixture(), 5)
	assert.ErrorIs(t, err, arrayops.ErrIndexOutOfRange)
	_, err = arrayops.Delete(frame.ArrayState{Values: []int{0, 0}}, 0)
	assert.ErrorIs(t, err, frame.ErrInvalidInput)
}

func TestReverse(t *testing.T) {
	seq, err := arrayops.Reverse(frame.NewArrayState([]int{10, 20, 30, 40, 50, 60}))
	require.NoError(t, err)
	assert.Equal(t, []int{60, 50, 40, 30, 20, 10}, final(t, seq).Values)
	assert.Equal(t, 3, seq.CountRole(frame.RoleSwapping))

	// only the live prefix is reversed
	seq, err = arrayops.Reverse(frame.ArrayState{Values: []int{1, 2, 3, 0}, Size: 3})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1, 0}, final(t, seq).Values)
}

func TestRotate(t *testing.T) {
	in := frame.NewArrayState([]int{1, 2, 3, 4, 5, 6})

	seq, err := arrayops.Rotate(in, 2, arrayops.Right)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6, 1, 2, 3, 4}, final(t, seq).Values)
	assert.Equal(t, 6, seq.Len(), "initial + 2 frames per step + terminal")
	assert.Equal(t, []int{5}, seq[1].Highlighted(frame.RoleCurrent), "last element highlighted before it moves")
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, seq[1].State.(frame.ArrayState).Values)
	assert.Equal(t, []int{0}, seq[2].Highlighted(frame.RoleSwapping))
	assert.Equal(t, []int{6, 1, 2, 3, 4, 5}, seq[2].State.(frame.ArrayState).Values)

	seq, err = arrayops.Rotate(in, 1, "")
	require.NoError(t, err)
	assert.Equal(t, []int{6, 1, 2, 3, 4, 5}, final(t, seq).Values, "empty direction rotates right")

	seq, err = arrayops.Rotate(in, 8, arrayops.Left)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5, 6, 1, 2}, final(t, seq).Values, "8 mod 6 = 2")

	seq, err = arrayops.Rotate(in, 6, arrayops.Right)
	require.NoError(t, err)
	assert.Equal(t, in.Values, final(t, seq).Values)
	assert.Equal(t, 2, seq.Len())
}

func TestRotate_Degenerate(t *testing.T) {
	for _, in := range []frame.ArrayState{frame.NewArrayState(nil), frame.NewArrayState([]int{7})} {
		seq, err := arrayops.Rotate(in, 3, arrayops.Right)
		require.NoError(t, err)
		assert.Equal(t, 2, seq.Len())
		assert.Equal(t, frame.OutcomeDone, seq.Outcome())
		assert.Equal(t, seq[0].State, seq[1].State)
	}

	_, err := arrayops.Rotate(frame.NewArrayState([]int{1, 2}), 0, arrayops.Right)
	assert.ErrorIs(t, err, arrayops.ErrInvalidSteps)
	_, err = arrayops.Rotate(frame.NewArrayState([]int{1, 2}), 1, "up")
	assert.ErrorIs(t, err, arrayops.ErrInvalidDirection)
}
