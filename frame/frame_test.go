// SPDX-License-Identifier: MIT

package frame_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algoviz/frame"
)

// TestRecorder_ClonesState checks that mutating a state after recording it
// does not leak into the sequence.
func TestRecorder_ClonesState(t *testing.T) {
	st := frame.NewArrayState([]int{3, 1, 2})
	rec := frame.NewRecorder(st, "Initial state")

	st.Values[0] = 99
	rec.Record(st, "Mutated", frame.Mark(frame.RoleCurrent, 0))
	st.Values[1] = 77
	seq := rec.Finish(st, frame.OutcomeDone, "Done")

	require.Equal(t, 3, seq.Len())
	assert.Equal(t, []int{3, 1, 2}, seq[0].State.(frame.ArrayState).Values)
	assert.Equal(t, []int{99, 1, 2}, seq[1].State.(frame.ArrayState).Values)
	assert.Equal(t, []int{99, 77, 2}, seq[2].State.(frame.ArrayState).Values)
	require.NoError(t, seq.Validate())
}

// TestRecorder_Annotations covers highlight scopes, scalars and empty marks.
func TestRecorder_Annotations(t *testing.T) {
	st := frame.NewArrayState([]int{1, 2})
	rec := frame.NewRecorder(st, "Initial")
	rec.Record(st, "Annotated",
		frame.Mark(frame.RoleComparing, 0, 1),
		frame.Mark(frame.RoleSorted),
		frame.Mark(frame.RoleCurrent, 4).In(frame.ScopeBucket),
		frame.Int("pivot", 1),
		frame.Text("formula", "pos = 0"),
	)
	seq := rec.Finish(st, frame.OutcomeNone, "Done")

	f, ok := seq.At(1)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, f.Highlighted(frame.RoleComparing))
	assert.Nil(t, f.Highlighted(frame.RoleSorted), "empty marks are dropped")
	assert.False(t, f.HasRole(frame.RoleSorted))
	assert.Nil(t, f.Highlighted(frame.RoleCurrent))
	assert.Equal(t, []int{4}, f.HighlightedIn(frame.RoleCurrent, frame.ScopeBucket))
	v, ok := f.Scalar("pivot")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	assert.Equal(t, frame.OutcomeDone, seq.Outcome(), "OutcomeNone is promoted")
	assert.Equal(t, frame.KindArray, f.Kind)
}

// TestRecorder_Reject produces the two-frame shape of a rejected operation.
func TestRecorder_Reject(t *testing.T) {
	st := frame.NewArrayState([]int{1})
	rec := frame.NewRecorder(st, "Initial")
	seq := rec.Reject(frame.OutcomeUnderflow, "Nothing to remove")

	require.Equal(t, 2, seq.Len())
	assert.Equal(t, seq[0].State, seq[1].State)
	assert.True(t, seq[1].Terminal())
	assert.True(t, seq.Outcome().Rejected())

	// sealed recorders ignore further frames
	rec.Record(st, "ignored")
	assert.Equal(t, 2, rec.Len())
}

// TestSequence_AtReturnsClones ensures callers cannot reach recorded state.
func TestSequence_AtReturnsClones(t *testing.T) {
	rec := frame.NewRecorder(frame.NewArrayState([]int{1, 2}), "Initial", frame.Mark(frame.RoleCurrent, 0))
	seq := rec.Finish(frame.NewArrayState([]int{1, 2}), frame.OutcomeDone, "Done")

	f, ok := seq.At(0)
	require.True(t, ok)
	f.State.(frame.ArrayState).Values[0] = 42
	f.Highlights[0].IDs[0] = 9

	again, _ := seq.At(0)
	assert.Equal(t, 1, again.State.(frame.ArrayState).Values[0])
	assert.Equal(t, []int{0}, again.Highlighted(frame.RoleCurrent))

	_, ok = seq.At(-1)
	assert.False(t, ok)
	_, ok = seq.At(2)
	assert.False(t, ok)
}

// TestSequence_Validate rejects malformed sequences.
func TestSequence_Validate(t *testing.T) {
	assert.True(t, errors.Is(frame.Sequence(nil).Validate(), frame.ErrEmptySequence))

	st := frame.NewArrayState([]int{1})
	bad := frame.Sequence{
		{Index: 0, State: st},
		{Index: 1, State: st},
	}
	assert.ErrorIs(t, bad.Validate(), frame.ErrMalformedSequence, "missing terminal frame")

	bad = frame.Sequence{
		{Index: 0, State: st, Outcome: frame.OutcomeDone},
		{Index: 1, State: st, Outcome: frame.OutcomeDone},
	}
	assert.ErrorIs(t, bad.Validate(), frame.ErrMalformedSequence, "early terminal frame")

	bad = frame.Sequence{{Index: 3, State: st, Outcome: frame.OutcomeDone}}
	assert.ErrorIs(t, bad.Validate(), frame.ErrMalformedSequence, "misnumbered")
}

// TestInvalidf wraps both the shared and the package sentinel.
func TestInvalidf(t *testing.T) {
	errPkg := errors.New("pkg: index out of range")
	err := frame.Invalidf(errPkg, "index %d not in [0,%d]", 9, 5)

	assert.ErrorIs(t, err, frame.ErrInvalidInput)
	assert.ErrorIs(t, err, errPkg)
	assert.Contains(t, err.Error(), "index 9 not in [0,5]")
}

// TestArrayState_Live trims to the live prefix.
func TestArrayState_Live(t *testing.T) {
	a := frame.ArrayState{Values: []int{10, 20, 30, 0, 0}, Size: 3}
	assert.Equal(t, []int{10, 20, 30}, a.Live())
	assert.Equal(t, 5, a.Capacity())
	assert.Equal(t, frame.KindArray, a.Kind())
}
