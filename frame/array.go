// SPDX-License-Identifier: MIT

package frame

// ArrayState is the snapshot used by sorting, searching and array operations.
//
// Values holds every slot of the backing array; Size counts the live prefix.
// For sorts and searches Size == len(Values). For array insertion/deletion
// len(Values) is the fixed capacity and slots at or beyond Size are unused.
type ArrayState struct {
	Values []int `json:"values" yaml:"values"`
	Size   int   `json:"size" yaml:"size"`
}

// NewArrayState returns a fully-live array state holding a copy of values.
func NewArrayState(values []int) ArrayState {
	return ArrayState{Values: append([]int{}, values...), Size: len(values)}
}

// Kind implements State.
func (ArrayState) Kind() Kind { return KindArray }

// Clone implements State.
func (a ArrayState) Clone() State { return a.Copy() }

// Copy returns a deep copy with the concrete type preserved.
func (a ArrayState) Copy() ArrayState {
	return ArrayState{Values: append([]int{}, a.Values...), Size: a.Size}
}

// Live returns a copy of the live prefix Values[:Size].
func (a ArrayState) Live() []int {
	n := a.Size
	if n > len(a.Values) {
		n = len(a.Values)
	}
	if n < 0 {
		n = 0
	}

	return append([]int{}, a.Values[:n]...)
}

// Capacity returns the number of slots in the backing array.
func (a ArrayState) Capacity() int { return len(a.Values) }
