// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Frame, Highlight, Role/Scope/Outcome/Kind vocabularies and the State contract.

package frame

// Role tags a highlighted id set with its rendering meaning.
type Role string

const (
	RoleComparing  Role = "comparing"
	RoleSwapping   Role = "swapping"
	RoleSorted     Role = "sorted"
	RolePivot      Role = "pivot"
	RoleVisited    Role = "visited"
	RoleCurrent    Role = "current"
	RoleFound      Role = "found"
	RoleRangeBound Role = "range-bound"
)

// Scope names the id namespace of a highlight when a structure exposes more
// than one (hash tables highlight both buckets and chain entries).
// The empty scope means the structure's primary ids.
type Scope string

const (
	ScopeIndex  Scope = "index"
	ScopeNode   Scope = "node"
	ScopeVertex Scope = "vertex"
	ScopeBucket Scope = "bucket"
	ScopeEntry  Scope = "entry"
)

// Outcome resolves a run. Only terminal frames carry a non-empty Outcome.
type Outcome string

const (
	OutcomeNone      Outcome = ""
	OutcomeDone      Outcome = "done"
	OutcomeFound     Outcome = "found"
	OutcomeNotFound  Outcome = "not-found"
	OutcomeOverflow  Outcome = "overflow"
	OutcomeUnderflow Outcome = "underflow"
	OutcomeEmpty     Outcome = "empty"
	OutcomeDuplicate Outcome = "duplicate"
)

// Rejected reports whether the outcome means the requested operation did not
// mutate the structure (overflow, underflow, empty, duplicate).
func (o Outcome) Rejected() bool {
	switch o {
	case OutcomeOverflow, OutcomeUnderflow, OutcomeEmpty, OutcomeDuplicate:
		return true
	default:
		return false
	}
}

// Kind identifies the concrete State type so renderers can pick a view.
type Kind string

const (
	KindArray Kind = "array"
	KindStack Kind = "stack"
	KindQueue Kind = "queue"
	KindList  Kind = "linked-list"
	KindTree  Kind = "tree"
	KindHeap  Kind = "heap"
	KindGraph Kind = "graph"
	KindHash  Kind = "hash"
)

// State is a full snapshot of a data structure at one instant.
// Clone must return a deep copy sharing no mutable memory with the receiver.
type State interface {
	Kind() Kind
	Clone() State
}

// Highlight is a role-tagged set of element ids.
type Highlight struct {
	Role  Role  `json:"role" yaml:"role"`
	Scope Scope `json:"scope,omitempty" yaml:"scope,omitempty"`
	IDs   []int `json:"ids" yaml:"ids"`
}

// Mark builds a Highlight over ids. The ids slice is copied.
func Mark(role Role, ids ...int) Highlight {
	cp := make([]int, len(ids))
	copy(cp, ids)

	return Highlight{Role: role, IDs: cp}
}

// In returns a copy of h bound to scope.
func (h Highlight) In(scope Scope) Highlight {
	h.Scope = scope
	h.IDs = append([]int(nil), h.IDs...)

	return h
}

// Frame is one immutable step of an algorithm run.
type Frame struct {
	Index       int               `json:"index"`
	Kind        Kind              `json:"kind"`
	State       State             `json:"state"`
	Description string            `json:"description"`
	Highlights  []Highlight       `json:"highlights,omitempty"`
	Scalars     map[string]string `json:"scalars,omitempty"`
	Outcome     Outcome           `json:"outcome,omitempty"`
}

// Terminal reports whether f resolves its run.
func (f Frame) Terminal() bool { return f.Outcome != OutcomeNone }

// Highlighted returns the ids tagged with role in the primary scope,
// in recording order. It returns nil if no such highlight exists.
func (f Frame) Highlighted(role Role) []int {
	return f.HighlightedIn(role, "")
}

// HighlightedIn returns the ids tagged with role in scope.
func (f Frame) HighlightedIn(role Role, scope Scope) []int {
	var out []int
	for _, h := range f.Highlights {
		if h.Role == role && h.Scope == scope {
			out = append(out, h.IDs...)
		}
	}

	return out
}

// HasRole reports whether any highlight of f, in any scope, carries role.
func (f Frame) HasRole(role Role) bool {
	for _, h := range f.Highlights {
		if h.Role == role && len(h.IDs) > 0 {
			return true
		}
	}

	return false
}

// Scalar returns the display scalar stored under key.
func (f Frame) Scalar(key string) (string, bool) {
	v, ok := f.Scalars[key]

	return v, ok
}

// Clone returns a deep copy of f.
func (f Frame) Clone() Frame {
	out := f
	if f.State != nil {
		out.State = f.State.Clone()
	}
	if f.Highlights != nil {
		out.Highlights = make([]Highlight, len(f.Highlights))
		for i, h := range f.Highlights {
			out.Highlights[i] = Highlight{Role: h.Role, Scope: h.Scope, IDs: append([]int(nil), h.IDs...)}
		}
	}
	if f.Scalars != nil {
		out.Scalars = make(map[string]string, len(f.Scalars))
		for k, v := range f.Scalars {
			out.Scalars[k] = v
		}
	}

	return out
}
