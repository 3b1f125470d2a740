// SPDX-License-Identifier: MIT
//
// File: params.go
// Role: algorithm input parameters and their error classes.

package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/frame"
	"github.com/katalvlaran/algoviz/graph"
	"github.com/katalvlaran/algoviz/hashing"
	"github.com/katalvlaran/algoviz/tree"
)

// Sentinel errors for Generate. Each also matches frame.ErrInvalidInput.
var (
	// ErrUnknownAlgorithm indicates an ID absent from the catalog.
	ErrUnknownAlgorithm = fmt.Errorf("%w: catalog: unknown algorithm", frame.ErrInvalidInput)

	// ErrMissingParam indicates a required parameter was not supplied.
	ErrMissingParam = fmt.Errorf("%w: catalog: missing parameter", frame.ErrInvalidInput)

	// ErrInputTooLarge indicates a dataset longer than Generator.MaxInput or
	// a run that could exceed Generator.MaxFrames.
	ErrInputTooLarge = fmt.Errorf("%w: catalog: input too large", frame.ErrInvalidInput)
)

// Params carries the inputs of every algorithm. Each algorithm reads only
// the fields it needs; pointer fields distinguish "absent" from zero.
//
// Structures may be passed explicitly (Tree, Heap, Table, Graph) or built
// from Values/Keys. An explicit structure wins. Graphs may also be built
// from a named Topology ("path", "cycle", "star", "complete") of Vertices
// vertices, labelled by Labels ("letters", "numbers" or a prefix).
type Params struct {
	Values    []int    `json:"values,omitempty" yaml:"values,omitempty"`
	Target    *int     `json:"target,omitempty" yaml:"target,omitempty"`
	Value     *int     `json:"value,omitempty" yaml:"value,omitempty"`
	Index     *int     `json:"index,omitempty" yaml:"index,omitempty"`
	Steps     *int     `json:"steps,omitempty" yaml:"steps,omitempty"`
	Direction string   `json:"direction,omitempty" yaml:"direction,omitempty"`
	Capacity  int      `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	Mode      string   `json:"mode,omitempty" yaml:"mode,omitempty"`
	Variant   string   `json:"variant,omitempty" yaml:"variant,omitempty"`
	Key       string   `json:"key,omitempty" yaml:"key,omitempty"`
	TableSize int      `json:"tableSize,omitempty" yaml:"tableSize,omitempty"`
	Keys      []string `json:"keys,omitempty" yaml:"keys,omitempty"`
	Start     string   `json:"start,omitempty" yaml:"start,omitempty"`
	MaxDepth  *int     `json:"maxDepth,omitempty" yaml:"maxDepth,omitempty"`
	EarlyExit bool     `json:"earlyExit,omitempty" yaml:"earlyExit,omitempty"`
	Topology  string   `json:"topology,omitempty" yaml:"topology,omitempty"`
	Vertices  int      `json:"vertices,omitempty" yaml:"vertices,omitempty"`
	Labels    string   `json:"labels,omitempty" yaml:"labels,omitempty"`
	Directed  bool     `json:"directed,omitempty" yaml:"directed,omitempty"`

	Tree  *tree.State     `json:"tree,omitempty" yaml:"tree,omitempty"`
	Heap  *tree.HeapState `json:"heap,omitempty" yaml:"heap,omitempty"`
	Table *hashing.State  `json:"table,omitempty" yaml:"table,omitempty"`
	Graph *graph.Graph    `json:"graph,omitempty" yaml:"graph,omitempty"`
}

// Int returns a pointer to v, for filling optional Params fields.
func Int(v int) *int { return &v }

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}

	return Int(*v)
}

// Merge returns p with every zero field taken from defaults. A p that names
// a Topology keeps it: the default Graph and Start are not merged in.
func (p Params) Merge(defaults Params) Params {
	if p.Values == nil {
		p.Values = append([]int(nil), defaults.Values...)
	}
	if p.Target == nil {
		p.Target = cloneInt(defaults.Target)
	}
	if p.Value == nil {
		p.Value = cloneInt(defaults.Value)
	}
	if p.Index == nil {
		p.Index = cloneInt(defaults.Index)
	}
	if p.Steps == nil {
		p.Steps = cloneInt(defaults.Steps)
	}
	if p.Direction == "" {
		p.Direction = defaults.Direction
	}
	if p.Capacity == 0 {
		p.Capacity = defaults.Capacity
	}
	if p.Mode == "" {
		p.Mode = defaults.Mode
	}
	if p.Variant == "" {
		p.Variant = defaults.Variant
	}
	if p.Key == "" {
		p.Key = defaults.Key
	}
	if p.TableSize == 0 {
		p.TableSize = defaults.TableSize
	}
	if p.Keys == nil {
		p.Keys = append([]string(nil), defaults.Keys...)
	}
	if p.Start == "" && p.Topology == "" {
		p.Start = defaults.Start
	}
	if p.MaxDepth == nil {
		p.MaxDepth = cloneInt(defaults.MaxDepth)
	}
	p.EarlyExit = p.EarlyExit || defaults.EarlyExit
	if p.Topology == "" {
		p.Topology = defaults.Topology
	}
	if p.Vertices == 0 {
		p.Vertices = defaults.Vertices
	}
	if p.Labels == "" {
		p.Labels = defaults.Labels
	}
	p.Directed = p.Directed || defaults.Directed
	if p.Tree == nil {
		p.Tree = defaults.Tree
	}
	if p.Heap == nil {
		p.Heap = defaults.Heap
	}
	if p.Table == nil {
		p.Table = defaults.Table
	}
	if p.Graph == nil && p.Topology == "" {
		p.Graph = defaults.Graph
	}

	return p
}

// size returns the largest dataset carried by p.
func (p Params) size() int {
	n := max(len(p.Values), len(p.Keys), p.Capacity, p.TableSize)
	if p.Tree != nil {
		n = max(n, len(p.Tree.Nodes))
	}
	if p.Heap != nil {
		n = max(n, p.Heap.Capacity)
	}
	if p.Table != nil {
		n = max(n, p.Table.Size())
	}
	if p.Graph != nil {
		n = max(n, len(p.Graph.Vertices), len(p.Graph.Edges))
	}
	if p.Topology != "" {
		n = max(n, p.Vertices, builder.EdgeCount(p.Topology, p.Vertices, p.Directed))
	}

	return n
}

func missing(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingParam, name)
}

// invalid attaches frame.ErrInvalidInput to err unless it already carries it
// or reports cancellation.
func invalid(err error) error {
	if err == nil || errors.Is(err, frame.ErrInvalidInput) ||
		errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return fmt.Errorf("%w: %w", frame.ErrInvalidInput, err)
}
