// SPDX-License-Identifier: MIT
//
// File: datasets.go
// Role: array datasets and ready-made structure fixtures.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/algoviz/hashing"
	"github.com/katalvlaran/algoviz/linkedlist"
	"github.com/katalvlaran/algoviz/queue"
	"github.com/katalvlaran/algoviz/stack"
	"github.com/katalvlaran/algoviz/tree"
)

// RandomArray returns n values drawn uniformly from the configured range
// ([10, 99] by default).
func RandomArray(n int, opts ...BuilderOption) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("RandomArray: n=%d: %w", n, ErrBadSize)
	}
	cfg := newBuilderConfig(opts...)
	out := make([]int, n)
	span := cfg.max - cfg.min + 1
	for i := range out {
		out[i] = cfg.min + cfg.rng.Intn(span)
	}

	return out, nil
}

// SortedArray returns RandomArray(n, opts...) in ascending order.
func SortedArray(n int, opts ...BuilderOption) ([]int, error) {
	out, err := RandomArray(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("SortedArray: %w", err)
	}
	sort.Ints(out)

	return out, nil
}

// BST inserts values in order into an empty tree; duplicates are skipped.
func BST(values ...int) tree.State { return tree.NewBST(values...) }

// Heap builds a max-heap of capacity by successive insertion.
func Heap(capacity int, values ...int) (tree.HeapState, error) {
	if capacity < 1 || len(values) > capacity {
		return tree.HeapState{}, fmt.Errorf("Heap: capacity=%d values=%d: %w", capacity, len(values), ErrBadSize)
	}

	return tree.NewHeap(capacity, values...), nil
}

// HashTable returns a table of size buckets holding keys, each valued by its
// insertion index.
func HashTable(size int, keys ...string) (hashing.State, error) {
	if size < 1 {
		return hashing.State{}, fmt.Errorf("HashTable: size=%d: %w", size, ErrBadSize)
	}
	s := hashing.New(size)
	for i, k := range keys {
		if k == "" {
			continue
		}
		h := hashing.Hash(k, size)
		s.Buckets[h] = append(s.Buckets[h], hashing.Entry{Key: k, Value: i})
	}

	return s, nil
}

// Stack returns a stack of the given mode and capacity holding items, bottom
// first.
func Stack(mode stack.Mode, capacity int, items ...int) (stack.State, error) {
	s := stack.New(mode, capacity, items...)
	if err := s.Validate(); err != nil {
		return stack.State{}, fmt.Errorf("Stack: %w", err)
	}

	return s, nil
}

// Queue returns a queue of the given variant and capacity holding values,
// front first.
func Queue(variant queue.Variant, capacity int, values ...int) (queue.State, error) {
	if len(values) > capacity {
		return queue.State{}, fmt.Errorf("Queue: capacity=%d values=%d: %w", capacity, len(values), ErrBadSize)
	}
	q := queue.New(variant, capacity, values...)
	if err := q.Validate(); err != nil {
		return queue.State{}, fmt.Errorf("Queue: %w", err)
	}

	return q, nil
}

// List returns a linked list of the given variant holding values, head first.
func List(variant linkedlist.Variant, values ...int) (linkedlist.State, error) {
	l := linkedlist.New(variant, values...)
	if err := l.Validate(); err != nil {
		return linkedlist.State{}, fmt.Errorf("List: %w", err)
	}

	return l, nil
}
