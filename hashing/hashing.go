// SPDX-License-Identifier: MIT

// Package hashing produces frame sequences for a separate-chaining hash
// table with string keys and integer values.
//
// The hash of a key is the sum of its UTF-16 code units modulo the table
// size. Insert appends to the end of the target chain, so colliding keys
// keep their insertion order. Frames highlight the bucket in
// frame.ScopeBucket and chain positions in frame.ScopeEntry.
package hashing

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/katalvlaran/algoviz/frame"
)

// Sentinel errors for hash table operations.
var (
	// ErrEmptyKey indicates a blank key.
	ErrEmptyKey = errors.New("hashing: key is empty")

	// ErrInvalidSize indicates a table without buckets.
	ErrInvalidSize = errors.New("hashing: table size must be positive")

	// ErrMisplaced indicates an entry stored in a bucket its key does not hash to.
	ErrMisplaced = errors.New("hashing: entry in wrong bucket")
)

// Entry is one chain node.
type Entry struct {
	Key   string `json:"key" yaml:"key"`
	Value int    `json:"value" yaml:"value"`
}

// State is a hash table snapshot: one chain per bucket, head first.
type State struct {
	Buckets [][]Entry `json:"buckets" yaml:"buckets"`
}

// New returns an empty table with size buckets.
func New(size int) State {
	if size < 0 {
		size = 0
	}

	return State{Buckets: make([][]Entry, size)}
}

// Kind implements frame.State.
func (State) Kind() frame.Kind { return frame.KindHash }

// Clone implements frame.State.
func (s State) Clone() frame.State { return s.copy() }

func (s State) copy() State {
	out := State{Buckets: make([][]Entry, len(s.Buckets))}
	for i, chain := range s.Buckets {
		out.Buckets[i] = append([]Entry(nil), chain...)
	}

	return out
}

// Size returns the number of buckets.
func (s State) Size() int { return len(s.Buckets) }

// Len returns the number of stored entries.
func (s State) Len() int {
	n := 0
	for _, chain := range s.Buckets {
		n += len(chain)
	}

	return n
}

// Hash returns the bucket index of key in a table of size buckets.
// size must be positive.
func Hash(key string, size int) int {
	sum := 0
	for _, u := range utf16.Encode([]rune(key)) {
		sum = (sum + int(u)) % size
	}

	return sum
}

// Validate checks the table size and that every entry sits in its bucket.
func (s State) Validate() error {
	if len(s.Buckets) == 0 {
		return frame.Invalidf(ErrInvalidSize, "0 buckets")
	}
	for i, chain := range s.Buckets {
		for _, e := range chain {
			if h := Hash(e.Key, len(s.Buckets)); h != i {
				return frame.Invalidf(ErrMisplaced, "key %q in bucket %d, hashes to %d", e.Key, i, h)
			}
		}
	}

	return nil
}

func prepare(in State, key string) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", frame.Invalidf(ErrEmptyKey, "insert or search")
	}

	return key, nil
}

func bucket(i int) frame.Highlight { return frame.Mark(frame.RoleCurrent, i).In(frame.ScopeBucket) }

func entry(role frame.Role, pos int) frame.Highlight { return frame.Mark(role, pos).In(frame.ScopeEntry) }

// Insert appends key=value to the end of its bucket's chain, recording one
// frame per chain node walked.
func Insert(in State, key string, value int) (frame.Sequence, error) {
	key, err := prepare(in, key)
	if err != nil {
		return nil, err
	}
	s := in.copy()
	rec := frame.NewRecorder(s, fmt.Sprintf("Inserting %q = %d", key, value))

	idx := Hash(key, s.Size())
	hash := frame.Int("hash", idx)
	rec.Record(s, fmt.Sprintf("Hash(%q) = %d", key, idx), bucket(idx), hash)

	chain := s.Buckets[idx]
	if len(chain) == 0 {
		rec.Record(s, fmt.Sprintf("Index %d is empty, inserting directly", idx), bucket(idx), hash)
	} else {
		rec.Record(s, fmt.Sprintf("Collision at index %d! Adding to chain", idx), bucket(idx), hash)
		for pos, e := range chain {
			rec.Record(s, fmt.Sprintf("Walking chain node %d: key=%q", pos, e.Key),
				bucket(idx), entry(frame.RoleVisited, pos), hash)
		}
	}
	s.Buckets[idx] = append(s.Buckets[idx], Entry{Key: key, Value: value})
	n := len(s.Buckets[idx])
	if n > 1 {
		rec.Record(s, fmt.Sprintf("Added to chain (chain length: %d)", n),
			bucket(idx), entry(frame.RoleCurrent, n-1), hash, frame.Int("chainLength", n))
	}

	return rec.Finish(s, frame.OutcomeDone, fmt.Sprintf("Inserted %q = %d successfully!", key, value),
		bucket(idx), entry(frame.RoleFound, n-1), hash, frame.Int("chainLength", n)), nil
}

// Search walks key's chain, recording one frame per node compared.
func Search(in State, key string) (frame.Sequence, error) {
	key, err := prepare(in, key)
	if err != nil {
		return nil, err
	}
	rec := frame.NewRecorder(in, fmt.Sprintf("Searching for %q", key))

	idx := Hash(key, in.Size())
	hash := frame.Int("hash", idx)
	rec.Record(in, fmt.Sprintf("Hash(%q) = %d", key, idx), bucket(idx), hash)
	rec.Record(in, fmt.Sprintf("Searching in chain at index %d...", idx), bucket(idx), hash)

	for pos, e := range in.Buckets[idx] {
		rec.Record(in, fmt.Sprintf("Checking node %d: key=%q", pos, e.Key),
			bucket(idx), entry(frame.RoleComparing, pos), hash)
		if e.Key == key {
			return rec.Finish(in, frame.OutcomeFound, fmt.Sprintf("Found! %q = %d", key, e.Value),
				bucket(idx), entry(frame.RoleFound, pos), hash, frame.Int("value", e.Value)), nil
		}
	}

	return rec.Finish(in, frame.OutcomeNotFound, fmt.Sprintf("Key %q not found in hash table", key)), nil
}
