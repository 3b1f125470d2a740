// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w.
// Option constructors (WithX) panic on meaningless input; constructors and
// dataset helpers never panic.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the minimum
// for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a constructor could not mutate the graph
// (nil constructor, rejected edge).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadSize indicates an invalid dataset length or capacity.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrUnknownTopology indicates a topology name ConstructorFor does not know.
var ErrUnknownTopology = errors.New("builder: unknown topology")
