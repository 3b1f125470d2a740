// SPDX-License-Identifier: MIT
//
// File: topology.go
// Role: constructors and label schemes selected by name.
//
// Names match the Method* constants case-insensitively, so "cycle", "Cycle"
// and "CYCLE" all select Cycle.

package builder

import (
	"fmt"
	"strings"
)

// Label scheme names understood by IDSchemeFor.
const (
	SchemeLetters = "letters"
	SchemeNumbers = "numbers"
)

// Topologies lists the names accepted by ConstructorFor.
var Topologies = []string{MethodPath, MethodCycle, MethodStar, MethodComplete}

// ConstructorFor returns the constructor named method, sized n.
func ConstructorFor(method string, n int) (Constructor, error) {
	switch {
	case strings.EqualFold(method, MethodPath):
		return Path(n), nil
	case strings.EqualFold(method, MethodCycle):
		return Cycle(n), nil
	case strings.EqualFold(method, MethodStar):
		return Star(n), nil
	case strings.EqualFold(method, MethodComplete):
		return Complete(n), nil
	default:
		return nil, fmt.Errorf("ConstructorFor(%q): want one of %s: %w",
			method, strings.Join(Topologies, ", "), ErrUnknownTopology)
	}
}

// EdgeCount returns how many edges ConstructorFor(method, n) adds, or 0 for
// an unknown method.
func EdgeCount(method string, n int, directed bool) int {
	switch {
	case n < 1:
		return 0
	case strings.EqualFold(method, MethodPath), strings.EqualFold(method, MethodStar):
		return n - 1
	case strings.EqualFold(method, MethodCycle):
		return n
	case strings.EqualFold(method, MethodComplete):
		if directed {
			return n * (n - 1)
		}
		return n * (n - 1) / 2
	default:
		return 0
	}
}

// IDSchemeFor maps a scheme name to an IDFn. "" and "letters" give
// ExcelColumnIDFn, "numbers" gives DecimalIDFn, and any other name becomes
// the prefix of SymbolNumberIDFn ("v" gives v0, v1, ...).
func IDSchemeFor(name string) IDFn {
	switch name {
	case "", SchemeLetters:
		return ExcelColumnIDFn
	case SchemeNumbers:
		return DecimalIDFn
	default:
		return SymbolNumberIDFn(name)
	}
}
