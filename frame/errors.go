// SPDX-License-Identifier: MIT

package frame

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every generator package.
var (
	// ErrInvalidInput is returned, wrapped, by every generator whose input
	// fails validation. No frames are produced in that case.
	ErrInvalidInput = errors.New("frame: invalid input")

	// ErrEmptySequence indicates a sequence without frames.
	ErrEmptySequence = errors.New("frame: empty sequence")

	// ErrMalformedSequence indicates a sequence that breaks the frame contract
	// (misnumbered frames, missing or early terminal frame, nil state).
	ErrMalformedSequence = errors.New("frame: malformed sequence")
)

// Invalidf wraps both ErrInvalidInput and a package sentinel with a formatted
// detail message, so callers can branch on either with errors.Is.
func Invalidf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidInput, sentinel, fmt.Sprintf(format, args...))
}
