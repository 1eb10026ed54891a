// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (optionally wrapped with %w) and
// tests check them via errors.Is. No function panics on caller input.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrNilNetwork indicates that a nil *core.Network was passed to a builder.
	ErrNilNetwork = errors.New("matrix: network is nil")

	// ErrNilDistances indicates that a nil *Distances receiver or argument was used.
	ErrNilDistances = errors.New("matrix: nil distances")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrUnreachable indicates that no path joins the requested pair.
	ErrUnreachable = errors.New("matrix: destination unreachable")
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
