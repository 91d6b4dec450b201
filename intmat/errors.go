// SPDX-License-Identifier: MIT

// Package intmat: sentinel error set.
//
// All public operations return these sentinels (possibly wrapped with
// %w plus coordinates); tests match them via errors.Is. Panics are
// reserved for programmer errors in private helpers.
package intmat

import "errors"

var (
	// ErrBadShape is returned when a matrix is constructed with a
	// negative row or column count.
	ErrBadShape = errors.New("intmat: invalid shape")

	// ErrOutOfRange indicates a row or column index outside bounds.
	// Public indexers return this, never panic.
	ErrOutOfRange = errors.New("intmat: index out of range")

	// ErrNilValue indicates a nil *big.Int passed where a value is
	// required.
	ErrNilValue = errors.New("intmat: nil value")
)
