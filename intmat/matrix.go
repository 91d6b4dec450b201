// SPDX-License-Identifier: MIT

// Package intmat: the shared Matrix interface.
package intmat

import "math/big"

// Matrix is a mutable two-dimensional array of exact integers.
//
// Implementations must return copies from At — internal storage is
// never aliased out — and must keep RowNonZeros iteration in strictly
// increasing column order. All methods are safe against out-of-range
// indices via ErrOutOfRange; none panic on user input.
type Matrix interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// At returns a copy of the value at (row, col); absent sparse
	// entries read as zero.
	At(row, col int) (*big.Int, error)

	// Set stores a copy of v at (row, col). Storing a zero in a
	// sparse matrix deletes the entry.
	Set(row, col int, v *big.Int) error

	// SwapRows exchanges rows i and j in place.
	SwapRows(i, j int) error

	// ZeroRow clears every entry of the row.
	ZeroRow(row int) error

	// RowLen returns the number of stored non-zero entries in the row.
	RowLen(row int) (int, error)

	// RowNonZeros calls f for each non-zero entry of the row in
	// strictly increasing column order; f returning false stops the
	// iteration early. The *big.Int passed to f is a live reference
	// valid only for the duration of the call.
	RowNonZeros(row int, f func(col int, v *big.Int) bool) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
