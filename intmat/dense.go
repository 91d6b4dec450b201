// SPDX-License-Identifier: MIT

// Package intmat: Dense storage (row-major flat buffer of big.Int).
//
// The buffer holds values directly (not pointers); a zero big.Int is
// an absent entry. Access is O(1) with the explicit index formula
// i*cols + j, mirroring the usual row-major layout.
package intmat

import (
	"fmt"
	"math/big"
	"strings"
)

// Dense is a concrete row-major exact-integer matrix.
type Dense struct {
	r, c int       // dimensions
	data []big.Int // flat row-major buffer, len == r*c
}

// Compile-time interface conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
// Returns ErrBadShape for negative dimensions; zero-sized matrices are
// legal (they arise when a system has no linear equations).
// Complexity: O(r·c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("intmat: NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]big.Int, rows*cols)}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf bounds-checks (row, col) and computes the flat offset.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("intmat: Dense(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns a copy of the value at (row, col).
// Complexity: O(1) plus the big.Int copy.
func (m *Dense) At(row, col int) (*big.Int, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, err
	}

	return new(big.Int).Set(&m.data[off]), nil
}

// Set stores a copy of v at (row, col).
// Returns ErrNilValue if v is nil.
// Complexity: O(1) plus the big.Int copy.
func (m *Dense) Set(row, col int, v *big.Int) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	if v == nil {
		return fmt.Errorf("intmat: Dense.Set(%d,%d): %w", row, col, ErrNilValue)
	}
	m.data[off].Set(v)

	return nil
}

// SwapRows exchanges rows i and j in place.
// Complexity: O(c).
func (m *Dense) SwapRows(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return fmt.Errorf("intmat: Dense.SwapRows(%d,%d): %w", i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	bi, bj := i*m.c, j*m.c
	for k := 0; k < m.c; k++ {
		m.data[bi+k], m.data[bj+k] = m.data[bj+k], m.data[bi+k]
	}

	return nil
}

// ZeroRow clears every entry of the row.
// Complexity: O(c).
func (m *Dense) ZeroRow(row int) error {
	if row < 0 || row >= m.r {
		return fmt.Errorf("intmat: Dense.ZeroRow(%d): %w", row, ErrOutOfRange)
	}
	base := row * m.c
	for k := 0; k < m.c; k++ {
		m.data[base+k].SetInt64(0)
	}

	return nil
}

// RowLen counts the non-zero entries of the row.
// Complexity: O(c).
func (m *Dense) RowLen(row int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, fmt.Errorf("intmat: Dense.RowLen(%d): %w", row, ErrOutOfRange)
	}
	base, n := row*m.c, 0
	for k := 0; k < m.c; k++ {
		if m.data[base+k].Sign() != 0 {
			n++
		}
	}

	return n, nil
}

// RowNonZeros visits non-zero entries in increasing column order.
// Complexity: O(c).
func (m *Dense) RowNonZeros(row int, f func(col int, v *big.Int) bool) error {
	if row < 0 || row >= m.r {
		return fmt.Errorf("intmat: Dense.RowNonZeros(%d): %w", row, ErrOutOfRange)
	}
	base := row * m.c
	for k := 0; k < m.c; k++ {
		if m.data[base+k].Sign() == 0 {
			continue
		}
		if !f(k, &m.data[base+k]) {
			return nil
		}
	}

	return nil
}

// Clone returns an independent deep copy.
// Complexity: O(r·c).
func (m *Dense) Clone() Matrix {
	cp := &Dense{r: m.r, c: m.c, data: make([]big.Int, len(m.data))}
	for i := range m.data {
		cp.data[i].Set(&m.data[i])
	}

	return cp
}

// String renders the matrix row-wise for diagnostics; not a hot path.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(m.data[base+j].String())
		}
		b.WriteString("]\n")
	}

	return b.String()
}
