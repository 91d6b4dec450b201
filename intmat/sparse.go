// SPDX-License-Identifier: MIT

// Package intmat: Sparse storage (row-compressed).
//
// Each row carries two parallel slices: sorted column indices and the
// matching values. Compared to triplet (COO) encoding this keeps the
// two operations elimination leans on — ordered row iteration and row
// swap — at their natural cost: O(d) and O(1) respectively. Setting
// an entry to zero deletes it, so RowLen is always the true non-zero
// count.
package intmat

import (
	"fmt"
	"math/big"
	"sort"
	"strings"
)

// sparseRow holds one compressed row: cols is sorted ascending and
// vals[i] is the value at column cols[i]. Stored values are never
// zero.
type sparseRow struct {
	cols []int
	vals []*big.Int
}

// Sparse is a row-compressed exact-integer matrix.
type Sparse struct {
	rows []sparseRow
	c    int
}

// Compile-time interface conformance.
var (
	_ Matrix       = (*Sparse)(nil)
	_ fmt.Stringer = (*Sparse)(nil)
)

// NewSparse creates an empty rows×cols matrix.
// Returns ErrBadShape for negative dimensions.
// Complexity: O(rows).
func NewSparse(rows, cols int) (*Sparse, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("intmat: NewSparse(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Sparse{rows: make([]sparseRow, rows), c: cols}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Sparse) Rows() int { return len(m.rows) }

// Cols returns the column count. Complexity: O(1).
func (m *Sparse) Cols() int { return m.c }

// checkCell validates (row, col).
func (m *Sparse) checkCell(row, col int) error {
	if row < 0 || row >= len(m.rows) || col < 0 || col >= m.c {
		return fmt.Errorf("intmat: Sparse(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return nil
}

// At returns a copy of the value at (row, col); absent entries read
// as zero.
// Complexity: O(log d).
func (m *Sparse) At(row, col int) (*big.Int, error) {
	if err := m.checkCell(row, col); err != nil {
		return nil, err
	}
	r := &m.rows[row]
	i := sort.SearchInts(r.cols, col)
	if i < len(r.cols) && r.cols[i] == col {
		return new(big.Int).Set(r.vals[i]), nil
	}

	return new(big.Int), nil
}

// Set stores a copy of v at (row, col); a zero value deletes the
// entry. Returns ErrNilValue if v is nil.
// Complexity: O(d) worst case (slice insertion/deletion).
func (m *Sparse) Set(row, col int, v *big.Int) error {
	if err := m.checkCell(row, col); err != nil {
		return err
	}
	if v == nil {
		return fmt.Errorf("intmat: Sparse.Set(%d,%d): %w", row, col, ErrNilValue)
	}

	r := &m.rows[row]
	i := sort.SearchInts(r.cols, col)
	present := i < len(r.cols) && r.cols[i] == col

	switch {
	case v.Sign() == 0 && present:
		// Zero write deletes the stored entry.
		r.cols = append(r.cols[:i], r.cols[i+1:]...)
		r.vals = append(r.vals[:i], r.vals[i+1:]...)
	case v.Sign() == 0:
		// Zero into an absent entry: nothing to do.
	case present:
		r.vals[i].Set(v)
	default:
		r.cols = append(r.cols, 0)
		copy(r.cols[i+1:], r.cols[i:])
		r.cols[i] = col
		r.vals = append(r.vals, nil)
		copy(r.vals[i+1:], r.vals[i:])
		r.vals[i] = new(big.Int).Set(v)
	}

	return nil
}

// SwapRows exchanges rows i and j in place.
// Complexity: O(1) — rows are swapped wholesale.
func (m *Sparse) SwapRows(i, j int) error {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= len(m.rows) {
		return fmt.Errorf("intmat: Sparse.SwapRows(%d,%d): %w", i, j, ErrOutOfRange)
	}
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]

	return nil
}

// ZeroRow clears every entry of the row.
// Complexity: O(1) amortized (drops the row storage).
func (m *Sparse) ZeroRow(row int) error {
	if row < 0 || row >= len(m.rows) {
		return fmt.Errorf("intmat: Sparse.ZeroRow(%d): %w", row, ErrOutOfRange)
	}
	m.rows[row] = sparseRow{}

	return nil
}

// RowLen returns the stored non-zero count of the row.
// Complexity: O(1).
func (m *Sparse) RowLen(row int) (int, error) {
	if row < 0 || row >= len(m.rows) {
		return 0, fmt.Errorf("intmat: Sparse.RowLen(%d): %w", row, ErrOutOfRange)
	}

	return len(m.rows[row].cols), nil
}

// RowNonZeros visits stored entries in increasing column order.
// Complexity: O(d).
func (m *Sparse) RowNonZeros(row int, f func(col int, v *big.Int) bool) error {
	if row < 0 || row >= len(m.rows) {
		return fmt.Errorf("intmat: Sparse.RowNonZeros(%d): %w", row, ErrOutOfRange)
	}
	r := &m.rows[row]
	for i, col := range r.cols {
		if !f(col, r.vals[i]) {
			return nil
		}
	}

	return nil
}

// Clone returns an independent deep copy.
// Complexity: O(nnz).
func (m *Sparse) Clone() Matrix {
	cp := &Sparse{rows: make([]sparseRow, len(m.rows)), c: m.c}
	for i, r := range m.rows {
		cr := sparseRow{
			cols: append([]int(nil), r.cols...),
			vals: make([]*big.Int, len(r.vals)),
		}
		for k, v := range r.vals {
			cr.vals[k] = new(big.Int).Set(v)
		}
		cp.rows[i] = cr
	}

	return cp
}

// String renders stored entries row-wise for diagnostics.
func (m *Sparse) String() string {
	var b strings.Builder
	for i := range m.rows {
		r := &m.rows[i]
		b.WriteString(fmt.Sprintf("row %d:", i))
		for k, col := range r.cols {
			b.WriteString(fmt.Sprintf(" (%d:%s)", col, r.vals[k].String()))
		}
		b.WriteString("\n")
	}

	return b.String()
}
