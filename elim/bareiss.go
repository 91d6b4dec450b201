// Package elim: Bareiss fraction-free elimination.
//
// The update rule at step k with pivot p = M[k][c] and previous pivot
// q is, for every row i > k with M[i][c] ≠ 0:
//
//	M[i][j] ← (M[i][j]·p − M[i][c]·M[k][j]) / q
//
// Sylvester's identity guarantees the division is exact, so every
// intermediate stays an integer and coefficient growth is polynomial
// rather than exponential.
package elim

import (
	"math/big"

	"github.com/katalvlaran/daestruct/intmat"
)

// bareiss carries the elimination state across phases. rowEqs is
// permuted in lockstep with matrix rows, so each row keeps naming its
// originating equation.
type bareiss struct {
	m      intmat.Matrix
	rowEqs []int
	pivots []int    // pivot column per processed row
	prev   *big.Int // previous pivot (Bareiss denominator)
	step   int      // next row to process
}

func newBareiss(m intmat.Matrix, rowEqs []int) *bareiss {
	p := make([]int, m.Rows())
	for i := range p {
		p[i] = NoPivot
	}

	return &bareiss{m: m, rowEqs: rowEqs, pivots: p, prev: big.NewInt(1)}
}

// run eliminates rows starting at the current step, pivoting only on
// columns accepted by isCandidate. Returns the number of pivots found
// in this phase. Rank deficiency simply ends the phase early.
func (b *bareiss) run(isCandidate func(col int) bool, allowAnyDegree bool) int {
	found := 0
	for b.step < b.m.Rows() {
		row, col, ok := b.findPivot(isCandidate, allowAnyDegree)
		if !ok {
			break
		}
		if row != b.step {
			// Surface the pivot row; keep the equation mapping in sync.
			_ = b.m.SwapRows(b.step, row)
			b.rowEqs[b.step], b.rowEqs[row] = b.rowEqs[row], b.rowEqs[b.step]
		}
		b.pivots[b.step] = col
		b.eliminateBelow(col)
		b.step++
		found++
	}

	return found
}

// findPivot scans rows step..end applying the selection policy: first
// a row with exactly one non-zero candidate column, else exactly two,
// else — only when allowAnyDegree — any row with a non-zero candidate
// column. The chosen column is the row's first candidate column.
func (b *bareiss) findPivot(isCandidate func(col int) bool, allowAnyDegree bool) (row, col int, ok bool) {
	deg1Row, deg1Col := -1, -1
	deg2Row, deg2Col := -1, -1
	anyRow, anyCol := -1, -1

	for i := b.step; i < b.m.Rows(); i++ {
		deg, first := 0, -1
		_ = b.m.RowNonZeros(i, func(c int, _ *big.Int) bool {
			if !isCandidate(c) {
				return true
			}
			if first < 0 {
				first = c
			}
			deg++

			return deg <= 2 // no need to count past two
		})
		switch {
		case deg == 1 && deg1Row < 0:
			deg1Row, deg1Col = i, first
		case deg == 2 && deg2Row < 0:
			deg2Row, deg2Col = i, first
		case deg > 0 && anyRow < 0:
			anyRow, anyCol = i, first
		}
		if deg1Row >= 0 {
			break // best class found; earlier rows already scanned
		}
	}

	switch {
	case deg1Row >= 0:
		return deg1Row, deg1Col, true
	case deg2Row >= 0:
		return deg2Row, deg2Col, true
	case allowAnyDegree && anyRow >= 0:
		return anyRow, anyCol, true
	default:
		return 0, 0, false
	}
}

// eliminateBelow applies the fraction-free update to every row below
// the current pivot row that has a non-zero entry in the pivot column,
// then advances the Bareiss denominator.
func (b *bareiss) eliminateBelow(col int) {
	k := b.step
	pivot, _ := b.m.At(k, col)

	// Snapshot the pivot row: RowNonZeros yields live references and
	// the target rows are mutated during the update.
	var pivCols []int
	var pivVals []*big.Int
	_ = b.m.RowNonZeros(k, func(c int, v *big.Int) bool {
		pivCols = append(pivCols, c)
		pivVals = append(pivVals, new(big.Int).Set(v))

		return true
	})

	for i := k + 1; i < b.m.Rows(); i++ {
		factor, _ := b.m.At(i, col)
		if factor.Sign() == 0 {
			continue
		}
		b.updateRow(i, pivot, factor, pivCols, pivVals)
	}

	b.prev = pivot
}

// updateRow rewrites row i over the union of its columns and the
// pivot row's columns: M[i][j] = (M[i][j]·pivot − factor·pivRow[j]) / prev.
func (b *bareiss) updateRow(i int, pivot, factor *big.Int, pivCols []int, pivVals []*big.Int) {
	// Snapshot row i for the same aliasing reason as the pivot row.
	var iCols []int
	var iVals []*big.Int
	_ = b.m.RowNonZeros(i, func(c int, v *big.Int) bool {
		iCols = append(iCols, c)
		iVals = append(iVals, new(big.Int).Set(v))

		return true
	})

	// Merge the two sorted column lists and apply the update per column.
	tmp := new(big.Int)
	a, p := 0, 0
	for a < len(iCols) || p < len(pivCols) {
		var c int
		var iv, pv *big.Int
		switch {
		case p >= len(pivCols) || (a < len(iCols) && iCols[a] < pivCols[p]):
			c, iv, pv = iCols[a], iVals[a], nil
			a++
		case a >= len(iCols) || pivCols[p] < iCols[a]:
			c, iv, pv = pivCols[p], nil, pivVals[p]
			p++
		default:
			c, iv, pv = iCols[a], iVals[a], pivVals[p]
			a++
			p++
		}

		nv := new(big.Int)
		if iv != nil {
			nv.Mul(iv, pivot)
		}
		if pv != nil {
			nv.Sub(nv, tmp.Mul(factor, pv))
		}
		nv.Quo(nv, b.prev) // exact by Sylvester's identity
		_ = b.m.Set(i, c, nv)
	}
}
