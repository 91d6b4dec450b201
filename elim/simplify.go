// Package elim: local structure simplification of pivot rows.
package elim

import (
	"math/big"

	"github.com/katalvlaran/daestruct/alias"
	"github.com/katalvlaran/daestruct/intmat"
)

// reduceRow tries to express the pivot variable of a processed row as
// ±1 times one remaining variable, or as zero.
//
// Every term of the row is folded through the alias graph: a term on a
// zero-pinned variable drops out, a term on an aliased variable
// accumulates (coefficient × its own coefficient) onto the
// representative — cancellation may empty the row entirely. If, after
// folding, at most one irreducible term survives besides the pivot,
// a new alias is derived:
//
//	pivotCoeff·pivot + c·w = 0  ⇒  pivot = −(c/pivotCoeff)·w
//
// which is accepted only when the division is exact with quotient ±1
// (only ±1 aliasing is supported). With zero surviving terms the pivot
// is pinned to zero. On success the alias is recorded and the row
// zeroed; otherwise the matrix and alias graph are left unchanged.
func reduceRow(m intmat.Matrix, row, pivotVar int, ag *alias.Graph) bool {
	// Fold the row through the alias graph, accumulating per surviving
	// variable. order records first-occurrence sequence so the scan
	// below stays deterministic and lastVar is genuinely the
	// most-recently-seen surviving term.
	acc := make(map[int]*big.Int)
	var order []int
	accumulate := func(v int, c *big.Int) {
		cur, ok := acc[v]
		if !ok {
			cur = new(big.Int)
			acc[v] = cur
			order = append(order, v)
		}
		cur.Add(cur, c)
	}
	_ = m.RowNonZeros(row, func(col int, v *big.Int) bool {
		coeff, repr, aliased := ag.Get(col)
		switch {
		case aliased && repr == alias.NoVariable:
			// col ≡ 0: the term vanishes.
		case aliased && coeff == -1:
			accumulate(repr, new(big.Int).Neg(v))
		case aliased:
			accumulate(repr, v)
		default:
			accumulate(col, v)
		}

		return true
	})

	pivotCoeff, ok := acc[pivotVar]
	if !ok || pivotCoeff.Sign() == 0 {
		return false // pivot cancelled away; nothing to derive
	}

	// Count surviving terms besides the pivot, remembering the last.
	irreducible := 0
	lastVar := -1
	var lastCoeff *big.Int
	for _, v := range order {
		c := acc[v]
		if v == pivotVar || c.Sign() == 0 {
			continue
		}
		irreducible++
		if irreducible > 1 {
			return false // more than one partner: no simplification
		}
		lastVar, lastCoeff = v, c
	}

	if irreducible == 0 {
		ag.SetZero(pivotVar)
		_ = m.ZeroRow(row)

		return true
	}

	// pivot = −(lastCoeff/pivotCoeff)·lastVar, ±1 ratios only.
	q, r := new(big.Int).QuoRem(lastCoeff, pivotCoeff, new(big.Int))
	if r.Sign() != 0 || q.CmpAbs(bigOne) != 0 {
		return false
	}
	coeff := 1
	if q.Sign() > 0 {
		coeff = -1
	}
	if err := ag.SetAlias(pivotVar, coeff, lastVar); err != nil {
		return false
	}
	_ = m.ZeroRow(row)

	return true
}

var bigOne = big.NewInt(1)
