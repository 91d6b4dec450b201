// Package elim: the Eliminate entry point and round driver.
package elim

import (
	"math/big"

	"github.com/katalvlaran/daestruct/alias"
	"github.com/katalvlaran/daestruct/bipartite"
	"github.com/katalvlaran/daestruct/dae"
	"github.com/katalvlaran/daestruct/intmat"
)

// Eliminate runs alias elimination on sys. The incidence graph and
// derivative-successor forest are mutated in place and reflect final
// state on return; the coefficient matrices and alias graphs are
// private to the call. The call owns sys exclusively for its duration;
// concurrent calls must not share a System.
//
// Returns ErrSystemNil for a nil system, and
// ErrNoIndependentVariable when
// differentiation-chain extension was required but the System declared
// no independent variable. Rank deficiency of the linear subsystem is
// not an error.
func Eliminate(sys *dae.System, opts ...Option) (*Result, error) {
	if sys == nil {
		return nil, ErrSystemNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Round one: discover simple aliases from scratch. Its ranks and
	// pivots describe the original linear subsystem and are what the
	// Result reports.
	round1 := alias.NewGraph()
	rank1, rank2, pivots, rowEqs := runRound(sys, round1, o.restricted)

	// Unify aliases across differentiation chains. Round-one aliases
	// are consumed and discarded; the chain aliases seed round two.
	seed, updated, err := resolveChains(sys, round1)
	if err != nil {
		return nil, err
	}

	// Round two: a fresh matrix with the canonical chain variables
	// held irreducible. Dropping the round-one aliases may re-expose
	// opportunities the chain pass re-routed.
	runRound(sys, seed, o.restricted)

	substituteAliases(sys, seed)

	return &Result{
		Aliases:         seed,
		UpdatedDiffVars: updated,
		Rank1:           rank1,
		Rank2:           rank2,
		Pivots:          pivots,
		RowEquations:    rowEqs,
	}, nil
}

// runRound performs one extraction + matching + Bareiss + reduction
// round, adding discovered aliases to ag.
func runRound(sys *dae.System, ag *alias.Graph, restricted bool) (rank1, rank2 int, pivots, rowEqs []int) {
	m, rowEqs := buildMatrix(sys)

	// Matching seeds pivot candidacy: linear equations against
	// base-level variables not held irreducible or already eliminated.
	eligibleEq := sys.IsLinear
	eligibleVar := func(v int) bool {
		_, isDerivative := sys.Lower(v)

		return !isDerivative && !sys.IsIrreducible(v) && !ag.Has(v)
	}
	match := bipartite.MaximalMatching(sys.Graph(), eligibleEq, eligibleVar)
	isLinearVariable := func(col int) bool {
		return match.VarToEq[col] != bipartite.Unmatched
	}

	b := newBareiss(m, rowEqs)
	rank1 = b.run(isLinearVariable, !restricted)
	rank2 = rank1
	if !restricted {
		// Second phase: open candidacy to every still-eliminable column.
		anyColumn := func(col int) bool {
			return !sys.IsIrreducible(col) && !ag.Has(col)
		}
		rank2 += b.run(anyColumn, true)
	}

	// Reverse order: the shortest (latest) pivot rows seed the alias
	// graph before longer rows try to fold through it.
	for k := rank2 - 1; k >= 0; k-- {
		if b.pivots[k] != NoPivot {
			reduceRow(m, k, b.pivots[k], ag)
		}
	}

	return rank1, rank2, b.pivots, rowEqs
}

// buildMatrix extracts the linear subsystem: one row per
// linear-algebraic equation (ascending handle order), one column per
// variable, exact integer coefficients. rowEqs maps rows back to
// equation handles.
func buildMatrix(sys *dae.System) (intmat.Matrix, []int) {
	var rowEqs []int
	for e := 0; e < sys.NumEquations(); e++ {
		if sys.IsLinear(e) {
			rowEqs = append(rowEqs, e)
		}
	}
	m, _ := intmat.NewSparse(len(rowEqs), sys.NumVariables())
	val := new(big.Int)
	for i, e := range rowEqs {
		ns, _ := sys.Graph().EquationNeighbors(e)
		for _, v := range ns {
			if c, ok := sys.Coefficient(e, v); ok {
				_ = m.Set(i, v, val.SetInt64(c))
			}
		}
	}

	return m, rowEqs
}

// substituteAliases rewrites every equation's structure in place:
// eliminated variables disappear, their representatives take their
// place, zero-pinned variables just drop. For linear equations the
// stored coefficients are folded as well, so cancelled terms vanish
// from the incidence graph (a fully aliased equation ends up with no
// neighbors at all).
func substituteAliases(sys *dae.System, ag *alias.Graph) {
	for e := 0; e < sys.NumEquations(); e++ {
		ns, err := sys.Graph().EquationNeighbors(e)
		if err != nil || len(ns) == 0 {
			continue
		}

		if sys.IsLinear(e) {
			terms := make([]dae.Term, 0, len(ns))
			changed := false
			for _, v := range ns {
				c, _ := sys.Coefficient(e, v)
				coeff, repr, ok := ag.Get(v)
				switch {
				case !ok:
					terms = append(terms, dae.Term{Var: v, Coeff: c})
				case repr == alias.NoVariable:
					changed = true // v ≡ 0: the term vanishes
				default:
					terms = append(terms, dae.Term{Var: repr, Coeff: int64(coeff) * c})
					changed = true
				}
			}
			if changed {
				_ = sys.SetLinearEquation(e, terms)
			}

			continue
		}

		vars := make([]int, 0, len(ns))
		changed := false
		for _, v := range ns {
			_, repr, ok := ag.Get(v)
			switch {
			case !ok:
				vars = append(vars, v)
			case repr == alias.NoVariable:
				changed = true
			default:
				vars = append(vars, repr)
				changed = true
			}
		}
		if changed {
			_ = sys.Graph().SetEquationNeighbors(e, vars)
		}
	}
}
