// Package bipartite: maximal matching between equations and variables.
//
// The matching seeds Bareiss pivot candidacy: a matched (equation,
// variable) pair means the equation can be considered to solve for
// that variable. Augmenting-path search (Kuhn's algorithm) yields a
// maximum matching, which trivially satisfies the maximal-matching
// contract required by the caller.
package bipartite

// Matching records a matching as two mutually inverse partial maps.
// Unmatched entries hold Unmatched.
type Matching struct {
	// EqToVar[e] is the variable matched to equation e, or Unmatched.
	EqToVar []int
	// VarToEq[v] is the equation matched to variable v, or Unmatched.
	VarToEq []int
}

// Unmatched marks an equation or variable without a partner.
const Unmatched = -1

// Size returns the number of matched pairs.
// Complexity: O(nEqs).
func (m Matching) Size() int {
	n := 0
	for _, v := range m.EqToVar {
		if v != Unmatched {
			n++
		}
	}

	return n
}

// MaximalMatching computes a matching between eligible equations and
// eligible variables of g using augmenting-path search. Every matched
// pair is an existing edge of g. Equations are processed in ascending
// handle order, so the result is deterministic for a fixed graph.
// Nil predicates mean "everything is eligible".
// Complexity: O(V·E) worst case.
func MaximalMatching(g *Graph, eligibleEq, eligibleVar func(int) bool) Matching {
	if eligibleEq == nil {
		eligibleEq = func(int) bool { return true }
	}
	if eligibleVar == nil {
		eligibleVar = func(int) bool { return true }
	}

	m := Matching{
		EqToVar: make([]int, g.NumEquations()),
		VarToEq: make([]int, g.NumVariables()),
	}
	for e := range m.EqToVar {
		m.EqToVar[e] = Unmatched
	}
	for v := range m.VarToEq {
		m.VarToEq[v] = Unmatched
	}

	seen := make([]bool, g.NumVariables())
	for e := 0; e < g.NumEquations(); e++ {
		if !eligibleEq(e) {
			continue
		}
		// Reset the per-augmentation visited set.
		for i := range seen {
			seen[i] = false
		}
		tryAugment(g, e, eligibleEq, eligibleVar, seen, &m)
	}

	return m
}

// tryAugment searches for an augmenting path starting at equation e,
// flipping matched edges along the way on success.
func tryAugment(g *Graph, e int, eligibleEq, eligibleVar func(int) bool, seen []bool, m *Matching) bool {
	for _, v := range g.eqToVar[e] {
		if seen[v] || !eligibleVar(v) {
			continue
		}
		seen[v] = true
		// v is free, or its current partner can be re-matched elsewhere.
		if m.VarToEq[v] == Unmatched || tryAugment(g, m.VarToEq[v], eligibleEq, eligibleVar, seen, m) {
			m.EqToVar[e] = v
			m.VarToEq[v] = e

			return true
		}
	}

	return false
}
