// Package bipartite: incidence graph storage and mutation.
//
// Layout follows a dual adjacency-list scheme: eqToVar[e] holds the
// sorted variable neighbors of equation e, varToEq[v] the sorted
// equation neighbors of variable v. Every mutation maintains both
// directions, so the mutual-consistency invariant holds at all times.
package bipartite

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for incidence-graph operations.
var (
	// ErrBadShape is returned when a graph is constructed with a
	// negative equation or variable count.
	ErrBadShape = errors.New("bipartite: invalid shape")

	// ErrVertexRange is returned when an equation or variable handle
	// is outside the graph's fixed universes.
	ErrVertexRange = errors.New("bipartite: vertex out of range")
)

// Graph is a mutable bipartite incidence graph over fixed equation and
// variable universes. The zero value is not usable; construct with
// NewGraph.
type Graph struct {
	eqToVar [][]int // sorted variable neighbors per equation
	varToEq [][]int // sorted equation neighbors per variable
}

// NewGraph creates an empty incidence graph with nEqs equation
// vertices and nVars variable vertices.
// Returns ErrBadShape if either count is negative.
// Complexity: O(nEqs + nVars).
func NewGraph(nEqs, nVars int) (*Graph, error) {
	if nEqs < 0 || nVars < 0 {
		return nil, fmt.Errorf("bipartite: NewGraph(%d,%d): %w", nEqs, nVars, ErrBadShape)
	}

	return &Graph{
		eqToVar: make([][]int, nEqs),
		varToEq: make([][]int, nVars),
	}, nil
}

// NumEquations returns the size of the equation universe.
// Complexity: O(1).
func (g *Graph) NumEquations() int { return len(g.eqToVar) }

// NumVariables returns the size of the variable universe.
// Complexity: O(1).
func (g *Graph) NumVariables() int { return len(g.varToEq) }

// checkEq validates an equation handle.
func (g *Graph) checkEq(e int) error {
	if e < 0 || e >= len(g.eqToVar) {
		return fmt.Errorf("bipartite: equation %d: %w", e, ErrVertexRange)
	}

	return nil
}

// checkVar validates a variable handle.
func (g *Graph) checkVar(v int) error {
	if v < 0 || v >= len(g.varToEq) {
		return fmt.Errorf("bipartite: variable %d: %w", v, ErrVertexRange)
	}

	return nil
}

// EquationNeighbors returns the variables incident to equation e, in
// ascending order. The slice is a copy; callers may mutate it freely.
// Returns ErrVertexRange for an invalid handle.
// Complexity: O(d) where d is the equation degree.
func (g *Graph) EquationNeighbors(e int) ([]int, error) {
	if err := g.checkEq(e); err != nil {
		return nil, err
	}
	out := make([]int, len(g.eqToVar[e]))
	copy(out, g.eqToVar[e])

	return out, nil
}

// VariableNeighbors returns the equations incident to variable v, in
// ascending order. The slice is a copy.
// Returns ErrVertexRange for an invalid handle.
// Complexity: O(d) where d is the variable degree.
func (g *Graph) VariableNeighbors(v int) ([]int, error) {
	if err := g.checkVar(v); err != nil {
		return nil, err
	}
	out := make([]int, len(g.varToEq[v]))
	copy(out, g.varToEq[v])

	return out, nil
}

// HasEdge reports whether edge (e,v) is present. Out-of-range handles
// simply report false.
// Complexity: O(log d).
func (g *Graph) HasEdge(e, v int) bool {
	if g.checkEq(e) != nil || g.checkVar(v) != nil {
		return false
	}

	return contains(g.eqToVar[e], v)
}

// AddEdge inserts edge (e,v) into both adjacency directions.
// Adding an existing edge is a no-op; the edge set stays consistent.
// Returns ErrVertexRange for invalid handles.
// Complexity: O(d) worst case (sorted insertion).
func (g *Graph) AddEdge(e, v int) error {
	if err := g.checkEq(e); err != nil {
		return err
	}
	if err := g.checkVar(v); err != nil {
		return err
	}
	g.eqToVar[e] = insertSorted(g.eqToVar[e], v)
	g.varToEq[v] = insertSorted(g.varToEq[v], e)

	return nil
}

// RemoveEdge deletes edge (e,v) from both adjacency directions.
// Removing an absent edge is a no-op.
// Returns ErrVertexRange for invalid handles.
// Complexity: O(d).
func (g *Graph) RemoveEdge(e, v int) error {
	if err := g.checkEq(e); err != nil {
		return err
	}
	if err := g.checkVar(v); err != nil {
		return err
	}
	g.eqToVar[e] = removeSorted(g.eqToVar[e], v)
	g.varToEq[v] = removeSorted(g.varToEq[v], e)

	return nil
}

// SetEquationNeighbors atomically replaces every variable edge of
// equation e with the given set, keeping the reverse adjacency
// consistent. Duplicates in vars are coalesced; order is irrelevant.
// Returns ErrVertexRange if e or any entry of vars is invalid; on
// error the graph is left unchanged.
// Complexity: O(dOld + dNew·log dNew).
func (g *Graph) SetEquationNeighbors(e int, vars []int) error {
	if err := g.checkEq(e); err != nil {
		return err
	}
	// Validate the whole new set before touching anything.
	for _, v := range vars {
		if err := g.checkVar(v); err != nil {
			return err
		}
	}

	// Normalize: sorted, deduplicated copy.
	next := make([]int, len(vars))
	copy(next, vars)
	sort.Ints(next)
	next = dedupSorted(next)

	// Drop reverse edges that are not in the new set.
	for _, v := range g.eqToVar[e] {
		if !contains(next, v) {
			g.varToEq[v] = removeSorted(g.varToEq[v], e)
		}
	}
	// Add reverse edges for newly introduced neighbors.
	for _, v := range next {
		if !contains(g.eqToVar[e], v) {
			g.varToEq[v] = insertSorted(g.varToEq[v], e)
		}
	}
	g.eqToVar[e] = next

	return nil
}

// Clone returns a deep copy of the graph. Mutations on the copy do
// not affect the original.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	cp := &Graph{
		eqToVar: make([][]int, len(g.eqToVar)),
		varToEq: make([][]int, len(g.varToEq)),
	}
	for e, ns := range g.eqToVar {
		cp.eqToVar[e] = append([]int(nil), ns...)
	}
	for v, ns := range g.varToEq {
		cp.varToEq[v] = append([]int(nil), ns...)
	}

	return cp
}

// contains reports membership in a sorted slice via binary search.
func contains(s []int, x int) bool {
	i := sort.SearchInts(s, x)

	return i < len(s) && s[i] == x
}

// insertSorted inserts x into sorted slice s, keeping it sorted and
// duplicate-free.
func insertSorted(s []int, x int) []int {
	i := sort.SearchInts(s, x)
	if i < len(s) && s[i] == x {
		return s // already present
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = x

	return s
}

// removeSorted deletes x from sorted slice s if present.
func removeSorted(s []int, x int) []int {
	i := sort.SearchInts(s, x)
	if i >= len(s) || s[i] != x {
		return s // absent
	}

	return append(s[:i], s[i+1:]...)
}

// dedupSorted removes adjacent duplicates from a sorted slice.
func dedupSorted(s []int) []int {
	if len(s) < 2 {
		return s
	}
	out := s[:1]
	for _, x := range s[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}

	return out
}
