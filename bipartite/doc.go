// Package bipartite provides the equations↔variables incidence graph
// used throughout structural simplification, plus a maximal matching
// over it.
//
// The graph has two fixed vertex universes (equation handles
// 0..nEqs-1 and variable handles 0..nVars-1) and a mutable edge set
// stored as two adjacency structures kept mutually consistent: an
// edge (e,v) is present in the equation→variables direction iff it is
// present in the variable→equations direction. Edges are added and
// removed constantly while elimination substitutes aliased variables,
// so both directions support O(log d) membership and in-place updates.
//
// Neighbor slices are always sorted ascending, which keeps every
// downstream pass deterministic without extra bookkeeping.
//
// MaximalMatching assigns linear equations to variables they can be
// considered to solve for; it is the seed for Bareiss pivot
// candidacy (see package elim).
package bipartite
