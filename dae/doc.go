// Package dae holds the System container that structural
// simplification operates on.
//
// A System ties together everything the elimination call borrows from
// the caller:
//
//   - the bipartite incidence graph over (equations, variables);
//   - the derivative-successor forest: a partial injective map from a
//     variable to its time-derivative, with its inverse;
//   - the linear subsystem: which equations are purely
//     linear-algebraic, and their exact integer coefficients;
//   - irreducibility flags excluding variables from elimination.
//
// Variables and equations are opaque integer handles into caller-owned
// arrays of symbolic objects; this package never sees an expression
// tree. The caller constructs a System, hands it to elim.Eliminate —
// which mutates the graph and forest in place — and afterwards applies
// the returned alias map with its own substitution machinery.
package dae
