// Package daestruct is the structural-simplification core of an
// equation-based modeling stack: exact, graph-driven alias elimination
// for systems of differential/algebraic equations (DAEs).
//
// 🚀 What is daestruct?
//
//	A pure-Go library that takes the *structure* of a DAE — which
//	equations touch which variables, which variables are derivatives
//	of which — and removes redundant (aliased) variables from the
//	linear subsystem without ever leaving exact integer arithmetic:
//		• bipartite/  — equations↔variables incidence graph + maximal matching
//		• intmat/     — exact integer matrices (dense & row-compressed sparse)
//		• alias/      — variable → (±1 · representative | 0) alias graph
//		• elim/       — Bareiss fraction-free elimination, local row
//		                simplification, differentiation-chain unification
//		• topsort/    — Kahn ordering of observed (eliminated) equations
//		• dae/        — the System container tying the inputs together
//
// ✨ Why exact arithmetic?
//
//   - Aliases are structural facts (x = −y, z = 0), not numerical
//     approximations; a single rounded pivot would silently change the
//     solution set of the model.
//   - Bareiss elimination keeps every intermediate an integer with
//     polynomial growth, so no precision is ever discarded.
//
// The library never touches symbolic expression trees: variables and
// equations are integer handles into caller-owned arrays, and the
// caller applies the returned alias map with its own substitution
// machinery.
//
//	go get github.com/katalvlaran/daestruct
package daestruct
