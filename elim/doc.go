// Package elim implements the alias-elimination engine: the
// structural-simplification pass that removes redundant (aliased)
// variables from the linear subsystem of a DAE using exact integer
// arithmetic only.
//
// The pipeline behind Eliminate:
//
//  1. The linear-algebraic equations are extracted into a sparse
//     exact-integer matrix (one row per linear equation, one column
//     per variable), with a row→equation mapping that survives row
//     swaps.
//  2. A maximal matching between linear equations and base-level
//     variables seeds pivot candidacy.
//  3. Bareiss fraction-free elimination brings the matrix to an
//     upper-triangular-like form. Pivot selection prefers rows with
//     one, then two, non-zero candidate columns: an alias found
//     through a degree-1 or degree-2 row is unconditionally exact,
//     while arbitrary pivots express a variable through many others
//     and help simplification far less.
//  4. A reverse-order pass over the pivot rows substitutes previously
//     discovered aliases and extracts new ones: a pivot left with at
//     most one irreducible partner of coefficient ratio ±1 becomes an
//     alias; with none, it is pinned to zero.
//  5. Differentiation-chain root resolution unifies aliases across
//     derivative chains: each equivalence class gets one canonical
//     chain rooted at its least-differentiated member, the
//     derivative-successor forest is extended where the traversal
//     discovered higher derivatives, and chain variables become
//     irreducible.
//  6. A second elimination round on a fresh matrix, seeded with the
//     chain aliases and holding the irreducibles fixed, picks up
//     opportunities the discarded round-one aliases masked.
//  7. The incidence graph is rewritten in place: eliminated variables
//     vanish from every equation, their representatives take their
//     place.
//
// Why Bareiss and not plain Gaussian elimination: dividing only by the
// previous pivot keeps every intermediate entry an exact integer with
// polynomially bounded growth, so the discovered aliases are
// structural facts, never artifacts of rounding.
package elim
