// Package alias implements the alias graph: a union-find-like partial
// mapping from eliminated variables to either the constant zero or a
// (±1, representative) pair.
//
// The structure generalizes standard union-find by carrying a
// multiplicative ±1 tag on every edge: if v maps to (−1, w) then
// v = −w, and a chain v → w → r composes tags, v = (coeffVW·coeffWR)·r.
//
// Lookups apply lazy path compression: after Get(v) returns, v points
// directly at its ultimate representative with the composed
// coefficient, and that representative is itself never a key of the
// graph. Cycles — which can appear transiently while elimination and
// differentiation-chain unification feed each other — are resolved
// during lookup rather than left stale: a cycle whose coefficient
// product is −1 forces every member to zero (v = −v has only the zero
// solution), and a +1 cycle is broken at its smallest-index member,
// which becomes the representative.
package alias
