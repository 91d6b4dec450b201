// SPDX-License-Identifier: MIT

// Package intmat provides exact integer matrices for fraction-free
// linear algebra.
//
// All entries are *big.Int: Bareiss elimination multiplies untouched
// submatrix entries by the running pivot at every step, so coefficient
// magnitudes grow polynomially and must never be truncated to a fixed
// width. No operation in this package ever approximates or silently
// drops precision.
//
// Two storage variants implement the shared Matrix interface:
//
//   - Dense — row-major flat buffer, O(1) element access; best for
//     small or nearly full systems.
//   - Sparse — row-compressed (per-row sorted column/value slices);
//     best for the wide, mostly empty incidence-derived systems the
//     elimination engine actually sees.
//
// Both support the operations elimination needs: non-zero row
// iteration in strictly increasing column order, row swap, in-place
// update, and zeroing a row.
package intmat
