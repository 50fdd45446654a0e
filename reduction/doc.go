// SPDX-License-Identifier: MIT

// Package reduction implements the GF(2) boundary-matrix reduction kernel
// shared by both engine modes (persistence of a filtration, homology of a
// fixed complex).
//
// What:
//
//   - Column — a boundary set: sorted row indices with GF(2) (symmetric
//     difference) addition semantics.
//   - Reduce — the standard persistence-algorithm pivot cancellation:
//     scan columns left to right; while a column's largest row index
//     ("low") is already claimed as a pivot, XOR the claiming column in;
//     the column either empties (a cycle) or claims a fresh pivot.
//   - Result.Pivots — the partial pivot-row → column-position map; at
//     most one column per row, never reassigned.
//   - Result.Members — optional per-column accumulation of the original
//     column positions XOR-combined into it (witness extraction).
//
// Why:
//
//   - Every homological question this library answers — birth–death
//     pairs, cycle generators, boundary ranks — is read off this one
//     reduction; keeping it a single, mode-agnostic kernel is the whole
//     point of the design.
//
// Representation:
//
//   - Columns are sorted int slices, combined by a two-pointer merge.
//     Boundary sets here are tiny (2 rows for an edge, 3 for a
//     triangle), so sorted-vector toggling beats hashed sets on both
//     allocation and cache behavior at the target scale.
//
// Complexity:
//
//   - Reduce: O(n³) worst case over n columns with dense fill-in;
//     acceptable at the few-hundred-column scale the library targets.
//   - Termination: each inner iteration strictly decreases a column's
//     low or empties the column.
//
// Reduce is total over well-formed input and idempotent: re-reducing an
// already-reduced column set performs no XORs.
package reduction
