// Package homology computes the static homology of a fixed simplicial
// complex over GF(2): cycle-space and boundary-space generators per
// dimension, and the Betti numbers derived from their ranks.
//
// What:
//
//   - Compute — per dimension p, reduce the boundary columns of the
//     p-simplices over rows indexed by the (p−1)-simplices. Columns
//     whose boundary empties are cycle generators of Z_p; pivot columns
//     contribute boundary generators of B_{p−1}.
//   - BettiNumbers — β_p = |Z_p| − |B_p|, reading B_p from dimension
//     p+1's boundary generators.
//
// Why:
//
//   - β₀ counts connected components, β₁ independent loops; on a
//     hand-edited complex these are the invariants a user actually
//     watches while adding and removing simplices.
//
// Input contract:
//
//   - A mapping dimension → p-simplices with contiguous, zero-based
//     vertex indices and full face closure: every facet of a listed
//     simplex must itself be listed one dimension down. A missing facet
//     is a malformed complex and panics (invariant assertion, not a
//     user-facing error) — see simplextree.Flatten for a store that
//     guarantees the contract.
//
// Complexity: per dimension, O(n³) worst case over n = number of
// p-simplices, as for every use of the shared reduction kernel.
package homology
