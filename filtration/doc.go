// Package filtration builds Vietoris–Rips-style filtrations of 2D point
// clouds: every vertex pair becomes an edge at its Euclidean distance,
// every vertex triple becomes a triangle at the maximum of its three
// pairwise distances.
//
// What:
//
//   - Point — an immutable 2D coordinate pair.
//   - Rips — enumerate all candidate simplices and group them into
//     Levels sorted ascending by filtration value.
//   - Filtration — the per-value partition of first-appearing simplices,
//     split into edges and triangles.
//
// Why:
//
//   - The filtration value of a simplex is the max pairwise distance of
//     its vertices, which dominates every sub-simplex value — so the
//     face-monotonicity invariant persistence requires holds by
//     construction, with no clamping or repair step.
//
// Complexity:
//
//   - Rips: O(V²) edges + O(V³) triangles, memory proportional to the
//     number of enumerated simplices. Intentionally naive; the library
//     targets point clouds of a few hundred points at most.
//
// Rips is total: V=0 and V=1 simply yield a filtration with no levels.
package filtration
