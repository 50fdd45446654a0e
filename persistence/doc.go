// Package persistence computes the persistent homology of a 2D point
// cloud: Vietoris–Rips filtration → global simplex indexing → GF(2)
// boundary reduction → birth–death pairs with witness simplices → an
// optional persistence-image raster.
//
// 🚀 What you get:
//
//	diag, err := persistence.Compute(points, persistence.DefaultOptions())
//	// diag.Pairs  — 1-dimensional (loop) birth–death pairs, each with
//	//               the edges that realize the born cycle and the
//	//               triangles whose arrival kills it
//	// diag.Image  — a 50×50 Gaussian-smoothed raster of the diagram
//
// Indexing contract (load-bearing, not a style choice):
//
//   - Rows [0, V) are the V implicit vertices, never materialized as
//     columns. Each edge, then each triangle, takes the next sequential
//     index. Within one filtration value, ALL edges are indexed before
//     ANY triangle, so a triangle's boundary edges always already have
//     indices when the triangle is processed.
//
// Scope:
//
//   - Pairs reports 1-dimensional persistence only. Dimension-0
//     (connected-component) pairs are computed by the same reduction and
//     exposed behind Options.IncludeComponentPairs in a separate field.
//
// Invariant assertions (panic, never an error):
//
//   - a triangle whose edge is missing from the index (malformed
//     filtration), and a witness simplex whose arity does not match its
//     index range (indexing bug), are programming errors, not input
//     errors; both fail fast.
//
// Complexity: dominated by the O(V³) triangle enumeration and the
// O(n³)-worst-case reduction; intended for point clouds of a few
// hundred points.
package persistence
