// Package betti computes homological invariants of finite simplicial
// complexes — persistent homology of point clouds and Betti numbers of
// hand-built complexes — over the two-element field GF(2).
//
// 🚀 What is betti?
//
//	A small, self-contained topology toolkit built around one numerical
//	kernel (boundary-matrix reduction by pivot cancellation) with two
//	entry modes:
//	  • Persistence: 2D point cloud → Vietoris–Rips filtration →
//	    birth–death pairs → smoothed "persistence image" raster
//	  • Static homology: a fixed complex → cycle & boundary generators →
//	    Betti numbers β₀, β₁, ...
//
// ✨ Why choose betti?
//
//   - One shared kernel – both modes reduce the same GF(2) boundary matrix
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – no global state, stable orderings everywhere
//   - Witnesses included – each persistence pair reports the edges and
//     triangles that realize it
//
// Everything is organized under focused subpackages:
//
//	simplex/     — simplices, packed tuple keys, facet enumeration
//	filtration/  — Vietoris–Rips filtration of a 2D point cloud
//	reduction/   — the GF(2) column-reduction kernel (shared)
//	persistence/ — filtration mode: indexing, pairing, witnesses
//	persim/      — persistence-image rasterization (Gaussian quadrature)
//	homology/    — static mode: cycle/boundary generators, Betti numbers
//	simplextree/ — versioned complex store with structural sharing
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	four points at unit-square corners produce exactly one persistence
//	pair: the loop is born at side length 1 and dies at diagonal √2.
//
// Dive into the per-package docs for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/betti
package betti
