// Package simplex defines the combinatorial value types shared by every
// other package in betti: the Simplex itself, its comparable lookup Key,
// and facet (codimension-1 face) enumeration.
//
// What:
//
//   - Simplex — a strictly increasing sequence of vertex indices.
//     Length 1, 2, 3 means vertex, edge, filled triangle; longer
//     simplices are representable and validated the same way.
//   - Key — a packed, comparable composite key for map lookups, so a
//     simplex can be found by its vertex tuple without string building.
//   - Facets — all faces obtained by removing one vertex at a position.
//
// Why:
//
//   - Identity of a simplex is exactly its sorted vertex tuple; a single
//     canonical value type keeps every index and lookup consistent.
//   - Facet enumeration is the step both boundary constructions
//     (filtration columns and static-mode columns) are built from.
//
// Errors:
//
//   - ErrEmptySimplex: a simplex needs at least one vertex.
//   - ErrNegativeVertex: vertex indices are zero-based, non-negative.
//   - ErrDuplicateVertex: a vertex may appear at most once.
package simplex
