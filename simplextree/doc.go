// Package simplextree is a versioned store for a mutable simplicial
// complex: every insert or delete produces a new immutable Version while
// all previous versions stay valid and readable.
//
// What:
//
//   - Store — an append-only arena of trie nodes; a simplex {v₀<v₁<…<vₖ}
//     is the node path v₀→v₁→…→vₖ from the root.
//   - Version — an integer root handle. Insert, Remove and RemoveVertex
//     take a Version and return a new one; structure is shared between
//     versions by node id (path-copy: only nodes on touched paths are
//     duplicated, untouched subtrees are referenced as-is).
//   - Flatten — a frozen snapshot of one version as dimension →
//     simplices with contiguous zero-based vertex relabeling, the exact
//     input contract of homology.Compute.
//
// Why:
//
//   - An interactive editor mutates the complex constantly while the
//     engine wants frozen snapshots; cheap versioning gives undo and
//     consistent reads without recursive full-tree cloning.
//
// Closure invariants (maintained by construction):
//
//   - Insert adds the simplex and every face of it, so a version always
//     has full face closure.
//   - Remove deletes the simplex and every coface of it, so closure
//     survives deletion too.
//
// Complexity: Insert O(2^k·k) node visits for a k+1-vertex simplex
// (k ≤ 2 here, so constant); Remove/RemoveVertex O(nodes on matching
// paths); Flatten O(size of the version).
//
// A Store is not safe for concurrent mutation; concurrent reads of
// existing versions are safe once no writer runs.
package simplextree
