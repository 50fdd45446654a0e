// Package simplextree: frozen snapshots for the homology engine.
package simplextree

import (
	"github.com/katalvlaran/betti/simplex"
)

// Flatten returns version v as a dimension → simplices mapping with
// vertices relabeled to a contiguous, zero-based range (ascending by
// original index). This is exactly the input contract of
// homology.Compute: stable, consistent, fully face-closed.
//
// Within each dimension, simplices appear in lexicographic vertex
// order. The snapshot shares nothing with the store; it stays valid
// across later mutations.
func (st *Store) Flatten(v Version) (map[int][]simplex.Simplex, error) {
	if !st.validVersion(v) {
		return nil, ErrBadVersion
	}

	root := st.roots[v]

	// Vertices are the root's children (closure guarantees every vertex
	// in use appears as a 0-simplex). Relabel by ascending order.
	relabel := make(map[int]int)
	for i, vert := range st.sortedChildren(root) {
		relabel[vert] = i
	}

	out := make(map[int][]simplex.Simplex)
	path := make([]int, 0, 8)
	st.collect(root, path, relabel, out)

	return out, nil
}

// collect walks the trie in sorted child order, emitting the relabeled
// simplex at every node below the root.
func (st *Store) collect(id nodeID, path []int, relabel map[int]int, out map[int][]simplex.Simplex) {
	for _, vert := range st.sortedChildren(id) {
		path = append(path, relabel[vert])

		s := make(simplex.Simplex, len(path))
		copy(s, path)
		out[s.Dim()] = append(out[s.Dim()], s)

		st.collect(st.nodes[id].children[vert], path, relabel, out)
		path = path[:len(path)-1]
	}
}

// subsets returns every non-empty sub-simplex of s (including s itself),
// each as a strictly increasing vertex slice.
func subsets(s simplex.Simplex) []simplex.Simplex {
	total := (1 << len(s)) - 1
	out := make([]simplex.Simplex, 0, total)
	for mask := 1; mask <= total; mask++ {
		face := make(simplex.Simplex, 0, len(s))
		for i, vert := range s {
			if mask&(1<<i) != 0 {
				face = append(face, vert)
			}
		}
		out = append(out, face)
	}

	return out
}
