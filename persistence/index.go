package persistence

import (
	"fmt"

	"github.com/katalvlaran/betti/filtration"
	"github.com/katalvlaran/betti/reduction"
	"github.com/katalvlaran/betti/simplex"
)

// indexed is the global ordering of a filtration's simplices together
// with their boundary columns.
//
// Index space: rows [0, vertices) are the implicit vertex rows. The
// simplex at position p of simplices occupies row AND column index
// vertices+p. Vertices never get columns of their own.
type indexed struct {
	vertices  int
	simplices []simplex.Simplex  // edges and triangles, filtration order
	values    []float64          // values[p] = filtration value of simplices[p]
	columns   []reduction.Column // columns[p] = boundary of simplices[p]
}

// buildIndex orders every simplex of f by (filtration value ascending,
// edges before triangles, enumeration order) and materializes boundary
// columns.
//
// The edges-before-triangles tie-break within one level is required for
// correctness: a triangle's boundary is expressed in edge column
// indices, and every edge of a triangle has value ≤ the triangle's, so
// this ordering guarantees the lookup below always succeeds on
// well-formed input. A missing edge is an invariant violation and
// panics.
func buildIndex(f filtration.Filtration) *indexed {
	idx := &indexed{vertices: f.Vertices}

	// edgeCol maps an edge's vertex-pair key to its global column index.
	edgeCol := make(map[simplex.Key]int)

	for _, lvl := range f.Levels {
		for _, e := range lvl.Edges {
			edgeCol[e.Key()] = idx.vertices + len(idx.simplices)
			idx.simplices = append(idx.simplices, e)
			idx.values = append(idx.values, lvl.Value)
			idx.columns = append(idx.columns, reduction.Column{e[0], e[1]})
		}
		for _, t := range lvl.Triangles {
			col := make(reduction.Column, 0, 3)
			for _, pair := range [3][2]int{{t[0], t[1]}, {t[0], t[2]}, {t[1], t[2]}} {
				c, ok := edgeCol[simplex.PairKey(pair[0], pair[1])]
				if !ok {
					panic(fmt.Sprintf("persistence: edge {%d,%d} of triangle %v not indexed", pair[0], pair[1], t))
				}
				col = insertSorted(col, c)
			}
			idx.simplices = append(idx.simplices, t)
			idx.values = append(idx.values, lvl.Value)
			idx.columns = append(idx.columns, col)
		}
	}

	return idx
}

// at returns the simplex occupying global row/column index i, asserting
// it has the given dimension. An arity mismatch means the index ranges
// got confused and is fatal.
func (idx *indexed) at(i, dim int) simplex.Simplex {
	s := idx.simplices[i-idx.vertices]
	if s.Dim() != dim {
		panic(fmt.Sprintf("persistence: simplex %v at index %d: want dimension %d, have %d", s, i, dim, s.Dim()))
	}

	return s
}

// insertSorted inserts v into the sorted column c. The three edge
// indices of a triangle arrive in arbitrary relative order; columns must
// stay sorted for the reduction's merge arithmetic.
func insertSorted(c reduction.Column, v int) reduction.Column {
	i := len(c)
	c = append(c, v)
	for i > 0 && c[i-1] > v {
		c[i] = c[i-1]
		i--
	}
	c[i] = v

	return c
}
