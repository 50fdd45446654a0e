package homology

import (
	"fmt"

	"github.com/katalvlaran/betti/reduction"
	"github.com/katalvlaran/betti/simplex"
)

// Chain is a GF(2) formal sum of simplices of one dimension, reported as
// the list of simplices with coefficient 1.
type Chain []simplex.Simplex

// Data holds the homological generators extracted at one dimension p.
type Data struct {
	// CycleGenerators spans the cycle space Z_p: one p-chain per column
	// whose boundary reduced to zero.
	CycleGenerators []Chain

	// BoundaryGenerators spans the boundary space B_{p−1}: one
	// (p−1)-chain per pivot column, the reduced boundary itself.
	BoundaryGenerators []Chain
}

// Compute extracts cycle and boundary generators for every dimension
// present in byDim.
//
// Algorithm Outline, per dimension p in byDim:
//   - p = 0: every vertex is trivially a cycle (no boundary); one
//     single-simplex cycle generator per 0-simplex, no boundaries.
//   - p > 0: rows are the positions of the (p−1)-simplices, found via a
//     facet lookup keyed by sorted vertex tuple; columns are the
//     boundaries of the p-simplices. Reduce with membership tracking.
//     Empty columns yield CycleGenerators (membership mapped back to
//     p-simplices); pivot columns yield BoundaryGenerators (reduced
//     rows mapped back to (p−1)-simplices).
//
// Panics if a facet of a listed simplex is absent one dimension down
// (malformed complex — face closure is the caller's contract).
func Compute(byDim map[int][]simplex.Simplex) map[int]Data {
	out := make(map[int]Data, len(byDim))
	for dim, simplices := range byDim {
		if dim == 0 {
			d := Data{CycleGenerators: make([]Chain, 0, len(simplices))}
			for _, v := range simplices {
				d.CycleGenerators = append(d.CycleGenerators, Chain{v})
			}
			out[dim] = d

			continue
		}
		out[dim] = computeAt(dim, simplices, byDim[dim-1])
	}

	return out
}

// computeAt runs the reduction for one positive dimension.
func computeAt(dim int, simplices, facets []simplex.Simplex) Data {
	// facetRow maps a (dim−1)-simplex key to its row index.
	facetRow := make(map[simplex.Key]int, len(facets))
	for i, f := range facets {
		facetRow[f.Key()] = i
	}

	cols := make([]reduction.Column, len(simplices))
	for j, s := range simplices {
		col := make(reduction.Column, 0, len(s))
		for _, f := range s.Facets() {
			row, ok := facetRow[f.Key()]
			if !ok {
				panic(fmt.Sprintf("homology: facet %v of simplex %v not present at dimension %d", f, s, dim-1))
			}
			col = append(col, row)
		}
		sortColumn(col)
		cols[j] = col
	}

	res := reduction.Reduce(cols, reduction.Options{TrackMembership: true})

	var d Data
	for j, col := range res.Columns {
		if len(col) == 0 {
			gen := make(Chain, 0, len(res.Members[j]))
			for _, m := range res.Members[j] {
				gen = append(gen, simplices[m])
			}
			d.CycleGenerators = append(d.CycleGenerators, gen)

			continue
		}
		gen := make(Chain, 0, len(col))
		for _, row := range col {
			gen = append(gen, facets[row])
		}
		d.BoundaryGenerators = append(d.BoundaryGenerators, gen)
	}

	return d
}

// BettiNumbers derives β_0..β_maxDim from data:
// β_p = |Z_p| − |B_p|, where B_p is reported by dimension p+1 as its
// BoundaryGenerators (the image of the (p+1)-boundary map).
// Dimensions absent from data contribute zero on both sides.
func BettiNumbers(data map[int]Data, maxDim int) []int {
	betti := make([]int, maxDim+1)
	for p := 0; p <= maxDim; p++ {
		betti[p] = len(data[p].CycleGenerators) - len(data[p+1].BoundaryGenerators)
	}

	return betti
}

// sortColumn sorts the handful of facet rows of one column. Insertion
// sort: columns carry at most dim+1 entries.
func sortColumn(c reduction.Column) {
	for i := 1; i < len(c); i++ {
		for k := i; k > 0 && c[k-1] > c[k]; k-- {
			c[k-1], c[k] = c[k], c[k-1]
		}
	}
}
