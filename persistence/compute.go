package persistence

import (
	"sort"

	"github.com/katalvlaran/betti/filtration"
	"github.com/katalvlaran/betti/persim"
	"github.com/katalvlaran/betti/reduction"
)

// Compute runs the full filtration mode on points: Rips filtration,
// global indexing, boundary reduction with membership tracking, pair
// extraction, and rasterization of the resulting diagram.
//
// Contracts:
//   - Total over any finite point slice; zero or one point yields an
//     empty diagram and an all-zero image.
//   - The returned error comes from persim option validation only; the
//     homological computation itself has no error conditions.
//
// Complexity: O(V³) enumeration + O(n³)-worst-case reduction over
// n = O(V³) columns; see the package doc for the intended scale.
func Compute(points []filtration.Point, opts Options) (Diagram, error) {
	filt := filtration.Rips(points)
	idx := buildIndex(filt)

	res := reduction.Reduce(idx.columns, reduction.Options{TrackMembership: true})

	diag := extract(idx, res, opts)

	img, err := persim.Rasterize(imagePoints(diag.Pairs, opts.NormalizeWeights), opts.Image)
	if err != nil {
		return Diagram{}, err
	}
	diag.Image = img

	return diag, nil
}

// extract reads birth–death pairs off the pivot map.
//
// A pivot row ≥ vertices is an edge row: the column that claimed it is a
// triangle that killed the loop completed by that edge. A pivot row
// below vertices is a vertex row: a connected-component death, reported
// only on request. Zero-persistence pairs carry no topological signal
// (simultaneous appearance and cancellation) and are dropped.
func extract(idx *indexed, res *reduction.Result, opts Options) Diagram {
	// Pivot maps iterate in random order; emit by column position so the
	// output ordering is deterministic (ascending death, stable ties).
	positions := make([]int, 0, len(res.Pivots))
	lowOf := make(map[int]int, len(res.Pivots))
	for low, pos := range res.Pivots {
		positions = append(positions, pos)
		lowOf[pos] = low
	}
	sort.Ints(positions)

	var diag Diagram
	for _, pos := range positions {
		low := lowOf[pos]
		death := idx.values[pos]

		if low < idx.vertices {
			// Vertex pivot: a component born at 0 dies when edge column
			// pos merges it. Computed unconditionally, surfaced on demand.
			if !opts.IncludeComponentPairs || death == 0 {
				continue
			}
			cp := ComponentPair{Birth: 0, Death: death}
			for _, m := range res.Members[pos] {
				cp.DeathEdges = append(cp.DeathEdges, idx.at(idx.vertices+m, 1))
			}
			diag.ComponentPairs = append(diag.ComponentPairs, cp)

			continue
		}

		birth := idx.values[low-idx.vertices]
		idx.at(low, 1) // pivot must sit in the edge range
		if birth == death {
			continue
		}

		p := Pair{Birth: birth, Death: death}
		for _, row := range idx.columns[pos] {
			p.BirthEdges = append(p.BirthEdges, idx.at(row, 1))
		}
		for _, m := range res.Members[pos] {
			p.DeathTriangles = append(p.DeathTriangles, idx.at(idx.vertices+m, 2))
		}
		diag.Pairs = append(diag.Pairs, p)
	}

	return diag
}

// imagePoints maps pairs into the (birth, persistence) half-plane with
// their rasterization weights. With normalize, weights are divided by
// the maximum persistence in the diagram; otherwise the raw persistence
// is the weight.
func imagePoints(pairs []Pair, normalize bool) []persim.WeightedPoint {
	if len(pairs) == 0 {
		return nil
	}

	maxPers := 0.0
	if normalize {
		for _, p := range pairs {
			if pers := p.Persistence(); pers > maxPers {
				maxPers = pers
			}
		}
	}

	pts := make([]persim.WeightedPoint, 0, len(pairs))
	var w float64
	for _, p := range pairs {
		w = p.Persistence()
		if normalize && maxPers > 0 {
			w /= maxPers
		}
		pts = append(pts, persim.WeightedPoint{X: p.Birth, Y: p.Persistence(), Weight: w})
	}

	return pts
}

// Edges is a convenience view of a pair's birth witness as vertex-index
// tuples, in reduced-column order.
func (p Pair) Edges() [][2]int {
	out := make([][2]int, len(p.BirthEdges))
	for i, e := range p.BirthEdges {
		out[i] = [2]int{e[0], e[1]}
	}

	return out
}

// Triangles is a convenience view of a pair's death witness as
// vertex-index tuples, in membership order.
func (p Pair) Triangles() [][3]int {
	out := make([][3]int, len(p.DeathTriangles))
	for i, t := range p.DeathTriangles {
		out[i] = [3]int{t[0], t[1], t[2]}
	}

	return out
}
