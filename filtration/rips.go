package filtration

import (
	"math"
	"sort"

	"github.com/katalvlaran/betti/simplex"
)

// Rips builds the Vietoris–Rips-style filtration of points.
//
// Algorithm Outline:
//  1. For every unordered pair (i, j), i<j: record edge {i, j} at the
//     Euclidean distance between the two points.
//  2. For every unordered triple (i, j, k), i<j<k: record triangle
//     {i, j, k} at the maximum of its three pairwise distances.
//  3. Group simplices by exact filtration value into Levels; sort the
//     levels ascending by value. Within a level, enumeration order is
//     preserved (i, then j, then k ascending), so downstream indexing
//     is deterministic.
//
// Monotonicity holds by construction: a triangle's value is the max of
// its edges' values, and an edge's value dominates its (implicit,
// value-0) vertex faces.
//
// Complexity: O(V²) edges, O(V³) triangles. Memory: proportional to the
// enumerated simplex count.
func Rips(points []Point) Filtration {
	f := Filtration{Vertices: len(points)}
	if len(points) < 2 {
		return f
	}

	// byValue groups simplices sharing one exact filtration value.
	byValue := make(map[float64]*Level)
	at := func(v float64) *Level {
		lvl, ok := byValue[v]
		if !ok {
			lvl = &Level{Value: v}
			byValue[v] = lvl
		}

		return lvl
	}

	var i, j, k int
	for i = 0; i < len(points); i++ {
		for j = i + 1; j < len(points); j++ {
			d := Dist(points[i], points[j])
			lvl := at(d)
			lvl.Edges = append(lvl.Edges, simplex.Simplex{i, j})
		}
	}
	for i = 0; i < len(points); i++ {
		for j = i + 1; j < len(points); j++ {
			dij := Dist(points[i], points[j])
			for k = j + 1; k < len(points); k++ {
				d := math.Max(dij, math.Max(Dist(points[i], points[k]), Dist(points[j], points[k])))
				lvl := at(d)
				lvl.Triangles = append(lvl.Triangles, simplex.Simplex{i, j, k})
			}
		}
	}

	values := make([]float64, 0, len(byValue))
	for v := range byValue {
		values = append(values, v)
	}
	sort.Float64s(values)

	f.Levels = make([]Level, 0, len(values))
	for _, v := range values {
		f.Levels = append(f.Levels, *byValue[v])
	}

	return f
}
