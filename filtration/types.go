package filtration

import (
	"math"

	"github.com/katalvlaran/betti/simplex"
)

// Point is an immutable 2D coordinate pair.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Level groups the simplices first appearing at one filtration value,
// partitioned by dimension. Within a level, edges precede triangles in
// every downstream ordering.
type Level struct {
	Value     float64
	Edges     []simplex.Simplex
	Triangles []simplex.Simplex
}

// Filtration is the full set of levels of a point cloud, sorted ascending
// by Value, together with the vertex count. Vertices are implicit: vertex
// i exists from value 0 for every 0 ≤ i < Vertices.
type Filtration struct {
	Vertices int
	Levels   []Level
}

// MaxValue returns the largest filtration value, or 0 for a filtration
// with no levels.
func (f Filtration) MaxValue() float64 {
	if len(f.Levels) == 0 {
		return 0
	}

	return f.Levels[len(f.Levels)-1].Value
}
