package filtration_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/betti/filtration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRips_Empty verifies that zero or one point yields a level-free
// filtration with the vertex count preserved.
func TestRips_Empty(t *testing.T) {
	f := filtration.Rips(nil)
	assert.Equal(t, 0, f.Vertices, "no points, no vertices")
	assert.Empty(t, f.Levels, "no points, no levels")
	assert.Equal(t, 0.0, f.MaxValue(), "empty filtration has MaxValue 0")

	f = filtration.Rips([]filtration.Point{{X: 3, Y: 4}})
	assert.Equal(t, 1, f.Vertices, "single point is a vertex-only filtration")
	assert.Empty(t, f.Levels, "a single vertex spawns no edges or triangles")
}

// TestRips_UnitSquare checks the exact level structure of four points at
// unit-square corners: four side edges at 1, then two diagonals and all
// four triangles at √2.
func TestRips_UnitSquare(t *testing.T) {
	pts := []filtration.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	f := filtration.Rips(pts)

	require.Equal(t, 4, f.Vertices)
	require.Len(t, f.Levels, 2, "exactly two distinct filtration values")

	side, diag := f.Levels[0], f.Levels[1]
	assert.Equal(t, 1.0, side.Value, "first level at side length")
	assert.Len(t, side.Edges, 4, "four sides")
	assert.Empty(t, side.Triangles, "no triangle realizes at the side length")

	assert.InDelta(t, math.Sqrt2, diag.Value, 1e-12, "second level at diagonal length")
	assert.Len(t, diag.Edges, 2, "two diagonals")
	assert.Len(t, diag.Triangles, 4, "all four triples peak at the diagonal")
}

// TestRips_Counts verifies the O(V²)/O(V³) enumeration is exhaustive:
// C(V,2) edges and C(V,3) triangles over all levels.
func TestRips_Counts(t *testing.T) {
	pts := []filtration.Point{{0, 0}, {2, 1}, {5, 3}, {1, 7}, {4, 4}, {9, 2}}
	f := filtration.Rips(pts)

	edges, triangles := 0, 0
	for _, lvl := range f.Levels {
		edges += len(lvl.Edges)
		triangles += len(lvl.Triangles)
	}
	assert.Equal(t, 15, edges, "C(6,2) edges")
	assert.Equal(t, 20, triangles, "C(6,3) triangles")
}

// TestRips_Monotone asserts the face-monotonicity invariant: every
// triangle's value dominates the values of its three edges.
func TestRips_Monotone(t *testing.T) {
	pts := []filtration.Point{{0, 0}, {3, 1}, {1, 4}, {6, 2}, {2, 2}}
	f := filtration.Rips(pts)

	// edge key (u*V+v) → value
	valueOf := make(map[int]float64)
	for _, lvl := range f.Levels {
		for _, e := range lvl.Edges {
			valueOf[e[0]*len(pts)+e[1]] = lvl.Value
		}
	}

	for _, lvl := range f.Levels {
		for _, tr := range lvl.Triangles {
			for _, pair := range [3][2]int{{tr[0], tr[1]}, {tr[0], tr[2]}, {tr[1], tr[2]}} {
				ev, ok := valueOf[pair[0]*len(pts)+pair[1]]
				require.True(t, ok, "edge %v of triangle %v must be enumerated", pair, tr)
				assert.LessOrEqual(t, ev, lvl.Value,
					"edge %v value must not exceed triangle %v value", pair, tr)
			}
		}
	}
}

// TestRips_LevelsSorted asserts levels arrive in strictly ascending
// value order.
func TestRips_LevelsSorted(t *testing.T) {
	pts := []filtration.Point{{0, 0}, {1, 0}, {0, 2}, {3, 3}, {5, 1}}
	f := filtration.Rips(pts)

	for i := 1; i < len(f.Levels); i++ {
		assert.Less(t, f.Levels[i-1].Value, f.Levels[i].Value, "levels must be strictly increasing")
	}
	assert.Equal(t, f.Levels[len(f.Levels)-1].Value, f.MaxValue())
}
