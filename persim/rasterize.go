package persim

import "math"

// Rasterize integrates the weighted Gaussian surface induced by pts over
// a GridSize×GridSize partition of [0, Domain]².
//
// Algorithm Outline:
//  1. Cell (i, j) covers x ∈ [j·w, (j+1)·w), y ∈ (Domain−(i+1)·w, Domain−i·w]
//     with w = Domain/GridSize — row 0 at the top, column 0 at the left.
//  2. Each cell is subdivided into SubGrid×SubGrid sub-cells; at each
//     sub-cell midpoint the surface value is
//     Σ_p  p.Weight · exp(−‖(x,y)−(p.X,p.Y)‖² / (2σ²)) / (2πσ²).
//  3. The cell's value is the midpoint-quadrature estimate:
//     Σ over sub-cells of surface(midpoint) × sub-cell area.
//
// No normalization is applied afterwards; an empty pts yields an
// all-zero grid with no division anywhere.
//
// Complexity: O(G²·S²·len(pts)) time, O(G²) memory.
func Rasterize(pts []WeightedPoint, opts Options) ([][]float64, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	var (
		g        = opts.GridSize
		s        = opts.SubGrid
		cellSize = opts.Domain / float64(g)
		subSize  = cellSize / float64(s)
		subArea  = subSize * subSize
		twoSigSq = 2 * opts.Sigma * opts.Sigma
		norm     = 1 / (2 * math.Pi * opts.Sigma * opts.Sigma)
	)

	grid := make([][]float64, g)
	for i := range grid {
		grid[i] = make([]float64, g)
	}
	if len(pts) == 0 {
		return grid, nil
	}

	for i := 0; i < g; i++ {
		// cellTop is the y coordinate of the top edge of row i.
		cellTop := opts.Domain - float64(i)*cellSize
		for j := 0; j < g; j++ {
			cellLeft := float64(j) * cellSize

			var acc float64
			for si := 0; si < s; si++ {
				y := cellTop - (float64(si)+0.5)*subSize
				for sj := 0; sj < s; sj++ {
					x := cellLeft + (float64(sj)+0.5)*subSize

					var density float64
					for _, p := range pts {
						dx, dy := x-p.X, y-p.Y
						density += p.Weight * math.Exp(-(dx*dx+dy*dy)/twoSigSq)
					}
					acc += density * norm * subArea
				}
			}
			grid[i][j] = acc
		}
	}

	return grid, nil
}
