// Package persim rasterizes a weighted planar point set — typically a
// persistence diagram mapped to (birth, persistence) coordinates — into a
// fixed-resolution grid of kernel-density values, the "persistence image".
//
// What:
//
//   - WeightedPoint — a point with a non-negative mass.
//   - Rasterize — a G×G grid where each cell approximates the integral,
//     over the cell, of the sum of weighted Gaussian bumps centered at
//     the input points, via S×S midpoint quadrature per cell.
//
// Why:
//
//   - A raster is a stable, fixed-size summary of a diagram with a
//     variable number of pairs, directly usable for display or as a
//     feature vector.
//
// Conventions:
//
//   - The domain is the square [0, Domain]²; row 0 is the TOP of the
//     domain, column 0 the left edge (screen orientation).
//   - No final normalization: the output is a raw density-times-weight
//     field, and total mass grows monotonically with any point's weight.
//
// Options:
//
//   - GridSize (G, default 50), SubGrid (S, default 10),
//     Sigma (kernel bandwidth, default 10), Domain (default 500).
//
// Errors:
//
//   - ErrGridSize, ErrSubGrid, ErrSigma, ErrDomain: the corresponding
//     option was not strictly positive.
//
// Complexity: O(G²·S²·len(pts)) time, O(G²) memory.
package persim
