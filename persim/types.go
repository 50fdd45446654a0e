// Package persim defines options and sentinel errors for persistence-image
// rasterization.
package persim

import "errors"

// Sentinel errors for option validation.
var (
	// ErrGridSize indicates GridSize ≤ 0.
	ErrGridSize = errors.New("persim: GridSize must be positive")
	// ErrSubGrid indicates SubGrid ≤ 0.
	ErrSubGrid = errors.New("persim: SubGrid must be positive")
	// ErrSigma indicates Sigma ≤ 0.
	ErrSigma = errors.New("persim: Sigma must be positive")
	// ErrDomain indicates Domain ≤ 0.
	ErrDomain = errors.New("persim: Domain must be positive")
)

// Defaults — single source of truth for zero-configuration rasterization.
const (
	// DefaultGridSize is the output resolution G (G×G cells).
	DefaultGridSize = 50
	// DefaultSubGrid is the per-cell quadrature resolution S (S×S midpoints).
	DefaultSubGrid = 10
	// DefaultSigma is the Gaussian kernel bandwidth in distance units.
	DefaultSigma = 10.0
	// DefaultDomain is the side length of the rasterized square, in the
	// same distance units as the input coordinates.
	DefaultDomain = 500.0
)

// WeightedPoint is a planar point with a non-negative mass contributing a
// Gaussian bump to the rasterized surface.
type WeightedPoint struct {
	X, Y, Weight float64
}

// Options configures Rasterize.
//
// Fields:
//   - GridSize — output grid side G; the result is a G×G [][]float64.
//   - SubGrid  — quadrature sub-grid side S per cell.
//   - Sigma    — Gaussian kernel bandwidth σ.
//   - Domain   — side length of the [0, Domain]² rasterized square;
//     cell size is Domain/GridSize.
type Options struct {
	GridSize int
	SubGrid  int
	Sigma    float64
	Domain   float64
}

// DefaultOptions returns the canonical configuration:
// GridSize=50, SubGrid=10, Sigma=10, Domain=500.
func DefaultOptions() Options {
	return Options{
		GridSize: DefaultGridSize,
		SubGrid:  DefaultSubGrid,
		Sigma:    DefaultSigma,
		Domain:   DefaultDomain,
	}
}

// validate checks every option field, returning the first violated
// sentinel in documented order: grid, sub-grid, sigma, domain.
func (o Options) validate() error {
	if o.GridSize <= 0 {
		return ErrGridSize
	}
	if o.SubGrid <= 0 {
		return ErrSubGrid
	}
	if o.Sigma <= 0 {
		return ErrSigma
	}
	if o.Domain <= 0 {
		return ErrDomain
	}

	return nil
}
