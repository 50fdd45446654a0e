// Package persistence defines the result types and options of the
// filtration mode.
package persistence

import (
	"github.com/katalvlaran/betti/persim"
	"github.com/katalvlaran/betti/simplex"
)

// Pair is one 1-dimensional persistence pair: a loop born when its last
// edge appears and killed when a triangle fills it.
type Pair struct {
	// Birth is the filtration value of the pivot edge that completed
	// the loop; Death the value of the triangle column that killed it.
	// Always Death ≥ Birth, and Death ≠ Birth (zero-persistence pairs
	// are filtered before emission).
	Birth, Death float64

	// BirthEdges are the edges remaining in the fully reduced boundary
	// of the killing column — the cycle the pair witnesses.
	BirthEdges []simplex.Simplex

	// DeathTriangles are the triangles whose boundaries were combined
	// into the killing column — the 2-chain that fills the cycle.
	DeathTriangles []simplex.Simplex
}

// Persistence returns Death − Birth.
func (p Pair) Persistence() float64 { return p.Death - p.Birth }

// ComponentPair is one dimension-0 pair: a connected component born with
// a vertex and merged away by an edge. Reported only when
// Options.IncludeComponentPairs is set.
type ComponentPair struct {
	// Birth is always 0 (vertices all appear at filtration value 0);
	// Death is the value of the merging edge.
	Birth, Death float64

	// DeathEdges are the edges combined into the merging column.
	DeathEdges []simplex.Simplex
}

// Diagram is the full output of Compute.
type Diagram struct {
	// Pairs holds the 1-dimensional pairs in increasing order of their
	// killing column, i.e. by death value with stable tie-breaks.
	Pairs []Pair

	// ComponentPairs holds dimension-0 pairs; nil unless
	// Options.IncludeComponentPairs was set.
	ComponentPairs []ComponentPair

	// Image is the GridSize×GridSize persistence image of Pairs.
	Image [][]float64
}

// Options configures Compute.
//
// Fields:
//   - IncludeComponentPairs — also report dimension-0 (connected
//     component) pairs in Diagram.ComponentPairs. The reduction computes
//     them either way; by default they are discarded, matching the
//     1-dimensional scope of Diagram.Pairs.
//   - NormalizeWeights — divide each pair's image weight by the maximum
//     persistence observed in the diagram. Off by default: the raw
//     variant weights each pair by its absolute persistence, which makes
//     image mass comparable across diagrams; the normalized variant
//     makes it comparable across scales. The two conventions disagree
//     in prior art, hence the switch.
//   - Image — rasterization parameters, persim.DefaultOptions() unless
//     overridden.
type Options struct {
	IncludeComponentPairs bool
	NormalizeWeights      bool
	Image                 persim.Options
}

// DefaultOptions returns the default Compute configuration:
// no component pairs, raw persistence weights, persim defaults.
func DefaultOptions() Options {
	return Options{
		IncludeComponentPairs: false,
		NormalizeWeights:      false,
		Image:                 persim.DefaultOptions(),
	}
}
