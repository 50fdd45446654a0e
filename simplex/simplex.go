// Package simplex defines core value types and sentinel errors
// for the simplex subpackage of github.com/katalvlaran/betti.
package simplex

import (
	"errors"
	"sort"
)

// Sentinel errors for simplex construction.
var (
	// ErrEmptySimplex indicates a simplex was built from zero vertices.
	ErrEmptySimplex = errors.New("simplex: simplex must have at least one vertex")
	// ErrNegativeVertex indicates a negative vertex index.
	ErrNegativeVertex = errors.New("simplex: vertex indices must be non-negative")
	// ErrDuplicateVertex indicates a repeated vertex index.
	ErrDuplicateVertex = errors.New("simplex: vertex indices must be distinct")
)

// keyUnused marks an empty slot in a Key; valid vertex indices are ≥ 0.
const keyUnused = -1

// maxKeyVerts is the largest simplex arity a Key can represent (triangle).
const maxKeyVerts = 3

// Simplex is a strictly increasing sequence of zero-based vertex indices.
// A length-1 Simplex is a vertex, length-2 an edge, length-3 a filled
// triangle. Two simplices are equal iff their vertex sequences are equal.
// The slice must never be mutated after construction.
type Simplex []int

// New builds a Simplex from the given vertices, sorting them ascending.
// Returns ErrEmptySimplex, ErrNegativeVertex or ErrDuplicateVertex on
// malformed input.
func New(vertices ...int) (Simplex, error) {
	if len(vertices) == 0 {
		return nil, ErrEmptySimplex
	}
	s := make(Simplex, len(vertices))
	copy(s, vertices)
	sort.Ints(s)
	for i, v := range s {
		if v < 0 {
			return nil, ErrNegativeVertex
		}
		if i > 0 && s[i-1] == v {
			return nil, ErrDuplicateVertex
		}
	}

	return s, nil
}

// MustNew is New that panics on malformed input. Intended for literals in
// tests and examples where the vertices are constants.
func MustNew(vertices ...int) Simplex {
	s, err := New(vertices...)
	if err != nil {
		panic(err)
	}

	return s
}

// Dim returns the dimension of s (vertex count minus one).
func (s Simplex) Dim() int { return len(s) - 1 }

// Equal reports whether s and t have identical vertex sequences.
func (s Simplex) Equal(t Simplex) bool {
	if len(s) != len(t) {
		return false
	}
	for i := range s {
		if s[i] != t[i] {
			return false
		}
	}

	return true
}

// Key is a comparable composite key identifying a simplex of dimension ≤ 2
// by its sorted vertex tuple. Unused slots hold keyUnused, so keys of
// different dimensions never collide. Suitable as a map key.
type Key struct {
	a, b, c int
}

// Key returns the packed lookup key for s.
// Panics if s has more than three vertices; the engine indexes simplices
// of dimension ≤ 2 only.
func (s Simplex) Key() Key {
	if len(s) == 0 || len(s) > maxKeyVerts {
		panic("simplex: Key supports 1 to 3 vertices")
	}
	k := Key{a: s[0], b: keyUnused, c: keyUnused}
	if len(s) > 1 {
		k.b = s[1]
	}
	if len(s) > 2 {
		k.c = s[2]
	}

	return k
}

// PairKey returns the Key of the edge {u, v} without allocating a Simplex.
// The order of u and v does not matter.
func PairKey(u, v int) Key {
	if u > v {
		u, v = v, u
	}

	return Key{a: u, b: v, c: keyUnused}
}

// Facets returns every codimension-1 face of s, i.e. the simplices
// obtained by deleting one vertex at each position, in position order.
// A vertex (dimension 0) has no facets.
func (s Simplex) Facets() []Simplex {
	if len(s) <= 1 {
		return nil
	}
	facets := make([]Simplex, 0, len(s))
	for drop := range s {
		f := make(Simplex, 0, len(s)-1)
		for i, v := range s {
			if i == drop {
				continue
			}
			f = append(f, v)
		}
		facets = append(facets, f)
	}

	return facets
}
