// File: simplex/simplex_test.go
package simplex

import (
	"errors"
	"reflect"
	"testing"
)

// TestNew_SortsAndValidates covers construction: vertices are sorted
// ascending, and malformed inputs hit their sentinels.
func TestNew_SortsAndValidates(t *testing.T) {
	s, err := New(2, 0, 1)
	if err != nil {
		t.Fatalf("New(2,0,1) failed: %v", err)
	}
	if !s.Equal(Simplex{0, 1, 2}) {
		t.Errorf("New(2,0,1) = %v; want [0 1 2]", s)
	}
	if s.Dim() != 2 {
		t.Errorf("Dim = %d; want 2", s.Dim())
	}

	if _, err = New(); !errors.Is(err, ErrEmptySimplex) {
		t.Errorf("New() error = %v; want ErrEmptySimplex", err)
	}
	if _, err = New(0, -1); !errors.Is(err, ErrNegativeVertex) {
		t.Errorf("New(0,-1) error = %v; want ErrNegativeVertex", err)
	}
	if _, err = New(3, 3); !errors.Is(err, ErrDuplicateVertex) {
		t.Errorf("New(3,3) error = %v; want ErrDuplicateVertex", err)
	}
}

// TestKey_Identity checks that keys collide exactly on equal vertex
// tuples and that PairKey agrees with Key for edges in either order.
func TestKey_Identity(t *testing.T) {
	if MustNew(0, 1).Key() != MustNew(1, 0).Key() {
		t.Error("edge key must not depend on vertex order")
	}
	if MustNew(0, 1).Key() == MustNew(0, 2).Key() {
		t.Error("distinct edges must have distinct keys")
	}
	// A vertex and an edge sharing vertex 0 must not collide.
	if MustNew(0).Key() == MustNew(0, 1).Key() {
		t.Error("keys of different dimensions must not collide")
	}
	if PairKey(5, 2) != MustNew(2, 5).Key() {
		t.Error("PairKey(5,2) must equal Key of edge {2,5}")
	}
}

// TestFacets enumerates codimension-1 faces for each arity.
func TestFacets(t *testing.T) {
	if got := MustNew(7).Facets(); got != nil {
		t.Errorf("vertex facets = %v; want nil", got)
	}

	edge := MustNew(1, 4)
	wantEdge := []Simplex{{4}, {1}}
	if got := edge.Facets(); !reflect.DeepEqual(got, wantEdge) {
		t.Errorf("edge facets = %v; want %v", got, wantEdge)
	}

	tri := MustNew(0, 2, 5)
	wantTri := []Simplex{{2, 5}, {0, 5}, {0, 2}}
	if got := tri.Facets(); !reflect.DeepEqual(got, wantTri) {
		t.Errorf("triangle facets = %v; want %v", got, wantTri)
	}
}

// TestMustNew_Panics ensures MustNew converts errors into panics.
func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew() on empty input must panic")
		}
	}()
	MustNew()
}
