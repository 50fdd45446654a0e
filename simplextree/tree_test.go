// File: simplextree/tree_test.go
package simplextree

import (
	"errors"
	"testing"

	"github.com/katalvlaran/betti/simplex"
)

// mustContain fails the test unless version v holds exactly the given
// simplices among the probes.
func mustContain(t *testing.T, st *Store, v Version, present, absent []simplex.Simplex) {
	t.Helper()
	for _, s := range present {
		ok, err := st.Contains(v, s)
		if err != nil {
			t.Fatalf("Contains(%v) failed: %v", s, err)
		}
		if !ok {
			t.Errorf("version %d: simplex %v missing", v, s)
		}
	}
	for _, s := range absent {
		ok, err := st.Contains(v, s)
		if err != nil {
			t.Fatalf("Contains(%v) failed: %v", s, err)
		}
		if ok {
			t.Errorf("version %d: simplex %v unexpectedly present", v, s)
		}
	}
}

// TestInsert_Closure inserts a triangle into the empty complex and
// expects all 7 faces (3 vertices, 3 edges, 1 triangle) to exist.
func TestInsert_Closure(t *testing.T) {
	st := New()
	v, err := st.Insert(st.Empty(), simplex.MustNew(0, 1, 2))
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	size, err := st.Size(v)
	if err != nil {
		t.Fatalf("Size failed: %v", err)
	}
	if size != 7 {
		t.Errorf("Size = %d; want 7 (full closure of a triangle)", size)
	}
	mustContain(t, st, v,
		[]simplex.Simplex{{0}, {1}, {2}, {0, 1}, {0, 2}, {1, 2}, {0, 1, 2}},
		[]simplex.Simplex{{3}, {0, 3}})
}

// TestVersions_AreImmutable mutates through several versions and checks
// each older version still reads exactly as it did.
func TestVersions_AreImmutable(t *testing.T) {
	st := New()
	v1, _ := st.Insert(st.Empty(), simplex.MustNew(0, 1))
	v2, _ := st.Insert(v1, simplex.MustNew(1, 2))
	v3, _ := st.Remove(v2, simplex.MustNew(0, 1))

	// v0 is still empty.
	if size, _ := st.Size(st.Empty()); size != 0 {
		t.Errorf("empty version Size = %d; want 0", size)
	}
	// v1 still has exactly the first edge's closure.
	if size, _ := st.Size(v1); size != 3 {
		t.Errorf("v1 Size = %d; want 3", size)
	}
	mustContain(t, st, v1, []simplex.Simplex{{0}, {1}, {0, 1}}, []simplex.Simplex{{2}, {1, 2}})
	// v2 saw both edges.
	mustContain(t, st, v2, []simplex.Simplex{{0, 1}, {1, 2}}, nil)
	// v3 dropped the edge but kept its vertices.
	mustContain(t, st, v3, []simplex.Simplex{{0}, {1}, {1, 2}}, []simplex.Simplex{{0, 1}})
}

// TestRemove_PrunesCofaces removes an edge from a filled triangle and
// expects the triangle to disappear with it.
func TestRemove_PrunesCofaces(t *testing.T) {
	st := New()
	v, _ := st.Insert(st.Empty(), simplex.MustNew(0, 1, 2))
	v, err := st.Remove(v, simplex.MustNew(0, 1))
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if size, _ := st.Size(v); size != 5 {
		t.Errorf("Size after removing an edge = %d; want 5", size)
	}
	mustContain(t, st, v,
		[]simplex.Simplex{{0}, {1}, {2}, {0, 2}, {1, 2}},
		[]simplex.Simplex{{0, 1}, {0, 1, 2}})
}

// TestRemoveVertex drops the vertex and every simplex through it.
func TestRemoveVertex(t *testing.T) {
	st := New()
	v, _ := st.Insert(st.Empty(), simplex.MustNew(0, 1, 2))
	v, err := st.RemoveVertex(v, 1)
	if err != nil {
		t.Fatalf("RemoveVertex failed: %v", err)
	}

	if size, _ := st.Size(v); size != 3 {
		t.Errorf("Size after removing vertex 1 = %d; want 3", size)
	}
	mustContain(t, st, v,
		[]simplex.Simplex{{0}, {2}, {0, 2}},
		[]simplex.Simplex{{1}, {0, 1}, {1, 2}, {0, 1, 2}})
}

// TestErrors exercises the sentinel surface.
func TestErrors(t *testing.T) {
	st := New()
	if _, err := st.Insert(Version(99), simplex.MustNew(0)); !errors.Is(err, ErrBadVersion) {
		t.Errorf("unknown version: got %v; want ErrBadVersion", err)
	}
	if _, err := st.Insert(st.Empty(), simplex.Simplex{}); !errors.Is(err, ErrMalformedSimplex) {
		t.Errorf("empty simplex: got %v; want ErrMalformedSimplex", err)
	}
	if _, err := st.Insert(st.Empty(), simplex.Simplex{2, 1}); !errors.Is(err, ErrMalformedSimplex) {
		t.Errorf("unsorted simplex: got %v; want ErrMalformedSimplex", err)
	}
	if _, err := st.Insert(st.Empty(), simplex.Simplex{-1}); !errors.Is(err, ErrMalformedSimplex) {
		t.Errorf("negative vertex: got %v; want ErrMalformedSimplex", err)
	}
	if _, err := st.Flatten(Version(-1)); !errors.Is(err, ErrBadVersion) {
		t.Errorf("Flatten on bad version: got %v; want ErrBadVersion", err)
	}
}

// TestFlatten_Relabels inserts simplices over sparse vertex ids and
// expects a contiguous zero-based snapshot.
func TestFlatten_Relabels(t *testing.T) {
	st := New()
	v, _ := st.Insert(st.Empty(), simplex.MustNew(3, 7))
	v, _ = st.Insert(v, simplex.MustNew(7, 12))

	byDim, err := st.Flatten(v)
	if err != nil {
		t.Fatalf("Flatten failed: %v", err)
	}

	if len(byDim[0]) != 3 {
		t.Fatalf("vertices = %v; want 3 relabeled vertices", byDim[0])
	}
	for i, want := range []simplex.Simplex{{0}, {1}, {2}} {
		if !byDim[0][i].Equal(want) {
			t.Errorf("vertex %d = %v; want %v", i, byDim[0][i], want)
		}
	}
	// 3→0, 7→1, 12→2: edges {0,1} and {1,2}.
	if len(byDim[1]) != 2 || !byDim[1][0].Equal(simplex.Simplex{0, 1}) || !byDim[1][1].Equal(simplex.Simplex{1, 2}) {
		t.Errorf("edges = %v; want [[0 1] [1 2]]", byDim[1])
	}
}
