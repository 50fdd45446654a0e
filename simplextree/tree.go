// Package simplextree: arena, versions and mutation operations.
package simplextree

import (
	"errors"
	"sort"

	"github.com/katalvlaran/betti/simplex"
)

// Sentinel errors for simplextree operations.
var (
	// ErrBadVersion indicates a Version that this store never issued.
	ErrBadVersion = errors.New("simplextree: unknown version")
	// ErrMalformedSimplex indicates a simplex that is empty, unsorted,
	// or carries duplicate or negative vertices.
	ErrMalformedSimplex = errors.New("simplextree: simplex must be non-empty, strictly increasing, non-negative")
)

// nodeID addresses a node in the arena. The root of every version is a
// synthetic node whose children are the complex's vertices.
type nodeID int32

// node is one arena entry. children maps a vertex index to the child
// node extending the current path by that vertex.
type node struct {
	vertex   int
	children map[int]nodeID
}

// Version is a root handle into a Store. The zero Version is the empty
// complex of any store.
type Version int

// Store is an append-only arena of nodes plus the roots of all issued
// versions. Old versions are never modified: mutations copy the nodes
// along touched paths and share everything else by nodeID.
type Store struct {
	nodes []node
	roots []nodeID
}

// New returns a Store holding the single empty Version 0.
func New() *Store {
	st := &Store{}
	root := st.newNode(-1)
	st.roots = []nodeID{root}

	return st
}

// Empty returns the empty complex's Version.
func (st *Store) Empty() Version { return 0 }

// Insert returns a new Version containing everything in v plus s and
// every face of s (full closure by construction). Inserting an already
// present simplex still issues a fresh Version.
func (st *Store) Insert(v Version, s simplex.Simplex) (Version, error) {
	if err := st.check(v, s); err != nil {
		return 0, err
	}

	firstFresh := nodeID(len(st.nodes))
	root := st.copyNode(st.roots[v])
	for _, face := range subsets(s) {
		st.insertPath(root, face, firstFresh)
	}

	return st.issue(root), nil
}

// Remove returns a new Version without s and without any coface of s
// (closure survives deletion). Removing an absent simplex still issues
// a fresh Version.
func (st *Store) Remove(v Version, s simplex.Simplex) (Version, error) {
	if err := st.check(v, s); err != nil {
		return 0, err
	}

	firstFresh := nodeID(len(st.nodes))
	root, _ := st.removeRec(st.roots[v], s, 0, firstFresh)

	return st.issue(root), nil
}

// RemoveVertex returns a new Version without the vertex and without
// every simplex containing it.
func (st *Store) RemoveVertex(v Version, vertex int) (Version, error) {
	return st.Remove(v, simplex.Simplex{vertex})
}

// Contains reports whether version v holds simplex s.
func (st *Store) Contains(v Version, s simplex.Simplex) (bool, error) {
	if err := st.check(v, s); err != nil {
		return false, err
	}

	cur := st.roots[v]
	for _, vert := range s {
		child, ok := st.nodes[cur].children[vert]
		if !ok {
			return false, nil
		}
		cur = child
	}

	return true, nil
}

// Size returns the number of simplices (of all dimensions) in v.
func (st *Store) Size(v Version) (int, error) {
	if !st.validVersion(v) {
		return 0, ErrBadVersion
	}

	return st.countBelow(st.roots[v]), nil
}

// ---------- internals ----------

func (st *Store) check(v Version, s simplex.Simplex) error {
	if !st.validVersion(v) {
		return ErrBadVersion
	}
	if len(s) == 0 || s[0] < 0 {
		return ErrMalformedSimplex
	}
	for i := 1; i < len(s); i++ {
		if s[i] <= s[i-1] {
			return ErrMalformedSimplex
		}
	}

	return nil
}

func (st *Store) validVersion(v Version) bool {
	return v >= 0 && int(v) < len(st.roots)
}

func (st *Store) issue(root nodeID) Version {
	st.roots = append(st.roots, root)

	return Version(len(st.roots) - 1)
}

func (st *Store) newNode(vertex int) nodeID {
	st.nodes = append(st.nodes, node{vertex: vertex})

	return nodeID(len(st.nodes) - 1)
}

// copyNode duplicates one node with a shallow child-map copy; the
// children still reference shared subtrees.
func (st *Store) copyNode(id nodeID) nodeID {
	src := st.nodes[id]
	ch := make(map[int]nodeID, len(src.children))
	for k, c := range src.children {
		ch[k] = c
	}
	st.nodes = append(st.nodes, node{vertex: src.vertex, children: ch})

	return nodeID(len(st.nodes) - 1)
}

// insertPath threads one face's vertex path below the (fresh) root,
// copying any shared node it must descend through. firstFresh separates
// nodes created by the current operation (mutable in place) from nodes
// belonging to earlier versions (copy before touching).
func (st *Store) insertPath(root nodeID, path simplex.Simplex, firstFresh nodeID) {
	cur := root
	for _, vert := range path {
		child, ok := st.nodes[cur].children[vert]
		switch {
		case !ok:
			child = st.newNode(vert)
			if st.nodes[cur].children == nil {
				st.nodes[cur].children = make(map[int]nodeID, 1)
			}
			st.nodes[cur].children[vert] = child
		case child < firstFresh:
			child = st.copyNode(child)
			st.nodes[cur].children[vert] = child
		}
		cur = child
	}
}

// removeRec rebuilds the subtree at id with every coface of s pruned.
// matched counts how many of s's vertices appear on the path so far.
// Returns the (possibly shared, possibly copied) replacement node and
// whether anything below changed.
//
// Paths are strictly increasing, so once a child's vertex exceeds
// s[matched] the next required vertex can never appear deeper — that
// subtree is shared untouched.
func (st *Store) removeRec(id nodeID, s simplex.Simplex, matched int, firstFresh nodeID) (nodeID, bool) {
	type edit struct {
		vertex int
		child  nodeID
		prune  bool
	}
	var edits []edit

	for vert, child := range st.nodes[id].children {
		m := matched
		if vert == s[m] {
			m++
		} else if vert > s[m] {
			continue // required vertex unreachable below: share subtree
		}
		if m == len(s) {
			edits = append(edits, edit{vertex: vert, prune: true})

			continue
		}
		if replaced, changed := st.removeRec(child, s, m, firstFresh); changed {
			edits = append(edits, edit{vertex: vert, child: replaced})
		}
	}
	if len(edits) == 0 {
		return id, false
	}

	out := id
	if out < firstFresh {
		out = st.copyNode(id)
	}
	for _, e := range edits {
		if e.prune {
			delete(st.nodes[out].children, e.vertex)
		} else {
			st.nodes[out].children[e.vertex] = e.child
		}
	}

	return out, true
}

func (st *Store) countBelow(id nodeID) int {
	n := 0
	for _, child := range st.nodes[id].children {
		n += 1 + st.countBelow(child)
	}

	return n
}

// sortedChildren returns the child vertices of id ascending; map order
// is random, snapshots must be deterministic.
func (st *Store) sortedChildren(id nodeID) []int {
	verts := make([]int, 0, len(st.nodes[id].children))
	for v := range st.nodes[id].children {
		verts = append(verts, v)
	}
	sort.Ints(verts)

	return verts
}
