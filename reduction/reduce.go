// SPDX-License-Identifier: MIT

// Package reduction: the pivot-cancellation driver.
package reduction

// Options configures one Reduce run.
type Options struct {
	// TrackMembership carries a parallel "simplex membership" set through
	// every XOR step: Members[j] starts as {j} and accumulates the
	// original column positions whose boundaries were combined into
	// column j. Required when witnesses (death triangles, cycle
	// generators) must be reported; off by default because it doubles
	// the XOR work.
	TrackMembership bool
}

// DefaultOptions returns the default Reduce configuration:
// TrackMembership=false.
func DefaultOptions() Options {
	return Options{TrackMembership: false}
}

// Result holds the outcome of one Reduce run.
type Result struct {
	// Columns aliases the input slice, now in reduced form: every
	// non-empty column has a unique low, every empty column is a cycle.
	Columns []Column

	// Pivots maps a pivot row index to the position of the column that
	// claimed it. Invariants: at most one column per row; once claimed,
	// a row is never reassigned.
	Pivots map[int]int

	// Members is nil unless Options.TrackMembership was set; otherwise
	// Members[j] lists, sorted ascending, the original column positions
	// XOR-combined into column j (including j itself).
	Members []Column
}

// Reduce runs the standard persistence reduction over cols, mutating the
// slice elements into reduced form.
//
// Algorithm Outline, for each column position j in increasing order:
//  1. low = max row index in cols[j]; if cols[j] is empty, stop — the
//     column is a cycle and contributes no pivot.
//  2. If no column has claimed low yet, record Pivots[low] = j and stop.
//  3. Otherwise XOR the claiming column into cols[j] (and, when
//     tracking, its membership set into Members[j]) and repeat from 1.
//
// Termination: step 3 removes low from cols[j] and can only introduce
// rows below it, so low strictly decreases or the column empties.
//
// Complexity: O(n³) worst case for n columns with dense fill-in.
// Memory: O(total reduced fill).
func Reduce(cols []Column, opts Options) *Result {
	res := &Result{
		Columns: cols,
		Pivots:  make(map[int]int, len(cols)),
	}
	if opts.TrackMembership {
		res.Members = make([]Column, len(cols))
		for j := range cols {
			res.Members[j] = Column{j}
		}
	}

	var (
		low     int
		ok      bool
		claimed int
	)
	for j := range cols {
		for {
			low, ok = cols[j].Low()
			if !ok {
				break // cycle column
			}
			claimed, ok = res.Pivots[low]
			if !ok {
				res.Pivots[low] = j

				break
			}
			cols[j] = SymDiff(cols[j], cols[claimed])
			if opts.TrackMembership {
				res.Members[j] = SymDiff(res.Members[j], res.Members[claimed])
			}
		}
	}

	return res
}
