// SPDX-License-Identifier: MIT

// Package reduction: the Column type and its GF(2) arithmetic.
package reduction

// Column is a boundary set: a strictly increasing slice of row indices.
// Addition over GF(2) is symmetric difference — an index present in
// exactly one operand survives, an index present in both cancels.
type Column []int

// Low returns the pivot candidate of c — the maximum row index present —
// and false when c is empty (a cycle column).
func (c Column) Low() (int, bool) {
	if len(c) == 0 {
		return 0, false
	}

	return c[len(c)-1], true
}

// SymDiff returns the symmetric difference of a and b as a fresh sorted
// Column. Two-pointer merge over the sorted inputs.
//
// Complexity: O(len(a)+len(b)) time and memory.
func SymDiff(a, b Column) Column {
	out := make(Column, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default: // present in both: cancels over GF(2)
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}
