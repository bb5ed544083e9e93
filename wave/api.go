package wave

import "fmt"

// CountAt returns the number of still-possible patterns at (x,y).
// Complexity: O(N) — one bit test per pattern plane.
func (wv *Wave) CountAt(x, y int) int {
	idx := wv.index(x, y)
	count := 0
	for p := 0; p < wv.n; p++ {
		if testBit(wv.bits[p], idx) {
			count++
		}
	}

	return count
}

// TotalCount sums CountAt over every cell; the propagator's fixpoint test
// compares successive TotalCount values rather than re-scanning per cell.
// Complexity: O(N*W*H/64).
func (wv *Wave) TotalCount() int {
	total := 0
	for p := 0; p < wv.n; p++ {
		total += popcount(wv.bits[p])
	}

	return total
}

// ClearExcept sets wave[*][x][y] to false, then wave[p][x][y] to true.
// The caller is responsible for p having been possible beforehand; this
// does not itself validate feasibility.
// Complexity: O(N).
func (wv *Wave) ClearExcept(x, y, p int) {
	idx := wv.index(x, y)
	for q := 0; q < wv.n; q++ {
		if q == p {
			setBit(wv.bits[q], idx)
		} else {
			clearBit(wv.bits[q], idx)
		}
	}
}

// Forbid clears a single pattern at a single cell, leaving every other
// pattern at that cell untouched. Used by the search driver's backtrack
// step to rule out a previously attempted choice without resolving the
// cell to anything else.
// Complexity: O(1).
func (wv *Wave) Forbid(x, y, p int) {
	clearBit(wv.bits[p], wv.index(x, y))
}

// Possible reports whether pattern p is still a candidate at (x,y).
// Complexity: O(1).
func (wv *Wave) Possible(x, y, p int) bool {
	return testBit(wv.bits[p], wv.index(x, y))
}

// WeightsAt returns the per-pattern possibility vector at (x,y) — the
// slice a PatternHeuristic consumes to pick a pattern for that cell.
// Complexity: O(N).
func (wv *Wave) WeightsAt(x, y int) []bool {
	idx := wv.index(x, y)
	weights := make([]bool, wv.n)
	for p := 0; p < wv.n; p++ {
		weights[p] = testBit(wv.bits[p], idx)
	}

	return weights
}

// ResolvedPattern returns the unique true pattern at a fully resolved
// cell. Callers must only invoke this once count_at(x,y) == 1; if no
// pattern or more than one is set, ok is false.
// Complexity: O(N).
func (wv *Wave) ResolvedPattern(x, y int) (p int, ok bool) {
	idx := wv.index(x, y)
	found := -1
	for q := 0; q < wv.n; q++ {
		if testBit(wv.bits[q], idx) {
			if found != -1 {
				return 0, false
			}
			found = q
		}
	}
	if found == -1 {
		return 0, false
	}

	return found, true
}

// AllResolved reports whether every cell has exactly one true pattern —
// a direct termination test, rather than comparing TotalCount to W*H,
// which would conflate "every cell resolved" with "some cells empty and
// others over-resolved, summing to the same total".
// Complexity: O(N*W*H) worst case.
func (wv *Wave) AllResolved() bool {
	for idx := 0; idx < wv.cellN; idx++ {
		count := 0
		for p := 0; p < wv.n; p++ {
			if testBit(wv.bits[p], idx) {
				count++
			}
		}
		if count != 1 {
			return false
		}
	}

	return true
}

// Contradicted reports whether any cell has zero true patterns.
// Complexity: O(N*W*H) worst case.
func (wv *Wave) Contradicted() bool {
	for idx := 0; idx < wv.cellN; idx++ {
		any := false
		for p := 0; p < wv.n; p++ {
			if testBit(wv.bits[p], idx) {
				any = true
				break
			}
		}
		if !any {
			return true
		}
	}

	return false
}

// Equal reports whether two waves share dimensions and identical
// possibility bits, used to check a snapshot/restore round trip.
// Complexity: O(N*W*H/64).
func (wv *Wave) Equal(other *Wave) bool {
	if other == nil {
		return false
	}
	if wv.n != other.n || wv.width != other.width || wv.height != other.height {
		return false
	}
	for p := 0; p < wv.n; p++ {
		if !equalBitset(wv.bits[p], other.bits[p]) {
			return false
		}
	}

	return true
}

// CellIndex exposes the row-major cell index used internally so sibling
// packages (propagator) can build cell-indexed scratch bitsets that stay
// aligned with the wave's own addressing.
// Complexity: O(1).
func (wv *Wave) CellIndex(x, y int) int {
	return wv.index(x, y)
}

// Coordinate converts a row-major cell index back to (x,y).
// Complexity: O(1).
func (wv *Wave) Coordinate(idx int) (x, y int) {
	return wv.coordinate(idx)
}

// Cells returns the total number of addressable cells, W*H.
// Complexity: O(1).
func (wv *Wave) Cells() int {
	return wv.cellN
}

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (wv *Wave) InBounds(x, y int) bool {
	return wv.inBounds(x, y)
}

// IntersectPattern ANDs pattern p's possibility bitset with mask in
// place. mask must have the word length wordsFor(Cells()) implies; this
// is the propagator's write-back step after combining one sweep's
// per-direction support into a single mask per pattern.
// Complexity: O(W*H/64).
func (wv *Wave) IntersectPattern(p int, mask []uint64) {
	bits := wv.bits[p]
	for i := range bits {
		bits[i] &= mask[i]
	}
}

// String renders the wave as one line per pattern plane, for debugging —
// in the spirit of matrix.Dense.String(), scaled down to bits.
// Complexity: O(N*W*H).
func (wv *Wave) String() string {
	s := ""
	for p := 0; p < wv.n; p++ {
		s += fmt.Sprintf("p%d: ", p)
		for y := 0; y < wv.height; y++ {
			for x := 0; x < wv.width; x++ {
				if wv.Possible(x, y, p) {
					s += "1"
				} else {
					s += "0"
				}
			}
			s += "|"
		}
		s += "\n"
	}

	return s
}
