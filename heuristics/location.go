package heuristics

import (
	"math"

	"github.com/gridwave/wfc/wave"
)

// Lexical selects the unresolved cell with the smallest CountAt, breaking
// ties in row-major order: lowest x first, then lowest y. It panics if
// every cell is already resolved — the search driver never calls a
// Location heuristic once the wave is fully resolved, so this indicates
// a caller using the heuristic outside that contract.
func Lexical(wv *wave.Wave) (x, y int) {
	return selectMin(wv, func(wv *wave.Wave, x, y int) float64 {
		return float64(wv.CountAt(x, y))
	})
}

// Entropy returns a Location heuristic that, among unresolved cells,
// minimizes preferences[x][y] + CountAt(x,y); resolved cells are excluded
// by treating them as +Inf. preferences must be indexed [x][y] and sized
// at least W×H for the Wave it is used with. Ties are broken row-major,
// matching Lexical.
//
// The name is a deliberate misnomer kept for familiarity with other WFC
// implementations: this is an additive preference on top of the
// possibility count, not Shannon entropy.
func Entropy(preferences [][]float64) Location {
	return func(wv *wave.Wave) (x, y int) {
		return selectMin(wv, func(wv *wave.Wave, x, y int) float64 {
			return preferences[x][y] + float64(wv.CountAt(x, y))
		})
	}
}

// selectMin walks cells in (x outer, y inner) order for a stable row-major
// tie-break, scoring each unresolved cell with weight, and returns the
// coordinates of the minimum. Resolved cells (CountAt <= 1) are treated
// as +Inf and never selected.
func selectMin(wv *wave.Wave, weight func(wv *wave.Wave, x, y int) float64) (int, int) {
	_, w, h := wv.Dims()

	bestX, bestY := -1, -1
	bestScore := math.Inf(1)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if wv.CountAt(x, y) <= 1 {
				continue
			}
			score := weight(wv, x, y)
			if score < bestScore {
				bestScore = score
				bestX, bestY = x, y
			}
		}
	}
	if bestX == -1 {
		panic("heuristics: Location heuristic called on a fully resolved wave")
	}

	return bestX, bestY
}
