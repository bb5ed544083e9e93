package heuristics

import "github.com/gridwave/wfc/wave"

// Location selects the next cell to observe; it must return a cell with
// CountAt > 1. The search driver treats a Location that returns a
// resolved cell as an ErrInvalidInput — a programmer error in the
// supplied heuristic, not a solving failure.
type Location func(wv *wave.Wave) (x, y int)

// Pattern selects which still-possible pattern to commit at the cell the
// Location heuristic chose, given that cell's raw possibility vector
// (wave.WeightsAt(x, y)).
type Pattern func(weights []bool) (p int)
