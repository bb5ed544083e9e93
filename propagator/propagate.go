package propagator

import (
	"github.com/gridwave/wfc/adjacency"
	"github.com/gridwave/wfc/wave"
)

// Stats reports how a Propagate call converged, used by search's tracing
// and by cmd/wfcdemo's verbose output — a rich result struct instead of
// a bare side effect, so callers can log convergence without re-deriving
// it from Wave state.
type Stats struct {
	// Sweeps counts the number of fixpoint iterations performed,
	// including the final one that detected no further change.
	Sweeps int
	// FinalCount is Wave.TotalCount() once the fixpoint was reached.
	FinalCount int
}

// Propagate tightens wv to a directional arc-consistency fixpoint under
// model, honoring the periodic/non-periodic boundary policy described in
// the package doc. It returns ErrContradiction if any cell is left with
// zero possible patterns, either on entry or after the fixpoint sweep.
// Complexity: O(sweeps * D * W*H * N^2).
func Propagate(wv *wave.Wave, model *adjacency.Model, periodic bool) error {
	_, err := PropagateWithStats(wv, model, periodic)

	return err
}

// PropagateWithStats behaves like Propagate but also reports Stats.
func PropagateWithStats(wv *wave.Wave, model *adjacency.Model, periodic bool) (Stats, error) {
	if wv.Contradicted() {
		return Stats{}, wave.ErrContradiction
	}

	n, width, height := wv.Dims()
	cells := wv.Cells()
	directions := model.Directions()

	anySupport := make(map[adjacency.Direction][]bool, len(directions))
	for _, d := range directions {
		anySupport[d] = supportedColumn(model, d, n)
	}

	sweeps := 0
	prevCount := wv.TotalCount()
	for {
		sweeps++
		if len(directions) == 0 {
			// An empty direction set makes propagation a no-op.
			break
		}

		accum := make([][]uint64, n)
		for p := range accum {
			accum[p] = newFullMask(cells)
		}

		for _, d := range directions {
			dirSupport := directionSupport(wv, model, d, anySupport[d], n, width, height, cells, periodic)
			for q := 0; q < n; q++ {
				andMask(accum[q], dirSupport[q])
			}
		}

		for p := 0; p < n; p++ {
			wv.IntersectPattern(p, accum[p])
		}

		newCount := wv.TotalCount()
		if newCount == prevCount {
			break
		}
		prevCount = newCount
	}

	stats := Stats{Sweeps: sweeps, FinalCount: prevCount}
	if wv.Contradicted() {
		return stats, wave.ErrContradiction
	}

	return stats, nil
}

// directionSupport computes, for every cell and every pattern q, whether
// q is supported along direction d: support_d[q][x][y] = OR over p of
// (shifted[p][x][y] AND M[d][p][q]), where shifted reads the wave at
// (x-dx, y-dy) under the chosen boundary policy, so that q is checked as
// the pattern sitting at offset d from the neighbor's pattern p.
func directionSupport(wv *wave.Wave, model *adjacency.Model, d adjacency.Direction, anySupport []bool, n, width, height, cells int, periodic bool) [][]uint64 {
	dirSupport := make([][]uint64, n)
	for q := range dirSupport {
		dirSupport[q] = newMask(cells)
	}

	for idx := 0; idx < cells; idx++ {
		x, y := wv.Coordinate(idx)
		sx, sy := x-d.DX, y-d.DY

		if periodic {
			sx, sy = mod(sx, width), mod(sy, height)
		} else if !wv.InBounds(sx, sy) {
			// Out-of-bounds, non-periodic: impose no constraint — every
			// pattern q that any p could ever support is "possible".
			for q := 0; q < n; q++ {
				if anySupport[q] {
					setMaskBit(dirSupport[q], idx)
				}
			}
			continue
		}

		for p := 0; p < n; p++ {
			if !wv.Possible(sx, sy, p) {
				continue
			}
			for q := 0; q < n; q++ {
				if model.Allowed(d, p, q) {
					setMaskBit(dirSupport[q], idx)
				}
			}
		}
	}

	return dirSupport
}

// supportedColumn precomputes, for direction d, which patterns q are
// permitted as a neighbor of at least one pattern p — the set a fully
// unconstrained (out-of-bounds, non-periodic) neighbor would support.
func supportedColumn(model *adjacency.Model, d adjacency.Direction, n int) []bool {
	col := make([]bool, n)
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			if model.Allowed(d, p, q) {
				col[q] = true
			}
		}
	}

	return col
}
