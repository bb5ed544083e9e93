// Package propagator_test holds unit tests for the fixpoint propagator.
package propagator_test

import (
	"testing"

	"github.com/gridwave/wfc/adjacency"
	"github.com/gridwave/wfc/propagator"
	"github.com/gridwave/wfc/wave"
	"github.com/stretchr/testify/require"
)

// checkerboardModel builds a three-pattern model where pattern 0 and 1
// alternate on the four cardinals, and pattern 2 only neighbors itself.
func checkerboardModel(t *testing.T) *adjacency.Model {
	t.Helper()
	lists := [][]int{{1}, {0}, {2}}
	m, err := adjacency.Build(map[adjacency.Direction][][]int{
		{DX: 1, DY: 0}:  lists,
		{DX: -1, DY: 0}: lists,
		{DX: 0, DY: 1}:  lists,
		{DX: 0, DY: -1}: lists,
	})
	require.NoError(t, err)

	return m
}

// TestPropagateCheckerboard checks that pinning (0,0) to pattern 0 on a
// 3x4 grid propagates to the exact checkerboard, with pattern 2
// eliminated everywhere.
func TestPropagateCheckerboard(t *testing.T) {
	model := checkerboardModel(t)
	wv, err := wave.Create(3, 3, 4)
	require.NoError(t, err)
	wv.ClearExcept(0, 0, 0)

	require.NoError(t, propagator.Propagate(wv, model, false))

	for x := 0; x < 3; x++ {
		for y := 0; y < 4; y++ {
			wantPattern := 0
			if (x+y)%2 == 1 {
				wantPattern = 1
			}
			p, ok := wv.ResolvedPattern(x, y)
			require.True(t, ok, "cell (%d,%d) should be resolved", x, y)
			require.Equal(t, wantPattern, p, "cell (%d,%d)", x, y)
			require.False(t, wv.Possible(x, y, 2), "pattern 2 should be eliminated at (%d,%d)", x, y)
		}
	}
}

// TestPropagateIdempotent verifies that a second call on an already
// propagated wave leaves it unchanged.
func TestPropagateIdempotent(t *testing.T) {
	model := checkerboardModel(t)
	wv, err := wave.Create(3, 3, 4)
	require.NoError(t, err)
	wv.ClearExcept(0, 0, 0)
	require.NoError(t, propagator.Propagate(wv, model, false))

	before := wv.Snapshot()
	require.NoError(t, propagator.Propagate(wv, model, false))
	require.True(t, wv.Equal(before))
}

// TestPropagateMonotone verifies that TotalCount never increases across
// a single Propagate call.
func TestPropagateMonotone(t *testing.T) {
	model := checkerboardModel(t)
	wv, err := wave.Create(3, 3, 4)
	require.NoError(t, err)
	before := wv.TotalCount()
	wv.ClearExcept(1, 1, 1)

	require.NoError(t, propagator.Propagate(wv, model, false))
	require.LessOrEqual(t, wv.TotalCount(), before)
}

// TestPropagateContradictionOnEntry reports Contradiction immediately
// when the wave is already empty somewhere when Propagate is called.
func TestPropagateContradictionOnEntry(t *testing.T) {
	model := checkerboardModel(t)
	wv, err := wave.Create(3, 2, 2)
	require.NoError(t, err)
	wv.Forbid(0, 0, 0)
	wv.Forbid(0, 0, 1)
	wv.Forbid(0, 0, 2)

	err = propagator.Propagate(wv, model, false)
	require.ErrorIs(t, err, propagator.ErrContradiction)
}

// TestPropagateNonPeriodicBorderUnconstrained checks a critical boundary
// case: a lone cell with no neighbors in a 1x1 grid never loses a
// pattern under the non-periodic policy, because every out-of-bounds
// direction is treated as fully unconstrained.
func TestPropagateNonPeriodicBorderUnconstrained(t *testing.T) {
	model := checkerboardModel(t)
	wv, err := wave.Create(3, 1, 1)
	require.NoError(t, err)

	require.NoError(t, propagator.Propagate(wv, model, false))
	require.Equal(t, 3, wv.CountAt(0, 0))
}

// TestPropagateWithStatsReportsSweeps checks that PropagateWithStats
// reports at least one sweep and the final converged count.
func TestPropagateWithStatsReportsSweeps(t *testing.T) {
	model := checkerboardModel(t)
	wv, err := wave.Create(3, 3, 4)
	require.NoError(t, err)
	wv.ClearExcept(0, 0, 0)

	stats, err := propagator.PropagateWithStats(wv, model, false)
	require.NoError(t, err)
	require.GreaterOrEqual(t, stats.Sweeps, 1)
	require.Equal(t, wv.TotalCount(), stats.FinalCount)
}

// TestPropagatePeriodicWraps checks that a periodic 2x2 grid with the
// checkerboard model resolves using wrap-around neighbors on every side.
// (A height of 1 would make each cell its own vertical neighbor, which
// the checkerboard model forbids.)
func TestPropagatePeriodicWraps(t *testing.T) {
	model := checkerboardModel(t)
	wv, err := wave.Create(3, 2, 2)
	require.NoError(t, err)
	wv.ClearExcept(0, 0, 0)

	require.NoError(t, propagator.Propagate(wv, model, true))
	p, ok := wv.ResolvedPattern(1, 0)
	require.True(t, ok)
	require.Equal(t, 1, p)
}
