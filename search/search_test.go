// Package search_test holds integration tests for the observe-propagate-
// backtrack driver.
package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gridwave/wfc/adjacency"
	"github.com/gridwave/wfc/search"
	"github.com/gridwave/wfc/wave"
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

// TestRunNonPeriodicLexical checks that a 3x4, non-periodic solve with
// the default heuristics and no backtracking resolves in a single
// choice to the exact checkerboard.
func TestRunNonPeriodicLexical(t *testing.T) {
	model := checkerboardModel(t)
	wv, err := wave.Create(3, 3, 4)
	require.NoError(t, err)

	var choices [][3]int
	hooks := search.Hooks{
		OnChoice: func(p, x, y int) { choices = append(choices, [3]int{p, x, y}) },
	}

	result, err := search.Run(wv, model, search.WithHooks(hooks))
	require.NoError(t, err)
	require.Equal(t, [][3]int{{0, 0, 0}}, choices)

	want := [][]int{
		{0, 1, 0, 1},
		{1, 0, 1, 0},
		{0, 1, 0, 1},
	}
	require.Equal(t, want, result.Grid)
}

// TestRunPeriodicBacktracksToSolidFill checks that a periodic 3x4 grid
// makes the 0/1 checkerboard unsatisfiable (width 3 is odd), so the
// first choice of pattern 0 is backtracked and the solver converges on
// the all-pattern-2 solid fill instead.
func TestRunPeriodicBacktracksToSolidFill(t *testing.T) {
	model := checkerboardModel(t)
	wv, err := wave.Create(3, 3, 4)
	require.NoError(t, err)

	var log []string
	hooks := search.Hooks{
		OnChoice:    func(p, x, y int) { log = append(log, "choice") },
		OnBacktrack: func() { log = append(log, "backtrack") },
	}

	result, err := search.Run(wv, model,
		search.WithPeriodic(true),
		search.WithBacktracking(true),
		search.WithHooks(hooks),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"choice", "backtrack"}, log)

	for x := 0; x < 3; x++ {
		for y := 0; y < 4; y++ {
			require.Equal(t, 2, result.Grid[x][y], "cell (%d,%d)", x, y)
		}
	}
}

// TestRunFeasibilityRejectionIsUnrecoverable installs a feasibility
// predicate that demands the wave never lose a single possibility
// (total_count >= N*W*H). The first commit alone already violates it, so
// the one backtrack available is exhausted and Contradiction surfaces.
func TestRunFeasibilityRejectionIsUnrecoverable(t *testing.T) {
	model := checkerboardModel(t)
	wv, err := wave.Create(3, 3, 4)
	require.NoError(t, err)
	full := wv.TotalCount() // N*W*H, the only total_count that ever passes

	var log []string
	hooks := search.Hooks{
		OnChoice:      func(p, x, y int) { log = append(log, "choice") },
		OnBacktrack:   func() { log = append(log, "backtrack") },
		CheckFeasible: func(wv *wave.Wave) bool { return wv.TotalCount() >= full },
	}

	_, err = search.Run(wv, model,
		search.WithPeriodic(true),
		search.WithBacktracking(true),
		search.WithHooks(hooks),
	)
	require.ErrorIs(t, err, search.ErrContradiction)
	require.Equal(t, []string{"choice", "backtrack"}, log)
}

// TestRunWithoutBacktrackingSurfacesContradiction checks that a periodic
// grid where the checkerboard is unsatisfiable fails immediately when
// backtracking is disabled, never retrying.
func TestRunWithoutBacktrackingSurfacesContradiction(t *testing.T) {
	model := checkerboardModel(t)
	wv, err := wave.Create(3, 3, 4)
	require.NoError(t, err)

	var backtracks int
	hooks := search.Hooks{OnBacktrack: func() { backtracks++ }}

	_, err = search.Run(wv, model, search.WithPeriodic(true), search.WithHooks(hooks))
	require.ErrorIs(t, err, search.ErrContradiction)
	require.Zero(t, backtracks)
}

// TestRunInvalidLocationHeuristic checks that a Location heuristic
// returning an already-resolved cell is reported as ErrInvalidInput, not
// Contradiction. The model lets every pattern neighbor every other, so
// pinning (0,0) leaves (1,0) unresolved and the heuristic is consulted.
func TestRunInvalidLocationHeuristic(t *testing.T) {
	all := [][]int{{0, 1, 2}, {0, 1, 2}, {0, 1, 2}}
	model, err := adjacency.Build(map[adjacency.Direction][][]int{
		{DX: 1, DY: 0}:  all,
		{DX: -1, DY: 0}: all,
	})
	require.NoError(t, err)
	wv, err := wave.Create(3, 2, 1)
	require.NoError(t, err)
	wv.ClearExcept(0, 0, 0)

	badLocation := func(wv *wave.Wave) (int, int) { return 0, 0 }

	_, err = search.Run(wv, model, search.WithLocationHeuristic(badLocation))
	require.ErrorIs(t, err, search.ErrInvalidInput)
}

// TestRunRespectsCancelledContext checks that an already cancelled
// context is observed before the first propagate and reported as
// ErrCancelled rather than attempting any work.
func TestRunRespectsCancelledContext(t *testing.T) {
	model := checkerboardModel(t)
	wv, err := wave.Create(3, 3, 4)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err = search.Run(wv, model, search.WithContext(ctx))
	require.ErrorIs(t, err, search.ErrCancelled)
}

// TestRunWithZeroValueHooks checks that an entirely unset Hooks value
// (every callback nil) is a valid default, not a panic.
func TestRunWithZeroValueHooks(t *testing.T) {
	model := checkerboardModel(t)
	wv, err := wave.Create(3, 1, 1)
	require.NoError(t, err)

	result, err := search.Run(wv, model)
	require.NoError(t, err)
	require.NotNil(t, result)
}
