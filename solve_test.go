// Package wfc_test holds an integration test for the top-level Solve
// convenience wrapper.
package wfc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gridwave/wfc"
	"github.com/gridwave/wfc/adjacency"
)

// TestSolveCheckerboard exercises the narrow entry point end to end: a
// model admitting the checkerboard resolves without needing periodic
// boundaries or backtracking.
func TestSolveCheckerboard(t *testing.T) {
	lists := [][]int{{1}, {0}, {2}}
	model, err := adjacency.Build(map[adjacency.Direction][][]int{
		{DX: 1, DY: 0}:  lists,
		{DX: -1, DY: 0}: lists,
		{DX: 0, DY: 1}:  lists,
		{DX: 0, DY: -1}: lists,
	})
	require.NoError(t, err)

	result, err := wfc.Solve(3, 4, 4, model)
	require.NoError(t, err)
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			want := 0
			if (x+y)%2 == 1 {
				want = 1
			}
			require.Equal(t, want, result.Grid[x][y], "cell (%d,%d)", x, y)
		}
	}
}

// TestSolveRejectsZeroPatterns checks that Solve returns an error rather
// than panicking when asked for a wave with no patterns.
func TestSolveRejectsZeroPatterns(t *testing.T) {
	lists := [][]int{{1}, {0}}
	model, err := adjacency.Build(map[adjacency.Direction][][]int{
		{DX: 1, DY: 0}: lists,
	})
	require.NoError(t, err)

	_, err = wfc.Solve(0, 1, 1, model)
	require.Error(t, err) // n=0 is rejected by wave.Create, not the driver
}
