package wfc

import (
	"github.com/gridwave/wfc/adjacency"
	"github.com/gridwave/wfc/search"
	"github.com/gridwave/wfc/wave"
)

// Solve creates an n-pattern, w×h wave (with no ground row) and runs the
// search driver on it, passing opts through to search.Run unchanged; with
// no opts that is the non-periodic, non-backtracking driver with the
// default heuristics. It returns search.ErrContradiction when the driver
// reaches a contradiction it cannot undo.
func Solve(n, w, h int, model *adjacency.Model, opts ...search.Option) (*search.Result, error) {
	wv, err := wave.Create(n, w, h)
	if err != nil {
		return nil, err
	}

	return search.Run(wv, model, opts...)
}
