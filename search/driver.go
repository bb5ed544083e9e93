package search

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/gridwave/wfc/adjacency"
	"github.com/gridwave/wfc/propagator"
	"github.com/gridwave/wfc/wave"
)

// frame records one committed choice: the wave snapshot taken just
// before that choice's own propagate/observe step ran, and the
// (pattern, x, y) that was tried. Backtracking undoes exactly one frame
// at a time — restoring its snapshot, then forbidding its pattern —
// which is what lets a contradiction raised deep in the search bubble up
// one committed choice at a time rather than unwinding everything at
// once.
type frame struct {
	snapshot *wave.Wave
	pattern  int
	x, y     int
}

// Run executes the observe-propagate-backtrack loop. wv is mutated in
// place and left in an undefined state on error; on
// success it is left fully resolved and also returned, rendered, via
// Result.
//
// Run returns ErrContradiction on a contradiction (a failed propagate or
// a rejecting CheckFeasible hook) when backtracking is disabled or every
// backtrack has been exhausted, ErrCancelled if the context installed via WithContext is
// done, or ErrInvalidInput if a supplied Location heuristic returns an
// already-resolved cell.
func Run(wv *wave.Wave, model *adjacency.Model, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hooks.RunID == "" {
		cfg.hooks.RunID = uuid.NewString()
	}

	var stack []frame

	// backtrack undoes the most recent commit: restore its pre-choice
	// snapshot, forbid the pattern that was tried there, and report
	// whether it did so. It reports false when backtracking is disabled
	// or nothing is left to undo, meaning the contradiction must surface
	// to the caller.
	backtrack := func() bool {
		if !cfg.backtracking || len(stack) == 0 {
			return false
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cfg.hooks.onBacktrack()
		cfg.logger.Backtrack(cfg.hooks.RunID)
		wv.Restore(top.snapshot)
		wv.Forbid(top.x, top.y, top.pattern)

		return true
	}

	for {
		if err := cfg.ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCancelled, err)
		}

		if !cfg.hooks.checkFeasible(wv) {
			if backtrack() {
				continue
			}

			return nil, ErrContradiction
		}

		var snapshot *wave.Wave
		if cfg.backtracking {
			snapshot = wv.Snapshot()
		}

		stats, err := propagator.PropagateWithStats(wv, model, cfg.periodic)
		cfg.logger.Sweep(cfg.hooks.RunID, stats.Sweeps, stats.FinalCount)
		if err != nil {
			cfg.logger.Contradiction(cfg.hooks.RunID, err)
			if backtrack() {
				continue
			}

			return nil, ErrContradiction
		}

		if wv.AllResolved() {
			cfg.logger.Result(cfg.hooks.RunID, stats.Sweeps)

			return buildResult(wv), nil
		}

		x, y := cfg.location(wv)
		if wv.CountAt(x, y) <= 1 {
			return nil, fmt.Errorf("%w: location heuristic returned an already-resolved cell (%d,%d)", ErrInvalidInput, x, y)
		}
		p := cfg.pattern(wv.WeightsAt(x, y))

		cfg.hooks.onChoice(p, x, y)
		cfg.logger.Choice(cfg.hooks.RunID, p, x, y)
		wv.ClearExcept(x, y, p)

		if cfg.backtracking {
			stack = append(stack, frame{snapshot: snapshot, pattern: p, x: x, y: y})
		}
	}
}

func buildResult(wv *wave.Wave) *Result {
	_, w, h := wv.Dims()
	grid := make([][]int, w)
	for x := 0; x < w; x++ {
		grid[x] = make([]int, h)
		for y := 0; y < h; y++ {
			p, _ := wv.ResolvedPattern(x, y)
			grid[x][y] = p
		}
	}

	return &Result{Grid: grid}
}
