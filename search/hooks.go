package search

import "github.com/gridwave/wfc/wave"

// Hooks are the optional observer callbacks a caller can install on a
// Run call. A nil callback is a no-op; hooks are invoked synchronously
// on the calling goroutine, in commit order, so they may safely mutate
// state shared with the caller without their own locking.
type Hooks struct {
	// OnChoice fires after a pattern and cell have been picked but before
	// the cell is committed.
	OnChoice func(p, x, y int)

	// OnBacktrack fires once a contradiction has been caught and is about
	// to be recovered, before the offending choice is forbidden.
	OnBacktrack func()

	// CheckFeasible is queried at the top of every recursion frame,
	// including immediately after a backtrack; returning false fails
	// that frame with a contradiction exactly as a propagate failure
	// would. It is never consulted after a commit — only at the start of
	// a frame, before that frame's own propagate runs.
	CheckFeasible func(wv *wave.Wave) bool

	// RunID correlates every hook invocation and log line produced by a
	// single Run call. Run fills in a fresh one via google/uuid when left
	// blank; hooks are free to ignore it.
	RunID string
}

func (h Hooks) onChoice(p, x, y int) {
	if h.OnChoice != nil {
		h.OnChoice(p, x, y)
	}
}

func (h Hooks) onBacktrack() {
	if h.OnBacktrack != nil {
		h.OnBacktrack()
	}
}

func (h Hooks) checkFeasible(wv *wave.Wave) bool {
	if h.CheckFeasible == nil {
		return true
	}

	return h.CheckFeasible(wv)
}
