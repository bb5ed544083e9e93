package search

import (
	"errors"

	"github.com/gridwave/wfc/wave"
)

var (
	// ErrContradiction is returned when Run reaches a contradiction it
	// cannot undo: with backtracking enabled, once every alternative has
	// been exhausted; without it, at the first contradiction, even if
	// other choices would have led to a solution. It is
	// wave.ErrContradiction re-exported so callers can
	// errors.Is against either package.
	ErrContradiction = wave.ErrContradiction

	// ErrInvalidInput marks a programmer error in a supplied heuristic or
	// option, never a solving failure.
	ErrInvalidInput = wave.ErrInvalidInput

	// ErrCancelled is returned when the context.Context passed via
	// WithContext is done before Run finishes. It is deliberately
	// distinct from ErrContradiction: a cancelled solve said nothing
	// about whether a solution exists.
	ErrCancelled = errors.New("search: cancelled")
)
