package wave

import "errors"

// Sentinel errors for wave operations. search re-exports both and
// propagator re-exports ErrContradiction, so a caller can distinguish a
// contradiction from "you called the API incorrectly" via errors.Is
// regardless of which of those packages detected the condition.
var (
	// ErrInvalidInput indicates a programmer error: a bad dimension, an
	// out-of-range ground index, or a location heuristic that search.Run
	// finds returning an already-resolved cell. Propagation never raises
	// it.
	ErrInvalidInput = errors.New("wave: invalid input")

	// ErrContradiction indicates some cell has zero possible patterns.
	// Wave itself never raises this; it is the shared sentinel that
	// propagator and search report through.
	ErrContradiction = errors.New("wave: contradiction")
)
