// Package search implements the observe-propagate-backtrack driver.
// Run repeatedly propagates a wave.Wave to a propagator fixpoint, picks
// the next cell and pattern to commit via a pair of
// heuristics.Location/heuristics.Pattern heuristics, and either emits a
// fully resolved grid or, on contradiction, undoes the most recent
// commit and tries again when backtracking is enabled (otherwise the
// contradiction is returned).
//
// The driver uses an explicit work stack rather than native recursion:
// each entry records one committed choice and the wave snapshot taken
// just before it, so a contradiction can restore exactly the state that
// choice mutated. A contradiction raised before any choice has been
// committed at all — an infeasible starting wave, or a feasibility hook
// that rejects the very first frame — is unrecoverable and surfaces to
// the caller, since there is nothing on the stack left to undo.
package search
