package wfclog

import "github.com/rs/zerolog"

// Logger wraps a zerolog.Logger with the handful of events the solver
// emits. Its zero value is not usable; construct one with New or Nop.
type Logger struct {
	z zerolog.Logger
}

// New wraps an existing zerolog.Logger.
func New(z zerolog.Logger) Logger {
	return Logger{z: z}
}

// Nop returns a Logger that discards everything, the default wired into
// search.Config when no logger is supplied via WithLogger.
func Nop() Logger {
	return Logger{z: zerolog.Nop()}
}

// Sweep records one propagator.PropagateWithStats call.
func (l Logger) Sweep(runID string, sweeps, finalCount int) {
	l.z.Debug().
		Str("run_id", runID).
		Int("sweeps", sweeps).
		Int("final_count", finalCount).
		Msg("propagate converged")
}

// Choice records a committed (pattern, x, y) observation.
func (l Logger) Choice(runID string, p, x, y int) {
	l.z.Debug().
		Str("run_id", runID).
		Int("pattern", p).
		Int("x", x).
		Int("y", y).
		Msg("choice")
}

// Backtrack records that a contradiction was recovered by undoing one
// choice.
func (l Logger) Backtrack(runID string) {
	l.z.Debug().Str("run_id", runID).Msg("backtrack")
}

// Contradiction records a propagate failure, whether or not it was later
// recovered by a backtrack.
func (l Logger) Contradiction(runID string, err error) {
	l.z.Debug().Str("run_id", runID).Err(err).Msg("contradiction")
}

// Result records a successful solve.
func (l Logger) Result(runID string, sweeps int) {
	l.z.Info().Str("run_id", runID).Int("sweeps", sweeps).Msg("solved")
}
