package propagator

import "github.com/gridwave/wfc/wave"

// ErrContradiction re-exports wave.ErrContradiction so callers can write
// errors.Is(err, propagator.ErrContradiction) without importing wave
// directly, while both packages agree on the same sentinel value.
var ErrContradiction = wave.ErrContradiction
