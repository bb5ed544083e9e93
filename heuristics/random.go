package heuristics

import (
	"fmt"
	"math/rand"
)

// WeightedRandomPattern returns a Pattern heuristic that picks among the
// still-possible patterns at a cell with probability proportional to
// weights[p] (typically each pattern's observed frequency from the
// source the adjacency model was extracted from — outside this core's
// scope, but a natural caller-supplied vector). If rng is nil, it falls
// back to LexicalPattern — a deterministic fallback for a nil
// *rand.Rand, rather than panicking.
//
// weights must have the same length as the possibility vectors this
// heuristic will be called with; WeightedRandomPattern panics immediately
// if any weight is negative, since a negative weight can never be a
// programmer's intent for a selection probability.
func WeightedRandomPattern(weights []float64, rng *rand.Rand) Pattern {
	for _, w := range weights {
		if w < 0 {
			panic(fmt.Sprintf("heuristics: WeightedRandomPattern: weight must be >= 0, got %g", w))
		}
	}

	return func(possible []bool) int {
		if rng == nil {
			return LexicalPattern(possible)
		}

		total := 0.0
		for p, ok := range possible {
			if ok && p < len(weights) {
				total += weights[p]
			}
		}
		if total <= 0 {
			return LexicalPattern(possible)
		}

		target := rng.Float64() * total
		acc := 0.0
		for p, ok := range possible {
			if !ok || p >= len(weights) {
				continue
			}
			acc += weights[p]
			if target < acc {
				return p
			}
		}

		return LexicalPattern(possible)
	}
}
