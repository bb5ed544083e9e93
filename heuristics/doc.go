// Package heuristics provides the two orthogonal selection strategies the
// search driver consults each frame: a LocationHeuristic picking which
// cell to observe next, and a PatternHeuristic picking which pattern to
// commit there. Both are pure functions over the current Wave (or, for
// PatternHeuristic, over one cell's possibility vector).
//
// Lexical is the canonical, test-reproducible default for both; Entropy
// adds an additive per-cell preference on top of the possibility count
// (the name is kept by convention even though the formula is simpler
// than Shannon entropy). WeightedRandomPattern picks a still-possible
// pattern proportional to a caller-supplied weight vector, in the style
// of a func(*rand.Rand) float64 weight function: deterministic per seed,
// and falling back to the lexical choice when no *rand.Rand is given.
package heuristics
