// Package wfc is a grid-based Wave Function Collapse solver.
//
// A solve has three ingredients: a possibility tensor (package wave), an
// adjacency model describing which patterns may sit next to which
// (package adjacency), and a driver that repeatedly narrows the tensor to
// a fixpoint and, where that alone doesn't finish the job, picks a cell
// and commits to a pattern there (package propagator, package search).
// Package heuristics supplies the pluggable strategies the driver uses to
// make those picks, and package wfclog is the structured-logging facade
// the driver and the cmd/wfcdemo CLI both trace through.
//
// Solve wires the core packages together for the common case: build a
// model, create a wave, run the driver. Callers who need periodic
// boundaries, backtracking, custom heuristics, or observer hooks should
// call search.Run directly with the relevant search.Option values
// instead.
//
//	adjacency/   — matrices describing which pattern may occupy a cell,
//	               given the pattern occupying its neighbor
//	wave/        — the mutable possibility tensor and its bit-packed
//	               representation
//	propagator/  — the fixpoint arc-consistency sweep
//	heuristics/  — pluggable cell and pattern selection strategies
//	search/      — the observe-propagate-backtrack driver and its hooks
//	wfclog/      — structured tracing over zerolog
//	cmd/wfcdemo/ — a CLI that solves a preset scenario and prints the grid
package wfc
