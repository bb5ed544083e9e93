// Package propagator tightens a Wave to a directional arc-consistency
// fixpoint: repeated sweeps that intersect every cell's possibilities
// with the support each neighboring direction still offers, until a
// sweep changes nothing or some cell is driven empty.
//
// Boundary policy matters: periodic grids wrap, but non-periodic
// out-of-bounds neighbors impose no constraint at all
// (treated as "every pattern possible there"), never as "nothing is
// possible there" — a constant-false border would wrongly eliminate
// patterns along the grid's edge.
package propagator
