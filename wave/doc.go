// Package wave owns the mutable possibility tensor at the heart of the
// solver: a boolean cube shaped [N][W][H] where wave[p][x][y] is true iff
// pattern p is still possible at cell (x,y).
//
// The tensor is stored bit-packed — one []uint64 bitset per pattern, each
// bitset addressing W*H cells in row-major order — so that the propagator
// can intersect whole directions with 64-bit word operations instead of
// per-cell branching. This trades a dense, one-value-per-cell matrix for
// one packed bit per cell, while keeping the same row-major addressing
// (index(x,y) = y*Width + x) that the propagator's scratch masks use.
//
// Wave is created once per solve via Create, mutated exclusively by the
// propagator and the search driver's commit step, and destroyed when the
// search returns. Snapshot/Restore give backtracking a cheap, independent
// copy of the tensor to recover to.
package wave
