// Package adjacency stores, per direction, which patterns may neighbor
// which: a mapping D -> N×N boolean matrix, built once from caller-supplied
// adjacency lists and read-only thereafter.
//
// Each per-direction matrix is a flat, row-major backing slice of bool
// whose indices Build range-checks once, since M[d][p][q] is a pure permission relation rather
// than a numeric quantity.
package adjacency
