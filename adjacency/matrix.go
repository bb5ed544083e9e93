package adjacency

// boolMatrix is a dense, row-major N×N boolean matrix: boolMatrix.At(p, q)
// answers "may pattern q neighbor pattern p along this direction?". A
// flat backing slice addressed through a single indexOf helper keeps one
// matrix allocation per direction instead of N nested slices.
type boolMatrix struct {
	n    int
	data []bool // row-major, length n*n
}

// newBoolMatrix allocates an n×n matrix with every entry false.
// Complexity: O(n^2).
func newBoolMatrix(n int) *boolMatrix {
	return &boolMatrix{n: n, data: make([]bool, n*n)}
}

// indexOf computes the flat offset for (row, col); callers within this
// package have already range-checked row/col against n during Build, so
// this stays a simple multiply-add rather than a bounds-checked lookup.
// Complexity: O(1).
func (m *boolMatrix) indexOf(row, col int) int {
	return row*m.n + col
}

// set marks row -> col as permitted.
// Complexity: O(1).
func (m *boolMatrix) set(row, col int) {
	m.data[m.indexOf(row, col)] = true
}

// at reports whether row -> col is permitted.
// Complexity: O(1).
func (m *boolMatrix) at(row, col int) bool {
	return m.data[m.indexOf(row, col)]
}
