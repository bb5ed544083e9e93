package wave

// grid carries the row-major addressing shared by every cell-indexed
// operation in this package: an index(x,y) = y*Width+x mapping plus
// bounds checking. It has no neighbor offsets of its own (those belong
// to the adjacency model's directions); it only keeps Wave and the
// propagator agreeing on cell order.
type grid struct {
	width, height int
}

// cells reports the total number of addressable cells, W*H.
// Complexity: O(1).
func (g grid) cells() int {
	return g.width * g.height
}

// inBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (g grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// index maps (x,y) to its row-major cell index, y*Width+x.
// Complexity: O(1).
func (g grid) index(x, y int) int {
	return y*g.width + x
}

// coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g grid) coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}
