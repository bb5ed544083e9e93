package search

import (
	"bytes"
	"fmt"
)

// Result is a solve's successful output. Grid is indexed [x][y], matching
// wave.Wave's own (x,y) addressing; Grid[x][y] holds the unique pattern
// index resolved at that cell.
type Result struct {
	Grid [][]int
}

// Width reports the grid's extent along x.
func (r *Result) Width() int { return len(r.Grid) }

// Height reports the grid's extent along y, or 0 for an empty grid.
func (r *Result) Height() int {
	if len(r.Grid) == 0 {
		return 0
	}

	return len(r.Grid[0])
}

// Rows returns the grid transposed to [y][x] string rows, the shape
// cmd/wfcdemo's tablewriter rendering wants.
func (r *Result) Rows() [][]string {
	w, h := r.Width(), r.Height()
	rows := make([][]string, h)
	for y := 0; y < h; y++ {
		row := make([]string, w)
		for x := 0; x < w; x++ {
			row[x] = fmt.Sprintf("%d", r.Grid[x][y])
		}
		rows[y] = row
	}

	return rows
}

// String renders the grid one row of y per line, for debugging and test
// failure output.
func (r *Result) String() string {
	var buf bytes.Buffer
	for _, row := range r.Rows() {
		for i, cell := range row {
			if i > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(cell)
		}
		buf.WriteByte('\n')
	}

	return buf.String()
}
