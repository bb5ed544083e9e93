package adjacency

import (
	"fmt"
	"sort"
)

// Model is the built, read-only adjacency relation: for each Direction d,
// Model.Allowed(d, p, q) answers whether pattern q is permitted at offset
// d from pattern p. Construct with Build.
type Model struct {
	n          int
	matrices   map[Direction]*boolMatrix
	directions []Direction
}

// N returns the pattern count the Model was built for.
// Complexity: O(1).
func (m *Model) N() int {
	return m.n
}

// Directions returns the directions the Model was built with, sorted
// lexicographically by (DX, DY) for reproducible iteration order.
// Complexity: O(1) — the slice is precomputed once in Build.
func (m *Model) Directions() []Direction {
	return m.directions
}

// Allowed reports whether pattern q may occupy the cell at offset d from
// a cell holding pattern p. Direction d must be one Build was called
// with; an unknown direction reports false.
// Complexity: O(1).
func (m *Model) Allowed(d Direction, p, q int) bool {
	mat, ok := m.matrices[d]
	if !ok {
		return false
	}

	return mat.at(p, q)
}

// Build constructs the dense per-direction permission matrices from
// adjacency lists: adjLists[d][p] lists every pattern permitted as a
// neighbor at offset d from pattern p. Build fails with ErrInvalidInput
// if the per-direction lists disagree on N (the outer slice length) or if
// any referenced pattern index is out of [0, N).
// Complexity: O(D*N^2) time and memory, where D is the number of
// directions and N the pattern count.
func Build(adjLists map[Direction][][]int) (*Model, error) {
	if len(adjLists) == 0 {
		return nil, fmt.Errorf("%w: Build: no directions supplied", ErrInvalidInput)
	}

	n := -1
	directions := make([]Direction, 0, len(adjLists))
	for d := range adjLists {
		directions = append(directions, d)
	}
	sort.Slice(directions, func(i, j int) bool { return directions[i].less(directions[j]) })

	matrices := make(map[Direction]*boolMatrix, len(adjLists))
	for _, d := range directions {
		neighborLists := adjLists[d]
		if n == -1 {
			n = len(neighborLists)
		} else if len(neighborLists) != n {
			return nil, fmt.Errorf("%w: Build: direction %+v has %d patterns, want %d", ErrInvalidInput, d, len(neighborLists), n)
		}

		mat := newBoolMatrix(n)
		for p, allowed := range neighborLists {
			for _, q := range allowed {
				if q < 0 || q >= n {
					return nil, fmt.Errorf("%w: Build: direction %+v pattern %d lists out-of-range neighbor %d", ErrInvalidInput, d, p, q)
				}
				mat.set(p, q)
			}
		}
		matrices[d] = mat
	}

	return &Model{n: n, matrices: matrices, directions: directions}, nil
}
