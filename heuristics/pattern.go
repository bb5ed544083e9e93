package heuristics

// LexicalPattern returns the smallest pattern index still possible —
// equivalently, the first true entry in weights. It is the canonical,
// test-reproducible default and panics if weights holds no true entry,
// since the search driver only calls a Pattern heuristic on a cell
// Location just confirmed has CountAt > 1.
func LexicalPattern(weights []bool) int {
	for p, possible := range weights {
		if possible {
			return p
		}
	}
	panic("heuristics: LexicalPattern called with no possible pattern")
}
