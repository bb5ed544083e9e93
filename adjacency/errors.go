package adjacency

import "errors"

// ErrInvalidInput indicates Build was called with adjacency lists that
// disagree on N across directions, or that reference an out-of-range
// pattern index — a programmer error, not a solving failure.
var ErrInvalidInput = errors.New("adjacency: invalid input")
