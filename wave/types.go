package wave

import "fmt"

// Wave is the mutable possibility tensor described in the package doc:
// N bit-packed planes, one per pattern, each addressing W*H cells in
// row-major order. The zero value is not usable; construct with Create.
type Wave struct {
	grid
	n     int
	bits  [][]uint64 // bits[p] is the possibility bitset for pattern p
	cellN int        // cached grid.cells(), avoids recomputing on hot paths
}

// config accumulates Option values before Create validates and applies
// them. Unexported: the config struct never escapes the constructor.
type config struct {
	ground    int
	hasGround bool
}

// Option configures Wave construction. Options are applied left to right
// before any validation occurs, so a later option may override an earlier
// one; Create is the single place invalid combinations are rejected.
type Option func(*config)

// Ground pins column y = H-1 to pattern index g: every other pattern is
// cleared there, leaving g as the sole possibility along the bottom row.
// Create reports ErrInvalidInput if g is out of range for the requested N.
func Ground(g int) Option {
	return func(c *config) {
		c.ground = g
		c.hasGround = true
	}
}

// Create returns a Wave of shape [n][w][h] with every entry true, except
// that if Ground(g) was supplied, column y = H-1 keeps only pattern g
// true. n, w, h must be positive, and a ground index, if given, must lie
// in [0, n).
// Complexity: O(N*W*H/64) time and memory.
func Create(n, w, h int, opts ...Option) (*Wave, error) {
	if n <= 0 || w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: Create(n=%d, w=%d, h=%d): dimensions must be positive", ErrInvalidInput, n, w, h)
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hasGround && (cfg.ground < 0 || cfg.ground >= n) {
		return nil, fmt.Errorf("%w: Create: ground pattern %d out of range [0,%d)", ErrInvalidInput, cfg.ground, n)
	}

	g := grid{width: w, height: h}
	cellN := g.cells()
	bits := make([][]uint64, n)
	for p := 0; p < n; p++ {
		bits[p] = newFullBitset(cellN)
	}

	wv := &Wave{grid: g, n: n, bits: bits, cellN: cellN}
	if cfg.hasGround {
		wv.applyGround(cfg.ground)
	}

	return wv, nil
}

// applyGround clears every pattern but g along the bottom row (y = H-1).
// Complexity: O(N*W).
func (wv *Wave) applyGround(g int) {
	y := wv.height - 1
	for x := 0; x < wv.width; x++ {
		idx := wv.index(x, y)
		for p := 0; p < wv.n; p++ {
			if p == g {
				setBit(wv.bits[p], idx)
			} else {
				clearBit(wv.bits[p], idx)
			}
		}
	}
}

// Dims returns the pattern count and grid dimensions the Wave was created
// with. Complexity: O(1).
func (wv *Wave) Dims() (n, w, h int) {
	return wv.n, wv.width, wv.height
}
