package life

import (
	"errors"
	"fmt"

	"lifegrid/internal/core"

	"github.com/cespare/xxhash/v2"
)

var (
	// ErrInvalidDimension is returned when a grid is requested with a
	// non-positive width or height.
	ErrInvalidDimension = errors.New("life: invalid grid dimension")
	// ErrClosed is returned by Close on an already closed grid.
	ErrClosed = errors.New("life: grid closed")
)

// Life implements Conway's Game of Life (B3/S23) on a bounded grid. Cells
// beyond the edges are permanently dead; there is no wraparound.
//
// A Life is owned by a single goroutine. Operations after Close are no-ops.
type Life struct {
	cfg Config
	cur *core.ByteGrid
	nxt *core.ByteGrid
	rng *core.RNG
	gen int
}

// New returns a Life grid of w×h dead cells.
func New(w, h int) (*Life, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Life grid sized and seeded from cfg. All cells start
// dead; call Reset or Fill to seed the board.
func NewWithConfig(cfg Config) (*Life, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, cfg.Width, cfg.Height)
	}
	return &Life{
		cfg: cfg,
		cur: core.NewByteGrid(cfg.Width, cfg.Height),
		nxt: core.NewByteGrid(cfg.Width, cfg.Height),
		rng: core.NewRNG(cfg.Seed),
	}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Width, H: l.cfg.Height} }

// Width returns the number of columns.
func (l *Life) Width() int { return l.cfg.Width }

// Height returns the number of rows.
func (l *Life) Height() int { return l.cfg.Height }

// Config returns the configuration the grid was built from, with Seed and
// Density reflecting the latest Reset and SetIntParameter calls.
func (l *Life) Config() Config { return l.cfg }

// Cells exposes the current generation in row-major order (index y*W+x),
// 1 for alive and 0 for dead. The slice is only valid until the next Step.
func (l *Life) Cells() []uint8 {
	if l.closed() {
		return nil
	}
	return l.cur.Cells()
}

// Generation returns the number of Steps since the board was last seeded or
// cleared.
func (l *Life) Generation() int { return l.gen }

// Population returns the number of live cells.
func (l *Life) Population() int {
	if l.closed() {
		return 0
	}
	return l.cur.Count()
}

// Alive reports whether the cell at (x, y) is alive. Coordinates outside the
// grid report false.
func (l *Life) Alive(x, y int) bool {
	if l.closed() {
		return false
	}
	return l.cur.At(x, y) != 0
}

// Set makes the cell at (x, y) alive or dead. Out-of-range coordinates are
// ignored.
func (l *Life) Set(x, y int, alive bool) {
	if l.closed() {
		return
	}
	var v uint8
	if alive {
		v = 1
	}
	l.cur.Set(x, y, v)
}

// Toggle flips the cell at (x, y). Out-of-range coordinates are ignored, so
// raw pointer positions can be passed straight through.
func (l *Life) Toggle(x, y int) {
	if l.closed() || !l.cur.InBounds(x, y) {
		return
	}
	idx := l.cur.Index(x, y)
	cells := l.cur.Cells()
	cells[idx] ^= 1
}

// Fill seeds every cell independently: alive with probability percent/100,
// drawn from the grid's own random source. percent <= 0 clears the board and
// percent >= 100 fills it.
func (l *Life) Fill(percent int) {
	l.FillFrom(l.rng, percent)
}

// FillFrom is Fill with an explicit random source.
func (l *Life) FillFrom(src core.IntSource, percent int) {
	if l.closed() {
		return
	}
	core.FillPercent(src, l.cur.Cells(), percent)
	l.gen = 0
}

// Clear kills every cell.
func (l *Life) Clear() {
	if l.closed() {
		return
	}
	l.cur.Clear()
	l.gen = 0
}

// Reset reseeds the random source and fills the board at the configured
// density.
func (l *Life) Reset(seed int64) {
	l.cfg.Seed = seed
	l.rng = core.NewRNG(seed)
	l.Fill(l.cfg.Density)
}

// Step advances the simulation by one generation. Next states are computed
// into the scratch buffer from the current buffer only, then the two are
// swapped.
func (l *Life) Step() {
	if l.closed() {
		return
	}
	w, h := l.cfg.Width, l.cfg.Height
	cur := l.cur.Cells()
	nxt := l.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			nxt[idx] = nextState(cur[idx] != 0, l.neighbors(x, y))
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}

// neighbors counts live cells in the Moore neighbourhood of (x, y).
func (l *Life) neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n += int(l.cur.At(x+dx, y+dy))
		}
	}
	return n
}

func nextState(alive bool, neighbors int) uint8 {
	if neighbors == 3 || (alive && neighbors == 2) {
		return 1
	}
	return 0
}

// Fingerprint hashes the current generation. Equal boards hash equally, which
// lets callers detect still lifes and oscillators cheaply.
func (l *Life) Fingerprint() uint64 {
	if l.closed() {
		return 0
	}
	return xxhash.Sum64(l.cur.Cells())
}

// Close releases the cell buffers. Later operations are no-ops and a second
// Close returns ErrClosed.
func (l *Life) Close() error {
	if l.closed() {
		return ErrClosed
	}
	l.cur = nil
	l.nxt = nil
	return nil
}

func (l *Life) closed() bool { return l.cur == nil }

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		l, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
