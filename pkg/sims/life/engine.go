package life

import (
	"fmt"
	"io"

	"sparse-life/pkg/sparse"
)

const (
	dead  uint8 = 0
	alive uint8 = 1
)

// Option customizes an Engine before the seed is loaded.
type Option func(*Engine)

// WithNeighborhood selects the neighbour set used when counting.
func WithNeighborhood(n Neighborhood) Option {
	return func(e *Engine) { e.hood = n }
}

// WithBounds replaces the seed-derived window. Panics on negative extents.
func WithBounds(b Bounds) Option {
	if b.Height < 0 || b.Width < 0 {
		panic(fmt.Sprintf("life: WithBounds(%d, %d)", b.Height, b.Width))
	}
	return func(e *Engine) {
		e.bounds = b
		e.fixedBounds = true
	}
}

// WithStrict validates every grid the engine builds and panics with the
// wrapped sparse.ErrCorrupt on the first violation.
func WithStrict(strict bool) Option {
	return func(e *Engine) { e.strict = strict }
}

// Engine steps a Game of Life over a sparse live-cell grid.
type Engine struct {
	live        *sparse.Grid[uint8]
	bounds      Bounds
	fixedBounds bool
	hood        Neighborhood
	strict      bool
	gen         int
}

// NewEngine loads seed into a fresh engine. Duplicate coordinates collapse to
// one live cell.
func NewEngine(seed []Coord, opts ...Option) *Engine {
	e := &Engine{live: sparse.New(dead)}
	for _, opt := range opts {
		opt(e)
	}
	if !e.fixedBounds {
		e.bounds = BoundsFor(seed)
	}
	for _, c := range seed {
		e.live.Set(c.Row, c.Col, alive)
	}
	e.check("seed", e.live)
	return e
}

// Load parses a seed from r and builds an engine from it. Nothing is built
// if the seed is malformed.
func Load(r io.Reader, opts ...Option) (*Engine, error) {
	seed, err := ParseSeed(r)
	if err != nil {
		return nil, err
	}
	return NewEngine(seed, opts...), nil
}

// Step advances the engine by one generation.
func (e *Engine) Step() {
	counts := e.countNeighbors()
	next := e.nextGeneration(counts)
	e.live = next
	e.gen++
}

// Run advances n generations. Zero leaves the current state untouched.
func (e *Engine) Run(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeSteps, n)
	}
	for i := 0; i < n; i++ {
		e.Step()
	}
	return nil
}

// countNeighbors adds one to every in-window neighbour of each live cell.
// Cells with no live neighbour never appear in the result.
func (e *Engine) countNeighbors() *sparse.Grid[uint8] {
	counts := sparse.New(dead)
	offsets := e.hood.Offsets()
	rows := e.live.Rows()
	for rows.Next() {
		elems := rows.Elems()
		for elems.Next() {
			c := elems.Cell()
			if c.Value == dead {
				continue
			}
			for _, d := range offsets {
				row, col := c.Row+d.Row, c.Col+d.Col
				if !e.bounds.Contains(row, col) {
					continue
				}
				counts.Set(row, col, counts.Get(row, col)+1)
			}
		}
	}
	e.check("neighbor counts", counts)
	return counts
}

// nextGeneration applies the rule to every counted cell: three neighbours
// give birth or survival, two neighbours keep a live cell alive.
func (e *Engine) nextGeneration(counts *sparse.Grid[uint8]) *sparse.Grid[uint8] {
	next := sparse.New(dead)
	rows := counts.Rows()
	for rows.Next() {
		elems := rows.Elems()
		for elems.Next() {
			c := elems.Cell()
			n := c.Value
			if n == 3 || (n == 2 && e.live.Get(c.Row, c.Col) == alive) {
				next.Set(c.Row, c.Col, alive)
			} else {
				next.Set(c.Row, c.Col, dead)
			}
		}
	}
	e.check("next generation", next)
	return next
}

func (e *Engine) check(stage string, g *sparse.Grid[uint8]) {
	if !e.strict {
		return
	}
	if err := g.Validate(); err != nil {
		panic(fmt.Errorf("life: %s: generation %d: %w", stage, e.gen, err))
	}
}

// Generation returns the number of steps taken since the seed.
func (e *Engine) Generation() int { return e.gen }

// Bounds returns the simulation window.
func (e *Engine) Bounds() Bounds { return e.bounds }

// Neighborhood returns the neighbour set in use.
func (e *Engine) Neighborhood() Neighborhood { return e.hood }

// Population returns the number of live cells.
func (e *Engine) Population() int { return e.live.Len() }

// Nodes returns the node count of the live grid, anchors included.
func (e *Engine) Nodes() int { return e.live.Nodes() }

// Alive reports whether (row, col) is live.
func (e *Engine) Alive(row, col int) bool { return e.live.Get(row, col) == alive }

// Live returns the live cells in row-major order.
func (e *Engine) Live() []Coord {
	return toCoords(e.live.Cells())
}

// LiveByColumn returns the live cells in column-major order.
func (e *Engine) LiveByColumn() []Coord {
	return toCoords(e.live.CellsByColumn())
}

// Anchors returns the header nodes of the live grid that hold no live cell
// themselves, head included when dead.
func (e *Engine) Anchors() []Coord {
	var out []Coord
	rows := e.live.Rows()
	for rows.Next() {
		elems := rows.Elems()
		for elems.Next() {
			if c := elems.Cell(); c.Value == dead {
				out = append(out, Coord{Row: c.Row, Col: c.Col})
			}
		}
	}
	return out
}

func toCoords(cells []sparse.Cell[uint8]) []Coord {
	out := make([]Coord, len(cells))
	for i, c := range cells {
		out[i] = Coord{Row: c.Row, Col: c.Col}
	}
	return out
}
