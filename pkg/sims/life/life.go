package life

import (
	"fmt"
	"os"
	"strconv"

	"sparse-life/pkg/core"
)

// Life adapts an Engine to the core.Sim contract so the viewer can drive it.
type Life struct {
	cfg    Config
	seed   []Coord
	engine *Engine
	raster *core.ByteGrid
}

// New returns a randomly seeded Life sim with the provided dimensions.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = max(w, 1), max(h, 1)
	return newLife(cfg, nil)
}

// NewWithConfig builds a sim from cfg. When cfg.SeedFile is set the file is
// parsed here, so a malformed seed fails construction rather than a reset.
func NewWithConfig(cfg Config) (*Life, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("life: invalid size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.SeedFile == "" {
		return newLife(cfg, nil), nil
	}
	f, err := os.Open(cfg.SeedFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	seed, err := ParseSeed(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.SeedFile, err)
	}
	b := BoundsFor(seed)
	cfg.Width = max(cfg.Width, b.Width+1)
	cfg.Height = max(cfg.Height, b.Height+1)
	if seed == nil {
		seed = []Coord{}
	}
	return newLife(cfg, seed), nil
}

func newLife(cfg Config, seed []Coord) *Life {
	l := &Life{cfg: cfg, seed: seed, raster: core.NewByteGrid(cfg.Width, cfg.Height)}
	l.Reset(0)
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Width, H: l.cfg.Height} }

// Engine exposes the underlying engine.
func (l *Life) Engine() *Engine { return l.engine }

// Reset reloads the seed file, or scatters live cells at the configured
// density using seed when there is none.
func (l *Life) Reset(seed int64) {
	if l.seed != nil {
		l.engine = NewEngine(l.seed, WithNeighborhood(l.cfg.Neighborhood))
		return
	}
	var cells []Coord
	density := float64(l.cfg.Density) / 100
	for _, p := range core.NewRNG(seed).Scatter(l.cfg.Width, l.cfg.Height, density) {
		cells = append(cells, Coord{Row: p.Y, Col: p.X})
	}
	l.engine = NewEngine(cells,
		WithNeighborhood(l.cfg.Neighborhood),
		WithBounds(Bounds{Height: l.cfg.Height - 1, Width: l.cfg.Width - 1}),
	)
}

// Step advances the simulation by one generation.
func (l *Life) Step() { l.engine.Step() }

// Cells rasterises the live cells that fall inside the display.
func (l *Life) Cells() []uint8 {
	l.raster.Clear()
	for _, c := range l.engine.Live() {
		l.raster.Set(c.Col, c.Row, 1)
	}
	return l.raster.Cells()
}

// Window returns the simulation window as a display-space size.
func (l *Life) Window() core.Size {
	b := l.engine.Bounds()
	return core.Size{W: b.Width + 1, H: b.Height + 1}
}

// Anchors returns the positions of dead header nodes in the live grid.
func (l *Life) Anchors() []core.Point {
	anchors := l.engine.Anchors()
	out := make([]core.Point, len(anchors))
	for i, a := range anchors {
		out[i] = core.Point{X: a.Col, Y: a.Row}
	}
	return out
}

// Parameters reports engine statistics for the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	e := l.engine
	b := e.Bounds()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Engine", Params: []core.Parameter{
			{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(e.Generation())},
			{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(e.Population())},
			{Key: "nodes", Label: "Nodes", Type: core.ParamTypeInt, Value: strconv.Itoa(e.Nodes()),
				Description: "live cells plus header anchors"},
		}},
		{Name: "Window", Params: []core.Parameter{
			{Key: "height", Label: "Height", Type: core.ParamTypeInt, Value: strconv.Itoa(b.Height)},
			{Key: "width", Label: "Width", Type: core.ParamTypeInt, Value: strconv.Itoa(b.Width)},
			{Key: "neighborhood", Label: "Neighbours", Type: core.ParamTypeString, Value: e.Neighborhood().String()},
		}},
		{Name: "Seeding", Params: []core.Parameter{
			{Key: "density", Label: "Density %", Type: core.ParamTypeInt, Value: strconv.Itoa(l.cfg.Density),
				Description: "applies on next reset"},
		}},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (l *Life) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "density", Label: "Density %", Step: 5, Min: 0, Max: 100, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an adjustable parameter by key.
func (l *Life) SetIntParameter(key string, value int) bool {
	switch key {
	case "density":
		if value < 0 || value > 100 {
			return false
		}
		l.cfg.Density = value
		return true
	}
	return false
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		l, err := NewWithConfig(c)
		if err != nil {
			return nil, err
		}
		return l, nil
	})
}
