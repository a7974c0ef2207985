package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	File         string
	Width        int
	Height       int
	Density      int
	Neighborhood string
	HUDWidth     int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:          "life",
		Scale:        3,
		TPS:          10,
		Seed:         42,
		Width:        128,
		Height:       96,
		Density:      35,
		Neighborhood: "orthogonal",
		HUDWidth:     220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.StringVar(&c.File, "file", c.File, "seed file to load instead of random cells")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Density, "density", c.Density, "random fill density in percent")
	fs.StringVar(&c.Neighborhood, "neighborhood", c.Neighborhood, "neighbour set: orthogonal or moore")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the side panel in pixels, 0 to hide")
}

// SimOptions converts the sim-specific flags into the map a core.Factory
// expects.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{
		"w":            strconv.Itoa(c.Width),
		"h":            strconv.Itoa(c.Height),
		"density":      strconv.Itoa(c.Density),
		"neighborhood": c.Neighborhood,
	}
	if c.File != "" {
		opts["file"] = c.File
	}
	return opts
}
