package life

import (
	"strconv"
)

// Config holds parameters for the interactive Life sim.
type Config struct {
	Width  int
	Height int

	// Density is the chance, in percent, that a cell starts alive when no
	// seed file is given.
	Density int

	Neighborhood Neighborhood

	// SeedFile, when set, replaces random seeding. The display grows to fit
	// the seed's window.
	SeedFile string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 96, Density: 35, Neighborhood: Orthogonal}
}

// FromMap populates a Config from a string map. Unparseable values keep
// their defaults, except the neighborhood which must name a known rule.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 100 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["neighborhood"]; ok {
		hood, err := ParseNeighborhood(v)
		if err != nil {
			return c, err
		}
		c.Neighborhood = hood
	}
	if v, ok := cfg["file"]; ok {
		c.SeedFile = v
	}
	return c, nil
}
