package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	return r.r.Float64() < p
}

// Scatter picks every point of a w*h area independently with probability p,
// in row-major order.
func (r *RNG) Scatter(w, h int, p float64) []Point {
	var pts []Point
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r.Chance(p) {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
	}
	return pts
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
