package life

import (
	"fmt"
	"strings"
)

// Neighborhood selects which surrounding cells count as neighbours.
type Neighborhood int

const (
	// Orthogonal counts the four edge-sharing cells: N, E, S, W.
	Orthogonal Neighborhood = iota
	// Moore counts all eight surrounding cells.
	Moore
)

var (
	orthogonalOffsets = []Coord{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
	mooreOffsets      = []Coord{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// Offsets returns the relative positions counted as neighbours.
func (n Neighborhood) Offsets() []Coord {
	if n == Moore {
		return mooreOffsets
	}
	return orthogonalOffsets
}

func (n Neighborhood) String() string {
	if n == Moore {
		return "moore"
	}
	return "orthogonal"
}

// ParseNeighborhood maps "orthogonal"/"4" and "moore"/"8" to a Neighborhood.
func ParseNeighborhood(s string) (Neighborhood, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "orthogonal", "4":
		return Orthogonal, nil
	case "moore", "8":
		return Moore, nil
	}
	return Orthogonal, fmt.Errorf("%w: %q", ErrUnknownNeighborhood, s)
}
