package sparse

import (
	"errors"
	"fmt"
)

// ErrCorrupt is the root of every structural error reported by Validate.
// Seeing it means the grid was damaged; no sequence of public calls on a
// healthy grid produces it.
var ErrCorrupt = errors.New("sparse: grid structure corrupt")

var (
	// ErrOrder indicates a row chain that is not strictly increasing in column
	// or a column chain that is not strictly increasing in row.
	ErrOrder = fmt.Errorf("%w: chain out of order", ErrCorrupt)

	// ErrCycle indicates a chain that revisits a node.
	ErrCycle = fmt.Errorf("%w: chain cycle", ErrCorrupt)

	// ErrDangling indicates a link to a freed or out-of-range slot, or a live
	// slot no chain reaches.
	ErrDangling = fmt.Errorf("%w: dangling node", ErrCorrupt)

	// ErrUnreachable indicates a cell reachable through only one of its two
	// headers, or through both but resolving to different nodes.
	ErrUnreachable = fmt.Errorf("%w: dual reachability broken", ErrCorrupt)

	// ErrDeadAnchor indicates a node holding the default value that anchors
	// nothing.
	ErrDeadAnchor = fmt.Errorf("%w: dead anchor retained", ErrCorrupt)
)
