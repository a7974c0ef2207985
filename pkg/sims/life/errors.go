package life

import "errors"

var (
	// ErrMalformedSeed indicates a seed line that is not two non-negative
	// integers separated by spaces or commas.
	ErrMalformedSeed = errors.New("life: malformed seed")

	// ErrNegativeSteps indicates a negative generation count.
	ErrNegativeSteps = errors.New("life: generation count must be >= 0")

	// ErrUnknownNeighborhood indicates an unrecognised neighbourhood name.
	ErrUnknownNeighborhood = errors.New("life: unknown neighborhood")
)
