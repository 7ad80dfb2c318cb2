package cubestate

import (
	"errors"
	"fmt"
)

// Sentinel errors for the cubestate package.
var (
	// Notation errors. A token that does not parse is also an unknown move,
	// so errors.Is(err, ErrUnknownMove) holds for every bad token whether it
	// came from ParseMove, Catalog.Lookup, Scramble or a Tracker.
	ErrUnknownMove     = errors.New("cubestate: unknown move")
	ErrInvalidNotation = fmt.Errorf("%w: invalid notation", ErrUnknownMove)

	// State errors
	ErrMalformedState = errors.New("cubestate: malformed state")
)
