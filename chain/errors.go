package chain

import "errors"

// Sentinel errors for chain construction.
var (
	// ErrInvalidLink indicates a Link built from an out-of-domain value.
	ErrInvalidLink = errors.New("chain: invalid link value")
	// ErrInvalidMoveType indicates a MoveType built from an out-of-domain value.
	ErrInvalidMoveType = errors.New("chain: invalid move type value")
	// ErrEmptyChain indicates a Polymer requested with zero links.
	ErrEmptyChain = errors.New("chain: polymer must have at least one link")
)
