// Package searcher provides two independent move-selection strategies over
// the same rules engine: Monte-Carlo tree search and a NegaScout
// (principal variation) alpha-beta search. Both explore clones of the
// position they are given and never mutate it.
package searcher

import "errors"

// ErrNoMoveFound reports a search that finished without exploring a single
// move candidate, e.g. a zero-iteration budget on a playable position.
var ErrNoMoveFound = errors.New("search explored no move candidates")

// Playout outcome values from the scored player's perspective.
const (
	Win  = 1.0
	Loss = -1.0
)
