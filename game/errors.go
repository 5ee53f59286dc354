package game

import "errors"

// ErrInvalidMove reports a move on an occupied cell, an out-of-range
// index, or a placement that captures nothing in any direction.
var ErrInvalidMove = errors.New("invalid move")
