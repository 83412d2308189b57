package orthoroute

import "errors"

// ErrInvalidInput is returned by SolveFor when an obstacle tuple is not
// a valid (x, y, width, height) rectangle (negative width or height).
// Bendpoint tuples are not validated: every [2]int is taken as a point.
var ErrInvalidInput = errors.New("orthoroute: invalid input")
