package core

import "errors"

// ErrInvalidRectangle indicates a rectangle with negative width or height.
var ErrInvalidRectangle = errors.New("core: rectangle width and height must be non-negative")
