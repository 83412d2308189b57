package router

import "errors"

// ErrUnknownPath is returned by RemovePath and SetBendpoints when given
// a Path this Router did not create.
var ErrUnknownPath = errors.New("router: path does not belong to this router")
