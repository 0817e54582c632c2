package pair

import "errors"

var (
	ErrBadSequence  = errors.New("ordered pair must have exactly two elements")
	ErrMissingField = errors.New("mapping is missing a pair field")
	ErrNotMappable  = errors.New("callback result cannot be converted to a mapping")
)
