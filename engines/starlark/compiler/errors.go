package compiler

import "errors"

var (
	// ErrNoSource means there was nothing to read: a nil reader or an empty file.
	ErrNoSource = errors.New("no starlark source to compile")

	// ErrUnresolved wraps syntax errors and references to undeclared names.
	ErrUnresolved = errors.New("starlark source does not compile")
)
