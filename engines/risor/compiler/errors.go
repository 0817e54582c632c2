package compiler

import "errors"

var (
	// ErrNoSource means there was nothing to read: a nil reader or an empty file.
	ErrNoSource = errors.New("no risor source to compile")

	// ErrNoStatements means the source parsed but holds only comments or whitespace.
	ErrNoStatements = errors.New("risor source has no statements")

	// ErrSyntax wraps parse and compile failures.
	ErrSyntax = errors.New("risor source does not compile")
)
