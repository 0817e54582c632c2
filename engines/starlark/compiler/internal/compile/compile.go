// Package compile resolves Starlark source against the standard modules and
// the names a host binds at run time.
package compile

import (
	"errors"
	"fmt"

	"github.com/robbyt/go-polybridge/engines/starlark/internal"
	starlarkLib "go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// ErrResolve wraps parse and name-resolution failures.
var ErrResolve = errors.New("starlark resolve failed")

// fileOptions lets a program reassign the globals bound from outside.
var fileOptions = &syntax.FileOptions{GlobalReassign: true}

// Program parses src as filename and resolves it. Names in bound are treated
// as predeclared alongside the standard modules, even though their values
// only arrive when the program is initialized.
func Program(filename string, src []byte, bound []string) (*starlarkLib.Program, error) {
	known := internal.StarlarkModules()
	for _, name := range bound {
		if !known.Has(name) {
			known[name] = starlarkLib.None
		}
	}

	f, err := fileOptions.Parse(filename, src, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResolve, err)
	}
	prog, err := starlarkLib.FileProgram(f, known.Has)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrResolve, err)
	}
	return prog, nil
}
