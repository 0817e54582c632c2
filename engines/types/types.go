// Package types names the script engines a resource can be compiled for.
package types

// Type is the identifier of a script engine.
type Type string

const (
	// Starlark engine: https://github.com/google/starlark-go
	Starlark Type = "starlark"

	// Risor engine: https://github.com/risor-io/risor
	Risor Type = "risor"
)

func (t Type) String() string {
	return string(t)
}
