package internal

import (
	"fmt"

	"github.com/robbyt/go-polybridge/platform/data"
	starlarkLib "go.starlark.net/starlark"
)

// OpaqueType is the Starlark type name of host values carried through a script.
const OpaqueType = "opaque"

// Opaque holds a Go value inside Starlark. Scripts can store it and pass it
// back to the host, but cannot look inside it.
type Opaque struct {
	value any
}

// NewOpaque wraps v.
func NewOpaque(v any) *Opaque {
	return &Opaque{value: v}
}

// Unwrap returns the Go value.
func (o *Opaque) Unwrap() any {
	return o.value
}

func (o *Opaque) String() string {
	return data.Opaque{Value: o.value}.String()
}

func (o *Opaque) Type() string { return OpaqueType }

func (o *Opaque) Freeze() {}

func (o *Opaque) Truth() starlarkLib.Bool { return starlarkLib.True }

func (o *Opaque) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: %s", OpaqueType)
}
