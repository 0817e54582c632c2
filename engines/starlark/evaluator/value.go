package evaluator

import (
	"github.com/robbyt/go-polybridge/engines/starlark/internal"
	"github.com/robbyt/go-polybridge/platform/data"
	starlarkLib "go.starlark.net/starlark"
)

// Value is a live Starlark value returned from Module.Call. Passing it back
// into Call hands the script the same object, so mutations made by one call
// are seen by the next.
type Value struct {
	v starlarkLib.Value
}

func newValue(v starlarkLib.Value) *Value {
	if v == nil {
		v = starlarkLib.None
	}
	return &Value{v: v}
}

// Starlark returns the underlying Starlark value.
func (v *Value) Starlark() starlarkLib.Value {
	return v.v
}

func (v *Value) Type() data.Types {
	return internal.TypeOf(v.v)
}

func (v *Value) Inspect() string {
	return v.v.String()
}

func (v *Value) String() string {
	return v.v.String()
}

// Interface converts the value to Go. Values with no Go representation are
// returned as data.Opaque around the Starlark value.
func (v *Value) Interface() any {
	out, err := internal.ConvertStarlarkValueToInterface(v.v)
	if err != nil {
		return data.Opaque{Value: v.v}
	}
	return out
}
