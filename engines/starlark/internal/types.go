package internal

import (
	"github.com/robbyt/go-polybridge/platform/data"
	starlarkLib "go.starlark.net/starlark"
)

// TypeOf maps the Starlark type name of v onto data.Types.
func TypeOf(v starlarkLib.Value) data.Types {
	if v == nil {
		return data.NONE
	}

	switch v.Type() {
	case "NoneType":
		return data.NONE
	case "string":
		return data.STRING
	case "int":
		return data.INT
	case "float":
		return data.FLOAT
	case "bool":
		return data.BOOL
	case "list":
		return data.LIST
	case "tuple":
		return data.TUPLE
	case "dict":
		return data.MAP
	case "set":
		return data.SET
	case "function", "builtin_function_or_method":
		return data.FUNCTION
	case OpaqueType:
		return data.OPAQUE
	default:
		return data.OBJECT
	}
}
