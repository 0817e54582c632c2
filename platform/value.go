package platform

import "github.com/robbyt/go-polybridge/platform/data"

// Value is a live value owned by a script engine. Passing a Value back into
// the same engine hands over the original object rather than a copy, which is
// how host-side proxies keep identity with scripted objects.
type Value interface {
	// Type reports the shape of the value.
	Type() data.Types

	// Inspect returns the engine's string representation of the value.
	Inspect() string

	// Interface converts the value to a native Go value.
	Interface() any
}

// EvaluatorResponse is the result of evaluating a whole program.
type EvaluatorResponse interface {
	Value

	// GetScriptExeID returns the ID of the script that generated the object.
	GetScriptExeID() string

	// GetExecTime returns the time it took to execute the script
	GetExecTime() string
}
