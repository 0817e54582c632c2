// Package constants holds the context keys and script-level names shared by the engines.
package constants

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// EvalData is the context key under which runtime data for a script is stored.
	EvalData ContextKey = "eval_data"

	// Ctx is the top-scope variable name scripts use to read their input data.
	Ctx = "ctx"

	// Host is the top-scope module name through which scripts call back into Go.
	Host = "host"

	// Closure and Args are the keys an entry-point script reads from ctx.
	Closure = "closure"
	Args    = "args"
)
