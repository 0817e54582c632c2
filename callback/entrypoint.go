// Package callback forwards calls from scripts to a single host entry point.
//
// The host registers one EntryPoint on a Bindings value and injects that
// Bindings into whatever needs to call out. A Handle pairs the entry point with
// an opaque closure payload: every Invoke forwards (closure, args), and Close
// sends one final call with nil Args so the entry point can release whatever
// it associated with the closure.
package callback

import "context"

// Args are the arguments forwarded with a closure. A nil Args is the teardown
// marker; an empty, non-nil Args is an ordinary call with no arguments.
type Args []any

// IsTeardown reports whether a is the teardown marker.
func (a Args) IsTeardown() bool {
	return a == nil
}

// EntryPoint is the single external function scripts reach the host through.
type EntryPoint interface {
	Callback(ctx context.Context, closure any, args Args) (any, error)
}

// EntryFunc adapts an ordinary function to the EntryPoint interface.
type EntryFunc func(ctx context.Context, closure any, args Args) (any, error)

// Callback calls f(ctx, closure, args).
func (f EntryFunc) Callback(ctx context.Context, closure any, args Args) (any, error) {
	return f(ctx, closure, args)
}
