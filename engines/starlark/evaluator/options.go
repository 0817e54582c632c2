package evaluator

import "github.com/robbyt/go-polybridge/callback"

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithBindings gives the script's host module access to the registered
// callback entry point. Without it, host.callback and host.closure fail with
// callback.ErrMissingBinding.
func WithBindings(b *callback.Bindings) Option {
	return func(e *Evaluator) {
		e.bindings = b
	}
}
