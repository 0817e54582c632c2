// Package polybridge wires loaders, compilers, evaluators and callback
// bindings together so a Go host can load the scripted resource, call into it
// and serve its callbacks with a few calls.
package polybridge

import (
	"context"
	"log/slog"

	"github.com/robbyt/go-polybridge/callback"
	"github.com/robbyt/go-polybridge/engines/risor"
	risorEvaluator "github.com/robbyt/go-polybridge/engines/risor/evaluator"
	"github.com/robbyt/go-polybridge/engines/starlark"
	starlarkEvaluator "github.com/robbyt/go-polybridge/engines/starlark/evaluator"
	"github.com/robbyt/go-polybridge/engines/types"
	"github.com/robbyt/go-polybridge/options"
	"github.com/robbyt/go-polybridge/platform/script/loader"
	"github.com/robbyt/go-polybridge/resources"
)

// NewStarlarkEvaluator creates a new evaluator for Starlark scripts
func NewStarlarkEvaluator(opts ...options.Option) (*starlarkEvaluator.Evaluator, error) {
	cfg, err := options.Build(types.Starlark, opts...)
	if err != nil {
		return nil, err
	}

	var evalOpts []starlarkEvaluator.Option
	if b := cfg.GetBindings(); b != nil {
		evalOpts = append(evalOpts, starlarkEvaluator.WithBindings(b))
	}
	return starlark.NewEvaluator(cfg.GetHandler(), cfg.GetLoader(), cfg.GetDataProvider(), evalOpts...)
}

// NewRisorEvaluator creates a new evaluator for Risor scripts
func NewRisorEvaluator(opts ...options.Option) (*risorEvaluator.Evaluator, error) {
	cfg, err := options.Build(types.Risor, opts...)
	if err != nil {
		return nil, err
	}
	return risor.NewEvaluator(cfg.GetHandler(), cfg.GetLoader(), cfg.GetDataProvider())
}

// withString prepends a string loader for content and handler to opts.
func withString(content string, handler slog.Handler, opts []options.Option) ([]options.Option, error) {
	l, err := loader.NewFromString(content)
	if err != nil {
		return nil, err
	}
	return append([]options.Option{options.WithLoader(l), options.WithLogger(handler)}, opts...), nil
}

// FromStarlarkString creates a Starlark evaluator from a script string.
func FromStarlarkString(
	content string,
	handler slog.Handler,
	opts ...options.Option,
) (*starlarkEvaluator.Evaluator, error) {
	all, err := withString(content, handler, opts)
	if err != nil {
		return nil, err
	}
	return NewStarlarkEvaluator(all...)
}

// FromStarlarkStringWithData is FromStarlarkString with staticData under
// values staged on the context.
func FromStarlarkStringWithData(
	content string,
	staticData map[string]any,
	handler slog.Handler,
	opts ...options.Option,
) (*starlarkEvaluator.Evaluator, error) {
	all, err := withString(content, handler, append(opts, options.WithStaticData(staticData)))
	if err != nil {
		return nil, err
	}
	return NewStarlarkEvaluator(all...)
}

// FromRisorString creates a Risor evaluator from a script string.
func FromRisorString(content string, handler slog.Handler) (*risorEvaluator.Evaluator, error) {
	all, err := withString(content, handler, nil)
	if err != nil {
		return nil, err
	}
	return NewRisorEvaluator(all...)
}

// FromRisorStringWithData is FromRisorString with staticData under values
// staged on the context.
func FromRisorStringWithData(
	content string,
	staticData map[string]any,
	handler slog.Handler,
) (*risorEvaluator.Evaluator, error) {
	all, err := withString(content, handler, []options.Option{options.WithStaticData(staticData)})
	if err != nil {
		return nil, err
	}
	return NewRisorEvaluator(all...)
}

// LoadResource loads the embedded Complex resource with bindings injected
// into its host module. A nil bindings leaves host calls unbound. staticData
// becomes the resource's ctx, where "classvar" overrides the class name.
func LoadResource(
	ctx context.Context,
	bindings *callback.Bindings,
	staticData map[string]any,
	handler slog.Handler,
) (*starlarkEvaluator.Module, error) {
	l, err := loader.NewFromFS(resources.FS, resources.ComplexScript)
	if err != nil {
		return nil, err
	}

	opts := []options.Option{
		options.WithLoader(l),
		options.WithLogger(handler),
		options.WithStaticData(staticData),
	}
	if bindings != nil {
		opts = append(opts, options.WithBindings(bindings))
	}

	eval, err := NewStarlarkEvaluator(opts...)
	if err != nil {
		return nil, err
	}
	return eval.Load(ctx)
}

// NewRisorEntryPoint returns the embedded Risor entry point. It answers a
// callback with a mapping computed from the closure's real and imag fields
// and the number of arguments.
func NewRisorEntryPoint(handler slog.Handler) (*risor.EntryPoint, error) {
	l, err := loader.NewFromFS(resources.FS, resources.EntryScript)
	if err != nil {
		return nil, err
	}
	return risor.NewEntryPointFromLoader(handler, l)
}

// NewBindings creates bindings with entry already registered.
func NewBindings(entry callback.EntryPoint, handler slog.Handler) (*callback.Bindings, error) {
	var opts []callback.Option
	if handler != nil {
		opts = append(opts, callback.WithLogHandler(handler))
	}

	b, err := callback.NewBindings(opts...)
	if err != nil {
		return nil, err
	}
	if err := b.Register(entry); err != nil {
		return nil, err
	}
	return b, nil
}
