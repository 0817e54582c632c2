package starlark

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"

	"github.com/robbyt/go-polybridge/engines/starlark/compiler"
	"github.com/robbyt/go-polybridge/engines/starlark/evaluator"
	"github.com/robbyt/go-polybridge/platform/data"
	"github.com/robbyt/go-polybridge/platform/script"
	"github.com/robbyt/go-polybridge/platform/script/loader"
)

// FromStarlarkLoader builds an evaluator for ldr that reads ctx from values
// staged with AddDataToContext.
func FromStarlarkLoader(
	logHandler slog.Handler,
	ldr loader.Loader,
	opts ...evaluator.Option,
) (*evaluator.Evaluator, error) {
	return NewEvaluator(logHandler, ldr, data.EvalProvider(nil), opts...)
}

// FromStarlarkLoaderWithData is FromStarlarkLoader with staticData under the
// staged values.
func FromStarlarkLoaderWithData(
	logHandler slog.Handler,
	ldr loader.Loader,
	staticData map[string]any,
	opts ...evaluator.Option,
) (*evaluator.Evaluator, error) {
	return NewEvaluator(logHandler, ldr, data.EvalProvider(staticData), opts...)
}

// NewCompiler returns a Starlark compiler configured by opts.
func NewCompiler(opts ...compiler.FunctionalOption) (*compiler.Compiler, error) {
	return compiler.New(opts...)
}

// NewEvaluator compiles the script from ldr with ctx and host declared and
// binds it to provider. Diagnostics name the file at the end of the loader's URL.
func NewEvaluator(
	logHandler slog.Handler,
	ldr loader.Loader,
	provider data.Provider,
	opts ...evaluator.Option,
) (*evaluator.Evaluator, error) {
	switch {
	case provider == nil:
		return nil, errors.New("provider is nil")
	case ldr == nil:
		return nil, errors.New("loader is nil")
	}

	copts := []compiler.FunctionalOption{compiler.WithCtxGlobal(), compiler.WithHostGlobal()}
	if u := ldr.GetSourceURL(); u != nil {
		if name := path.Base(u.Path); name != "." && name != "/" {
			copts = append(copts, compiler.WithFilename(name))
		}
	}
	if logHandler != nil {
		copts = append(copts, compiler.WithLogHandler(logHandler))
	}
	c, err := NewCompiler(copts...)
	if err != nil {
		return nil, fmt.Errorf("starlark compiler: %w", err)
	}

	unit, err := script.NewExecutableUnit(logHandler, loader.SourceID(ldr), ldr, c, provider)
	if err != nil {
		return nil, err
	}
	return evaluator.New(logHandler, unit, opts...), nil
}

// LoadModule compiles the script from ldr and runs its top level once with
// staticData as ctx, returning the loaded module.
func LoadModule(
	ctx context.Context,
	logHandler slog.Handler,
	ldr loader.Loader,
	staticData map[string]any,
	opts ...evaluator.Option,
) (*evaluator.Module, error) {
	eval, err := FromStarlarkLoaderWithData(logHandler, ldr, staticData, opts...)
	if err != nil {
		return nil, err
	}
	return eval.Load(ctx)
}
