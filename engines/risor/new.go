package risor

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/robbyt/go-polybridge/engines/risor/compiler"
	"github.com/robbyt/go-polybridge/engines/risor/evaluator"
	"github.com/robbyt/go-polybridge/platform/data"
	"github.com/robbyt/go-polybridge/platform/script"
	"github.com/robbyt/go-polybridge/platform/script/loader"
)

// FromRisorLoader builds an evaluator for ldr that reads ctx from values
// staged with AddDataToContext.
func FromRisorLoader(logHandler slog.Handler, ldr loader.Loader) (*evaluator.Evaluator, error) {
	return NewEvaluator(logHandler, ldr, data.EvalProvider(nil))
}

// FromRisorLoaderWithData is FromRisorLoader with staticData under the staged values.
func FromRisorLoaderWithData(
	logHandler slog.Handler,
	ldr loader.Loader,
	staticData map[string]any,
) (*evaluator.Evaluator, error) {
	return NewEvaluator(logHandler, ldr, data.EvalProvider(staticData))
}

// NewCompiler returns a Risor compiler configured by opts.
func NewCompiler(opts ...compiler.FunctionalOption) (*compiler.Compiler, error) {
	return compiler.New(opts...)
}

// NewEvaluator compiles the program from ldr, with ctx declared, and binds
// it to provider.
func NewEvaluator(
	logHandler slog.Handler,
	ldr loader.Loader,
	provider data.Provider,
) (*evaluator.Evaluator, error) {
	switch {
	case provider == nil:
		return nil, errors.New("provider is nil")
	case ldr == nil:
		return nil, errors.New("loader is nil")
	}

	opts := []compiler.FunctionalOption{compiler.WithCtxGlobal()}
	if logHandler != nil {
		opts = append(opts, compiler.WithLogHandler(logHandler))
	}
	c, err := NewCompiler(opts...)
	if err != nil {
		return nil, fmt.Errorf("risor compiler: %w", err)
	}

	unit, err := script.NewExecutableUnit(logHandler, loader.SourceID(ldr), ldr, c, provider)
	if err != nil {
		return nil, err
	}
	return evaluator.New(logHandler, unit), nil
}

// NewEntryPointFromLoader compiles the Risor program from ldr and wraps it as
// a callback entry point.
func NewEntryPointFromLoader(logHandler slog.Handler, ldr loader.Loader) (*EntryPoint, error) {
	eval, err := FromRisorLoader(logHandler, ldr)
	if err != nil {
		return nil, err
	}
	return NewEntryPoint(logHandler, eval)
}
