package evaluator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/robbyt/go-polybridge/callback"
	"github.com/robbyt/go-polybridge/engines/starlark/internal"
	"github.com/robbyt/go-polybridge/internal/helpers"
	"github.com/robbyt/go-polybridge/platform"
	"github.com/robbyt/go-polybridge/platform/constants"
	"github.com/robbyt/go-polybridge/platform/data"
	"github.com/robbyt/go-polybridge/platform/script"
	starlarkLib "go.starlark.net/starlark"
)

// ErrNoProgram means the evaluator has no compiled Starlark program to run.
var ErrNoProgram = errors.New("no compiled starlark program")

// resultNames are the globals Eval reads its result from, in order.
var resultNames = []string{"_", "result"}

// Evaluator initializes one compiled Starlark program. Eval runs it as a
// script that produces a value; Load runs it as a module whose functions are
// called later. Either way the program sees ctx, built from the data
// provider, and host, backed by the evaluator's bindings.
type Evaluator struct {
	predeclared starlarkLib.StringDict
	execUnit    *script.ExecutableUnit
	bindings    *callback.Bindings

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates an Evaluator for execUnit.
func New(handler slog.Handler, execUnit *script.ExecutableUnit, opts ...Option) *Evaluator {
	handler, logger := helpers.SetupLogger(handler, "starlark", "Evaluator")

	e := &Evaluator{
		execUnit:   execUnit,
		logHandler: handler,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.predeclared = internal.StarlarkModules()
	e.predeclared[constants.Ctx] = starlarkLib.None
	e.predeclared[constants.Host] = newHostModule(e.bindings, handler)
	return e
}

func (be *Evaluator) String() string {
	return "starlark.Evaluator"
}

// program returns the unit's compiled program and ID.
func (be *Evaluator) program() (*starlarkLib.Program, string, error) {
	if be.execUnit == nil || be.execUnit.GetContent() == nil {
		return nil, "", ErrNoProgram
	}

	id := be.execUnit.GetID()
	prog, ok := be.execUnit.GetContent().GetByteCode().(*starlarkLib.Program)
	if !ok || prog == nil {
		return nil, id, fmt.Errorf("%w: %s", ErrNoProgram, id)
	}
	return prog, id, nil
}

// globals is the predeclared set with ctx holding the provider's data.
func (be *Evaluator) globals(ctx context.Context) (starlarkLib.StringDict, error) {
	raw := map[string]any{}
	if be.execUnit != nil && be.execUnit.GetDataProvider() != nil {
		d, err := be.execUnit.GetDataProvider().GetData(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get input data: %w", err)
		}
		raw = d
	}

	input, err := internal.ConvertToStarlarkFormat(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to convert input data: %w", err)
	}

	out := maps.Clone(be.predeclared)
	maps.Copy(out, input)
	return out, nil
}

// run initializes the program on a thread bound to ctx and returns the
// resulting globals.
func (be *Evaluator) run(ctx context.Context) (starlarkLib.StringDict, string, time.Duration, error) {
	prog, id, err := be.program()
	if err != nil {
		return nil, "", 0, err
	}
	predeclared, err := be.globals(ctx)
	if err != nil {
		return nil, id, 0, err
	}

	thread, stop := internal.NewThread(ctx, id, be.logger.WithGroup("thread"))
	defer stop()

	start := time.Now()
	out, err := prog.Init(thread, predeclared)
	if err != nil {
		return nil, id, time.Since(start), fmt.Errorf("starlark execution error: %w", err)
	}
	return out, id, time.Since(start), nil
}

// Eval runs the program and returns the value of _ or, when that is unset or
// None, of result. A callable result is called with no arguments and its
// return value, frozen, becomes the result.
func (be *Evaluator) Eval(ctx context.Context) (platform.EvaluatorResponse, error) {
	out, id, elapsed, err := be.run(ctx)
	if err != nil {
		return nil, err
	}

	var v starlarkLib.Value = starlarkLib.None
	for _, name := range resultNames {
		if found, ok := out[name]; ok && found != starlarkLib.None {
			v = found
			break
		}
	}

	if fn, ok := v.(starlarkLib.Callable); ok {
		thread, stop := internal.NewThread(ctx, id, be.logger.WithGroup("thread"))
		defer stop()

		v, err = starlarkLib.Call(thread, fn, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("error calling %s: %w", fn.Name(), err)
		}
		v.Freeze()
	}

	be.logger.DebugContext(ctx, "eval complete", "exeID", id, "type", v.Type(), "execTime", elapsed)
	return newEvalResult(be.logHandler, v, elapsed, id), nil
}

// Load runs the program's top level once and returns its frozen globals as a
// Module. Values created by later calls are not frozen.
func (be *Evaluator) Load(ctx context.Context) (*Module, error) {
	out, id, elapsed, err := be.run(ctx)
	if err != nil {
		return nil, fmt.Errorf("load error: %w", err)
	}
	out.Freeze()

	be.logger.DebugContext(ctx, "module loaded", "exeID", id, "globals", len(out), "execTime", elapsed)
	return newModule(be.logHandler, id, out), nil
}

// AddDataToContext stores d on ctx through the unit's data provider for a
// later Eval or Load.
func (be *Evaluator) AddDataToContext(
	ctx context.Context,
	d ...map[string]any,
) (context.Context, error) {
	if be.execUnit == nil {
		return ctx, data.ErrNoProvider
	}
	return data.StageData(
		ctx,
		be.logger.WithGroup("AddDataToContext"),
		be.execUnit.GetDataProvider(),
		d...,
	)
}
