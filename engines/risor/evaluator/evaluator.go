package evaluator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"time"

	risorLib "github.com/risor-io/risor"
	risorCompiler "github.com/risor-io/risor/compiler"
	"github.com/robbyt/go-polybridge/callback"
	"github.com/robbyt/go-polybridge/engines/risor/internal"
	"github.com/robbyt/go-polybridge/internal/helpers"
	"github.com/robbyt/go-polybridge/platform"
	"github.com/robbyt/go-polybridge/platform/constants"
	"github.com/robbyt/go-polybridge/platform/data"
	"github.com/robbyt/go-polybridge/platform/script"
)

var (
	// ErrNoProgram means the evaluator has no compiled Risor program to run.
	ErrNoProgram = errors.New("no compiled risor program")

	// ErrUnusableResult is returned when a program ends on an error or function value.
	ErrUnusableResult = errors.New("program result cannot leave the script")
)

// Evaluator runs one compiled Risor program. Eval binds the data provider's
// map to ctx. Invoke does the same and also binds a callback's closure and
// arguments, which is how the program serves as a callback entry point.
type Evaluator struct {
	execUnit *script.ExecutableUnit

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates an Evaluator for execUnit.
func New(handler slog.Handler, execUnit *script.ExecutableUnit) *Evaluator {
	handler, logger := helpers.SetupLogger(handler, "risor", "Evaluator")
	return &Evaluator{
		execUnit:   execUnit,
		logHandler: handler,
		logger:     logger,
	}
}

func (be *Evaluator) String() string {
	return "risor.Evaluator"
}

// program returns the unit's bytecode and ID.
func (be *Evaluator) program() (*risorCompiler.Code, string, error) {
	if be.execUnit == nil || be.execUnit.GetContent() == nil {
		return nil, "", ErrNoProgram
	}

	id := be.execUnit.GetID()
	code, ok := be.execUnit.GetContent().GetByteCode().(*risorCompiler.Code)
	if !ok || code == nil {
		return nil, id, fmt.Errorf("%w: %s", ErrNoProgram, id)
	}
	return code, id, nil
}

// ctxData is the provider's data for this call. A missing provider means an
// empty ctx.
func (be *Evaluator) ctxData(ctx context.Context) (map[string]any, error) {
	if be.execUnit == nil || be.execUnit.GetDataProvider() == nil {
		return map[string]any{}, nil
	}

	d, err := be.execUnit.GetDataProvider().GetData(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get input data: %w", err)
	}
	return d, nil
}

// run executes the program with ctxData bound to the ctx global.
func (be *Evaluator) run(ctx context.Context, ctxData map[string]any) (platform.EvaluatorResponse, error) {
	code, id, err := be.program()
	if err != nil {
		return nil, err
	}
	logger := be.logger.With("exeID", id)

	start := time.Now()
	obj, err := risorLib.EvalCode(ctx, code, internal.ConvertToRisorOptions(constants.Ctx, ctxData)...)
	if err != nil {
		return nil, fmt.Errorf("risor execution error: %w", err)
	}
	result := newEvalResult(be.logHandler, obj, time.Since(start), id)
	logger.DebugContext(ctx, "program finished", "type", result.Type(), "execTime", result.GetExecTime())

	switch result.Type() {
	case data.ERROR, data.FUNCTION:
		return result, fmt.Errorf("%w: %s %s", ErrUnusableResult, result.Type(), result.Inspect())
	}
	return result, nil
}

// Eval runs the program once with the data provider's map as ctx.
func (be *Evaluator) Eval(ctx context.Context) (platform.EvaluatorResponse, error) {
	d, err := be.ctxData(ctx)
	if err != nil {
		return nil, err
	}
	return be.run(ctx, d)
}

// Invoke runs the program as a callback. ctx["closure"] holds closure and
// ctx["args"] holds args, or nil when args marks a teardown. The staged values
// shadow provider data under the same keys and never touch the context.
func (be *Evaluator) Invoke(
	ctx context.Context,
	closure any,
	args callback.Args,
) (platform.EvaluatorResponse, error) {
	d, err := be.ctxData(ctx)
	if err != nil {
		return nil, err
	}

	staged := maps.Clone(d)
	if staged == nil {
		staged = make(map[string]any, 2)
	}
	staged[constants.Closure] = closure
	staged[constants.Args] = nil
	if !args.IsTeardown() {
		staged[constants.Args] = []any(args)
	}
	return be.run(ctx, staged)
}

// AddDataToContext stores d on ctx through the unit's data provider for a
// later Eval or Invoke.
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
