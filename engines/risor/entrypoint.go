package risor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robbyt/go-polybridge/callback"
	"github.com/robbyt/go-polybridge/internal/helpers"
	"github.com/robbyt/go-polybridge/platform"
)

// Invoker runs a program once per callback. *evaluator.Evaluator implements it.
type Invoker interface {
	Invoke(ctx context.Context, closure any, args callback.Args) (platform.EvaluatorResponse, error)
}

// EntryPoint implements callback.EntryPoint with a Risor program. The program
// reads ctx["closure"] and ctx["args"] (nil on teardown) and its last
// expression is the call's result.
type EntryPoint struct {
	invoker Invoker

	logHandler slog.Handler
	logger     *slog.Logger
}

// NewEntryPoint wraps inv as a callback entry point.
func NewEntryPoint(handler slog.Handler, inv Invoker) (*EntryPoint, error) {
	if inv == nil {
		return nil, fmt.Errorf("invoker is nil")
	}

	handler, logger := helpers.SetupLogger(handler, "risor", "EntryPoint")
	return &EntryPoint{
		invoker:    inv,
		logHandler: handler,
		logger:     logger,
	}, nil
}

func (e *EntryPoint) String() string {
	return "risor.EntryPoint"
}

// Callback runs the program for one call and returns its Go-native result.
func (e *EntryPoint) Callback(ctx context.Context, closure any, args callback.Args) (any, error) {
	result, err := e.invoker.Invoke(ctx, closure, args)
	if err != nil {
		return nil, err
	}

	e.logger.DebugContext(ctx, "callback evaluated",
		"teardown", args.IsTeardown(),
		"type", result.Type(),
		"execTime", result.GetExecTime(),
	)
	return result.Interface(), nil
}
