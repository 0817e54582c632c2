package callback

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robbyt/go-polybridge/internal/helpers"
)

// Closure is a Go function that can be passed as a closure payload.
type Closure func(ctx context.Context, args Args) (any, error)

// Callable is a closure payload with its own call method.
type Callable interface {
	Call(ctx context.Context, args Args) (any, error)
}

// Releaser is implemented by closure payloads that hold resources until teardown.
type Releaser interface {
	Release() error
}

type dispatcher struct {
	fallback   EntryPoint
	logHandler slog.Handler
	logger     *slog.Logger
}

// Dispatcher returns an entry point that calls Go closures directly. The
// closure payload must be a Closure, a plain func with the same signature, or
// a Callable. On teardown a payload implementing Releaser is released and
// nothing is called.
func Dispatcher(opts ...DispatcherOption) EntryPoint {
	d := &dispatcher{}
	for _, opt := range opts {
		opt(d)
	}
	d.logHandler, d.logger = helpers.SetupLogger(d.logHandler, "callback", "Dispatcher")
	return d
}

func (d *dispatcher) String() string {
	return "callback.Dispatcher"
}

func (d *dispatcher) Callback(ctx context.Context, closure any, args Args) (any, error) {
	if args.IsTeardown() {
		return nil, d.teardown(ctx, closure)
	}

	switch fn := closure.(type) {
	case Closure:
		return fn(ctx, args)
	case func(context.Context, Args) (any, error):
		return fn(ctx, args)
	case Callable:
		return fn.Call(ctx, args)
	}

	if d.fallback != nil {
		return d.fallback.Callback(ctx, closure, args)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedClosure, closure)
}

func (d *dispatcher) teardown(ctx context.Context, closure any) error {
	logger := d.logger.WithGroup("teardown")

	if r, ok := closure.(Releaser); ok {
		logger.DebugContext(ctx, "releasing closure", "type", fmt.Sprintf("%T", closure))
		return r.Release()
	}

	switch closure.(type) {
	case Closure, func(context.Context, Args) (any, error), Callable:
		return nil
	}

	if d.fallback != nil {
		_, err := d.fallback.Callback(ctx, closure, nil)
		return err
	}
	return nil
}
