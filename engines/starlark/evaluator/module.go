package evaluator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/robbyt/go-polybridge/engines/starlark/internal"
	"github.com/robbyt/go-polybridge/internal/helpers"
	"github.com/robbyt/go-polybridge/platform"
	starlarkLib "go.starlark.net/starlark"
)

var (
	ErrGlobalNotFound = errors.New("global not found")
	ErrNotCallable    = errors.New("global is not callable")
)

// Module is a loaded Starlark program. Its globals are frozen, so one Module
// can serve concurrent calls as long as callers do not share mutable values
// between goroutines.
type Module struct {
	id      string
	globals starlarkLib.StringDict

	logHandler slog.Handler
	logger     *slog.Logger
}

func newModule(handler slog.Handler, id string, globals starlarkLib.StringDict) *Module {
	handler, logger := helpers.SetupLogger(handler, "starlark", "Module")
	return &Module{
		id:         id,
		globals:    globals,
		logHandler: handler,
		logger:     logger.With("exeID", id),
	}
}

func (m *Module) String() string {
	return fmt.Sprintf("starlark.Module{ID: %s, Globals: %d}", m.id, len(m.globals))
}

// Names returns the sorted names of the module's globals.
func (m *Module) Names() []string {
	return m.globals.Keys()
}

// Global returns the named global as a live value.
func (m *Module) Global(name string) (platform.Value, error) {
	v, ok := m.globals[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGlobalNotFound, name)
	}
	return newValue(v), nil
}

// Call invokes the named global function. Values previously returned by this
// engine are passed by reference, data.Opaque values travel as opaque
// handles, and everything else is converted to Starlark.
func (m *Module) Call(ctx context.Context, name string, args ...any) (platform.Value, error) {
	logger := m.logger.WithGroup("Call").With("function", name)

	v, ok := m.globals[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGlobalNotFound, name)
	}
	fn, ok := v.(starlarkLib.Callable)
	if !ok {
		return nil, fmt.Errorf("%w: %s is a %s", ErrNotCallable, name, v.Type())
	}

	tuple, err := toStarlarkArgs(args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	thread, stop := internal.NewThread(ctx, name, logger)
	defer stop()

	result, err := starlarkLib.Call(thread, fn, tuple, nil)
	if err != nil {
		logger.DebugContext(ctx, "call failed", "error", err)
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return newValue(result), nil
}

func toStarlarkArgs(args []any) (starlarkLib.Tuple, error) {
	tuple := make(starlarkLib.Tuple, len(args))
	for i, arg := range args {
		switch a := arg.(type) {
		case *Value:
			tuple[i] = a.Starlark()
		case platform.Value:
			converted, err := internal.ConvertToStarlarkValue(a.Interface())
			if err != nil {
				return nil, fmt.Errorf("argument %d: %w", i, err)
			}
			tuple[i] = converted
		default:
			converted, err := internal.ConvertToStarlarkValue(a)
			if err != nil {
				return nil, fmt.Errorf("argument %d: %w", i, err)
			}
			tuple[i] = converted
		}
	}
	return tuple, nil
}
