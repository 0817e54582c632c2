package evaluator

import (
	"fmt"
	"log/slog"

	"github.com/robbyt/go-polybridge/callback"
	"github.com/robbyt/go-polybridge/engines/starlark/internal"
	"github.com/robbyt/go-polybridge/internal/helpers"
	"github.com/robbyt/go-polybridge/platform/constants"
	starlarkLib "go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// handleType is the Starlark type name of values returned by host.closure.
const handleType = "callback_handle"

// host implements the builtins of the script-visible host module.
type host struct {
	bindings *callback.Bindings
	logger   *slog.Logger
}

func newHostModule(bindings *callback.Bindings, handler slog.Handler) *starlarkstruct.Module {
	_, logger := helpers.SetupLogger(handler, "starlark", "host")
	h := &host{bindings: bindings, logger: logger}

	return &starlarkstruct.Module{
		Name: constants.Host,
		Members: starlarkLib.StringDict{
			"callback": starlarkLib.NewBuiltin("callback", h.callback),
			"closure":  starlarkLib.NewBuiltin("closure", h.closure),
		},
	}
}

// callback(closure, args=None) forwards one call to the entry point. Passing
// None as args sends the teardown call.
func (h *host) callback(
	thread *starlarkLib.Thread,
	fn *starlarkLib.Builtin,
	args starlarkLib.Tuple,
	kwargs []starlarkLib.Tuple,
) (starlarkLib.Value, error) {
	var closureVal starlarkLib.Value
	var argsVal starlarkLib.Value = starlarkLib.None
	if err := starlarkLib.UnpackArgs(
		fn.Name(), args, kwargs,
		"closure", &closureVal,
		"args?", &argsVal,
	); err != nil {
		return nil, err
	}

	entry, err := h.bindings.EntryPoint()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}

	closure, err := internal.ConvertStarlarkValueToInterface(closureVal)
	if err != nil {
		return nil, fmt.Errorf("%s: closure: %w", fn.Name(), err)
	}
	callArgs, err := toCallbackArgs(argsVal)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}

	result, err := entry.Callback(internal.ThreadContext(thread), closure, callArgs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}
	return h.toStarlark(result), nil
}

// closure(c) binds c to the entry point and returns a handle with call(args)
// and close() methods. A handle the script drops without closing is torn down
// once it is garbage collected.
func (h *host) closure(
	_ *starlarkLib.Thread,
	fn *starlarkLib.Builtin,
	args starlarkLib.Tuple,
	kwargs []starlarkLib.Tuple,
) (starlarkLib.Value, error) {
	var closureVal starlarkLib.Value
	if err := starlarkLib.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &closureVal); err != nil {
		return nil, err
	}

	closure, err := internal.ConvertStarlarkValueToInterface(closureVal)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}

	handle, err := callback.New(h.bindings, closure, callback.WithCollectorTeardown())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}
	return &handleValue{handle: handle, host: h}, nil
}

// toStarlark converts a callback result. Results with no Starlark form
// travel back as opaque values.
func (h *host) toStarlark(v any) starlarkLib.Value {
	out, err := internal.ConvertToStarlarkValue(v)
	if err != nil {
		h.logger.Debug("wrapping callback result as opaque", "type", fmt.Sprintf("%T", v), "error", err)
		return internal.NewOpaque(v)
	}
	return out
}

func toCallbackArgs(v starlarkLib.Value) (callback.Args, error) {
	if v == nil || v == starlarkLib.None {
		return nil, nil
	}

	iterable, ok := v.(starlarkLib.Iterable)
	if !ok {
		return nil, fmt.Errorf("args: expected list or tuple, got %s", v.Type())
	}
	if _, isDict := v.(*starlarkLib.Dict); isDict {
		return nil, fmt.Errorf("args: expected list or tuple, got %s", v.Type())
	}

	out := callback.Args{}
	iter := iterable.Iterate()
	defer iter.Done()

	var elem starlarkLib.Value
	for iter.Next(&elem) {
		converted, err := internal.ConvertStarlarkValueToInterface(elem)
		if err != nil {
			return nil, fmt.Errorf("args[%d]: %w", len(out), err)
		}
		out = append(out, converted)
	}
	return out, nil
}

// handleValue exposes a *callback.Handle to scripts.
type handleValue struct {
	handle *callback.Handle
	host   *host
}

var _ starlarkLib.HasAttrs = (*handleValue)(nil)

func (v *handleValue) String() string { return v.handle.String() }

func (v *handleValue) Type() string { return handleType }

func (v *handleValue) Freeze() {}

func (v *handleValue) Truth() starlarkLib.Bool {
	return starlarkLib.Bool(!v.handle.Closed())
}

func (v *handleValue) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: %s", handleType)
}

func (v *handleValue) AttrNames() []string {
	return []string{"call", "close", "closed"}
}

func (v *handleValue) Attr(name string) (starlarkLib.Value, error) {
	switch name {
	case "call":
		return starlarkLib.NewBuiltin("call", v.call), nil
	case "close":
		return starlarkLib.NewBuiltin("close", v.close), nil
	case "closed":
		return starlarkLib.Bool(v.handle.Closed()), nil
	default:
		return nil, nil
	}
}

// call(args=[]) invokes the handle. Use close() for teardown.
func (v *handleValue) call(
	thread *starlarkLib.Thread,
	fn *starlarkLib.Builtin,
	args starlarkLib.Tuple,
	kwargs []starlarkLib.Tuple,
) (starlarkLib.Value, error) {
	var argsVal starlarkLib.Value = starlarkLib.None
	if err := starlarkLib.UnpackArgs(fn.Name(), args, kwargs, "args?", &argsVal); err != nil {
		return nil, err
	}

	callArgs, err := toCallbackArgs(argsVal)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}
	if callArgs == nil {
		callArgs = callback.Args{}
	}

	result, err := v.handle.Invoke(internal.ThreadContext(thread), callArgs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}
	return v.host.toStarlark(result), nil
}

func (v *handleValue) close(
	thread *starlarkLib.Thread,
	fn *starlarkLib.Builtin,
	args starlarkLib.Tuple,
	kwargs []starlarkLib.Tuple,
) (starlarkLib.Value, error) {
	if err := starlarkLib.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	if err := v.handle.Close(internal.ThreadContext(thread)); err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}
	return starlarkLib.None, nil
}
