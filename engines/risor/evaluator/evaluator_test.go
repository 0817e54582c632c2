package evaluator

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/robbyt/go-polybridge/callback"
	"github.com/robbyt/go-polybridge/engines/risor/compiler"
	"github.com/robbyt/go-polybridge/platform/constants"
	"github.com/robbyt/go-polybridge/platform/data"
	"github.com/robbyt/go-polybridge/platform/script"
	"github.com/robbyt/go-polybridge/platform/script/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) GetData(ctx context.Context) (map[string]any, error) {
	args := m.Called(ctx)
	if d, ok := args.Get(0).(map[string]any); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProvider) AddDataToContext(ctx context.Context, d ...map[string]any) (context.Context, error) {
	args := m.Called(ctx, d)
	if c, ok := args.Get(0).(context.Context); ok {
		return c, args.Error(1)
	}
	return ctx, args.Error(1)
}

func newTestUnit(t *testing.T, src string, provider data.Provider) *script.ExecutableUnit {
	t.Helper()
	handler := slog.NewTextHandler(os.Stdout, nil)

	c, err := compiler.New(compiler.WithLogHandler(handler), compiler.WithCtxGlobal())
	require.NoError(t, err)

	ldr, err := loader.NewFromString(src)
	require.NoError(t, err)

	unit, err := script.NewExecutableUnit(handler, "test-id", ldr, c, provider)
	require.NoError(t, err)
	return unit
}

func TestEvaluator_Eval(t *testing.T) {
	t.Parallel()
	handler := slog.NewTextHandler(os.Stdout, nil)

	t.Run("arithmetic", func(t *testing.T) {
		unit := newTestUnit(t, `1 + 2`, data.NewStaticProvider(map[string]any{}))
		e := New(handler, unit)
		assert.Equal(t, "risor.Evaluator", e.String())

		result, err := e.Eval(t.Context())
		require.NoError(t, err)
		assert.Equal(t, data.INT, result.Type())
		assert.Equal(t, int64(3), result.Interface())
		assert.Equal(t, "test-id", result.GetScriptExeID())
		assert.NotEmpty(t, result.GetExecTime())
	})

	t.Run("static data", func(t *testing.T) {
		unit := newTestUnit(t, `ctx["name"]`, data.NewStaticProvider(map[string]any{"name": "Complex"}))
		result, err := New(handler, unit).Eval(t.Context())
		require.NoError(t, err)
		assert.Equal(t, data.STRING, result.Type())
		assert.Equal(t, "Complex", result.Interface())
	})

	t.Run("context data", func(t *testing.T) {
		unit := newTestUnit(t, `ctx["n"] * 2`, data.NewContextProvider(constants.EvalData))
		e := New(handler, unit)

		ctx, err := e.AddDataToContext(t.Context(), map[string]any{"n": 21})
		require.NoError(t, err)

		result, err := e.Eval(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(42), result.Interface())
	})

	t.Run("map result", func(t *testing.T) {
		unit := newTestUnit(t, "m := {\"r\": 1.5, \"i\": 2.0}\nm", data.NewStaticProvider(nil))
		result, err := New(handler, unit).Eval(t.Context())
		require.NoError(t, err)
		assert.Equal(t, data.MAP, result.Type())
		assert.Equal(t, map[string]any{"r": 1.5, "i": 2.0}, result.Interface())
	})

	t.Run("nil result", func(t *testing.T) {
		unit := newTestUnit(t, `nil`, data.NewStaticProvider(nil))
		result, err := New(handler, unit).Eval(t.Context())
		require.NoError(t, err)
		assert.Equal(t, data.NONE, result.Type())
		assert.Nil(t, result.Interface())
	})

	t.Run("function result is an error", func(t *testing.T) {
		unit := newTestUnit(t, `func f() { return 1 }
f`, data.NewStaticProvider(nil))
		_, err := New(handler, unit).Eval(t.Context())
		require.ErrorIs(t, err, ErrUnusableResult)
		assert.Contains(t, err.Error(), "function")
	})

	t.Run("provider error", func(t *testing.T) {
		provider := &MockProvider{}
		provider.On("GetData", mock.Anything).Return(nil, errors.New("provider failed"))

		unit := newTestUnit(t, `1`, provider)
		_, err := New(handler, unit).Eval(t.Context())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "provider failed")
		provider.AssertExpectations(t)
	})

	t.Run("nil executable unit", func(t *testing.T) {
		_, err := New(handler, nil).Eval(t.Context())
		require.ErrorIs(t, err, ErrNoProgram)
	})
}

func TestEvaluator_Invoke(t *testing.T) {
	t.Parallel()
	handler := slog.NewTextHandler(os.Stdout, nil)

	const entry = `
func respond(closure, args) {
  if args == nil {
    return "teardown " + closure
  }
  return {"closure": closure, "prefix": ctx["prefix"], "n": len(args)}
}
respond(ctx["closure"], ctx["args"])
`

	t.Run("binds closure and args", func(t *testing.T) {
		unit := newTestUnit(t, entry, data.NewStaticProvider(map[string]any{"prefix": "n="}))
		result, err := New(handler, unit).Invoke(t.Context(), "c", callback.Args{1, "two"})
		require.NoError(t, err)
		assert.Equal(t, data.MAP, result.Type())
		assert.Equal(t, map[string]any{"closure": "c", "prefix": "n=", "n": int64(2)}, result.Interface())
	})

	t.Run("nil args is a teardown", func(t *testing.T) {
		unit := newTestUnit(t, entry, data.NewStaticProvider(nil))
		result, err := New(handler, unit).Invoke(t.Context(), "c", nil)
		require.NoError(t, err)
		assert.Equal(t, "teardown c", result.Interface())
	})

	t.Run("empty args is not a teardown", func(t *testing.T) {
		unit := newTestUnit(t, `ctx["args"]`, data.NewStaticProvider(nil))
		result, err := New(handler, unit).Invoke(t.Context(), nil, callback.Args{})
		require.NoError(t, err)
		assert.Equal(t, data.LIST, result.Type())
		assert.Empty(t, result.Interface())
	})

	t.Run("staged values shadow provider data", func(t *testing.T) {
		provider := data.NewStaticProvider(map[string]any{"closure": "static", "args": []any{"static"}})
		unit := newTestUnit(t, `[ctx["closure"], ctx["args"]]`, provider)
		result, err := New(handler, unit).Invoke(t.Context(), "call", callback.Args{"x"})
		require.NoError(t, err)
		assert.Equal(t, []any{"call", []any{"x"}}, result.Interface())

		again, err := New(handler, unit).Eval(t.Context())
		require.NoError(t, err)
		assert.Equal(t, []any{"static", []any{"static"}}, again.Interface())
	})

	t.Run("context data reaches the program", func(t *testing.T) {
		unit := newTestUnit(t, `ctx["scale"] * len(ctx["args"])`, data.NewContextProvider(constants.EvalData))
		e := New(handler, unit)
		ctx, err := e.AddDataToContext(t.Context(), map[string]any{"scale": 10})
		require.NoError(t, err)

		result, err := e.Invoke(ctx, nil, callback.Args{"a", "b"})
		require.NoError(t, err)
		assert.Equal(t, int64(20), result.Interface())
	})

	t.Run("provider error", func(t *testing.T) {
		provider := &MockProvider{}
		provider.On("GetData", mock.Anything).Return(nil, errors.New("provider failed"))

		unit := newTestUnit(t, `1`, provider)
		_, err := New(handler, unit).Invoke(t.Context(), nil, callback.Args{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "provider failed")
	})

	t.Run("no program", func(t *testing.T) {
		_, err := New(handler, nil).Invoke(t.Context(), nil, callback.Args{})
		require.ErrorIs(t, err, ErrNoProgram)
	})
}

func TestEvaluator_AddDataToContext(t *testing.T) {
	t.Parallel()
	handler := slog.NewTextHandler(os.Stdout, nil)

	t.Run("static provider rejects runtime data", func(t *testing.T) {
		unit := newTestUnit(t, `1`, data.NewStaticProvider(nil))
		_, err := New(handler, unit).AddDataToContext(t.Context(), map[string]any{"a": 1})
		require.ErrorIs(t, err, data.ErrStaticProviderNoRuntimeUpdates)
	})

	t.Run("no provider", func(t *testing.T) {
		_, err := New(handler, nil).AddDataToContext(t.Context(), map[string]any{"a": 1})
		require.Error(t, err)
	})
}
