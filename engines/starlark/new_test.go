package starlark

import (
	"errors"
	"log/slog"
	"net/url"
	"os"
	"testing"

	"github.com/robbyt/go-polybridge/callback"
	"github.com/robbyt/go-polybridge/engines/starlark/evaluator"
	"github.com/robbyt/go-polybridge/platform/data"
	"github.com/robbyt/go-polybridge/platform/script/loader"
	"github.com/robbyt/go-polybridge/resources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStarlarkScript = `
# Simple Starlark script that prints a message
print("Hello from Starlark")

def greet(name):
    return ctx.get("greeting", "Hello") + ", " + name

result = greet(ctx.get("name", "World"))
`

func createTestLoader(t *testing.T) *loader.FromString {
	t.Helper()
	stringLoader, err := loader.NewFromString(testStarlarkScript)
	require.NoError(t, err)
	return stringLoader
}

func TestFromStarlarkLoader(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		handler := slog.NewTextHandler(os.Stdout, nil)
		stringLoader := createTestLoader(t)

		evalInstance, err := FromStarlarkLoader(handler, stringLoader)
		require.NoError(t, err)
		assert.Equal(t, "starlark.Evaluator", evalInstance.String())

		ctx, err := evalInstance.AddDataToContext(t.Context(), map[string]any{"name": "Go"})
		require.NoError(t, err)
		result, err := evalInstance.Eval(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Hello, Go", result.Interface())
		assert.Equal(t, stringLoader.GetSourceURL().String(), result.GetScriptExeID())
	})

	t.Run("error from loader", func(t *testing.T) {
		mockLoader := new(loader.MockLoader)
		mockURL, err := url.Parse("file:///test-starlark-file.star")
		require.NoError(t, err)
		mockLoader.On("GetSourceURL").Return(mockURL)
		mockLoader.On("GetReader").Return(nil, errors.New("failed to load script"))

		evalInstance, err := FromStarlarkLoader(slog.NewTextHandler(os.Stdout, nil), mockLoader)
		require.Error(t, err)
		assert.Nil(t, evalInstance)
		assert.Contains(t, err.Error(), "failed to load script")
		mockLoader.AssertExpectations(t)
	})

	t.Run("compile error names the file", func(t *testing.T) {
		mockLoader := loader.NewMockLoaderWithContent([]byte("def broken(:\n"))
		_, err := FromStarlarkLoader(nil, mockLoader)
		require.Error(t, err)
	})
}

func TestFromStarlarkLoaderWithData(t *testing.T) {
	t.Parallel()

	evalInstance, err := FromStarlarkLoaderWithData(
		slog.NewTextHandler(os.Stdout, nil),
		createTestLoader(t),
		map[string]any{"greeting": "Hi"},
	)
	require.NoError(t, err)

	ctx, err := evalInstance.AddDataToContext(t.Context(), map[string]any{"name": "there"})
	require.NoError(t, err)
	result, err := evalInstance.Eval(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Hi, there", result.Interface())
}

func TestNewEvaluator(t *testing.T) {
	t.Parallel()

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewEvaluator(nil, createTestLoader(t), nil)
		require.Error(t, err)
	})

	t.Run("nil loader", func(t *testing.T) {
		_, err := NewEvaluator(nil, nil, data.NewStaticProvider(nil))
		require.Error(t, err)
	})
}

func TestLoadModule(t *testing.T) {
	t.Parallel()

	ldr, err := loader.NewFromFS(resources.FS, resources.ComplexScript)
	require.NoError(t, err)

	b, err := callback.NewBindings()
	require.NoError(t, err)

	m, err := LoadModule(
		t.Context(),
		slog.NewTextHandler(os.Stdout, nil),
		ldr,
		map[string]any{"classvar": "Pair"},
		evaluator.WithBindings(b),
	)
	require.NoError(t, err)

	v, err := m.Global("classvar")
	require.NoError(t, err)
	assert.Equal(t, "Pair", v.Interface())

	rec, err := m.Call(t.Context(), "newComplex", 2.0, 3.0)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"r": 2.0, "i": 3.0}, rec.Interface())
}
