package options

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/robbyt/go-polybridge/callback"
	"github.com/robbyt/go-polybridge/engines/types"
	"github.com/robbyt/go-polybridge/platform/constants"
	"github.com/robbyt/go-polybridge/platform/data"
	"github.com/robbyt/go-polybridge/platform/script/loader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithOptions(t *testing.T) {
	t.Parallel()

	cfg := &Config{engineType: types.Starlark}

	testHandler := slog.NewTextHandler(os.Stdout, nil)
	testDataProvider := data.NewStaticProvider(map[string]any{"test": "value"})
	testLoader := loader.NewMockLoaderWithContent([]byte("x = 1"))
	bindings, err := callback.NewBindings()
	require.NoError(t, err)

	for _, opt := range []Option{
		WithLogger(testHandler),
		WithDataProvider(testDataProvider),
		WithLoader(testLoader),
		WithBindings(bindings),
	} {
		require.NoError(t, opt(cfg))
	}

	assert.Equal(t, testHandler, cfg.GetHandler())
	assert.Equal(t, testDataProvider, cfg.GetDataProvider())
	assert.Equal(t, testLoader, cfg.GetLoader())
	assert.Same(t, bindings, cfg.GetBindings())
	require.NoError(t, cfg.Validate())
}

func TestNilOptionsKeepValues(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig(types.Risor)
	handler := cfg.GetHandler()
	provider := cfg.GetDataProvider()

	require.NoError(t, WithLogger(nil)(cfg))
	require.NoError(t, WithDataProvider(nil)(cfg))
	require.NoError(t, WithLoader(nil)(cfg))
	require.Error(t, WithBindings(nil)(cfg))

	assert.Equal(t, handler, cfg.GetHandler())
	assert.Equal(t, provider, cfg.GetDataProvider())
	assert.Nil(t, cfg.GetLoader())
}

func TestWithStaticData(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig(types.Starlark)
	require.NoError(t, WithStaticData(map[string]any{"a": 1})(cfg))

	ctx := context.WithValue(t.Context(), constants.EvalData, map[string]any{"b": 2})
	got, err := cfg.GetDataProvider().GetData(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, got)
}

func TestConfigValidation(t *testing.T) {
	t.Parallel()

	ldr := loader.NewMockLoaderWithContent([]byte("x = 1"))
	bindings, err := callback.NewBindings()
	require.NoError(t, err)

	tests := []struct {
		name    string
		cfg     *Config
		wantErr string
	}{
		{"missing loader", &Config{engineType: types.Starlark}, "no loader specified"},
		{"missing engine", &Config{loader: ldr}, "no engine type specified"},
		{"unknown engine", &Config{loader: ldr, engineType: "lua"}, "unsupported engine type"},
		{"bindings on risor", &Config{loader: ldr, engineType: types.Risor, bindings: bindings}, "not supported"},
		{"valid risor", &Config{loader: ldr, engineType: types.Risor}, ""},
		{"valid starlark with bindings", &Config{loader: ldr, engineType: types.Starlark, bindings: bindings}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	require.NoError(t, WithDefaults()(cfg))
	assert.NotNil(t, cfg.GetHandler())
	assert.IsType(t, &data.ContextProvider{}, cfg.GetDataProvider())

	cfg = DefaultConfig(types.Starlark)
	assert.Equal(t, types.Starlark, cfg.GetEngineType())
}

func TestBuild(t *testing.T) {
	t.Parallel()

	t.Run("fills defaults", func(t *testing.T) {
		cfg, err := Build(types.Risor, WithLoader(loader.NewMockLoaderWithContent([]byte("1"))))
		require.NoError(t, err)
		assert.NotNil(t, cfg.GetHandler())
		assert.IsType(t, &data.ContextProvider{}, cfg.GetDataProvider())
	})

	t.Run("option error", func(t *testing.T) {
		_, err := Build(types.Starlark, WithBindings(nil))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error applying option")
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := Build(types.Starlark)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no loader specified")
	})
}
