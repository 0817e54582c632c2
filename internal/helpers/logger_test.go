package helpers

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	t.Parallel()

	t.Run("nil handler gets a default", func(t *testing.T) {
		handler, logger := SetupLogger(nil, "starlark", "Evaluator")
		require.NotNil(t, handler)
		require.NotNil(t, logger)
	})

	t.Run("custom handler with group", func(t *testing.T) {
		var buf bytes.Buffer
		base := slog.NewTextHandler(&buf, nil)

		handler, logger := SetupLogger(base, "callback", "Handle")
		assert.Equal(t, base, handler)
		logger.Info("hello", "key", "value")
		assert.Contains(t, buf.String(), "Handle.key=value")
	})

	t.Run("custom handler without group", func(t *testing.T) {
		var buf bytes.Buffer
		base := slog.NewTextHandler(&buf, nil)

		_, logger := SetupLogger(base, "callback", "")
		logger.Info("hello", "key", "value")
		assert.Contains(t, buf.String(), " key=value")
	})
}
