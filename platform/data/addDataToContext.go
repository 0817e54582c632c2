package data

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ErrNoProvider is returned when data is staged without a provider.
var ErrNoProvider = errors.New("no data provider available")

// StageData stores d on ctx through provider, for the evaluators'
// AddDataToContext. On failure the original ctx comes back with the error.
func StageData(
	ctx context.Context,
	logger *slog.Logger,
	provider Provider,
	d ...map[string]any,
) (context.Context, error) {
	if provider == nil {
		return ctx, ErrNoProvider
	}

	staged, err := provider.AddDataToContext(ctx, d...)
	if err != nil {
		if logger != nil {
			logger.DebugContext(ctx, "provider refused data", "provider", fmt.Sprintf("%T", provider), "error", err)
		}
		return ctx, fmt.Errorf("failed to prepare context: %w", err)
	}
	return staged, nil
}
