package options

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/robbyt/go-polybridge/engines/types"
	"github.com/robbyt/go-polybridge/platform/data"
)

// DefaultConfig is a Config for engineType that logs text to stdout and
// reads script data from the context.
func DefaultConfig(engineType types.Type) *Config {
	return &Config{
		engineType:   engineType,
		handler:      slog.NewTextHandler(os.Stdout, nil),
		dataProvider: data.EvalProvider(nil),
	}
}

// WithDefaults fills in a nil handler or data provider.
func WithDefaults() Option {
	return func(c *Config) error {
		d := DefaultConfig(c.engineType)
		if c.handler == nil {
			c.handler = d.handler
		}
		if c.dataProvider == nil {
			c.dataProvider = d.dataProvider
		}
		return nil
	}
}

// Build applies opts over DefaultConfig(engineType), fills gaps and validates.
func Build(engineType types.Type, opts ...Option) (*Config, error) {
	cfg := DefaultConfig(engineType)
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}
	if err := WithDefaults()(cfg); err != nil {
		return nil, fmt.Errorf("error applying defaults: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
