// Package options configures the top-level polybridge constructors.
package options

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/robbyt/go-polybridge/callback"
	"github.com/robbyt/go-polybridge/engines/types"
	"github.com/robbyt/go-polybridge/platform/data"
	"github.com/robbyt/go-polybridge/platform/script/loader"
)

// Config is what a constructor needs to build one evaluator.
type Config struct {
	engineType   types.Type
	handler      slog.Handler
	dataProvider data.Provider
	loader       loader.Loader

	// bindings back the Starlark host module.
	bindings *callback.Bindings
}

// Option changes a Config. Options given a nil value leave the field alone,
// except WithBindings, which rejects it.
type Option func(*Config) error

func WithLogger(handler slog.Handler) Option {
	return func(c *Config) error {
		if handler != nil {
			c.handler = handler
		}
		return nil
	}
}

func WithDataProvider(provider data.Provider) Option {
	return func(c *Config) error {
		if provider != nil {
			c.dataProvider = provider
		}
		return nil
	}
}

// WithStaticData replaces the provider with staticData under values staged
// on the context.
func WithStaticData(staticData map[string]any) Option {
	return func(c *Config) error {
		if staticData == nil {
			staticData = map[string]any{}
		}
		c.dataProvider = data.EvalProvider(staticData)
		return nil
	}
}

func WithLoader(l loader.Loader) Option {
	return func(c *Config) error {
		if l != nil {
			c.loader = l
		}
		return nil
	}
}

// WithBindings exposes b to Starlark scripts as the host module.
func WithBindings(b *callback.Bindings) Option {
	return func(c *Config) error {
		if b == nil {
			return errors.New("bindings cannot be nil")
		}
		c.bindings = b
		return nil
	}
}

// Validate reports the first missing or conflicting setting.
func (c *Config) Validate() error {
	if c.loader == nil {
		return errors.New("no loader specified")
	}
	switch c.engineType {
	case types.Starlark, types.Risor:
	case "":
		return errors.New("no engine type specified")
	default:
		return fmt.Errorf("unsupported engine type: %s", c.engineType)
	}
	if c.bindings != nil && c.engineType != types.Starlark {
		return fmt.Errorf("bindings are not supported by the %s engine", c.engineType)
	}
	return nil
}

func (c *Config) GetHandler() slog.Handler { return c.handler }
func (c *Config) GetEngineType() types.Type { return c.engineType }
func (c *Config) GetDataProvider() data.Provider { return c.dataProvider }
func (c *Config) GetLoader() loader.Loader { return c.loader }
func (c *Config) GetBindings() *callback.Bindings { return c.bindings }
