// Package config holds the playground CLI configuration, read from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/robbyt/go-polybridge/fractal"
	"gopkg.in/yaml.v3"
)

// Entry point and engine names accepted in the configuration.
const (
	EntryGo    = "go"
	EntryRisor = "risor"

	EngineGo       = "go"
	EngineStarlark = "starlark"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the playground configuration. Zero values in a loaded file are
// replaced by the defaults.
type Config struct {
	LogLevel string   `yaml:"log_level"`
	Resource Resource `yaml:"resource"`
	Demo     Demo     `yaml:"demo"`
	Fractal  Fractal  `yaml:"fractal"`
}

// Resource configures how the scripted resource is loaded.
type Resource struct {
	// ClassVar overrides the resource's class name.
	ClassVar string `yaml:"classvar,omitempty"`
}

// Demo configures the end-to-end demo.
type Demo struct {
	// Entry selects the callback entry point: "go" or "risor".
	Entry string  `yaml:"entry"`
	Real  float64 `yaml:"real"`
	Imag  float64 `yaml:"imag"`
}

// Fractal configures the fractal command.
type Fractal struct {
	Height  int    `yaml:"height"`
	Width   int    `yaml:"width"` // 0 uses the terminal width
	MaxIter int    `yaml:"max_iter"`
	Engine  string `yaml:"engine"`
	Color   bool   `yaml:"color"`
	Palette string `yaml:"palette,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel: "warn",
		Demo: Demo{
			Entry: EntryGo,
			Real:  1,
			Imag:  2,
		},
		Fractal: Fractal{
			Height:  24,
			MaxIter: fractal.DefaultMaxIter,
			Engine:  EngineGo,
			Color:   true,
		},
	}
}

// Load reads path over the defaults and validates the result. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.Demo.Entry == "" {
		c.Demo.Entry = d.Demo.Entry
	}
	if c.Fractal.Height == 0 {
		c.Fractal.Height = d.Fractal.Height
	}
	if c.Fractal.MaxIter == 0 {
		c.Fractal.MaxIter = d.Fractal.MaxIter
	}
	if c.Fractal.Engine == "" {
		c.Fractal.Engine = d.Fractal.Engine
	}
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errz []error

	if _, err := c.Level(); err != nil {
		errz = append(errz, err)
	}
	switch c.Demo.Entry {
	case EntryGo, EntryRisor:
	default:
		errz = append(errz, fmt.Errorf("demo.entry: unknown entry point %q", c.Demo.Entry))
	}
	switch c.Fractal.Engine {
	case EngineGo, EngineStarlark:
	default:
		errz = append(errz, fmt.Errorf("fractal.engine: unknown engine %q", c.Fractal.Engine))
	}
	if c.Fractal.Height < 0 {
		errz = append(errz, fmt.Errorf("fractal.height: must not be negative"))
	}
	if c.Fractal.Width < 0 {
		errz = append(errz, fmt.Errorf("fractal.width: must not be negative"))
	}
	if c.Fractal.MaxIter < 0 {
		errz = append(errz, fmt.Errorf("fractal.max_iter: must not be negative"))
	}

	if len(errz) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errz...))
	}
	return nil
}

// Level parses LogLevel as a slog level name such as "debug" or "warn".
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// Marshal returns the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}
