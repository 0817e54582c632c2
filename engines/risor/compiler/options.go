package compiler

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/robbyt/go-polybridge/platform/constants"
)

// FunctionalOption configures a Compiler.
type FunctionalOption func(*Compiler) error

// WithGlobals declares names a program may use before they are bound at
// eval time. It replaces any names declared earlier.
func WithGlobals(names []string) FunctionalOption {
	return func(c *Compiler) error {
		if slices.Contains(names, "") {
			return errors.New("global names cannot be empty")
		}
		c.globals = slices.Clone(names)
		return nil
	}
}

// WithCtxGlobal declares ctx, the variable through which programs read their data.
func WithCtxGlobal() FunctionalOption {
	return func(c *Compiler) error {
		if !slices.Contains(c.globals, constants.Ctx) {
			c.globals = append(c.globals, constants.Ctx)
		}
		return nil
	}
}

// WithLogHandler logs through handler. It overrides an earlier WithLogger.
func WithLogHandler(handler slog.Handler) FunctionalOption {
	return func(c *Compiler) error {
		if handler == nil {
			return errors.New("log handler cannot be nil")
		}
		c.logHandler, c.logger = handler, nil
		return nil
	}
}

// WithLogger logs through logger. It overrides an earlier WithLogHandler.
func WithLogger(logger *slog.Logger) FunctionalOption {
	return func(c *Compiler) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		c.logHandler, c.logger = nil, logger
		return nil
	}
}
