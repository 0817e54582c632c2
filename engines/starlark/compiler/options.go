package compiler

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/robbyt/go-polybridge/platform/constants"
)

// FunctionalOption configures a Compiler.
type FunctionalOption func(*Compiler) error

// WithGlobals declares names bound when the program is initialized. It
// replaces any names declared earlier.
func WithGlobals(names []string) FunctionalOption {
	return func(c *Compiler) error {
		if slices.Contains(names, "") {
			return errors.New("global names cannot be empty")
		}
		c.globals = slices.Clone(names)
		return nil
	}
}

// WithCtxGlobal declares ctx.
func WithCtxGlobal() FunctionalOption {
	return declare(constants.Ctx)
}

// WithHostGlobal declares host, the module scripts use to call back into Go.
func WithHostGlobal() FunctionalOption {
	return declare(constants.Host)
}

func declare(name string) FunctionalOption {
	return func(c *Compiler) error {
		if !slices.Contains(c.globals, name) {
			c.globals = append(c.globals, name)
		}
		return nil
	}
}

// WithFilename names the file in compile and runtime error positions.
func WithFilename(name string) FunctionalOption {
	return func(c *Compiler) error {
		if name == "" {
			return errors.New("filename cannot be empty")
		}
		c.filename = name
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
