package compiler

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/robbyt/go-polybridge/engines/starlark/compiler/internal/compile"
	"github.com/robbyt/go-polybridge/internal/helpers"
	"github.com/robbyt/go-polybridge/platform/script"
)

const defaultFilename = "script.star"

// Compiler resolves Starlark source into a program that can be initialized
// many times. Declared globals such as ctx and host are bound only then.
type Compiler struct {
	globals    []string
	filename   string
	logHandler slog.Handler
	logger     *slog.Logger
}

// New returns a Compiler configured by opts.
func New(opts ...FunctionalOption) (*Compiler, error) {
	c := &Compiler{globals: []string{}, filename: defaultFilename}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("invalid compiler configuration: %w", err)
		}
	}

	if c.logger == nil {
		c.logHandler, c.logger = helpers.SetupLogger(c.logHandler, "starlark", "Compiler")
	} else {
		c.logHandler = c.logger.Handler()
	}
	return c, nil
}

func (c *Compiler) String() string {
	return "starlark.Compiler"
}

// Compile reads and closes r, then compiles what it read.
func (c *Compiler) Compile(r io.ReadCloser) (script.ExecutableContent, error) {
	if r == nil {
		return nil, ErrNoSource
	}

	src, readErr := io.ReadAll(r)
	closeErr := r.Close()
	switch {
	case readErr != nil:
		return nil, fmt.Errorf("failed to read script: %w", readErr)
	case closeErr != nil:
		return nil, fmt.Errorf("failed to close reader: %w", closeErr)
	}
	return c.compile(src)
}

func (c *Compiler) compile(src []byte) (*program, error) {
	logger := c.logger.WithGroup("compile").With("filename", c.filename)
	if len(src) == 0 {
		return nil, ErrNoSource
	}

	prog, err := compile.Program(c.filename, src, c.globals)
	if err != nil {
		logger.Warn("starlark source rejected", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrUnresolved, err)
	}

	logger.Debug("compiled", "globals", c.globals)
	return &program{source: string(src), prog: prog}, nil
}
