package compiler

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/robbyt/go-polybridge/engines/risor/compiler/internal/compile"
	"github.com/robbyt/go-polybridge/internal/helpers"
	"github.com/robbyt/go-polybridge/platform/script"
)

// Compiler turns Risor source into bytecode that can be run many times.
// Globals declared here are bound only when the program runs.
type Compiler struct {
	globals    []string
	logHandler slog.Handler
	logger     *slog.Logger
}

// New returns a Compiler configured by opts.
func New(opts ...FunctionalOption) (*Compiler, error) {
	c := &Compiler{globals: []string{}}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("invalid compiler configuration: %w", err)
		}
	}

	if c.logger == nil {
		c.logHandler, c.logger = helpers.SetupLogger(c.logHandler, "risor", "Compiler")
	} else {
		c.logHandler = c.logger.Handler()
	}
	return c, nil
}

func (c *Compiler) String() string {
	return "risor.Compiler"
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
	return c.compile(string(src))
}

func (c *Compiler) compile(src string) (*program, error) {
	logger := c.logger.WithGroup("compile")

	if src == "" {
		return nil, ErrNoSource
	}
	if commentOnly(src) {
		return nil, ErrNoStatements
	}

	code, err := compile.Program(src, c.globals)
	if err != nil {
		logger.Warn("risor source rejected", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if code.InstructionCount() == 0 {
		return nil, ErrNoStatements
	}

	logger.Debug("compiled", "globals", c.globals, "instructions", code.InstructionCount())
	return &program{source: src, code: code}, nil
}

// commentOnly reports whether every non-blank line is a # or // comment.
func commentOnly(src string) bool {
	for line := range strings.SplitSeq(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		return false
	}
	return true
}
