// Package bridge gives Go callers typed access to the scripted Complex
// resource. Every proxy declares the shape it expects back from the script and
// fails with data.ErrUnexpectedType when the script returns something else.
package bridge

import (
	"context"
	"fmt"

	"github.com/robbyt/go-polybridge/fractal"
	"github.com/robbyt/go-polybridge/platform"
	"github.com/robbyt/go-polybridge/platform/data"
)

// Names of the resource's globals.
const (
	fnComplex      = "Complex"
	fnNewComplex   = "newComplex"
	fnAdd          = "add"
	fnToString     = "toString"
	fnToArray      = "toArray"
	fnToDictionary = "toDictionary"
	fnEchoArray    = "echoArray"
	fnCallMe       = "callme"
	fnMandelbrot   = "mandelbrot"
	globalClassVar = "classvar"
)

// Caller is a loaded script module. *evaluator.Module from the Starlark
// engine satisfies it.
type Caller interface {
	Call(ctx context.Context, name string, args ...any) (platform.Value, error)
	Global(name string) (platform.Value, error)
}

func unexpected(name string, want data.Types, got platform.Value) error {
	return fmt.Errorf("%w: %s returned %s, want %s", data.ErrUnexpectedType, name, got.Type(), want)
}

// ClassVar returns the resource's class-level string attribute.
func ClassVar(c Caller) (string, error) {
	v, err := c.Global(globalClassVar)
	if err != nil {
		return "", err
	}
	s, err := data.AsString(v.Interface())
	if err != nil {
		return "", fmt.Errorf("%s: %w", globalClassVar, err)
	}
	return s, nil
}

// Mandelbrot runs the scripted escape-time generator and checks that it
// returned an h × w grid of integers.
func Mandelbrot(ctx context.Context, c Caller, h, w, maxit int) (*fractal.Grid, error) {
	v, err := c.Call(ctx, fnMandelbrot, h, w, maxit)
	if err != nil {
		return nil, err
	}

	rows, err := data.AsIntGrid(v.Interface())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fnMandelbrot, err)
	}

	wantRows, wantCols := h, w
	if h <= 0 || w <= 0 {
		wantRows, wantCols = 0, 0
	}
	if len(rows) != wantRows {
		return nil, fmt.Errorf("%w: %s returned %d rows, want %d",
			data.ErrUnexpectedType, fnMandelbrot, len(rows), wantRows)
	}
	for i, row := range rows {
		if len(row) != wantCols {
			return nil, fmt.Errorf("%w: %s row %d has %d cells, want %d",
				data.ErrUnexpectedType, fnMandelbrot, i, len(row), wantCols)
		}
	}

	return fractal.NewGrid(rows, maxit)
}
