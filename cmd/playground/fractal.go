package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/robbyt/go-polybridge"
	"github.com/robbyt/go-polybridge/bridge"
	"github.com/robbyt/go-polybridge/fractal"
	"github.com/robbyt/go-polybridge/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const fallbackWidth = 80

func newFractalCmd(a *app) *cobra.Command {
	var flagVals config.Fractal
	set := overrides{
		"height":  func(c *config.Config) { c.Fractal.Height = flagVals.Height },
		"width":   func(c *config.Config) { c.Fractal.Width = flagVals.Width },
		"maxit":   func(c *config.Config) { c.Fractal.MaxIter = flagVals.MaxIter },
		"engine":  func(c *config.Config) { c.Fractal.Engine = flagVals.Engine },
		"color":   func(c *config.Config) { c.Fractal.Color = flagVals.Color },
		"palette": func(c *config.Config) { c.Fractal.Palette = flagVals.Palette },
	}

	cmd := &cobra.Command{
		Use:   "fractal",
		Short: "Plot the Mandelbrot set in the terminal",
		Long: `Compute a Mandelbrot escape-time grid with the Go generator or the scripted
one and render it as text. Both engines produce identical grids.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := set.apply(cmd.Flags(), a.cfg); err != nil {
				return err
			}
			return a.runFractal(cmd.Context(), cmd.OutOrStdout())
		},
	}

	d := config.Default().Fractal
	cmd.Flags().IntVar(&flagVals.Height, "height", d.Height, "Rows to sample")
	cmd.Flags().IntVar(&flagVals.Width, "width", d.Width, "Columns to sample (default: terminal width)")
	cmd.Flags().IntVar(&flagVals.MaxIter, "maxit", d.MaxIter, "Iteration cap")
	cmd.Flags().StringVar(&flagVals.Engine, "engine", d.Engine, "Generator: go, starlark")
	cmd.Flags().BoolVar(&flagVals.Color, "color", d.Color, "Colour the output")
	cmd.Flags().StringVar(&flagVals.Palette, "palette", d.Palette, "Characters from outside to inside the set")
	return cmd
}

func terminalWidth(out io.Writer) int {
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return fallbackWidth
}

func (a *app) runFractal(ctx context.Context, out io.Writer) error {
	f := a.cfg.Fractal
	width := f.Width
	if width == 0 {
		width = terminalWidth(out)
	}

	var grid *fractal.Grid
	switch f.Engine {
	case config.EngineStarlark:
		module, err := polybridge.LoadResource(ctx, nil, nil, a.handler)
		if err != nil {
			return err
		}
		grid, err = bridge.Mandelbrot(ctx, module, f.Height, width, f.MaxIter)
		if err != nil {
			return err
		}
	default:
		grid = fractal.Mandelbrot(f.Height, width, f.MaxIter)
	}

	opts := []fractal.RenderOption{fractal.WithColor(f.Color)}
	if f.Palette != "" {
		opts = append(opts, fractal.WithPalette(f.Palette))
	}
	_, err := fmt.Fprintln(out, fractal.Render(grid, opts...))
	return err
}
