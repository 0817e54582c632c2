package fractal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultPalette maps escape times to characters, fastest escape first. The
// last character marks cells that never diverged.
const DefaultPalette = " .:-=+*#%@"

var defaultColors = []lipgloss.Color{
	"#1E1E3F", "#2D2B6B", "#3F3D99", "#5A4FCF", "#7D56F4",
	"#A77DF2", "#D29BF0", "#F2B5D4", "#FAD7A0",
}

var insideStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Bold(true)

// RenderOption configures Render.
type RenderOption func(*renderer)

type renderer struct {
	palette []rune
	color   bool
}

// WithPalette replaces the character ramp. Palettes shorter than two
// characters are ignored.
func WithPalette(palette string) RenderOption {
	return func(r *renderer) {
		if runes := []rune(palette); len(runes) >= 2 {
			r.palette = runes
		}
	}
}

// WithColor styles each band with a lipgloss foreground colour.
func WithColor(enabled bool) RenderOption {
	return func(r *renderer) {
		r.color = enabled
	}
}

// Render draws g as text, one line per row.
func Render(g *Grid, opts ...RenderOption) string {
	r := &renderer{palette: []rune(DefaultPalette)}
	for _, opt := range opts {
		opt(r)
	}

	var b strings.Builder
	for row := range g.Height {
		if row > 0 {
			b.WriteByte('\n')
		}
		r.renderRow(&b, g, row)
	}
	return b.String()
}

// band returns the palette index for an escape time.
func (r *renderer) band(v, maxit int) int {
	last := len(r.palette) - 1
	if maxit <= 0 || v >= maxit {
		return last
	}
	if v < 0 {
		return 0
	}
	return min(v*last/maxit, last-1)
}

func (r *renderer) style(band int) lipgloss.Style {
	if band == len(r.palette)-1 {
		return insideStyle
	}
	return lipgloss.NewStyle().Foreground(defaultColors[band%len(defaultColors)])
}

func (r *renderer) renderRow(b *strings.Builder, g *Grid, row int) {
	if !r.color {
		for col := range g.Width {
			b.WriteRune(r.palette[r.band(g.At(row, col), g.MaxIter)])
		}
		return
	}

	// Consecutive cells in the same band share one styled run.
	var run strings.Builder
	current := -1
	flush := func() {
		if run.Len() > 0 {
			b.WriteString(r.style(current).Render(run.String()))
			run.Reset()
		}
	}
	for col := range g.Width {
		band := r.band(g.At(row, col), g.MaxIter)
		if band != current {
			flush()
			current = band
		}
		run.WriteRune(r.palette[band])
	}
	flush()
}
