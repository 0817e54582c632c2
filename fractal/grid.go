package fractal

import (
	"errors"
	"fmt"
	"slices"
)

// ErrRaggedGrid is returned when rows of different lengths are turned into a Grid.
var ErrRaggedGrid = errors.New("grid rows have different lengths")

// Grid is a height × width table of escape times. Cells equal to MaxIter did
// not diverge within the iteration cap. A Grid is not modified after it is returned.
type Grid struct {
	Height  int
	Width   int
	MaxIter int

	cells []int
}

func newGrid(h, w, maxit int) *Grid {
	if h <= 0 || w <= 0 {
		return &Grid{MaxIter: maxit}
	}

	cells := make([]int, h*w)
	for i := range cells {
		cells[i] = maxit
	}
	return &Grid{Height: h, Width: w, MaxIter: maxit, cells: cells}
}

// NewGrid builds a Grid from rows of escape times, such as those returned by
// the scripted generator.
func NewGrid(rows [][]int, maxit int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return &Grid{MaxIter: maxit}, nil
	}

	g := &Grid{Height: len(rows), Width: len(rows[0]), MaxIter: maxit}
	g.cells = make([]int, 0, g.Height*g.Width)
	for i, row := range rows {
		if len(row) != g.Width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedGrid, i, len(row), g.Width)
		}
		g.cells = append(g.cells, row...)
	}
	return g, nil
}

// At returns the escape time at row r, column c. It panics when out of range.
func (g *Grid) At(r, c int) int {
	if r < 0 || r >= g.Height || c < 0 || c >= g.Width {
		panic(fmt.Sprintf("fractal: cell (%d, %d) out of range %dx%d", r, c, g.Height, g.Width))
	}
	return g.cells[r*g.Width+c]
}

// Rows returns a copy of the grid as a slice of rows.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.Height)
	for r := range rows {
		rows[r] = slices.Clone(g.cells[r*g.Width : (r+1)*g.Width])
	}
	return rows
}

// Equal reports whether both grids have the same shape, cap and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.Height == other.Height &&
		g.Width == other.Width &&
		g.MaxIter == other.MaxIter &&
		slices.Equal(g.cells, other.cells)
}

// Diverged counts the cells that escaped before the cap.
func (g *Grid) Diverged() int {
	n := 0
	for _, v := range g.cells {
		if v != g.MaxIter {
			n++
		}
	}
	return n
}

func (g *Grid) String() string {
	return fmt.Sprintf("fractal.Grid{Height: %d, Width: %d, MaxIter: %d}", g.Height, g.Width, g.MaxIter)
}
