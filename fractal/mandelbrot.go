// Package fractal computes Mandelbrot escape-time grids and renders them as text.
package fractal

// DefaultMaxIter is the iteration cap used when the caller has no preference.
const DefaultMaxIter = 20

// Sampling window of the complex plane.
const (
	ImagMin = -1.4
	ImagMax = 1.4
	RealMin = -2.0
	RealMax = 0.8
)

// divergeLimit is the squared magnitude a point must exceed to diverge.
const divergeLimit = 4.0

// Mandelbrot samples the plane on an h × w grid, imaginary axis from ImagMin
// to ImagMax down the rows and real axis from RealMin to RealMax across the
// columns, both inclusive. Each cell starts at z = c and is iterated maxit
// times with z = z² + c. A cell whose |z|² exceeds 4 records the iteration
// index the first time it happens, and every diverged z is reset to 2 so
// later iterations stay finite.
//
// Each arithmetic step is rounded on its own, with no fused multiply-add, so
// the grid is identical to the one the scripted implementation produces.
func Mandelbrot(h, w, maxit int) *Grid {
	g := newGrid(h, w, maxit)
	if g.Height == 0 || maxit <= 0 {
		return g
	}

	ys := linspace(ImagMin, ImagMax, h)
	xs := linspace(RealMin, RealMax, w)

	zr := make([]float64, h*w)
	zi := make([]float64, h*w)
	for r, y := range ys {
		for c, x := range xs {
			zr[r*w+c] = x
			zi[r*w+c] = y
		}
	}

	for i := range maxit {
		for r, ci := range ys {
			for c, cr := range xs {
				k := r*w + c
				a, b := zr[k], zi[k]

				nr := float64(float64(a*a)-float64(b*b)) + cr
				ni := float64(float64(2*a)*b) + ci

				if float64(nr*nr)+float64(ni*ni) > divergeLimit {
					if g.cells[k] == maxit {
						g.cells[k] = i
					}
					nr, ni = 2, 0
				}
				zr[k], zi[k] = nr, ni
			}
		}
	}
	return g
}

// linspace returns n evenly spaced values from start to stop inclusive.
// A single sample is start.
func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}

	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(float64(i)*step)
	}
	return out
}
