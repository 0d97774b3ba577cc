// Package data contains weighted data sources for heat series.
package data

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/plotter"
)

// XYZRange returns the minimum and maximum x, y and z values. NaN values
// are skipped. Without any values the minima are +Inf and the maxima -Inf.
func XYZRange(xyzs plotter.XYZer) (xmin, xmax, ymin, ymax, zmin, zmax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)
	zmin, zmax = math.Inf(1), math.Inf(-1)
	for i := 0; i < xyzs.Len(); i++ {
		x, y, z := xyzs.XYZ(i)
		xmin, xmax = update(xmin, xmax, x)
		ymin, ymax = update(ymin, ymax, y)
		zmin, zmax = update(zmin, zmax, z)
	}
	return xmin, xmax, ymin, ymax, zmin, zmax
}

func update(lo, hi, v float64) (float64, float64) {
	if math.IsNaN(v) {
		return lo, hi
	}
	return math.Min(lo, v), math.Max(hi, v)
}

var _ plotter.XYZer = Grid{}

// Grid is a matrix of weights on a regular grid. Column c of Data is placed
// at x = XOffset + c*Step, row r at y = YOffset + r*Step. A zero Step is
// treated as 1.
//
// Grid implements the plotter.XYZer interface in row major order.
type Grid struct {
	XOffset, YOffset float64
	Step             float64
	Data             *mat.Dense
}

func (g Grid) step() float64 {
	if g.Step == 0 {
		return 1
	}
	return g.Step
}

// Len returns the number of cells of g.
func (g Grid) Len() int {
	r, c := g.Data.Dims()
	return r * c
}

// XYZ returns the position and weight of cell i.
func (g Grid) XYZ(i int) (x, y, z float64) {
	_, cols := g.Data.Dims()
	r, c := i/cols, i%cols
	s := g.step()
	return g.XOffset + float64(c)*s, g.YOffset + float64(r)*s, g.Data.At(r, c)
}

// XY returns the position of cell i.
func (g Grid) XY(i int) (x, y float64) {
	x, y, _ = g.XYZ(i)
	return x, y
}
