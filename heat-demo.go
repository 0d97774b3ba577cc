//go:build ignore
// +build ignore

package main

import (
	"image/color"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vdobler/heat"
	"github.com/vdobler/heat/data"
	"github.com/vdobler/heat/geom"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func main() {
	logrus.SetLevel(logrus.DebugLevel)

	chart := heat.NewChart()
	chart.Title = "Heat"
	chart.X.Title = "Column"
	chart.Y.Title = "Row"

	// A bump on a 24x16 grid, colored with Kindlmann.
	m := mat.NewDense(16, 24, nil)
	for r := 0; r < 16; r++ {
		for c := 0; c < 24; c++ {
			dx, dy := float64(c)-12, float64(r)-8
			m.Set(r, c, 100*math.Exp(-(dx*dx+dy*dy)/40))
		}
	}
	bump := heat.NewSeries("bump", data.Grid{Data: m})
	kindlmann, err := heat.GradientFromColorMap(moreland.Kindlmann(), 8)
	if err != nil {
		panic(err)
	}
	bump.SetGradient(kindlmann)
	bump.Interpolator.Space = heat.LabSpace

	// A sparse diagonal using the default gradient from the theme.
	diagonal := heat.NewSeries("diagonal", plotter.XYZs{
		{X: 2, Y: 2, Z: 10},
		{X: 4, Y: 4, Z: 40},
		{X: 6, Y: 6, Z: 70},
		{X: 8, Y: 8, Z: 100},
	})

	chart.Add(bump, diagonal)
	if err := chart.Range(); err != nil {
		panic(err)
	}

	img := vgimg.New(16*vg.Centimeter, 12*vg.Centimeter)
	dc := draw.New(img)
	views := &geom.CanvasViews{
		Canvas:     draw.Crop(dc, vg.Centimeter, -vg.Centimeter, vg.Centimeter, -vg.Centimeter),
		Background: color.Gray16{0xeeee},
		Border:     draw.LineStyle{Color: color.White, Width: 0.5},
	}
	if err := views.Render(chart); err != nil {
		panic(err)
	}

	w, err := os.Create("heat.png")
	if err != nil {
		panic(err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(w); err != nil {
		panic(err)
	}
	if err = w.Close(); err != nil {
		panic(err)
	}
}
