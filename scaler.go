package heat

import (
	"gonum.org/v1/plot/vg"
)

// Scalable is the host's data-to-pixel scale of one plotted dimension.
type Scalable interface {
	// ActualRange returns the range of data values currently shown.
	ActualRange() Interval

	// ToPixel maps the data value v onto the pixel interval.
	ToPixel(v float64, pixels Interval) float64
}

// Scaler places weighted coordinates in the draw area. Axes are indexed by
// plotted dimension; Cell decides which of them is horizontal.
type Scaler struct {
	Axes [2]Scalable
	Area vg.Rectangle
	Cell Cell
}

// ToPixel returns the pixel position of c.
func (s Scaler) ToPixel(c WeightedCoordinate) vg.Point {
	values := [2]float64{c.X, c.Y}
	xi, yi := s.Cell.XIndex, s.Cell.YIndex
	horizontal := Interval{float64(s.Area.Min.X), float64(s.Area.Max.X)}
	vertical := Interval{float64(s.Area.Min.Y), float64(s.Area.Max.Y)}
	return vg.Point{
		X: vg.Length(s.Axes[xi].ToPixel(values[xi], horizontal)),
		Y: vg.Length(s.Axes[yi].ToPixel(values[yi], vertical)),
	}
}

// Rect returns the heat cell of c. The cell starts at the pixel position
// horizontally and is centered on it vertically.
func (s Scaler) Rect(c WeightedCoordinate) vg.Rectangle {
	p := s.ToPixel(c)
	p.Y -= s.Cell.Height / 2
	return vg.Rectangle{
		Min: p,
		Max: vg.Point{X: p.X + s.Cell.Width, Y: p.Y + s.Cell.Height},
	}
}
