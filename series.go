package heat

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/sirupsen/logrus"
	"github.com/vdobler/heat/data"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WeightedCoordinate is one data point of a heat series.
type WeightedCoordinate struct {
	X, Y, Weight float64
}

// ViewModel is the drawable state of a point in one render pass.
type ViewModel struct {
	Rect vg.Rectangle
	From color.NRGBA // color of the previous pass
	To   color.NRGBA // color of this pass
}

// Drawable paints a point. Draw gets the current point and the one drawn
// just before it in this pass (nil for the first point).
type Drawable interface {
	Draw(current, previous *Point)
}

// ViewProvider creates the Drawable of a point the first time the point
// is rendered.
type ViewProvider interface {
	NewView(p *Point) Drawable
}

// GradientColored is implemented by series colored through a Gradient.
type GradientColored interface {
	Gradient() Gradient
}

// Point is a data point of a series together with its view state.
// The view state is created on the first render pass and updated in place
// on every later pass.
type Point struct {
	Model      interface{} // Model is the source of the point, e.g. its data index.
	Coordinate WeightedCoordinate

	View      Drawable
	ViewModel ViewModel
	Area      vg.Rectangle // Area is the interaction region used for hit-testing.
}

// Pass bundles the chart state of one render pass.
type Pass struct {
	Axes    [2]Scalable // Axes of the two plotted dimensions.
	Area    vg.Rectangle
	Invert  bool     // Invert draws the first dimension vertically.
	Weights Interval // Weights is the range of the active weight scale.

	// Views creates the views of points drawn for the first time. It may
	// only be nil if all points already have a view.
	Views ViewProvider
}

// ----------------------------------------------------------------------------
// Series

// Series is a heat series: each point is drawn as a cell colored by its
// weight. A Series must not be updated concurrently.
type Series struct {
	Title  string
	Points []*Point

	// Interpolator controls how weights are mapped to colors.
	Interpolator Interpolator

	// Log receives debug and trace output of render passes.
	// Nil means logrus.StandardLogger().
	Log *logrus.Logger

	gradient Gradient
}

// NewSeries returns a series with one point per element of xyz.
func NewSeries(title string, xyz plotter.XYZer) *Series {
	s := &Series{Title: title}
	s.SetData(xyz)
	return s
}

// SetData replaces the coordinates of s by xyz. Points are matched by index
// so that existing points keep their views and animate from their last
// color.
func (s *Series) SetData(xyz plotter.XYZer) {
	n := xyz.Len()
	if n < len(s.Points) {
		s.Points = s.Points[:n]
	}
	for i := 0; i < n; i++ {
		x, y, z := xyz.XYZ(i)
		if i == len(s.Points) {
			s.Points = append(s.Points, &Point{Model: i})
		}
		s.Points[i].Coordinate = WeightedCoordinate{X: x, Y: y, Weight: z}
	}
}

// Gradient returns the gradient used to color s. It implements
// GradientColored.
func (s *Series) Gradient() Gradient {
	return s.gradient
}

// SetGradient replaces the gradient of s. The stops are copied; later changes
// to g do not affect s.
func (s *Series) SetGradient(g Gradient) {
	s.gradient = append(Gradient(nil), g...)
}

// Len, XYZ and XY implement plotter.XYZer over the coordinates of s.
func (s *Series) Len() int { return len(s.Points) }

func (s *Series) XYZ(i int) (x, y, z float64) {
	c := s.Points[i].Coordinate
	return c.X, c.Y, c.Weight
}

func (s *Series) XY(i int) (x, y float64) {
	c := s.Points[i].Coordinate
	return c.X, c.Y
}

// XYZRange returns the minimum and maximum coordinates and weights of s.
// Dimensions without values are unset.
func (s *Series) XYZRange() (x, y, w Interval) {
	xmin, xmax, ymin, ymax, wmin, wmax := data.XYZRange(s)
	return dataRange(xmin, xmax), dataRange(ymin, ymax), dataRange(wmin, wmax)
}

func dataRange(lo, hi float64) Interval {
	if lo > hi {
		return unsetInterval()
	}
	return Interval{lo, hi}
}

func (s *Series) logger() *logrus.Logger {
	if s.Log == nil {
		return logrus.StandardLogger()
	}
	return s.Log
}

// Update runs one render pass over all points of s in order: it lays out the
// heat cell of each point, colors it from its weight, hands it to its view
// for drawing and records the interaction area. A gradient which cannot
// color a weight aborts the pass with a *ConfigurationError; points already
// handled keep their new state.
func (s *Series) Update(pass Pass) error {
	log := s.logger().WithField("series", s.Title)

	if pass.Views == nil {
		for _, p := range s.Points {
			if p.View == nil {
				return fmt.Errorf("heat: series %q: %w", s.Title, ErrNoViews)
			}
		}
	}

	ranges := [2]Interval{pass.Axes[0].ActualRange(), pass.Axes[1].ActualRange()}
	cell := BuildCell(ranges, pass.Area.Size(), pass.Invert)
	scaler := Scaler{Axes: pass.Axes, Area: pass.Area, Cell: cell}
	log.Debugf("update %d points, cell %.2fx%.2f, weights [%g:%g], invert=%t",
		len(s.Points), cell.Width, cell.Height, pass.Weights.Min, pass.Weights.Max, pass.Invert)

	var previous *Point
	for _, p := range s.Points {
		if p.View == nil {
			p.View = pass.Views.NewView(p)
			p.ViewModel = ViewModel{To: color.NRGBA{}}
		}

		rect := scaler.Rect(p.Coordinate)
		to, err := s.Interpolator.Interpolate(s.gradient, pass.Weights.Min, pass.Weights.Max, p.Coordinate.Weight)
		if err != nil {
			var ce *ConfigurationError
			if errors.As(err, &ce) {
				ce.Series = s.Title
			}
			return err
		}

		p.ViewModel = ViewModel{Rect: rect, From: p.ViewModel.To, To: to}
		p.View.Draw(p, previous)
		p.Area = rect
		log.Tracef("point %v at %v: %v -> %v", p.Model, rect.Min, p.ViewModel.From, to)

		previous = p
	}
	return nil
}
