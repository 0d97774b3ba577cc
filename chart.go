package heat

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot/vg"
)

// Chart is a Cartesian chart showing heat series. It owns the axes and
// drives the render passes of its series.
type Chart struct {
	Title string

	X, Y   *Axis // X and Y are the axes of the two plotted dimensions.
	Weight *Axis // Weight is the active weight scale.

	// InvertAxes draws X vertically and Y horizontally.
	InvertAxes bool

	Series []*Series
	Theme  Theme

	// Log receives debug output. Nil means logrus.StandardLogger().
	Log *logrus.Logger
}

// NewChart returns an empty chart with autoscaling axes and the default
// theme. The X and Y axes are discrete as heat cells typically sit on
// integer positions; the weight axis is not expanded.
func NewChart() *Chart {
	c := &Chart{
		X:      NewAxis(),
		Y:      NewAxis(),
		Weight: NewAxis(),
		Theme:  DefaultTheme(),
	}
	c.X.ScaleType = Discrete
	c.Y.ScaleType = Discrete
	c.X.Expand.Relative = 0
	c.Y.Expand.Relative = 0
	c.Weight.Expand.Relative = 0
	return c
}

// Add appends series to c.
func (c *Chart) Add(series ...*Series) {
	c.Series = append(c.Series, series...)
}

func (c *Chart) logger() *logrus.Logger {
	if c.Log == nil {
		return logrus.StandardLogger()
	}
	return c.Log
}

// Learn all data ranges of all series.
func (c *Chart) learnDataRange() {
	for _, a := range c.axes() {
		a.reset()
	}
	for _, s := range c.Series {
		x, y, w := s.XYZRange()
		c.X.UpdateData(x)
		c.Y.UpdateData(y)
		c.Weight.UpdateData(w)
	}
}

func (c *Chart) axes() []*Axis {
	return []*Axis{c.X, c.Y, c.Weight}
}

func (c *Chart) debugAxes(info string) {
	log := c.logger()
	if !log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	log.WithFields(logrus.Fields{
		"x":      c.X.String(),
		"y":      c.Y.String(),
		"weight": c.Weight.String(),
	}).Debug(info)
}

// X- and Y-axes must not be unset.
func (c *Chart) deDegenerateXandY() {
	for _, a := range []*Axis{c.X, c.Y} {
		if math.IsNaN(a.Min) {
			a.Min = -1
		}
		if math.IsNaN(a.Max) {
			a.Max = 1
		}
	}
}

// Range prepares the axes of c from the data of all series and gives each
// series without gradient a default one from the theme.
func (c *Chart) Range() error {
	c.learnDataRange()
	c.debugAxes("after learning data ranges")

	for _, a := range c.axes() {
		a.autoscale()
	}
	c.debugAxes("after autoscaling")

	c.deDegenerateXandY()

	for _, a := range c.axes() {
		if a.ScaleType == Logarithmic && a.HasData() && a.Min <= 0 {
			return fmt.Errorf("heat: logarithmic axis %q covers non-positive values [%g:%g]",
				a.Title, a.Min, a.Max)
		}
	}

	for i, s := range c.Series {
		s.SetGradient(EnsureGradient(s.Gradient(), c.Theme.Color(i), c.Theme.DefaultOpacity))
	}
	return nil
}

// Update runs one render pass of all series of c into area. Range must have
// been called before. The first failing series aborts the pass.
func (c *Chart) Update(area vg.Rectangle, views ViewProvider) error {
	pass := Pass{
		Axes:    [2]Scalable{c.X, c.Y},
		Area:    area,
		Invert:  c.InvertAxes,
		Weights: c.Weight.ActualRange(),
		Views:   views,
	}
	for _, s := range c.Series {
		if err := s.Update(pass); err != nil {
			return err
		}
	}
	return nil
}
