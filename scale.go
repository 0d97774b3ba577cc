package heat

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Axis

// Axis is one of the two plotted dimensions of a chart or the weight scale of
// the heat series. It learns the range covered by the data, turns it into an
// actual range through autoscaling and maps data values to pixels through its
// Transformation.
type Axis struct {
	// Title is the axis' title.
	Title string

	// Data is the range covered by actual data.
	Data Interval

	// Interval captures the actual range of this axis. It may be larger or
	// smaller than the Data range.
	Interval

	// ScaleType determines the fundamental nature of the axis.
	ScaleType ScaleType

	// Autoscaling can be used to control autoscaling of this axis.
	Autoscaling

	// Trans maps data values to pixels.
	Trans Transformation
}

// NewAxis returns a new linear axis which autoscales to the actual data.
func NewAxis() *Axis {
	a := &Axis{
		Data:      unsetInterval(),
		Interval:  unsetInterval(),
		ScaleType: Linear,
		Autoscaling: Autoscaling{
			MinRange: unsetInterval(),
			MaxRange: unsetInterval(),
		},
		Trans: LinearTrans,
	}
	a.Autoscaling.Expand.Relative = 0.05

	return a
}

// ActualRange returns the current actual range of a.
func (a *Axis) ActualRange() Interval {
	return a.Interval
}

// ToPixel maps the data value v onto the pixel interval.
// A degenerate axis maps every value to the center of pixels.
func (a *Axis) ToPixel(v float64, pixels Interval) float64 {
	if a.Min == a.Max {
		return (pixels.Min + pixels.Max) / 2
	}
	return a.Trans.Trans(a.Interval, pixels, v)
}

// UpdateData updates a to cover i.
func (a *Axis) UpdateData(i Interval) {
	a.Data.Update(i.Min)
	a.Data.Update(i.Max)
}

// FixMin fixes the min of a to x. If x is NaN the min is determined by
// autoscaling to the actual data.
func (a *Axis) FixMin(x float64) {
	a.MinRange.Min = x
	a.MinRange.Max = x
}

// FixMax fixes the max of a to x. If x is NaN the max is determined by
// autoscaling to the actual data.
func (a *Axis) FixMax(x float64) {
	a.MaxRange.Min = x
	a.MaxRange.Max = x
}

// HasData reports whether the Data interval of a is valid.
func (a *Axis) HasData() bool {
	return !math.IsNaN(a.Data.Min) && !math.IsNaN(a.Data.Max)
}

// InRange reports whether x lies in the actual range of a.
func (a *Axis) InRange(x float64) bool {
	return x >= a.Min && x <= a.Max
}

func (a *Axis) String() string {
	if a == nil {
		return "<nil>"
	}
	return fmt.Sprintf("Range=[%.2f:%.2f] Data=[%.2f:%.2f] %s %q",
		a.Min, a.Max, a.Data.Min, a.Data.Max, a.ScaleType, a.Title)
}

// reset forgets the learned data range so a can learn again.
func (a *Axis) reset() {
	a.Data = unsetInterval()
}

// autoscale turns the data range into an actual range.
func (a *Axis) autoscale() {
	if !a.HasData() {
		return
	}

	ext := a.Expand.Relative*(a.Data.Max-a.Data.Min) + a.Expand.Absolute
	factor := 1 + a.Expand.Relative

	// Determine the left edge of a.
	if a.MinRange.Min == a.MinRange.Max {
		// Degenerate MinRange and non NaN: the user has set a fixed Min.
		a.Min = a.MinRange.Min
	} else {
		a.Min = a.Data.Min

		switch a.ScaleType {
		case Linear:
			a.Min -= ext
		case Discrete:
			a.Min -= 0.5 + ext
		case Logarithmic:
			a.Min /= factor
		default:
			panic(a.ScaleType)
		}

		// Clip autoscaling
		if a.MinRange.Min > a.Min {
			a.Min = a.MinRange.Min
		}
		if a.MinRange.Max < a.Min {
			a.Min = a.MinRange.Max
		}
	}

	// Determine the right edge of a.
	if a.MaxRange.Min == a.MaxRange.Max {
		a.Max = a.MaxRange.Min
	} else {
		a.Max = a.Data.Max

		switch a.ScaleType {
		case Linear:
			a.Max += ext
		case Discrete:
			a.Max += 0.5 + ext
		case Logarithmic:
			a.Max *= factor
		default:
			panic(a.ScaleType)
		}

		if a.MaxRange.Min > a.Max {
			a.Max = a.MaxRange.Min
		}
		if a.MaxRange.Max < a.Max {
			a.Max = a.MaxRange.Max
		}
	}
}

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j have the same edges, treating NaN edges
// as equal.
func (i Interval) Equal(j Interval) bool {
	if math.IsNaN(i.Min) != math.IsNaN(j.Min) || math.IsNaN(i.Max) != math.IsNaN(j.Max) {
		return false
	}
	return (math.IsNaN(i.Min) || i.Min == j.Min) && (math.IsNaN(i.Max) || i.Max == j.Max)
}

// ----------------------------------------------------------------------------
// ScaleType

// ScaleType selects one of the handful known axis types.
type ScaleType int

// String returns the type of st.
func (st ScaleType) String() string {
	return []string{"linear", "discrete", "log"}[int(st)]
}

const (
	Linear ScaleType = iota
	Discrete
	Logarithmic
)

// ----------------------------------------------------------------------------
// Autoscaling

// Autoscaling controls how the min and max value of an axis are scaled.
// Setting a range to a degenerate interval [f:f] will turn off autoscaling
// and fix the value to f. A non-degenerate range [u:v] will allow autoscaling
// between u and v. A NaN value works like -Inf for u and +Inf for v.
type Autoscaling struct {
	// Expand determines how much the actual data range is expanded.
	// Logarithmic axes use 1+Relative as a multiplicative factor.
	Expand struct {
		Absolute float64
		Relative float64
	}

	MinRange Interval // MinRange determines the allowed range of the Min of an axis.
	MaxRange Interval // MaxRange determines the allowed range of the Max of an axis.
}
