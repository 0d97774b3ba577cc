// Axis Transformations
//
// Transformations map the actual range of an axis onto a pixel interval.
package heat

import (
	"math"
)

// A Transformation maps the interval from onto the interval to.
type Transformation struct {
	Name  string
	Trans func(from, to Interval, x float64) float64
}

// IdentityTrans does not transform at all.
var IdentityTrans = Transformation{
	Name:  "Identity",
	Trans: func(from, to Interval, x float64) float64 { return x },
}

// LinearTrans implements a linear mapping of from to to.
var LinearTrans = Transformation{
	Name: "Linear",
	Trans: func(from, to Interval, x float64) float64 {
		return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
	},
}

// Log10Trans maps from to to logarithmically. Both edges of from must
// be positive.
var Log10Trans = Transformation{
	Name: "Log10",
	Trans: func(from, to Interval, x float64) float64 {
		t := math.Log10(x/from.Min) / math.Log10(from.Max/from.Min)
		return to.Min + t*(to.Max-to.Min)
	},
}
