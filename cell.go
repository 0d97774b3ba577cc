package heat

import (
	"math"

	"gonum.org/v1/plot/vg"
)

// Cell is the size of one heat cell in a render pass together with the
// mapping of the two plotted dimensions to the horizontal (XIndex) and
// vertical (YIndex) screen direction.
type Cell struct {
	Width, Height  vg.Length
	XIndex, YIndex int
}

// BuildCell derives the cell size from the actual ranges of the two plotted
// dimensions and the size of the draw area. With invert the first dimension
// is drawn vertically and the second horizontally.
//
// The cell size is an estimate of the data density, not an exact binning:
// width = size.X / (delta + 1) where delta is the extent of the horizontal
// dimension. A zero delta is replaced by math.MaxFloat64 which degenerates
// the cell to (almost) zero thickness.
func BuildCell(ranges [2]Interval, size vg.Point, invert bool) Cell {
	c := Cell{XIndex: 0, YIndex: 1}
	if invert {
		c.XIndex, c.YIndex = 1, 0
	}

	var delta [2]float64
	for i, r := range ranges {
		delta[i] = r.Max - r.Min
		if delta[i] == 0 {
			delta[i] = math.MaxFloat64
		}
	}

	c.Width = size.X / vg.Length(delta[c.XIndex]+1)
	c.Height = size.Y / vg.Length(delta[c.YIndex]+1)
	return c
}
