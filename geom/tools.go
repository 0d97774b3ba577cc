package geom

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// CanonicRectangle returns the canonical form of r, i.e. its Min points
// having smaller coordinates than its Max point.
func CanonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// clipRect clips rect to canvas. The returned rectangle is in the canonical
// form; it is empty if rect lies outside of canvas.
func clipRect(rect vg.Rectangle, canvas draw.Canvas) vg.Rectangle {
	rect = CanonicRectangle(rect)
	limit := CanonicRectangle(canvas.Rectangle)

	if rect.Min.X < limit.Min.X {
		rect.Min.X = limit.Min.X
	}
	if rect.Min.Y < limit.Min.Y {
		rect.Min.Y = limit.Min.Y
	}
	if rect.Max.X > limit.Max.X {
		rect.Max.X = limit.Max.X
	}
	if rect.Max.Y > limit.Max.Y {
		rect.Max.Y = limit.Max.Y
	}
	return rect
}

func empty(r vg.Rectangle) bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}
