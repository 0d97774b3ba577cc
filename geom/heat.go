// Package geom draws heat series onto a gonum canvas.
//
// CanvasViews is the drawing backend of a heat.Chart: it creates one view
// per point which fills the point's cell on the canvas. Views are kept by
// the points across render passes so a cell can be faded from the color of
// the previous pass to its new color.
package geom

import (
	"image/color"

	"github.com/vdobler/heat"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// CanvasViews paints heat cells onto Canvas. It implements heat.ViewProvider.
type CanvasViews struct {
	Canvas draw.Canvas

	// Background fills the draw area before a pass if non-nil.
	Background color.Color

	// Border is drawn inside each cell if its width is positive.
	Border draw.LineStyle

	// Fade is the remaining part of the color transition: 0 draws the
	// current color of each cell, 1 the color of the previous pass.
	Fade float64
}

// NewView implements heat.ViewProvider.
func (cv *CanvasViews) NewView(p *heat.Point) heat.Drawable {
	return &cellView{views: cv}
}

// Render runs one render pass of chart onto cv.Canvas.
func (cv *CanvasViews) Render(chart *heat.Chart) error {
	if cv.Background != nil {
		cv.Canvas.SetColor(cv.Background)
		cv.Canvas.Fill(cv.Canvas.Rectangle.Path())
	}
	return chart.Update(cv.Canvas.Rectangle, cv)
}

// cellView draws one point. Heat cells are not connected so the previous
// point is not needed.
type cellView struct {
	views *CanvasViews
	draws int // number of passes this cell was drawn in
}

func (v *cellView) Draw(current, _ *heat.Point) {
	canvas := v.views.Canvas
	rect := clipRect(current.ViewModel.Rect, canvas)
	if empty(rect) {
		return
	}

	vm := current.ViewModel
	canvas.SetColor(heat.Crossfade(vm.From, vm.To, 1-v.views.Fade))
	canvas.Fill(rect.Path())
	v.draws++

	border := v.views.Border
	if border.Width <= 0 || border.Color == nil {
		return
	}
	w := 0.499 * border.Width
	rect.Min.X += w
	rect.Min.Y += w
	rect.Max.X -= w
	rect.Max.Y -= w
	canvas.SetColor(border.Color)
	canvas.SetLineWidth(border.Width)
	canvas.SetLineDash(border.Dashes, border.DashOffs)
	canvas.Stroke(rect.Path())
}

// Cell returns the rectangle a point occupies on the canvas after clipping.
// The second result is false if the point is not visible.
func (cv *CanvasViews) Cell(p *heat.Point) (vg.Rectangle, bool) {
	rect := clipRect(p.ViewModel.Rect, cv.Canvas)
	return rect, !empty(rect)
}
