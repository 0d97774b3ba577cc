// Package heat computes the visual representation of heat series in
// Cartesian charts.
//
// It uses the geometry and drawing types of gonum.org/v1/plot.
//
// # Heat series
//
// A heat series is a list of weighted coordinates (x, y, weight). Each
// point is drawn as a cell whose size is derived from the density of the
// two axes and whose color is taken from a Gradient at the normalized
// weight of the point.
//
// A render pass (Series.Update) works in three steps:
//  1. BuildCell determines the cell size once for the pass.
//  2. A Scaler maps each coordinate to its cell rectangle.
//  3. An Interpolator maps each weight to a color.
//
// The rectangle and the color of the current and of the previous pass are
// stored in the point's ViewModel and handed to the point's Drawable.
// The Drawable is created by a ViewProvider the first time a point is
// rendered and stays with the point, so drawing backends can fade a cell
// from its old to its new color.
//
// # Gradients
//
// A Gradient is an ordered list of stops spanning the offsets 0 to 1.
// Weights are normalized by the maximum weight (MaxNormalization) unless
// RangeNormalization is requested. Between two stops colors are blended
// channel wise (RGBSpace) or perceptually (LabSpace, HCLSpace). Gradients
// which do not cover a normalized weight yield a *ConfigurationError.
//
// Series without a gradient get a two stop gradient from the chart's
// Theme (EnsureGradient).
//
// # Axis inversion
//
// With inverted axes the first plotted dimension is drawn vertically and
// the second horizontally. The Cell returned by BuildCell carries this
// mapping for the Scaler.
package heat
