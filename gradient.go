package heat

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"
)

// GradientStop anchors a color at an offset in [0,1] of a Gradient.
type GradientStop struct {
	Offset float64
	Color  color.NRGBA
}

// Gradient is a piecewise linear color ramp. Its stops must be ordered by
// ascending offset, the first stop must have offset 0 and the last one
// offset 1.
type Gradient []GradientStop

// Validate checks g for the properties Interpolate relies on.
func (g Gradient) Validate() error {
	if len(g) < 2 {
		return &ConfigurationError{Offset: math.NaN(), Err: ErrTooFewStops}
	}
	if g[0].Offset != 0 {
		return &ConfigurationError{Offset: 0, Err: ErrUncovered}
	}
	if g[len(g)-1].Offset != 1 {
		return &ConfigurationError{Offset: 1, Err: ErrUncovered}
	}
	for i := 1; i < len(g); i++ {
		if g[i].Offset < g[i-1].Offset {
			return &ConfigurationError{Offset: g[i].Offset, Err: ErrUncovered}
		}
	}
	return nil
}

// ----------------------------------------------------------------------------
// Interpolator

// Blend selects how the blend factor between two bracketing stops is computed.
type Blend int

const (
	// LocalBlend normalizes the offset within the bracketing stops:
	// p = (offset - from.Offset) / (to.Offset - from.Offset).
	LocalBlend Blend = iota

	// LegacyBlend uses the normalized offset itself as blend factor,
	// the bracketing stops only select the two colors.
	LegacyBlend
)

// Normalization selects how a weight is turned into a gradient offset.
type Normalization int

const (
	// MaxNormalization computes weight / maxWeight; the minimum weight
	// is ignored and weights are assumed to be non-negative.
	MaxNormalization Normalization = iota

	// RangeNormalization computes (weight - minWeight) / (maxWeight - minWeight).
	RangeNormalization
)

// ColorSpace selects the space the color channels are blended in.
// Alpha is always blended linearly.
type ColorSpace int

const (
	RGBSpace ColorSpace = iota // channel wise, rounded
	LabSpace                   // CIE L*a*b*
	HCLSpace                   // CIE L*C*h°
)

// Interpolator maps weights to colors. The zero value uses LocalBlend,
// MaxNormalization and RGBSpace.
type Interpolator struct {
	Blend         Blend
	Normalization Normalization
	Space         ColorSpace
}

// Interpolate maps weight to a color of stops with the default Interpolator.
func Interpolate(stops Gradient, minWeight, maxWeight, weight float64) (color.NRGBA, error) {
	return Interpolator{}.Interpolate(stops, minWeight, maxWeight, weight)
}

// Offset returns the normalized gradient offset of weight.
func (ip Interpolator) Offset(minWeight, maxWeight, weight float64) float64 {
	if ip.Normalization == RangeNormalization {
		return (weight - minWeight) / (maxWeight - minWeight)
	}
	return weight / maxWeight
}

// Interpolate maps weight to a color of stops. The first pair of consecutive
// stops bracketing the normalized weight is blended. It fails with a
// *ConfigurationError if stops has less than two elements or if no pair
// brackets the offset.
func (ip Interpolator) Interpolate(stops Gradient, minWeight, maxWeight, weight float64) (color.NRGBA, error) {
	if len(stops) < 2 {
		return color.NRGBA{}, &ConfigurationError{Offset: math.NaN(), Err: ErrTooFewStops}
	}

	offset := ip.Offset(minWeight, maxWeight, weight)
	for i := 0; i < len(stops)-1; i++ {
		from, to := stops[i], stops[i+1]
		if !(from.Offset <= offset && offset <= to.Offset) {
			continue
		}

		p := offset
		if ip.Blend == LocalBlend {
			p = 0
			if width := to.Offset - from.Offset; width > 0 {
				p = (offset - from.Offset) / width
			}
		}
		return ip.blend(from.Color, to.Color, p), nil
	}

	return color.NRGBA{}, &ConfigurationError{Offset: offset, Err: ErrUncovered}
}

func (ip Interpolator) blend(from, to color.NRGBA, p float64) color.NRGBA {
	switch ip.Space {
	case LabSpace, HCLSpace:
		c1, c2 := toColorful(from), toColorful(to)
		var c colorful.Color
		if ip.Space == LabSpace {
			c = c1.BlendLab(c2, p)
		} else {
			c = c1.BlendHcl(c2, p)
		}
		r, g, b := c.Clamped().RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: lerp8(from.A, to.A, p)}
	default:
		return Crossfade(from, to, p)
	}
}

// Crossfade blends the channels of from and to linearly by t and rounds the
// result. Drawing backends use it to animate a cell from its old to its new
// color.
func Crossfade(from, to color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: lerp8(from.R, to.R, t),
		G: lerp8(from.G, to.G, t),
		B: lerp8(from.B, to.B, t),
		A: lerp8(from.A, to.A, t),
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a) + t*(float64(b)-float64(a)))
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// toNRGBA converts any color to its non-premultiplied form.
func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// ----------------------------------------------------------------------------
// Constructing gradients

// HexStop returns a stop at offset with the color given as "#RRGGBB" or
// "#RRGGBBAA". Colors without alpha are opaque.
func HexStop(offset float64, hex string) (GradientStop, error) {
	alpha := uint8(0xff)
	if len(hex) == 9 {
		a, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return GradientStop{}, fmt.Errorf("heat: bad alpha in %q: %w", hex, err)
		}
		alpha = uint8(a)
		hex = hex[:7]
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return GradientStop{}, fmt.Errorf("heat: bad color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return GradientStop{Offset: offset, Color: color.NRGBA{R: r, G: g, B: b, A: alpha}}, nil
}

// MustHexStop is like HexStop but panics on malformed colors. It simplifies
// writing gradient literals.
func MustHexStop(offset float64, hex string) GradientStop {
	s, err := HexStop(offset, hex)
	if err != nil {
		panic("MustHexStop: " + err.Error())
	}
	return s
}

// GradientFromColorMap samples cm at n evenly spaced offsets. The range
// of cm is set to [0,1].
func GradientFromColorMap(cm palette.ColorMap, n int) (Gradient, error) {
	if n < 2 {
		return nil, &ConfigurationError{Offset: math.NaN(), Err: ErrTooFewStops}
	}
	cm.SetMin(0)
	cm.SetMax(1)

	g := make(Gradient, n)
	for i := range g {
		offset := float64(i) / float64(n-1)
		c, err := cm.At(offset)
		if err != nil {
			return nil, fmt.Errorf("heat: sampling color map at %g: %w", offset, err)
		}
		g[i] = GradientStop{Offset: offset, Color: toNRGBA(c)}
	}
	return g, nil
}
