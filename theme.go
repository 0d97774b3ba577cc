package heat

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// A Theme provides the colors of series without an explicit gradient.
type Theme struct {
	Colors []color.Color

	// DefaultOpacity is the opacity of the low end of default gradients.
	DefaultOpacity float64
}

// DefaultTheme returns the theme used by NewChart.
func DefaultTheme() Theme {
	return Theme{
		Colors: []color.Color{
			colornames.Steelblue,
			colornames.Crimson,
			colornames.Seagreen,
			colornames.Goldenrod,
			colornames.Darkorchid,
			colornames.Darkorange,
			colornames.Teal,
			colornames.Slategray,
		},
		DefaultOpacity: 0.35,
	}
}

// Color returns the color of the i'th series.
func (t Theme) Color(i int) color.Color {
	if len(t.Colors) == 0 {
		return color.Black
	}
	return t.Colors[i%len(t.Colors)]
}

// EnsureGradient returns current if it has stops. Otherwise it returns a
// two stop gradient from theme at defaultOpacity to theme at full opacity.
func EnsureGradient(current Gradient, theme color.Color, defaultOpacity float64) Gradient {
	if len(current) > 0 {
		return current
	}

	low, high := toNRGBA(theme), toNRGBA(theme)
	low.A = uint8(math.Round(clamp01(defaultOpacity) * 255))
	high.A = 0xff
	return Gradient{
		{Offset: 0, Color: low},
		{Offset: 1, Color: high},
	}
}

// ParseColor parses a color given as "#RRGGBB", "#RGB" or as one of the
// SVG 1.1 color names like "steelblue".
func ParseColor(s string) (color.Color, error) {
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("heat: bad color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return nil, fmt.Errorf("heat: unknown color name %q", s)
	}
	return c, nil
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
