package morph

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit sRGB color. Interpolation happens in CIE Lab space,
// which blends perceptually: red to blue passes through muted purples
// instead of the gray trench a naive channel-wise lerp digs.
type Color struct {
	R, G, B uint8
}

// RGB returns the color with the given 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ParseHex parses "#RRGGBB" or "RRGGBB".
func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("morph: invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("morph: invalid hex color %q", s)
	}
	return Color{R: r, G: g, B: b}, nil
}

// Hex formats the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string { return c.Hex() }

// Lerp blends c toward other in CIE Lab space. The blend can leave the sRGB
// gamut for saturated endpoints, so the result is clamped back in.
func (c Color) Lerp(other Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	a := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	b := colorful.Color{R: float64(other.R) / 255, G: float64(other.G) / 255, B: float64(other.B) / 255}
	blended := a.BlendLab(b, t).Clamped()
	r8, g8, b8 := blended.RGB255()
	return Color{R: r8, G: g8, B: b8}
}
