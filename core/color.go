package core

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from any output backend
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
	RGBCyan  = RGB{0, 255, 255}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Max returns per-channel maximum (non-destructive highlight)
func (c RGB) Max(src RGB) RGB {
	return RGB{
		R: max(c.R, src.R),
		G: max(c.G, src.G),
		B: max(c.B, src.B),
	}
}

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// Hex formats the color as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses #rgb or #rrggbb into RGB
func ParseHex(s string) (RGB, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := col.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// MustHex is ParseHex for package-level literals
func MustHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Tint is a color with straight (non-premultiplied) opacity in [0, 1]
type Tint struct {
	RGB
	A float64
}

// WithAlpha returns the color as a tint at the given opacity
func (c RGB) WithAlpha(a float64) Tint {
	return Tint{RGB: c, A: a}
}

// Over composites the tint onto a background color
func (t Tint) Over(bg RGB) RGB {
	return bg.Blend(t.RGB, t.A)
}
