package render

import "github.com/lixenwraith/particle-field/core"

// RGB is an alias to core.RGB, allowing render package to extend functionality
type RGB = core.RGB

// Blend optimizes alpha blending
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}

	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Max returns per-channel maximum with alpha blending
func Max(c, src RGB, alpha float64) RGB {
	if alpha <= 0.0 {
		return c
	}

	maxed := RGB{
		R: max(c.R, src.R),
		G: max(c.G, src.G),
		B: max(c.B, src.B),
	}

	if alpha >= 1.0 {
		return maxed
	}
	return Blend(c, maxed, alpha)
}

// fastDiv255 approximates x/255 for x in [0, 65025]
func fastDiv255(x int) int {
	return (x + (x >> 8) + 1) >> 8
}

// Screen lightens c by src: 1 - (1-c)(1-src); overlapping lines brighten without clipping
func Screen(c, src RGB, alpha float64) RGB {
	if alpha <= 0.0 {
		return c
	}

	screened := RGB{
		R: uint8(255 - fastDiv255((255-int(c.R))*(255-int(src.R)))),
		G: uint8(255 - fastDiv255((255-int(c.G))*(255-int(src.G)))),
		B: uint8(255 - fastDiv255((255-int(c.B))*(255-int(src.B)))),
	}

	if alpha >= 1.0 {
		return screened
	}
	return Blend(c, screened, alpha)
}
