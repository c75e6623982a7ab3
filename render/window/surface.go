// Package window implements core.Surface on an ebiten image
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lixenwraith/particle-field/core"
)

// Surface draws onto the image bound for the current frame
// Draw calls before Bind or after Unbind are dropped
type Surface struct {
	dst        *ebiten.Image
	background color.NRGBA
}

// NewSurface creates an unbound surface that clears to background
func NewSurface(background core.RGB) *Surface {
	return &Surface{background: nrgba(background.WithAlpha(1))}
}

// Bind targets dst until the next Bind or Unbind
func (s *Surface) Bind(dst *ebiten.Image) {
	s.dst = dst
}

// Unbind drops the target so stray draws become no-ops
func (s *Surface) Unbind() {
	s.dst = nil
}

func (s *Surface) Clear() {
	if s.dst == nil {
		return
	}
	s.dst.Fill(s.background)
}

func (s *Surface) FillCircle(cx, cy, r float64, c core.Tint) {
	if s.dst == nil {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), nrgba(c), true)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c core.Tint) {
	if s.dst == nil {
		return
	}
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), nrgba(c), true)
}

func nrgba(t core.Tint) color.NRGBA {
	a := t.A
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{R: t.R, G: t.G, B: t.B, A: uint8(a*255 + 0.5)}
}
