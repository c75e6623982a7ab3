// Package loader draws the intro spinner shown before the particle field
// Three orbs circle the surface center while a counter-rotating disc follows the pointer
package loader

import (
	"math"
	"time"

	"github.com/lixenwraith/particle-field/constants"
	"github.com/lixenwraith/particle-field/core"
	"github.com/lixenwraith/particle-field/vmath"
)

// Orb fill colors, clockwise from angle zero
var orbColors = [3]core.RGB{
	core.MustHex("#0A2239"),
	core.MustHex("#151B38"),
	core.MustHex("#0F332E"),
}

var centerColor = core.MustHex("#1E3A4B")

// Loader is a Scene rendering the spinner; its animation time starts at the first Tick
type Loader struct {
	clock core.Clock

	center  vmath.Vec2
	pointer vmath.Vec2

	started time.Time
	begun   bool
}

// New creates a loader timed by clock
func New(clock core.Clock) *Loader {
	return &Loader{clock: clock}
}

func (l *Loader) Resize(w, h float64) {
	l.center = vmath.V(w/2, h/2)
	l.pointer = l.center
}

func (l *Loader) SetPointer(x, y float64) {
	l.pointer = vmath.V(x, y)
}

// Orbs returns orb centers relative to the surface center after elapsed time
// The ring completes one revolution per LoaderRingPeriod
func Orbs(elapsed time.Duration) [3]vmath.Vec2 {
	spin := 2 * math.Pi * turns(elapsed, constants.LoaderRingPeriod)
	var out [3]vmath.Vec2
	for i := range out {
		angle := float64(i)/3*2*math.Pi + spin
		out[i] = vmath.Polar(constants.LoaderOrbitRadius, angle)
	}
	return out
}

// CenterAngle returns the counter-rotation of the center disc after elapsed time
func CenterAngle(elapsed time.Duration) float64 {
	return vmath.WrapAngle(-2 * math.Pi * turns(elapsed, constants.LoaderCenterPeriod))
}

// CenterOffset returns the parallax displacement of the center disc
func (l *Loader) CenterOffset() vmath.Vec2 {
	return l.pointer.Sub(l.center).Scale(constants.LoaderParallax)
}

func (l *Loader) Tick(s core.Surface) {
	if s == nil {
		return
	}

	now := l.clock.Now()
	if !l.begun {
		l.started = now
		l.begun = true
	}
	elapsed := now.Sub(l.started)

	s.Clear()

	for i, off := range Orbs(elapsed) {
		p := l.center.Add(off)
		s.FillCircle(p.X, p.Y, constants.LoaderOrbBorder, core.RGBWhite.WithAlpha(1))
		s.FillCircle(p.X, p.Y, constants.LoaderOrbFill, orbColors[i].WithAlpha(1))
		s.FillCircle(p.X, p.Y, constants.LoaderOrbCore, core.RGBWhite.WithAlpha(1))
	}

	c := l.center.Add(l.CenterOffset())
	s.FillCircle(c.X, c.Y, constants.LoaderCenterBorder, core.RGBWhite.WithAlpha(1))
	s.FillCircle(c.X, c.Y, constants.LoaderCenterFill, centerColor.WithAlpha(1))

	notch := c.Add(vmath.Polar(constants.LoaderNotchDistance, CenterAngle(elapsed)))
	s.FillCircle(notch.X, notch.Y, constants.LoaderNotchRadius, centerColor.WithAlpha(1))
}

// turns returns elapsed expressed in whole-and-fractional periods
func turns(elapsed, period time.Duration) float64 {
	if period <= 0 {
		return 0
	}
	return float64(elapsed) / float64(period)
}
