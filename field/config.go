package field

import (
	"fmt"

	"github.com/lixenwraith/particle-field/constants"
	"github.com/lixenwraith/particle-field/core"
	"github.com/lixenwraith/particle-field/vmath"
)

// LinkRule derives a connection threshold from surface width and maps distance to opacity
// Threshold = clamp(W/Divisor, Min, Max); opacity = 1 - (dist/threshold)*Fade
type LinkRule struct {
	Divisor float64
	Min     float64
	Max     float64
	Fade    float64
	Width   float64
	Color   core.RGB
}

// Threshold returns the maximum link distance for a surface of width w
func (r LinkRule) Threshold(w float64) float64 {
	return vmath.Clamp(w/r.Divisor, r.Min, r.Max)
}

// Opacity returns the line opacity for a link of length dist under threshold maxDist
// ok is false when no line is drawn (dist >= maxDist)
func (r LinkRule) Opacity(dist, maxDist float64) (alpha float64, ok bool) {
	if maxDist <= 0 || dist >= maxDist {
		return 0, false
	}
	return 1 - (dist/maxDist)*r.Fade, true
}

func (r LinkRule) validate(name string) error {
	if r.Divisor <= 0 {
		return fmt.Errorf("%s: divisor must be positive, got %v", name, r.Divisor)
	}
	if r.Min < 0 || r.Max < r.Min {
		return fmt.Errorf("%s: invalid distance range [%v, %v]", name, r.Min, r.Max)
	}
	if r.Fade < 0 || r.Fade > 1 {
		return fmt.Errorf("%s: fade must be in [0,1], got %v", name, r.Fade)
	}
	if r.Width <= 0 {
		return fmt.Errorf("%s: line width must be positive, got %v", name, r.Width)
	}
	return nil
}

// Config holds the population and link tuning of a Field
type Config struct {
	AreaDivisor  float64
	MaxParticles int
	Speed        float64
	RadiusMin    float64
	RadiusMax    float64
	AlphaMin     float64
	AlphaMax     float64
	Color        core.RGB

	Links   LinkRule
	Pointer LinkRule
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		AreaDivisor:  constants.ParticleAreaDivisor,
		MaxParticles: constants.MaxParticles,
		Speed:        constants.ParticleSpeed,
		RadiusMin:    constants.ParticleRadiusMin,
		RadiusMax:    constants.ParticleRadiusMax,
		AlphaMin:     constants.ParticleAlphaMin,
		AlphaMax:     constants.ParticleAlphaMax,
		Color:        core.MustHex(constants.ParticleColorHex),
		Links: LinkRule{
			Divisor: constants.LinkWidthDivisor,
			Min:     constants.LinkDistMin,
			Max:     constants.LinkDistMax,
			Fade:    constants.LinkFade,
			Width:   constants.LinkLineWidth,
			Color:   core.MustHex(constants.LinkColorHex),
		},
		Pointer: LinkRule{
			Divisor: constants.PointerWidthDivisor,
			Min:     constants.PointerDistMin,
			Max:     constants.PointerDistMax,
			Fade:    constants.PointerFade,
			Width:   constants.PointerLineWidth,
			Color:   core.MustHex(constants.PointerColorHex),
		},
	}
}

// Validate rejects tuning that cannot produce a sane field
func (c Config) Validate() error {
	if c.AreaDivisor <= 0 {
		return fmt.Errorf("area divisor must be positive, got %v", c.AreaDivisor)
	}
	if c.MaxParticles < 0 {
		return fmt.Errorf("max particles must not be negative, got %d", c.MaxParticles)
	}
	if c.Speed < 0 {
		return fmt.Errorf("speed must not be negative, got %v", c.Speed)
	}
	if c.RadiusMin <= 0 || c.RadiusMax < c.RadiusMin {
		return fmt.Errorf("invalid radius range [%v, %v]", c.RadiusMin, c.RadiusMax)
	}
	if c.AlphaMin < 0 || c.AlphaMax > 1 || c.AlphaMax < c.AlphaMin {
		return fmt.Errorf("invalid alpha range [%v, %v]", c.AlphaMin, c.AlphaMax)
	}
	if err := c.Links.validate("links"); err != nil {
		return err
	}
	return c.Pointer.validate("pointer")
}

// Count returns the particle population for a w x h surface
func (c Config) Count(w, h float64) int {
	if w <= 0 || h <= 0 || c.AreaDivisor <= 0 {
		return 0
	}
	n := int(w * h / c.AreaDivisor)
	return min(c.MaxParticles, n)
}
