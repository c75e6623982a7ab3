package field

import (
	"github.com/lixenwraith/particle-field/core"
	"github.com/lixenwraith/particle-field/vmath"
)

// Particle is a moving point; Color is fixed at creation
type Particle struct {
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Radius float64
	Color  core.Tint
}

// newParticle draws a particle uniformly inside [0,w) x [0,h)
func newParticle(cfg *Config, rng vmath.Rand, w, h float64) Particle {
	return Particle{
		Pos: vmath.V(rng.Float64()*w, rng.Float64()*h),
		Vel: vmath.V(
			vmath.Range(rng, -cfg.Speed, cfg.Speed),
			vmath.Range(rng, -cfg.Speed, cfg.Speed),
		),
		Radius: vmath.Range(rng, cfg.RadiusMin, cfg.RadiusMax),
		Color:  cfg.Color.WithAlpha(vmath.Range(rng, cfg.AlphaMin, cfg.AlphaMax)),
	}
}

// advance moves the particle one tick, bouncing off the [0,w] x [0,h] box
// A velocity axis is inverted before the position is applied when the step would leave the box
func (p *Particle) advance(w, h float64) {
	next := p.Pos.Add(p.Vel)
	if next.X < 0 || next.X > w {
		p.Vel.X = -p.Vel.X
	}
	if next.Y < 0 || next.Y > h {
		p.Vel.Y = -p.Vel.Y
	}
	p.Pos = p.Pos.Add(p.Vel)

	// Reflection alone cannot hold the box when it is narrower than one step
	p.Pos.X = vmath.Clamp(p.Pos.X, 0, w)
	p.Pos.Y = vmath.Clamp(p.Pos.Y, 0, h)
}
