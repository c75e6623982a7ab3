package field

import (
	"github.com/lixenwraith/particle-field/core"
	"github.com/lixenwraith/particle-field/vmath"
)

// Stats describes the most recent tick
type Stats struct {
	Particles    int
	Links        int
	PointerLinks int
}

// Field owns the particle collection, the surface size, and the pointer position
// Hosts only feed it dimensions and pointer coordinates; all mutation happens here
type Field struct {
	cfg Config
	rng vmath.Rand

	width, height float64
	particles     []Particle

	pointer    vmath.Vec2
	pointerSet bool

	stats Stats
}

// New creates an empty field; call Resize to populate it
func New(cfg Config, rng vmath.Rand) *Field {
	return &Field{
		cfg: cfg,
		rng: rng,
	}
}

// Resize stores the surface size and regenerates the whole population
func (f *Field) Resize(w, h float64) {
	f.width, f.height = w, h

	n := f.cfg.Count(w, h)
	particles := make([]Particle, n)
	for i := range particles {
		particles[i] = newParticle(&f.cfg, f.rng, w, h)
	}
	f.particles = particles

	if !f.pointerSet {
		f.pointer = vmath.V(w/2, h/2)
	}
}

// SetPointer overwrites the pointer position consumed by the next tick
func (f *Field) SetPointer(x, y float64) {
	f.pointer = vmath.V(x, y)
	f.pointerSet = true
}

// Pointer returns the current pointer position
func (f *Field) Pointer() vmath.Vec2 {
	return f.pointer
}

// Size returns the surface dimensions the population was generated for
func (f *Field) Size() (w, h float64) {
	return f.width, f.height
}

// Particles returns the live population; callers must not retain it across Resize
func (f *Field) Particles() []Particle {
	return f.particles
}

// Stats returns counters from the last tick
func (f *Field) Stats() Stats {
	return f.stats
}

// Tick advances every particle one step and draws the frame onto s
func (f *Field) Tick(s core.Surface) {
	if s == nil {
		return
	}
	s.Clear()

	for i := range f.particles {
		p := &f.particles[i]
		p.advance(f.width, f.height)
		s.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, p.Color)
	}

	f.stats = Stats{
		Particles:    len(f.particles),
		Links:        f.drawLinks(s),
		PointerLinks: f.drawPointerLinks(s),
	}
}

// drawLinks strokes a line between every unordered pair closer than the link threshold
func (f *Field) drawLinks(s core.Surface) int {
	rule := &f.cfg.Links
	maxDist := rule.Threshold(f.width)
	drawn := 0

	for i := 0; i < len(f.particles); i++ {
		a := f.particles[i].Pos
		for j := i + 1; j < len(f.particles); j++ {
			b := f.particles[j].Pos
			alpha, ok := rule.Opacity(a.Dist(b), maxDist)
			if !ok {
				continue
			}
			s.StrokeLine(a.X, a.Y, b.X, b.Y, rule.Width, rule.Color.WithAlpha(alpha))
			drawn++
		}
	}
	return drawn
}

// drawPointerLinks strokes a line from each particle near the pointer to the pointer
func (f *Field) drawPointerLinks(s core.Surface) int {
	rule := &f.cfg.Pointer
	maxDist := rule.Threshold(f.width)
	m := f.pointer
	drawn := 0

	for i := range f.particles {
		p := f.particles[i].Pos
		alpha, ok := rule.Opacity(p.Dist(m), maxDist)
		if !ok {
			continue
		}
		s.StrokeLine(p.X, p.Y, m.X, m.Y, rule.Width, rule.Color.WithAlpha(alpha))
		drawn++
	}
	return drawn
}
