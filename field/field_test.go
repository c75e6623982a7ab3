package field

import (
	"math"
	"testing"

	"github.com/lixenwraith/particle-field/core"
	"github.com/lixenwraith/particle-field/vmath"
)

type line struct {
	x0, y0, x1, y1 float64
	width          float64
	tint           core.Tint
}

type circle struct {
	cx, cy, r float64
	tint      core.Tint
}

// recordingSurface captures draw calls of the most recent frame
type recordingSurface struct {
	clears  int
	circles []circle
	lines   []line
}

func (s *recordingSurface) Clear() {
	s.clears++
	s.circles = s.circles[:0]
	s.lines = s.lines[:0]
}

func (s *recordingSurface) FillCircle(cx, cy, r float64, c core.Tint) {
	s.circles = append(s.circles, circle{cx, cy, r, c})
}

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1, width float64, c core.Tint) {
	s.lines = append(s.lines, line{x0, y0, x1, y1, width, c})
}

func newTestField(seed uint64) *Field {
	return New(DefaultConfig(), vmath.NewFastRand(seed))
}

// place replaces the population with still particles at the given points
func place(f *Field, pts ...vmath.Vec2) {
	f.particles = f.particles[:0]
	for _, p := range pts {
		f.particles = append(f.particles, Particle{
			Pos:    p,
			Radius: 1,
			Color:  f.cfg.Color.WithAlpha(0.3),
		})
	}
}

func TestCount(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name string
		w, h float64
		want int
	}{
		{"zero area", 0, 0, 0},
		{"zero width", 0, 500, 0},
		{"negative", -100, 400, 0},
		{"just below one", 99, 100, 0},
		{"exactly one", 100, 100, 1},
		{"400x400", 400, 400, 16},
		{"800x480", 800, 480, 38},
		{"capped 2000x2000", 2000, 2000, 100},
		{"exactly cap", 1000, 1000, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.Count(tt.w, tt.h); got != tt.want {
				t.Errorf("Count(%v, %v) = %d, want %d", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestResizePopulates(t *testing.T) {
	f := newTestField(1)
	f.Resize(400, 400)
	if n := len(f.Particles()); n != 16 {
		t.Fatalf("particles = %d, want 16", n)
	}

	f.Resize(2000, 2000)
	if n := len(f.Particles()); n != 100 {
		t.Fatalf("particles = %d, want 100", n)
	}

	f.Resize(0, 0)
	if n := len(f.Particles()); n != 0 {
		t.Fatalf("particles = %d, want 0", n)
	}
}

func TestResizeIdempotentCount(t *testing.T) {
	f := newTestField(2)
	f.Resize(640, 480)
	first := append([]Particle(nil), f.Particles()...)

	f.Resize(640, 480)
	second := f.Particles()

	if len(first) != len(second) {
		t.Fatalf("count changed across same-size resize: %d -> %d", len(first), len(second))
	}
	if len(second) != DefaultConfig().Count(640, 480) {
		t.Fatalf("leftover particles accumulated: got %d", len(second))
	}

	same := 0
	for i := range first {
		if first[i].Pos == second[i].Pos {
			same++
		}
	}
	if same == len(first) {
		t.Error("resize must regenerate particles, got identical positions")
	}
}

func TestInitialRanges(t *testing.T) {
	cfg := DefaultConfig()
	f := New(cfg, vmath.NewFastRand(3))
	const w, h = 1200.0, 900.0
	f.Resize(w, h)

	for i, p := range f.Particles() {
		if p.Pos.X < 0 || p.Pos.X >= w || p.Pos.Y < 0 || p.Pos.Y >= h {
			t.Errorf("particle %d position %v outside [0,%v)x[0,%v)", i, p.Pos, w, h)
		}
		if math.Abs(p.Vel.X) > cfg.Speed || math.Abs(p.Vel.Y) > cfg.Speed {
			t.Errorf("particle %d velocity %v exceeds %v", i, p.Vel, cfg.Speed)
		}
		if p.Radius < cfg.RadiusMin || p.Radius > cfg.RadiusMax {
			t.Errorf("particle %d radius %v outside [%v,%v]", i, p.Radius, cfg.RadiusMin, cfg.RadiusMax)
		}
		if p.Color.A < cfg.AlphaMin || p.Color.A > cfg.AlphaMax {
			t.Errorf("particle %d alpha %v outside [%v,%v]", i, p.Color.A, cfg.AlphaMin, cfg.AlphaMax)
		}
		if p.Color.RGB != core.RGBCyan {
			t.Errorf("particle %d color %v, want cyan", i, p.Color.RGB)
		}
	}
}

func TestParticlesStayInBounds(t *testing.T) {
	sizes := [][2]float64{{400, 400}, {800, 480}, {2000, 2000}, {150, 700}}

	for _, sz := range sizes {
		f := newTestField(uint64(sz[0] + sz[1]))
		f.Resize(sz[0], sz[1])
		s := &recordingSurface{}

		for tick := 0; tick < 5000; tick++ {
			f.Tick(s)
			for i, p := range f.Particles() {
				if !p.Pos.Within(sz[0], sz[1]) {
					t.Fatalf("%vx%v tick %d: particle %d at %v out of bounds", sz[0], sz[1], tick, i, p.Pos)
				}
			}
		}
	}
}

func TestEdgeBounce(t *testing.T) {
	f := newTestField(4)
	f.Resize(400, 400)
	f.particles = []Particle{
		{Pos: vmath.V(400, 100), Vel: vmath.V(0.25, 0), Radius: 1},
		{Pos: vmath.V(100, 0), Vel: vmath.V(0, -0.25), Radius: 1},
	}

	f.Tick(&recordingSurface{})

	right := f.particles[0]
	if right.Vel.X != -0.25 {
		t.Errorf("vx = %v, want -0.25 after hitting right edge", right.Vel.X)
	}
	if right.Pos.X != 399.75 {
		t.Errorf("x = %v, want 399.75", right.Pos.X)
	}

	top := f.particles[1]
	if top.Vel.Y != 0.25 {
		t.Errorf("vy = %v, want 0.25 after hitting top edge", top.Vel.Y)
	}
	if top.Pos.Y != 0.25 {
		t.Errorf("y = %v, want 0.25", top.Pos.Y)
	}
}

func TestBounceHoldsNarrowSurface(t *testing.T) {
	f := newTestField(5)
	f.Resize(0.2, 100000)
	f.particles = []Particle{{Pos: vmath.V(0.1, 50), Vel: vmath.V(0.25, 0.25), Radius: 1}}

	for i := 0; i < 10; i++ {
		f.Tick(&recordingSurface{})
		if p := f.particles[0].Pos; !p.Within(0.2, 100000) {
			t.Fatalf("tick %d: %v escaped narrow surface", i, p)
		}
	}
}

func TestLinkOpacity(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name  string
		rule  LinkRule
		edge  float64
		width float64
	}{
		{"pairwise", cfg.Links, 0.2, 400},
		{"pointer", cfg.Pointer, 0.3, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			maxDist := tt.rule.Threshold(tt.width)

			a0, ok := tt.rule.Opacity(0, maxDist)
			if !ok || a0 != 1 {
				t.Errorf("opacity at 0 = %v (%v), want 1", a0, ok)
			}

			prev := 2.0
			for d := 0.0; d < maxDist; d += maxDist / 50 {
				a, ok := tt.rule.Opacity(d, maxDist)
				if !ok {
					t.Fatalf("no line at %v < %v", d, maxDist)
				}
				if a >= prev {
					t.Fatalf("opacity not decreasing at %v: %v >= %v", d, a, prev)
				}
				prev = a
			}

			near, ok := tt.rule.Opacity(maxDist*(1-1e-12), maxDist)
			if !ok || math.Abs(near-tt.edge) > 1e-9 {
				t.Errorf("opacity at threshold = %v, want %v", near, tt.edge)
			}
			if limit := 1 - tt.rule.Fade; math.Abs(limit-tt.edge) > 1e-12 {
				t.Errorf("limit opacity = %v, want %v", limit, tt.edge)
			}

			if _, ok := tt.rule.Opacity(maxDist, maxDist); ok {
				t.Error("line drawn at dist == maxDist")
			}
			if _, ok := tt.rule.Opacity(maxDist+1, maxDist); ok {
				t.Error("line drawn beyond maxDist")
			}
		})
	}
}

func TestThresholdClamp(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		w            float64
		link, cursor float64
	}{
		{200, 80, 150},
		{800, 160, 266.66666666666669},
		{1920, 200, 300},
	}
	for _, tt := range tests {
		if got := cfg.Links.Threshold(tt.w); got != tt.link {
			t.Errorf("Links.Threshold(%v) = %v, want %v", tt.w, got, tt.link)
		}
		if got := cfg.Pointer.Threshold(tt.w); math.Abs(got-tt.cursor) > 1e-9 {
			t.Errorf("Pointer.Threshold(%v) = %v, want %v", tt.w, got, tt.cursor)
		}
	}
}

func TestTickDrawsFrame(t *testing.T) {
	f := newTestField(6)
	f.Resize(400, 400)
	// link threshold 80, pointer threshold 150
	place(f, vmath.V(10, 10), vmath.V(60, 10), vmath.V(390, 390))
	f.SetPointer(10, 110)

	s := &recordingSurface{}
	f.Tick(s)

	if s.clears != 1 {
		t.Errorf("clears = %d, want 1", s.clears)
	}
	if len(s.circles) != 3 {
		t.Fatalf("circles = %d, want 3", len(s.circles))
	}

	st := f.Stats()
	if st.Particles != 3 || st.Links != 1 || st.PointerLinks != 2 {
		t.Fatalf("stats = %+v, want {3 1 2}", st)
	}

	pair := s.lines[0]
	if pair.width != 0.5 || pair.tint.RGB != core.RGBCyan {
		t.Errorf("pair line style = %v/%v", pair.width, pair.tint.RGB)
	}
	if want := 1 - (50.0/80.0)*0.8; math.Abs(pair.tint.A-want) > 1e-9 {
		t.Errorf("pair opacity = %v, want %v", pair.tint.A, want)
	}

	ptr := s.lines[1]
	if ptr.x1 != 10 || ptr.y1 != 110 || ptr.width != 0.8 {
		t.Errorf("pointer line = %+v", ptr)
	}
	if ptr.tint.RGB != (core.RGB{R: 0, G: 190, B: 255}) {
		t.Errorf("pointer color = %v", ptr.tint.RGB)
	}
	if want := 1 - (100.0/150.0)*0.7; math.Abs(ptr.tint.A-want) > 1e-9 {
		t.Errorf("pointer opacity = %v, want %v", ptr.tint.A, want)
	}
}

func TestNoLinkAtThreshold(t *testing.T) {
	f := newTestField(7)
	f.Resize(400, 400)
	place(f, vmath.V(100, 100), vmath.V(180, 100))
	f.SetPointer(400, 400)

	s := &recordingSurface{}
	f.Tick(s)

	if st := f.Stats(); st.Links != 0 {
		t.Errorf("links = %d at exactly threshold distance, want 0", st.Links)
	}
}

func TestPointerDefaultsToCenter(t *testing.T) {
	f := newTestField(8)
	f.Resize(800, 600)
	if got := f.Pointer(); got != vmath.V(400, 300) {
		t.Errorf("default pointer = %v, want (400,300)", got)
	}

	f.SetPointer(12, 34)
	f.Resize(1024, 768)
	if got := f.Pointer(); got != vmath.V(12, 34) {
		t.Errorf("pointer after resize = %v, want (12,34)", got)
	}
}

func TestTickNilSurface(t *testing.T) {
	f := newTestField(9)
	f.Resize(400, 400)
	before := append([]Particle(nil), f.Particles()...)

	f.Tick(nil)

	for i, p := range f.Particles() {
		if p != before[i] {
			t.Fatalf("particle %d moved without a surface", i)
		}
	}
}

func TestColorFixedAcrossTicks(t *testing.T) {
	f := newTestField(10)
	f.Resize(600, 600)
	colors := make([]core.Tint, len(f.Particles()))
	for i, p := range f.Particles() {
		colors[i] = p.Color
	}

	s := &recordingSurface{}
	for i := 0; i < 100; i++ {
		f.Tick(s)
	}
	for i, p := range f.Particles() {
		if p.Color != colors[i] {
			t.Fatalf("particle %d color changed", i)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero divisor", func(c *Config) { c.AreaDivisor = 0 }},
		{"negative max", func(c *Config) { c.MaxParticles = -1 }},
		{"inverted radius", func(c *Config) { c.RadiusMin, c.RadiusMax = 2, 1 }},
		{"alpha above one", func(c *Config) { c.AlphaMax = 1.5 }},
		{"link divisor", func(c *Config) { c.Links.Divisor = 0 }},
		{"pointer range", func(c *Config) { c.Pointer.Min, c.Pointer.Max = 300, 150 }},
		{"pointer fade", func(c *Config) { c.Pointer.Fade = 2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
