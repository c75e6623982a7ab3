package constants

// Particle Population
const (
	// ParticleAreaDivisor is the surface area (px²) budgeted per particle
	ParticleAreaDivisor = 10000.0

	// MaxParticles caps the population regardless of surface area
	MaxParticles = 100

	// ParticleSpeed is the per-axis velocity bound in px/tick
	ParticleSpeed = 0.25

	ParticleRadiusMin = 0.5
	ParticleRadiusMax = 2.0

	ParticleAlphaMin = 0.2
	ParticleAlphaMax = 0.5
)

// Particle Links
const (
	LinkWidthDivisor = 5.0
	LinkDistMin      = 80.0
	LinkDistMax      = 200.0
	LinkFade         = 0.8
	LinkLineWidth    = 0.5
)

// Pointer Links
const (
	PointerWidthDivisor = 3.0
	PointerDistMin      = 150.0
	PointerDistMax      = 300.0
	PointerFade         = 0.7
	PointerLineWidth    = 0.8
)

// Field Colors
const (
	ParticleColorHex = "#00ffff"
	LinkColorHex     = "#00ffff"
	PointerColorHex  = "#00beff"
)
