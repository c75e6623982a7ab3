package vmath

import "math"

// Clamp limits v to [lo, hi]; lo wins when the bounds are inverted
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Lerp interpolates linearly between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// WrapAngle maps an angle in radians into [0, 2π)
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// --- Randomness ---

// Rand is the random source consumed by generators; *math/rand.Rand and *FastRand satisfy it
type Rand interface {
	Float64() float64
}

// FastRand is a xorshift64 generator, deterministic for a given seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi)
func Range(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
