package vmath

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{50, 80, 200, 80},
		{160, 80, 200, 160},
		{384, 80, 200, 200},
		{-1, 0, 10, 0},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestFastRandFloat64Range(t *testing.T) {
	r := NewFastRand(42)
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v, out of [0,1)", f)
		}
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a, b := NewFastRand(7), NewFastRand(7)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Error("zero seed must not produce a stuck generator")
	}
}

func TestRange(t *testing.T) {
	r := NewFastRand(3)
	for i := 0; i < 1000; i++ {
		v := Range(r, -0.25, 0.25)
		if v < -0.25 || v >= 0.25 {
			t.Fatalf("Range = %v", v)
		}
	}
}

func TestVec2(t *testing.T) {
	a, b := V(0, 0), V(3, 4)
	if d := a.Dist(b); d != 5 {
		t.Errorf("Dist = %v, want 5", d)
	}
	if !b.Within(3, 4) || V(3.1, 0).Within(3, 4) {
		t.Error("Within bounds check failed")
	}
	r := V(1, 0).Rotate(math.Pi / 2)
	if math.Abs(r.X) > 1e-9 || math.Abs(r.Y-1) > 1e-9 {
		t.Errorf("Rotate = %v, want (0,1)", r)
	}
	p := Polar(50, 0)
	if p != V(50, 0) {
		t.Errorf("Polar = %v", p)
	}
}

func TestWrapAngle(t *testing.T) {
	if got := WrapAngle(-math.Pi / 2); math.Abs(got-3*math.Pi/2) > 1e-9 {
		t.Errorf("WrapAngle(-π/2) = %v", got)
	}
}
