package vmath

import "math"

// Vec2 is a 2D vector in virtual pixel space
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64  { return math.Hypot(v.X-o.X, v.Y-o.Y) }

// Rotate rotates the vector by angle radians around the origin
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Polar returns the point at radius r and angle a around the origin
func Polar(r, a float64) Vec2 {
	sin, cos := math.Sincos(a)
	return Vec2{X: r * cos, Y: r * sin}
}

// Within reports whether the point lies in [0,w] x [0,h]
func (v Vec2) Within(w, h float64) bool {
	return v.X >= 0 && v.X <= w && v.Y >= 0 && v.Y <= h
}
