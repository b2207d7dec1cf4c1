package core

import "math"

// Vec2 is a 2D vector in view pixel space. Y grows downward.
type Vec2 struct {
	X, Y float64
}

// V2 creates a vector.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Mul multiplies component-wise.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Dot returns the dot product.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the vector length.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LenSq returns the squared length.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector in the direction of v.
// The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// LimitLength shortens v to at most max.
func (v Vec2) LimitLength(max float64) Vec2 {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}

// RotateMinus90 returns v rotated by -90 degrees: (y, -x).
func (v Vec2) RotateMinus90() Vec2 {
	return Vec2{v.Y, -v.X}
}

// Angle returns the direction of v in radians, in [-pi, pi].
// The zero vector has angle 0.
func (v Vec2) Angle() float64 {
	if v.IsZero() {
		return 0
	}
	return math.Atan2(v.Y, v.X)
}

// Reflect mirrors v about the unit normal n: v - 2(v.n)n.
func (v Vec2) Reflect(n Vec2) Vec2 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// LerpV interpolates between a and b.
func LerpV(a, b Vec2, t float64) Vec2 {
	return Vec2{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t)}
}

// FromAngle builds a vector of the given length pointing at angle.
func FromAngle(length, angle float64) Vec2 {
	return Vec2{length * math.Cos(angle), length * math.Sin(angle)}
}

// Box is a floating point axis-aligned rectangle anchored at its top-left corner.
type Box struct {
	Pos Vec2
	Dim Vec2
}

// BoxAt creates a box from position and dimensions.
func BoxAt(x, y, w, h float64) Box {
	return Box{Pos: Vec2{x, y}, Dim: Vec2{w, h}}
}

// Center returns the box center.
func (b Box) Center() Vec2 {
	return b.Pos.Add(b.Dim.Scale(0.5))
}

// Contains reports whether p lies inside the box (edges included).
func (b Box) Contains(p Vec2) bool {
	return p.X >= b.Pos.X && p.X <= b.Pos.X+b.Dim.X &&
		p.Y >= b.Pos.Y && p.Y <= b.Pos.Y+b.Dim.Y
}

// CircleInBox reports whether a circle of radius r at c touches the box.
func CircleInBox(c Vec2, r float64, b Box) bool {
	half := b.Dim.Scale(0.5)
	d := c.Sub(b.Pos.Add(half))
	p := Vec2{math.Abs(d.X), math.Abs(d.Y)}

	if p.X > half.X+r || p.Y > half.Y+r {
		return false
	}
	if p.X <= half.X || p.Y <= half.Y {
		return true
	}
	return p.Sub(half).LenSq() <= r*r
}
