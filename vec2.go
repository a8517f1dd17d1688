package bezkit

import (
	"fmt"
	"math"
)

// Vec2 is a displacement in the plane.
type Vec2 struct {
	X, Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// VecFromAngle returns the unit vector at angle th, in radians, measured from
// the positive x axis towards the positive y axis. In a y-down coordinate
// system that is a clockwise rotation.
func VecFromAngle(th float64) Vec2 {
	s, c := math.Sincos(th)
	return Vec2{c, s}
}

func (v Vec2) String() string { return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y) }

// Splat returns the components of v.
func (v Vec2) Splat() (x, y float64) { return v.X, v.Y }

// Point returns the point at displacement v from the origin.
func (v Vec2) Point() Point { return Point(v) }

// Size returns v as a size, x becoming the width.
func (v Vec2) Size() Size { return Size{v.X, v.Y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(f float64) Vec2   { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Div(f float64) Vec2   { return Vec2{v.X / f, v.Y / f} }
func (v Vec2) Negate() Vec2         { return Vec2{-v.X, -v.Y} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 { return math.Hypot(v.X, v.Y) }

// Hypot2 returns the squared length of v, which is cheaper than squaring
// [Vec2.Hypot].
func (v Vec2) Hypot2() float64 { return v.Dot(v) }

// Angle returns atan2(y, x).
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Lerp linearly interpolates between v and o.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 { return v.Add(o.Sub(v).Mul(t)) }

// Normalize returns the unit vector with the direction of v. The zero vector
// normalizes to NaNs.
func (v Vec2) Normalize() Vec2 { return v.Div(v.Hypot()) }

// Turn90 rotates v by 90° towards the positive y axis.
func (v Vec2) Turn90() Vec2 { return Vec2{-v.Y, v.X} }

func (v Vec2) mapCoords(fn func(float64) float64) Vec2 { return Vec2{fn(v.X), fn(v.Y)} }

func (v Vec2) Round() Vec2  { return v.mapCoords(math.Round) }
func (v Vec2) Ceil() Vec2   { return v.mapCoords(math.Ceil) }
func (v Vec2) Floor() Vec2  { return v.mapCoords(math.Floor) }
func (v Vec2) Expand() Vec2 { return v.mapCoords(expand) }
func (v Vec2) Trunc() Vec2  { return v.mapCoords(math.Trunc) }

// IsInf reports whether either component is infinite.
func (v Vec2) IsInf() bool { return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) }

// IsNaN reports whether either component is NaN.
func (v Vec2) IsNaN() bool { return math.IsNaN(v.X) || math.IsNaN(v.Y) }

// IsFinite reports whether both components are finite.
func (v Vec2) IsFinite() bool { return isFinite(v.X) && isFinite(v.Y) }
