package bezkit

import (
	"fmt"
	"math"
)

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// Splat returns the coordinates of p.
func (p Point) Splat() (x, y float64) { return p.X, p.Y }

// Vec2 returns the displacement of p from the origin.
func (p Point) Vec2() Vec2 { return Vec2(p) }

// Translate returns p + v.
func (p Point) Translate(v Vec2) Point { return Point{p.X + v.X, p.Y + v.Y} }

// Sub returns the displacement p - q.
func (p Point) Sub(q Point) Vec2 { return Vec2{p.X - q.X, p.Y - q.Y} }

// Transform applies aff to p.
func (p Point) Transform(aff Affine) Point { return aff.ApplyPoint(p) }

// Lerp linearly interpolates between p (t = 0) and q (t = 1).
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + t*(q.X-p.X), p.Y + t*(q.Y-p.Y)}
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return Point{0.5 * (p.X + q.X), 0.5 * (p.Y + q.Y)}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// DistanceSquared returns the squared Euclidean distance between p and q.
func (p Point) DistanceSquared(q Point) float64 { return p.Sub(q).Hypot2() }

func (p Point) mapCoords(fn func(float64) float64) Point { return Point{fn(p.X), fn(p.Y)} }

// Round rounds both coordinates to the nearest integer.
func (p Point) Round() Point { return p.mapCoords(math.Round) }

// Ceil rounds both coordinates up.
func (p Point) Ceil() Point { return p.mapCoords(math.Ceil) }

// Floor rounds both coordinates down.
func (p Point) Floor() Point { return p.mapCoords(math.Floor) }

// Expand rounds both coordinates away from zero.
func (p Point) Expand() Point { return p.mapCoords(expand) }

// Trunc rounds both coordinates towards zero.
func (p Point) Trunc() Point { return p.mapCoords(math.Trunc) }

// IsInf reports whether either coordinate is infinite.
func (p Point) IsInf() bool { return math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) }

// IsNaN reports whether either coordinate is NaN.
func (p Point) IsNaN() bool { return math.IsNaN(p.X) || math.IsNaN(p.Y) }

// IsFinite reports whether both coordinates are neither infinite nor NaN.
func (p Point) IsFinite() bool { return isFinite(p.X) && isFinite(p.Y) }

// expand rounds f away from zero.
func expand(f float64) float64 { return math.Copysign(math.Ceil(math.Abs(f)), f) }

func isFinite(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }
