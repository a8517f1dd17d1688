package bezkit

import (
	"iter"
	"math"
	"slices"
)

// Circle is a circle. A negative radius behaves like its absolute value.
type Circle struct {
	Center Point
	Radius float64
}

var _ ClosedShape = Circle{}

// circleArm is the control arm length of the four-cubic circle with the
// smallest radial error, from http://spencermortensen.com/articles/bezier-circle/.
const circleArm = 0.551915024494

func (c Circle) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		r := math.Abs(c.Radius)
		n, arm := 4, circleArm
		// Four cubics stay within tolerance up to this scaled error.
		if scaled := r / tolerance; scaled >= 1/1.9608e-4 {
			n = int(math.Ceil(math.Pow(1.1163*scaled, 1.0/6.0)))
			arm = 4.0 / 3.0 * math.Tan(math.Pi/2/float64(n))
		}
		at := func(sin, cos, dx, dy float64) Point {
			return Point{c.Center.X + r*(cos+dx), c.Center.Y + r*(sin+dy)}
		}
		if !yield(MoveTo(at(0, 1, 0, 0))) {
			return
		}
		step := 2 * math.Pi / float64(n)
		s0, c0 := 0.0, 1.0
		for i := 1; i <= n; i++ {
			s1, c1 := 0.0, 1.0
			if i < n {
				s1, c1 = math.Sincos(step * float64(i))
			}
			if !yield(CubicTo(
				at(s0, c0, -arm*s0, arm*c0),
				at(s1, c1, arm*s1, -arm*c1),
				at(s1, c1, 0, 0),
			)) {
				return
			}
			s0, c0 = s1, c1
		}
		yield(ClosePath())
	}
}

func (c Circle) Path(tolerance float64) BezPath { return slices.Collect(c.PathElements(tolerance)) }

// Segment cuts an annular sector out of the circle.
func (c Circle) Segment(innerRadius, startAngle, sweepAngle float64) CircleSegment {
	return CircleSegment{
		Center:      c.Center,
		OuterRadius: c.Radius,
		InnerRadius: innerRadius,
		StartAngle:  startAngle,
		SweepAngle:  sweepAngle,
	}
}

// Arc returns the full circle as an arc starting at angle 0.
func (c Circle) Arc() Arc {
	r := math.Abs(c.Radius)
	return Arc{Center: c.Center, Radii: Vec2{r, r}, SweepAngle: 2 * math.Pi}
}

func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

func (c Circle) Perimeter(accuracy float64) float64 { return 2 * math.Pi * math.Abs(c.Radius) }

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	return Rect{c.Center.X - r, c.Center.Y - r, c.Center.X + r, c.Center.Y + r}
}

func (c Circle) Winding(pt Point) int {
	if pt.DistanceSquared(c.Center) < c.Radius*c.Radius {
		return 1
	}
	return 0
}

func (c Circle) Contains(pt Point) bool { return c.Winding(pt) != 0 }

func (c Circle) Translate(v Vec2) Circle { return Circle{c.Center.Translate(v), c.Radius} }

// Transform returns the image of the circle, which in general is an ellipse.
func (c Circle) Transform(aff Affine) Ellipse { return NewEllipseFromCircle(c).Transform(aff) }

func (c Circle) IsInf() bool    { return c.Center.IsInf() || math.IsInf(c.Radius, 0) }
func (c Circle) IsNaN() bool    { return c.Center.IsNaN() || math.IsNaN(c.Radius) }
func (c Circle) IsFinite() bool { return c.Center.IsFinite() && isFinite(c.Radius) }

// CircleSegment is an annular sector: the region between two concentric
// circles bounded by two rays from the center. An InnerRadius of zero gives
// a pie slice.
type CircleSegment struct {
	Center      Point
	OuterRadius float64
	InnerRadius float64
	StartAngle  float64
	SweepAngle  float64
}

var _ ClosedShape = CircleSegment{}

func (cs CircleSegment) outer() Arc {
	return Arc{
		Center:     cs.Center,
		Radii:      Vec2{cs.OuterRadius, cs.OuterRadius},
		StartAngle: cs.StartAngle,
		SweepAngle: cs.SweepAngle,
	}
}

func (cs CircleSegment) inner() Arc {
	return Arc{
		Center:     cs.Center,
		Radii:      Vec2{cs.InnerRadius, cs.InnerRadius},
		StartAngle: cs.StartAngle + cs.SweepAngle,
		SweepAngle: -cs.SweepAngle,
	}
}

// PathElements traces the outer arc forwards and the inner arc backwards,
// joined by the two radial edges.
func (cs CircleSegment) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		outer, inner := cs.outer(), cs.inner()
		if !yield(MoveTo(inner.End())) || !yield(LineTo(outer.Start())) {
			return
		}
		for c := range outer.cubics(tolerance) {
			if !yield(CubicTo(c.P1, c.P2, c.P3)) {
				return
			}
		}
		if !yield(LineTo(inner.Start())) {
			return
		}
		for c := range inner.cubics(tolerance) {
			if !yield(CubicTo(c.P1, c.P2, c.P3)) {
				return
			}
		}
		yield(ClosePath())
	}
}

func (cs CircleSegment) Path(tolerance float64) BezPath {
	return slices.Collect(cs.PathElements(tolerance))
}

// Area is signed: it is negative when the sweep is negative or the inner
// radius exceeds the outer one, matching the direction of the outline.
func (cs CircleSegment) Area() float64 {
	return 0.5 * (cs.OuterRadius*cs.OuterRadius - cs.InnerRadius*cs.InnerRadius) * cs.SweepAngle
}

func (cs CircleSegment) Perimeter(accuracy float64) float64 {
	return 2*math.Abs(cs.OuterRadius-cs.InnerRadius) +
		math.Abs(cs.SweepAngle)*(math.Abs(cs.InnerRadius)+math.Abs(cs.OuterRadius))
}

func (cs CircleSegment) BoundingBox() Rect {
	return cs.outer().BoundingBox().Union(cs.inner().BoundingBox())
}

func (cs CircleSegment) Winding(pt Point) int {
	d := pt.Sub(cs.Center)
	r2 := d.Hypot2()
	lo, hi := cs.InnerRadius*cs.InnerRadius, cs.OuterRadius*cs.OuterRadius
	if lo > hi {
		lo, hi = hi, lo
	}
	if r2 <= lo || r2 >= hi || !cs.inSweep(d.Angle()) {
		return 0
	}
	if cs.Area() < 0 {
		return -1
	}
	return 1
}

// inSweep reports whether the ray at angle lies within the sector.
func (cs CircleSegment) inSweep(angle float64) bool {
	sweep := math.Abs(cs.SweepAngle)
	if sweep >= 2*math.Pi {
		return true
	}
	rel := angle - cs.StartAngle
	if cs.SweepAngle < 0 {
		rel = -rel
	}
	rel = math.Mod(rel, 2*math.Pi)
	if rel < 0 {
		rel += 2 * math.Pi
	}
	return rel <= sweep
}

func (cs CircleSegment) Contains(pt Point) bool { return cs.Winding(pt) != 0 }

func (cs CircleSegment) Translate(v Vec2) CircleSegment {
	cs.Center = cs.Center.Translate(v)
	return cs
}

func (cs CircleSegment) IsFinite() bool {
	return cs.Center.IsFinite() && isFinite(cs.OuterRadius) && isFinite(cs.InnerRadius) &&
		isFinite(cs.StartAngle) && isFinite(cs.SweepAngle)
}

func (cs CircleSegment) IsNaN() bool {
	return cs.Center.IsNaN() || math.IsNaN(cs.OuterRadius) || math.IsNaN(cs.InnerRadius) ||
		math.IsNaN(cs.StartAngle) || math.IsNaN(cs.SweepAngle)
}
