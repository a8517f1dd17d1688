package bezkit

import (
	"iter"
	"math"
	"slices"
)

// Line is a line segment from P0 to P1.
type Line struct {
	P0 Point
	P1 Point
}

var (
	_ Shape           = Line{}
	_ ParametricCurve = Line{}
	_ ArclenSolver    = Line{}
	_ Curvaturer      = Line{}
)

// Seg wraps the line in a PathSegment.
func (l Line) Seg() PathSegment { return PathSegment{Kind: LineKind, P0: l.P0, P1: l.P1} }

// Length returns the distance between the endpoints.
func (l Line) Length() float64 { return l.P1.Sub(l.P0).Hypot() }

// Arclen is exact for lines; accuracy is ignored.
func (l Line) Arclen(accuracy float64) float64 { return l.Length() }

// InvArclen is exact for lines. Lengths outside [0, Length] extrapolate. A
// line of zero length maps every length to 0.
func (l Line) InvArclen(arclen, accuracy float64) float64 {
	n := l.Length()
	if n == 0 {
		return 0
	}
	return arclen / n
}

func (l Line) Perimeter(accuracy float64) float64 { return l.Length() }

// BoundingBox returns the normalized rectangle spanned by the endpoints.
func (l Line) BoundingBox() Rect { return NewRectFromPoints(l.P0, l.P1) }

func (l Line) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(l.P0)) && yield(LineTo(l.P1))
	}
}

func (l Line) Path(tolerance float64) BezPath { return slices.Collect(l.PathElements(tolerance)) }

func (l Line) Eval(t float64) Point { return l.P0.Lerp(l.P1, t) }
func (l Line) Start() Point         { return l.P0 }
func (l Line) End() Point           { return l.P1 }

// Midpoint returns the point halfway along the line.
func (l Line) Midpoint() Point { return l.P0.Midpoint(l.P1) }

func (l Line) Subsegment(start, end float64) Line { return Line{l.Eval(start), l.Eval(end)} }

func (l Line) SubsegmentCurve(start, end float64) ParametricCurve { return l.Subsegment(start, end) }

func (l Line) Subdivide() (Line, Line) {
	m := l.Midpoint()
	return Line{l.P0, m}, Line{m, l.P1}
}

func (l Line) SubdivideCurve() (ParametricCurve, ParametricCurve) { return l.Subdivide() }

// Extrema reports nothing; a line is monotonic.
func (l Line) Extrema() ([MaxExtrema]float64, int) { return [MaxExtrema]float64{}, 0 }

// Differentiate returns the constant derivative P1 - P0.
func (l Line) Differentiate() ConstPoint { return ConstPoint{Point(l.P1.Sub(l.P0))} }

// Curvature is always zero.
func (l Line) Curvature(t float64) float64 { return 0 }

// Nearest projects pt onto the line, clamped to the segment.
func (l Line) Nearest(pt Point, accuracy float64) Nearest {
	d := l.P1.Sub(l.P0)
	dot := d.Dot(pt.Sub(l.P0))
	switch d2 := d.Hypot2(); {
	case dot <= 0:
		return Nearest{pt.DistanceSquared(l.P0), 0}
	case dot >= d2:
		return Nearest{pt.DistanceSquared(l.P1), 1}
	default:
		t := dot / d2
		return Nearest{pt.DistanceSquared(l.Eval(t)), t}
	}
}

func (l Line) SignedArea() float64 { return l.P0.Vec2().Cross(l.P1.Vec2()) * 0.5 }

// Tangents returns the direction at both ends, which is the same vector.
func (l Line) Tangents() (Vec2, Vec2) {
	d := l.P1.Sub(l.P0)
	return d, d
}

// Reverse swaps the endpoints.
func (l Line) Reverse() Line { return Line{l.P1, l.P0} }

func (l Line) Translate(v Vec2) Line { return Line{l.P0.Translate(v), l.P1.Translate(v)} }

func (l Line) Transform(aff Affine) Line { return Line{l.P0.Transform(aff), l.P1.Transform(aff)} }

func (l Line) IsInf() bool    { return l.P0.IsInf() || l.P1.IsInf() }
func (l Line) IsNaN() bool    { return l.P0.IsNaN() || l.P1.IsNaN() }
func (l Line) IsFinite() bool { return l.P0.IsFinite() && l.P1.IsFinite() }

// CrossingPoint returns where the two lines would meet if both were extended
// infinitely, or false if they are parallel.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	denom := ab.Cross(cd)
	if denom == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / denom
	return o.P0.Translate(cd.Mul(h)), true
}

// LineIntersection is a crossing between a probe line and a segment.
type LineIntersection struct {
	// LineT is the crossing's parameter on the probe line, in [0, 1].
	LineT float64
	// SegmentT is the crossing's parameter on the segment. It may lie
	// slightly outside [0, 1] near the segment's endpoints.
	SegmentT float64
}

func (li LineIntersection) IsInf() bool {
	return math.IsInf(li.LineT, 0) || math.IsInf(li.SegmentT, 0)
}

func (li LineIntersection) IsNaN() bool {
	return math.IsNaN(li.LineT) || math.IsNaN(li.SegmentT)
}

// intersectEpsilon widens the accepted segment range so that contiguous
// segments of a path never both miss a crossing at their shared endpoint.
const intersectEpsilon = 1e-9

// IntersectLine intersects the segment l with the probe line. Nearly
// parallel lines report no crossing.
func (l Line) IntersectLine(probe Line) ([3]LineIntersection, int) {
	var out [3]LineIntersection
	dx := probe.P1.X - probe.P0.X
	dy := probe.P1.Y - probe.P0.Y
	sx := l.P1.X - l.P0.X
	sy := l.P1.Y - l.P0.Y

	det := dx*sy - dy*sx
	if math.Abs(det) < intersectEpsilon {
		return out, 0
	}
	t := (dx*(probe.P0.Y-l.P0.Y) - dy*(probe.P0.X-l.P0.X)) / det
	if t < -intersectEpsilon || t > 1+intersectEpsilon {
		return out, 0
	}
	u := ((l.P0.X-probe.P0.X)*sy - (l.P0.Y-probe.P0.Y)*sx) / det
	if u < 0 || u > 1 {
		return out, 0
	}
	out[0] = LineIntersection{LineT: u, SegmentT: t}
	return out, 1
}

// ConstPoint is a curve that stays at a single point. It is the derivative
// of a Line.
type ConstPoint struct {
	P Point
}

var (
	_ ParametricCurve = ConstPoint{}
	_ ArclenSolver    = ConstPoint{}
)

func (c ConstPoint) Eval(t float64) Point { return c.P }
func (c ConstPoint) Start() Point         { return c.P }
func (c ConstPoint) End() Point           { return c.P }

func (c ConstPoint) Subsegment(start, end float64) ConstPoint           { return c }
func (c ConstPoint) SubsegmentCurve(start, end float64) ParametricCurve { return c }
func (c ConstPoint) Subdivide() (ConstPoint, ConstPoint)                { return c, c }
func (c ConstPoint) SubdivideCurve() (ParametricCurve, ParametricCurve) { return c, c }
func (c ConstPoint) Extrema() ([MaxExtrema]float64, int)                { return [MaxExtrema]float64{}, 0 }
func (c ConstPoint) Differentiate() ConstPoint                          { return ConstPoint{} }
func (c ConstPoint) Curvature(t float64) float64                        { return 0 }
func (c ConstPoint) Arclen(accuracy float64) float64                    { return 0 }
func (c ConstPoint) InvArclen(arclen, accuracy float64) float64         { return 0 }
func (c ConstPoint) SignedArea() float64                                { return 0 }
func (c ConstPoint) BoundingBox() Rect                                  { return NewRectFromPoints(c.P, c.P) }
func (c ConstPoint) Nearest(pt Point, accuracy float64) Nearest         { return Nearest{pt.DistanceSquared(c.P), 0} }
func (c ConstPoint) Transform(aff Affine) ConstPoint                    { return ConstPoint{c.P.Transform(aff)} }
func (c ConstPoint) IsFinite() bool                                     { return c.P.IsFinite() }
func (c ConstPoint) IsNaN() bool                                        { return c.P.IsNaN() }
