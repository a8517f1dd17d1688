package bezkit

import (
	"iter"
	"math"
	"slices"
)

// QuadBez is a quadratic Bézier segment.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

var (
	_ Shape           = QuadBez{}
	_ ParametricCurve = QuadBez{}
	_ Curvaturer      = QuadBez{}
)

func (q QuadBez) Seg() PathSegment { return PathSegment{Kind: QuadKind, P0: q.P0, P1: q.P1, P2: q.P2} }

func (q QuadBez) Start() Point { return q.P0 }
func (q QuadBez) End() Point   { return q.P2 }

func (q QuadBez) Eval(t float64) Point {
	mt := 1 - t
	v := q.P0.Vec2().Mul(mt * mt).
		Add(q.P1.Vec2().Mul(2 * mt * t)).
		Add(q.P2.Vec2().Mul(t * t))
	return v.Point()
}

// Subsegment returns the part of the curve between t0 and t1.
func (q QuadBez) Subsegment(t0, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	d := q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0)
	return QuadBez{p0, p0.Translate(d.Mul(t1 - t0)), p2}
}

func (q QuadBez) SubsegmentCurve(t0, t1 float64) ParametricCurve { return q.Subsegment(t0, t1) }

// Subdivide splits the curve at t = 0.5.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	m := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), m}, QuadBez{m, q.P1.Midpoint(q.P2), q.P2}
}

func (q QuadBez) SubdivideCurve() (ParametricCurve, ParametricCurve) { return q.Subdivide() }

// Differentiate returns the hodograph, a line.
func (q QuadBez) Differentiate() Line {
	return Line{q.P1.Sub(q.P0).Mul(2).Point(), q.P2.Sub(q.P1).Mul(2).Point()}
}

func (q QuadBez) Curvature(t float64) float64 {
	d := q.Differentiate()
	return curvature(d.Eval(t).Vec2(), d.P1.Sub(d.P0))
}

// Raise returns the cubic that traces exactly the same curve.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Lerp(q.P1, 2.0/3.0),
		q.P2.Lerp(q.P1, 2.0/3.0),
		q.P2,
	}
}

// Extrema returns the parameters where either coordinate of the derivative
// crosses zero.
func (q QuadBez) Extrema() ([MaxExtrema]float64, int) {
	var out [MaxExtrema]float64
	n := 0
	d0 := q.P1.Sub(q.P0)
	dd := q.P2.Sub(q.P1).Sub(d0)
	for _, c := range [2][2]float64{{d0.X, dd.X}, {d0.Y, dd.Y}} {
		if c[1] == 0 {
			continue
		}
		if t := -c[0] / c[1]; t > 0 && t < 1 {
			out[n] = t
			n++
		}
	}
	if n == 2 && out[0] > out[1] {
		out[0], out[1] = out[1], out[0]
	}
	return out, n
}

func (q QuadBez) BoundingBox() Rect { return BoundingBox(q) }

func (q QuadBez) Perimeter(accuracy float64) float64 { return q.Arclen(accuracy) }

func (q QuadBez) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(q.P0)) && yield(QuadTo(q.P1, q.P2))
	}
}

func (q QuadBez) Path(tolerance float64) BezPath { return slices.Collect(q.PathElements(tolerance)) }

// Arclen computes the length analytically; accuracy is ignored. Nearly
// straight curves, where the closed form loses precision, fall back to a
// three-point Gauss-Legendre rule.
func (q QuadBez) Arclen(accuracy float64) float64 {
	p0, p1, p2 := q.P0.Vec2(), q.P1.Vec2(), q.P2.Vec2()
	d2 := p0.Sub(p1.Mul(2)).Add(p2)
	a := d2.Hypot2()
	d1 := p1.Sub(p0)
	c := d1.Hypot2()
	// a is also zero for a quad collapsed to a point.
	if a < 5e-4*c || a == 0 {
		// https://github.com/Pomax/BezierInfo-2/issues/77
		v0 := p0.Mul(-0.492943519233745).Add(p1.Mul(0.430331482911935)).Add(p2.Mul(0.0626120363218102)).Hypot()
		v1 := p2.Sub(p0).Mul(0.4444444444444444).Hypot()
		v2 := p0.Mul(-0.0626120363218102).Sub(p1.Mul(0.430331482911935)).Add(p2.Mul(0.492943519233745)).Hypot()
		return v0 + v1 + v2
	}
	b := 2 * d2.Dot(d1)

	sabc := math.Sqrt(a + b + c)
	a2 := 1 / math.Sqrt(a)
	a32 := a2 * a2 * a2
	c2 := 2 * math.Sqrt(c)
	baC2 := b*a2 + c2

	v0 := 0.25*a2*a2*b*(2*sabc-c2) + sabc
	if baC2 < 1e-13 {
		// sharp kink
		return v0
	}
	return v0 + 0.25*a32*(4*c*a-b*b)*math.Log(((2*a+b)*a2+2*sabc)/baC2)
}

// InvArclen inverts Arclen with [SolveITP].
func (q QuadBez) InvArclen(arclen, accuracy float64) float64 { return invArclen(q, arclen, accuracy) }

// Nearest solves for the stationary points of the squared distance, a cubic
// in t, and compares them with the endpoints.
func (q QuadBez) Nearest(pt Point, accuracy float64) Nearest {
	d0 := q.P1.Sub(q.P0)
	d1 := q.P0.Vec2().Add(q.P2.Vec2()).Sub(q.P1.Vec2().Mul(2))
	d := q.P0.Sub(pt)
	roots, n := SolveCubic(
		d.Dot(d0),
		2*d0.Hypot2()+d.Dot(d1),
		3*d1.Dot(d0),
		d1.Hypot2(),
	)

	best := Nearest{DistanceSq: math.Inf(1)}
	try := func(t float64, p Point) {
		if r := pt.DistanceSquared(p); r < best.DistanceSq {
			best = Nearest{r, t}
		}
	}
	needEnds := n == 0
	for _, t := range roots[:n] {
		if t >= 0 && t <= 1 {
			try(t, q.Eval(t))
		} else {
			needEnds = true
		}
	}
	if needEnds {
		try(0, q.P0)
		try(1, q.P2)
	}
	return best
}

// SignedArea is the exact Green's theorem integral for the segment.
func (q QuadBez) SignedArea() float64 {
	v := q.P0.X*(2*q.P1.Y+q.P2.Y) +
		2*(q.P1.X*(q.P2.Y-q.P0.Y)) -
		q.P2.X*(q.P0.Y+2*q.P1.Y)
	return v * (1.0 / 6.0)
}

// Tangents returns the start and end directions, falling back to the chord
// when a control point coincides with an endpoint.
func (q QuadBez) Tangents() (Vec2, Vec2) {
	const epsilon = 1e-12
	chord := q.P2.Sub(q.P0)
	d0 := q.P1.Sub(q.P0)
	if d0.Hypot2() <= epsilon {
		d0 = chord
	}
	d1 := q.P2.Sub(q.P1)
	if d1.Hypot2() <= epsilon {
		d1 = chord
	}
	return d0, d1
}

// Reverse returns the same curve traversed from P2 to P0.
func (q QuadBez) Reverse() QuadBez { return QuadBez{q.P2, q.P1, q.P0} }

func (q QuadBez) Translate(v Vec2) QuadBez {
	return QuadBez{q.P0.Translate(v), q.P1.Translate(v), q.P2.Translate(v)}
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{q.P0.Transform(aff), q.P1.Transform(aff), q.P2.Transform(aff)}
}

func (q QuadBez) IsInf() bool    { return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf() }
func (q QuadBez) IsNaN() bool    { return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN() }
func (q QuadBez) IsFinite() bool { return q.P0.IsFinite() && q.P1.IsFinite() && q.P2.IsFinite() }

// IntersectLine substitutes the curve's power-basis polynomials into the
// probe line's implicit equation and solves the resulting quadratic.
func (q QuadBez) IntersectLine(probe Line) ([3]LineIntersection, int) {
	dx := probe.P1.X - probe.P0.X
	dy := probe.P1.Y - probe.P0.Y
	x := quadPoly(q.P0.X, q.P1.X, q.P2.X)
	y := quadPoly(q.P0.Y, q.P1.Y, q.P2.Y)
	ts, n := SolveQuadratic(
		dy*(x[0]-probe.P0.X)-dx*(y[0]-probe.P0.Y),
		dy*x[1]-dx*y[1],
		dy*x[2]-dx*y[2],
	)
	return probeHits(probe, ts[:n], func(t float64) Point {
		return Point{x[0] + t*(x[1]+t*x[2]), y[0] + t*(y[1]+t*y[2])}
	})
}

// quadPoly converts one coordinate of a quadratic's control points to
// power-basis coefficients, lowest degree first.
func quadPoly(x0, x1, x2 float64) [3]float64 {
	return [3]float64{x0, 2*x1 - 2*x0, x2 - 2*x1 + x0}
}

// probeHits keeps the roots that lie on the segment (with a small margin)
// and whose projection lands within the probe line.
func probeHits(probe Line, ts []float64, eval func(float64) Point) ([3]LineIntersection, int) {
	var out [3]LineIntersection
	n := 0
	dir := probe.P1.Sub(probe.P0)
	invLen2 := 1 / dir.Hypot2()
	for _, t := range ts {
		if t < -intersectEpsilon || t > 1+intersectEpsilon {
			continue
		}
		u := eval(t).Sub(probe.P0).Dot(dir) * invLen2
		if u >= 0 && u <= 1 {
			out[n] = LineIntersection{LineT: u, SegmentT: t}
			n++
		}
	}
	return out, n
}
