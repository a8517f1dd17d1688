package bezkit

import (
	"iter"
	"math"
	"slices"
)

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

var (
	_ Shape           = CubicBez{}
	_ ParametricCurve = CubicBez{}
	_ Curvaturer      = CubicBez{}
)

func (c CubicBez) Seg() PathSegment {
	return PathSegment{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3}
}

func (c CubicBez) Start() Point { return c.P0 }
func (c CubicBez) End() Point   { return c.P3 }

func (c CubicBez) Eval(t float64) Point {
	mt := 1 - t
	a := c.P0.Vec2().Mul(mt * mt * mt)
	b := c.P1.Vec2().Mul(mt * mt * 3)
	cc := c.P2.Vec2().Mul(mt * 3)
	d := c.P3.Vec2()
	return a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t)).Point()
}

// Subsegment returns the part of the curve between t0 and t1. The inner
// control points are placed along the derivative at either end.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	d := c.Differentiate()
	k := (t1 - t0) / 3
	return CubicBez{
		p0,
		p0.Translate(d.Eval(t0).Vec2().Mul(k)),
		p3.Translate(d.Eval(t1).Vec2().Mul(-k)),
		p3,
	}
}

func (c CubicBez) SubsegmentCurve(t0, t1 float64) ParametricCurve { return c.Subsegment(t0, t1) }

// Subdivide splits the curve at t = 0.5 with de Casteljau's algorithm.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	m := c.Eval(0.5)
	p0, p1, p2, p3 := c.P0.Vec2(), c.P1.Vec2(), c.P2.Vec2(), c.P3.Vec2()
	return CubicBez{c.P0, c.P0.Midpoint(c.P1), p0.Add(p1.Mul(2)).Add(p2).Mul(0.25).Point(), m},
		CubicBez{m, p1.Add(p2.Mul(2)).Add(p3).Mul(0.25).Point(), c.P2.Midpoint(c.P3), c.P3}
}

func (c CubicBez) SubdivideCurve() (ParametricCurve, ParametricCurve) { return c.Subdivide() }

// Differentiate returns the hodograph, a quadratic.
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		c.P1.Sub(c.P0).Mul(3).Point(),
		c.P2.Sub(c.P1).Mul(3).Point(),
		c.P3.Sub(c.P2).Mul(3).Point(),
	}
}

func (c CubicBez) Curvature(t float64) float64 {
	d := c.Differentiate()
	return curvature(d.Eval(t).Vec2(), d.Differentiate().Eval(t).Vec2())
}

// Extrema returns the interior roots of both coordinates of the derivative,
// sorted.
func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	var out [MaxExtrema]float64
	n := 0
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	for _, d := range [2][3]float64{{d0.X, d1.X, d2.X}, {d0.Y, d1.Y, d2.Y}} {
		roots, m := SolveQuadratic(d[0], 2*(d[1]-d[0]), d[0]-2*d[1]+d[2])
		for _, t := range roots[:m] {
			if t > 0 && t < 1 {
				out[n] = t
				n++
			}
		}
	}
	slices.Sort(out[:n])
	return out, n
}

func (c CubicBez) BoundingBox() Rect { return BoundingBox(c) }

func (c CubicBez) Perimeter(accuracy float64) float64 { return c.Arclen(accuracy) }

func (c CubicBez) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(c.P0)) && yield(CubicTo(c.P1, c.P2, c.P3))
	}
}

func (c CubicBez) Path(tolerance float64) BezPath { return slices.Collect(c.PathElements(tolerance)) }

// Arclen measures the curve with Gauss-Legendre quadrature of order 8, 16 or
// 24, picked from an error estimate. When even order 24 is not accurate
// enough the curve is halved and each half measured to half the accuracy.
func (c CubicBez) Arclen(accuracy float64) float64 { return c.arclen(accuracy, 0) }

func (c CubicBez) arclen(accuracy float64, depth int) float64 {
	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	// control polygon length minus chord length
	lplc := d01.Hypot() + d12.Hypot() + d23.Hypot() - c.P3.Sub(c.P0).Hypot()
	dd1 := d12.Sub(d01)
	dd2 := d23.Sub(d12)
	dm := d01.Add(d23).Mul(0.25).Add(d12.Mul(0.5))
	dm1 := dd2.Add(dd1).Mul(0.5)
	dm2 := dd2.Sub(dd1).Mul(0.25)

	var est float64
	for _, wx := range gauss8 {
		w, x := wx[0], wx[1]
		dNorm2 := dm.Add(dm1.Mul(x)).Add(dm2.Mul(x * x)).Hypot2()
		ddNorm2 := dm1.Add(dm2.Mul(2 * x)).Hypot2()
		est += w * ddNorm2 / dNorm2
	}
	if math.IsNaN(est) {
		// zero derivative at a cusp
		est = 0
	}

	switch {
	case min(math.Pow(est, 3)*2.5e-6, 3e-2)*lplc < accuracy:
		return gaussArclen(gauss8Half[:], dm, dm1, dm2)
	case min(math.Pow(est, 6)*1.5e-11, 9e-3)*lplc < accuracy:
		return gaussArclen(gauss16Half[:], dm, dm1, dm2)
	case min(math.Pow(est, 9)*3.5e-16, 3.5e-3)*lplc < accuracy || depth >= 20:
		return gaussArclen(gauss24Half[:], dm, dm1, dm2)
	}
	l, r := c.Subdivide()
	return l.arclen(accuracy*0.5, depth+1) + r.arclen(accuracy*0.5, depth+1)
}

// InvArclen inverts Arclen with [SolveITP].
func (c CubicBez) InvArclen(arclen, accuracy float64) float64 { return invArclen(c, arclen, accuracy) }

// CubicQuad is one quadratic produced by [CubicBez.Quadratics], covering the
// cubic's parameter range [T0, T1].
type CubicQuad struct {
	T0, T1 float64
	Quad   QuadBez
}

// Quadratics approximates the cubic by quadratics that each stay within
// accuracy of it. The cubic is cut at evenly spaced parameters, with the
// count derived from the third derivative, which is constant for a cubic.
// The quadratics are not G1 continuous. At least one is always produced.
func (c CubicBez) Quadratics(accuracy float64) iter.Seq[CubicQuad] {
	return func(yield func(CubicQuad) bool) {
		// 432 = (36/√3)², from the error bound of the midpoint approximation
		maxHypot2 := 432 * accuracy * accuracy
		err := c.quadControl().Hypot2()
		n := max(int(math.Ceil(math.Sqrt(math.Cbrt(err/maxHypot2)))), 1)
		for i := range n {
			t0 := float64(i) / float64(n)
			t1 := float64(i+1) / float64(n)
			seg := c.Subsegment(t0, t1)
			p1 := seg.P1.Vec2().Mul(3).Sub(seg.P0.Vec2()).
				Add(seg.P2.Vec2().Mul(3).Sub(seg.P3.Vec2())).
				Mul(0.25)
			if !yield(CubicQuad{t0, t1, QuadBez{seg.P0, p1.Point(), seg.P3}}) {
				return
			}
		}
	}
}

// quadControl returns (3P2 - P3) - (3P1 - P0), the disagreement between
// the quadratic control points implied by either end.
func (c CubicBez) quadControl() Vec2 {
	return c.P2.Vec2().Mul(3).Sub(c.P3.Vec2()).Sub(c.P1.Vec2().Mul(3).Sub(c.P0.Vec2()))
}

// Nearest finds the nearest point by converting to quadratics within
// accuracy and solving each of them exactly.
func (c CubicBez) Nearest(pt Point, accuracy float64) Nearest {
	best := Nearest{DistanceSq: math.Inf(1)}
	for cq := range c.Quadratics(accuracy) {
		if n := cq.Quad.Nearest(pt, accuracy); n.DistanceSq < best.DistanceSq {
			best = Nearest{n.DistanceSq, cq.T0 + n.T*(cq.T1-cq.T0)}
		}
	}
	return best
}

// SignedArea is the exact Green's theorem integral for the segment.
func (c CubicBez) SignedArea() float64 {
	v := c.P0.X*(6*c.P1.Y+3*c.P2.Y+c.P3.Y) +
		3*(c.P1.X*(-2*c.P0.Y+c.P2.Y+c.P3.Y)-c.P2.X*(c.P0.Y+c.P1.Y-2*c.P3.Y)) -
		c.P3.X*(c.P0.Y+3*c.P1.Y+6*c.P2.Y)
	return v * (1.0 / 20.0)
}

// Tangents returns the start and end directions. Control points that
// coincide with an endpoint are skipped in favour of the next distinct one.
func (c CubicBez) Tangents() (Vec2, Vec2) {
	const epsilon = 1e-12
	pick := func(cands ...Vec2) Vec2 {
		for _, v := range cands[:len(cands)-1] {
			if v.Hypot2() > epsilon {
				return v
			}
		}
		return cands[len(cands)-1]
	}
	chord := c.P3.Sub(c.P0)
	return pick(c.P1.Sub(c.P0), c.P2.Sub(c.P0), chord),
		pick(c.P3.Sub(c.P2), c.P3.Sub(c.P1), chord)
}

// Inflections returns the parameters in [0, 1] where the curvature changes
// sign.
func (c CubicBez) Inflections() ([2]float64, int) {
	a := c.P1.Sub(c.P0)
	b := c.P2.Sub(c.P1).Sub(a)
	cc := c.P3.Sub(c.P0).Sub(c.P2.Sub(c.P1).Mul(3))
	roots, n := SolveQuadratic(a.Cross(b), a.Cross(cc), b.Cross(cc))
	var out [2]float64
	m := 0
	for _, t := range roots[:n] {
		if t >= 0 && t <= 1 {
			out[m] = t
			m++
		}
	}
	return out, m
}

// Reverse returns the same curve traversed from P3 to P0.
func (c CubicBez) Reverse() CubicBez { return CubicBez{c.P3, c.P2, c.P1, c.P0} }

func (c CubicBez) Translate(v Vec2) CubicBez {
	return CubicBez{c.P0.Translate(v), c.P1.Translate(v), c.P2.Translate(v), c.P3.Translate(v)}
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{c.P0.Transform(aff), c.P1.Transform(aff), c.P2.Transform(aff), c.P3.Transform(aff)}
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

func (c CubicBez) IsFinite() bool {
	return c.P0.IsFinite() && c.P1.IsFinite() && c.P2.IsFinite() && c.P3.IsFinite()
}

// IntersectLine substitutes the curve's power-basis polynomials into the
// probe line's implicit equation and solves the resulting cubic.
func (c CubicBez) IntersectLine(probe Line) ([3]LineIntersection, int) {
	dx := probe.P1.X - probe.P0.X
	dy := probe.P1.Y - probe.P0.Y
	x := cubicPoly(c.P0.X, c.P1.X, c.P2.X, c.P3.X)
	y := cubicPoly(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
	ts, n := SolveCubic(
		dy*(x[0]-probe.P0.X)-dx*(y[0]-probe.P0.Y),
		dy*x[1]-dx*y[1],
		dy*x[2]-dx*y[2],
		dy*x[3]-dx*y[3],
	)
	return probeHits(probe, ts[:n], func(t float64) Point {
		return Point{
			x[0] + t*(x[1]+t*(x[2]+t*x[3])),
			y[0] + t*(y[1]+t*(y[2]+t*y[3])),
		}
	})
}

// cubicPoly converts one coordinate of a cubic's control points to
// power-basis coefficients, lowest degree first.
func cubicPoly(x0, x1, x2, x3 float64) [4]float64 {
	return [4]float64{
		x0,
		3*x1 - 3*x0,
		3*x2 - 6*x1 + 3*x0,
		x3 - 3*x2 + 3*x1 - x0,
	}
}
