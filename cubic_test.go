package bezkit

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/tdewolff/test"
)

func TestCubicBezDeriv(t *testing.T) {
	// y = x²
	c := CubicBez{Pt(0, 0), Pt(1.0/3.0, 0), Pt(2.0/3.0, 1.0/3.0), Pt(1, 1)}
	deriv := c.Differentiate()

	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / n
		dApprox := c.Eval(ts + delta).Sub(c.Eval(ts)).Mul(1 / delta)
		if l := deriv.Eval(ts).Vec2().Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}
	}
}

func TestCubicBezSubdivide(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)}
	l, r := c.Subdivide()
	test.T(t, l.P3, r.P0)
	assertNear(t, l.P3, c.Eval(0.5), 1e-12)
	for i := range 5 {
		ts := float64(i) / 4
		assertNear(t, l.Eval(ts), c.Eval(ts/2), 1e-12)
		assertNear(t, r.Eval(ts), c.Eval(0.5+ts/2), 1e-12)
	}
}

func TestCubicBezToQuadratics(t *testing.T) {
	// y = x³
	c := CubicBez{Pt(0, 0), Pt(1.0/3.0, 0), Pt(2.0/3.0, 0), Pt(1, 1)}
	for i := range 10 {
		accuracy := math.Pow(0.1, float64(i))
		for cq := range c.Quadratics(accuracy) {
			q := cq.Quad
			assertNear(t, q.Start(), c.Eval(cq.T0), 1e-12)
			assertNear(t, q.End(), c.Eval(cq.T1), 1e-12)
			const n = 4
			for j := range n + 1 {
				p := q.Eval(float64(j) / n)
				if err := math.Abs(p.Y - math.Pow(p.X, 3)); err > accuracy {
					t.Fatalf("got error %g for desired accuracy of %g", err, accuracy)
				}
			}
		}
	}
}

func TestCubicBezToQuadraticsDegenerate(t *testing.T) {
	// Collinear control points still produce a quadratic.
	c := CubicBez{Pt(0, 9), Pt(6, 6), Pt(12, 3), Pt(18, 0)}
	var n int
	for range c.Quadratics(1e-6) {
		n++
	}
	test.T(t, n, 1)
}

func BenchmarkCubicBezToQuadratics(b *testing.B) {
	shape := CubicBez{Pt(20, 40), Pt(40, 80), Pt(-40, 40), Pt(42, 62)}
	for i := range 11 {
		acc := 1 / math.Pow(10, float64(2*i))
		b.Run(fmt.Sprintf("1e-%d", 2*i), func(b *testing.B) {
			for range b.N {
				for range shape.Quadratics(acc) {
				}
			}
		})
	}
}

func TestIntersectCubic(t *testing.T) {
	c := CubicBez{Pt(0, -10), Pt(10, 20), Pt(20, -20), Pt(30, 10)}
	vLine := Line{Pt(10, -10), Pt(10, 10)}
	xs, n := c.IntersectLine(vLine)
	diff(t, []LineIntersection{{LineT: 16.0 / 27.0, SegmentT: 1.0 / 3.0}}, xs[:n], approx(1e-8))

	hLine := Line{Pt(0, 0), Pt(100, 0)}
	if _, n := c.IntersectLine(hLine); n != 3 {
		t.Errorf("got %d intersections, want 3", n)
	}
}

func TestCubicBezExtrema(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)}
	extrema, n := c.Extrema()
	diff(t, []float64{0.5}, extrema[:n], approx(1e-6))

	c = CubicBez{Pt(0.4, 0.5), Pt(0, 1), Pt(1, 0), Pt(0.5, 0.4)}
	extrema, n = c.Extrema()
	test.T(t, n, 4)
	for i := 1; i < n; i++ {
		test.That(t, extrema[i-1] < extrema[i], "extrema not sorted:", extrema[:n])
	}
}

func TestCubicBezBoundingBox(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)}
	diff(t, Rect{0, 0, 1, 0.75}, c.BoundingBox(), approx(1e-12))
	diff(t, Rect{0, 0, 1, 1}, c.Path(0).ControlBox())
}

func TestCubicNearest(t *testing.T) {
	verify := func(c CubicBez, pt Point, want float64) {
		t.Helper()
		if got := c.Nearest(pt, 1e-6).T; math.Abs(got-want) > 1e-6 {
			t.Errorf("nearest to %s: got t = %v, want %v", pt, got, want)
		}
	}

	// y = x³
	c := CubicBez{Pt(0, 0), Pt(1.0/3.0, 0), Pt(2.0/3.0, 0), Pt(1, 1)}
	for i := 1; i <= 9; i++ {
		x := float64(i) / 10
		verify(c, Pt(x, x*x*x), x)
	}
	verify(c, Pt(1, 1), 1)
	verify(c, Pt(1.1, 1.1), 1)
	verify(c, Pt(-0.1, 0), 0)
	a := Rotate(0.5)
	verify(c.Transform(a), Pt(0.1, 0.001).Transform(a), 0.1)
}

func TestCubicBezInflections(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0.8, 1), Pt(0.2, 1), Pt(1, 0)}
	inflections, n := c.Inflections()
	diff(t, []float64{0.311018, 0.688982}, inflections[:n], approx(1e-6))

	c = CubicBez{Pt(0, 0), Pt(1, 1), Pt(2, -1), Pt(3, 0)}
	inflections, n = c.Inflections()
	diff(t, []float64{0.5}, inflections[:n], approx(1e-12))

	c = CubicBez{Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0)}
	inflections, n = c.Inflections()
	diff(t, []float64{}, inflections[:n], cmpopts.EquateEmpty())
}

var pointComparer = cmp.Comparer(func(p1, p2 Point) bool {
	return p1.Distance(p2) <= 1e-12
})

func TestCubicBezApproxSpline(t *testing.T) {
	c := CubicBez{Pt(550, 258), Pt(1044, 482), Pt(2029, 1841), Pt(1934, 1554)}

	quad, ok := c.tryApproxQuadratic(344)
	test.That(t, ok)
	diff(t, QuadBez{Pt(550, 258), Pt(1673.665720592873, 767.5164401068898), Pt(1934, 1554)}, quad)

	_, ok = c.tryApproxQuadratic(343)
	test.That(t, !ok, "expected approximation to fail")

	spline, _ := c.approxQuadSplineN(2, 343)
	diff(t, QuadSpline{
		Pt(550, 258),
		Pt(920.5, 426),
		Pt(2005.25, 1769.25),
		Pt(1934, 1554),
	}, spline, pointComparer)

	spline, _ = c.ApproxQuadSpline(5)
	diff(t, QuadSpline{
		Pt(550, 258),
		Pt(673.5, 314),
		Pt(984.8777777777776, 584.2666666666667),
		Pt(1312.6305555555557, 927.825),
		Pt(1613.1194444444443, 1267.425),
		Pt(1842.7055555555555, 1525.8166666666666),
		Pt(1957.75, 1625.75),
		Pt(1934, 1554),
	}, spline, pointComparer)
}

func TestCubicsToQuadraticSplines(t *testing.T) {
	curves := []CubicBez{
		{Pt(550, 258), Pt(1044, 482), Pt(2029, 1841), Pt(1934, 1554)},
		{Pt(859, 384), Pt(1998, 116), Pt(1596, 1772), Pt(8, 1824)},
		{Pt(1090, 937), Pt(418, 1300), Pt(125, 91), Pt(104, 37)},
	}
	converted, ok := CubicsToQuadraticSplines(curves, 5)
	if !ok {
		t.Fatal("could not convert cubics to splines")
	}
	test.T(t, len(converted), 3)
	for i, s := range converted {
		test.T(t, len(s), 8, "points in spline", i)
	}
	diff(t, Pt(673.5, 314), converted[0][1], pointComparer)
	diff(t, Pt(88639.0/90.0, 52584.0/90.0), converted[0][2], pointComparer)
}

// The following cases pin the rounding of fontTools' cu2qu, see
// https://github.com/linebender/kurbo/issues/272.

func TestCubicBezApproxSplineRounding(t *testing.T) {
	c := CubicBez{Pt(408, 321), Pt(408, 452), Pt(342, 560), Pt(260, 560)}
	spline, ok := c.ApproxQuadSpline(1)
	if !ok {
		t.Fatal("could not convert cubic to spline")
	}
	// Exact comparison; dividing instead of multiplying by the reciprocal
	// yields 386.49999999999994.
	diff(t, QuadSpline{
		Pt(408, 321),
		Pt(408, 386.5),
		Pt(368.16666666666663, 495.0833333333333),
		Pt(301, 560),
		Pt(260, 560),
	}, spline)
}

func TestCubicToQuadraticSplitCount(t *testing.T) {
	// https://github.com/googlefonts/fontmake-rs/issues/217
	c := CubicBez{Pt(796, 319), Pt(727, 314), Pt(242, 303), Pt(106, 303)}
	_, ok := c.approxQuadSplineN(7, 1)
	test.That(t, ok, "could not approximate curve in 7 splits")
	_, ok = CubicsToQuadraticSplines([]CubicBez{c}, 0.001)
	test.That(t, ok, "could not approximate curve with 0.001 accuracy")
}

func TestCubicsToQuadraticSplinesRounding(t *testing.T) {
	// https://github.com/linebender/kurbo/pull/273
	light := CubicBez{Pt(378, 608), Pt(378, 524), Pt(355, 455), Pt(266, 455)}
	regular := CubicBez{Pt(367, 607), Pt(367, 511), Pt(338, 472), Pt(243, 472)}
	bold := CubicBez{Pt(372.425, 593.05), Pt(372.425, 524.95), Pt(355.05, 485.95), Pt(274, 485.95)}
	splines, _ := CubicsToQuadraticSplines([]CubicBez{light, regular, bold}, 1)
	diff(t, []QuadSpline{
		{
			Pt(378, 608),
			Pt(378, 566),
			Pt(359.0833333333333, 496.5),
			Pt(310.5, 455),
			Pt(266, 455),
		},
		{
			Pt(367, 607),
			Pt(367, 559),
			Pt(344.5833333333333, 499.49999999999994),
			Pt(290.5, 472),
			Pt(243, 472),
		},
		{
			Pt(372.425, 593.05),
			Pt(372.425, 559),
			Pt(356.98333333333335, 511.125),
			Pt(314.525, 485.95),
			Pt(274, 485.95),
		},
	}, splines)
}

func TestCubicBezArclen(t *testing.T) {
	// y = x²
	c := CubicBez{Pt(0, 0), Pt(1.0/3.0, 0), Pt(2.0/3.0, 1.0/3.0), Pt(1, 1)}
	want := 0.5*math.Sqrt(5) + 0.25*math.Log(2+math.Sqrt(5))
	for i := range 12 {
		accuracy := math.Pow(0.1, float64(i))
		diff(t, want, c.Arclen(accuracy), approx(accuracy))
	}
}

func TestCubicBezArclenConverges(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)}
	want := c.Arclen(1e-13)
	for i := 1; i <= 9; i++ {
		accuracy := math.Pow(0.1, float64(i))
		diff(t, want, c.Arclen(accuracy), approx(accuracy))
	}
}

func TestCubicBezInvArclen(t *testing.T) {
	// y = x² / 100
	c := CubicBez{Pt(0, 0), Pt(100.0/3.0, 0), Pt(200.0/3.0, 100.0/3.0), Pt(100, 100)}
	total := 100 * (0.5*math.Sqrt(5) + 0.25*math.Log(2+math.Sqrt(5)))
	for i := range 12 {
		accuracy := math.Pow(0.1, float64(i))
		const n = 10
		for j := range n + 1 {
			arc := float64(j) * total / n
			ts := InvArclen(c, arc, accuracy*0.5)
			diff(t, arc, c.Subsegment(0, ts).Arclen(accuracy*0.5), approx(accuracy))
		}
	}

	// An accuracy beyond the total length still lands on the curve.
	accuracy := total * 1.1
	arc := total * 0.5
	ts := InvArclen(c, arc, accuracy)
	diff(t, arc, c.Subsegment(0, ts).Arclen(accuracy), approx(2*accuracy))
}

func TestCubicBezInvArclenAccuracy(t *testing.T) {
	c := CubicBez{Pt(0.2, 0.73), Pt(0.35, 1.08), Pt(0.85, 1.08), Pt(1, 0.73)}
	want := c.InvArclen(0.5, 1e-12)
	for i := 1; i < 12; i++ {
		accuracy := math.Pow(0.1, float64(i))
		diff(t, want, c.InvArclen(0.5, accuracy), approx(accuracy))
	}
}

func TestCubicBezSignedAreaLinear(t *testing.T) {
	// y = 1 - x
	c := CubicBez{Pt(1, 0), Pt(2.0/3.0, 1.0/3.0), Pt(1.0/3.0, 2.0/3.0), Pt(0, 1)}
	diff(t, 0.5, c.SignedArea())
	diff(t, 0.5, c.Transform(Rotate(0.5)).SignedArea(), approx(1e-12))
	diff(t, 1.0, c.Transform(Translate(Vec(0, 1))).SignedArea(), approx(1e-12))
	diff(t, 1.0, c.Transform(Translate(Vec(1, 0))).SignedArea(), approx(1e-12))
}

func TestCubicBezSignedArea(t *testing.T) {
	// y = 1 - x³
	c := CubicBez{Pt(1, 0), Pt(2.0/3.0, 1), Pt(1.0/3.0, 1), Pt(0, 1)}
	diff(t, 0.75, c.SignedArea(), approx(1e-12))
	diff(t, 0.75, c.Transform(Rotate(0.5)).SignedArea(), approx(1e-12))
	diff(t, 1.25, c.Transform(Translate(Vec(0, 1))).SignedArea(), approx(1e-12))
	diff(t, 1.25, c.Transform(Translate(Vec(1, 0))).SignedArea(), approx(1e-12))
}
