package bezkit

import "math"

// maxSplineSplit bounds the number of quadratic pieces tried per cubic.
const maxSplineSplit = 100

// ApproxQuadSpline approximates the cubic by a quadratic B-spline within
// accuracy, trying one piece, then two, and so on up to a hundred. It
// reports false when no spline of that size is close enough.
//
// The results match the fontTools cu2qu module bit for bit.
func (c CubicBez) ApproxQuadSpline(accuracy float64) (QuadSpline, bool) {
	for n := 1; n <= maxSplineSplit; n++ {
		if spline, ok := c.approxQuadSplineN(n, accuracy); ok {
			return spline, true
		}
	}
	Logger().Debug("no quadratic spline within accuracy", "cubic", c, "accuracy", accuracy)
	return nil, false
}

// CubicsToQuadraticSplines converts each cubic to a quadratic spline, using
// the same number of pieces for all of them. Outlines that must stay
// interpolation-compatible, such as the masters of a variable font, keep
// matching point counts this way. It reports false if some cubic cannot be
// approximated with a hundred pieces or fewer.
func CubicsToQuadraticSplines(curves []CubicBez, accuracy float64) ([]QuadSpline, bool) {
	out := make([]QuadSpline, 0, len(curves))
next:
	for n := 1; n <= maxSplineSplit; n++ {
		out = out[:0]
		for _, c := range curves {
			spline, ok := c.approxQuadSplineN(n, accuracy)
			if !ok {
				continue next
			}
			out = append(out, spline)
		}
		return out, true
	}
	Logger().Debug("no compatible quadratic splines within accuracy", "curves", len(curves), "accuracy", accuracy)
	return nil, false
}

func (c CubicBez) approxQuadSplineN(n int, accuracy float64) (QuadSpline, bool) {
	if n == 1 {
		q, ok := c.tryApproxQuadratic(accuracy)
		if !ok {
			return nil, false
		}
		return QuadSpline{q.P0, q.P1, q.P2}, true
	}

	pieces := c.splitIntoN(n)
	spline := make(QuadSpline, 0, n+2)
	next := pieces[0]
	nextQ1 := next.approxQuadControl(0)
	spline = append(spline, c.P0, nextQ1)
	q2 := c.P0
	var d1 Vec2
	for i := 1; i <= n; i++ {
		cur := next
		q0, q1 := q2, nextQ1
		if i < n {
			next = pieces[i]
			nextQ1 = next.approxQuadControl(float64(i) / float64(n-1))
			spline = append(spline, nextQ1)
			q2 = q1.Midpoint(nextQ1)
		} else {
			q2 = cur.P3
		}
		d0 := d1
		d1 = q2.Sub(cur.P3)

		errCurve := CubicBez{
			d0.Point(),
			q0.Lerp(q1, 2.0/3.0).Translate(cur.P1.Vec2().Negate()),
			q2.Lerp(q1, 2.0/3.0).Translate(cur.P2.Vec2().Negate()),
			d1.Point(),
		}
		if d1.Hypot() > accuracy || !errCurve.fitsInside(accuracy) {
			return nil, false
		}
	}
	return append(spline, c.P3), true
}

// splitIntoN cuts the cubic into n pieces of equal parameter length. The
// counts cu2qu special-cases go through repeated halving and thirding so
// the rounding matches.
func (c CubicBez) splitIntoN(n int) []CubicBez {
	switch n {
	case 1:
		return []CubicBez{c}
	case 2:
		l, r := c.Subdivide()
		return []CubicBez{l, r}
	case 3:
		l, m, r := c.subdivide3()
		return []CubicBez{l, m, r}
	case 4:
		l, r := c.Subdivide()
		ll, lr := l.Subdivide()
		rl, rr := r.Subdivide()
		return []CubicBez{ll, lr, rl, rr}
	case 6:
		l, r := c.Subdivide()
		l1, l2, l3 := l.subdivide3()
		r1, r2, r3 := r.subdivide3()
		return []CubicBez{l1, l2, l3, r1, r2, r3}
	}

	a, b, cc, d := c.powerBasis()
	out := make([]CubicBez, n)
	dt := 1 / float64(n)
	dt2 := dt * dt
	dt3 := dt * dt2
	for i := range out {
		t1 := float64(i) * dt
		t12 := t1 * t1
		// Operand order follows cu2qu's calc_cubic_parameters exactly.
		a1 := a.Mul(dt3)
		b1 := a.Mul(3).Mul(t1).Add(b).Mul(dt2)
		c1 := b.Mul(2).Mul(t1).Add(cc).Add(a.Mul(3).Mul(t12)).Mul(dt)
		d1 := a.Mul(t1).Mul(t12).Add(b.Mul(t12)).Add(cc.Mul(t1)).Add(d)

		p0 := d1.Point()
		p1 := c1.Div(3).Point().Translate(d1)
		p2 := b1.Add(c1).Div(3).Point().Translate(p1.Vec2())
		p3 := a1.Add(d1).Add(c1).Add(b1).Point()
		out[i] = CubicBez{p0, p1, p2, p3}
	}
	return out
}

// powerBasis returns a, b, c, d with B(t) = at³ + bt² + ct + d.
func (c CubicBez) powerBasis() (a, b, cc, d Vec2) {
	cc = c.P1.Sub(c.P0).Mul(3)
	b = c.P2.Sub(c.P1).Mul(3).Sub(cc)
	d = c.P0.Vec2()
	a = c.P3.Vec2().Sub(d).Sub(cc).Sub(b)
	return a, b, cc, d
}

// subdivide3 splits the cubic at t = 1/3 and t = 2/3.
func (c CubicBez) subdivide3() (CubicBez, CubicBez, CubicBez) {
	p0, p1, p2, p3 := c.P0.Vec2(), c.P1.Vec2(), c.P2.Vec2(), c.P3.Vec2()

	// cu2qu multiplies by 1/27 rather than dividing by 27.
	mid1 := p0.Mul(8).Add(p1.Mul(12)).Add(p2.Mul(6)).Add(p3).Mul(1.0 / 27.0).Point()
	deriv1 := p3.Add(p2.Mul(3)).Sub(p0.Mul(4)).Mul(1.0 / 27.0)
	mid2 := p0.Add(p1.Mul(6)).Add(p2.Mul(12)).Add(p3.Mul(8)).Mul(1.0 / 27.0).Point()
	deriv2 := p3.Mul(4).Sub(p1.Mul(3)).Sub(p0).Mul(1.0 / 27.0)

	return CubicBez{c.P0, p0.Mul(2).Add(p1).Div(3).Point(), mid1.Translate(deriv1.Negate()), mid1},
		CubicBez{mid1, mid1.Translate(deriv1), mid2.Translate(deriv2.Negate()), mid2},
		CubicBez{mid2, mid2.Translate(deriv2), p2.Add(p3.Mul(2)).Div(3).Point(), c.P3}
}

// fitsInside reports whether the curve stays within distance of the origin.
func (c CubicBez) fitsInside(distance float64) bool {
	if c.P2.Vec2().Hypot() <= distance && c.P1.Vec2().Hypot() <= distance {
		return true
	}
	mid := c.P0.Vec2().Add(c.P1.Vec2().Add(c.P2.Vec2()).Mul(3)).Add(c.P3.Vec2()).Mul(0.125)
	if mid.Hypot() > distance {
		return false
	}
	l, r := c.Subdivide()
	return l.fitsInside(distance) && r.fitsInside(distance)
}

// approxQuadControl interpolates between the quadratic control points
// implied by the start and end tangents.
func (c CubicBez) approxQuadControl(t float64) Point {
	p1 := c.P0.Translate(c.P1.Sub(c.P0).Mul(1.5))
	p2 := c.P3.Translate(c.P2.Sub(c.P3).Mul(1.5))
	return p1.Lerp(p2, t)
}

// tryApproxQuadratic returns the single quadratic through the crossing of
// the end tangents, if it is within accuracy of the cubic.
func (c CubicBez) tryApproxQuadratic(accuracy float64) (QuadBez, bool) {
	q1, ok := Line{c.P0, c.P1}.CrossingPoint(Line{c.P2, c.P3})
	if !ok || math.IsNaN(q1.X) {
		return QuadBez{}, false
	}
	c1 := c.P0.Lerp(q1, 2.0/3.0)
	c2 := c.P3.Lerp(q1, 2.0/3.0)
	errCurve := CubicBez{
		Point{},
		c1.Translate(c.P1.Vec2().Negate()),
		c2.Translate(c.P2.Vec2().Negate()),
		Point{},
	}
	if !errCurve.fitsInside(accuracy) {
		return QuadBez{}, false
	}
	return QuadBez{c.P0, q1, c.P3}, true
}
