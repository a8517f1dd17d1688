package bezkit

import (
	"iter"
	"math"
	"slices"
)

// Arc is a segment of an ellipse. The ellipse has radii Radii.X and Radii.Y
// before being rotated by XRotation about Center. The arc starts at the
// ellipse angle StartAngle and covers SweepAngle radians; a positive sweep
// runs clockwise in y-down coordinates.
//
// An arc is an open curve. Area, Winding and Contains treat it as closed by
// the chord from its end back to its start.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

var (
	_ ClosedShape     = Arc{}
	_ ParametricCurve = Arc{}
	_ Curvaturer      = Arc{}
)

// ArcFromSVG converts the endpoint parametrization of SVG's A command into
// an arc, following https://www.w3.org/TR/SVG11/implnote.html#ArcConversionEndpointToCenter.
// Radii too small to span the endpoints are scaled up. It reports false when
// the arc degenerates into a straight line, that is when the endpoints
// coincide or a radius is zero.
func ArcFromSVG(from, to Point, radii Vec2, xRotation float64, largeArc, sweep bool) (Arc, bool) {
	rx, ry := math.Abs(radii.X), math.Abs(radii.Y)
	if from == to || rx < 1e-5 || ry < 1e-5 {
		return Arc{}, false
	}
	sin, cos := math.Sincos(xRotation)
	hd := from.Sub(to).Mul(0.5)
	x1 := cos*hd.X + sin*hd.Y
	y1 := -sin*hd.X + cos*hd.Y

	if s := x1*x1/(rx*rx) + y1*y1/(ry*ry); s > 1 {
		s = math.Sqrt(s)
		rx, ry = rx*s, ry*s
	}
	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := math.Sqrt(max(num/den, 0))
	if largeArc == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx
	mid := from.Midpoint(to)
	center := Point{cos*cx1 - sin*cy1 + mid.X, sin*cx1 + cos*cy1 + mid.Y}

	u := Vec2{(x1 - cx1) / rx, (y1 - cy1) / ry}
	v := Vec2{(-x1 - cx1) / rx, (-y1 - cy1) / ry}
	start := u.Angle()
	delta := math.Mod(v.Angle()-start, 2*math.Pi)
	switch {
	case sweep && delta < 0:
		delta += 2 * math.Pi
	case !sweep && delta > 0:
		delta -= 2 * math.Pi
	}
	return Arc{
		Center:     center,
		Radii:      Vec2{rx, ry},
		StartAngle: start,
		SweepAngle: delta,
		XRotation:  xRotation,
	}, true
}

// angle maps t to the ellipse angle.
func (a Arc) angle(t float64) float64 { return a.StartAngle + t*a.SweepAngle }

func (a Arc) Eval(t float64) Point {
	return a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, a.angle(t)))
}

func (a Arc) Start() Point { return a.Eval(0) }
func (a Arc) End() Point   { return a.Eval(1) }

func (a Arc) Subsegment(start, end float64) Arc {
	a.StartAngle, a.SweepAngle = a.angle(start), a.SweepAngle*(end-start)
	return a
}

func (a Arc) SubsegmentCurve(start, end float64) ParametricCurve { return a.Subsegment(start, end) }

func (a Arc) Subdivide() (Arc, Arc) { return a.Subsegment(0, 0.5), a.Subsegment(0.5, 1) }

func (a Arc) SubdivideCurve() (ParametricCurve, ParametricCurve) { return a.Subdivide() }

// Deriv returns the derivative with respect to t.
func (a Arc) Deriv(t float64) Vec2 {
	th := a.angle(t)
	return sampleEllipse(a.Radii, a.XRotation, th+math.Pi/2).Mul(a.SweepAngle)
}

func (a Arc) Curvature(t float64) float64 {
	th := a.angle(t)
	dd := sampleEllipse(a.Radii, a.XRotation, th).Mul(-a.SweepAngle * a.SweepAngle)
	return curvature(a.Deriv(t), dd)
}

// Extrema returns up to four interior parameters where the tangent is
// horizontal or vertical. Arcs sweeping more than a full turn have more
// extrema than are reported.
func (a Arc) Extrema() ([MaxExtrema]float64, int) {
	rx, ry := a.Radii.Splat()
	sin, cos := math.Sincos(a.XRotation)
	if a.SweepAngle == 0 {
		return [MaxExtrema]float64{}, 0
	}
	var ts []float64
	for _, base := range [2]float64{
		math.Atan2(-ry*sin, rx*cos),
		math.Atan2(ry*cos, rx*sin),
	} {
		// Extrema of each coordinate repeat every half turn.
		lo, hi := a.StartAngle, a.angle(1)
		if lo > hi {
			lo, hi = hi, lo
		}
		k := math.Ceil((lo - base) / math.Pi)
		for th := base + k*math.Pi; th < hi; th += math.Pi {
			if t := (th - a.StartAngle) / a.SweepAngle; t > 0 && t < 1 {
				ts = append(ts, t)
			}
		}
	}
	slices.Sort(ts)
	var out [MaxExtrema]float64
	n := copy(out[:], ts)
	return out, n
}

func (a Arc) BoundingBox() Rect {
	if math.Abs(a.SweepAngle) >= 2*math.Pi {
		return NewEllipse(a.Center, a.Radii, a.XRotation).BoundingBox()
	}
	return BoundingBox(a)
}

// CubicBeziers approximates the arc with cubic Béziers to within tolerance
// and calls fn with the two controls and the end point of each, in order.
// The first cubic starts at a.Start().
func (a Arc) CubicBeziers(tolerance float64, fn func(p1, p2, p3 Point)) {
	for c := range a.cubics(tolerance) {
		fn(c.P1, c.P2, c.P3)
	}
}

func (a Arc) cubics(tolerance float64) iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		scaledErr := max(a.Radii.X, a.Radii.Y) / tolerance
		// Subdivisions per full ellipse. This can slightly underestimate the
		// error of quarter turns.
		nErr := max(math.Pow(1.1163*scaledErr, 1.0/6.0), 3.999_999)
		n := int(math.Ceil(nErr * math.Abs(a.SweepAngle) / (2 * math.Pi)))
		if n == 0 {
			return
		}
		step := a.SweepAngle / float64(n)
		arm := math.Copysign(4.0/3.0*math.Tan(math.Abs(step/4)), a.SweepAngle)

		th0 := a.StartAngle
		p0 := sampleEllipse(a.Radii, a.XRotation, th0)
		for range n {
			th1 := th0 + step
			p3 := sampleEllipse(a.Radii, a.XRotation, th1)
			p1 := p0.Add(sampleEllipse(a.Radii, a.XRotation, th0+math.Pi/2).Mul(arm))
			p2 := p3.Sub(sampleEllipse(a.Radii, a.XRotation, th1+math.Pi/2).Mul(arm))
			c := CubicBez{p0.Point(), p1.Point(), p2.Point(), p3.Point()}.Translate(a.Center.Vec2())
			if !yield(c) {
				return
			}
			th0, p0 = th1, p3
		}
	}
}

func (a Arc) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo(a.Start())) {
			return
		}
		for c := range a.cubics(tolerance) {
			if !yield(CubicTo(c.P1, c.P2, c.P3)) {
				return
			}
		}
	}
}

func (a Arc) Path(tolerance float64) BezPath { return slices.Collect(a.PathElements(tolerance)) }

// closed returns the cubic approximation closed by its chord.
func (a Arc) closed(tolerance float64) BezPath {
	p := a.Path(tolerance)
	p.ClosePath()
	return p
}

// Arclen measures the cubic approximation of the arc.
func (a Arc) Arclen(accuracy float64) float64 {
	var sum float64
	for c := range a.cubics(accuracy) {
		sum += c.Arclen(accuracy)
	}
	return sum
}

func (a Arc) InvArclen(arclen, accuracy float64) float64 { return invArclen(a, arclen, accuracy) }

func (a Arc) Perimeter(accuracy float64) float64 { return a.Arclen(accuracy) }

// SignedArea is the signed area between the arc and the origin, measured on
// its cubic approximation.
func (a Arc) SignedArea() float64 {
	var sum float64
	for c := range a.cubics(0.1) {
		sum += c.SignedArea()
	}
	return sum
}

// Area returns the area enclosed by the arc and its chord.
func (a Arc) Area() float64 { return a.SignedArea() + Line{a.End(), a.Start()}.SignedArea() }

func (a Arc) Winding(pt Point) int { return a.closed(0.1).Winding(pt) }

func (a Arc) Contains(pt Point) bool { return a.Winding(pt) != 0 }

// Nearest locates the nearest point on the cubic approximation and polishes
// it with Newton steps on the ellipse itself.
func (a Arc) Nearest(pt Point, accuracy float64) Nearest {
	best := Nearest{DistanceSq: pt.DistanceSquared(a.Start())}
	if d := pt.DistanceSquared(a.End()); d < best.DistanceSq {
		best = Nearest{d, 1}
	}
	var cs []CubicBez
	for c := range a.cubics(accuracy) {
		cs = append(cs, c)
	}
	for i, c := range cs {
		nc := c.Nearest(pt, accuracy)
		if nc.DistanceSq >= best.DistanceSq {
			continue
		}
		tc := (float64(i) + nc.T) / float64(len(cs))
		t := a.polishNearest(pt, tc)
		d := pt.DistanceSquared(a.Eval(t))
		if dc := pt.DistanceSquared(a.Eval(tc)); dc < d {
			d, t = dc, tc
		}
		if d < best.DistanceSq {
			best = Nearest{d, t}
		}
	}
	return best
}

// polishNearest runs Newton's method on the squared distance, keeping t in
// [0, 1].
func (a Arc) polishNearest(pt Point, t float64) float64 {
	for range 8 {
		d := a.Deriv(t)
		dd := sampleEllipse(a.Radii, a.XRotation, a.angle(t)).Mul(-a.SweepAngle * a.SweepAngle)
		r := a.Eval(t).Sub(pt)
		den := d.Hypot2() + r.Dot(dd)
		if den == 0 {
			break
		}
		step := r.Dot(d) / den
		t = min(max(t-step, 0), 1)
		if math.Abs(step) < 1e-12 {
			break
		}
	}
	return t
}

// Reverse returns the arc traversed from end to start.
func (a Arc) Reverse() Arc {
	a.StartAngle, a.SweepAngle = a.angle(1), -a.SweepAngle
	return a
}

func (a Arc) Translate(v Vec2) Arc {
	a.Center = a.Center.Translate(v)
	return a
}

func (a Arc) IsFinite() bool {
	return a.Center.IsFinite() && a.Radii.IsFinite() &&
		isFinite(a.StartAngle) && isFinite(a.SweepAngle) && isFinite(a.XRotation)
}

func (a Arc) IsNaN() bool {
	return a.Center.IsNaN() || a.Radii.IsNaN() ||
		math.IsNaN(a.StartAngle) || math.IsNaN(a.SweepAngle) || math.IsNaN(a.XRotation)
}

// sampleEllipse returns the offset from the center of the point at angle on
// an ellipse with the given radii, rotated by xRotation.
func sampleEllipse(radii Vec2, xRotation, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return rotateVec(Vec2{radii.X * cos, radii.Y * sin}, xRotation)
}

func rotateVec(v Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}
