package bezkit

import "iter"

// QuadSpline is a uniform quadratic B-spline in the TrueType glyf layout:
// the first and last points lie on the curve, every point in between is an
// off-curve control point, and the on-curve points between two consecutive
// controls are implied at their midpoint.
type QuadSpline []Point

// Quads yields one quadratic per control point. Consecutive quadratics share
// an implied on-curve point and a tangent there, so the result is G1
// continuous. Splines with fewer than three points yield nothing.
func (s QuadSpline) Quads() iter.Seq[QuadBez] {
	return func(yield func(QuadBez) bool) {
		last := len(s) - 1
		for i := 1; i < last; i++ {
			p0, p1, p2 := s[i-1], s[i], s[i+1]
			if i > 1 {
				p0 = p0.Midpoint(p1)
			}
			if i+1 < last {
				p2 = p1.Midpoint(p2)
			}
			if !yield(QuadBez{p0, p1, p2}) {
				return
			}
		}
	}
}

// Path returns the spline as a single open subpath of QuadTo elements.
func (s QuadSpline) Path() BezPath {
	if len(s) == 0 {
		return nil
	}
	p := BezPath{MoveTo(s[0])}
	for q := range s.Quads() {
		p.QuadTo(q.P1, q.P2)
	}
	return p
}
