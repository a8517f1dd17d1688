package bezkit

import "github.com/paulmach/orb"

// Rings flattens the path to within tolerance and returns one closed ring
// per subpath, open subpaths included. Subpaths with fewer than three
// distinct points do not enclose anything and are skipped.
func (p BezPath) Rings(tolerance float64) []orb.Ring {
	var rings []orb.Ring
	var cur orb.Ring
	var start orb.Point
	flush := func() {
		if len(cur) >= 3 {
			if cur[0] != cur[len(cur)-1] {
				cur = append(cur, cur[0])
			}
			if len(cur) >= 4 {
				rings = append(rings, cur)
			}
		}
		cur = nil
	}
	for el := range p.Flatten(tolerance) {
		switch el.Kind {
		case MoveToKind:
			flush()
			start = orbPoint(el.P0)
			cur = orb.Ring{start}
		case LineToKind:
			// Drawing on after a ClosePath starts from the closed subpath's
			// first point.
			if len(cur) == 0 {
				cur = orb.Ring{start}
			}
			if pt := orbPoint(el.P0); pt != cur[len(cur)-1] {
				cur = append(cur, pt)
			}
		case ClosePathKind:
			flush()
		}
	}
	flush()
	return rings
}

// PathFromRing returns a closed polygon through the ring's points.
func PathFromRing(r orb.Ring) BezPath {
	if len(r) == 0 {
		return nil
	}
	if r.Closed() {
		r = r[:len(r)-1]
	}
	p := make(BezPath, 0, len(r)+1)
	p.MoveTo(pointFromOrb(r[0]))
	for _, pt := range r[1:] {
		p.LineTo(pointFromOrb(pt))
	}
	p.ClosePath()
	return p
}

// Bound converts r to an orb bound.
func (r Rect) Bound() orb.Bound {
	r = r.Abs()
	return orb.Bound{Min: orb.Point{r.X0, r.Y0}, Max: orb.Point{r.X1, r.Y1}}
}

// RectFromBound converts an orb bound.
func RectFromBound(b orb.Bound) Rect { return Rect{b.Min[0], b.Min[1], b.Max[0], b.Max[1]} }

func orbPoint(p Point) orb.Point     { return orb.Point{p.X, p.Y} }
func pointFromOrb(p orb.Point) Point { return Point{p[0], p[1]} }
