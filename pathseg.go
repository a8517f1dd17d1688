package bezkit

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// PathSegmentKind tags the variant held by a [PathSegment].
type PathSegmentKind int

const (
	LineKind PathSegmentKind = iota + 1
	QuadKind
	CubicKind
)

func (k PathSegmentKind) String() string {
	switch k {
	case LineKind:
		return "Line"
	case QuadKind:
		return "Quad"
	case CubicKind:
		return "Cubic"
	default:
		return fmt.Sprintf("PathSegmentKind(%d)", int(k))
	}
}

// PathSegment is a self-contained line, quadratic or cubic. Unlike
// [PathElement] it carries its own start point.
//
// It is a tagged struct rather than an interface so that Line, QuadBez and
// CubicBez keep returning their own types from Transform and Subsegment, and
// so that segments never allocate. Methods dispatch on Kind.
type PathSegment struct {
	Kind PathSegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

var (
	_ Shape           = PathSegment{}
	_ ParametricCurve = PathSegment{}
	_ Curvaturer      = PathSegment{}
)

// Line returns the segment as a Line. Only valid when Kind is LineKind.
func (seg PathSegment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the segment as a QuadBez. Only valid when Kind is QuadKind.
func (seg PathSegment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Cubic returns the segment raised to a cubic. Valid for every kind; a line
// becomes a cubic with its controls on the endpoints.
func (seg PathSegment) Cubic() CubicBez {
	switch seg.Kind {
	case LineKind:
		return CubicBez{seg.P0, seg.P0, seg.P1, seg.P1}
	case QuadKind:
		return seg.Quad().Raise()
	default:
		return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3}
	}
}

func (seg PathSegment) String() string {
	switch seg.Kind {
	case LineKind:
		return fmt.Sprintf("Line(%s, %s)", seg.P0, seg.P1)
	case QuadKind:
		return fmt.Sprintf("Quad(%s, %s, %s)", seg.P0, seg.P1, seg.P2)
	default:
		return fmt.Sprintf("Cubic(%s, %s, %s, %s)", seg.P0, seg.P1, seg.P2, seg.P3)
	}
}

// points returns the segment's control points.
func (seg PathSegment) points() []Point {
	switch seg.Kind {
	case LineKind:
		return []Point{seg.P0, seg.P1}
	case QuadKind:
		return []Point{seg.P0, seg.P1, seg.P2}
	case CubicKind:
		return []Point{seg.P0, seg.P1, seg.P2, seg.P3}
	default:
		return nil
	}
}

func (seg PathSegment) Start() Point { return seg.P0 }

func (seg PathSegment) End() Point {
	pts := seg.points()
	if len(pts) == 0 {
		return Point{}
	}
	return pts[len(pts)-1]
}

func (seg PathSegment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	default:
		return seg.Cubic().Eval(t)
	}
}

func (seg PathSegment) Subsegment(start, end float64) PathSegment {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Subsegment(start, end).Seg()
	case QuadKind:
		return seg.Quad().Subsegment(start, end).Seg()
	default:
		return seg.Cubic().Subsegment(start, end).Seg()
	}
}

func (seg PathSegment) SubsegmentCurve(start, end float64) ParametricCurve {
	return seg.Subsegment(start, end)
}

func (seg PathSegment) Subdivide() (PathSegment, PathSegment) {
	return seg.Subsegment(0, 0.5), seg.Subsegment(0.5, 1)
}

func (seg PathSegment) SubdivideCurve() (ParametricCurve, ParametricCurve) { return seg.Subdivide() }

func (seg PathSegment) Extrema() ([MaxExtrema]float64, int) {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Extrema()
	case QuadKind:
		return seg.Quad().Extrema()
	default:
		return seg.Cubic().Extrema()
	}
}

func (seg PathSegment) Curvature(t float64) float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Curvature(t)
	case QuadKind:
		return seg.Quad().Curvature(t)
	default:
		return seg.Cubic().Curvature(t)
	}
}

func (seg PathSegment) Arclen(accuracy float64) float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Arclen(accuracy)
	case QuadKind:
		return seg.Quad().Arclen(accuracy)
	default:
		return seg.Cubic().Arclen(accuracy)
	}
}

func (seg PathSegment) InvArclen(arclen, accuracy float64) float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().InvArclen(arclen, accuracy)
	case QuadKind:
		return seg.Quad().InvArclen(arclen, accuracy)
	default:
		return seg.Cubic().InvArclen(arclen, accuracy)
	}
}

func (seg PathSegment) SignedArea() float64 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().SignedArea()
	case QuadKind:
		return seg.Quad().SignedArea()
	default:
		return seg.Cubic().SignedArea()
	}
}

func (seg PathSegment) Nearest(pt Point, accuracy float64) Nearest {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Nearest(pt, accuracy)
	case QuadKind:
		return seg.Quad().Nearest(pt, accuracy)
	default:
		return seg.Cubic().Nearest(pt, accuracy)
	}
}

func (seg PathSegment) Tangents() (Vec2, Vec2) {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Tangents()
	case QuadKind:
		return seg.Quad().Tangents()
	default:
		return seg.Cubic().Tangents()
	}
}

// IntersectLine returns the crossings of the segment with the probe line.
// Crossings just outside the segment's ends are kept, so scanning the
// segments of a path may report a crossing at a shared endpoint twice.
func (seg PathSegment) IntersectLine(probe Line) ([3]LineIntersection, int) {
	switch seg.Kind {
	case LineKind:
		return seg.Line().IntersectLine(probe)
	case QuadKind:
		return seg.Quad().IntersectLine(probe)
	default:
		return seg.Cubic().IntersectLine(probe)
	}
}

func (seg PathSegment) BoundingBox() Rect { return BoundingBox(seg) }

func (seg PathSegment) Perimeter(accuracy float64) float64 { return seg.Arclen(accuracy) }

func (seg PathSegment) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(seg.P0)) && yield(seg.PathElement())
	}
}

func (seg PathSegment) Path(tolerance float64) BezPath {
	return slices.Collect(seg.PathElements(tolerance))
}

// PathElement returns the element that draws the segment from its start.
func (seg PathSegment) PathElement() PathElement {
	switch seg.Kind {
	case LineKind:
		return LineTo(seg.P1)
	case QuadKind:
		return QuadTo(seg.P1, seg.P2)
	default:
		return CubicTo(seg.P1, seg.P2, seg.P3)
	}
}

// Reverse returns the segment traversed backwards.
func (seg PathSegment) Reverse() PathSegment {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Reverse().Seg()
	case QuadKind:
		return seg.Quad().Reverse().Seg()
	default:
		return seg.Cubic().Reverse().Seg()
	}
}

// Transform applies aff to every control point.
func (seg PathSegment) Transform(aff Affine) PathSegment {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Transform(aff).Seg()
	case QuadKind:
		return seg.Quad().Transform(aff).Seg()
	default:
		return seg.Cubic().Transform(aff).Seg()
	}
}

func (seg PathSegment) IsInf() bool {
	return slices.ContainsFunc(seg.points(), Point.IsInf)
}

func (seg PathSegment) IsNaN() bool {
	return slices.ContainsFunc(seg.points(), Point.IsNaN)
}

func (seg PathSegment) IsFinite() bool {
	return !slices.ContainsFunc(seg.points(), func(p Point) bool { return !p.IsFinite() })
}

// Winding returns the segment's contribution to the winding number of pt,
// found by casting a ray to the left of pt. The segment is split at its
// extrema so that each piece crosses the ray at most once.
func (seg PathSegment) Winding(pt Point) int {
	ranges, n := ExtremaRanges(seg)
	w := 0
	for _, r := range ranges[:n] {
		w += seg.Subsegment(r[0], r[1]).monotonicWinding(pt)
	}
	return w
}

// monotonicWinding assumes seg is monotonic in y.
func (seg PathSegment) monotonicWinding(pt Point) int {
	start, end := seg.Start(), seg.End()
	var sign int
	switch {
	case end.Y > start.Y:
		if pt.Y < start.Y || pt.Y >= end.Y {
			return 0
		}
		sign = -1
	case end.Y < start.Y:
		if pt.Y < end.Y || pt.Y >= start.Y {
			return 0
		}
		sign = 1
	default:
		return 0
	}

	pts := seg.points()
	minX, maxX := pts[0].X, pts[0].X
	for _, p := range pts[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
	}
	if pt.X < minX {
		return 0
	}
	if pt.X >= maxX {
		return sign
	}

	var roots []float64
	switch seg.Kind {
	case LineKind:
		// implicit line equation ax + by = c
		a := end.Y - start.Y
		b := start.X - end.X
		c := a*start.X + b*start.Y
		if (a*pt.X+b*pt.Y-c)*float64(sign) <= 0 {
			return sign
		}
		return 0
	case QuadKind:
		p1 := seg.P1
		r, n := SolveQuadratic(start.Y-pt.Y, 2*(p1.Y-start.Y), end.Y-2*p1.Y+start.Y)
		roots = r[:n]
	default:
		p1, p2 := seg.P1, seg.P2
		r, n := SolveCubic(
			start.Y-pt.Y,
			3*(p1.Y-start.Y),
			3*(p2.Y-2*p1.Y+start.Y),
			end.Y-3*p2.Y+3*p1.Y-start.Y,
		)
		roots = r[:n]
	}
	for _, t := range roots {
		if t >= 0 && t <= 1 {
			if pt.X >= seg.Eval(t).X {
				return sign
			}
			return 0
		}
	}
	return 0
}

// MinDistance is the closest approach between two curves.
type MinDistance struct {
	Distance float64
	// T1 and T2 are the parameters of the closest points on the first and
	// second curve.
	T1, T2 float64
}

// bernstein returns the segment's control points as vectors, which is the
// input form of the min-distance algorithm.
func (seg PathSegment) bernstein() []Vec2 {
	pts := seg.points()
	out := make([]Vec2, len(pts))
	for i, p := range pts {
		out[i] = p.Vec2()
	}
	return out
}

// MinDist returns the closest approach between seg and other, refined until
// the squared-distance bounds agree to within accuracy.
func (seg PathSegment) MinDist(other PathSegment, accuracy float64) MinDistance {
	d, t1, t2 := minDistParam(seg.bernstein(), other.bernstein(), [2]float64{0, 1}, [2]float64{0, 1}, accuracy, math.Inf(1))
	return MinDistance{Distance: math.Sqrt(d), T1: t1, T2: t2}
}
