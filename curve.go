package bezkit

import (
	"fmt"
	"iter"
	"math"
)

// MaxExtrema is the maximum number of extrema that can be reported by
// [Extremer]. Four is enough for cubic Béziers; other curves are expected to
// be subdivided until they stay within that limit.
const MaxExtrema = 4

// DefaultAccuracy is a general-purpose value for arguments named accuracy,
// suitable for 2D graphics.
const DefaultAccuracy = 1e-6

// Extremer describes parametric curves that report their extrema.
type Extremer interface {
	// Extrema returns the parameter values of the curve's interior extrema
	// in x and y, in increasing order. The endpoints are never reported.
	Extrema() ([MaxExtrema]float64, int)
}

// ExtremaRanges splits [0, 1] at the extrema of e. The curve is monotonic in
// both x and y within every returned range.
func ExtremaRanges(e Extremer) ([MaxExtrema + 1][2]float64, int) {
	var out [MaxExtrema + 1][2]float64
	ex, n := e.Extrema()
	t0 := 0.0
	for i, t := range ex[:n] {
		out[i] = [2]float64{t0, t}
		t0 = t
	}
	out[n] = [2]float64{t0, 1}
	return out, n + 1
}

// BoundingBox returns the tight axis-aligned bounding box of the curve over
// [0, 1], computed from its endpoints and extrema.
func BoundingBox(c interface {
	Extremer
	ParametricCurve
}) Rect {
	bbox := NewRectFromPoints(c.Start(), c.End())
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

// Shape is implemented by everything that can be expressed as path elements.
type Shape interface {
	// Perimeter returns the total length of the shape's outline.
	Perimeter(accuracy float64) float64

	// BoundingBox returns the smallest rectangle that encloses the shape.
	BoundingBox() Rect

	// PathElements expresses the shape as path elements. Shapes that Béziers
	// cannot represent exactly, such as circles, are approximated to within
	// tolerance. The number of cubic segments scales roughly with
	// tolerance^(-1/6).
	PathElements(tolerance float64) iter.Seq[PathElement]

	// Path collects PathElements into a new BezPath.
	Path(tolerance float64) BezPath
}

// ClosedShape is a Shape that encloses an area.
type ClosedShape interface {
	Shape

	// Area returns the signed area. It is positive when y grows while x is
	// positive, which is clockwise in y-down coordinate systems.
	Area() float64

	// Winding returns the winding number of pt. Its sign agrees with Area:
	// +1 inside a positive shape, -1 inside a negative one.
	Winding(pt Point) int

	// Contains reports whether the winding number of pt is non-zero.
	Contains(pt Point) bool
}

// ParametricCurve is a curve parametrized by t, nominally in [0, 1]. Values
// outside that range extrapolate the underlying formula.
type ParametricCurve interface {
	Eval(t float64) Point
	SubsegmentCurve(start, end float64) ParametricCurve
	SubdivideCurve() (ParametricCurve, ParametricCurve)
	Start() Point
	End() Point
}

// Arclener is implemented by curves that can measure their arc length.
type Arclener interface {
	// Arclen returns the curve's length, accurate to within accuracy.
	Arclen(accuracy float64) float64
}

// SignedAreaer is implemented by curves that can compute the signed area
// between themselves and the origin. Summing over the segments of a closed
// path gives the area of the path (the shoelace formula generalized through
// Green's theorem).
type SignedAreaer interface {
	SignedArea() float64
}

// Curvaturer is implemented by curves that report their signed curvature.
type Curvaturer interface {
	Curvature(t float64) float64
}

// Nearest is the result of a nearest-point query.
type Nearest struct {
	// DistanceSq is the squared distance to the nearest point.
	DistanceSq float64
	// T is the parameter of the nearest point.
	T float64
}

// Distance returns the unsquared distance.
func (n Nearest) Distance() float64 { return math.Sqrt(n.DistanceSq) }

// curvature computes the signed curvature from the first and second
// derivatives at a point.
func curvature(d, dd Vec2) float64 {
	return d.Cross(dd) * math.Pow(d.Hypot2(), -1.5)
}

// Elements converts segments back into drawing instructions. A MoveTo is
// emitted whenever a segment does not start where the previous one ended.
func Elements(seq iter.Seq[PathSegment]) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		var cur Point
		started := false
		for seg := range seq {
			if start := seg.Start(); !started || cur != start {
				if !yield(MoveTo(start)) {
					return
				}
			}
			if !yield(seg.PathElement()) {
				return
			}
			cur = seg.End()
			started = true
		}
	}
}

// Segments derives independent segments from a sequence of drawing
// instructions. A ClosePath that does not already end at the subpath's start
// produces the closing line. ClosePath elements before the first drawing
// instruction have no subpath to close and are skipped.
func Segments(seq iter.Seq[PathElement]) iter.Seq[PathSegment] {
	return func(yield func(PathSegment) bool) {
		var start, last Point
		first := true
		for el := range seq {
			if first {
				if el.Kind == ClosePathKind {
					continue
				}
				first = false
				start, _ = el.EndPoint()
				last = start
			}

			var seg PathSegment
			switch el.Kind {
			case MoveToKind:
				start, last = el.P0, el.P0
				continue
			case LineToKind:
				seg = Line{last, el.P0}.Seg()
			case QuadToKind:
				seg = QuadBez{last, el.P0, el.P1}.Seg()
			case CubicToKind:
				seg = CubicBez{last, el.P0, el.P1, el.P2}.Seg()
			case ClosePathKind:
				if last == start {
					continue
				}
				seg = Line{last, start}.Seg()
			default:
				panic(fmt.Sprintf("bezkit: invalid path element kind %d", el.Kind))
			}
			last = seg.End()
			if !yield(seg) {
				return
			}
		}
	}
}

// SegmentsPerimeter sums the arc lengths of the segments.
func SegmentsPerimeter(seq iter.Seq[PathSegment], accuracy float64) float64 {
	var sum float64
	for s := range seq {
		sum += s.Arclen(accuracy)
	}
	return sum
}

// SegmentsSignedArea sums the signed areas of the segments.
func SegmentsSignedArea(seq iter.Seq[PathSegment]) float64 {
	var sum float64
	for s := range seq {
		sum += s.SignedArea()
	}
	return sum
}

// SegmentsWinding sums the winding contributions of the segments.
func SegmentsWinding(seq iter.Seq[PathSegment], pt Point) int {
	var sum int
	for s := range seq {
		sum += s.Winding(pt)
	}
	return sum
}

// SegmentsBoundingBox returns the union of the segments' tight bounding
// boxes, or the zero Rect if there are no segments.
func SegmentsBoundingBox(seq iter.Seq[PathSegment]) Rect {
	var bbox Rect
	first := true
	for s := range seq {
		if first {
			bbox = s.BoundingBox()
			first = false
		} else {
			bbox = bbox.Union(s.BoundingBox())
		}
	}
	return bbox
}
