package bezkit

import (
	"iter"
	"math"
	"slices"
)

// BezPath is a sequence of drawing instructions made of lines, quadratics
// and cubics, possibly holding several subpaths.
//
// Each subpath begins with a MoveTo, continues with any number of LineTo,
// QuadTo and CubicTo elements and may end with ClosePath. The path can be
// viewed either as those elements or as independent segments; the latter
// view synthesizes the closing line of a ClosePath.
//
// BezPath is a plain slice and is not safe for concurrent mutation. Use
// [Path] to share a path between goroutines.
type BezPath []PathElement

var _ ClosedShape = BezPath{}

// PathElements yields the elements. tolerance is ignored.
func (p BezPath) PathElements(tolerance float64) iter.Seq[PathElement] { return p.Elements() }

// Elements yields the elements in order.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Segments yields the segments derived from the elements.
func (p BezPath) Segments() iter.Seq[PathSegment] { return Segments(p.Elements()) }

// Path returns a copy of p.
func (p BezPath) Path(tolerance float64) BezPath { return slices.Clone(p) }

func (p *BezPath) Push(el PathElement) { *p = append(*p, el) }

func (p *BezPath) MoveTo(pt Point)          { p.Push(MoveTo(pt)) }
func (p *BezPath) LineTo(pt Point)          { p.Push(LineTo(pt)) }
func (p *BezPath) QuadTo(p1, p2 Point)      { p.Push(QuadTo(p1, p2)) }
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }
func (p *BezPath) ClosePath()               { p.Push(ClosePath()) }

// Pop removes and returns the last element, or reports false if the path is
// empty.
func (p *BezPath) Pop() (PathElement, bool) {
	n := len(*p)
	if n == 0 {
		return PathElement{}, false
	}
	el := (*p)[n-1]
	*p = (*p)[:n-1]
	return el, true
}

// Truncate keeps the first n elements.
func (p *BezPath) Truncate(n int) {
	if n < len(*p) {
		*p = (*p)[:n]
	}
}

// IsEmpty reports whether the path has no segments. A path made only of
// MoveTo and ClosePath elements is empty.
func (p BezPath) IsEmpty() bool { return !p.HasSegments() }

// HasSegments reports whether the path draws anything.
func (p BezPath) HasSegments() bool {
	return slices.ContainsFunc(p, func(el PathElement) bool {
		return el.Kind != MoveToKind && el.Kind != ClosePathKind
	})
}

// Segment returns the segment that ends at element idx. No segment ends at
// a MoveTo, so Segment(0) always reports false, as does an index past the
// end or one following a ClosePath.
func (p BezPath) Segment(idx int) (PathSegment, bool) {
	if idx <= 0 || idx >= len(p) {
		return PathSegment{}, false
	}
	last, ok := p[idx-1].EndPoint()
	if !ok {
		return PathSegment{}, false
	}
	switch el := p[idx]; el.Kind {
	case LineToKind:
		return Line{last, el.P0}.Seg(), true
	case QuadToKind:
		return QuadBez{last, el.P0, el.P1}.Seg(), true
	case CubicToKind:
		return CubicBez{last, el.P0, el.P1, el.P2}.Seg(), true
	case ClosePathKind:
		for i := idx - 1; i >= 0; i-- {
			if p[i].Kind == MoveToKind {
				if p[i].P0 == last {
					return PathSegment{}, false
				}
				return Line{last, p[i].P0}.Seg(), true
			}
		}
	}
	return PathSegment{}, false
}

// ApplyTransform rewrites every point of the path in place.
func (p BezPath) ApplyTransform(aff Affine) {
	for i := range p {
		p[i] = p[i].Transform(aff)
	}
}

// Transform returns a transformed copy of the path.
func (p BezPath) Transform(aff Affine) BezPath {
	out := slices.Clone(p)
	out.ApplyTransform(aff)
	return out
}

// ScalePath scales the path by factor about the center of its bounding box.
func (p BezPath) ScalePath(factor float64) BezPath {
	c := p.BoundingBox().Center().Vec2()
	return p.Transform(Translate(c).Mul(Scale(factor, factor)).Mul(Translate(c.Negate())))
}

func (p BezPath) IsInf() bool { return slices.ContainsFunc(p, PathElement.IsInf) }
func (p BezPath) IsNaN() bool { return slices.ContainsFunc(p, PathElement.IsNaN) }

func (p BezPath) IsFinite() bool {
	return !slices.ContainsFunc(p, func(el PathElement) bool { return !el.IsFinite() })
}

// ControlBox returns the bounding box of all points of the path, including
// off-curve controls. It is cheaper than [BezPath.BoundingBox] but not tight
// around curves.
func (p BezPath) ControlBox() Rect {
	var box Rect
	first := true
	for _, el := range p {
		for _, pt := range el.points() {
			if first {
				box = NewRectFromPoints(pt, pt)
				first = false
			} else {
				box = box.UnionPoint(pt)
			}
		}
	}
	return box
}

// BoundingBox returns the tight bounding box of the segments.
func (p BezPath) BoundingBox() Rect { return SegmentsBoundingBox(p.Segments()) }

// SignedArea sums the signed areas of the segments.
func (p BezPath) SignedArea() float64 { return SegmentsSignedArea(p.Segments()) }

// Area is the signed area. It is only meaningful for closed paths.
func (p BezPath) Area() float64 { return p.SignedArea() }

func (p BezPath) Arclen(accuracy float64) float64 { return SegmentsPerimeter(p.Segments(), accuracy) }

func (p BezPath) Perimeter(accuracy float64) float64 { return p.Arclen(accuracy) }

// Winding returns the winding number of pt. It is only meaningful for closed
// paths.
func (p BezPath) Winding(pt Point) int { return SegmentsWinding(p.Segments(), pt) }

func (p BezPath) Contains(pt Point) bool { return p.Winding(pt) != 0 }

// Flatten approximates the path with lines. See [Flatten].
func (p BezPath) Flatten(tolerance float64) iter.Seq[PathElement] {
	return Flatten(p.Elements(), tolerance)
}

// FlattenPoints returns the end point of every MoveTo and LineTo produced by
// flattening, across all subpaths.
func (p BezPath) FlattenPoints(tolerance float64) []Point {
	var pts []Point
	for el := range p.Flatten(tolerance) {
		if el.Kind == MoveToKind || el.Kind == LineToKind {
			pts = append(pts, el.P0)
		}
	}
	return pts
}

// Intersections returns the points where the path crosses line, in segment
// order. A crossing at the joint of two segments may be reported twice.
func (p BezPath) Intersections(line Line) []Point {
	var out []Point
	for seg := range p.Segments() {
		hits, n := seg.IntersectLine(line)
		for _, h := range hits[:n] {
			out = append(out, line.Eval(h.LineT))
		}
	}
	return out
}

// MinDistance approximates the shortest distance between the two paths.
//
// Every segment of p is sampled at t = 0, ¼, ½, ¾ and 1 and compared against
// the samples of every segment of other. The closest pair of segments is then
// searched exactly, with lines lifted to cubics. If either path has no
// segments the result is math.MaxFloat64.
func (p BezPath) MinDistance(other BezPath) float64 {
	samples := func(seg PathSegment) [5]Point {
		return [5]Point{seg.Eval(0), seg.Eval(0.25), seg.Eval(0.5), seg.Eval(0.75), seg.Eval(1)}
	}
	var others []PathSegment
	var otherSamples [][5]Point
	for s := range other.Segments() {
		others = append(others, s)
		otherSamples = append(otherSamples, samples(s))
	}

	best := math.Inf(1)
	var s1, s2 PathSegment
	for a := range p.Segments() {
		as := samples(a)
		for i, b := range others {
			for _, pa := range as {
				for _, pb := range otherSamples[i] {
					if d := pa.DistanceSquared(pb); d < best {
						best, s1, s2 = d, a, b
					}
				}
			}
		}
	}
	if math.IsInf(best, 1) {
		Logger().Debug("min distance of a path without segments", "segments", len(others))
		return math.MaxFloat64
	}
	return liftLine(s1).MinDist(liftLine(s2), 0.05).Distance
}

// liftLine turns a line into the cubic with evenly spaced controls, leaving
// curves untouched.
func liftLine(seg PathSegment) PathSegment {
	if seg.Kind != LineKind {
		return seg
	}
	return CubicBez{seg.Eval(0), seg.Eval(1.0 / 3.0), seg.Eval(2.0 / 3.0), seg.Eval(1)}.Seg()
}

// Intersects returns the points where the outlines of p and other cross.
// Both paths are flattened with tolerance 0.1 and every edge of one
// polyline, including the edge from its last point back to its first, is
// tested against every edge of the other. Paths whose bounding boxes do not
// overlap with positive area are rejected without flattening.
func (p BezPath) Intersects(other BezPath) []Point {
	const tolerance = 0.1
	if area := p.BoundingBox().Intersect(other.BoundingBox()).Area(); area < epsilon64 {
		Logger().Debug("path bounding boxes do not overlap", "area", area)
		return nil
	}
	pts1 := p.FlattenPoints(tolerance)
	pts2 := other.FlattenPoints(tolerance)
	var out []Point
	for e1 := range closedEdges(pts1) {
		seg := e1.Seg()
		for e2 := range closedEdges(pts2) {
			hits, n := seg.IntersectLine(e2)
			for _, h := range hits[:n] {
				out = append(out, e2.Eval(h.LineT))
			}
		}
	}
	return out
}

// Overlaps reports whether the outlines of p and other cross.
func (p BezPath) Overlaps(other BezPath) bool { return len(p.Intersects(other)) > 0 }

// epsilon64 is the difference between 1 and the next float64.
const epsilon64 = 0x1p-52

// closedEdges yields the edges of the closed polygon through pts.
func closedEdges(pts []Point) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i, pt := range pts {
			if !yield(Line{pt, pts[(i+1)%len(pts)]}) {
				return
			}
		}
	}
}

// ReverseSubpaths returns a new path in which every subpath runs in the
// opposite direction. Closed subpaths stay closed and degenerate subpaths
// consisting of a lone MoveTo are kept.
func (p BezPath) ReverseSubpaths() BezPath {
	out := make(BezPath, 0, len(p))
	var startPt Point
	startIdx := 1
	pendingMove := false
	for i, el := range p {
		switch el.Kind {
		case MoveToKind:
			if pendingMove {
				out.MoveTo(startPt)
			}
			if startIdx < i {
				out = reverseSubpath(out, startPt, p[startIdx:i])
			}
			pendingMove = true
			startPt = el.P0
			startIdx = i + 1
		case ClosePathKind:
			if startIdx <= i {
				out = reverseSubpath(out, startPt, p[startIdx:i])
			}
			out.ClosePath()
			startIdx = i + 1
			pendingMove = false
		default:
			pendingMove = false
		}
	}
	if startIdx < len(p) {
		out = reverseSubpath(out, startPt, p[startIdx:])
	} else if pendingMove {
		out.MoveTo(startPt)
	}
	return out
}

// reverseSubpath appends the reversal of els, which starts at startPt and
// holds no MoveTo or ClosePath.
func reverseSubpath(out BezPath, startPt Point, els []PathElement) BezPath {
	endOf := func(i int) Point {
		if i < 0 {
			return startPt
		}
		pt, _ := els[i].EndPoint()
		return pt
	}
	out.MoveTo(endOf(len(els) - 1))
	for i := len(els) - 1; i >= 0; i-- {
		to := endOf(i - 1)
		switch el := els[i]; el.Kind {
		case LineToKind:
			out.LineTo(to)
		case QuadToKind:
			out.QuadTo(el.P0, to)
		case CubicToKind:
			out.CubicTo(el.P1, el.P0, to)
		default:
			panic("bezkit: reverseSubpath called with " + el.Kind.String())
		}
	}
	return out
}
