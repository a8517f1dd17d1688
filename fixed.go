package bezkit

import (
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// PointFromFixed converts a 26.6 fixed-point point.
func PointFromFixed(p fixed.Point26_6) Point {
	return Point{float64(p.X) / 64, float64(p.Y) / 64}
}

// Fixed rounds p to the nearest 26.6 fixed-point point.
func (p Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(p.X * 64)),
		Y: fixed.Int26_6(math.Round(p.Y * 64)),
	}
}

// PathFromGlyph converts a glyph outline as loaded by sfnt. Glyph contours
// are implicitly closed, so every contour gets a ClosePath.
func PathFromGlyph(segs sfnt.Segments) BezPath {
	p := make(BezPath, 0, len(segs)+len(segs)/4)
	open := false
	for _, s := range segs {
		a := s.Args
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.ClosePath()
			}
			p.MoveTo(PointFromFixed(a[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			p.LineTo(PointFromFixed(a[0]))
		case sfnt.SegmentOpQuadTo:
			p.QuadTo(PointFromFixed(a[0]), PointFromFixed(a[1]))
		case sfnt.SegmentOpCubeTo:
			p.CubicTo(PointFromFixed(a[0]), PointFromFixed(a[1]), PointFromFixed(a[2]))
		}
	}
	if open {
		p.ClosePath()
	}
	return p
}

// Glyph converts the path to the fixed-point form used by sfnt. ClosePath
// elements are dropped because sfnt contours are implicitly closed.
func (p BezPath) Glyph() sfnt.Segments {
	out := make(sfnt.Segments, 0, len(p))
	for _, el := range p {
		var s sfnt.Segment
		switch el.Kind {
		case MoveToKind:
			s.Op = sfnt.SegmentOpMoveTo
		case LineToKind:
			s.Op = sfnt.SegmentOpLineTo
		case QuadToKind:
			s.Op = sfnt.SegmentOpQuadTo
		case CubicToKind:
			s.Op = sfnt.SegmentOpCubeTo
		default:
			continue
		}
		for i, pt := range el.points() {
			s.Args[i] = pt.Fixed()
		}
		out = append(out, s)
	}
	return out
}

// Float32Sink receives path elements in single precision. The method set
// matches golang.org/x/image/vector.Rasterizer.
type Float32Sink interface {
	MoveTo(ax, ay float32)
	LineTo(bx, by float32)
	QuadTo(bx, by, cx, cy float32)
	CubeTo(bx, by, cx, cy, dx, dy float32)
	ClosePath()
}

// Emit replays the path into sink after applying aff.
func (p BezPath) Emit(sink Float32Sink, aff Affine) {
	f := func(pt Point) (float32, float32) {
		pt = aff.ApplyPoint(pt)
		return float32(pt.X), float32(pt.Y)
	}
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			sink.MoveTo(f(el.P0))
		case LineToKind:
			sink.LineTo(f(el.P0))
		case QuadToKind:
			bx, by := f(el.P0)
			cx, cy := f(el.P1)
			sink.QuadTo(bx, by, cx, cy)
		case CubicToKind:
			bx, by := f(el.P0)
			cx, cy := f(el.P1)
			dx, dy := f(el.P2)
			sink.CubeTo(bx, by, cx, cy, dx, dy)
		case ClosePathKind:
			sink.ClosePath()
		}
	}
}
