package bezkit

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/tdewolff/test"
)

func TestRingsArea(t *testing.T) {
	rings := Rect{0, 0, 10, 10}.Path(0.1).Rings(0.1)
	test.T(t, len(rings), 1)
	test.That(t, rings[0].Closed())
	test.Float(t, planar.Area(rings[0]), 100)

	circle := Circle{Pt(3, -2), 10}
	rings = circle.Path(1e-3).Rings(0.01)
	test.T(t, len(rings), 1)
	test.FloatDiff(t, planar.Area(rings[0]), circle.Area(), 0.005)
	test.FloatDiff(t, planar.Area(rings[0]), circle.Path(1e-3).Area(), 0.005)

	// Reversed outlines keep their orientation.
	reversed := circle.Path(1e-3).ReverseSubpaths().Rings(0.01)
	test.That(t, planar.Area(reversed[0]) < 0, "clockwise ring", planar.Area(reversed[0]))
}

func TestRingsSubpaths(t *testing.T) {
	p := Rect{0, 0, 1, 1}.Path(0.1)
	// Open subpaths are closed.
	p.MoveTo(Pt(5, 5))
	p.LineTo(Pt(6, 5))
	p.LineTo(Pt(6, 6))
	// Nothing is enclosed by a single line.
	p.MoveTo(Pt(10, 10))
	p.LineTo(Pt(11, 11))
	// Repeated points collapse.
	p.MoveTo(Pt(20, 20))
	p.LineTo(Pt(20, 20))
	p.LineTo(Pt(21, 21))

	rings := p.Rings(0.1)
	test.T(t, len(rings), 2)
	test.T(t, rings[1], orb.Ring{{5, 5}, {6, 5}, {6, 6}, {5, 5}})
}

func TestRingsContains(t *testing.T) {
	p := Circle{Pt(0, 0), 5}.Path(1e-3)
	p.Push(MoveTo(Pt(10, 0)))
	p.QuadTo(Pt(15, 10), Pt(20, 0))
	p.ClosePath()

	rings := p.Rings(1e-3)
	test.T(t, len(rings), 2)
	for _, pt := range []Point{{0, 0}, {4, 0}, {6, 0}, {15, 2}, {15, 6}, {-3, -3}} {
		inRing := planar.RingContains(rings[0], orbPoint(pt)) || planar.RingContains(rings[1], orbPoint(pt))
		test.T(t, inRing, p.Contains(pt), pt)
	}
}

func TestPathFromRing(t *testing.T) {
	r := orb.Ring{{0, 0}, {1, 0}, {1, 1}, {0, 0}}
	p := PathFromRing(r)
	test.T(t, p, BezPath{MoveTo(Pt(0, 0)), LineTo(Pt(1, 0)), LineTo(Pt(1, 1)), ClosePath()})
	test.Float(t, p.Area(), planar.Area(r))

	// Unclosed rings are accepted as well.
	test.T(t, PathFromRing(r[:3]), p)
	test.T(t, PathFromRing(nil), BezPath(nil))
}

func TestRectBound(t *testing.T) {
	b := Rect{3, 4, 1, 2}.Bound()
	test.T(t, b, orb.Bound{Min: orb.Point{1, 2}, Max: orb.Point{3, 4}})
	test.T(t, RectFromBound(b), Rect{1, 2, 3, 4})
	test.That(t, b.Contains(orbPoint(Rect{1, 2, 3, 4}.Center())))

	ring := Circle{Pt(0, 0), 1}.Path(0.1).Rings(0.1)[0]
	got := RectFromBound(ring.Bound())
	diff(t, Rect{-1, -1, 1, 1}, got, approx(1e-2))
	test.That(t, math.Abs(got.Width()-2) < 1e-2)
}
