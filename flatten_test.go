package bezkit

import (
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/tdewolff/test"
)

// flattenError returns the Hausdorff distance between the curve and the
// polyline through pts, sampling every edge and the curve itself.
func flattenError(c interface {
	Eval(float64) Point
	Nearest(Point, float64) Nearest
}, pts []Point) float64 {
	var worst float64
	for i := 1; i < len(pts); i++ {
		edge := Line{pts[i-1], pts[i]}
		for j := range 17 {
			n := c.Nearest(edge.Eval(float64(j)/16), 1e-9)
			worst = max(worst, math.Sqrt(n.DistanceSq))
		}
	}
	for j := range 257 {
		pt := c.Eval(float64(j) / 256)
		best := math.Inf(1)
		for i := 1; i < len(pts); i++ {
			best = min(best, Line{pts[i-1], pts[i]}.Nearest(pt, 0).DistanceSq)
		}
		worst = max(worst, math.Sqrt(best))
	}
	return worst
}

func TestFlattenTolerance(t *testing.T) {
	var tts = []struct {
		name string
		seg  PathSegment
	}{
		{"arch", QuadBez{Pt(0, 0), Pt(50, 100), Pt(100, 0)}.Seg()},
		{"sharp quad", QuadBez{Pt(0, 0), Pt(100, 1), Pt(0, 2)}.Seg()},
		{"bulge", CubicBez{Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0)}.Seg()},
		{"s-curve", CubicBez{Pt(0, 0), Pt(100, 0), Pt(0, 100), Pt(100, 100)}.Seg()},
		{"loop", CubicBez{Pt(0, 0), Pt(100, 100), Pt(0, 100), Pt(100, 0)}.Seg()},
		{"straight overshoot", QuadBez{Pt(0, 0), Pt(20, 0), Pt(10, 0)}.Seg()},
		{"diagonal overshoot", QuadBez{Pt(0, 0), Pt(20, 20), Pt(10, 10)}.Seg()},
		{"straight turnback", QuadBez{Pt(0, 0), Pt(10, 0), Pt(0, 0)}.Seg()},
		{"straight cubic", CubicBez{Pt(0, 0), Pt(30, 0), Pt(-10, 0), Pt(10, 0)}.Seg()},
	}
	for _, tt := range tts {
		for _, tol := range []float64{1, 0.25, 0.01} {
			t.Run(fmt.Sprint(tt.name, " ", tol), func(t *testing.T) {
				p := tt.seg.Path(0)
				pts := p.FlattenPoints(tol)
				test.That(t, len(pts) >= 2, "too few points", len(pts))
				test.T(t, pts[0], tt.seg.Start())
				test.T(t, pts[len(pts)-1], tt.seg.End())
				if d := flattenError(tt.seg, pts); d > tol*1.25 {
					t.Errorf("tolerance %g: polyline strays %g from the curve", tol, d)
				}
			})
		}
	}
}

func TestFlattenCount(t *testing.T) {
	p := CubicBez{Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0)}.Seg().Path(0)
	coarse := len(p.FlattenPoints(1))
	fine := len(p.FlattenPoints(0.01))
	test.That(t, fine > coarse, "finer tolerance yields more points", coarse, fine)

	// Subdivisions grow with the inverse square root of the tolerance.
	ratio := float64(fine-1) / float64(coarse-1)
	test.That(t, ratio > 5 && ratio < 20, "unexpected growth", ratio)
}

func TestFlattenKeepsLines(t *testing.T) {
	p := BezPath{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(1, 0)),
		LineTo(Pt(1, 1)),
		ClosePath(),
		MoveTo(Pt(5, 5)),
		LineTo(Pt(6, 6)),
	}
	test.T(t, BezPath(slices.Collect(p.Flatten(0.25))), p)
}

func TestFlattenOnlyLines(t *testing.T) {
	p := Circle{Pt(0, 0), 10}.Path(0.1)
	p.MoveTo(Pt(20, 0))
	p.QuadTo(Pt(25, 10), Pt(30, 0))
	var moves, closes int
	for el := range p.Flatten(0.1) {
		switch el.Kind {
		case MoveToKind:
			moves++
		case ClosePathKind:
			closes++
		case LineToKind:
		default:
			t.Fatalf("unexpected %s in flattened path", el.Kind)
		}
	}
	test.T(t, moves, 2)
	test.T(t, closes, 1)
}

func TestFlattenCurveWithoutStart(t *testing.T) {
	// A curve with no current point draws nothing.
	p := BezPath{QuadTo(Pt(1, 1), Pt(2, 0)), MoveTo(Pt(0, 0)), LineTo(Pt(1, 0))}
	test.T(t, BezPath(slices.Collect(p.Flatten(0.25))), p[1:])
}

func TestFlattenStopsEarly(t *testing.T) {
	p := Circle{Pt(0, 0), 100}.Path(0.1)
	n := 0
	for range p.Flatten(0.01) {
		n++
		if n == 3 {
			break
		}
	}
	test.T(t, n, 3)
}

func TestFlattenStraightQuad(t *testing.T) {
	// The control point lies beyond the end, so the curve runs out to
	// x = 40/3 and comes back.
	p := QuadBez{Pt(0, 0), Pt(20, 0), Pt(10, 0)}.Path(0)
	diff(t, []Point{Pt(0, 0), Pt(40.0/3, 0), Pt(10, 0)}, p.FlattenPoints(0.25), approx(1e-12))

	// Without a turn the chord is exact.
	p = QuadBez{Pt(0, 0), Pt(2, 2), Pt(10, 10)}.Path(0)
	diff(t, []Point{Pt(0, 0), Pt(10, 10)}, p.FlattenPoints(0.25))

	// A point does not turn either.
	p = QuadBez{Pt(3, 3), Pt(3, 3), Pt(3, 3)}.Path(0)
	diff(t, []Point{Pt(3, 3), Pt(3, 3)}, p.FlattenPoints(0.25))
}
