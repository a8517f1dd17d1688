package bezkit

import (
	"math"
	"slices"
	"testing"

	"github.com/tdewolff/test"
)

type extrapolator interface {
	Eval(float64) Point
	SubsegmentCurve(t0, t1 float64) ParametricCurve
}

func TestEvalOutsideUnitInterval(t *testing.T) {
	var tts = []struct {
		name          string
		c             extrapolator
		before, after Point
	}{
		// x = 2t, y = 4t
		{"line", Line{Pt(0, 0), Pt(2, 4)}, Pt(-1, -2), Pt(3, 6)},
		// x = 2t, y = 4t(1-t)
		{"quad", QuadBez{Pt(0, 0), Pt(1, 2), Pt(2, 0)}, Pt(-1, -3), Pt(3, -3)},
		// x = 3t, y = 9t(1-t)
		{"cubic", CubicBez{Pt(0, 0), Pt(1, 3), Pt(2, 3), Pt(3, 0)}, Pt(-1.5, -6.75), Pt(4.5, -6.75)},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			assertNear(t, tt.c.Eval(-0.5), tt.before, 1e-12)
			assertNear(t, tt.c.Eval(1.5), tt.after, 1e-12)

			// The subsegment covers the extrapolated stretches too.
			sub := tt.c.SubsegmentCurve(-0.5, 1.5)
			for i := range 9 {
				u := float64(i) / 8
				assertNear(t, sub.Eval(u), tt.c.Eval(-0.5+2*u), 1e-9)
			}
		})
	}
}

func TestPointCurves(t *testing.T) {
	p := Pt(3, 4)
	var tts = []struct {
		name string
		seg  PathSegment
	}{
		{"line", Line{p, p}.Seg()},
		{"quad", QuadBez{p, p, p}.Seg()},
		{"cubic", CubicBez{p, p, p, p}.Seg()},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			test.Float(t, tt.seg.Arclen(DefaultAccuracy), 0)
			for _, acc := range []float64{DefaultAccuracy, 0} {
				for _, l := range []float64{0, 1} {
					u := tt.seg.InvArclen(l, acc)
					test.That(t, u >= 0 && u <= 1, "parameter out of range:", u)
				}
			}
			diff(t, Rect{3, 4, 3, 4}, tt.seg.BoundingBox(), approx(1e-12))
			assertNear(t, tt.seg.Eval(0.5), p, 1e-12)
			test.Float(t, tt.seg.Nearest(Pt(0, 0), DefaultAccuracy).DistanceSq, 25)
		})
	}
}

func TestZeroAccuracy(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 3), Pt(2, 3), Pt(3, 0)}
	total := c.Arclen(DefaultAccuracy)
	// The curve is symmetric about t = 0.5.
	test.FloatDiff(t, c.InvArclen(total/2, 0), 0.5, 1e-6)
	q := QuadBez{Pt(0, 0), Pt(1, 2), Pt(2, 0)}
	test.FloatDiff(t, q.InvArclen(q.Arclen(0)/2, 0), 0.5, 1e-6)
}

func TestPathWithPointCurve(t *testing.T) {
	p, err := ParseSVG("M0 0 Q0 0 0 0 L10 0 C10 0 10 0 10 0")
	test.Error(t, err)
	test.Float(t, p.Perimeter(DefaultAccuracy), 10)
	test.That(t, !math.IsNaN(p.Area()))

	var total float64
	for piece := range SplitArclen(p.Segments(), 3) {
		for _, seg := range piece {
			total += seg.Arclen(DefaultAccuracy)
		}
	}
	test.FloatDiff(t, total, 10, 1e-9)
	test.T(t, len(slices.Collect(SplitN(p.Segments(), 4))), 4)
}
