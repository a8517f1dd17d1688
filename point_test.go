package bezkit

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPointArithmetic(t *testing.T) {
	test.T(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	test.T(t, Pt(3, 4).Sub(Pt(1, 1)), Vec(2, 3))
	test.T(t, Pt(0, 0).Lerp(Pt(10, 20), 0.25), Pt(2.5, 5))
	test.T(t, Pt(0, 0).Midpoint(Pt(10, 20)), Pt(5, 10))
}

func TestPointDistance(t *testing.T) {
	test.Float(t, Pt(0, 10).Distance(Pt(0, 5)), 5)
	test.Float(t, Pt(-11, 1).Distance(Pt(-7, -2)), 5)
	test.Float(t, Pt(-11, 1).DistanceSquared(Pt(-7, -2)), 25)
}

func TestPointRounding(t *testing.T) {
	p := Pt(-1.5, 2.5)
	test.T(t, p.Round(), Pt(-2, 3))
	test.T(t, p.Ceil(), Pt(-1, 3))
	test.T(t, p.Floor(), Pt(-2, 2))
	test.T(t, p.Trunc(), Pt(-1, 2))
	test.T(t, p.Expand(), Pt(-2, 3))
	test.T(t, Pt(-1.2, 1.2).Expand(), Pt(-2, 2))
}

func TestPointFiniteness(t *testing.T) {
	test.That(t, Pt(1, 2).IsFinite())
	test.That(t, Pt(math.Inf(-1), 0).IsInf())
	test.That(t, Pt(0, math.NaN()).IsNaN())
	test.That(t, !Pt(0, math.NaN()).IsFinite())
}

func TestVec2(t *testing.T) {
	v := Vec(3, 4)
	test.Float(t, v.Hypot(), 5)
	test.Float(t, v.Hypot2(), 25)
	test.Float(t, v.Dot(Vec(1, 0)), 3)
	test.Float(t, v.Cross(Vec(1, 0)), -4)
	test.T(t, v.Turn90(), Vec(-4, 3))
	test.Float(t, VecFromAngle(math.Pi/2).Angle(), math.Pi/2)
	test.Float(t, v.Normalize().Hypot(), 1)
	test.T(t, v.Lerp(Vec(5, 0), 0.5), Vec(4, 2))
}

func TestSize(t *testing.T) {
	s := Sz(4, 2)
	test.Float(t, s.Area(), 8)
	test.Float(t, s.AspectRatio(), 0.5)
	test.Float(t, s.MaxSide(), 4)
	test.Float(t, s.MinSide(), 2)
	test.T(t, s.Clamp(Sz(5, 0), Sz(10, 1)), Sz(5, 1))
	test.T(t, Sz(1.5, -1.5).Expand(), Sz(2, -2))
}
