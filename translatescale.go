package bezkit

import "math"

// TranslateScale is a uniform scale followed by a translation. It is cheaper
// than [Affine] and, unlike it, maps a [Rect] to a Rect exactly.
//
// As a matrix it is
//
//	| s 0 x |
//	| 0 s y |
//	| 0 0 1 |
//
// and composes like one: ts.Mul(o) applies o first.
type TranslateScale struct {
	Translation Vec2
	Scale       float64
}

// NewTranslateScale returns the transform that scales by scale and then
// translates by translation.
func NewTranslateScale(translation Vec2, scale float64) TranslateScale {
	return TranslateScale{Translation: translation, Scale: scale}
}

// UniformScale returns a pure uniform scale about the origin.
func UniformScale(s float64) TranslateScale { return TranslateScale{Scale: s} }

// TranslateBy returns a pure translation.
func TranslateBy(v Vec2) TranslateScale { return TranslateScale{Translation: v, Scale: 1} }

// Splat returns the translation and the scale.
func (ts TranslateScale) Splat() (Vec2, float64) { return ts.Translation, ts.Scale }

// Affine returns ts as a general affine transform.
func (ts TranslateScale) Affine() Affine {
	return Affine{ts.Scale, 0, 0, ts.Scale, ts.Translation.X, ts.Translation.Y}
}

// Mul returns the transform that applies o first and then ts.
func (ts TranslateScale) Mul(o TranslateScale) TranslateScale {
	return TranslateScale{
		Translation: ts.ApplyVec2Point(o.Translation),
		Scale:       ts.Scale * o.Scale,
	}
}

// ApplyVec2Point treats v as a point and maps it.
func (ts TranslateScale) ApplyVec2Point(v Vec2) Vec2 {
	return v.Mul(ts.Scale).Add(ts.Translation)
}

// AddVec2 returns ts followed by a further translation by v.
func (ts TranslateScale) AddVec2(v Vec2) TranslateScale {
	ts.Translation = ts.Translation.Add(v)
	return ts
}

// SubVec2 returns ts followed by a translation by -v.
func (ts TranslateScale) SubVec2(v Vec2) TranslateScale { return ts.AddVec2(v.Negate()) }

// Inverse returns the inverse transform. A zero scale inverts to
// non-finite values; check with [TranslateScale.IsFinite].
func (ts TranslateScale) Inverse() TranslateScale {
	inv := 1 / ts.Scale
	return TranslateScale{Translation: ts.Translation.Mul(-inv), Scale: inv}
}

func (ts TranslateScale) IsFinite() bool { return ts.Translation.IsFinite() && isFinite(ts.Scale) }
func (ts TranslateScale) IsNaN() bool    { return ts.Translation.IsNaN() || math.IsNaN(ts.Scale) }

func (ts TranslateScale) ApplyPoint(p Point) Point {
	return Point{p.X*ts.Scale + ts.Translation.X, p.Y*ts.Scale + ts.Translation.Y}
}

func (ts TranslateScale) ApplyLine(l Line) Line {
	return Line{ts.ApplyPoint(l.P0), ts.ApplyPoint(l.P1)}
}

func (ts TranslateScale) ApplyQuadBez(q QuadBez) QuadBez {
	return QuadBez{ts.ApplyPoint(q.P0), ts.ApplyPoint(q.P1), ts.ApplyPoint(q.P2)}
}

func (ts TranslateScale) ApplyCubicBez(c CubicBez) CubicBez {
	return CubicBez{ts.ApplyPoint(c.P0), ts.ApplyPoint(c.P1), ts.ApplyPoint(c.P2), ts.ApplyPoint(c.P3)}
}

// ApplyRect maps both corners of r. A negative scale flips the corner order,
// which [Rect.Abs] undoes.
func (ts TranslateScale) ApplyRect(r Rect) Rect {
	p0 := ts.ApplyPoint(Pt(r.X0, r.Y0))
	p1 := ts.ApplyPoint(Pt(r.X1, r.Y1))
	return Rect{p0.X, p0.Y, p1.X, p1.Y}
}

func (ts TranslateScale) ApplyCircle(c Circle) Circle {
	return Circle{Center: ts.ApplyPoint(c.Center), Radius: c.Radius * math.Abs(ts.Scale)}
}

// ApplyBezPath returns a transformed copy of p.
func (ts TranslateScale) ApplyBezPath(p BezPath) BezPath {
	return ts.Affine().ApplyBezPath(p)
}
