package bezkit

import (
	"iter"
	"math"
)

// Affine is a 2D affine transform with coefficients (a, b, c, d, e, f) stored
// in N0 through N5, describing the augmented matrix
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// This is the transpose of the PostScript convention. Composition is ordinary
// matrix multiplication, so (A.Mul(B)).ApplyPoint(p) equals
// A.ApplyPoint(B.ApplyPoint(p)). Multiplication is not commutative.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

var (
	// Identity maps every point to itself.
	Identity = Affine{1, 0, 0, 1, 0, 0}
	// FlipY mirrors across the x axis, converting between y-up and y-down
	// spaces.
	FlipY = Affine{1, 0, 0, -1, 0, 0}
	// FlipX mirrors across the y axis.
	FlipX = Affine{-1, 0, 0, 1, 0, 0}
)

// NewAffine returns the transform with the given coefficients.
func NewAffine(n [6]float64) Affine { return Affine{n[0], n[1], n[2], n[3], n[4], n[5]} }

// Scale scales x and y independently.
func Scale(x, y float64) Affine { return Affine{x, 0, 0, y, 0, 0} }

// Translate moves by v.
func Translate(v Vec2) Affine { return Affine{1, 0, 0, 1, v.X, v.Y} }

// Rotate rotates by th radians about the origin, turning the positive x axis
// towards the positive y axis.
func Rotate(th float64) Affine {
	s, c := math.Sincos(th)
	return Affine{c, s, -s, c, 0, 0}
}

// RotateAbout rotates by th radians about center.
func RotateAbout(th float64, center Point) Affine {
	v := center.Vec2()
	return Translate(v.Negate()).ThenRotate(th).ThenTranslate(v)
}

// Skew shears by x horizontally and y vertically. A horizontal skew is the
// usual way to synthesize an oblique font.
func Skew(x, y float64) Affine { return Affine{1, y, x, 1, 0, 0} }

// Reflect mirrors across the line through pt with the given direction.
func Reflect(pt Point, direction Vec2) Affine {
	n := Vec2{direction.Y, -direction.X}.Normalize()
	// Householder matrix I - 2nnᵀ, conjugated by a translation to pt.
	xx, xy, yy := n.X*n.X, n.X*n.Y, n.Y*n.Y
	h := Affine{1 - 2*xx, -2 * xy, -2 * xy, 1 - 2*yy, pt.X, pt.Y}
	return h.PreTranslate(pt.Vec2().Negate())
}

// MapUnitSquare maps the unit square onto r.
func MapUnitSquare(r Rect) Affine {
	return Affine{r.Width(), 0, 0, r.Height(), r.X0, r.Y0}
}

// Coefficients returns (a, b, c, d, e, f).
func (a Affine) Coefficients() [6]float64 {
	return [6]float64{a.N0, a.N1, a.N2, a.N3, a.N4, a.N5}
}

// Mul returns the transform that applies o first and then a.
func (a Affine) Mul(o Affine) Affine {
	return Affine{
		N0: a.N0*o.N0 + a.N2*o.N1,
		N1: a.N1*o.N0 + a.N3*o.N1,
		N2: a.N0*o.N2 + a.N2*o.N3,
		N3: a.N1*o.N2 + a.N3*o.N3,
		N4: a.N0*o.N4 + a.N2*o.N5 + a.N4,
		N5: a.N1*o.N4 + a.N3*o.N5 + a.N5,
	}
}

// PreRotate returns a.Mul(Rotate(th)).
func (a Affine) PreRotate(th float64) Affine { return a.Mul(Rotate(th)) }

// ThenRotate returns Rotate(th).Mul(a).
func (a Affine) ThenRotate(th float64) Affine { return Rotate(th).Mul(a) }

// PreRotateAbout returns a.Mul(RotateAbout(th, center)).
func (a Affine) PreRotateAbout(th float64, center Point) Affine {
	return a.Mul(RotateAbout(th, center))
}

// ThenRotateAbout returns RotateAbout(th, center).Mul(a).
func (a Affine) ThenRotateAbout(th float64, center Point) Affine {
	return RotateAbout(th, center).Mul(a)
}

// PreScale returns a.Mul(Scale(x, y)).
func (a Affine) PreScale(x, y float64) Affine { return a.Mul(Scale(x, y)) }

// ThenScale returns Scale(x, y).Mul(a).
func (a Affine) ThenScale(x, y float64) Affine { return Scale(x, y).Mul(a) }

// PreTranslate returns a.Mul(Translate(v)).
func (a Affine) PreTranslate(v Vec2) Affine { return a.Mul(Translate(v)) }

// ThenTranslate returns Translate(v).Mul(a).
func (a Affine) ThenTranslate(v Vec2) Affine {
	a.N4 += v.X
	a.N5 += v.Y
	return a
}

// Determinant returns the determinant of the linear part.
func (a Affine) Determinant() float64 { return a.N0*a.N3 - a.N1*a.N2 }

// Invert returns the inverse transform. A singular transform inverts to NaNs
// and infinities; check with [Affine.IsFinite].
func (a Affine) Invert() Affine {
	k := 1 / a.Determinant()
	return Affine{
		N0: k * a.N3,
		N1: -k * a.N1,
		N2: -k * a.N2,
		N3: k * a.N0,
		N4: k * (a.N2*a.N5 - a.N3*a.N4),
		N5: k * (a.N1*a.N4 - a.N0*a.N5),
	}
}

// Translation returns (e, f).
func (a Affine) Translation() Vec2 { return Vec2{a.N4, a.N5} }

// WithTranslation replaces (e, f) with v.
func (a Affine) WithTranslation(v Vec2) Affine {
	a.N4, a.N5 = v.X, v.Y
	return a
}

func (a Affine) IsInf() bool {
	for _, n := range a.Coefficients() {
		if math.IsInf(n, 0) {
			return true
		}
	}
	return false
}

func (a Affine) IsNaN() bool {
	for _, n := range a.Coefficients() {
		if math.IsNaN(n) {
			return true
		}
	}
	return false
}

func (a Affine) IsFinite() bool { return !a.IsInf() && !a.IsNaN() }

// svd returns the singular values of the linear part and the rotation angle of
// U in its decomposition U·Σ·Vᵀ. Vᵀ is not computed: the only caller maps the
// unit circle, which any rotation leaves unchanged. Singular matrices yield
// NaNs.
func (a Affine) svd() (scale Vec2, th float64) {
	p, q, r, s := a.N0, a.N1, a.N2, a.N3
	diff := p*p - q*q + r*r - s*s
	cross := p*q + r*s
	th = 0.5 * math.Atan2(2*cross, diff)
	sum := p*p + q*q + r*r + s*s
	root := math.Sqrt(diff*diff + 4*cross*cross)
	return Vec2{math.Sqrt(0.5 * (sum + root)), math.Sqrt(0.5 * (sum - root))}, th
}

// ApplyPoint maps p.
func (a Affine) ApplyPoint(p Point) Point {
	return Point{
		X: a.N0*p.X + a.N2*p.Y + a.N4,
		Y: a.N1*p.X + a.N3*p.Y + a.N5,
	}
}

// ApplyVec2 maps v by the linear part only.
func (a Affine) ApplyVec2(v Vec2) Vec2 {
	return Vec2{a.N0*v.X + a.N2*v.Y, a.N1*v.X + a.N3*v.Y}
}

func (a Affine) ApplyLine(l Line) Line                      { return l.Transform(a) }
func (a Affine) ApplyQuadBez(q QuadBez) QuadBez             { return q.Transform(a) }
func (a Affine) ApplyCubicBez(c CubicBez) CubicBez          { return c.Transform(a) }
func (a Affine) ApplyPathElement(e PathElement) PathElement { return e.Transform(a) }
func (a Affine) ApplyPathSegment(s PathSegment) PathSegment { return s.Transform(a) }
func (a Affine) ApplyEllipse(e Ellipse) Ellipse             { return e.Transform(a) }

// ApplyBezPath returns a transformed copy of p.
func (a Affine) ApplyBezPath(p BezPath) BezPath { return p.Transform(a) }

// TransformRectBoundingBox returns the normalized bounding box of r after
// transformation. It is tight when a keeps axes aligned. Rectangles are not
// closed under rotation or skew; use [TranslateScale] to map a Rect exactly.
func (a Affine) TransformRectBoundingBox(r Rect) Rect {
	bb := NewRectFromPoints(a.ApplyPoint(Pt(r.X0, r.Y0)), a.ApplyPoint(Pt(r.X1, r.Y1)))
	bb = bb.UnionPoint(a.ApplyPoint(Pt(r.X0, r.Y1)))
	return bb.UnionPoint(a.ApplyPoint(Pt(r.X1, r.Y0)))
}

// Transform maps every value of seq through aff.
func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				return
			}
		}
	}
}
