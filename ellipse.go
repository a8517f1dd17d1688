package bezkit

import (
	"iter"
	"math"
	"slices"
)

// Ellipse is the image of the unit circle under an affine map. Unlike [Arc]
// it is always closed.
type Ellipse struct {
	inner Affine
}

var (
	_ ClosedShape     = Ellipse{}
	_ ParametricCurve = Ellipse{}
)

// NewEllipse returns the ellipse obtained by stretching the unit circle by
// radii, rotating it by xRotation and moving it to center. The signs of the
// radii are ignored.
func NewEllipse(center Point, radii Vec2, xRotation float64) Ellipse {
	return Ellipse{
		inner: Translate(center.Vec2()).
			Mul(Rotate(xRotation)).
			Mul(Scale(math.Abs(radii.X), math.Abs(radii.Y))),
	}
}

// NewEllipseFromRect returns the largest axis-aligned ellipse inside r.
func NewEllipseFromRect(r Rect) Ellipse {
	return NewEllipse(r.Center(), r.Size().Scale(0.5).Vec2(), 0)
}

// NewEllipseFromAffine returns the image of the unit circle under aff.
func NewEllipseFromAffine(aff Affine) Ellipse { return Ellipse{inner: aff} }

func NewEllipseFromCircle(c Circle) Ellipse {
	return NewEllipse(c.Center, Vec2{c.Radius, c.Radius}, 0)
}

func (e Ellipse) Affine() Affine { return e.inner }

func (e Ellipse) Center() Point { return e.inner.Translation().Point() }

// Radii returns the radii along the ellipse's own axes, before rotation.
func (e Ellipse) Radii() Vec2 {
	radii, _ := e.inner.svd()
	return radii
}

func (e Ellipse) Rotation() float64 {
	_, th := e.inner.svd()
	return th
}

// RadiiRotation returns Radii and Rotation with a single decomposition.
func (e Ellipse) RadiiRotation() (Vec2, float64) { return e.inner.svd() }

func (e Ellipse) WithCenter(center Point) Ellipse {
	return Ellipse{inner: e.inner.WithTranslation(center.Vec2())}
}

func (e Ellipse) WithRadii(radii Vec2) Ellipse {
	return NewEllipse(e.Center(), radii, e.Rotation())
}

func (e Ellipse) WithRotation(th float64) Ellipse {
	return NewEllipse(e.Center(), e.Radii(), th)
}

// Arc returns the ellipse as a full-turn arc starting at angle 0.
func (e Ellipse) Arc() Arc {
	radii, th := e.inner.svd()
	return Arc{Center: e.Center(), Radii: radii, SweepAngle: 2 * math.Pi, XRotation: th}
}

func (e Ellipse) Eval(t float64) Point { return e.Arc().Eval(t) }
func (e Ellipse) Start() Point         { return e.Arc().Start() }
func (e Ellipse) End() Point           { return e.Arc().End() }

func (e Ellipse) SubsegmentCurve(start, end float64) ParametricCurve {
	return e.Arc().Subsegment(start, end)
}

func (e Ellipse) SubdivideCurve() (ParametricCurve, ParametricCurve) { return e.Arc().SubdivideCurve() }

func (e Ellipse) Extrema() ([MaxExtrema]float64, int)        { return e.Arc().Extrema() }
func (e Ellipse) Curvature(t float64) float64                { return e.Arc().Curvature(t) }
func (e Ellipse) Arclen(accuracy float64) float64            { return e.Arc().Arclen(accuracy) }
func (e Ellipse) InvArclen(arclen, accuracy float64) float64 { return e.Arc().InvArclen(arclen, accuracy) }
func (e Ellipse) Nearest(pt Point, accuracy float64) Nearest { return e.Arc().Nearest(pt, accuracy) }

func (e Ellipse) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for el := range e.Arc().PathElements(tolerance) {
			if !yield(el) {
				return
			}
		}
		yield(ClosePath())
	}
}

func (e Ellipse) Path(tolerance float64) BezPath { return slices.Collect(e.PathElements(tolerance)) }

// Area is π·rx·ry. It is always positive.
func (e Ellipse) Area() float64 {
	r := e.Radii()
	return math.Pi * r.X * r.Y
}

// Perimeter measures the cubic approximation of the outline.
func (e Ellipse) Perimeter(accuracy float64) float64 { return e.Arclen(accuracy) }

// Winding maps pt back onto the unit circle.
func (e Ellipse) Winding(pt Point) int {
	if pt.Transform(e.inner.Invert()).Vec2().Hypot2() < 1 {
		return 1
	}
	return 0
}

func (e Ellipse) Contains(pt Point) bool { return e.Winding(pt) != 0 }

// BoundingBox returns the tight bounding box, after
// https://iquilezles.org/articles/ellipses/. The columns of the linear part
// are the images of the unit axes.
func (e Ellipse) BoundingBox() Rect {
	c := e.inner.Coefficients()
	w := math.Hypot(c[0], c[2])
	h := math.Hypot(c[1], c[3])
	return Rect{c[4] - w, c[5] - h, c[4] + w, c[5] + h}
}

func (e Ellipse) Translate(v Vec2) Ellipse { return Ellipse{inner: Translate(v).Mul(e.inner)} }

func (e Ellipse) Transform(aff Affine) Ellipse { return Ellipse{inner: aff.Mul(e.inner)} }

func (e Ellipse) IsInf() bool    { return e.inner.IsInf() }
func (e Ellipse) IsNaN() bool    { return e.inner.IsNaN() }
func (e Ellipse) IsFinite() bool { return e.inner.IsFinite() }
