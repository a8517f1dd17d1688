package bezkit

import (
	"iter"
	"math"
	"slices"
)

// Rect is an axis-aligned rectangle given by two corners. The corners are not
// required to be ordered, so width and height may be negative; [Rect.Abs]
// normalizes them.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

var _ ClosedShape = Rect{}

// NewRectFromPoints returns the rectangle spanned by p0 and p1, with
// non-negative width and height.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromOrigin returns the rectangle of the given size whose first corner
// is origin, normalized to non-negative width and height.
func NewRectFromOrigin(origin Point, size Size) Rect {
	return NewRectFromPoints(origin, origin.Translate(size.Vec2()))
}

// NewRectFromCenter returns the rectangle of the given size centered on
// center.
func NewRectFromCenter(center Point, size Size) Rect {
	hw, hh := 0.5*size.Width, 0.5*size.Height
	return Rect{center.X - hw, center.Y - hh, center.X + hw, center.Y + hh}
}

// WithOrigin moves r so that its first corner is origin, keeping its size.
func (r Rect) WithOrigin(origin Point) Rect { return NewRectFromOrigin(origin, r.Size()) }

// WithSize keeps the origin of r and replaces its size.
func (r Rect) WithSize(size Size) Rect { return NewRectFromOrigin(r.Origin(), size) }

// Abs returns the rectangle with the same extents as r and ordered corners.
func (r Rect) Abs() Rect {
	return Rect{r.MinX(), r.MinY(), r.MaxX(), r.MaxY()}
}

func (r Rect) MinX() float64 { return min(r.X0, r.X1) }
func (r Rect) MaxX() float64 { return max(r.X0, r.X1) }
func (r Rect) MinY() float64 { return min(r.Y0, r.Y1) }
func (r Rect) MaxY() float64 { return max(r.Y0, r.Y1) }

// Origin returns the first corner, (X0, Y0).
func (r Rect) Origin() Point { return Point{r.X0, r.Y0} }

// Width returns X1 - X0, which may be negative.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns Y1 - Y0, which may be negative.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

func (r Rect) Size() Size { return Size{r.Width(), r.Height()} }

func (r Rect) Center() Point { return Point{0.5 * (r.X0 + r.X1), 0.5 * (r.Y0 + r.Y1)} }

// IsEmpty reports whether r has zero area.
func (r Rect) IsEmpty() bool { return r.Area() == 0 }

// Contains reports whether pt lies within r. The left and top edges are
// inclusive, the right and bottom edges exclusive. r must be normalized.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 && pt.X < r.X1 && pt.Y >= r.Y0 && pt.Y < r.Y1
}

// Union returns the smallest rectangle enclosing r and o, both of which must
// be normalized.
func (r Rect) Union(o Rect) Rect {
	return Rect{min(r.X0, o.X0), min(r.Y0, o.Y0), max(r.X1, o.X1), max(r.Y1, o.Y1)}
}

// UnionPoint grows r to include pt. Zero-area rectangles count their
// boundary, so folding UnionPoint over a point set yields its bounding box.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{min(r.X0, pt.X), min(r.Y0, pt.Y), max(r.X1, pt.X), max(r.Y1, pt.Y)}
}

// Intersect returns the overlap of r and o. The result is normalized, and
// empty if the rectangles are disjoint or either is not normalized.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := max(r.X0, o.X0), max(r.Y0, o.Y0)
	x1, y1 := min(r.X1, o.X1), min(r.Y1, o.Y1)
	return Rect{x0, y0, max(x0, x1), max(y0, y1)}
}

// Inflate moves every edge outwards, by width horizontally and height
// vertically.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{r.X0 - width, r.Y0 - height, r.X1 + width, r.Y1 + height}
}

// Translate moves r by v.
func (r Rect) Translate(v Vec2) Rect {
	return Rect{r.X0 + v.X, r.Y0 + v.Y, r.X1 + v.X, r.Y1 + v.Y}
}

// ScaleFromOrigin scales every coordinate by f.
func (r Rect) ScaleFromOrigin(f float64) Rect {
	return Rect{r.X0 * f, r.Y0 * f, r.X1 * f, r.Y1 * f}
}

func (r Rect) mapCoords(fn func(float64) float64) Rect {
	return Rect{fn(r.X0), fn(r.Y0), fn(r.X1), fn(r.Y1)}
}

func (r Rect) Round() Rect { return r.mapCoords(math.Round) }
func (r Rect) Ceil() Rect  { return r.mapCoords(math.Ceil) }
func (r Rect) Floor() Rect { return r.mapCoords(math.Floor) }

// Expand returns the smallest rectangle with integer coordinates that
// contains r, rounding every edge away from the center.
func (r Rect) Expand() Rect {
	x0, x1 := outward(r.X0, r.X1)
	y0, y1 := outward(r.Y0, r.Y1)
	return Rect{x0, y0, x1, y1}
}

// Trunc returns the largest rectangle with integer coordinates contained in
// r, rounding every edge towards the center.
func (r Rect) Trunc() Rect {
	x0, x1 := inward(r.X0, r.X1)
	y0, y1 := inward(r.Y0, r.Y1)
	return Rect{x0, y0, x1, y1}
}

// outward rounds the pair (lo, hi) away from its midpoint.
func outward(lo, hi float64) (float64, float64) {
	if lo < hi {
		return math.Floor(lo), math.Ceil(hi)
	}
	return math.Ceil(lo), math.Floor(hi)
}

// inward rounds the pair (lo, hi) towards its midpoint.
func inward(lo, hi float64) (float64, float64) {
	if lo < hi {
		return math.Ceil(lo), math.Floor(hi)
	}
	return math.Floor(lo), math.Ceil(hi)
}

// AspectRatio returns height divided by width.
func (r Rect) AspectRatio() float64 { return r.Size().AspectRatio() }

func (r Rect) IsInf() bool {
	return math.IsInf(r.X0, 0) || math.IsInf(r.Y0, 0) || math.IsInf(r.X1, 0) || math.IsInf(r.Y1, 0)
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) || math.IsNaN(r.Y0) || math.IsNaN(r.X1) || math.IsNaN(r.Y1)
}

func (r Rect) IsFinite() bool { return !r.IsInf() && !r.IsNaN() }

// Area returns the signed area. It is positive when both width and height
// are positive or both are negative.
func (r Rect) Area() float64 { return r.Width() * r.Height() }

func (r Rect) BoundingBox() Rect { return r.Abs() }

func (r Rect) Perimeter(accuracy float64) float64 {
	return 2 * (math.Abs(r.Width()) + math.Abs(r.Height()))
}

// Winding returns ±1 for points inside r, with the sign of [Rect.Area], and 0
// otherwise. Edges are half-open so that in a tiling of the plane each point
// belongs to exactly one rectangle.
func (r Rect) Winding(pt Point) int {
	if !r.Abs().Contains(pt) {
		return 0
	}
	if (r.X1 > r.X0) != (r.Y1 > r.Y0) {
		return -1
	}
	return 1
}

func (r Rect) Path(tolerance float64) BezPath { return slices.Collect(r.PathElements(tolerance)) }

// PathElements traces the corners in the order (X0,Y0), (X1,Y0), (X1,Y1),
// (X0,Y1).
func (r Rect) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(Pt(r.X0, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y0))) &&
			yield(LineTo(Pt(r.X1, r.Y1))) &&
			yield(LineTo(Pt(r.X0, r.Y1))) &&
			yield(ClosePath())
	}
}
