package bezkit

import "fmt"

// Insets are per-edge distances by which a rectangle grows. X0 and Y0 move
// the left and top edges, X1 and Y1 the right and bottom edges, with positive
// values growing the rectangle and negative values shrinking it.
type Insets struct {
	X0, Y0 float64
	X1, Y1 float64
}

// UniformInsets returns insets of d on every edge.
func UniformInsets(d float64) Insets { return Insets{d, d, d, d} }

// UniformXYInsets returns insets of x on the left and right edges and y on the
// top and bottom edges.
func UniformXYInsets(x, y float64) Insets { return Insets{x, y, x, y} }

func (in Insets) String() string {
	return fmt.Sprintf("Insets{%g, %g, %g, %g}", in.X0, in.Y0, in.X1, in.Y1)
}

// XValue returns the total horizontal growth, X0 + X1.
func (in Insets) XValue() float64 { return in.X0 + in.X1 }

// YValue returns the total vertical growth, Y0 + Y1.
func (in Insets) YValue() float64 { return in.Y0 + in.Y1 }

// Size returns the total growth as a size.
func (in Insets) Size() Size { return Size{in.XValue(), in.YValue()} }

// AreNonnegative reports whether every edge inset is at least zero.
func (in Insets) AreNonnegative() bool {
	return in.X0 >= 0 && in.Y0 >= 0 && in.X1 >= 0 && in.Y1 >= 0
}

// Nonnegative clamps every edge inset to at least zero.
func (in Insets) Nonnegative() Insets {
	return Insets{max(in.X0, 0), max(in.Y0, 0), max(in.X1, 0), max(in.Y1, 0)}
}

// Negate flips the sign of every edge inset, turning growth into shrinkage.
func (in Insets) Negate() Insets { return Insets{-in.X0, -in.Y0, -in.X1, -in.Y1} }

func (in Insets) IsFinite() bool {
	return isFinite(in.X0) && isFinite(in.Y0) && isFinite(in.X1) && isFinite(in.Y1)
}

// AddInsets grows the normalized form of r by in.
func (r Rect) AddInsets(in Insets) Rect {
	a := r.Abs()
	return Rect{a.X0 - in.X0, a.Y0 - in.Y0, a.X1 + in.X1, a.Y1 + in.Y1}
}

// SubInsets shrinks the normalized form of r by in.
func (r Rect) SubInsets(in Insets) Rect { return r.AddInsets(in.Negate()) }

// InsetsFrom returns the insets that grow inner into r, so that
// inner.AddInsets(r.InsetsFrom(inner)) == r for normalized rectangles.
func (r Rect) InsetsFrom(inner Rect) Insets {
	return Insets{
		X0: inner.X0 - r.X0,
		Y0: inner.Y0 - r.Y0,
		X1: r.X1 - inner.X1,
		Y1: r.Y1 - inner.Y1,
	}
}
