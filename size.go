package bezkit

import (
	"fmt"
	"math"
)

// Size is a width and a height. Neither is required to be non-negative.
type Size struct {
	Width, Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size { return Size{Width: w, Height: h} }

func (s Size) String() string { return fmt.Sprintf("%g×%g", s.Width, s.Height) }

// Splat returns the width and height.
func (s Size) Splat() (w, h float64) { return s.Width, s.Height }

// Vec2 returns s as a vector, the width becoming x.
func (s Size) Vec2() Vec2 { return Vec2{s.Width, s.Height} }

func (s Size) MaxSide() float64 { return max(s.Width, s.Height) }
func (s Size) MinSide() float64 { return min(s.Width, s.Height) }
func (s Size) Area() float64    { return s.Width * s.Height }

// AspectRatio returns height divided by width.
func (s Size) AspectRatio() float64 { return s.Height / s.Width }

// Clamp limits both dimensions to the range spanned by lo and hi.
func (s Size) Clamp(lo, hi Size) Size {
	return Size{
		Width:  min(max(s.Width, lo.Width), hi.Width),
		Height: min(max(s.Height, lo.Height), hi.Height),
	}
}

// Scale multiplies both dimensions by f.
func (s Size) Scale(f float64) Size { return Size{s.Width * f, s.Height * f} }

// Add grows the size by v.
func (s Size) Add(v Vec2) Size { return Size{s.Width + v.X, s.Height + v.Y} }

func (s Size) mapDims(fn func(float64) float64) Size { return Size{fn(s.Width), fn(s.Height)} }

func (s Size) Round() Size  { return s.mapDims(math.Round) }
func (s Size) Ceil() Size   { return s.mapDims(math.Ceil) }
func (s Size) Floor() Size  { return s.mapDims(math.Floor) }
func (s Size) Expand() Size { return s.mapDims(expand) }
func (s Size) Trunc() Size  { return s.mapDims(math.Trunc) }

func (s Size) IsInf() bool    { return math.IsInf(s.Width, 0) || math.IsInf(s.Height, 0) }
func (s Size) IsNaN() bool    { return math.IsNaN(s.Width) || math.IsNaN(s.Height) }
func (s Size) IsFinite() bool { return isFinite(s.Width) && isFinite(s.Height) }
