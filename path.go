package bezkit

import (
	"slices"
	"sync"
)

// Path is a BezPath that may be shared between goroutines. Mutations take
// an exclusive lock; queries take a shared one. Cursors and Flatten work on
// a snapshot, so no lock is held while the caller iterates.
//
// The zero value is an empty path ready for use. A Path must not be copied
// after first use.
type Path struct {
	mu  sync.RWMutex
	els BezPath
}

// NewPath returns a Path holding a copy of els.
func NewPath(els BezPath) *Path { return &Path{els: slices.Clone(els)} }

func (p *Path) write(fn func(*BezPath)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fn(&p.els)
}

func (p *Path) Push(el PathElement)      { p.write(func(b *BezPath) { b.Push(el) }) }
func (p *Path) MoveTo(pt Point)          { p.write(func(b *BezPath) { b.MoveTo(pt) }) }
func (p *Path) LineTo(pt Point)          { p.write(func(b *BezPath) { b.LineTo(pt) }) }
func (p *Path) QuadTo(p1, p2 Point)      { p.write(func(b *BezPath) { b.QuadTo(p1, p2) }) }
func (p *Path) CubicTo(p1, p2, p3 Point) { p.write(func(b *BezPath) { b.CubicTo(p1, p2, p3) }) }
func (p *Path) ClosePath()               { p.write(func(b *BezPath) { b.ClosePath() }) }
func (p *Path) Truncate(n int)           { p.write(func(b *BezPath) { b.Truncate(n) }) }

func (p *Path) Pop() (el PathElement, ok bool) {
	p.write(func(b *BezPath) { el, ok = b.Pop() })
	return el, ok
}

// ApplyTransform transforms every point in place.
func (p *Path) ApplyTransform(aff Affine) {
	p.write(func(b *BezPath) { b.ApplyTransform(aff) })
}

// Snapshot returns a copy of the current elements.
func (p *Path) Snapshot() BezPath { return read(p, slices.Clone[BezPath]) }

func (p *Path) Len() int { return read(p, func(b BezPath) int { return len(b) }) }

func read[T any](p *Path, fn func(BezPath) T) T {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return fn(p.els)
}

func (p *Path) BoundingBox() Rect { return read(p, BezPath.BoundingBox) }
func (p *Path) Area() float64     { return read(p, BezPath.Area) }

func (p *Path) Perimeter(accuracy float64) float64 {
	return read(p, func(b BezPath) float64 { return b.Perimeter(accuracy) })
}

func (p *Path) Winding(pt Point) int {
	return read(p, func(b BezPath) int { return b.Winding(pt) })
}

func (p *Path) Contains(pt Point) bool { return p.Winding(pt) != 0 }

// Flatten calls fn with every element of the flattened path, as it was when
// Flatten was called. No lock is held while fn runs, so fn may use p,
// including modifying it.
func (p *Path) Flatten(tolerance float64, fn func(PathElement)) {
	for el := range p.Snapshot().Flatten(tolerance) {
		fn(el)
	}
}

// Elements returns a cursor over a snapshot of the elements.
func (p *Path) Elements() *ElementCursor { return &ElementCursor{els: p.Snapshot()} }

// Segments returns a cursor over the segments of a snapshot of the path.
func (p *Path) Segments() *SegmentCursor {
	return &SegmentCursor{segs: slices.Collect(p.Snapshot().Segments())}
}

// ElementCursor walks a fixed sequence of path elements. Later changes to
// the Path it came from are not observed.
type ElementCursor struct {
	els BezPath
	pos int
}

func (c *ElementCursor) Len() int             { return len(c.els) }
func (c *ElementCursor) At(i int) PathElement { return c.els[i] }
func (c *ElementCursor) HasNext() bool        { return c.pos < len(c.els) }
func (c *ElementCursor) Reset()               { c.pos = 0 }

// Next returns the next element, or false once the cursor is exhausted.
func (c *ElementCursor) Next() (PathElement, bool) {
	if !c.HasNext() {
		return PathElement{}, false
	}
	c.pos++
	return c.els[c.pos-1], true
}

// SegmentCursor walks a fixed sequence of path segments.
type SegmentCursor struct {
	segs []PathSegment
	pos  int
}

func (c *SegmentCursor) Len() int             { return len(c.segs) }
func (c *SegmentCursor) At(i int) PathSegment { return c.segs[i] }
func (c *SegmentCursor) HasNext() bool        { return c.pos < len(c.segs) }
func (c *SegmentCursor) Reset()               { c.pos = 0 }

func (c *SegmentCursor) Next() (PathSegment, bool) {
	if !c.HasNext() {
		return PathSegment{}, false
	}
	c.pos++
	return c.segs[c.pos-1], true
}
