package bezkit

import "fmt"

// PathElementKind tags the variant held by a [PathElement].
type PathElementKind int

const (
	// MoveToKind starts a new subpath at P0.
	MoveToKind PathElementKind = iota + 1
	// LineToKind draws a line to P0.
	LineToKind
	// QuadToKind draws a quadratic with control P0 ending at P1.
	QuadToKind
	// CubicToKind draws a cubic with controls P0 and P1 ending at P2.
	CubicToKind
	// ClosePathKind draws a line back to the start of the subpath.
	ClosePathKind
)

func (k PathElementKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case QuadToKind:
		return "QuadTo"
	case CubicToKind:
		return "CubicTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		return fmt.Sprintf("PathElementKind(%d)", int(k))
	}
}

// PathElement is one drawing instruction of a [BezPath]. Its points are
// relative to the path's current point, which is the end of the previous
// element. Unused points are zero.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func MoveTo(p Point) PathElement           { return PathElement{Kind: MoveToKind, P0: p} }
func LineTo(p Point) PathElement           { return PathElement{Kind: LineToKind, P0: p} }
func QuadTo(p1, p2 Point) PathElement      { return PathElement{Kind: QuadToKind, P0: p1, P1: p2} }
func CubicTo(p1, p2, p3 Point) PathElement { return PathElement{Kind: CubicToKind, P0: p1, P1: p2, P2: p3} }
func ClosePath() PathElement               { return PathElement{Kind: ClosePathKind} }

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return fmt.Sprintf("%s(%s)", el.Kind, el.P0)
	case QuadToKind:
		return fmt.Sprintf("%s(%s, %s)", el.Kind, el.P0, el.P1)
	case CubicToKind:
		return fmt.Sprintf("%s(%s, %s, %s)", el.Kind, el.P0, el.P1, el.P2)
	default:
		return el.Kind.String()
	}
}

// points returns the element's meaningful points.
func (el PathElement) points() []Point {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return []Point{el.P0}
	case QuadToKind:
		return []Point{el.P0, el.P1}
	case CubicToKind:
		return []Point{el.P0, el.P1, el.P2}
	default:
		return nil
	}
}

// EndPoint returns where the element leaves the current point. ClosePath
// has no end point of its own.
func (el PathElement) EndPoint() (Point, bool) {
	pts := el.points()
	if len(pts) == 0 {
		return Point{}, false
	}
	return pts[len(pts)-1], true
}

// Transform applies aff to every point of the element.
func (el PathElement) Transform(aff Affine) PathElement {
	out := PathElement{Kind: el.Kind}
	dst := []*Point{&out.P0, &out.P1, &out.P2}
	for i, p := range el.points() {
		*dst[i] = p.Transform(aff)
	}
	return out
}

func (el PathElement) IsInf() bool {
	for _, p := range el.points() {
		if p.IsInf() {
			return true
		}
	}
	return false
}

func (el PathElement) IsNaN() bool {
	for _, p := range el.points() {
		if p.IsNaN() {
			return true
		}
	}
	return false
}

func (el PathElement) IsFinite() bool {
	for _, p := range el.points() {
		if !p.IsFinite() {
			return false
		}
	}
	return true
}
