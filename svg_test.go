package bezkit

import (
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestSVGWrite(t *testing.T) {
	var tts = []struct {
		name string
		path BezPath
		opts SVGOptions
		svg  string
	}{
		{"empty", nil, SVGOptions{}, ""},
		{
			"all kinds",
			BezPath{MoveTo(Pt(0, 0)), LineTo(Pt(10, 0)), QuadTo(Pt(15, 10), Pt(20, 0)), CubicTo(Pt(20, 10), Pt(30, 10), Pt(30, 0)), ClosePath()},
			SVGOptions{},
			"M0,0 L10,0 Q15,10 20,0 C20,10 30,10 30,0 Z",
		},
		{"shortest", BezPath{MoveTo(Pt(0.1, -2.5)), LineTo(Pt(1.0/3.0, 1e-7))}, SVGOptions{}, "M0.1,-2.5 L0.3333333333333333,0.0000001"},
		{"rounded", BezPath{MoveTo(Pt(0.123456, -0.004)), LineTo(Pt(2.5, 100))}, SVGOptions{MaxPrecision: 2}, "M0.12,0 L2.5,100"},
		{"carry", BezPath{MoveTo(Pt(9.9999, -9.9999))}, SVGOptions{MaxPrecision: 3}, "M10,-10"},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			test.T(t, tt.path.SVG(tt.opts), tt.svg)

			var sb strings.Builder
			test.Error(t, tt.path.WriteSVG(&sb, tt.opts))
			test.T(t, sb.String(), tt.svg)
		})
	}
}

func TestSVGWriteError(t *testing.T) {
	p := Rect{0, 0, 1, 1}.Path(0.1)
	err := p.WriteSVG(test.NewErrorWriter(2), SVGOptions{})
	test.That(t, errors.Is(err, test.ErrPlain), err)

	err = WriteSVG(io.Discard, p.Elements(), SVGOptions{})
	test.Error(t, err)
}

func TestParseSVG(t *testing.T) {
	var tts = []struct {
		orig string
		res  string
	}{
		{"", ""},
		{"M10 0L20 0H30V10C40 10 50 10 50 0Q55 10 60 0Z", "M10,0 L20,0 L30,0 L30,10 C40,10 50,10 50,0 Q55,10 60,0 Z"},
		{"m10 0l10 0h10v10c10 0 20 0 20 -10q5 10 10 0z", "M10,0 L20,0 L30,0 L30,10 C40,10 50,10 50,0 Q55,10 60,0 Z"},
		{"M0 0C0 10 10 10 10 0S20 -10 20 0", "M0,0 C0,10 10,10 10,0 C10,-10 20,-10 20,0"},
		{"M0 0c0 10 10 10 10 0s10 -10 10 0", "M0,0 C0,10 10,10 10,0 C10,-10 20,-10 20,0"},
		{"M0 0Q5 10 10 0T20 0", "M0,0 Q5,10 10,0 Q15,-10 20,0"},
		{"M0 0q5 10 10 0t10 0", "M0,0 Q5,10 10,0 Q15,-10 20,0"},
		{"M0 0S10 10 20 0", "M0,0 C0,0 10,10 20,0"},
		{"M0 0T20 0", "M0,0 Q0,0 20,0"},
		{"M0 0 1 1 2 2", "M0,0 L1,1 L2,2"},
		{"m1 1 1 1", "M1,1 L2,2"},
		{"M1e1-2.5L.5.5", "M10,-2.5 L0.5,0.5"},
		{"M1,1 L2,2 Z L3,3", "M1,1 L2,2 Z L3,3"},
		{"M1 1 Z m1 1 h1", "M1,1 Z M2,2 L3,2"},
		{"M0 0A0 1 0 0 1 2 0", "M0,0 L2,0"},
		{"M0 0A1 1 0 0 1 0 0", "M0,0"},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			p, err := ParseSVG(tt.orig)
			test.Error(t, err)
			test.T(t, p.SVG(SVGOptions{}), tt.res)
		})
	}
}

func TestParseSVGArc(t *testing.T) {
	for _, d := range []string{"M0 0A1 1 0 0 1 2 0", "M0 0a1 1 0 012 0"} {
		t.Run(d, func(t *testing.T) {
			p, err := ParseSVG(d)
			test.Error(t, err)
			test.T(t, len(p), 3)
			end, _ := p[len(p)-1].EndPoint()
			assertNear(t, end, Pt(2, 0), 1e-12)
			// Sweep flag 1 runs through negative y.
			box := p.BoundingBox()
			test.FloatDiff(t, box.Y0, -1, 1e-3)
			test.FloatDiff(t, box.Y1, 0, 1e-9)
		})
	}
}

func TestParseSVGErrors(t *testing.T) {
	var tts = []struct {
		orig string
		err  error
	}{
		{"5", ErrSyntax},
		{"X", ErrSyntax},
		{"MM", ErrSyntax},
		{"M0 0 1", ErrSyntax},
		{"M0 0Z1", ErrSyntax},
		{"M0 0A1 1 0 2 1 1 1", ErrSyntax},
		{"M1 1 L1e400 0", ErrSyntax},
		{"M-1e999 0", ErrSyntax},
		{"L1 1", ErrNoCurrentPoint},
		{"Z", ErrNoCurrentPoint},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			p, err := ParseSVG(tt.orig)
			test.That(t, errors.Is(err, tt.err), "error", err)
			test.That(t, p == nil)
		})
	}
}

func TestSVGRoundTrip(t *testing.T) {
	p := Circle{Pt(1.0/3.0, -7.25), 12.5}.Path(0.1)
	p.LineTo(Pt(math.Pi, math.E))
	got, err := ParseSVG(p.SVG(SVGOptions{}))
	test.Error(t, err)
	diff(t, p, got, approx(1e-12))
}
