package bezkit

import (
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

// SVGOptions controls [SVG] and [WriteSVG].
type SVGOptions struct {
	// MaxPrecision is the number of digits after the decimal point. Zero
	// selects the shortest representation that round-trips exactly.
	MaxPrecision int
}

func (opts SVGOptions) appendNum(b []byte, f float64) []byte {
	if opts.MaxPrecision <= 0 {
		return strconv.AppendFloat(b, f, 'f', -1, 64)
	}
	n := len(b)
	b = strconv.AppendFloat(b, f, 'f', opts.MaxPrecision, 64)
	s := strings.TrimRight(strings.TrimRight(string(b[n:]), "0"), ".")
	if s == "-0" || s == "" {
		s = "0"
	}
	return append(b[:n], s...)
}

func (opts SVGOptions) appendPoint(b []byte, p Point) []byte {
	b = opts.appendNum(b, p.X)
	b = append(b, ',')
	return opts.appendNum(b, p.Y)
}

// SVG renders the elements as SVG path data, using absolute commands only.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	var sb strings.Builder
	// strings.Builder never fails.
	_ = WriteSVG(&sb, seq, opts)
	return sb.String()
}

// WriteSVG writes the elements to w as SVG path data. Each element is
// written with a single call to w.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	var buf []byte
	first := true
	for el := range seq {
		buf = buf[:0]
		if !first {
			buf = append(buf, ' ')
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			buf = opts.appendPoint(append(buf, 'M'), el.P0)
		case LineToKind:
			buf = opts.appendPoint(append(buf, 'L'), el.P0)
		case QuadToKind:
			buf = opts.appendPoint(append(buf, 'Q'), el.P0)
			buf = opts.appendPoint(append(buf, ' '), el.P1)
		case CubicToKind:
			buf = opts.appendPoint(append(buf, 'C'), el.P0)
			buf = opts.appendPoint(append(buf, ' '), el.P1)
			buf = opts.appendPoint(append(buf, ' '), el.P2)
		case ClosePathKind:
			buf = append(buf, 'Z')
		default:
			panic(fmt.Sprintf("bezkit: invalid path element kind %d", el.Kind))
		}
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

func (p BezPath) SVG(opts SVGOptions) string { return SVG(p.Elements(), opts) }

func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// svgArgs is the number of arguments taken by each SVG path command.
var svgArgs = [256]int8{
	'M': 2, 'L': 2, 'H': 1, 'V': 1, 'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'A': 7, 'Z': 0,
	'm': 2, 'l': 2, 'h': 1, 'v': 1, 'c': 6, 's': 4, 'q': 4, 't': 2, 'a': 7, 'z': 0,
}

func isCommand(c byte) bool {
	return svgArgs[c] != 0 || c == 'Z' || c == 'z'
}

// svgScanner walks SVG path data.
type svgScanner struct {
	data []byte
	pos  int
}

func (s *svgScanner) skip() {
	for s.pos < len(s.data) {
		switch s.data[s.pos] {
		case ' ', ',', '\t', '\n', '\r', '\f':
			s.pos++
		default:
			return
		}
	}
}

func (s *svgScanner) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d", ErrSyntax, fmt.Sprintf(format, args...), s.pos)
}

func (s *svgScanner) number() (float64, error) {
	s.skip()
	f, n := pstrconv.ParseFloat(s.data[s.pos:])
	if n == 0 {
		return 0, s.errorf("expected number")
	}
	if !isFinite(f) {
		return 0, s.errorf("number %s out of range", s.data[s.pos:s.pos+n])
	}
	s.pos += n
	return f, nil
}

// flag reads an arc flag. Flags may be written without separators, as in
// "a1 1 0 10 2 2".
func (s *svgScanner) flag() (bool, error) {
	s.skip()
	if s.pos < len(s.data) {
		switch s.data[s.pos] {
		case '0':
			s.pos++
			return false, nil
		case '1':
			s.pos++
			return true, nil
		}
	}
	return false, s.errorf("expected arc flag")
}

// ParseSVG parses SVG path data. Elliptical arcs are converted to cubic
// Béziers with a tolerance of 0.1; arcs that degenerate into lines become
// lines.
//
// Errors wrap [ErrSyntax] or [ErrNoCurrentPoint].
func ParseSVG(data string) (BezPath, error) {
	s := &svgScanner{data: []byte(data)}
	var (
		p        BezPath
		cmd      byte
		cur      Point
		start    Point
		have     bool
		lastCtrl Point
		lastCmd  byte
	)
	for {
		s.skip()
		if s.pos == len(s.data) {
			return p, nil
		}
		if c := s.data[s.pos]; isCommand(c) {
			cmd = c
			s.pos++
		} else if cmd == 0 {
			return nil, s.errorf("expected command, found %q", c)
		} else if cmd == 'Z' || cmd == 'z' {
			return nil, s.errorf("unexpected argument after close")
		}

		var args [7]float64
		var large, sweep bool
		for i := range int(svgArgs[cmd]) {
			var err error
			switch {
			case (cmd == 'A' || cmd == 'a') && i == 3:
				large, err = s.flag()
			case (cmd == 'A' || cmd == 'a') && i == 4:
				sweep, err = s.flag()
			default:
				args[i], err = s.number()
			}
			if err != nil {
				return nil, err
			}
		}

		upper := cmd &^ 0x20
		if upper != 'M' && !have {
			return nil, fmt.Errorf("%w: %c at offset %d", ErrNoCurrentPoint, cmd, s.pos)
		}
		rel := cmd != upper
		abs := func(x, y float64) Point {
			if rel {
				return Point{cur.X + x, cur.Y + y}
			}
			return Point{x, y}
		}
		// reflect mirrors the previous control point if the previous command
		// was of the same family.
		reflect := func(family ...byte) Point {
			for _, f := range family {
				if lastCmd == f {
					return cur.Translate(cur.Sub(lastCtrl))
				}
			}
			return cur
		}

		switch upper {
		case 'M':
			cur = abs(args[0], args[1])
			start, have = cur, true
			p.MoveTo(cur)
			// Further coordinate pairs are implicit line commands.
			cmd = 'L' | cmd&0x20
		case 'L':
			cur = abs(args[0], args[1])
			p.LineTo(cur)
		case 'H':
			if rel {
				cur.X += args[0]
			} else {
				cur.X = args[0]
			}
			p.LineTo(cur)
		case 'V':
			if rel {
				cur.Y += args[0]
			} else {
				cur.Y = args[0]
			}
			p.LineTo(cur)
		case 'C':
			p1, p2, p3 := abs(args[0], args[1]), abs(args[2], args[3]), abs(args[4], args[5])
			p.CubicTo(p1, p2, p3)
			lastCtrl, cur = p2, p3
		case 'S':
			p1 := reflect('C', 'S')
			p2, p3 := abs(args[0], args[1]), abs(args[2], args[3])
			p.CubicTo(p1, p2, p3)
			lastCtrl, cur = p2, p3
		case 'Q':
			p1, p2 := abs(args[0], args[1]), abs(args[2], args[3])
			p.QuadTo(p1, p2)
			lastCtrl, cur = p1, p2
		case 'T':
			p1 := reflect('Q', 'T')
			p2 := abs(args[0], args[1])
			p.QuadTo(p1, p2)
			lastCtrl, cur = p1, p2
		case 'A':
			to := abs(args[5], args[6])
			if arc, ok := ArcFromSVG(cur, to, Vec2{args[0], args[1]}, args[2]*math.Pi/180, large, sweep); ok {
				arc.CubicBeziers(0.1, p.CubicTo)
			} else if to != cur {
				p.LineTo(to)
			}
			cur = to
		case 'Z':
			p.ClosePath()
			cur = start
		}
		lastCmd = upper
	}
}
