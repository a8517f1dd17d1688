// Command bezkit inspects and rewrites SVG path data.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/tdewolff/argp"

	"honnef.co/go/bezkit"
	"honnef.co/go/bezkit/internal/config"
	"honnef.co/go/bezkit/internal/log"
)

type Info struct {
	Config string `short:"c" desc:"YAML configuration file"`
	Input  string `index:"0" desc:"File with SVG path data, - for standard input"`
}

type Flatten struct {
	Config    string  `short:"c" desc:"YAML configuration file"`
	Tolerance float64 `short:"t" desc:"Flattening tolerance, overrides the configuration"`
	Input     string  `index:"0" desc:"File with SVG path data, - for standard input"`
}

type Quads struct {
	Config   string  `short:"c" desc:"YAML configuration file"`
	Accuracy float64 `short:"a" desc:"Approximation accuracy, overrides the configuration"`
	Input    string  `index:"0" desc:"File with SVG path data, - for standard input"`
}

type Transform struct {
	Config  string  `short:"c" desc:"YAML configuration file"`
	Scale   float64 `short:"s" default:"1" desc:"Uniform scale factor"`
	Rotate  float64 `short:"r" desc:"Rotation in degrees"`
	X       float64 `desc:"Translation along x, applied last"`
	Y       float64 `desc:"Translation along y, applied last"`
	Reverse bool    `desc:"Reverse the direction of every subpath"`
	Input   string  `index:"0" desc:"File with SVG path data, - for standard input"`
}

type Split struct {
	Config string  `short:"c" desc:"YAML configuration file"`
	Length float64 `short:"l" desc:"Length of each piece"`
	Count  int     `short:"n" desc:"Number of equal pieces per subpath, instead of a length"`
	Input  string  `index:"0" desc:"File with SVG path data, - for standard input"`
}

func main() {
	root := argp.NewCmd(&Info{}, "Inspect and rewrite SVG path data")
	root.AddCmd(&Flatten{}, "flatten", "Approximate curves with lines")
	root.AddCmd(&Quads{}, "quads", "Convert cubic curves to quadratic splines")
	root.AddCmd(&Transform{}, "transform", "Scale, rotate, translate or reverse paths")
	root.AddCmd(&Split{}, "split", "Cut paths into pieces of equal arc length")
	root.Parse()
	root.PrintHelp()
}

// env carries what every command needs besides its own options.
type env struct {
	cfg config.Config
	log *slog.Logger
	in  io.Reader
	out io.Writer
}

func (e *env) svg() bezkit.SVGOptions { return bezkit.SVGOptions{MaxPrecision: e.cfg.Precision} }

// run loads the configuration, sets up logging and calls fn.
func run(configPath string, fn func(*env) error) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	l, closer := log.New(os.Stderr, cfg.Logging)
	defer closer.Close()
	bezkit.SetLogger(l)
	defer bezkit.SetLogger(nil)
	return fn(&env{cfg: cfg, log: l, in: os.Stdin, out: os.Stdout})
}

// readPath parses the path data in the named file, or standard input for
// "" and "-".
func (e *env) readPath(name string) (bezkit.BezPath, error) {
	var data []byte
	var err error
	if name == "" || name == "-" {
		data, err = io.ReadAll(e.in)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, err
	}
	p, err := bezkit.ParseSVG(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", displayName(name), err)
	}
	e.log.Debug("parsed path", "input", displayName(name), "elements", len(p))
	return p, nil
}

func displayName(name string) string {
	if name == "" || name == "-" {
		return "<stdin>"
	}
	return name
}

func (cmd *Info) Run() error { return run(cmd.Config, cmd.run) }

func (cmd *Info) run(e *env) error {
	p, err := e.readPath(cmd.Input)
	if err != nil {
		return err
	}
	var segs, subpaths, closed int
	for _, el := range p {
		switch el.Kind {
		case bezkit.MoveToKind:
			subpaths++
		case bezkit.ClosePathKind:
			closed++
		}
	}
	for range p.Segments() {
		segs++
	}
	box := p.BoundingBox()
	fmt.Fprintf(e.out, "elements:  %d\n", len(p))
	fmt.Fprintf(e.out, "segments:  %d\n", segs)
	fmt.Fprintf(e.out, "subpaths:  %d (%d closed)\n", subpaths, closed)
	fmt.Fprintf(e.out, "bounds:    %g,%g %g,%g\n", box.X0, box.Y0, box.X1, box.Y1)
	fmt.Fprintf(e.out, "area:      %g\n", p.Area())
	fmt.Fprintf(e.out, "perimeter: %g\n", p.Perimeter(e.cfg.Accuracy))
	return nil
}

func (cmd *Flatten) Run() error { return run(cmd.Config, cmd.run) }

func (cmd *Flatten) run(e *env) error {
	p, err := e.readPath(cmd.Input)
	if err != nil {
		return err
	}
	tol := e.cfg.Tolerance
	if cmd.Tolerance > 0 {
		tol = cmd.Tolerance
	}
	flat := p.Flatten(tol)
	e.log.Info("flattening", "tolerance", tol)
	if err := bezkit.WriteSVG(e.out, flat, e.svg()); err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.out)
	return err
}

func (cmd *Quads) Run() error { return run(cmd.Config, cmd.run) }

// run replaces every cubic with a quadratic spline. Cubics that cannot be
// approximated are kept and reported.
func (cmd *Quads) run(e *env) error {
	p, err := e.readPath(cmd.Input)
	if err != nil {
		return err
	}
	acc := e.cfg.Accuracy
	if cmd.Accuracy > 0 {
		acc = cmd.Accuracy
	}
	out := make(bezkit.BezPath, 0, len(p))
	var last bezkit.Point
	var converted, kept int
	for i, el := range p {
		if el.Kind == bezkit.CubicToKind {
			c := bezkit.CubicBez{P0: last, P1: el.P0, P2: el.P1, P3: el.P2}
			if spline, ok := c.ApproxQuadSpline(acc); ok {
				for q := range spline.Quads() {
					out.QuadTo(q.P1, q.P2)
				}
				converted++
			} else {
				e.log.Warn("cubic kept", "element", i, "accuracy", acc)
				out.Push(el)
				kept++
			}
		} else {
			out.Push(el)
		}
		if pt, ok := el.EndPoint(); ok {
			last = pt
		} else if el.Kind == bezkit.ClosePathKind {
			last = subpathStart(p[:i])
		}
	}
	e.log.Info("converted cubics", "converted", converted, "kept", kept)
	_, err = fmt.Fprintln(e.out, out.SVG(e.svg()))
	return err
}

// subpathStart returns the point of the last MoveTo in els.
func subpathStart(els bezkit.BezPath) bezkit.Point {
	for i := len(els) - 1; i >= 0; i-- {
		if els[i].Kind == bezkit.MoveToKind {
			return els[i].P0
		}
	}
	return bezkit.Point{}
}

func (cmd *Transform) Run() error { return run(cmd.Config, cmd.run) }

func (cmd *Transform) run(e *env) error {
	p, err := e.readPath(cmd.Input)
	if err != nil {
		return err
	}
	if cmd.Scale == 0 {
		return fmt.Errorf("scale must not be zero")
	}
	aff := bezkit.Translate(bezkit.Vec(cmd.X, cmd.Y)).
		Mul(bezkit.Rotate(cmd.Rotate * math.Pi / 180)).
		Mul(bezkit.Scale(cmd.Scale, cmd.Scale))
	p = p.Transform(aff)
	if cmd.Reverse {
		p = p.ReverseSubpaths()
	}
	_, err = fmt.Fprintln(e.out, p.SVG(e.svg()))
	return err
}

func (cmd *Split) Run() error { return run(cmd.Config, cmd.run) }

// run writes one line of path data per piece.
func (cmd *Split) run(e *env) error {
	if cmd.Count <= 0 && !(cmd.Length > 0) {
		return argp.ShowUsage
	}
	p, err := e.readPath(cmd.Input)
	if err != nil {
		return err
	}
	pieces := bezkit.SplitArclen(p.Segments(), cmd.Length)
	if cmd.Count > 0 {
		pieces = bezkit.SplitN(p.Segments(), cmd.Count)
	}
	n := 0
	for piece := range pieces {
		var b bezkit.BezPath
		for i, seg := range piece {
			if i == 0 {
				b.MoveTo(seg.Start())
			}
			b.Push(seg.PathElement())
		}
		if _, err := fmt.Fprintln(e.out, b.SVG(e.svg())); err != nil {
			return err
		}
		n++
	}
	e.log.Info("split path", "pieces", n)
	return nil
}
