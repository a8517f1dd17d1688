// Package bezkit is a 2D geometry kernel for vector graphics built around
// Bézier curves.
//
// # Shapes, curves and paths
//
// [Shape] is implemented by everything that has a perimeter and a bounding
// box and can be expressed as path elements. [ClosedShape] adds area and
// [winding number]; it is implemented by [Rect], [Circle], [CircleSegment],
// [Ellipse], [Arc] (closed by its chord) and [BezPath].
//
// [ParametricCurve] is implemented by [Line], [QuadBez], [CubicBez],
// [ConstPoint], [Arc], [Ellipse] and [PathSegment]. Optional interfaces
// report arc length ([Arclener]), its inverse ([ArclenSolver]), signed
// area ([SignedAreaer]), extrema ([Extremer]) and curvature ([Curvaturer]).
//
// # Elements and segments
//
// A [PathElement] is a drawing instruction: MoveTo, LineTo, QuadTo, CubicTo
// or ClosePath, each continuing from the current point. A [PathSegment] is a
// self-contained line, quadratic or cubic. [Elements] and [Segments] convert
// between sequences of the two. [BezPath] stores elements in a slice; [Path]
// guards one with a lock for use by several goroutines.
//
// # Numerics
//
// The polynomial solvers ([SolveQuadratic], [SolveCubic], [SolveQuartic])
// and the ITP root finder ([SolveITP]) are exported. Functions taking an
// accuracy or tolerance argument treat it as an absolute distance; there is
// no global configuration. Numerical failure is reported as NaN, a false
// boolean or a zero count, never as an error.
//
// # Interoperability
//
// [ParseSVG] and [SVG] read and write SVG path data. [BezPath.Glyph] and
// [PathFromGlyph] exchange fixed-point outlines with
// golang.org/x/image/font/sfnt, [BezPath.Emit] replays a path into a
// golang.org/x/image/vector.Rasterizer, and [BezPath.Rings] converts to
// github.com/paulmach/orb rings.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [Algorithm 1010: Boosting Efficiency in Solving Quartic Equations with No Compromise in Accuracy] by Orellana and De Michele
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//   - [Approximate a circle with cubic Bézier curves] by Spencer Mortensen
//   - [Flattening quadratic Béziers] by Raph Levien
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//   - [Computing the minimum distance between two Bézier curves] by Chen et al.
//   - [fontTools cu2qu]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Algorithm 1010: Boosting Efficiency in Solving Quartic Equations with No Compromise in Accuracy]: https://cristiano-de-michele.netlify.app/publication/orellana-2020/orellana-2020.pdf
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
// [Approximate a circle with cubic Bézier curves]: https://spencermortensen.com/articles/bezier-circle/
// [Flattening quadratic Béziers]: https://raphlinus.github.io/graphics/curves/2019/12/23/flatten-quadbez.html
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
// [Computing the minimum distance between two Bézier curves]: https://www.sciencedirect.com/science/article/pii/S0377042708005244
// [fontTools cu2qu]: https://github.com/fonttools/fonttools/tree/main/Lib/fontTools/cu2qu
// [winding number]: https://en.wikipedia.org/wiki/Winding_number
package bezkit
