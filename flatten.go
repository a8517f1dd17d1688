package bezkit

import (
	"iter"
	"math"
)

// cubicToQuadShare is the part of the tolerance spent on converting cubics
// to quadratics before flattening them.
const cubicToQuadShare = 0.1

// Flatten approximates the elements with lines, yielding only MoveTo,
// LineTo and ClosePath.
//
// tolerance bounds the Hausdorff distance between each curve and its
// polyline; 0.25 works well for antialiased rendering. The number of lines
// grows with the inverse square root of tolerance.
//
// Quadratics are subdivided at parameters spaced evenly in the integral of
// curvature to the power 1/2, using the closed-form approximations from
// https://raphlinus.github.io/graphics/curves/2019/12/23/flatten-quadbez.html.
// Cubics are first converted to quadratics; the subdivision count is then
// spread across all of them so that no quadratic's end point is emitted
// unless the budget falls there.
func Flatten(seq iter.Seq[PathElement], tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		sqrtTol := math.Sqrt(tolerance)
		var last, start Point
		haveLast := false
		var quads []quadFlatten
		for el := range seq {
			switch el.Kind {
			case MoveToKind, LineToKind:
				if !yield(el) {
					return
				}
				if el.Kind == MoveToKind {
					start = el.P0
				}
				last, haveLast = el.P0, true
			case QuadToKind:
				if haveLast && !flattenQuad(QuadBez{last, el.P0, el.P1}, sqrtTol, yield) {
					return
				}
				last, haveLast = el.P1, true
			case CubicToKind:
				if haveLast {
					c := CubicBez{last, el.P0, el.P1, el.P2}
					var ok bool
					quads, ok = flattenCubic(c, tolerance, sqrtTol, quads[:0], yield)
					if !ok {
						return
					}
				}
				last, haveLast = el.P2, true
			case ClosePathKind:
				last = start
				if !yield(el) {
					return
				}
			}
		}
	}
}

type quadFlatten struct {
	q        QuadBez
	params   flattenParams
	straight bool
}

func flattenQuad(q QuadBez, sqrtTol float64, yield func(PathElement) bool) bool {
	if turn, ok := q.straightTurn(); ok {
		// The parabola mapping is undefined. The polyline through the
		// turning point is exact.
		if turn > 0 && !yield(LineTo(q.Eval(turn))) {
			return false
		}
		return yield(LineTo(q.P2))
	}
	params := q.flattenParams(sqrtTol)
	n := max(int(math.Ceil(0.5*params.val/sqrtTol)), 1)
	step := 1 / float64(n)
	for i := 1; i < n; i++ {
		if !yield(LineTo(q.Eval(params.subdivT(float64(i) * step)))) {
			return false
		}
	}
	return yield(LineTo(q.P2))
}

func flattenCubic(c CubicBez, tolerance, sqrtTol float64, buf []quadFlatten, yield func(PathElement) bool) ([]quadFlatten, bool) {
	sqrtRemain := sqrtTol * math.Sqrt(1-cubicToQuadShare)
	var sum float64
	straight := false
	for cq := range c.Quadratics(tolerance * cubicToQuadShare) {
		_, ok := cq.Quad.straightTurn()
		params := cq.Quad.flattenParams(sqrtRemain)
		sum += params.val
		buf = append(buf, quadFlatten{cq.Quad, params, ok})
		straight = straight || ok
	}
	if straight {
		// Spreading the budget needs every quadratic's parabola mapping, so
		// flatten them one by one instead.
		for i, qf := range buf {
			q := qf.q
			if i == len(buf)-1 {
				q.P2 = c.P3
			}
			if !flattenQuad(q, sqrtRemain, yield) {
				return buf, false
			}
		}
		return buf, true
	}
	n := max(int(math.Ceil(0.5*sum/sqrtRemain)), 1)

	// Walk the quadratics, emitting the subdivision points that fall in each.
	step := sum / float64(n)
	i := 1
	var acc float64
	for _, qf := range buf {
		target := float64(i) * step
		recip := 1 / qf.params.val
		for target < acc+qf.params.val {
			u := (target - acc) * recip
			if !yield(LineTo(qf.q.Eval(qf.params.subdivT(u)))) {
				return buf, false
			}
			i++
			if i == n+1 {
				break
			}
			target = float64(i) * step
		}
		acc += qf.params.val
	}
	return buf, yield(LineTo(c.P3))
}

// straightTurn reports whether the quadratic is a straight line, up to
// rounding. If it is, turn is the parameter in (0, 1) at which it reverses
// direction, or -1 if it never does.
func (q QuadBez) straightTurn() (turn float64, ok bool) {
	d01 := q.P1.Sub(q.P0)
	d12 := q.P2.Sub(q.P1)
	if math.Abs(d01.Cross(d12)) > 1e-12*(d01.Hypot2()+d12.Hypot2()) {
		return 0, false
	}
	dd := d01.Sub(d12)
	dd2 := dd.Hypot2()
	if dd2 == 0 {
		return -1, true
	}
	// The derivative d01 - t·dd vanishes here.
	t := d01.Dot(dd) / dd2
	if !(t > 0 && t < 1) {
		return -1, true
	}
	return t, true
}

// flattenParams maps a quadratic onto a segment of the parabola y = x².
type flattenParams struct {
	a0, a2 float64
	u0     float64
	uscale float64
	// val is the number of subdivisions times 2·sqrt(tolerance).
	val float64
}

// subdivT maps x in [0, 1], evenly spaced in subdivision density, to the
// parameter of the quadratic.
func (fp flattenParams) subdivT(x float64) float64 {
	a := fp.a0 + (fp.a2-fp.a0)*x
	return (approxParabolaInvIntegral(a) - fp.u0) * fp.uscale
}

func (q QuadBez) flattenParams(sqrtTol float64) flattenParams {
	d01 := q.P1.Sub(q.P0)
	d12 := q.P2.Sub(q.P1)
	dd := d01.Sub(d12)
	cross := q.P2.Sub(q.P0).Cross(dd)
	x0 := d01.Dot(dd) / cross
	x2 := d12.Dot(dd) / cross
	scale := math.Abs(cross / (dd.Hypot() * (x2 - x0)))

	a0 := approxParabolaIntegral(x0)
	a2 := approxParabolaIntegral(x2)
	var val float64
	if !math.IsInf(scale, 0) {
		da := math.Abs(a2 - a0)
		sqrtScale := math.Sqrt(scale)
		if math.Signbit(x0) == math.Signbit(x2) {
			val = da * sqrtScale
		} else {
			// The segment contains the parabola's vertex; bound the
			// density there by the tolerance.
			xmin := sqrtTol / sqrtScale
			val = sqrtTol * da / approxParabolaIntegral(xmin)
		}
	}
	u0 := approxParabolaInvIntegral(a0)
	u2 := approxParabolaInvIntegral(a2)
	return flattenParams{a0: a0, a2: a2, u0: u0, uscale: 1 / (u2 - u0), val: val}
}

// approxParabolaIntegral approximates ∫ (1 + 4x²)^(-1/4) dx.
func approxParabolaIntegral(x float64) float64 {
	const d = 0.67
	return x / (1 - d + math.Sqrt(math.Sqrt(d*d*d*d+0.25*x*x)))
}

// approxParabolaInvIntegral approximates the inverse of
// approxParabolaIntegral.
func approxParabolaInvIntegral(x float64) float64 {
	const b = 0.39
	return x * (1 - b + math.Sqrt(b*b+0.25*x*x))
}
