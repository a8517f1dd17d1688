package bezkit

import "math"

// ArclenSolver is implemented by curves that can invert arc length more
// directly than [InvArclen] does.
type ArclenSolver interface {
	InvArclen(arclen, accuracy float64) float64
}

// InvArclen returns the parameter at which the curve has travelled arclen
// from its start. Lengths at or below zero map to 0, lengths at or beyond the
// total map to 1. Curves of zero or non-finite length map every length to
// 0 or 1. A non-positive accuracy is raised to 1e-12.
//
// The root is found with [SolveITP]. Every probe measures only the stretch
// between the previous probe and the new one and accumulates it, so the full
// length is computed once and never again.
//
// Curves implementing [ArclenSolver] are dispatched to their own method.
func InvArclen(c interface {
	ParametricCurve
	Arclener
}, arclen, accuracy float64) float64 {
	if s, ok := c.(ArclenSolver); ok {
		return s.InvArclen(arclen, accuracy)
	}
	return invArclen(c, arclen, accuracy)
}

// minInvArclenAccuracy bounds the accuracy used by invArclen from below.
// Zero would make every arc length measurement subdivide to the depth limit.
const minInvArclenAccuracy = 1e-12

func invArclen(c interface {
	ParametricCurve
	Arclener
}, arclen, accuracy float64) float64 {
	if arclen <= 0 {
		return 0
	}
	if !(accuracy >= minInvArclenAccuracy) {
		accuracy = minInvArclenAccuracy
	}
	total := c.Arclen(accuracy)
	if !isFinite(total) {
		return 0
	}
	if arclen >= total {
		return 1
	}
	epsilon := accuracy / total
	n := 1 - min(math.Ceil(math.Log2(epsilon)), 0)
	inner := accuracy / n

	tLast, lenLast := 0.0, 0.0
	f := func(t float64) float64 {
		lo, hi, dir := tLast, t, 1.0
		if t < tLast {
			lo, hi, dir = t, tLast, -1.0
		}
		lenLast += dir * c.SubsegmentCurve(lo, hi).(Arclener).Arclen(inner)
		tLast = t
		return lenLast - arclen
	}
	return SolveITP(f, 0, 1, epsilon, 1, 0.2, -arclen, total-arclen)
}

// gaussArclen measures a curve from the hodograph sampled at its midpoint:
// dm is the first derivative, dm1 the second, dm2 half the third, with the
// parameter remapped to [-1, 1]. coeffs holds the positive half of a
// symmetric Gauss-Legendre rule.
func gaussArclen(coeffs [][2]float64, dm, dm1, dm2 Vec2) float64 {
	var sum float64
	for _, wx := range coeffs {
		w, x := wx[0], wx[1]
		d := dm.Add(dm2.Mul(x * x))
		sum += math.Sqrt(2.25) * w * (d.Add(dm1.Mul(x)).Hypot() + d.Sub(dm1.Mul(x)).Hypot())
	}
	return sum
}

// Gauss-Legendre quadrature tables as (weight, abscissa) pairs, after
// https://pomax.github.io/bezierinfo/legendre-gauss.html

var gauss8 = [...][2]float64{
	{0.3626837833783620, -0.1834346424956498},
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, -0.5255324099163290},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, -0.7966664774136267},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, -0.9602898564975363},
	{0.1012285362903763, 0.9602898564975363},
}

var gauss8Half = [...][2]float64{
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, 0.9602898564975363},
}

var gauss16Half = [...][2]float64{
	{0.1894506104550685, 0.0950125098376374},
	{0.1826034150449236, 0.2816035507792589},
	{0.1691565193950025, 0.4580167776572274},
	{0.1495959888165767, 0.6178762444026438},
	{0.1246289712555339, 0.7554044083550030},
	{0.0951585116824928, 0.8656312023878318},
	{0.0622535239386479, 0.9445750230732326},
	{0.0271524594117541, 0.9894009349916499},
}

var gauss24Half = [...][2]float64{
	{0.1279381953467522, 0.0640568928626056},
	{0.1258374563468283, 0.1911188674736163},
	{0.1216704729278034, 0.3150426796961634},
	{0.1155056680537256, 0.4337935076260451},
	{0.1074442701159656, 0.5454214713888396},
	{0.0976186521041139, 0.6480936519369755},
	{0.0861901615319533, 0.7401241915785544},
	{0.0733464814110803, 0.8200019859739029},
	{0.0592985849154368, 0.8864155270044011},
	{0.0442774388174198, 0.9382745520027328},
	{0.0285313886289337, 0.9747285559713095},
	{0.0123412297999872, 0.9951872199970213},
}
