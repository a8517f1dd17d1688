package bezkit

import (
	"math"
)

// SolveQuadratic returns the real roots of c0 + c1·x + c2·x² = 0.
//
// The solver is numerically robust: when c2 is so small that dividing by it
// overflows, the equation is treated as linear and only the root of the linear
// part is returned, the other root possibly being out of representable range.
// When all coefficients are zero, so that every x is a solution, a single 0 is
// returned.
//
// Roots are returned in ascending order. The second return value is the
// number of valid entries in the array.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	p := c1 / c2
	q := c0 / c2
	// 0/0 is NaN, so both overflow and an all-zero equation land here.
	if !isFinite(p) || !isFinite(q) {
		root := -c0 / c1
		switch {
		case isFinite(root):
			return [2]float64{root}, 1
		case c0 == 0 && c1 == 0:
			return [2]float64{0}, 1
		default:
			return [2]float64{}, 0
		}
	}

	disc := p*p - 4*q
	var r1 float64
	if math.IsInf(disc, 0) {
		// p² overflowed; solve x² + p·x = 0 for the large root and recover the
		// small one from the product of the roots.
		r1 = -p
	} else {
		if disc < 0 {
			return [2]float64{}, 0
		}
		if disc == 0 {
			return [2]float64{-0.5 * p}, 1
		}
		// Avoid cancellation, see https://math.stackexchange.com/questions/866331
		r1 = -0.5 * (p + math.Copysign(math.Sqrt(disc), p))
	}
	r2 := q / r1
	if !isFinite(r2) {
		return [2]float64{r1}, 1
	}
	if r1 > r2 {
		r1, r2 = r2, r1
	}
	return [2]float64{r1, r2}, 2
}

// SolveCubic returns the real roots of c0 + c1·x + c2·x² + c3·x³ = 0.
//
// This follows Christoph Peters' refinement of Jim Blinn's method, see
// https://momentsingraphics.de/CubicRoots.html. When c3 is zero or close
// enough to zero that normalizing by it overflows, the equation is solved as a
// quadratic.
func SolveCubic(c0, c1, c2, c3 float64) ([3]float64, int) {
	inv := 1 / c3
	a := c2 * (1.0 / 3 * inv)
	b := c1 * (1.0 / 3 * inv)
	c := c0 * inv
	if !isFinite(a) || !isFinite(b) || !isFinite(c) {
		qr, n := SolveQuadratic(c0, c1, c2)
		return [3]float64{qr[0], qr[1]}, n
	}

	// delta0..delta2 are the Hessian coefficients of the normalized cubic.
	delta0 := math.FMA(-a, a, b)
	delta1 := math.FMA(-b, a, c)
	delta2 := a*c - b*b
	disc := 4*delta0*delta2 - delta1*delta1
	depressed := math.FMA(-2*a, delta0, delta1)

	switch {
	case disc < 0:
		sq := math.Sqrt(-0.25 * disc)
		half := -0.5 * depressed
		t := math.Cbrt(half+sq) + math.Cbrt(half-sq)
		return [3]float64{t - a}, 1
	case disc == 0:
		t := math.Copysign(math.Sqrt(-delta0), depressed)
		return [3]float64{t - a, -2*t - a}, 2
	default:
		theta := math.Atan2(math.Sqrt(disc), -depressed) * (1.0 / 3)
		sin, cos := math.Sincos(theta)
		s3 := sin * math.Sqrt(3)
		scale := 2 * math.Sqrt(-delta0)
		return [3]float64{
			math.FMA(scale, cos, -a),
			math.FMA(scale, 0.5*(-cos+s3), -a),
			math.FMA(scale, 0.5*(-cos-s3), -a),
		}, 3
	}
}

// depressedCubicDominant returns the dominant root of x³ + g·x + h = 0,
// following section 2.2 of Orellana and De Michele.
func depressedCubicDominant(g, h float64) float64 {
	q := (-1.0 / 3) * g
	r := 0.5 * h

	// k is only computed when q or r are large enough that q³ or r² could
	// overflow.
	var k float64
	scaled := false
	switch {
	case math.Abs(q) < 1e102 && math.Abs(r) < 1e154:
	case math.Abs(q) < math.Abs(r):
		scaled = true
		k = 1 - q*((q/r)*(q/r))
	default:
		scaled = true
		k = math.Copysign(1, q) * (((r/q)*(r/q))/q - 1)
	}

	var x float64
	switch {
	case scaled && r == 0:
		if g <= 0 {
			x = math.Sqrt(-g)
		}
	case scaled && k < 0 || !scaled && r*r < q*q*q:
		var t float64
		if scaled {
			t = r / q / math.Sqrt(q)
		} else {
			t = r / math.Sqrt(q*q*q)
		}
		x = -2 * math.Sqrt(q) * math.Copysign(math.Cos(math.Acos(math.Abs(t))*(1.0/3)), t)
	default:
		var u float64
		switch {
		case !scaled:
			u = -r - math.Copysign(math.Sqrt(r*r-q*q*q), r)
		case math.Abs(q) < math.Abs(r):
			u = -r * (1 + math.Sqrt(k))
		default:
			u = -r - math.Copysign(math.Sqrt(math.Abs(q))*q*math.Sqrt(k), r)
		}
		u = math.Cbrt(u)
		var v float64
		if u != 0 {
			v = q / u
		}
		x = u + v
	}

	// Newton-Raphson polish.
	const epsM = 2.22045e-16
	fx := (x*x+g)*x + h
	if math.Abs(fx) < epsM*max(x*x*x, g*x, h) {
		return x
	}
	for range 8 {
		dfx := 3*x*x + g
		if dfx == 0 {
			break
		}
		nx := x - fx/dfx
		nfx := (nx*nx+g)*nx + h
		if nfx == 0 {
			return nx
		}
		if math.Abs(nfx) >= math.Abs(fx) {
			break
		}
		x, fx = nx, nfx
	}
	return x
}

// SolveQuartic returns the real roots of c0 + c1·x + c2·x² + c3·x³ + c4·x⁴ = 0.
//
// This implements Algorithm 1010 by Orellana and De Michele ("Boosting
// Efficiency in Solving Quartic Equations with No Compromise in Accuracy",
// ACM TOMS 46(2), 2020). Roots are not sorted. When the coefficients cannot be
// factored even after rescaling, no roots are returned.
func SolveQuartic(c0, c1, c2, c3, c4 float64) ([4]float64, int) {
	if c4 == 0 {
		cr, n := SolveCubic(c0, c1, c2, c3)
		return [4]float64{cr[0], cr[1], cr[2]}, n
	}
	if c0 == 0 {
		// x = 0 is a root, appended after those of the remaining cubic.
		var out [4]float64
		cr, n := SolveCubic(c1, c2, c3, c4)
		copy(out[:], cr[:n])
		out[n] = 0
		return out, n + 1
	}

	a, b, c, d := c3/c4, c2/c4, c1/c4, c0/c4
	if roots, n, ok := quarticRoots(a, b, c, d, false); ok {
		return roots, n
	}

	// Rescale the polynomial to pull intermediates back into range.
	const kq = 7.16e76
	for _, rescale := range [2]bool{false, true} {
		roots, n, ok := quarticRoots(a/kq, b/(kq*kq), c/(kq*kq*kq), d/(kq*kq*kq*kq), rescale)
		if !ok {
			continue
		}
		for i := range roots[:n] {
			roots[i] *= kq
		}
		return roots, n
	}
	return [4]float64{}, 0
}

func quarticRoots(a, b, c, d float64, rescale bool) ([4]float64, int, bool) {
	factors, ok := FactorQuarticInner(a, b, c, d, rescale)
	if !ok {
		return [4]float64{}, 0, false
	}
	var out [4]float64
	n := 0
	for _, f := range factors {
		qr, qn := SolveQuadratic(f[1], f[0], 1)
		n += copy(out[n:], qr[:qn])
	}
	return out, n, true
}

// FactorQuarticInner factors x⁴ + a·x³ + b·x² + c·x + d into two real
// quadratics x² + α₁·x + β₁ and x² + α₂·x + β₂, returned as
// {{α₁, β₁}, {α₂, β₂}}.
//
// It reports false when the factorization needs complex coefficients, or when
// an intermediate value overflows. In the latter case, calling it again with
// rescale set may succeed; rescale divides intermediate coefficients by a
// large constant before solving the resolvent cubic. No further recovery is
// attempted.
func FactorQuarticInner(a, b, c, d float64, rescale bool) ([2][2]float64, bool) {
	epsQ := func(a1, b1, a2, b2 float64) float64 {
		return relEps(a1+a2, a) + relEps(b1+a1*a2+b2, b) + relEps(b1*a2+a1*b2, c)
	}
	epsT := func(a1, b1, a2, b2 float64) float64 {
		return epsQ(a1, b1, a2, b2) + relEps(b1*b2, d)
	}

	// Shift x to make the resolvent cubic well conditioned.
	var s float64
	if disc := 9*a*a - 24*b; disc >= 0 {
		s = -2 * b / (3*a + math.Copysign(math.Sqrt(disc), a))
	} else {
		s = -0.25 * a
	}
	as := a + 4*s
	bs := b + 3*s*(a+2*s)
	cs := c + s*(2*b+s*(3*a+4*s))
	ds := d + s*(c+s*(b+s*(a+s)))

	const kc = 3.49e102
	var g, h float64
	if rescale {
		as, bs, cs, ds := as/kc, bs/kc, cs/kc, ds/kc
		g = as*cs - (4/kc)*ds - (1.0/3)*bs*bs
		h = (as*cs+(8/kc)*ds-(2.0/9)*bs*bs)*(1.0/3)*bs - cs*(cs/kc) - as*as*ds
	} else {
		g = as*cs - 4*ds - (1.0/3)*bs*bs
		h = (as*cs+8*ds-(2.0/9)*bs*bs)*(1.0/3)*bs - cs*cs - as*as*ds
	}
	if math.IsInf(g, 0) || math.IsInf(h, 0) {
		return [2][2]float64{}, false
	}
	phi := depressedCubicDominant(g, h)
	if rescale {
		phi *= kc
	}

	l1 := 0.5 * a
	l3 := (1.0/6)*b + 0.5*phi
	del2 := c - a*l3
	d2a := (2.0/3)*b - phi - l1*l1
	l2a := 0.5 * del2 / d2a
	l2b := 2 * (d - l3*l3) / del2
	d2b := 0.5 * del2 / l2b

	// Pick the (d2, l2) candidate with the smallest backward error. The third
	// candidate of the paper mixes the two above and never wins a tie.
	d2, l2 := d2a, l2a
	best := math.Inf(1)
	for i, cand := range [3][2]float64{{d2a, l2a}, {d2b, l2b}, {d2a, l2b}} {
		e := relEps(cand[0]+l1*l1+2*l3, b) +
			relEps(2*(cand[0]*cand[1]+l1*l3), c) +
			relEps(cand[0]*cand[1]*cand[1]+l3*l3, d)
		if i == 0 || e < best {
			d2, l2, best = cand[0], cand[1], e
		}
	}

	var alpha1, beta1, alpha2, beta2 float64
	switch {
	case d2 < 0:
		sq := math.Sqrt(-d2)
		alpha1, alpha2 = l1+sq, l1-sq
		beta1, beta2 = l3+sq*l2, l3-sq*l2
		if math.Abs(beta2) < math.Abs(beta1) {
			beta2 = d / beta1
		} else if math.Abs(beta2) > math.Abs(beta1) {
			beta1 = d / beta2
		}
		if math.Abs(alpha1) != math.Abs(alpha2) {
			// The first candidate needs no division and is always finite.
			var cands [3][2]float64
			if math.Abs(alpha1) < math.Abs(alpha2) {
				cands = [3][2]float64{
					{a - alpha2, alpha2},
					{(c - beta1*alpha2) / beta2, alpha2},
					{(b - beta2 - beta1) / alpha2, alpha2},
				}
			} else {
				cands = [3][2]float64{
					{alpha1, a - alpha1},
					{alpha1, (c - alpha1*beta2) / beta1},
					{alpha1, (b - beta2 - beta1) / alpha1},
				}
			}
			bestQ := 0.0
			for i, cand := range cands {
				if math.IsInf(cand[0], 0) || math.IsInf(cand[1], 0) {
					continue
				}
				if e := epsQ(cand[0], beta1, cand[1], beta2); i == 0 || e < bestQ {
					alpha1, alpha2, bestQ = cand[0], cand[1], e
				}
			}
		}
	case d2 == 0:
		d3 := d - l3*l3
		alpha1, alpha2 = l1, l1
		beta1, beta2 = l3+math.Sqrt(-d3), l3-math.Sqrt(-d3)
		if math.Abs(beta1) > math.Abs(beta2) {
			beta2 = d / beta1
		} else if math.Abs(beta2) > math.Abs(beta1) {
			beta1 = d / beta2
		}
	default:
		// Only complex factors exist.
		return [2][2]float64{}, false
	}

	// Newton-Raphson on the four coefficients, stopping as soon as the
	// backward error stops decreasing.
	e := epsT(alpha1, beta1, alpha2, beta2)
	for range 8 {
		if e == 0 {
			break
		}
		f0 := beta1*beta2 - d
		f1 := beta1*alpha2 + alpha1*beta2 - c
		f2 := beta1 + alpha1*alpha2 + beta2 - b
		f3 := alpha1 + alpha2 - a
		k1 := alpha1 - alpha2
		det := beta1*beta1 - beta1*(alpha2*k1+2*beta2) + beta2*(alpha1*k1+beta2)
		if det == 0 {
			break
		}
		inv := 1 / det
		k2 := beta2 - beta1
		k3 := beta1*alpha2 - alpha1*beta2
		dz0 := k1*f0 + k2*f1 + k3*f2 - (beta1*k2+alpha1*k3)*f3
		dz1 := (alpha1*k1+k2)*f0 - beta1*k1*f1 - beta1*k2*f2 - beta1*k3*f3
		dz2 := -k1*f0 - k2*f1 - k3*f2 + (alpha2*k3+beta2*k2)*f3
		dz3 := -(alpha2*k1+k2)*f0 + beta2*k1*f1 + beta2*k2*f2 + beta2*k3*f3
		na1, nb1 := alpha1-inv*dz0, beta1-inv*dz1
		na2, nb2 := alpha2-inv*dz2, beta2-inv*dz3
		ne := epsT(na1, nb1, na2, nb2)
		if ne >= e {
			break
		}
		alpha1, beta1, alpha2, beta2, e = na1, nb1, na2, nb2, ne
	}
	return [2][2]float64{{alpha1, beta1}, {alpha2, beta2}}, true
}

// relEps is the relative error of raw with respect to the coefficient a.
func relEps(raw, a float64) float64 {
	if a == 0 {
		return math.Abs(raw)
	}
	return math.Abs((raw - a) / a)
}

// SolveITP finds a zero-crossing of f in [a, b] using the ITP
// (Interpolate-Truncate-Project) method of Oliveira and Takahashi.
//
// The caller supplies ya = f(a) < 0 and yb = f(b) > 0; they are not recomputed.
// For monotonic f the result lies within epsilon of the crossing. epsilon must
// be larger than 2⁻⁶³·(b-a).
//
// n0 trades worst case for average case: with n0 = 0 the number of
// evaluations never exceeds that of bisection, with n0 = 1 the secant step
// engages more often on smooth functions at the cost of at most one extra
// evaluation. k1 is the truncation gain; 0.2/(b-a) is a good choice. The
// second truncation parameter k2 is fixed at 2.
func SolveITP(f func(float64) float64, a, b, epsilon float64, n0 int, k1, ya, yb float64) float64 {
	t, _ := SolveITPCount(f, a, b, epsilon, n0, k1, ya, yb)
	return t
}

// SolveITPCount is like [SolveITP] but also returns the number of times f
// was evaluated.
func SolveITPCount(f func(float64) float64, a, b, epsilon float64, n0 int, k1, ya, yb float64) (float64, int) {
	// A zero or NaN epsilon would never terminate.
	if minEps := 0x1p-62 * (b - a); !(epsilon >= minEps) {
		epsilon = minEps
	}
	nHalf := int(min(max(math.Ceil(math.Log2((b-a)/epsilon))-1, 0), 62))
	scaledEps := epsilon * float64(uint64(1)<<min(n0+nHalf, 63))
	evals := 0
	for b-a > 2*epsilon {
		mid := 0.5 * (a + b)
		radius := scaledEps - 0.5*(b-a)

		// Interpolate.
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := mid - xf

		// Truncate.
		xt := mid
		if delta := k1 * ((b - a) * (b - a)); delta <= math.Abs(sigma) {
			xt = xf + math.Copysign(delta, sigma)
		}

		// Project.
		x := xt
		if math.Abs(xt-mid) > radius {
			x = mid - math.Copysign(radius, sigma)
		}

		y := f(x)
		evals++
		switch {
		case y > 0:
			b, yb = x, y
		case y < 0:
			a, ya = x, y
		default:
			return x, evals
		}
		scaledEps *= 0.5
	}
	return 0.5 * (a + b), evals
}
