package bezkit

import "math"

// Minimum distance between two Bézier curves, after Chen et al., "Computing
// the minimum distance between two Bézier curves", Journal of Computational
// and Applied Mathematics 229 (2009), 294-301.
//
// The squared distance between B1(u) and B2(v) is itself a Bézier surface of
// degree (2n, 2m). Its control values D(r, k) bound the surface over the
// current parameter rectangle, which is subdivided at the smallest control
// value until the rectangle is narrower than the requested accuracy.

// minDistParam returns the minimum squared distance and the parameters at
// which it occurs, searching u × v. best is the smallest value found so far
// by sibling searches and prunes rectangles that cannot improve on it.
func minDistParam(bez1, bez2 []Vec2, u, v [2]float64, epsilon, best float64) (dist, t1, t2 float64) {
	if len(bez1) == 0 || len(bez2) == 0 {
		panic("bezkit: min distance of an empty curve")
	}

	n := len(bez1) - 1
	m := len(bez2) - 1
	umin, umax := u[0], u[1]
	vmin, vmax := v[0], v[1]
	umid := (umin + umax) / 2
	vmid := (vmin + vmax) / 2

	corners := [4][3]float64{
		{distSurface(umin, vmin, bez1, bez2), umin, vmin},
		{distSurface(umin, vmax, bez1, bez2), umin, vmax},
		{distSurface(umax, vmin, bez1, bez2), umax, vmin},
		{distSurface(umax, vmax, bez1, bez2), umax, vmax},
	}
	alpha := min(corners[0][0], corners[1][0], corners[2][0], corners[3][0])
	if alpha > best || math.Abs(umax-umin) < epsilon || math.Abs(vmax-vmin) < epsilon {
		return alpha, umid, vmid
	}

	// Every control value above alpha: no interior point can beat the corners.
	outside := true
	minD := math.Inf(1)
	var minR, minK int
	for r := range 2 * n {
		for k := range 2 * m {
			d := distCoeff(r, k, bez1, bez2)
			if d < alpha {
				outside = false
			}
			if d < minD {
				minD, minR, minK = d, r, k
			}
		}
	}
	if outside {
		return alpha, umid, vmid
	}

	// If the control net is smallest along an edge, the minimum is at the
	// matching corner.
	lo1, hi1, lo2, hi2 := true, true, true, true
	for i := range 2 * n {
		for j := range 2 * m {
			dij := distCoeff(i, j, bez1, bez2)
			if dij < distCoeff(0, j, bez1, bez2) {
				lo1 = false
			}
			if dij < distCoeff(2*n, j, bez1, bez2) {
				hi1 = false
			}
			if dij < distCoeff(i, 0, bez1, bez2) {
				lo2 = false
			}
			if dij < distCoeff(i, 2*m, bez1, bez2) {
				hi2 = false
			}
		}
	}
	switch {
	case lo1 && lo2:
		return corners[0][0], corners[0][1], corners[0][2]
	case lo1 && hi2:
		return corners[1][0], corners[1][1], corners[1][2]
	case hi1 && lo2:
		return corners[2][0], corners[2][1], corners[2][2]
	case hi1 && hi2:
		return corners[3][0], corners[3][1], corners[3][2]
	}

	usplit := umin + (umax-umin)*(float64(minR)/float64(2*n))
	vsplit := vmin + (vmax-vmin)*(float64(minK)/float64(2*m))
	dist, t1, t2 = math.Inf(1), umid, vmid
	first := true
	for _, uu := range [2][2]float64{{umin, usplit}, {usplit, umax}} {
		for _, vv := range [2][2]float64{{vmin, vsplit}, {vsplit, vmax}} {
			d, a, b := minDistParam(bez1, bez2, uu, vv, epsilon, alpha)
			if first || math.IsNaN(d) || d < dist {
				dist, t1, t2 = d, a, b
				first = false
			}
		}
	}
	return dist, t1, t2
}

// distSurface evaluates the squared-distance surface at (u, v).
func distSurface(u, v float64, bez1, bez2 []Vec2) float64 {
	n := len(bez1) - 1
	m := len(bez2) - 1
	var sum float64
	for r := range 2*n + 1 {
		for k := range 2*m + 1 {
			sum += distCoeff(r, k, bez1, bez2) * bernsteinBasis(2*n, r, u) * bernsteinBasis(2*m, k, v)
		}
	}
	return sum
}

// distCoeff is the control value D(r, k) of the squared-distance surface.
func distCoeff(r, k int, bez1, bez2 []Vec2) float64 {
	return selfCoeff(r, bez1) + selfCoeff(k, bez2) - 2*productVec(r, bez1).Dot(productVec(k, bez2))
}

// selfCoeff is the r-th control value of |B(t)|², degree elevated to 2n.
func selfCoeff(r int, p []Vec2) float64 {
	n := len(p) - 1
	var sum float64
	for i := max(r-n, 0); i <= min(r, n); i++ {
		sum += p[i].Dot(p[r-i]) * productWeight(n, i, r)
	}
	return sum
}

// productVec is the r-th control point of B(t) multiplied by the degree-n
// Bernstein weights of the product basis.
func productVec(r int, p []Vec2) Vec2 {
	n := len(p) - 1
	var sum Vec2
	for i := max(r-n, 0); i <= min(r, n); i++ {
		sum = sum.Add(p[i].Mul(productWeight(n, i, r)))
	}
	return sum
}

// productWeight is C(n, i)·C(n, r-i) / C(2n, r).
func productWeight(n, i, r int) float64 {
	return float64(choose(n, i)*choose(n, r-i)) / float64(choose(2*n, r))
}

func bernsteinBasis(n, i int, u float64) float64 {
	return float64(choose(n, i)) * math.Pow(1-u, float64(n-i)) * math.Pow(u, float64(i))
}

// choose is the binomial coefficient, zero when k is out of range.
func choose(n, k int) uint32 {
	if k < 0 || k > n {
		return 0
	}
	p := 1
	for i := 1; i <= n-k; i++ {
		p = p * (k + i) / i
	}
	return uint32(p)
}
