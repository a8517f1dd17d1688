package bezkit

import (
	"math"
	"slices"
	"testing"

	"github.com/tdewolff/test"
)

func checkRoots(t *testing.T, roots, want []float64) {
	t.Helper()
	if len(roots) != len(want) {
		t.Fatalf("got %d roots %v, want %d", len(roots), roots, len(want))
	}
	const epsilon = 1e-12
	roots = slices.Clone(roots)
	slices.Sort(roots)
	slices.Sort(want)
	for i := range roots {
		if math.Abs(roots[i]-want[i]) > epsilon {
			t.Errorf("root %d is %v, want %v", i, roots[i], want[i])
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	roots := func(r [2]float64, n int) []float64 { return r[:n] }
	checkRoots(t, roots(SolveQuadratic(-5, 0, 1)), []float64{-math.Sqrt(5), math.Sqrt(5)})
	checkRoots(t, roots(SolveQuadratic(5, 0, 1)), nil)
	checkRoots(t, roots(SolveQuadratic(5, 1, 0)), []float64{-5})
	checkRoots(t, roots(SolveQuadratic(1, 2, 1)), []float64{-1})
	checkRoots(t, roots(SolveQuadratic(0, 0, 0)), []float64{0})

	r, n := SolveQuadratic(-6, 1, 1)
	test.T(t, n, 2)
	test.That(t, r[0] <= r[1], "roots not ascending:", r[:n])
}

func TestSolveCubic(t *testing.T) {
	roots := func(r [3]float64, n int) []float64 { return r[:n] }
	checkRoots(t, roots(SolveCubic(-5, 0, 0, 1)), []float64{math.Cbrt(5)})
	checkRoots(t, roots(SolveCubic(-5, -1, 0, 1)), []float64{1.90416085913492})
	checkRoots(t, roots(SolveCubic(0, -1, 0, 1)), []float64{-1, 0, 1})
	checkRoots(t, roots(SolveCubic(-2, -3, 0, 1)), []float64{-1, 2})
	checkRoots(t, roots(SolveCubic(2, -3, 0, 1)), []float64{-2, 1})
	checkRoots(t, roots(SolveCubic(2-1e-12, 5, 4, 1)), []float64{
		-1.9999999999989995,
		-1.0000010000848456,
		-0.9999989999161546,
	})
	checkRoots(t, roots(SolveCubic(2+1e-12, 5, 4, 1)), []float64{-2})
	checkRoots(t, roots(SolveCubic(0.1, 0.1, 0.5, 0.2)), []float64{-2.378160678793357})

	// A vanishing cubic term reduces to the quadratic.
	checkRoots(t, roots(SolveCubic(-5, 0, 1, 0)), []float64{-math.Sqrt(5), math.Sqrt(5)})
}

func TestSolveQuartic(t *testing.T) {
	// These test cases are taken from Orellana and De Michele paper (Table 1).
	testWithRoots := func(coeffs [4]float64, roots []float64, relErr float64) {
		t.Helper()

		// Note: in paper, coefficients are in decreasing order.
		actual, n := SolveQuartic(coeffs[3], coeffs[2], coeffs[1], coeffs[0], 1.0)
		slices.Sort(actual[:n])
		if n != len(roots) {
			t.Fatalf("got %d roots, expected %d", n, len(roots))
		}
		for i := range actual[:n] {
			if math.Abs(actual[i]-roots[i]) > relErr*math.Abs(roots[i]) {
				t.Errorf("root %d is %v but we expected %v", i, actual[i], roots[i])
			}
		}
	}

	testVietaRoots := func(x1, x2, x3, x4 float64, roots []float64, relErr float64) {
		t.Helper()
		a := -(x1 + x2 + x3 + x4)
		b := x1*(x2+x3) + x2*(x3+x4) + x4*(x1+x3)
		c := -x1*x2*(x3+x4) - x3*x4*(x1+x2)
		d := x1 * x2 * x3 * x4
		testWithRoots([4]float64{a, b, c, d}, roots, relErr)
	}

	testVieta := func(x1, x2, x3, x4, relErr float64) {
		t.Helper()
		testVietaRoots(x1, x2, x3, x4, []float64{x1, x2, x3, x4}, relErr)
	}

	// case 1
	testVieta(1.0, 1e3, 1e6, 1e9, 1e-16)
	// case 2
	testVieta(2.0, 2.001, 2.002, 2.003, 1e-6)
	// case 3
	testVieta(1e47, 1e49, 1e50, 1e53, 2e-16)
	// case 4
	testVieta(-1.0, 1.0, 2.0, 1e14, 1e-16)
	// case 5
	testVieta(-2e7, -1.0, 1.0, 1e7, 1e-16)
	// case 6
	testWithRoots(
		[4]float64{-9000002.0, -9999981999998.0, 19999982e6, -2e13},
		[]float64{-1e6, 1e7},
		1e-16,
	)
	// case 7
	testWithRoots(
		[4]float64{2000011.0, 1010022000028.0, 11110056e6, 2828e10},
		[]float64{-7.0, -4.0},
		1e-16,
	)
	// case 8
	testWithRoots(
		[4]float64{-100002011.0, 201101022001.0, -102200111000011.0, 11000011e8},
		[]float64{11.0, 1e8},
		1e-16,
	)
	// cases 9-13 have no real roots
	// case 14
	testVietaRoots(1000.0, 1000.0, 1000.0, 1000.0, []float64{1000.0, 1000.0}, 1e-16)
	// case 15
	testVietaRoots(1e-15, 1000.0, 1000.0, 1000.0, []float64{1e-15, 1000.0, 1000.0}, 1e-15)
	// case 16 no real roots
	// case 17
	testVieta(10000.0, 10001.0, 10010.0, 10100.0, 1e-6)
	// case 19
	testVietaRoots(1.0, 1e30, 1e30, 1e44, []float64{1.0, 1e30, 1e44}, 1e-16)
	// case 20
	testVieta(1.0, 1e7, 1e7, 1e14, 1e-7)
	// case 21 doesn't pick up double root
	// case 22
	testVieta(1.0, 10.0, 1e152, 1e154, 3e-16)
	// case 23
	testWithRoots(
		[4]float64{1.0, 1.0, 3.0 / 8.0, 1e-3},
		[]float64{-0.497314148060048, -0.00268585193995149},
		2e-15,
	)
	// case 24
	const s = 1e30
	testWithRoots(
		[4]float64{-(1.0 + 1.0/s), 1.0/s - s*s, s*s + s, -s},
		[]float64{-s, 1e-30, 1.0, s},
		2e-16,
	)
}

func TestSolveQuarticZeroConstant(t *testing.T) {
	// x⁴ - x² = x²(x-1)(x+1)
	r, n := SolveQuartic(0, 0, -1, 0, 1)
	roots := slices.Clone(r[:n])
	slices.Sort(roots)
	test.That(t, slices.Contains(roots, 0), "zero root missing:", roots)
	test.Float(t, roots[0], -1)
	test.Float(t, roots[len(roots)-1], 1)
}

func TestFactorQuarticInner(t *testing.T) {
	// (x² + x - 2)(x² - 3x + 5)
	f, ok := FactorQuarticInner(-2, 0, 11, -10, false)
	test.That(t, ok)
	got := [][2]float64{f[0], f[1]}
	slices.SortFunc(got, func(a, b [2]float64) int { return cmpFloat(a[0], b[0]) })
	diff(t, [][2]float64{{-3, 5}, {1, -2}}, got, approx(1e-9))
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func TestSolveITP(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - x - 2 }
	x := SolveITP(f, 1, 2, 1e-12, 0, 0.2, f(1), f(2))
	test.That(t, math.Abs(f(x)) < 6e-12, "|f(x)| too large:", f(x))
}

func TestSolveITPBisectionBound(t *testing.T) {
	// With n0 = 0 ITP never needs more evaluations than bisection.
	fns := []func(float64) float64{
		func(x float64) float64 { return x*x*x - x - 2 },
		func(x float64) float64 { return math.Atan(x-1.3) * 1e-3 },
		func(x float64) float64 {
			if x < 1.7 {
				return -1
			}
			return 1
		},
	}
	const a, b, eps = 1.0, 2.0, 1e-10
	bisect := int(math.Ceil(math.Log2((b-a)/eps))) + 1
	for i, f := range fns {
		_, n := SolveITPCount(f, a, b, eps, 0, 0.2, f(a), f(b))
		test.That(t, n <= bisect, "function", i, "took", n, "evaluations, bisection takes", bisect)
	}
}

func TestSolveAllZero(t *testing.T) {
	// Every x solves 0 = 0; a single 0 stands in for them.
	qr, n := SolveQuadratic(0, 0, 0)
	test.T(t, n, 1)
	test.Float(t, qr[0], 0)

	cr, n := SolveCubic(0, 0, 0, 0)
	test.T(t, n, 1)
	test.Float(t, cr[0], 0)

	r, n := SolveQuartic(0, 0, 0, 0, 0)
	for _, x := range r[:n] {
		test.That(t, !math.IsNaN(x), "NaN root", r[:n])
	}

	// No root at all for a nonzero constant.
	_, n = SolveCubic(3, 0, 0, 0)
	test.T(t, n, 0)
}

func TestFactorQuarticInnerDistinctBetas(t *testing.T) {
	// Case 23 of Orellana and De Michele: the factors share α = 0.5, and
	// only one of them has real roots.
	const a, b, c, d = 1.0, 1.0, 3.0 / 8, 1e-3
	f, ok := FactorQuarticInner(a, b, c, d, false)
	test.That(t, ok)
	a1, b1, a2, b2 := f[0][0], f[0][1], f[1][0], f[1][1]
	test.FloatDiff(t, a1+a2, a, 1e-12)
	test.FloatDiff(t, b1+a1*a2+b2, b, 1e-12)
	test.FloatDiff(t, b1*a2+a1*b2, c, 1e-12)
	test.FloatDiff(t, b1*b2, d, 1e-12)
	test.That(t, math.Abs(b1-b2) > 0.5, "factors collapsed:", f)
}

func TestSolveITPZeroEpsilon(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - x - 2 }
	x, evals := SolveITPCount(f, 1, 2, 0, 1, 0.2, f(1), f(2))
	test.FloatDiff(t, x, 1.5213797068045676, 1e-15)
	test.That(t, evals <= 70, "evaluations:", evals)

	x = SolveITP(f, 1, 2, math.NaN(), 1, 0.2, f(1), f(2))
	test.FloatDiff(t, x, 1.5213797068045676, 1e-15)
}
