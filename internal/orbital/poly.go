package orbital

import "math"

// laguerre evaluates the generalized Laguerre polynomial L_k^alpha(x) by the
// upward three-term recurrence
//
//	(i+1) L_{i+1} = (2i+1+alpha-x) L_i - (i+alpha) L_{i-1}
//
// which stays well conditioned where the naive factorial expansion of the
// coefficients overflows.
func laguerre(k int, alpha, x float64) float64 {
	if k == 0 {
		return 1
	}
	prev := 1.0
	cur := 1 + alpha - x
	for i := 1; i < k; i++ {
		fi := float64(i)
		next := ((2*fi+1+alpha-x)*cur - (fi+alpha)*prev) / (fi + 1)
		prev, cur = cur, next
	}
	return cur
}

// assocLegendre evaluates the associated Legendre function P_l^m(x) for
// m >= 0 and x in [-1, 1], including the Condon-Shortley phase (-1)^m.
//
// It seeds P_m^m = (-1)^m (2m-1)!! (1-x^2)^{m/2} and climbs in l with
//
//	(l-m) P_l^m = x (2l-1) P_{l-1}^m - (l+m-1) P_{l-2}^m
//
// At the poles (x = +-1) the (1-x^2)^{m/2} factor makes every m > 0 term
// vanish exactly, so no special casing is needed there.
func assocLegendre(l, m int, x float64) float64 {
	pmm := 1.0
	if m > 0 {
		somx2 := math.Sqrt((1 - x) * (1 + x))
		fact := 1.0
		for i := 0; i < m; i++ {
			pmm *= -fact * somx2
			fact += 2
		}
	}
	if l == m {
		return pmm
	}
	pmmp1 := x * float64(2*m+1) * pmm
	if l == m+1 {
		return pmmp1
	}
	var pll float64
	for ll := m + 2; ll <= l; ll++ {
		pll = (x*float64(2*ll-1)*pmmp1 - float64(ll+m-1)*pmm) / float64(ll-m)
		pmm, pmmp1 = pmmp1, pll
	}
	return pll
}

// lnFactorial returns ln(n!) via the log-gamma function.
func lnFactorial(n int) float64 {
	v, _ := math.Lgamma(float64(n) + 1)
	return v
}
