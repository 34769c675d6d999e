package orbital

import "math"

// Radial evaluates the analytic hydrogen radial function R_nl(r) with r in
// meters:
//
//	R_nl(r) = N exp(-rho/2) rho^l L_{n-l-1}^{2l+1}(rho),  rho = 2r / (n a0)
//	N = (2/(n a0))^{3/2} sqrt((n-l-1)! / (2n (n+l)!))
//
// The factorial ratio is taken in the log domain so states up to n ~ 20
// evaluate without overflow. The result is finite for all r >= 0; at r = 0
// it is zero for l > 0 and a positive constant for l = 0.
func Radial(n, l int, r float64) float64 {
	na := float64(n) * BohrRadius
	rho := 2 * r / na
	logNorm := 0.5 * (lnFactorial(n-l-1) - math.Log(2*float64(n)) - lnFactorial(n+l))
	prefactor := math.Pow(2/na, 1.5) * math.Exp(logNorm)
	return prefactor * math.Exp(-rho/2) * math.Pow(rho, float64(l)) * laguerre(n-l-1, float64(2*l+1), rho)
}

// RadialDistribution returns r^2 |R_nl(r)|^2, the probability density per
// unit radius, with r in meters.
func RadialDistribution(n, l int, r float64) float64 {
	rr := Radial(n, l, r)
	return r * r * rr * rr
}
