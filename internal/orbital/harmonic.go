package orbital

import "math"

// Harmonic evaluates the normalized spherical harmonic Y_lm(theta, phi)
// under the Condon-Shortley phase convention:
//
//	Y_lm = sqrt((2l+1)/(4 pi) (l-|m|)!/(l+|m|)!) P_l^{|m|}(cos theta) e^{i|m|phi}
//
// with negative m recovered through Y_l^{-m} = (-1)^m conj(Y_l^m). The
// Legendre factor vanishes at the poles for |m| > 0, so the value there is
// well defined even though phi is not.
func Harmonic(l, m int, theta, phi float64) complex128 {
	ma := m
	if ma < 0 {
		ma = -ma
	}
	logNorm := 0.5 * (math.Log(float64(2*l+1)/(4*math.Pi)) + lnFactorial(l-ma) - lnFactorial(l+ma))
	amp := math.Exp(logNorm) * assocLegendre(l, ma, math.Cos(theta))

	arg := float64(ma) * phi
	y := complex(amp*math.Cos(arg), amp*math.Sin(arg))
	if m >= 0 {
		return y
	}
	if ma%2 == 1 {
		return complex(-real(y), imag(y))
	}
	return complex(real(y), -imag(y))
}
