package orbital

import (
	"math/cmplx"

	"horbital/internal/domain/types"
)

// Orbital evaluates the full analytic wavefunction of one (n, l, m) state,
// psi = R_nl(r) Y_lm(theta, phi). The zero value is unusable; build it from
// a validated triple with New.
type Orbital struct {
	qn types.QuantumNumbers
}

// New returns the evaluator for a validated quantum number triple.
func New(qn types.QuantumNumbers) Orbital {
	return Orbital{qn: qn}
}

// Psi evaluates psi at spherical coordinates with r in meters.
func (o Orbital) Psi(r, theta, phi float64) complex128 {
	radial := Radial(o.qn.N, o.qn.L, r)
	return complex(radial, 0) * Harmonic(o.qn.L, o.qn.M, theta, phi)
}

// PsiCartesian evaluates psi at a cartesian point with coordinates in meters.
func (o Orbital) PsiCartesian(x, y, z float64) complex128 {
	r, theta, phi := Spherical(x, y, z)
	return o.Psi(r, theta, phi)
}

// Density returns |psi|^2 at a cartesian point with coordinates in meters.
func (o Orbital) Density(x, y, z float64) float64 {
	a := cmplx.Abs(o.PsiCartesian(x, y, z))
	return a * a
}

// RadialDistribution returns r^2 |R_nl(r)|^2 with r in meters, independent
// of the angular factor.
func (o Orbital) RadialDistribution(r float64) float64 {
	return RadialDistribution(o.qn.N, o.qn.L, r)
}

// Harmonic evaluates the state's angular factor Y_lm, independent of r.
func (o Orbital) Harmonic(theta, phi float64) complex128 {
	return Harmonic(o.qn.L, o.qn.M, theta, phi)
}
