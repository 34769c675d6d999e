package types

import "fmt"

// FieldMode selects which scalar quantity is sampled from the wavefunction.
//
// It is a closed set: every consumer switches exhaustively over it, so a new
// mode fails to compile until each stage handles it.
type FieldMode int

const (
	ModeDensity FieldMode = iota // |psi|^2
	ModeReal                     // Re(psi)
	ModeImag                     // Im(psi)
	ModeRealImag                 // Re(psi) and Im(psi) side by side
	ModeRadialDistribution       // r^2 |R_nl(r)|^2, 1D in r
	ModeSphericalHarmonic        // Re(Y_lm) and Im(Y_lm) on a theta-phi grid
)

var modeNames = map[FieldMode]string{
	ModeDensity:            "density",
	ModeReal:               "real",
	ModeImag:               "imag",
	ModeRealImag:           "real_imag",
	ModeRadialDistribution: "radial_distribution",
	ModeSphericalHarmonic:  "spherical_harmonic",
}

// String returns the CLI spelling of the mode.
func (m FieldMode) String() string { return modeNames[m] }

// ParseFieldMode maps a CLI spelling onto a FieldMode.
func ParseFieldMode(s string) (FieldMode, error) {
	for mode, name := range modeNames {
		if name == s {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// Signed reports whether the sampled quantity can take negative values.
func (m FieldMode) Signed() bool {
	switch m {
	case ModeDensity, ModeRadialDistribution:
		return false
	case ModeReal, ModeImag, ModeRealImag, ModeSphericalHarmonic:
		return true
	}
	panic(fmt.Sprintf("unhandled field mode %d", int(m)))
}

// Planar reports whether the mode samples a cartesian slice plane.
// Non-planar modes ignore plane and value.
func (m FieldMode) Planar() bool {
	switch m {
	case ModeDensity, ModeReal, ModeImag, ModeRealImag:
		return true
	case ModeRadialDistribution, ModeSphericalHarmonic:
		return false
	}
	panic(fmt.Sprintf("unhandled field mode %d", int(m)))
}

// DualPanel reports whether the mode produces two panels (real and imaginary).
func (m FieldMode) DualPanel() bool {
	return m == ModeRealImag || m == ModeSphericalHarmonic
}
