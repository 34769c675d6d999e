package orbital

import "math"

// Spherical converts cartesian coordinates in meters to (r, theta, phi)
// with theta in [0, pi] and phi in [-pi, pi]. At the origin the angles are
// undefined; both are pinned to zero, which combines with the finite polar
// limit of Y_lm to give a consistent wavefunction value.
func Spherical(x, y, z float64) (r, theta, phi float64) {
	r = math.Sqrt(x*x + y*y + z*z)
	if r == 0 {
		return 0, 0, 0
	}
	cos := z / r
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	theta = math.Acos(cos)
	phi = math.Atan2(y, x)
	return r, theta, phi
}
