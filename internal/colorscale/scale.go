package colorscale

import "math"

// normalizer maps a raw value onto [0, 1] (unsigned) or [-1, 1] (signed).
type normalizer interface {
	normalize(v float64) float64
}

// linearUnsigned scales [0, vmax] onto [0, 1].
type linearUnsigned struct {
	vmax float64
}

func (n linearUnsigned) normalize(v float64) float64 {
	return clamp(v/n.vmax, 0, 1)
}

// linearSigned scales [-vlim, vlim] onto [-1, 1].
type linearSigned struct {
	vlim float64
}

func (n linearSigned) normalize(v float64) float64 {
	return clamp(v/n.vlim, -1, 1)
}

// logUnsigned scales [vmin, vmax] logarithmically onto [0, 1]. Values are
// floored at vmin before the logarithm so exact zeros stay finite.
type logUnsigned struct {
	vmin, vmax float64
}

func (n logUnsigned) normalize(v float64) float64 {
	if v < n.vmin {
		v = n.vmin
	}
	return clamp(math.Log(v/n.vmin)/math.Log(n.vmax/n.vmin), 0, 1)
}

// symlogSigned is linear inside +-linthresh and logarithmic beyond,
// symmetric about zero, mapping [-vlim, vlim] onto [-1, 1].
type symlogSigned struct {
	vlim, linthresh float64
}

func (n symlogSigned) normalize(v float64) float64 {
	scale := math.Log1p(n.vlim / n.linthresh)
	s := math.Copysign(math.Log1p(math.Abs(v)/n.linthresh)/scale, v)
	return clamp(s, -1, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
