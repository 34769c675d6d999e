package colorscale

import (
	"math"

	"horbital/internal/domain/types"
)

// Map normalizes a Field's samples under the scale policy and colormap.
// Dual-panel fields share one set of limits so both panels are comparable.
// The Field itself is never mutated.
func Map(f *types.Field, cmapName string, scale types.Scale) (*types.ColorMapping, error) {
	policy, err := PolicyFor(f.Mode, scale)
	if err != nil {
		return nil, err
	}
	cmap, err := Lookup(cmapName)
	if err != nil {
		return nil, err
	}

	m := &types.ColorMapping{
		Colormap: cmap.Name(),
		Scale:    policy.Scale,
		Signed:   policy.Signed,
	}

	if policy.Signed {
		vlim := peakAbs(f)
		m.VMin, m.VMax = -vlim, vlim
		var norm normalizer
		if policy.Scale == types.ScaleSymlog {
			m.Linthresh = math.Max(vlim*1e-3, 1e-16)
			norm = symlogSigned{vlim: vlim, linthresh: m.Linthresh}
		} else {
			norm = linearSigned{vlim: vlim}
		}
		m.Intensity = normalizeAll(f.Samples, norm)
		if f.Second != nil {
			m.Second = normalizeAll(f.Second, norm)
		}
		return m, nil
	}

	vmax := maxSample(f.Samples)
	m.VMin, m.VMax = 0, vmax
	var norm normalizer
	if policy.Scale == types.ScaleLog {
		vmin := positiveFloor(f.Samples, vmax)
		m.VMin = vmin
		norm = logUnsigned{vmin: vmin, vmax: vmax}
	} else {
		norm = linearUnsigned{vmax: vmax}
	}
	m.Intensity = normalizeAll(f.Samples, norm)
	return m, nil
}

func normalizeAll(samples []float64, norm normalizer) []float64 {
	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = norm.normalize(v)
	}
	return out
}

// peakAbs returns the largest magnitude across both panels, or 1 for an
// all-zero field so the mapping stays defined.
func peakAbs(f *types.Field) float64 {
	peak := 0.0
	for _, v := range f.Samples {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	for _, v := range f.Second {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		return 1
	}
	return peak
}

func maxSample(samples []float64) float64 {
	vmax := 0.0
	for _, v := range samples {
		if v > vmax {
			vmax = v
		}
	}
	if vmax == 0 {
		return 1
	}
	return vmax
}

// positiveFloor is the smallest positive sample, bounded below at
// vmax * 1e-7 so a stray denormal cannot stretch the log range.
func positiveFloor(samples []float64, vmax float64) float64 {
	floor := math.Inf(1)
	for _, v := range samples {
		if v > 0 && v < floor {
			floor = v
		}
	}
	if math.IsInf(floor, 1) {
		return vmax * 1e-7
	}
	return math.Max(floor, vmax*1e-7)
}
