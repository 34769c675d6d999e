// Package autoselect derives default slice parameters from the orbital's
// structure: a spatial extent from the radial function's effective support
// and a slice plane scored by how much field variation it exposes. Both are
// pure functions of (n, l, m, mode); the thresholds are tuned for readable
// plots, not physical contracts.
package autoselect

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"

	"horbital/internal/domain/types"
	"horbital/internal/orbital"
	"horbital/internal/slice"
)

const (
	// coverage is the cumulative radial probability captured by the
	// density-mode extent estimate.
	coverage = 0.99

	// scanSamples resolves the radial profile used for support estimation.
	scanSamples = 12000

	// scoreGridPoints is the coarse per-plane grid used for plane scoring.
	scoreGridPoints = 121
)

// Extent estimates a plotting half-range in units of a0.
//
// Density-family modes use the radius containing the coverage fraction of
// total radial probability; signed modes use the amplitude support, widened
// so the outermost radial node stays visible. The result grows with n and
// is clamped to a readable window.
func Extent(n, l int, mode types.FieldMode) float64 {
	rMax := 12 * float64(n*n) * orbital.BohrRadius
	r := make([]float64, scanSamples)
	radial := make([]float64, scanSamples)
	for i := range r {
		r[i] = rMax * float64(i) / float64(scanSamples-1)
		radial[i] = orbital.Radial(n, l, r[i])
	}

	var raw float64
	if mode.Signed() {
		raw = amplitudeExtent(r, radial)
	} else {
		raw = probabilityExtent(r, radial)
	}

	minExtent := 4.0
	var maxExtent float64
	if mode.Signed() {
		maxExtent = math.Max(10, (6+2*float64(l))*float64(n))
	} else {
		maxExtent = math.Max(10, 8*float64(n))
	}
	return math.Min(math.Max(raw, minExtent), maxExtent)
}

// probabilityExtent finds the radius of the coverage quantile of r^2 R^2.
func probabilityExtent(r, radial []float64) float64 {
	density := make([]float64, len(r))
	for i := range r {
		density[i] = r[i] * r[i] * radial[i] * radial[i]
	}
	total := integrate.Trapezoidal(r, density)
	if total <= 0 {
		return 6
	}
	target := coverage * total
	cum := 0.0
	idx := len(r) - 1
	for i := 1; i < len(r); i++ {
		cum += 0.5 * (density[i-1] + density[i]) * (r[i] - r[i-1])
		if cum >= target {
			idx = i
			break
		}
	}
	return 1.15 * r[idx] / orbital.BohrRadius
}

// amplitudeExtent keeps the region where |R| is still visually relevant and
// widens it so the outermost sign change (radial node) is inside the frame.
func amplitudeExtent(r, radial []float64) float64 {
	peak := 0.0
	for _, v := range radial {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	if peak <= 0 {
		return 6
	}

	cutoff := peak * 2e-3
	support := 4 * orbital.BohrRadius
	for i := len(radial) - 1; i >= 0; i-- {
		if math.Abs(radial[i]) >= cutoff {
			support = r[i]
			break
		}
	}

	lastNode := 0.0
	for i := 1; i < len(radial); i++ {
		if radial[i-1]*radial[i] < 0 {
			lastNode = r[i]
		}
	}
	if lastNode > 0 {
		return math.Max(1.25*support, 1.8*lastNode) / orbital.BohrRadius
	}
	return 1.25 * support / orbital.BohrRadius
}

// PlaneAndValue picks the central plane that exposes the most structure for
// the mode, scoring each candidate on a coarse grid by a robust peak plus
// spread. Candidates are tried in z, x, y order so z wins ties, which keeps
// m = 0 states on the conventional x-y view. The value is always 0.
func PlaneAndValue(qn types.QuantumNumbers, mode types.FieldMode, extent float64) (types.Plane, float64) {
	scoreMode := mode
	if !mode.Planar() {
		// Plane-independent modes never reach here, but score something
		// sensible if asked.
		scoreMode = types.ModeDensity
	}

	best := types.PlaneZ
	bestScore := -1.0
	for _, plane := range []types.Plane{types.PlaneZ, types.PlaneX, types.PlaneY} {
		spec := types.SliceSpec{
			Plane:  plane,
			Value:  0,
			Range:  types.Range{Min: -extent, Max: extent},
			Points: scoreGridPoints,
		}
		f, err := slice.Sample(qn, scoreMode, spec)
		if err != nil {
			continue
		}
		if s := planeScore(f); s > bestScore {
			bestScore = s
			best = plane
		}
	}
	return best, 0
}

// planeScore is p99.5 of |field| plus the standard deviation, which rewards
// both strong lobes and spatial variation while ignoring lone extremes.
func planeScore(f *types.Field) float64 {
	abs := make([]float64, 0, len(f.Samples))
	for i, v := range f.Samples {
		if f.Second != nil {
			v = math.Hypot(v, f.Second[i])
		}
		abs = append(abs, math.Abs(v))
	}
	sort.Float64s(abs)
	peak := stat.Quantile(0.995, stat.Empirical, abs, nil)
	spread := stat.StdDev(abs, nil)
	return peak + spread
}
