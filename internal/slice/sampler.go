package slice

import (
	"fmt"
	"math"

	"horbital/internal/domain/types"
	"horbital/internal/orbital"
)

// Sample evaluates the requested field mode over the slice geometry and
// returns the finished Field. All validation happens before the first
// evaluation; a returned Field is complete and read-only.
func Sample(qn types.QuantumNumbers, mode types.FieldMode, spec types.SliceSpec) (*types.Field, error) {
	if err := spec.Validate(mode); err != nil {
		return nil, err
	}
	o := orbital.New(qn)
	switch mode {
	case types.ModeDensity, types.ModeReal, types.ModeImag, types.ModeRealImag:
		return samplePlane(o, mode, spec), nil
	case types.ModeRadialDistribution:
		return sampleRadial(o, spec), nil
	case types.ModeSphericalHarmonic:
		return sampleHarmonic(o, spec), nil
	}
	panic(fmt.Sprintf("unhandled field mode %d", int(mode)))
}

func samplePlane(o orbital.Orbital, mode types.FieldMode, spec types.SliceSpec) *types.Field {
	n := spec.Points
	u := axis(spec.Range, n)
	v := axis(spec.Range, n)
	uLabel, vLabel := planeAxes(spec.Plane)

	f := &types.Field{
		Mode:   mode,
		Plane:  spec.Plane,
		Value:  spec.Value,
		Range:  spec.Range,
		Cols:   n,
		Rows:   n,
		U:      u,
		V:      v,
		ULabel: uLabel,
		VLabel: vLabel,
	}
	f.Samples = make([]float64, n*n)
	if mode == types.ModeRealImag {
		f.Second = make([]float64, n*n)
	}

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			x, y, z := planePoint(spec.Plane, u[col], v[row], spec.Value)
			psi := o.PsiCartesian(x*orbital.BohrRadius, y*orbital.BohrRadius, z*orbital.BohrRadius)
			i := row*n + col
			switch mode {
			case types.ModeDensity:
				f.Samples[i] = real(psi)*real(psi) + imag(psi)*imag(psi)
			case types.ModeReal:
				f.Samples[i] = real(psi)
			case types.ModeImag:
				f.Samples[i] = imag(psi)
			case types.ModeRealImag:
				f.Samples[i] = real(psi)
				f.Second[i] = imag(psi)
			}
		}
	}
	return f
}

func sampleRadial(o orbital.Orbital, spec types.SliceSpec) *types.Field {
	n := spec.Points
	r := axis(spec.Range, n)

	f := &types.Field{
		Mode:    types.ModeRadialDistribution,
		Plane:   types.PlaneNone,
		Range:   spec.Range,
		Cols:    n,
		Rows:    1,
		U:       r,
		ULabel:  "r / a0",
		VLabel:  "r^2 |R(r)|^2",
		Samples: make([]float64, n),
	}
	for i, ra := range r {
		f.Samples[i] = o.RadialDistribution(ra * orbital.BohrRadius)
	}
	return f
}

func sampleHarmonic(o orbital.Orbital, spec types.SliceSpec) *types.Field {
	// The angle box is fixed by the harmonic's natural domain; spec.Range
	// plays no role here beyond having been validated.
	n := spec.Points
	phi := axis(types.Range{Min: -math.Pi, Max: math.Pi}, n)
	theta := axis(types.Range{Min: 0, Max: math.Pi}, n)

	f := &types.Field{
		Mode:   types.ModeSphericalHarmonic,
		Plane:  types.PlaneNone,
		Range:  types.Range{Min: -1, Max: 1}, // axes are plotted in units of pi
		Cols:   n,
		Rows:   n,
		U:      scaleByPi(phi),
		V:      scaleByPi(theta),
		ULabel: "phi / pi",
		VLabel: "theta / pi",
	}
	f.Samples = make([]float64, n*n)
	f.Second = make([]float64, n*n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			y := o.Harmonic(theta[row], phi[col])
			i := row*n + col
			f.Samples[i] = real(y)
			f.Second[i] = imag(y)
		}
	}
	return f
}

func scaleByPi(vals []float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = v / math.Pi
	}
	return out
}
