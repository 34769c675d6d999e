package colorscale_test

import (
	"errors"
	"image/color"
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"

	"horbital/internal/colorscale"
	"horbital/internal/domain/types"
)

func signedField(samples []float64) *types.Field {
	return &types.Field{
		Mode:    types.ModeReal,
		Plane:   types.PlaneZ,
		Range:   types.Range{Min: -1, Max: 1},
		Cols:    len(samples),
		Rows:    1,
		Samples: samples,
	}
}

func densityField(samples []float64) *types.Field {
	f := signedField(samples)
	f.Mode = types.ModeDensity
	return f
}

func TestPolicyFor_Rejections(t *testing.T) {
	cases := []struct {
		mode  types.FieldMode
		scale types.Scale
	}{
		{types.ModeReal, types.ScaleLog},
		{types.ModeImag, types.ScaleLog},
		{types.ModeRealImag, types.ScaleLog},
		{types.ModeSphericalHarmonic, types.ScaleLog},
		{types.ModeDensity, types.ScaleSymlog},
		{types.ModeRadialDistribution, types.ScaleSymlog},
	}
	for _, tc := range cases {
		_, err := colorscale.PolicyFor(tc.mode, tc.scale)
		var scaleErr *types.UnsupportedScaleError
		if !errors.As(err, &scaleErr) {
			t.Fatalf("%s + %s: want UnsupportedScaleError, got %v", tc.mode, tc.scale, err)
		}
	}
}

func TestPolicyFor_ValidCombinations(t *testing.T) {
	for _, mode := range []types.FieldMode{
		types.ModeDensity, types.ModeReal, types.ModeImag,
		types.ModeRealImag, types.ModeRadialDistribution, types.ModeSphericalHarmonic,
	} {
		if _, err := colorscale.PolicyFor(mode, types.ScaleLinear); err != nil {
			t.Fatalf("linear rejected for %s: %v", mode, err)
		}
		if _, err := colorscale.PolicyFor(mode, types.ScaleAuto); err != nil {
			t.Fatalf("auto rejected for %s: %v", mode, err)
		}
	}
}

func TestResolveScale(t *testing.T) {
	if got := colorscale.ResolveScale(types.ModeDensity, types.ScaleAuto); got != types.ScaleLog {
		t.Fatalf("auto density resolved to %s", got)
	}
	if got := colorscale.ResolveScale(types.ModeReal, types.ScaleAuto); got != types.ScaleSymlog {
		t.Fatalf("auto real resolved to %s", got)
	}
	if got := colorscale.ResolveScale(types.ModeReal, types.ScaleLinear); got != types.ScaleLinear {
		t.Fatalf("explicit scale rewritten to %s", got)
	}
}

func TestMap_LinearSigned(t *testing.T) {
	f := signedField([]float64{-4, -2, 0, 1, 2})
	m, err := colorscale.Map(f, "RdYlBu_r", types.ScaleLinear)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if m.VMin != -4 || m.VMax != 4 {
		t.Fatalf("signed limits not symmetric: [%g, %g]", m.VMin, m.VMax)
	}
	want := []float64{-1, -0.5, 0, 0.25, 0.5}
	for i, w := range want {
		if math.Abs(m.Intensity[i]-w) > 1e-12 {
			t.Fatalf("intensity[%d] = %g, want %g", i, m.Intensity[i], w)
		}
	}
}

func TestMap_LinearDensity(t *testing.T) {
	f := densityField([]float64{0, 1, 4})
	m, err := colorscale.Map(f, "RdYlBu_r", types.ScaleLinear)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	want := []float64{0, 0.25, 1}
	for i, w := range want {
		if math.Abs(m.Intensity[i]-w) > 1e-12 {
			t.Fatalf("intensity[%d] = %g, want %g", i, m.Intensity[i], w)
		}
	}
}

func TestMap_LogFloorsZero(t *testing.T) {
	f := densityField([]float64{0, 1e-30, 1e-3, 1})
	m, err := colorscale.Map(f, "YlOrRd", types.ScaleLog)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	for i, v := range m.Intensity {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			t.Fatalf("log intensity[%d] not finite: %g", i, v)
		}
		if v < 0 || v > 1 {
			t.Fatalf("log intensity[%d] out of range: %g", i, v)
		}
	}
	if m.Intensity[0] != 0 {
		t.Fatalf("zero sample mapped to %g, want 0", m.Intensity[0])
	}
	if m.Intensity[3] != 1 {
		t.Fatalf("peak mapped to %g, want 1", m.Intensity[3])
	}
}

func TestMap_SymlogOddAndMonotone(t *testing.T) {
	f := signedField([]float64{-10, -1, -1e-6, 0, 1e-6, 1, 10})
	m, err := colorscale.Map(f, "RdBu_r", types.ScaleSymlog)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	n := len(m.Intensity)
	for i := 0; i < n/2; i++ {
		if math.Abs(m.Intensity[i]+m.Intensity[n-1-i]) > 1e-12 {
			t.Fatalf("symlog not odd: %g vs %g", m.Intensity[i], m.Intensity[n-1-i])
		}
	}
	for i := 1; i < n; i++ {
		if m.Intensity[i] <= m.Intensity[i-1] {
			t.Fatalf("symlog not strictly increasing at %d: %g <= %g", i, m.Intensity[i], m.Intensity[i-1])
		}
	}
}

func TestMap_DualPanelSharedLimits(t *testing.T) {
	f := signedField([]float64{1, -2})
	f.Mode = types.ModeRealImag
	f.Second = []float64{-8, 3}
	m, err := colorscale.Map(f, "RdYlBu_r", types.ScaleLinear)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if m.VMax != 8 || m.VMin != -8 {
		t.Fatalf("shared limits [%g, %g], want [-8, 8]", m.VMin, m.VMax)
	}
	if m.Second == nil {
		t.Fatal("second panel intensities missing")
	}
}

func TestLookup_UnknownName(t *testing.T) {
	if _, err := colorscale.Lookup("no_such_map"); err == nil {
		t.Fatal("expected error for unknown colormap")
	}
}

func TestLookup_Presets(t *testing.T) {
	cm, err := colorscale.Lookup("sample")
	if err != nil || cm.Name() != "RdYlBu_r" {
		t.Fatalf("sample preset resolved to %q (%v)", cm.Name(), err)
	}
	cm, err = colorscale.Lookup("sample_density")
	if err != nil || cm.Name() != "YlOrRd" {
		t.Fatalf("sample_density preset resolved to %q (%v)", cm.Name(), err)
	}
}

func TestPalette_DensityZeroIsLightest(t *testing.T) {
	// viridis runs dark-to-light in its native order, RdYlBu_r is
	// diverging; the density ramp must put zero at the light end for both.
	for _, name := range []string{"RdYlBu_r", "viridis"} {
		f := densityField([]float64{0, 0.5, 1})
		m, err := colorscale.Map(f, name, types.ScaleLinear)
		if err != nil {
			t.Fatalf("%s: map: %v", name, err)
		}
		pal, err := colorscale.NewPalette(m)
		if err != nil {
			t.Fatalf("%s: palette: %v", name, err)
		}
		low, _ := pal.At(0)
		high, _ := pal.At(1)
		if labLuminance(low) <= labLuminance(high) {
			t.Fatalf("%s density ramp inverted: zero luminance %g vs peak %g",
				name, labLuminance(low), labLuminance(high))
		}
	}
}

func TestSequentialRamp_DarkensWithMagnitudeForAllMaps(t *testing.T) {
	for _, name := range colorscale.Names() {
		cm, err := colorscale.Lookup(name)
		if err != nil {
			t.Fatalf("%s: lookup: %v", name, err)
		}
		ramp := cm.SequentialRamp()
		prev := math.Inf(1)
		for i := 0; i <= 20; i++ {
			l := labLuminance(ramp.At(float64(i) / 20))
			if l > prev+1e-6 {
				t.Fatalf("%s density ramp brightens at t=%g: luminance %g after %g",
					name, float64(i)/20, l, prev)
			}
			prev = l
		}
	}
}

func labLuminance(c color.Color) float64 {
	cc, _ := colorful.MakeColor(c)
	l, _, _ := cc.Lab()
	return l
}

func TestPalette_SignedEndpointsDiffer(t *testing.T) {
	f := signedField([]float64{-1, 1})
	m, err := colorscale.Map(f, "RdBu_r", types.ScaleLinear)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	pal, err := colorscale.NewPalette(m)
	if err != nil {
		t.Fatalf("palette: %v", err)
	}
	neg, _ := pal.At(-1)
	pos, _ := pal.At(1)
	if neg == pos {
		t.Fatal("negative and positive extremes share a colour")
	}
}
