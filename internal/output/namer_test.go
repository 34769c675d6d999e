package output_test

import (
	"testing"

	"horbital/internal/domain/types"
	"horbital/internal/output"
)

func TestName_Golden(t *testing.T) {
	qn := types.QuantumNumbers{N: 2, L: 1, M: 0}
	got := output.Name(qn, types.ModeReal, types.PlaneZ, 0, output.FormatPNG)
	want := "orbital_n2_l1_m0_real_z0p0.png"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestName_ValueEncoding(t *testing.T) {
	qn := types.QuantumNumbers{N: 3, L: 2, M: -1}
	cases := []struct {
		value float64
		want  string
	}{
		{0, "orbital_n3_l2_m-1_density_x0p0.png"},
		{1.5, "orbital_n3_l2_m-1_density_x1p5.png"},
		{-2, "orbital_n3_l2_m-1_density_xm2p0.png"},
		{-0.25, "orbital_n3_l2_m-1_density_xm0p25.png"},
	}
	for _, tc := range cases {
		got := output.Name(qn, types.ModeDensity, types.PlaneX, tc.value, output.FormatPNG)
		if got != tc.want {
			t.Fatalf("value %g: got %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestName_PlaneIndependentModes(t *testing.T) {
	qn := types.QuantumNumbers{N: 3, L: 1, M: 0}
	got := output.Name(qn, types.ModeRadialDistribution, types.PlaneNone, 0, output.FormatSVG)
	if got != "orbital_n3_l1_m0_radial_distribution_r0p0.svg" {
		t.Fatalf("radial name %q", got)
	}
	got = output.Name(qn, types.ModeSphericalHarmonic, types.PlaneNone, 0, output.FormatPDF)
	if got != "orbital_n3_l1_m0_spherical_harmonic_angles0p0.pdf" {
		t.Fatalf("spherical name %q", got)
	}
}

func TestName_Deterministic(t *testing.T) {
	qn := types.QuantumNumbers{N: 4, L: 2, M: 2}
	a := output.Name(qn, types.ModeImag, types.PlaneY, -3.5, output.FormatPNG)
	b := output.Name(qn, types.ModeImag, types.PlaneY, -3.5, output.FormatPNG)
	if a != b {
		t.Fatalf("name not deterministic: %q vs %q", a, b)
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"png", "svg", "pdf"} {
		if _, err := output.ParseFormat(s); err != nil {
			t.Fatalf("format %q rejected: %v", s, err)
		}
	}
	if _, err := output.ParseFormat("bmp"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
