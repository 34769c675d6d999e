// Package output derives deterministic artifact names from plot inputs.
package output

import (
	"fmt"
	"strconv"
	"strings"

	"horbital/internal/domain/types"
)

// Format names a supported export encoding. The rendering backend maps it
// onto the matching file writer.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
)

// ParseFormat maps a CLI spelling onto a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPNG, FormatSVG, FormatPDF:
		return Format(s), nil
	}
	return "", fmt.Errorf("unknown output format %q (have png, svg, pdf)", s)
}

// Name builds the default output file name:
//
//	orbital_n{n}_l{l}_m{m}_{mode}_{plane}{value}.{ext}
//
// The value token encodes signs and decimals safely for file systems:
// "-" becomes "m" and "." becomes "p", so z=-1.5 yields "zm1p5".
// Plane-independent modes use the tokens "r" and "angles" with value 0.
func Name(qn types.QuantumNumbers, mode types.FieldMode, plane types.Plane, value float64, format Format) string {
	return fmt.Sprintf("orbital_n%d_l%d_m%d_%s_%s%s.%s",
		qn.N, qn.L, qn.M, mode, planeToken(mode, plane), valueToken(value), format)
}

func planeToken(mode types.FieldMode, plane types.Plane) string {
	switch mode {
	case types.ModeRadialDistribution:
		return "r"
	case types.ModeSphericalHarmonic:
		return "angles"
	default:
		return string(plane)
	}
}

func valueToken(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	s = strings.ReplaceAll(s, "-", "m")
	s = strings.ReplaceAll(s, ".", "p")
	return s
}
