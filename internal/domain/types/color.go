package types

import (
	"fmt"
	"image/color"
)

// Scale names a colour scaling policy.
type Scale string

const (
	ScaleAuto   Scale = "auto" // resolved to log or symlog before mapping
	ScaleLinear Scale = "linear"
	ScaleLog    Scale = "log"
	ScaleSymlog Scale = "symlog"
)

// ParseScale maps a CLI spelling onto a Scale.
func ParseScale(s string) (Scale, error) {
	switch Scale(s) {
	case ScaleAuto, ScaleLinear, ScaleLog, ScaleSymlog:
		return Scale(s), nil
	}
	return "", fmt.Errorf("unknown scale %q", s)
}

// ColorMapping is a Field's samples normalized to renderable intensities.
// Unsigned fields map onto [0, 1]; signed fields onto [-1, 1] with zero at
// the midpoint. Derived deterministically; never mutates the Field.
type ColorMapping struct {
	Colormap string
	Scale    Scale
	Signed   bool

	// VMin and VMax bound the raw values covered by the mapping. For signed
	// fields they are symmetric about zero. Linthresh is the linear window
	// half-width for symlog and zero otherwise.
	VMin      float64
	VMax      float64
	Linthresh float64

	Intensity []float64 // same layout as Field.Samples
	Second    []float64 // second panel, nil unless the Field has one
}

// ContourLevel is one line of a line-mode rendering: its field value, dash
// style, and colour.
type ContourLevel struct {
	Level  float64
	Dashed bool
	Color  color.Color
}

// RenderRequest carries everything the rendering backend needs to produce a
// single figure.
type RenderRequest struct {
	Field    *Field
	Mapping  *ColorMapping
	Contours []ContourLevel // non-empty in line mode only

	LineMode bool
	Nodal    bool
	Colorbar bool

	Title  string
	Output string
}
