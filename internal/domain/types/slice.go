package types

import "fmt"

// Plane names the constant axis of a planar slice.
type Plane string

const (
	PlaneX    Plane = "x"
	PlaneY    Plane = "y"
	PlaneZ    Plane = "z"
	PlaneNone Plane = "none" // plane-independent modes only
)

// ParsePlane maps a CLI spelling onto a Plane. "auto" is resolved by the
// caller before a SliceSpec is built, so it is not accepted here.
func ParsePlane(s string) (Plane, error) {
	switch Plane(s) {
	case PlaneX, PlaneY, PlaneZ, PlaneNone:
		return Plane(s), nil
	}
	return "", fmt.Errorf("unknown plane %q", s)
}

// Range is a closed interval on an axis, in units of the Bohr radius.
type Range struct {
	Min float64
	Max float64
}

// Width returns Max - Min.
func (r Range) Width() float64 { return r.Max - r.Min }

// SliceSpec fixes the geometry of one sampling pass: the slice plane, its
// constant coordinate, the axis range, and the per-axis sample count.
// Value and Range are in units of the Bohr radius.
type SliceSpec struct {
	Plane  Plane
	Value  float64
	Range  Range
	Points int
}

// Validate checks the spec against mode requirements before any evaluation.
func (s SliceSpec) Validate(mode FieldMode) error {
	if s.Points < 2 {
		return &InvalidSliceSpecError{
			Reason: fmt.Sprintf("resolution must be at least 2 points, got %d", s.Points),
		}
	}
	if s.Range.Min >= s.Range.Max {
		return &InvalidSliceSpecError{
			Reason: fmt.Sprintf("range min must be below max, got [%g, %g]", s.Range.Min, s.Range.Max),
		}
	}
	if mode.Planar() {
		if s.Plane == PlaneNone {
			return &InvalidSliceSpecError{
				Reason: fmt.Sprintf("mode %s requires a slice plane (x, y, or z)", mode),
			}
		}
		return nil
	}
	if s.Plane != PlaneNone {
		return &InvalidSliceSpecError{
			Reason: fmt.Sprintf("mode %s is plane-independent; a %s plane cannot apply", mode, s.Plane),
		}
	}
	if s.Value != 0 {
		return &InvalidSliceSpecError{
			Reason: fmt.Sprintf("mode %s is plane-independent; a plane value cannot apply", mode),
		}
	}
	if mode == ModeRadialDistribution && s.Range.Min < 0 {
		return &InvalidSliceSpecError{
			Reason: fmt.Sprintf("radial range cannot start below zero, got %g", s.Range.Min),
		}
	}
	return nil
}
