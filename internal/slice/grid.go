package slice

import (
	"gonum.org/v1/gonum/floats"

	"horbital/internal/domain/types"
)

// axis returns n evenly spaced samples across the range, endpoints included.
func axis(r types.Range, n int) []float64 {
	return floats.Span(make([]float64, n), r.Min, r.Max)
}

// planeAxes names the free axes of a slice plane in display order.
func planeAxes(p types.Plane) (uLabel, vLabel string) {
	switch p {
	case types.PlaneX:
		return "Y", "Z"
	case types.PlaneY:
		return "X", "Z"
	default:
		return "X", "Y"
	}
}

// planePoint maps grid coordinates (u, v) and the plane's constant
// coordinate onto a cartesian point, all in units of a0.
func planePoint(p types.Plane, u, v, value float64) (x, y, z float64) {
	switch p {
	case types.PlaneX:
		return value, u, v
	case types.PlaneY:
		return u, value, v
	default:
		return u, v, value
	}
}
