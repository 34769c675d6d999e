package render

import "horbital/internal/domain/types"

// fieldGrid adapts a Field (or one of its panels) to plotter.GridXYZ.
// The value slice is chosen by the caller: raw samples for contour lines,
// normalized intensities for filled surfaces.
type fieldGrid struct {
	f    *types.Field
	vals []float64
}

func (g fieldGrid) Dims() (c, r int) { return g.f.Cols, g.f.Rows }

func (g fieldGrid) X(c int) float64 { return g.f.U[c] }

func (g fieldGrid) Y(r int) float64 { return g.f.V[r] }

func (g fieldGrid) Z(c, r int) float64 { return g.vals[r*g.f.Cols+c] }
