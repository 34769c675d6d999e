// Package contour derives line-mode contour sets from a sampled field.
//
// Line mode draws a small ordered family of level lines instead of a filled
// surface: solid positive levels and dashed negative levels for signed
// fields, solid levels only for density-family fields. Line colours come
// from the colormap's extremes so a line's colour does not depend on its
// exact level.
package contour

import (
	"fmt"

	"horbital/internal/colorscale"
	"horbital/internal/domain/types"
)

// levelCount is the number of magnitude levels per sign.
const levelCount = 8

// levelFloor is the fraction of the peak magnitude where levels start;
// levels below it would hug the background and add noise.
const levelFloor = 0.12

// Check validates the line-mode option set before any evaluation. Line mode
// excludes the nodal overlay, and symlog line levels are undefined for
// density-family fields.
func Check(mode types.FieldMode, scale types.Scale, lineMode, nodal bool) error {
	if !lineMode {
		return nil
	}
	if nodal {
		return &types.ConflictingOptionError{
			Options: [2]string{"line mode", "nodal overlay"},
			Reason:  "contour lines already trace the field structure; disable one of the two",
		}
	}
	if !mode.Signed() && colorscale.ResolveScale(mode, scale) == types.ScaleSymlog {
		return &types.UnsupportedScaleError{
			Scale: types.ScaleSymlog, Mode: mode,
			Reason: "symlog line levels are undefined for non-negative fields",
		}
	}
	return nil
}

// Levels derives the ordered contour set for a field and its colour
// mapping. Signed fields produce solid positive and dashed negative lines
// at mirrored levels; density-family fields produce solid lines only.
func Levels(f *types.Field, m *types.ColorMapping) ([]types.ContourLevel, error) {
	pal, err := colorscale.NewPalette(m)
	if err != nil {
		return nil, err
	}
	peak := m.VMax
	if peak <= 0 {
		return nil, fmt.Errorf("cannot derive contour levels: field peak is %g", peak)
	}

	lo := levelFloor * peak
	step := (peak - lo) / float64(levelCount-1)

	if !m.Signed {
		dark, _ := pal.At(m.VMax)
		out := make([]types.ContourLevel, 0, levelCount)
		for i := 0; i < levelCount; i++ {
			out = append(out, types.ContourLevel{
				Level: lo + float64(i)*step,
				Color: dark,
			})
		}
		return out, nil
	}

	posColor, _ := pal.At(m.VMax)
	negColor, _ := pal.At(m.VMin)
	out := make([]types.ContourLevel, 0, 2*levelCount)
	for i := levelCount - 1; i >= 0; i-- {
		out = append(out, types.ContourLevel{
			Level:  -(lo + float64(i)*step),
			Dashed: true,
			Color:  negColor,
		})
	}
	for i := 0; i < levelCount; i++ {
		out = append(out, types.ContourLevel{
			Level: lo + float64(i)*step,
			Color: posColor,
		})
	}
	return out, nil
}
