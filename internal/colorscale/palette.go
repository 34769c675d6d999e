package colorscale

import (
	"image/color"

	"gonum.org/v1/plot/palette"

	"horbital/internal/domain/types"
)

// PaletteAdapter exposes a finished ColorMapping as a gonum/plot
// palette.ColorMap, so heatmaps and colorbars consume the exact colour
// policy the mapping was built with. At takes raw field values.
type PaletteAdapter struct {
	cmap  Colormap
	norm  normalizer
	sign  bool
	min   float64
	max   float64
	alpha float64
}

// NewPalette builds the adapter for a mapping. Density-family mappings get
// the sequential half-ramp; signed mappings span the full map.
func NewPalette(m *types.ColorMapping) (*PaletteAdapter, error) {
	cmap, err := Lookup(m.Colormap)
	if err != nil {
		return nil, err
	}

	var norm normalizer
	if m.Signed {
		if m.Scale == types.ScaleSymlog {
			norm = symlogSigned{vlim: m.VMax, linthresh: m.Linthresh}
		} else {
			norm = linearSigned{vlim: m.VMax}
		}
	} else {
		cmap = cmap.SequentialRamp()
		if m.Scale == types.ScaleLog {
			norm = logUnsigned{vmin: m.VMin, vmax: m.VMax}
		} else {
			norm = linearUnsigned{vmax: m.VMax}
		}
	}

	return &PaletteAdapter{
		cmap:  cmap,
		norm:  norm,
		sign:  m.Signed,
		min:   m.VMin,
		max:   m.VMax,
		alpha: 1,
	}, nil
}

// At returns the colour for a raw field value.
func (p *PaletteAdapter) At(v float64) (color.Color, error) {
	t := p.norm.normalize(v)
	if p.sign {
		t = (t + 1) / 2
	}
	return p.cmap.At(t), nil
}

// Max returns the upper bound of the mapped range.
func (p *PaletteAdapter) Max() float64 { return p.max }

// SetMax adjusts the upper bound. The normalizer keeps its tuned shape; the
// bound only affects colorbar extents.
func (p *PaletteAdapter) SetMax(v float64) { p.max = v }

// Min returns the lower bound of the mapped range.
func (p *PaletteAdapter) Min() float64 { return p.min }

// SetMin adjusts the lower bound.
func (p *PaletteAdapter) SetMin(v float64) { p.min = v }

// Alpha returns the opacity applied by Palette.
func (p *PaletteAdapter) Alpha() float64 { return p.alpha }

// SetAlpha sets the opacity applied by Palette.
func (p *PaletteAdapter) SetAlpha(a float64) { p.alpha = a }

// IntensityPalette samples the colormap uniformly into n colours over the
// normalized intensity axis, for renderers that draw already-normalized
// values. The scale nonlinearity is baked into the intensities, so the
// palette itself stays uniform.
func (p *PaletteAdapter) IntensityPalette(n int) palette.Palette {
	if n < 2 {
		n = 2
	}
	colors := make([]color.Color, n)
	for i := range colors {
		colors[i] = p.cmap.At(float64(i) / float64(n-1))
	}
	return uniformPalette(colors)
}

// Palette samples the map into n discrete colours spanning [Min, Max].
func (p *PaletteAdapter) Palette(n int) palette.Palette {
	if n < 2 {
		n = 2
	}
	colors := make([]color.Color, n)
	for i := range colors {
		v := p.min + (p.max-p.min)*float64(i)/float64(n-1)
		colors[i], _ = p.At(v)
	}
	return uniformPalette(colors)
}

type uniformPalette []color.Color

func (u uniformPalette) Colors() []color.Color { return u }

var _ palette.ColorMap = (*PaletteAdapter)(nil)
