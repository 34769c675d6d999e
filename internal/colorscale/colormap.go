package colorscale

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Colormap is a named sequence of control colours interpolated in Lab
// space, spanning t in [0, 1].
type Colormap struct {
	name  string
	stops []colorful.Color
}

// DefaultName is the colormap used when none is configured.
const DefaultName = "RdYlBu_r"

var registry = map[string][]colorful.Color{
	"RdYlBu_r":   reversed(hexStops("#a50026", "#d73027", "#f46d43", "#fdae61", "#fee090", "#ffffbf", "#e0f3f8", "#abd9e9", "#74add1", "#4575b4", "#313695")),
	"RdBu_r":     reversed(hexStops("#67001f", "#b2182b", "#d6604d", "#f4a582", "#fddbc7", "#f7f7f7", "#d1e5f0", "#92c5de", "#4393c3", "#2166ac", "#053061")),
	"Spectral_r": reversed(hexStops("#9e0142", "#d53e4f", "#f46d43", "#fdae61", "#fee08b", "#ffffbf", "#e6f598", "#abdda4", "#66c2a5", "#3288bd", "#5e4fa2")),
	"coolwarm":   hexStops("#3b4cc0", "#8db0fe", "#dddddd", "#f49a7b", "#b40426"),
	"seismic":    hexStops("#00004c", "#0000ff", "#ffffff", "#ff0000", "#7f0000"),
	"bwr":        hexStops("#0000ff", "#ffffff", "#ff0000"),
	"PiYG":       hexStops("#8e0152", "#c51b7d", "#de77ae", "#f1b6da", "#fde0ef", "#f7f7f7", "#e6f5d0", "#b8e186", "#7fbc41", "#4d9221", "#276419"),
	"viridis":    hexStops("#440154", "#46327e", "#365c8d", "#277f8e", "#1fa187", "#4ac16d", "#a0da39", "#fde725"),
	"plasma":     hexStops("#0d0887", "#6a00a8", "#b12a90", "#e16462", "#fca636", "#f0f921"),
	"magma":      hexStops("#000004", "#3b0f70", "#8c2981", "#de4968", "#fe9f6d", "#fcfdbf"),
	"cividis":    hexStops("#00224e", "#35456c", "#666970", "#948e77", "#c8b866", "#fee838"),
	"YlOrRd":     hexStops("#ffffcc", "#ffeda0", "#fed976", "#feb24c", "#fd8d3c", "#fc4e2a", "#e31a1c", "#bd0026", "#800026"),
}

// Lookup resolves a colormap name or preset. Presets: "sample" is the
// diverging default, "sample_density" the warm sequential map.
func Lookup(name string) (Colormap, error) {
	switch name {
	case "", "sample":
		name = DefaultName
	case "sample_density":
		name = "YlOrRd"
	}
	stops, ok := registry[name]
	if !ok {
		return Colormap{}, fmt.Errorf("unknown colormap %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return Colormap{name: name, stops: stops}, nil
}

// Names lists the registered colormap names in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Name returns the registered name of the map.
func (c Colormap) Name() string { return c.name }

// At returns the colour at position t in [0, 1]; t is clamped.
func (c Colormap) At(t float64) color.Color {
	if t <= 0 {
		return c.stops[0].Clamped()
	}
	if t >= 1 {
		return c.stops[len(c.stops)-1].Clamped()
	}
	scaled := t * float64(len(c.stops)-1)
	i := int(scaled)
	frac := scaled - float64(i)
	return c.stops[i].BlendLab(c.stops[i+1], frac).Clamped()
}

// SequentialRamp derives the density ramp: lightest colour at t=0 (zero
// magnitude) darkening toward t=1 (peak). Diverging maps, recognized by a
// midpoint lighter than both endpoints, contribute their upper half with
// the midpoint at t=0. Sequential maps keep all stops, reversed when the
// map runs dark-to-light so the light endpoint still sits at zero.
func (c Colormap) SequentialRamp() Colormap {
	first, _ := colorful.MakeColor(c.At(0))
	mid, _ := colorful.MakeColor(c.At(0.5))
	last, _ := colorful.MakeColor(c.At(1))

	if luminance(mid) > luminance(first) && luminance(mid) > luminance(last) {
		stops := make([]colorful.Color, 0, (len(c.stops)+1)/2)
		for i := len(c.stops) / 2; i < len(c.stops); i++ {
			stops = append(stops, c.stops[i])
		}
		if len(stops) < 2 {
			stops = append(stops, c.stops[len(c.stops)-1])
		}
		return Colormap{name: c.name, stops: stops}
	}
	if luminance(last) > luminance(first) {
		return Colormap{name: c.name, stops: reversed(c.stops)}
	}
	return c
}

func luminance(c colorful.Color) float64 {
	l, _, _ := c.Lab()
	return l
}

func hexStops(hexes ...string) []colorful.Color {
	out := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("bad colormap stop %q: %v", h, err))
		}
		out[i] = c
	}
	return out
}

func reversed(stops []colorful.Color) []colorful.Color {
	out := make([]colorful.Color, len(stops))
	for i, c := range stops {
		out[len(stops)-1-i] = c
	}
	return out
}
