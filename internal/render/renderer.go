package render

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"horbital/internal/colorscale"
	"horbital/internal/domain/interfaces"
	"horbital/internal/domain/types"
)

const (
	panelSize = 15 * vg.Centimeter
	panelGap  = 6 * vg.Millimeter
	barHeight = 22 * vg.Millimeter
)

var (
	lineWidth  = vg.Points(1.2)
	nodalWidth = vg.Points(0.9)
)

var nodalGray = color.Gray{Y: 0xa8}

// Plot renders requests with gonum/plot. The output encoding follows the
// request's file extension.
type Plot struct{}

// New returns the gonum/plot backed renderer.
func New() *Plot { return &Plot{} }

// Render draws the request into its output file.
func (p *Plot) Render(req types.RenderRequest) error {
	switch req.Field.Mode {
	case types.ModeRadialDistribution:
		return p.renderRadial(req)
	case types.ModeRealImag, types.ModeSphericalHarmonic:
		return p.renderDual(req)
	case types.ModeDensity, types.ModeReal, types.ModeImag:
		return p.renderSingle(req)
	}
	panic(fmt.Sprintf("unhandled field mode %d", int(req.Field.Mode)))
}

func (p *Plot) renderSingle(req types.RenderRequest) error {
	panel, err := buildPanel(req, req.Field.Samples, req.Mapping.Intensity)
	if err != nil {
		return err
	}
	panel.Title.Text = req.Title
	return p.write(req, []*plot.Plot{panel})
}

func (p *Plot) renderDual(req types.RenderRequest) error {
	left, err := buildPanel(req, req.Field.Samples, req.Mapping.Intensity)
	if err != nil {
		return err
	}
	right, err := buildPanel(req, req.Field.Second, req.Mapping.Second)
	if err != nil {
		return err
	}
	if req.Field.Mode == types.ModeSphericalHarmonic {
		left.Title.Text = req.Title + "\nRe(Y)"
		right.Title.Text = req.Title + "\nIm(Y)"
	} else {
		left.Title.Text = req.Title + "\nReal Part"
		right.Title.Text = req.Title + "\nImaginary Part"
	}
	return p.write(req, []*plot.Plot{left, right})
}

func (p *Plot) renderRadial(req types.RenderRequest) error {
	f := req.Field
	pts := make(plotter.XYs, 0, f.Cols)
	for i, r := range f.U {
		pts = append(pts, plotter.XY{X: r, Y: f.Samples[i]})
	}

	pl := plot.New()
	pl.Title.Text = req.Title
	pl.X.Label.Text = f.ULabel
	pl.Y.Label.Text = f.VLabel

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("radial line: %w", err)
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0x1f, G: 0x4e, B: 0x79, A: 0xff}
	pl.Add(plotter.NewGrid(), line)

	return p.write(req, []*plot.Plot{pl})
}

// buildPanel draws one panel: a filled intensity surface (with optional
// nodal overlay) or, in line mode, the derived contour set over the raw
// samples.
func buildPanel(req types.RenderRequest, raw, intensity []float64) (*plot.Plot, error) {
	f := req.Field
	pl := plot.New()
	pl.X.Label.Text = f.ULabel
	pl.Y.Label.Text = f.VLabel
	pl.Add(plotter.NewGrid())

	if req.LineMode {
		for _, lv := range req.Contours {
			c := plotter.NewContour(fieldGrid{f: f, vals: raw}, []float64{lv.Level}, singleColor{lv.Color})
			style := draw.LineStyle{Color: lv.Color, Width: lineWidth}
			if lv.Dashed {
				style.Dashes = []vg.Length{vg.Points(6), vg.Points(2)}
			}
			c.LineStyles = []draw.LineStyle{style}
			pl.Add(c)
		}
		return pl, nil
	}

	pal, err := colorscale.NewPalette(req.Mapping)
	if err != nil {
		return nil, err
	}
	hm := plotter.NewHeatMap(fieldGrid{f: f, vals: intensity}, pal.IntensityPalette(255))
	if req.Mapping.Signed {
		hm.Min, hm.Max = -1, 1
	} else {
		hm.Min, hm.Max = 0, 1
	}
	pl.Add(hm)

	if req.Nodal && req.Mapping.Signed {
		nodal := plotter.NewContour(fieldGrid{f: f, vals: raw}, []float64{0}, singleColor{nodalGray})
		nodal.LineStyles = []draw.LineStyle{{Color: nodalGray, Width: nodalWidth}}
		pl.Add(nodal)
	}
	return pl, nil
}

// write lays the panels out in one row, reserves a bottom band for the
// colorbar when requested, and encodes the canvas by file extension.
func (p *Plot) write(req types.RenderRequest, panels []*plot.Plot) error {
	width := panelSize*vg.Length(len(panels)) + panelGap*vg.Length(len(panels)-1)
	height := panelSize
	if req.Colorbar {
		height += barHeight
	}

	canvas, err := newCanvas(req.Output, width, height)
	if err != nil {
		return err
	}
	dc := draw.New(canvas)

	plotArea := dc
	if req.Colorbar {
		plotArea = draw.Crop(dc, 0, 0, barHeight, 0)
		barArea := draw.Crop(dc, 0, 0, 0, barHeight-height)
		bar, err := colorbarPlot(req.Mapping)
		if err != nil {
			return err
		}
		bar.Draw(barArea)
	}

	tiles := draw.Tiles{
		Rows: 1,
		Cols: len(panels),
		PadX: panelGap,
	}
	aligned := plot.Align([][]*plot.Plot{panels}, tiles, plotArea)
	for i, panel := range panels {
		panel.Draw(aligned[0][i])
	}

	out, err := os.Create(req.Output)
	if err != nil {
		return fmt.Errorf("create %s: %w", req.Output, err)
	}
	if _, err := canvas.WriteTo(out); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", req.Output, err)
	}
	return out.Close()
}

// colorbarPlot wraps the mapping's palette adapter in a horizontal bar.
func colorbarPlot(m *types.ColorMapping) (*plot.Plot, error) {
	pal, err := colorscale.NewPalette(m)
	if err != nil {
		return nil, err
	}
	pl := plot.New()
	pl.HideY()
	pl.X.Padding = 0
	pl.Add(&plotter.ColorBar{ColorMap: pal})
	return pl, nil
}

func newCanvas(path string, w, h vg.Length) (vg.CanvasWriterTo, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return &vgimg.PngCanvas{Canvas: vgimg.New(w, h)}, nil
	case ".svg":
		return vgsvg.New(w, h), nil
	case ".pdf":
		return vgpdf.New(w, h), nil
	}
	return nil, fmt.Errorf("unsupported output extension on %q (have .png, .svg, .pdf)", path)
}

// singleColor is a one-colour palette for contour plotters whose colour is
// fixed per level group.
type singleColor struct {
	c color.Color
}

func (s singleColor) Colors() []color.Color { return []color.Color{s.c} }

var (
	_ interfaces.Renderer = (*Plot)(nil)
	_ palette.Palette     = singleColor{}
	_ plotter.GridXYZ     = fieldGrid{}
)
