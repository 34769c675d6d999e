package commands

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"horbital/internal/app"
	"horbital/internal/autoselect"
	"horbital/internal/colorscale"
	"horbital/internal/contour"
	"horbital/internal/domain"
	"horbital/internal/output"
	"horbital/internal/slice"
)

// plotOptions carries the parsed plot flags. ValueSet and RangeSet record
// whether the user supplied the flag, since zero is a meaningful value.
type plotOptions struct {
	Mode     string
	Plane    string
	Value    float64
	ValueSet bool
	Range    []float64
	RangeSet bool
	Points   int
	Scale    string
	Cmap     string
	LineMode bool
	Nodal    bool
	Colorbar bool
	Output   string
	Format   string
	Quiet    bool
}

// runPlot executes the full pipeline: validate, auto-select, sample, map,
// derive contours, and hand the request to the renderer. Every rejected
// combination fails before the first field evaluation.
func runPlot(a *app.App, opts plotOptions, values []int, out io.Writer) error {
	qn, err := domain.ParseQuantumNumbers(values)
	if err != nil {
		return err
	}
	mode, err := domain.ParseFieldMode(opts.Mode)
	if err != nil {
		return err
	}
	scale, err := domain.ParseScale(opts.Scale)
	if err != nil {
		return err
	}
	if opts.Points < 25 {
		return &domain.InvalidSliceSpecError{
			Reason: fmt.Sprintf("at least 25 points are needed for stable contours, got %d", opts.Points),
		}
	}
	if err := contour.Check(mode, scale, opts.LineMode, opts.Nodal); err != nil {
		return err
	}
	if _, err := colorscale.PolicyFor(mode, scale); err != nil {
		return err
	}

	plane := domain.PlaneNone
	if mode.Planar() {
		if opts.Plane != "auto" {
			if plane, err = domain.ParsePlane(opts.Plane); err != nil {
				return err
			}
		}
	} else {
		if opts.Plane != "auto" && opts.Plane != string(domain.PlaneNone) {
			return &domain.InvalidSliceSpecError{
				Reason: fmt.Sprintf("mode %s is plane-independent; --plane %s cannot apply", mode, opts.Plane),
			}
		}
		if opts.ValueSet {
			return &domain.InvalidSliceSpecError{
				Reason: fmt.Sprintf("mode %s is plane-independent; --value cannot apply", mode),
			}
		}
	}

	rng, err := resolveRange(qn, mode, opts)
	if err != nil {
		return err
	}

	value := 0.0
	if mode.Planar() && opts.Plane == "auto" {
		plane, value = autoselect.PlaneAndValue(qn, mode, rng.Width()/2)
	}
	if opts.ValueSet {
		value = opts.Value
	}

	spec := domain.SliceSpec{Plane: plane, Value: value, Range: rng, Points: opts.Points}
	field, err := slice.Sample(qn, mode, spec)
	if err != nil {
		return err
	}
	mapping, err := colorscale.Map(field, opts.Cmap, scale)
	if err != nil {
		return err
	}

	var contours []domain.ContourLevel
	if opts.LineMode {
		if contours, err = contour.Levels(field, mapping); err != nil {
			return err
		}
	}

	path, err := resolveOutput(qn, mode, plane, value, opts)
	if err != nil {
		return err
	}

	req := domain.RenderRequest{
		Field:    field,
		Mapping:  mapping,
		Contours: contours,
		LineMode: opts.LineMode,
		Nodal:    opts.Nodal,
		Colorbar: opts.Colorbar,
		Title:    plotTitle(qn, mode, plane, colorscale.ResolveScale(mode, scale)),
		Output:   path,
	}
	if err := a.Renderer.Render(req); err != nil {
		return err
	}
	if !opts.Quiet {
		fmt.Fprintf(out, "Saved plot to: %s\n", path)
	}
	return nil
}

// resolveRange turns the --range flag (or its absence) into a concrete
// interval: one value is a symmetric half-range, two are explicit min,max,
// and none triggers the structural auto estimate.
func resolveRange(qn domain.QuantumNumbers, mode domain.FieldMode, opts plotOptions) (domain.Range, error) {
	if opts.RangeSet {
		switch len(opts.Range) {
		case 1:
			e := opts.Range[0]
			if e <= 0 {
				return domain.Range{}, &domain.InvalidSliceSpecError{
					Reason: fmt.Sprintf("half-range must be positive, got %g", e),
				}
			}
			return symmetricRange(mode, e), nil
		case 2:
			return domain.Range{Min: opts.Range[0], Max: opts.Range[1]}, nil
		default:
			return domain.Range{}, &domain.InvalidSliceSpecError{
				Reason: fmt.Sprintf("--range takes one or two values, got %d", len(opts.Range)),
			}
		}
	}
	return symmetricRange(mode, autoselect.Extent(qn.N, qn.L, mode)), nil
}

func symmetricRange(mode domain.FieldMode, e float64) domain.Range {
	if mode == domain.ModeRadialDistribution {
		return domain.Range{Min: 0, Max: e}
	}
	return domain.Range{Min: -e, Max: e}
}

// resolveOutput picks the output path: the explicit --output (validated by
// extension) or the deterministic generated name.
func resolveOutput(qn domain.QuantumNumbers, mode domain.FieldMode, plane domain.Plane, value float64, opts plotOptions) (string, error) {
	if opts.Output != "" {
		ext := strings.TrimPrefix(filepath.Ext(opts.Output), ".")
		if _, err := output.ParseFormat(ext); err != nil {
			return "", fmt.Errorf("--output %s: %w", opts.Output, err)
		}
		return opts.Output, nil
	}
	format, err := output.ParseFormat(opts.Format)
	if err != nil {
		return "", err
	}
	return output.Name(qn, mode, plane, value, format), nil
}

func plotTitle(qn domain.QuantumNumbers, mode domain.FieldMode, plane domain.Plane, scale domain.Scale) string {
	var parts []string
	switch mode {
	case domain.ModeRadialDistribution:
		return fmt.Sprintf("Hydrogen Radial Distribution n=%d, l=%d", qn.N, qn.L)
	case domain.ModeSphericalHarmonic:
		parts = []string{
			fmt.Sprintf("Spherical Harmonic l=%d, m=%d", qn.L, qn.M),
			"mode=" + mode.String(),
		}
	default:
		parts = []string{
			fmt.Sprintf("Hydrogen Orbital n=%d, l=%d, m=%d", qn.N, qn.L, qn.M),
			"mode=" + mode.String(),
			fmt.Sprintf("slice=%s-plane", plane),
		}
	}
	if scale != domain.ScaleLinear {
		parts = append(parts, "scale="+string(scale))
	}
	return strings.Join(parts, " | ")
}
