package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"horbital/internal/app"
)

var (
	configPath string
	quiet      bool
	appCtx     *app.App

	opts plotOptions
)

func Execute() error {
	root := &cobra.Command{
		Use:          "horbital n [l] [m]",
		Short:        "Plot analytic hydrogen orbital fields, radial profiles, and harmonics",
		Args:         cobra.RangeArgs(1, 3),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = app.DefaultPath()
			}
			a, err := app.Wire(configPath)
			if err != nil {
				return err
			}
			appCtx = a

			// Flags the user left untouched fall back to config values.
			f := cmd.Flags()
			if !f.Changed("points") {
				opts.Points = a.Defaults.Points
			}
			if !f.Changed("cmap") {
				opts.Cmap = a.Defaults.Cmap
			}
			if !f.Changed("scale") {
				opts.Scale = a.Defaults.Scale
			}
			if !f.Changed("format") {
				opts.Format = a.Defaults.Format
			}
			if !f.Changed("colorbar") {
				opts.Colorbar = a.Defaults.Colorbar
			}
			if !quiet {
				quiet = a.Defaults.Quiet
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]int, 0, len(args))
			for _, arg := range args {
				v, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("quantum numbers must be integers, got %q", arg)
				}
				values = append(values, v)
			}
			opts.ValueSet = cmd.Flags().Changed("value")
			opts.RangeSet = cmd.Flags().Changed("range")
			opts.Quiet = quiet
			return runPlot(appCtx, opts, values, os.Stdout)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "defaults file (default ~/.horbital.toml)")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress the saved-file message")

	f := root.Flags()
	f.StringVar(&opts.Mode, "mode", "density", "render mode: density, real, imag, real_imag, radial_distribution, spherical_harmonic")
	f.StringVar(&opts.Plane, "plane", "auto", "slice plane: x, y, z, or auto")
	f.Float64Var(&opts.Value, "value", 0, "constant coordinate of the slice plane, in a0")
	f.Float64SliceVar(&opts.Range, "range", nil, "axis range in a0: min,max, or a single half-range")
	f.IntVar(&opts.Points, "points", 401, "grid samples per axis (minimum 25)")
	f.StringVar(&opts.Scale, "scale", "linear", "colour scale: linear, log, symlog, or auto")
	f.StringVar(&opts.Cmap, "cmap", "RdYlBu_r", "colormap name, or presets sample, sample_density")
	f.BoolVar(&opts.LineMode, "line-mode", false, "draw contour lines only, no filled surface")
	f.BoolVar(&opts.Nodal, "nodal", false, "overlay the psi=0 nodal contour on signed fields")
	f.BoolVar(&opts.Colorbar, "colorbar", false, "draw a colorbar")
	f.StringVar(&opts.Output, "output", "", "output path (default derived from parameters)")
	f.StringVar(&opts.Format, "format", "png", "output format when --output is not set: png, svg, pdf")

	root.AddCommand(versionCmd())
	return root.Execute()
}
