package contour_test

import (
	"errors"
	"sort"
	"testing"

	"horbital/internal/colorscale"
	"horbital/internal/contour"
	"horbital/internal/domain/types"
)

func mapped(t *testing.T, mode types.FieldMode, samples []float64) (*types.Field, *types.ColorMapping) {
	t.Helper()
	f := &types.Field{
		Mode:    mode,
		Plane:   types.PlaneZ,
		Range:   types.Range{Min: -1, Max: 1},
		Cols:    len(samples),
		Rows:    1,
		Samples: samples,
	}
	m, err := colorscale.Map(f, "RdYlBu_r", types.ScaleLinear)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	return f, m
}

func TestCheck_NodalConflict(t *testing.T) {
	err := contour.Check(types.ModeReal, types.ScaleLinear, true, true)
	var conflict *types.ConflictingOptionError
	if !errors.As(err, &conflict) {
		t.Fatalf("want ConflictingOptionError, got %v", err)
	}
}

func TestCheck_SymlogDensityLineMode(t *testing.T) {
	err := contour.Check(types.ModeDensity, types.ScaleSymlog, true, false)
	var scaleErr *types.UnsupportedScaleError
	if !errors.As(err, &scaleErr) {
		t.Fatalf("want UnsupportedScaleError, got %v", err)
	}
}

func TestCheck_NoLineModeAlwaysPasses(t *testing.T) {
	if err := contour.Check(types.ModeDensity, types.ScaleSymlog, false, true); err != nil {
		t.Fatalf("filled mode should not hit line-mode checks: %v", err)
	}
}

func TestLevels_Signed(t *testing.T) {
	f, m := mapped(t, types.ModeReal, []float64{-2, -0.5, 0, 1, 2})
	levels, err := contour.Levels(f, m)
	if err != nil {
		t.Fatalf("levels: %v", err)
	}
	if len(levels) != 16 {
		t.Fatalf("got %d levels, want 16", len(levels))
	}
	if !sort.SliceIsSorted(levels, func(i, j int) bool { return levels[i].Level < levels[j].Level }) {
		t.Fatal("levels not ordered ascending")
	}
	for _, lv := range levels {
		if lv.Level < 0 && !lv.Dashed {
			t.Fatalf("negative level %g not dashed", lv.Level)
		}
		if lv.Level > 0 && lv.Dashed {
			t.Fatalf("positive level %g dashed", lv.Level)
		}
	}
	// One colour per sign, taken from the colormap extremes.
	negColor := levels[0].Color
	posColor := levels[len(levels)-1].Color
	if negColor == posColor {
		t.Fatal("positive and negative lines share a colour")
	}
	for _, lv := range levels {
		if lv.Dashed && lv.Color != negColor {
			t.Fatalf("negative level %g colour varies with level", lv.Level)
		}
		if !lv.Dashed && lv.Color != posColor {
			t.Fatalf("positive level %g colour varies with level", lv.Level)
		}
	}
}

func TestLevels_DensitySolidOnly(t *testing.T) {
	f, m := mapped(t, types.ModeDensity, []float64{0, 0.5, 1, 3})
	levels, err := contour.Levels(f, m)
	if err != nil {
		t.Fatalf("levels: %v", err)
	}
	if len(levels) != 8 {
		t.Fatalf("got %d levels, want 8", len(levels))
	}
	for _, lv := range levels {
		if lv.Dashed {
			t.Fatalf("density level %g dashed; density fields have no negative side", lv.Level)
		}
		if lv.Level <= 0 {
			t.Fatalf("density level %g not positive", lv.Level)
		}
	}
}
