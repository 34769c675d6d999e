package colorscale

import "horbital/internal/domain/types"

// Policy captures how a field mode and scale combine into colour behaviour:
// whether the intensity axis is signed and whether only the sequential half
// of the colormap is used.
type Policy struct {
	Signed   bool
	HalfRamp bool
	Scale    types.Scale
}

// ResolveScale expands ScaleAuto into the mode's preferred concrete scale:
// log for density-family fields, symlog for signed ones.
func ResolveScale(mode types.FieldMode, scale types.Scale) types.Scale {
	if scale != types.ScaleAuto {
		return scale
	}
	if mode.Signed() {
		return types.ScaleSymlog
	}
	return types.ScaleLog
}

// PolicyFor validates the (mode, scale) pairing and returns the colour
// policy. Rejected pairings fail loudly; nothing falls back silently.
func PolicyFor(mode types.FieldMode, scale types.Scale) (Policy, error) {
	scale = ResolveScale(mode, scale)
	switch scale {
	case types.ScaleLinear:
	case types.ScaleLog:
		if mode.Signed() {
			return Policy{}, &types.UnsupportedScaleError{
				Scale: scale, Mode: mode,
				Reason: "log cannot represent signed values; use linear or symlog",
			}
		}
	case types.ScaleSymlog:
		if !mode.Signed() {
			return Policy{}, &types.UnsupportedScaleError{
				Scale: scale, Mode: mode,
				Reason: "symlog is for signed fields; use linear or log",
			}
		}
	default:
		return Policy{}, &types.UnsupportedScaleError{
			Scale: scale, Mode: mode, Reason: "unknown scale",
		}
	}
	return Policy{
		Signed:   mode.Signed(),
		HalfRamp: !mode.Signed(),
		Scale:    scale,
	}, nil
}
