package types

// InvalidQuantumNumberError reports an (n, l, m) triple outside the
// hydrogenic domain.
type InvalidQuantumNumberError struct {
	Reason string
}

func (e *InvalidQuantumNumberError) Error() string {
	return "invalid quantum numbers: " + e.Reason
}

// InvalidSliceSpecError reports a malformed plane, value, range, or
// resolution.
type InvalidSliceSpecError struct {
	Reason string
}

func (e *InvalidSliceSpecError) Error() string {
	return "invalid slice spec: " + e.Reason
}

// UnsupportedScaleError reports a scale that cannot represent the selected
// field mode, such as log on signed data.
type UnsupportedScaleError struct {
	Scale  Scale
	Mode   FieldMode
	Reason string
}

func (e *UnsupportedScaleError) Error() string {
	return "scale " + string(e.Scale) + " unsupported for mode " + e.Mode.String() + ": " + e.Reason
}

// ConflictingOptionError reports two options that cannot be combined.
type ConflictingOptionError struct {
	Options [2]string
	Reason  string
}

func (e *ConflictingOptionError) Error() string {
	return e.Options[0] + " conflicts with " + e.Options[1] + ": " + e.Reason
}
