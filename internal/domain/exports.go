package domain

import (
	interfaces "horbital/internal/domain/interfaces"
	types "horbital/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	QuantumNumbers = types.QuantumNumbers
	FieldMode      = types.FieldMode
	Plane          = types.Plane
	Range          = types.Range
	SliceSpec      = types.SliceSpec
	Field          = types.Field
	Scale          = types.Scale
	ColorMapping   = types.ColorMapping
	ContourLevel   = types.ContourLevel
	RenderRequest  = types.RenderRequest

	InvalidQuantumNumberError = types.InvalidQuantumNumberError
	InvalidSliceSpecError     = types.InvalidSliceSpecError
	UnsupportedScaleError     = types.UnsupportedScaleError
	ConflictingOptionError    = types.ConflictingOptionError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Renderer = interfaces.Renderer
)

// Mode, plane, and scale constants re-exported for call sites on domain.
const (
	ModeDensity            = types.ModeDensity
	ModeReal               = types.ModeReal
	ModeImag               = types.ModeImag
	ModeRealImag           = types.ModeRealImag
	ModeRadialDistribution = types.ModeRadialDistribution
	ModeSphericalHarmonic  = types.ModeSphericalHarmonic

	PlaneX    = types.PlaneX
	PlaneY    = types.PlaneY
	PlaneZ    = types.PlaneZ
	PlaneNone = types.PlaneNone

	ScaleAuto   = types.ScaleAuto
	ScaleLinear = types.ScaleLinear
	ScaleLog    = types.ScaleLog
	ScaleSymlog = types.ScaleSymlog
)

var (
	ParseQuantumNumbers = types.ParseQuantumNumbers
	ParseFieldMode      = types.ParseFieldMode
	ParsePlane          = types.ParsePlane
	ParseScale          = types.ParseScale
)
