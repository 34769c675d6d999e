package types

// Field is one sampled 2D (or 1D) scalar field plus the metadata needed to
// render it. It is produced once per plot request and read-only afterwards.
//
// Samples is row-major: Samples[row*Cols+col] with U indexing columns and V
// indexing rows. Second carries the imaginary panel for dual-panel modes and
// is nil otherwise. For ModeRadialDistribution, Rows is 1 and V is nil.
type Field struct {
	Mode  FieldMode
	Plane Plane
	Value float64
	Range Range

	Cols int
	Rows int
	U    []float64 // horizontal axis samples, len Cols
	V    []float64 // vertical axis samples, len Rows

	ULabel string
	VLabel string

	Samples []float64
	Second  []float64
}

// At returns the sample at column c, row r.
func (f *Field) At(c, r int) float64 { return f.Samples[r*f.Cols+c] }

// SecondAt returns the second-panel sample at column c, row r.
func (f *Field) SecondAt(c, r int) float64 { return f.Second[r*f.Cols+c] }
