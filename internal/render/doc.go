// Package render draws finished fields with gonum/plot and writes PNG, SVG,
// or PDF files. It is the only package that touches the filesystem; the
// pipeline hands it a complete RenderRequest and owns nothing afterwards.
package render
