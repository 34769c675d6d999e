// Package colorscale maps raw field values to renderable intensities.
//
// A scale policy (linear, log, symlog) normalizes samples into [0, 1] for
// non-negative fields or [-1, 1] for signed ones, and a named colormap
// turns intensities into colours. Density-family fields use only the
// light-to-dark half of the map so zero stays near the lightest endpoint;
// signed fields use the full map split at the midpoint.
package colorscale
