// Package commands defines the horbital CLI and wires dependencies for it.
//
// Usage
//
//	horbital n [l] [m] [flags]    Plot a hydrogen orbital field
//	horbital version              Print the build version
//
// The root command takes one to three quantum numbers (missing l and m
// default to zero) and renders a 2D figure: a planar slice of psi, a radial
// probability profile, or a spherical harmonic map, selected by --mode.
//
// # Implementation
//
// The root command loads TOML defaults and builds the rendering backend
// before the run, so the handler works against a shared app context. All
// option validation happens before any field evaluation; rejected
// combinations fail with a reason instead of falling back.
package commands
