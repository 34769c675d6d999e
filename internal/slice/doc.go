// Package slice turns an abstract orbital into a concrete sampled field.
//
// Planar modes sweep a uniform cartesian grid over the two free axes of a
// constant-x/y/z plane; radial_distribution sweeps r alone; and
// spherical_harmonic sweeps the (theta, phi) angle box. Sampling is a plain
// sequential pass, so identical inputs always produce identical fields.
package slice
