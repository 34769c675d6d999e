// Package orbital evaluates the closed-form hydrogen wavefunction.
//
// It provides the radial function R_nl, the spherical harmonic Y_lm, and
// their product psi_nlm, using stable three-term recurrences for the
// associated Laguerre and Legendre polynomials and log-gamma normalization
// instead of raw factorial products. No eigen-solver is involved.
package orbital
