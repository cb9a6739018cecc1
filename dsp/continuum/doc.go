// Package continuum removes and restores the smooth continuum of a spectrum.
//
// Removal rebins a spectrum onto the canonical log axis, picks up to
// [KnotTarget] knots as bin averages of the positive interior flux, fits a
// natural cubic spline through them and divides it out. The knots are kept in
// a compact [Model] (a header with per-phase knot counts and normalization
// constants plus a padded knot table) from which [Restore] rebuilds the
// physical flux.
package continuum
