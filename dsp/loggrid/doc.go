// Package loggrid builds the canonical logarithmic wavelength axis and
// resamples spectra onto it.
//
// The canonical axis has [Bins] log-uniform bins spanning [Start, End]
// Ångström. [Rebin] conserves flux times wavelength width for every source
// sample whose support lies inside the destination axis; support that falls
// outside the axis is dropped. [BinSpec] is the uniform-bin variant used by
// the smoothing stage.
package loggrid
