// Package spectrum provides FFT-adjacent helpers shared by the smoothing
// stages: magnitude extraction, FFT bin frequencies and piecewise-linear
// resampling of tabulated curves.
//
// The package does not implement an FFT itself. It operates on complex bins
// produced by the algo-fft plans used elsewhere in the module.
package spectrum
