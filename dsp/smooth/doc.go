// Package smooth separates supernova features from noise in Fourier space.
//
// The spectrum is rebinned uniformly in ln(wavelength), so every Fourier
// frequency maps onto a Doppler velocity scale. The mean magnitude of the
// band between the noise velocity and the cut is the noise floor. A power
// law fitted to the magnitude spectrum is intersected with that floor, and
// coefficients above the separation frequency are dropped. The method follows Liu et al. (2016).
package smooth
