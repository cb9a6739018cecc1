package continuum

import (
	"math"

	"github.com/cwbudde/algo-snid/dsp/core"
	"github.com/cwbudde/algo-snid/dsp/loggrid"
	"gonum.org/v1/gonum/interp"
)

// Physical converts the stored knots back to wavelengths and flux on axis.
func (f Fit) Physical(axis *loggrid.Axis) (wave, flux []float64) {
	wave = make([]float64, len(f.Knots))
	flux = make([]float64, len(f.Knots))
	scale := math.Pow(10, f.MeanLogFlux)
	for i, k := range f.Knots {
		wave[i] = axis.PixelToWavelength(math.Pow(10, k.X))
		flux[i] = math.Pow(10, k.Y) * scale
	}
	return wave, flux
}

// Restore multiplies a flattened spectrum by its continuum and returns flux
// density on axis. Samples outside the wavelengths of knots startKnot and
// endKnot are zeroed. A negative endKnot counts from the last knot.
func Restore(flat []float64, fit Fit, axis *loggrid.Axis, startKnot, endKnot int) ([]float64, error) {
	if len(flat) != axis.Len() {
		return nil, core.Dimensionf("flattened flux length %d != axis length %d", len(flat), axis.Len())
	}
	nk := len(fit.Knots)
	if nk < minKnots {
		return nil, core.Fitf("continuum needs at least %d knots, found %d", minKnots, nk)
	}

	end := endKnot
	if end < 0 {
		end += nk
	}
	if startKnot < 0 || end >= nk || end < 0 || startKnot > end {
		return nil, core.Rangef("knot range [%d,%d] invalid for %d knots", startKnot, endKnot, nk)
	}

	wave, kflux := fit.Physical(axis)
	logFlux := make([]float64, nk)
	for i, v := range kflux {
		logFlux[i] = math.Log10(v)
	}

	var spline interp.NaturalCubic
	if err := spline.Fit(wave, logFlux); err != nil {
		return nil, core.Fitf("continuum spline: %v", err)
	}

	lo, hi := wave[startKnot], wave[end]
	out := make([]float64, len(flat))
	for i, w := range axis.Wavelengths {
		if w < lo || w > hi {
			continue
		}
		out[i] = (flat[i] + 1) * math.Pow(10, spline.Predict(w)) / axis.Widths[i]
	}
	return out, nil
}
