package continuum

import (
	"math"

	"github.com/cwbudde/algo-snid/dsp/core"
	"github.com/cwbudde/algo-snid/dsp/loggrid"
	"github.com/cwbudde/algo-snid/dsp/window"
	"github.com/cwbudde/algo-snid/stats/flux"
	"gonum.org/v1/gonum/interp"
)

// minKnots is the smallest knot count a continuum spline is fitted through.
const minKnots = 4

// Fit is the frozen continuum of one phase.
type Fit struct {
	// Knots are stored as X = log10(pixel) and Y = log10(flux) - MeanLogFlux.
	Knots []Knot
	// MeanLogFlux is the mean log10 flux of the trimmed rebinned spectrum.
	MeanLogFlux float64
}

// PhaseFit is the result of [Remove].
type PhaseFit struct {
	Fit
	// Flat is the continuum-free flux on the canonical axis.
	Flat []float64
	// Start and End bound the samples that survived edge trimming.
	Start, End int
}

// Remove rebins one phase onto axis and divides out its spline continuum.
func Remove(wave, fluxIn []float64, axis *loggrid.Axis, opts ...Option) (PhaseFit, error) {
	cfg := ApplyOptions(opts...)

	n := axis.Len()
	rebinned, err := loggrid.Rebin(wave, fluxIn, n, loggrid.Start, axis.DWLog)
	if err != nil {
		return PhaseFit{}, err
	}

	sel := SelectKnots(rebinned, cfg.KnotOffset)
	if len(sel.Knots) < minKnots {
		return PhaseFit{}, core.Fitf("continuum needs at least %d knots, found %d", minKnots, len(sel.Knots))
	}

	mean, count := flux.MeanLog10Positive(sel.Flux)
	if count == 0 {
		return PhaseFit{}, core.Fitf("no positive flux left after edge trimming")
	}

	knotWave := make([]float64, len(sel.Knots))
	knotFlux := make([]float64, len(sel.Knots))
	stored := make([]Knot, len(sel.Knots))
	for i, k := range sel.Knots {
		knotWave[i] = axis.PixelToWavelength(k.X)
		knotFlux[i] = math.Pow(10, k.Y)
		stored[i] = Knot{X: math.Log10(k.X), Y: k.Y - mean}
	}

	var spline interp.NaturalCubic
	if err := spline.Fit(knotWave, knotFlux); err != nil {
		return PhaseFit{}, core.Fitf("continuum spline: %v", err)
	}

	flat := make([]float64, n)
	for i, w := range axis.Wavelengths {
		flat[i] = sel.Flux[i]/spline.Predict(w) - 1
	}

	if cfg.ApodizePercent > 0 {
		flat, err = window.Apodize(n, sel.Start, sel.End, flat, cfg.ApodizePercent)
		if err != nil {
			return PhaseFit{}, err
		}
	}

	return PhaseFit{
		Fit:   Fit{Knots: stored, MeanLogFlux: mean},
		Flat:  flat,
		Start: sel.Start,
		End:   sel.End,
	}, nil
}
