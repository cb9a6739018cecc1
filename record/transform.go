package record

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-snid/dsp/continuum"
	"github.com/cwbudde/algo-snid/dsp/core"
	"github.com/cwbudde/algo-snid/dsp/gap"
	"github.com/cwbudde/algo-snid/dsp/loggrid"
	"github.com/cwbudde/algo-snid/dsp/smooth"
	"go.uber.org/zap"
)

// Restored is the continuum-restored flux density of one phase on the
// canonical axis.
type Restored struct {
	Label string
	Flux  []float64
}

// RemoveContinuum flattens every phase and moves the record onto the
// canonical log axis.
//
// The operation is atomic: when any phase fails, the record is left as it
// was and the joined per-phase errors are returned.
func (r *Record) RemoveContinuum(opts ...continuum.Option) error {
	if len(r.phases) == 0 {
		return core.Statef("record has no phases")
	}
	axis := loggrid.Canonical()

	fits := make([]continuum.PhaseFit, len(r.phases))
	var errs []error
	for i, p := range r.phases {
		fit, err := continuum.Remove(r.wave, p.flux, axis, opts...)
		if err != nil {
			r.logger.Warn("Continuum removal failed", zap.String("phase", p.label), zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", p.label, err))
			continue
		}
		r.logger.Debug("Continuum removed",
			zap.String("phase", p.label),
			zap.Int("knots", len(fit.Knots)),
			zap.Float64("mean_log_flux", fit.MeanLogFlux),
		)
		fits[i] = fit
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	model := make([]continuum.Fit, len(fits))
	for i, fit := range fits {
		r.phases[i].flux = fit.Flat
		model[i] = fit.Fit
	}
	m := continuum.NewModel(model)
	r.continuum = &m
	r.wave = append([]float64(nil), axis.Wavelengths...)

	// Uncertainties lived on the native axis.
	for label := range r.uncertainty {
		delete(r.uncertainty, label)
	}

	r.syncHeader()
	r.Header.WvlStart, r.Header.WvlEnd = loggrid.Start, loggrid.End
	r.Header.SplineKnots = continuum.KnotTarget
	return nil
}

// RestoreContinuum rebuilds the physical flux density of every phase from
// its flattened flux and continuum knots, using knots startKnot through
// endKnot (negative counts from the last knot). The record is not changed.
//
// Phases that fail are skipped; their errors are joined and returned
// alongside the phases that succeeded.
func (r *Record) RestoreContinuum(startKnot, endKnot int) ([]Restored, error) {
	if r.continuum == nil {
		return nil, core.Statef("continuum restoration requires a continuum model")
	}
	axis := loggrid.Canonical()
	if len(r.wave) != axis.Len() {
		return nil, core.Statef("record axis has %d samples, continuum axis %d", len(r.wave), axis.Len())
	}

	var out []Restored
	var errs []error
	for i, p := range r.phases {
		fit, err := r.continuum.Phase(i)
		if err == nil {
			var restored []float64
			restored, err = continuum.Restore(p.flux, fit, axis, startKnot, endKnot)
			if err == nil {
				out = append(out, Restored{Label: p.label, Flux: restored})
				continue
			}
		}
		r.logger.Warn("Continuum restoration failed", zap.String("phase", p.label), zap.Error(err))
		errs = append(errs, fmt.Errorf("%s: %w", p.label, err))
	}
	return out, errors.Join(errs...)
}

// SmoothSpectrum replaces the flux of label with its Fourier-smoothed
// version and stores the separation velocity and uncertainty array.
func (r *Record) SmoothSpectrum(label string, velocityCut float64, opts ...smooth.Option) (smooth.Result, error) {
	_, p, err := r.find(label)
	if err != nil {
		return smooth.Result{}, err
	}

	opts = append(opts, smooth.WithUncertainty(true))
	res, err := smooth.Smooth(r.wave, p.flux, velocityCut, opts...)
	if err != nil {
		r.logger.Warn("Smoothing failed", zap.String("phase", label), zap.Error(err))
		return smooth.Result{}, fmt.Errorf("%s: %w", label, err)
	}

	r.logger.Debug("Spectrum smoothed",
		zap.String("phase", label),
		zap.Float64("separation_velocity", res.SeparationVelocity),
	)
	p.flux = append([]float64(nil), res.Flux...)
	r.separation[label] = res.SeparationVelocity
	r.uncertainty[label] = append([]float64(nil), res.Uncertainty...)
	return res, nil
}

// FindGaps returns the missing-data runs of label. Call MarkMissing first
// for records loaded from disk.
func (r *Record) FindGaps(label string) ([]gap.Gap, error) {
	_, p, err := r.find(label)
	if err != nil {
		return nil, err
	}
	return gap.Find(r.wave, p.flux)
}

// InterpRange returns the finite wavelengths bracketing (minW, maxW) in
// label.
func (r *Record) InterpRange(label string, minW, maxW float64) (lo, hi float64, err error) {
	_, p, err := r.find(label)
	if err != nil {
		return 0, 0, err
	}
	return gap.InterpRange(r.wave, p.flux, minW, maxW)
}

// InterpolateGap fills the missing samples of label inside [minW, maxW].
func (r *Record) InterpolateGap(label string, minW, maxW float64) error {
	_, p, err := r.find(label)
	if err != nil {
		return err
	}
	return gap.Interpolate(r.wave, p.flux, minW, maxW)
}
