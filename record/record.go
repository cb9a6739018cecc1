package record

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-snid/dsp/continuum"
	"github.com/cwbudde/algo-snid/dsp/core"
	"github.com/cwbudde/algo-snid/stats/flux"
	"go.uber.org/zap"
)

// PhaseType tells what the phase epochs are measured from.
type PhaseType int

const (
	// PhaseFromMax counts days from maximum light.
	PhaseFromMax PhaseType = 0
	// PhaseFromExplosion counts days from explosion.
	PhaseFromExplosion PhaseType = 1
)

// Header is the template metadata of the first .lnw line.
type Header struct {
	Nspec       int
	Nbins       int
	WvlStart    float64
	WvlEnd      float64
	SplineKnots int
	SN          string
	DM15        float64
	TypeStr     string
	TypeInt     int
	SubTypeInt  int
}

type phase struct {
	label string
	epoch float64
	flux  []float64
}

// Record is a multi-phase spectral template.
type Record struct {
	Header    Header
	PhaseType PhaseType

	wave      []float64
	phases    []*phase
	continuum *continuum.Model

	separation  map[string]float64
	uncertainty map[string][]float64

	logger *zap.Logger
}

// Option configures a Record.
type Option func(*Record)

// WithLogger sets the logger used for per-phase outcomes of batch
// transforms.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Record) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithHeader sets the initial header metadata.
func WithHeader(h Header) Option {
	return func(r *Record) {
		r.Header = h
	}
}

// WithPhaseType sets the phase type.
func WithPhaseType(pt PhaseType) Option {
	return func(r *Record) {
		r.PhaseType = pt
	}
}

// New returns an empty record on the strictly increasing axis wave.
func New(wave []float64, opts ...Option) (*Record, error) {
	if len(wave) == 0 {
		return nil, core.Dimensionf("wavelength axis must not be empty")
	}
	if err := core.CheckIncreasing(wave); err != nil {
		return nil, err
	}

	r := &Record{
		wave:        append([]float64(nil), wave...),
		separation:  make(map[string]float64),
		uncertainty: make(map[string][]float64),
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	r.syncHeader()
	return r, nil
}

// syncHeader refreshes the header fields derived from the data.
func (r *Record) syncHeader() {
	r.Header.Nspec = len(r.phases)
	r.Header.Nbins = len(r.wave)
}

// Wavelengths returns a copy of the wavelength axis.
func (r *Record) Wavelengths() []float64 {
	return append([]float64(nil), r.wave...)
}

// Len returns the number of wavelength samples.
func (r *Record) Len() int {
	return len(r.wave)
}

// Phases returns the phase labels in insertion order.
func (r *Record) Phases() []string {
	labels := make([]string, len(r.phases))
	for i, p := range r.phases {
		labels[i] = p.label
	}
	return labels
}

func (r *Record) find(label string) (int, *phase, error) {
	for i, p := range r.phases {
		if p.label == label {
			return i, p, nil
		}
	}
	return -1, nil, fmt.Errorf("%w: %s", ErrUnknownPhase, label)
}

func (r *Record) hasLabel(label string) bool {
	_, _, err := r.find(label)
	return err == nil
}

// AddPhase appends a flux column for epoch and returns its label. A label
// already in use gets a version suffix.
func (r *Record) AddPhase(epoch float64, fluxIn []float64) (string, error) {
	if err := core.CheckSameLength(r.wave, fluxIn); err != nil {
		return "", err
	}
	label, err := uniqueLabel(PhaseLabel(epoch), r.hasLabel)
	if err != nil {
		return "", err
	}
	r.phases = append(r.phases, &phase{
		label: label,
		epoch: epoch,
		flux:  append([]float64(nil), fluxIn...),
	})
	r.syncHeader()
	return label, nil
}

// Flux returns a copy of the flux column of label.
func (r *Record) Flux(label string) ([]float64, error) {
	_, p, err := r.find(label)
	if err != nil {
		return nil, err
	}
	return append([]float64(nil), p.flux...), nil
}

// Epoch returns the epoch of label.
func (r *Record) Epoch(label string) (float64, error) {
	_, p, err := r.find(label)
	if err != nil {
		return 0, err
	}
	return p.epoch, nil
}

// RemovePhase drops a phase, its smoothing metadata and its continuum
// column.
func (r *Record) RemovePhase(label string) error {
	i, _, err := r.find(label)
	if err != nil {
		return err
	}
	if r.continuum != nil && i < r.continuum.NumPhases() {
		m, err := r.continuum.Without(i)
		if err != nil {
			return err
		}
		r.continuum = &m
	}
	r.phases = append(r.phases[:i], r.phases[i+1:]...)
	delete(r.separation, label)
	delete(r.uncertainty, label)
	r.syncHeader()
	return nil
}

// RenamePhase moves label to the label of a new epoch and returns it.
func (r *Record) RenamePhase(label string, epoch float64) (string, error) {
	_, p, err := r.find(label)
	if err != nil {
		return "", err
	}
	newLabel, err := uniqueLabel(PhaseLabel(epoch), func(l string) bool {
		return l != label && r.hasLabel(l)
	})
	if err != nil {
		return "", err
	}

	p.label, p.epoch = newLabel, epoch
	if v, ok := r.separation[label]; ok {
		delete(r.separation, label)
		r.separation[newLabel] = v
	}
	if u, ok := r.uncertainty[label]; ok {
		delete(r.uncertainty, label)
		r.uncertainty[newLabel] = u
	}
	return newLabel, nil
}

// MarkMissing converts the on-disk 0.0 placeholder of every phase to NaN.
// Genuine zero flux cannot be told apart and is converted as well.
func (r *Record) MarkMissing() {
	for _, p := range r.phases {
		for i, v := range p.flux {
			if v == 0 {
				p.flux[i] = math.NaN()
			}
		}
	}
}

// FillMissing converts NaN back to the 0.0 placeholder.
func (r *Record) FillMissing() {
	for _, p := range r.phases {
		for i, v := range p.flux {
			if math.IsNaN(v) {
				p.flux[i] = 0
			}
		}
	}
}

// WavelengthFilter keeps only the samples with minW < wavelength < maxW.
func (r *Record) WavelengthFilter(minW, maxW float64) error {
	var keep []int
	for i, w := range r.wave {
		if w > minW && w < maxW {
			keep = append(keep, i)
		}
	}
	if len(keep) == 0 {
		return core.Rangef("no wavelength inside (%.2f, %.2f)", minW, maxW)
	}

	pick := func(x []float64) []float64 {
		out := make([]float64, len(keep))
		for j, i := range keep {
			out[j] = x[i]
		}
		return out
	}
	r.wave = pick(r.wave)
	for _, p := range r.phases {
		p.flux = pick(p.flux)
	}
	for label, u := range r.uncertainty {
		r.uncertainty[label] = pick(u)
	}
	r.syncHeader()
	r.Header.WvlStart, r.Header.WvlEnd = r.wave[0], r.wave[len(r.wave)-1]
	return nil
}

// Preprocess standardizes the flux of label to zero mean and unit standard
// deviation.
func (r *Record) Preprocess(label string) error {
	_, p, err := r.find(label)
	if err != nil {
		return err
	}
	p.flux = flux.Standardize(p.flux)
	return nil
}

// TypeNames returns the type and subtype names of the header codes.
func (r *Record) TypeNames() (typ, subtype string) {
	return TypeNames(r.Header.TypeInt, r.Header.SubTypeInt)
}

// Continuum returns the continuum model, if continuum removal has run or the
// record was loaded with one.
func (r *Record) Continuum() (continuum.Model, bool) {
	if r.continuum == nil {
		return continuum.Model{}, false
	}
	return *r.continuum, true
}

// SeparationVelocity returns the separation velocity stored by
// SmoothSpectrum.
func (r *Record) SeparationVelocity(label string) (float64, bool) {
	v, ok := r.separation[label]
	return v, ok
}

// Uncertainty returns a copy of the uncertainty array stored by
// SmoothSpectrum.
func (r *Record) Uncertainty(label string) ([]float64, bool) {
	u, ok := r.uncertainty[label]
	if !ok {
		return nil, false
	}
	return append([]float64(nil), u...), true
}
