package smooth

import (
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-snid/dsp/core"
	"github.com/cwbudde/algo-snid/dsp/loggrid"
	"github.com/cwbudde/algo-snid/dsp/spectrum"
	"github.com/cwbudde/algo-snid/stats/flux"
)

// SpeedOfLight in km/s.
const SpeedOfLight = 299792.47

// Result is the outcome of [Smooth].
type Result struct {
	// Wavelengths is the uniform ln-wavelength grid converted back to Ångström.
	Wavelengths []float64
	// Binned is the filtered flux on Wavelengths.
	Binned []float64
	// Flux is the filtered flux interpolated onto the input wavelengths.
	Flux []float64
	// SeparationVelocity is the velocity scale in km/s below which structure
	// is treated as noise.
	SeparationVelocity float64
	// NoiseFloor is the mean Fourier magnitude of the band between the noise
	// velocity and the cut.
	NoiseFloor float64
	// PowerLaw is the fitted magnitude spectrum.
	PowerLaw PowerLaw
	// Uncertainty is the rolling residual standard deviation, or nil when
	// not requested.
	Uncertainty []float64
}

// Smooth removes Fourier components narrower than the separation velocity
// from flux sampled at the strictly increasing wavelengths wvl.
//
// velocityCut (km/s) is the narrowest feature scale considered signal;
// 1000 km/s suits most supernova types and 3000 km/s broad-lined Ic.
func Smooth(wvl, fluxIn []float64, velocityCut float64, opts ...Option) (Result, error) {
	cfg := ApplyOptions(opts...)

	if err := core.CheckSameLength(wvl, fluxIn); err != nil {
		return Result{}, err
	}
	if len(wvl) < 4 {
		return Result{}, core.Dimensionf("smoothing needs at least 4 samples: %d", len(wvl))
	}
	if err := core.CheckIncreasing(wvl); err != nil {
		return Result{}, err
	}
	if !(wvl[0] > 0) {
		return Result{}, core.Dimensionf("wavelengths must be positive: %g", wvl[0])
	}
	if !(velocityCut > 0) {
		return Result{}, core.Fitf("velocity cut must be positive: %g", velocityCut)
	}

	lnWave := make([]float64, len(wvl))
	for i, w := range wvl {
		lnWave[i] = math.Log(w)
	}

	n := core.NextPowerOf2(len(wvl))
	lnStart, lnEnd := lnWave[0], lnWave[len(lnWave)-1]
	binWidth := (lnEnd - lnStart) / float64(n-1)

	binned, grid, err := loggrid.BinSpec(lnWave, fluxIn, lnStart, lnEnd, binWidth)
	if err != nil {
		return Result{}, err
	}
	n = len(binned)

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Result{}, core.Fitf("fft plan for %d bins: %v", n, err)
	}

	in := make([]complex128, n)
	for i, v := range binned {
		in[i] = complex(v, 0)
	}
	coeffs := make([]complex128, n)
	if err := plan.Forward(coeffs, in); err != nil {
		return Result{}, core.Fitf("forward fft: %v", err)
	}

	mag := spectrum.Magnitude(coeffs)
	freq := spectrum.FFTFreq(n)
	velScale := SpeedOfLight * binWidth

	numLower, numUpper := lastAbove(freq, velScale, cfg.NoiseVelocity), lastAbove(freq, velScale, velocityCut)
	if numLower < 1 {
		return Result{}, core.Fitf("no frequency bin resolves velocities above %g km/s", cfg.NoiseVelocity)
	}
	if numUpper < 1 {
		return Result{}, core.Fitf("no frequency bin resolves velocities above the %g km/s cut", velocityCut)
	}
	if numUpper-numLower < 2 {
		return Result{}, core.Fitf("signal band [%d,%d) has fewer than 2 bins", numLower, numUpper)
	}

	// Floor and guess come from the signal band; the refinement runs to Nyquist.
	nyquist := n / 2
	noiseFloor := flux.Mean(mag[numLower : numUpper+1])

	guess, err := GuessPowerLaw(freq[numLower:numUpper], mag[numLower:numUpper])
	if err != nil {
		return Result{}, err
	}
	law, err := FitPowerLaw(freq[numLower:nyquist], mag[numLower:nyquist], guess, cfg.MaxFitIterations)
	if err != nil {
		return Result{}, err
	}
	if !(law.Exp < 0) {
		return Result{}, core.Fitf("power-law exponent must be negative: %g", law.Exp)
	}

	sepFreq := math.Pow(noiseFloor/law.Amp, 1/law.Exp)
	if !core.IsFinite(sepFreq) || !(sepFreq > 0) {
		return Result{}, core.Fitf("separation frequency not finite: %g", sepFreq)
	}

	for i, f := range freq {
		if math.Abs(f) >= sepFreq {
			coeffs[i] = 0
		}
	}
	filtered := make([]complex128, n)
	if err := plan.Inverse(filtered, coeffs); err != nil {
		return Result{}, core.Fitf("inverse fft: %v", err)
	}

	res := Result{
		Wavelengths:        make([]float64, n),
		Binned:             make([]float64, n),
		SeparationVelocity: velScale / sepFreq,
		NoiseFloor:         noiseFloor,
		PowerLaw:           law,
	}
	for i, c := range filtered {
		res.Wavelengths[i] = math.Exp(grid[i])
		res.Binned[i] = real(c)
	}

	res.Flux, err = spectrum.InterpolateLinear(res.Wavelengths, res.Binned, wvl)
	if err != nil {
		return Result{}, err
	}

	if cfg.Uncertainty {
		res.Uncertainty = uncertainty(wvl, fluxIn, res.Flux, cfg.UncertaintyWidth)
	}
	return res, nil
}

// lastAbove returns the largest positive-frequency index whose velocity
// scale exceeds v, or 0 when there is none.
func lastAbove(freq []float64, velScale, v float64) int {
	last := 0
	for k := 1; k < len(freq); k++ {
		if freq[k] <= 0 {
			break
		}
		if velScale/freq[k] > v {
			last = k
		}
	}
	return last
}

// uncertainty is the rolling standard deviation of the smoothing residual
// with the window width converted to samples using the first spacing. The
// end samples carry the absolute residual.
func uncertainty(wvl, raw, smoothed []float64, width float64) []float64 {
	resid := make([]float64, len(raw))
	for i := range raw {
		resid[i] = raw[i] - smoothed[i]
	}

	radius := int(math.Floor(width/(wvl[1]-wvl[0]))) / 2
	out := flux.RollingStdDev(resid, radius)
	out[0] = math.Abs(resid[0])
	out[len(out)-1] = math.Abs(resid[len(resid)-1])
	return out
}
