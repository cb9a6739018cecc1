package smooth

import (
	"math"

	"github.com/cwbudde/algo-snid/dsp/core"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

// PowerLaw is the model Amp*f^Exp of a Fourier magnitude spectrum.
type PowerLaw struct {
	Amp float64
	Exp float64
}

// At evaluates the power law at frequency f.
func (p PowerLaw) At(f float64) float64 {
	return p.Amp * math.Pow(f, p.Exp)
}

// usablePoints keeps the points with positive frequency and finite
// magnitude.
func usablePoints(freq, mag []float64) (xs, ys []float64, err error) {
	if err := core.CheckSameLength(freq, mag); err != nil {
		return nil, nil, err
	}
	for i, f := range freq {
		if f > 0 && core.IsFinite(mag[i]) {
			xs = append(xs, f)
			ys = append(ys, mag[i])
		}
	}
	return xs, ys, nil
}

// GuessPowerLaw fits a power law by linear regression of log(mag) on
// log(freq). Points with non-positive frequency or magnitude are ignored.
func GuessPowerLaw(freq, mag []float64) (PowerLaw, error) {
	xs, ys, err := usablePoints(freq, mag)
	if err != nil {
		return PowerLaw{}, err
	}

	var logX, logY []float64
	for i, x := range xs {
		if ys[i] > 0 {
			logX = append(logX, math.Log(x))
			logY = append(logY, math.Log(ys[i]))
		}
	}
	if len(logX) < 2 {
		return PowerLaw{}, core.Fitf("power-law guess needs at least 2 usable points: %d", len(logX))
	}

	intercept, slope := stat.LinearRegression(logX, logY, nil, false)
	if !core.IsFinite(intercept) || !core.IsFinite(slope) {
		return PowerLaw{}, core.Fitf("log-log regression diverged")
	}
	return PowerLaw{Amp: math.Exp(intercept), Exp: slope}, nil
}

// FitPowerLaw refines guess by least squares in linear space with
// Nelder-Mead, stopping after maxIter iterations.
//
// Points with non-positive frequency or non-finite magnitude are ignored.
func FitPowerLaw(freq, mag []float64, guess PowerLaw, maxIter int) (PowerLaw, error) {
	xs, ys, err := usablePoints(freq, mag)
	if err != nil {
		return PowerLaw{}, err
	}
	if len(xs) < 2 {
		return PowerLaw{}, core.Fitf("power-law fit needs at least 2 usable points: %d", len(xs))
	}
	if !(guess.Amp > 0) || !core.IsFinite(guess.Amp) || !core.IsFinite(guess.Exp) {
		return PowerLaw{}, core.Fitf("power-law guess must have a finite positive amplitude: %g*f^%g", guess.Amp, guess.Exp)
	}

	var norm float64
	for _, y := range ys {
		norm += y * y
	}
	if norm == 0 {
		return PowerLaw{}, core.Fitf("power-law fit on an all-zero magnitude band")
	}

	problem := optimize.Problem{
		Func: func(p []float64) float64 {
			a := math.Exp(p[0])
			var sse float64
			for i, x := range xs {
				r := a*math.Pow(x, p[1]) - ys[i]
				sse += r * r
			}
			sse /= norm
			if math.IsNaN(sse) {
				return math.Inf(1)
			}
			return sse
		},
	}
	settings := &optimize.Settings{
		MajorIterations: maxIter,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-14,
			Relative:   1e-12,
			Iterations: 40,
		},
	}

	x0 := []float64{math.Log(guess.Amp), guess.Exp}
	result, err := optimize.Minimize(problem, x0, settings, &optimize.NelderMead{})
	if err != nil {
		return PowerLaw{}, core.Fitf("power-law refinement: %v", err)
	}
	if result.Status == optimize.IterationLimit {
		return PowerLaw{}, core.Fitf("power-law refinement did not converge within %d iterations", maxIter)
	}

	fit := PowerLaw{Amp: math.Exp(result.X[0]), Exp: result.X[1]}
	if !core.IsFinite(fit.Amp) || !core.IsFinite(fit.Exp) {
		return PowerLaw{}, core.Fitf("power-law parameters not finite: amp=%g exp=%g", fit.Amp, fit.Exp)
	}
	return fit, nil
}
