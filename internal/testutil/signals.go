package testutil

import (
	"math"
	"math/rand"
)

// LogAxis returns n log-uniform wavelengths from start to end inclusive.
func LogAxis(start, end float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := math.Log(end/start) / float64(n-1)
	for i := range out {
		out[i] = start * math.Exp(step*float64(i))
	}
	out[n-1] = end
	return out
}

// LinearAxis returns n uniformly spaced wavelengths from start to end inclusive.
func LinearAxis(start, end float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	out[n-1] = end
	return out
}

// SupernovaLike returns a smooth, strictly positive flux resembling a
// photospheric spectrum: a broad continuum hump with a few shallow,
// broad absorption troughs.
func SupernovaLike(wave []float64) []float64 {
	out := make([]float64, len(wave))
	troughs := []struct{ center, width, depth float64 }{
		{3950, 120, 0.25},
		{5000, 150, 0.2},
		{6150, 180, 0.3},
		{8200, 250, 0.25},
	}
	for i, w := range wave {
		x := (w - 5200) / 2600
		f := 2 + 1.5*math.Exp(-x*x)
		for _, tr := range troughs {
			d := (w - tr.center) / tr.width
			f *= 1 - tr.depth*math.Exp(-0.5*d*d)
		}
		out[i] = f
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
// Values are uniform in [-amplitude, amplitude].
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// WithMissing returns a copy of flux with NaN written at the given indices.
func WithMissing(flux []float64, indices ...int) []float64 {
	out := append([]float64(nil), flux...)
	for _, i := range indices {
		if i >= 0 && i < len(out) {
			out[i] = math.NaN()
		}
	}
	return out
}

// Constant returns a slice of length n filled with value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}
