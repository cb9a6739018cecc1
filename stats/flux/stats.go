// Package flux provides summary statistics over flux columns: mean,
// population moments, rolling standard deviation and standardization.
package flux

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Mean returns the arithmetic mean of x, or 0 for an empty slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	// Use Kahan summation for numerical stability.
	var sum, c float64
	for _, v := range x {
		y := v - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(x))
}

// Moments returns the mean, population variance, skewness, and excess kurtosis
// of x using Welford's online algorithm for numerical stability.
func Moments(x []float64) (mean, variance, skewness, kurtosis float64) {
	n := len(x)
	if n == 0 {
		return 0, 0, 0, 0
	}

	var m2, m3, m4 float64

	for i, v := range x {
		ni := float64(i + 1)
		delta := v - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN
	}

	nf := float64(n)

	variance = m2 / nf
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	return mean, variance, skewness, kurtosis
}

// StdDev returns the population standard deviation of x.
func StdDev(x []float64) float64 {
	_, variance, _, _ := Moments(x)
	return math.Sqrt(variance)
}

// RollingStdDev returns the population standard deviation of x over a
// centered window of 2*radius+1 samples. Near both edges the window shrinks
// symmetrically, so sample j < radius uses x[0:2j+1] and the first and last
// samples see a single-sample window (zero deviation).
func RollingStdDev(x []float64, radius int) []float64 {
	n := len(x)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	if radius < 0 {
		radius = 0
	}
	if maxRadius := (n - 1) / 2; radius > maxRadius {
		radius = maxRadius
	}

	for j := range out {
		r := radius
		if j < r {
			r = j
		}
		if tail := n - 1 - j; tail < r {
			r = tail
		}
		out[j] = StdDev(x[j-r : j+r+1])
	}
	return out
}

// MeanLog10Positive returns the mean of log10(v) over the strictly positive
// entries of x together with how many entries contributed.
func MeanLog10Positive(x []float64) (float64, int) {
	var sum float64
	count := 0
	for _, v := range x {
		if v > 0 {
			sum += math.Log10(v)
			count++
		}
	}
	if count == 0 {
		return 0, 0
	}
	return sum / float64(count), count
}

// Standardize returns a copy of x shifted to zero mean and scaled to unit
// population standard deviation. A constant input is only shifted.
func Standardize(x []float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	mean, variance, _, _ := Moments(x)
	for i, v := range x {
		out[i] = v - mean
	}
	if variance > 0 {
		vecmath.ScaleBlockInPlace(out, 1/math.Sqrt(variance))
	}
	return out
}
