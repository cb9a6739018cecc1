package loggrid

import (
	"math"
	"sync"
)

// Canonical axis parameters.
const (
	Bins  = 1024
	Start = 2500.0
	End   = 10000.0
)

// Axis is a log-uniform wavelength axis.
//
// Wavelengths holds bin centers (midpoints of adjacent edges), Widths the
// bin widths in Ångström and DWLog the bin width in log10 units.
type Axis struct {
	Wavelengths []float64
	Widths      []float64
	DWLog       float64
}

var (
	canonicalOnce sync.Once
	canonical     *Axis
)

// BuildCanonical computes the canonical axis from scratch.
func BuildCanonical() Axis {
	dwlog := math.Log10(End/Start) / Bins

	edges := make([]float64, Bins+1)
	for i := range edges {
		edges[i] = Start * math.Pow(10, float64(i)*dwlog)
	}

	a := Axis{
		Wavelengths: make([]float64, Bins),
		Widths:      make([]float64, Bins),
		DWLog:       dwlog,
	}
	for i := 0; i < Bins; i++ {
		a.Wavelengths[i] = 0.5 * (edges[i] + edges[i+1])
		a.Widths[i] = edges[i+1] - edges[i]
	}
	return a
}

// Canonical returns the process-wide canonical axis. It is computed on first
// use and shared afterwards; callers must not modify its slices.
func Canonical() *Axis {
	canonicalOnce.Do(func() {
		a := BuildCanonical()
		canonical = &a
	})
	return canonical
}

// Len returns the number of bins.
func (a *Axis) Len() int {
	return len(a.Wavelengths)
}

// PixelToWavelength maps a 1-based fractional pixel index onto the axis by
// linear interpolation between bin centers. Indices beyond the ends map to
// the end wavelengths.
func (a *Axis) PixelToWavelength(pixel float64) float64 {
	n := len(a.Wavelengths)
	if n == 0 {
		return math.NaN()
	}
	if pixel <= 1 {
		return a.Wavelengths[0]
	}
	if pixel >= float64(n) {
		return a.Wavelengths[n-1]
	}
	i := int(pixel)
	frac := pixel - float64(i)
	return a.Wavelengths[i-1] + frac*(a.Wavelengths[i]-a.Wavelengths[i-1])
}
