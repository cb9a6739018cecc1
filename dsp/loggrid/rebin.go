package loggrid

import (
	"math"

	"github.com/cwbudde/algo-snid/dsp/core"
	"github.com/cwbudde/algo-snid/dsp/spectrum"
)

// gridEpsilon absorbs floating-point noise when counting uniform bins.
const gridEpsilon = 1e-9

// Rebin redistributes flux sampled on wave onto nlog log-uniform bins that
// start at w0 and are dwlog wide in log10 units.
//
// Each source sample owns the support between the midpoints to its
// neighbours; the first and last samples extrapolate their support by half a
// spacing. The sample's flux times support width is shared among the
// destination bins in proportion to their fractional overlap. Bins outside
// [0, nlog) receive nothing.
func Rebin(wave, flux []float64, nlog int, w0, dwlog float64) ([]float64, error) {
	if err := core.CheckSameLength(wave, flux); err != nil {
		return nil, err
	}
	n := len(wave)
	if n < 2 {
		return nil, core.Dimensionf("rebin needs at least 2 samples: %d", n)
	}
	if nlog <= 0 {
		return nil, core.Dimensionf("rebin bin count must be > 0: %d", nlog)
	}
	if w0 <= 0 || dwlog <= 0 {
		return nil, core.Dimensionf("rebin start and log width must be > 0: %g, %g", w0, dwlog)
	}
	if err := core.CheckIncreasing(wave); err != nil {
		return nil, err
	}

	dest := make([]float64, nlog)
	for i := 0; i < n; i++ {
		var s0, s1 float64
		switch i {
		case 0:
			s0 = 0.5 * (3*wave[0] - wave[1])
			s1 = 0.5 * (wave[0] + wave[1])
		case n - 1:
			s0 = 0.5 * (wave[i-1] + wave[i])
			s1 = 0.5 * (3*wave[i] - wave[i-1])
		default:
			s0 = 0.5 * (wave[i-1] + wave[i])
			s1 = 0.5 * (wave[i] + wave[i+1])
		}

		s0log := math.Inf(-1)
		if s0 > 0 {
			s0log = math.Log10(s0/w0)/dwlog + 1
		}
		s1log := math.Log10(s1/w0)/dwlog + 1
		if !(s1log >= 0) {
			continue
		}

		jStart := 0
		if s0log > 0 {
			jStart = int(s0log)
		}
		jEnd := nlog - 1
		if s1log < float64(nlog) {
			jEnd = int(s1log)
		}

		dnu := s1 - s0
		span := s1log - s0log
		for j := jStart; j <= jEnd; j++ {
			jf := float64(j)
			overlap := math.Min(s1log, jf+1) - math.Max(s0log, jf)
			dest[j] += flux[i] * overlap / span * dnu
		}
	}

	return dest, nil
}

// BinSpec resamples flux onto uniform bins of width binWidth starting at
// start and returns the mean flux density per bin with the left bin edges.
//
// The flux is linearly interpolated onto the union of the input and output
// grids and integrated over each bin with Simpson's rule (the trapezoid rule
// when a bin holds only its two edges). The last bin repeats its neighbour.
// Bins lying fully outside the observed span are zeroed: those whose left
// edge is below min(wvl) or at or beyond max(wvl).
func BinSpec(wvl, flux []float64, start, end, binWidth float64) (binned, grid []float64, err error) {
	if err := core.CheckSameLength(wvl, flux); err != nil {
		return nil, nil, err
	}
	if len(wvl) < 2 {
		return nil, nil, core.Dimensionf("binspec needs at least 2 samples: %d", len(wvl))
	}
	if err := core.CheckIncreasing(wvl); err != nil {
		return nil, nil, err
	}
	if !(binWidth > 0) || !(end > start) {
		return nil, nil, core.Dimensionf("binspec needs end > start and binWidth > 0: [%g,%g] step %g", start, end, binWidth)
	}

	nlam := int(math.Ceil((end-start)/binWidth + 1 - gridEpsilon))
	grid = make([]float64, nlam)
	for i := range grid {
		grid[i] = float64(i)*binWidth + start
	}

	union, edgeIdx := mergeGrids(wvl, grid, gridEpsilon*binWidth)
	unionFlux, err := spectrum.InterpolateLinear(wvl, flux, union)
	if err != nil {
		return nil, nil, core.Dimensionf("binspec interpolation: %v", err)
	}

	binned = make([]float64, nlam)
	for i := 0; i < nlam-1; i++ {
		lo, hi := edgeIdx[i], edgeIdx[i+1]
		binned[i] = simpson(union[lo:hi+1], unionFlux[lo:hi+1])
	}
	if nlam >= 2 {
		binned[nlam-1] = binned[nlam-2]
	}

	slack := gridEpsilon * binWidth
	wMin, wMax := wvl[0]-slack, wvl[len(wvl)-1]-slack
	inv := 1 / binWidth
	for i, g := range grid {
		if g >= wMax || g < wMin {
			binned[i] = 0
			continue
		}
		binned[i] *= inv
	}

	return binned, grid, nil
}

// mergeGrids returns the sorted union of two strictly increasing grids
// without duplicates, plus the union index of every element of b. Points of
// a within tol of a point of b are merged into it.
func mergeGrids(a, b []float64, tol float64) ([]float64, []int) {
	union := make([]float64, 0, len(a)+len(b))
	bIdx := make([]int, len(b))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j == len(b) || (i < len(a) && a[i] < b[j]-tol):
			union = append(union, a[i])
			i++
		case i == len(a) || b[j] < a[i]-tol:
			bIdx[j] = len(union)
			union = append(union, b[j])
			j++
		default:
			bIdx[j] = len(union)
			union = append(union, b[j])
			i++
			j++
		}
	}
	return union, bIdx
}

// simpson integrates y over x with the composite Simpson rule for uneven
// spacing. An even number of points averages the two ways of pairing a
// trapezoid with Simpson over the remaining points.
func simpson(x, y []float64) float64 {
	n := len(x)
	switch {
	case n < 2:
		return 0
	case n == 2:
		return 0.5 * (y[0] + y[1]) * (x[1] - x[0])
	case n%2 == 1:
		return simpsonOdd(x, y)
	}

	first := simpsonOdd(x[:n-1], y[:n-1]) + 0.5*(y[n-2]+y[n-1])*(x[n-1]-x[n-2])
	last := 0.5*(y[0]+y[1])*(x[1]-x[0]) + simpsonOdd(x[1:], y[1:])
	return 0.5 * (first + last)
}

func simpsonOdd(x, y []float64) float64 {
	var sum float64
	for i := 0; i+2 < len(x); i += 2 {
		h0 := x[i+1] - x[i]
		h1 := x[i+2] - x[i+1]
		hsum := h0 + h1
		ratio := h0 / h1
		sum += hsum / 6 * (y[i]*(2-1/ratio) + y[i+1]*hsum*hsum/(h0*h1) + y[i+2]*(2-ratio))
	}
	return sum
}
