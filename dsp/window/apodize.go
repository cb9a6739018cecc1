package window

import (
	"math"

	"github.com/cwbudde/algo-snid/dsp/core"
)

// Apodize tapers both ends of the valid region [start, end] of flux with a
// raised-cosine ramp and returns the tapered copy.
//
// The taper length is min(maxLog*percent/100, (end-start)/2) samples. When
// that is below one sample the input is returned unchanged (as a copy).
// Sample start+i and end-i are scaled by 0.5*(1-cos(pi*i/(length-1))).
func Apodize(maxLog, start, end int, flux []float64, percent float64) ([]float64, error) {
	if start < 0 || end >= len(flux) || start > end {
		return nil, core.Rangef("apodize bounds [%d,%d] outside flux of length %d", start, end, len(flux))
	}

	out := append([]float64(nil), flux...)
	taper := math.Min(float64(maxLog)*0.01*percent, float64(end-start)/2)
	if taper < 1 {
		return out, nil
	}

	for i := 0; i < int(taper); i++ {
		arg := 0.0
		if taper > 1 {
			arg = math.Pi * float64(i) / (taper - 1)
		}
		factor := 0.5 * (1 - math.Cos(arg))
		out[start+i] = factor * flux[start+i]
		out[end-i] = factor * flux[end-i]
	}
	return out, nil
}
