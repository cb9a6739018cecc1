package gap

import (
	"math"

	"github.com/cwbudde/algo-snid/dsp/core"
	"github.com/cwbudde/algo-snid/dsp/spectrum"
)

// Gap is a maximal run of missing samples, bounded by the wavelengths of
// its first and last missing sample.
type Gap struct {
	Start float64
	End   float64
}

// Size returns the wavelength extent of the gap.
func (g Gap) Size() float64 {
	return g.End - g.Start
}

// Find returns every maximal NaN run of flux in wavelength order.
func Find(wave, flux []float64) ([]Gap, error) {
	if err := core.CheckSameLength(wave, flux); err != nil {
		return nil, err
	}

	var gaps []Gap
	start := -1
	for i, v := range flux {
		missing := math.IsNaN(v)
		switch {
		case missing && start < 0:
			start = i
		case !missing && start >= 0:
			gaps = append(gaps, Gap{Start: wave[start], End: wave[i-1]})
			start = -1
		}
	}
	if start >= 0 {
		gaps = append(gaps, Gap{Start: wave[start], End: wave[len(wave)-1]})
	}
	return gaps, nil
}

// LargeInRange reports whether a gap of at least maxSize Å intersects
// [minW, maxW]: it contains the range, or starts or ends strictly inside it.
func LargeInRange(gaps []Gap, minW, maxW, maxSize float64) bool {
	for _, g := range gaps {
		if g.Size() < maxSize {
			continue
		}
		if g.Start < minW && g.End > maxW {
			return true
		}
		if g.Start > minW && g.Start < maxW {
			return true
		}
		if g.End > minW && g.End < maxW {
			return true
		}
	}
	return false
}

// InterpRange returns the nearest wavelengths with finite flux on either
// side of the samples lying strictly inside (minW, maxW). The pair brackets
// every gap in the window and is a safe interpolation range.
func InterpRange(wave, flux []float64, minW, maxW float64) (lo, hi float64, err error) {
	if err := core.CheckSameLength(wave, flux); err != nil {
		return 0, 0, err
	}

	first, last := -1, -1
	for i, w := range wave {
		if w > minW && w < maxW {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return 0, 0, core.Rangef("no wavelength inside (%.1f, %.1f)", minW, maxW)
	}

	loIdx := -1
	for i := first - 1; i >= 0; i-- {
		if !math.IsNaN(flux[i]) {
			loIdx = i
			break
		}
	}
	if loIdx < 0 {
		return 0, 0, core.Rangef("no finite wavelength before %.1f", wave[first])
	}

	hiIdx := -1
	for i := last + 1; i < len(flux); i++ {
		if !math.IsNaN(flux[i]) {
			hiIdx = i
			break
		}
	}
	if hiIdx < 0 {
		return 0, 0, core.Rangef("no finite wavelength after %.1f", wave[last])
	}

	return wave[loIdx], wave[hiIdx], nil
}

// Interpolate replaces the missing samples of flux inside [minW, maxW] in
// place by linear interpolation between the finite samples of that window.
// Missing samples outside the finite bracket are a range error; nothing is
// extrapolated and flux is left untouched on error.
func Interpolate(wave, flux []float64, minW, maxW float64) error {
	if err := core.CheckSameLength(wave, flux); err != nil {
		return err
	}

	var idx []int
	var xs, ys []float64
	for i, w := range wave {
		if w < minW || w > maxW {
			continue
		}
		idx = append(idx, i)
		if !math.IsNaN(flux[i]) {
			xs = append(xs, w)
			ys = append(ys, flux[i])
		}
	}
	if len(xs) < 2 {
		return core.Rangef("need 2 finite samples in [%.1f, %.1f], found %d", minW, maxW, len(xs))
	}

	lo, hi := xs[0], xs[len(xs)-1]
	for _, i := range idx {
		if math.IsNaN(flux[i]) && (wave[i] < lo || wave[i] > hi) {
			return core.Rangef("missing sample at %.1f outside finite bracket [%.1f, %.1f]", wave[i], lo, hi)
		}
	}

	for _, i := range idx {
		if math.IsNaN(flux[i]) {
			flux[i] = spectrum.InterpolateAt(xs, ys, wave[i])
		}
	}
	return nil
}
