package continuum

import "math"

const (
	// KnotTarget is the number of knot bins the log axis is split into.
	KnotTarget = 13
	// edgeGuard is how many non-negative samples are trimmed at each end in
	// addition to the leading and trailing non-positive run.
	edgeGuard = 1
)

// Knot is a continuum spline control point.
type Knot struct {
	X float64
	Y float64
}

// Selection is the outcome of [SelectKnots].
type Selection struct {
	// Start and End are the first and last untrimmed indices.
	Start, End int
	// Flux is the input with the trimmed edges zeroed.
	Flux []float64
	// Knots holds (1-based mean pixel, log10 mean flux) pairs.
	Knots []Knot
}

// SelectKnots trims the edges of flux and averages the interior into knot
// bins of width len(flux)/KnotTarget.
//
// Leading and trailing non-positive samples are zeroed together with
// edgeGuard further samples. A knot is emitted at every bin boundary whose
// bin holds interior samples with a positive flux sum. A positive offset
// shifts the bin boundaries by offset modulo the bin width.
func SelectKnots(flux []float64, offset int) Selection {
	n := len(flux)
	sel := Selection{Flux: append([]float64(nil), flux...)}

	l1, guard := 0, 0
	for l1 < n && (flux[l1] <= 0 || guard < edgeGuard) {
		if flux[l1] >= 0 {
			guard++
		}
		sel.Flux[l1] = 0
		l1++
	}

	l2 := n - 1
	guard = 0
	for l2 >= 0 && (flux[l2] <= 0 || guard < edgeGuard) {
		if flux[l2] >= 0 {
			guard++
		}
		sel.Flux[l2] = 0
		l2--
	}
	sel.Start, sel.End = l1, l2

	width := n / KnotTarget
	if width < 1 {
		return sel
	}
	istart := 0
	if offset > 0 {
		istart = offset%width - width
	}

	var count int
	var pixSum, fluxSum float64
	for i := 0; i < n; i++ {
		if i > l1 && i < l2 {
			count++
			pixSum += float64(i) + 0.5
			fluxSum += flux[i]
		}
		if (i-istart)%width == 0 {
			if count > 0 && fluxSum > 0 {
				sel.Knots = append(sel.Knots, Knot{
					X: pixSum / float64(count),
					Y: math.Log10(fluxSum / float64(count)),
				})
			}
			count, pixSum, fluxSum = 0, 0, 0
		}
	}

	return sel
}
