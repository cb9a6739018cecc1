package continuum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-snid/internal/testutil"
)

func knotXs(knots []Knot) []float64 {
	xs := make([]float64, len(knots))
	for i, k := range knots {
		xs[i] = k.X
	}
	return xs
}

func TestSelectKnotsFlatFlux(t *testing.T) {
	flux := testutil.Constant(2, 26)
	sel := SelectKnots(flux, -1)

	if sel.Start != 1 || sel.End != 24 {
		t.Fatalf("trim = [%d,%d], want [1,24]", sel.Start, sel.End)
	}
	if sel.Flux[0] != 0 || sel.Flux[25] != 0 || sel.Flux[1] != 2 || sel.Flux[24] != 2 {
		t.Fatalf("edge guard not applied: %v", sel.Flux)
	}

	want := []float64{2.5, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 23.5}
	testutil.RequireSliceNearlyEqual(t, knotXs(sel.Knots), want, 1e-12)
	for i, k := range sel.Knots {
		if math.Abs(k.Y-math.Log10(2)) > 1e-12 {
			t.Fatalf("knot %d y = %g, want log10(2)", i, k.Y)
		}
	}
}

func TestSelectKnotsNonPositiveEdges(t *testing.T) {
	flux := testutil.Constant(5, 26)
	flux[0], flux[1], flux[2] = 0, -1, 0
	flux[25], flux[24] = -3, -2

	sel := SelectKnots(flux, -1)

	// Negative samples are consumed without counting toward the guard, so
	// the leading zero at index 0 alone satisfies it.
	if sel.Start != 3 {
		t.Fatalf("start = %d, want 3", sel.Start)
	}
	if sel.End != 22 {
		t.Fatalf("end = %d, want 22", sel.End)
	}
	if sel.Flux[3] != 5 || sel.Flux[23] != 0 {
		t.Fatalf("unexpected trimmed flux: %v", sel.Flux)
	}
}

func TestSelectKnotsSkipsNonPositiveBins(t *testing.T) {
	flux := testutil.Constant(1, 26)
	flux[9], flux[10] = -5, -5

	sel := SelectKnots(flux, -1)

	if len(sel.Knots) != 11 {
		t.Fatalf("knots = %d, want 11", len(sel.Knots))
	}
	for _, k := range sel.Knots {
		if k.X == 10 {
			t.Fatalf("knot emitted for negative bin: %v", sel.Knots)
		}
	}
}

func TestSelectKnotsOffset(t *testing.T) {
	flux := testutil.Constant(2, 26)

	aligned := SelectKnots(flux, -1)
	shifted := SelectKnots(flux, 1)

	if aligned.Knots[0].X != 2.5 {
		t.Fatalf("aligned first knot = %g, want 2.5", aligned.Knots[0].X)
	}
	if shifted.Knots[0].X != 3 {
		t.Fatalf("shifted first knot = %g, want 3", shifted.Knots[0].X)
	}
}

func TestSelectKnotsShortInput(t *testing.T) {
	sel := SelectKnots([]float64{1, 2, 3}, -1)
	if len(sel.Knots) != 0 {
		t.Fatalf("expected no knots for a short input, got %v", sel.Knots)
	}
}
