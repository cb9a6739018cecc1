package continuum

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-snid/dsp/core"
	"github.com/cwbudde/algo-snid/dsp/loggrid"
	"github.com/cwbudde/algo-snid/internal/testutil"
)

func TestRestoreRoundTrip(t *testing.T) {
	axis := loggrid.Canonical()
	wave, flux := syntheticPhase()

	fit, err := Remove(wave, flux, axis)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	restored, err := Restore(fit.Flat, fit.Fit, axis, 0, -1)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}

	knotWave, _ := fit.Physical(axis)
	from, to := bracket(axis.Wavelengths, knotWave[0], knotWave[len(knotWave)-1])
	if to-from < axis.Len()/2 {
		t.Fatalf("only %d samples inside the knot bracket", to-from)
	}
	for i := range restored {
		if (i < from || i >= to) && restored[i] != 0 {
			t.Fatalf("restored[%d] = %g outside knot bracket, want 0", i, restored[i])
		}
	}

	truth := testutil.SupernovaLike(axis.Wavelengths)
	rel, err := testutil.MaxRelDiff(restored, truth, from, to)
	if err != nil {
		t.Fatalf("MaxRelDiff: %v", err)
	}
	if rel > 0.03 {
		t.Fatalf("max relative deviation inside the knot bracket = %.4f, want <= 0.03", rel)
	}
}

// bracket returns the index range [from, to) of the wavelengths within
// [lo, hi].
func bracket(wave []float64, lo, hi float64) (from, to int) {
	from = len(wave)
	for i, w := range wave {
		if w < lo || w > hi {
			continue
		}
		if i < from {
			from = i
		}
		to = i + 1
	}
	return from, to
}

func TestRestoreSubRange(t *testing.T) {
	axis := loggrid.Canonical()
	wave, flux := syntheticPhase()

	fit, err := Remove(wave, flux, axis)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	full, err := Restore(fit.Flat, fit.Fit, axis, 0, -1)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	inner, err := Restore(fit.Flat, fit.Fit, axis, 1, -2)
	if err != nil {
		t.Fatalf("Restore inner: %v", err)
	}

	knotWave, _ := fit.Physical(axis)
	from, to := bracket(axis.Wavelengths, knotWave[1], knotWave[len(knotWave)-2])
	for i := range inner {
		if (i < from || i >= to) && inner[i] != 0 {
			t.Fatalf("inner[%d] = %g, want 0", i, inner[i])
		}
	}

	diff, err := testutil.MaxAbsDiff(inner[from:to], full[from:to])
	if err != nil {
		t.Fatalf("MaxAbsDiff: %v", err)
	}
	if diff != 0 {
		t.Fatalf("inner restoration deviates from full restoration by %g", diff)
	}
}

func TestRestoreErrors(t *testing.T) {
	axis := loggrid.Canonical()
	wave, flux := syntheticPhase()
	fit, err := Remove(wave, flux, axis)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	nk := len(fit.Knots)

	tests := []struct {
		name       string
		flat       []float64
		fit        Fit
		start, end int
		want       error
	}{
		{"short flat", fit.Flat[:10], fit.Fit, 0, -1, core.ErrDimension},
		{"start past end", fit.Flat, fit.Fit, 3, 2, core.ErrRange},
		{"end beyond knots", fit.Flat, fit.Fit, 0, nk, core.ErrRange},
		{"negative start", fit.Flat, fit.Fit, -1, -1, core.ErrRange},
		{"end before first", fit.Flat, fit.Fit, 0, -nk - 1, core.ErrRange},
		{"too few knots", fit.Flat, Fit{Knots: fit.Knots[:3]}, 0, -1, core.ErrFit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Restore(tt.flat, tt.fit, axis, tt.start, tt.end)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
