package gap

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-snid/dsp/core"
	"github.com/cwbudde/algo-snid/internal/testutil"
)

func TestFindRuns(t *testing.T) {
	wave := testutil.LinearAxis(4000, 4290, 30)
	flux := testutil.WithMissing(testutil.Constant(1, 30), 3, 4, 5, 20)

	gaps, err := Find(wave, flux)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	want := []Gap{{wave[3], wave[5]}, {wave[20], wave[20]}}
	if len(gaps) != len(want) {
		t.Fatalf("gaps = %v, want %v", gaps, want)
	}
	for i := range want {
		if gaps[i] != want[i] {
			t.Fatalf("gap %d = %v, want %v", i, gaps[i], want[i])
		}
	}
}

func TestFindTrailingRun(t *testing.T) {
	wave := []float64{1, 2, 3, 4}
	flux := []float64{math.NaN(), 1, math.NaN(), math.NaN()}

	gaps, err := Find(wave, flux)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(gaps) != 2 || gaps[0] != (Gap{1, 1}) || gaps[1] != (Gap{3, 4}) {
		t.Fatalf("gaps = %v", gaps)
	}
}

func TestFindNoGaps(t *testing.T) {
	gaps, err := Find([]float64{1, 2}, []float64{1, 0})
	if err != nil || len(gaps) != 0 {
		t.Fatalf("gaps = %v, err = %v", gaps, err)
	}
	if _, err := Find([]float64{1, 2}, []float64{1}); !errors.Is(err, core.ErrDimension) {
		t.Fatalf("expected dimension error, got %v", err)
	}
}

func TestLargeInRange(t *testing.T) {
	inside := []Gap{{5000, 5050}}

	tests := []struct {
		name       string
		gaps       []Gap
		minW, maxW float64
		maxSize    float64
		want       bool
	}{
		{"inside above threshold", inside, 4900, 5200, 30, true},
		{"inside below threshold", inside, 4900, 5200, 60, false},
		{"contains range", []Gap{{4800, 5300}}, 4900, 5200, 30, true},
		{"starts inside", []Gap{{5150, 5400}}, 4900, 5200, 30, true},
		{"ends inside", []Gap{{4700, 4950}}, 4900, 5200, 30, true},
		{"disjoint", []Gap{{6000, 6100}}, 4900, 5200, 30, false},
		{"equal size counts", inside, 4900, 5200, 50, true},
		{"no gaps", nil, 4900, 5200, 30, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LargeInRange(tt.gaps, tt.minW, tt.maxW, tt.maxSize); got != tt.want {
				t.Fatalf("LargeInRange = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInterpRange(t *testing.T) {
	wave := testutil.LinearAxis(4000, 4090, 10)
	flux := testutil.WithMissing(testutil.Constant(1, 10), 2, 3, 6)

	lo, hi, err := InterpRange(wave, flux, 4015, 4065)
	if err != nil {
		t.Fatalf("InterpRange: %v", err)
	}
	// Samples inside are 4020..4060; their nearest finite neighbours are
	// 4010 and 4070.
	if lo != 4010 || hi != 4070 {
		t.Fatalf("range = [%g, %g], want [4010, 4070]", lo, hi)
	}
}

func TestInterpRangeErrors(t *testing.T) {
	wave := testutil.LinearAxis(4000, 4090, 10)
	flux := testutil.WithMissing(testutil.Constant(1, 10), 0, 1, 9)

	if _, _, err := InterpRange(wave, flux, 4005, 4050); !errors.Is(err, core.ErrRange) {
		t.Fatalf("expected range error on the low side, got %v", err)
	}
	if _, _, err := InterpRange(wave, flux, 4050, 4085); !errors.Is(err, core.ErrRange) {
		t.Fatalf("expected range error on the high side, got %v", err)
	}
	if _, _, err := InterpRange(wave, flux, 4001, 4009); !errors.Is(err, core.ErrRange) {
		t.Fatalf("expected range error for an empty window, got %v", err)
	}
}

func TestInterpolate(t *testing.T) {
	wave := testutil.LinearAxis(4000, 4090, 10)
	flux := make([]float64, 10)
	for i, w := range wave {
		flux[i] = 0.01 * (w - 4000)
	}
	holed := testutil.WithMissing(flux, 3, 4, 5)

	if err := Interpolate(wave, holed, 4020, 4070); err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, holed, flux, 1e-12)
}

func TestInterpolateNoExtrapolation(t *testing.T) {
	wave := testutil.LinearAxis(4000, 4090, 10)
	flux := testutil.WithMissing(testutil.Constant(2, 10), 2, 7)

	err := Interpolate(wave, flux, 4020, 4060)
	if !errors.Is(err, core.ErrRange) {
		t.Fatalf("expected range error, got %v", err)
	}
	if !math.IsNaN(flux[2]) {
		t.Fatal("flux modified despite error")
	}

	sparse := testutil.WithMissing(testutil.Constant(2, 10), 3, 4, 5)
	if err := Interpolate(wave, sparse, 4025, 4055); !errors.Is(err, core.ErrRange) {
		t.Fatalf("expected range error for fewer than 2 finite samples, got %v", err)
	}
}
