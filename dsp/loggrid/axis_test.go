package loggrid

import (
	"math"
	"sync"
	"testing"
)

func TestBuildCanonicalShape(t *testing.T) {
	a := BuildCanonical()
	if a.Len() != Bins || len(a.Widths) != Bins {
		t.Fatalf("axis length = %d/%d, want %d", a.Len(), len(a.Widths), Bins)
	}

	wantDW := math.Log10(End/Start) / Bins
	if a.DWLog != wantDW {
		t.Fatalf("DWLog = %v, want %v", a.DWLog, wantDW)
	}

	sum := 0.0
	for i, w := range a.Widths {
		if w <= 0 {
			t.Fatalf("width[%d] = %v, want > 0", i, w)
		}
		sum += w
	}
	if math.Abs(sum-(End-Start)) > 1e-8 {
		t.Fatalf("sum of widths = %v, want %v", sum, End-Start)
	}

	for i := 1; i < a.Len(); i++ {
		if !(a.Wavelengths[i] > a.Wavelengths[i-1]) {
			t.Fatalf("axis not increasing at %d", i)
		}
	}
	if a.Wavelengths[0] <= Start || a.Wavelengths[Bins-1] >= End {
		t.Fatalf("centers [%v, %v] not inside [%v, %v]", a.Wavelengths[0], a.Wavelengths[Bins-1], Start, End)
	}
}

func TestCanonicalIdempotent(t *testing.T) {
	first := BuildCanonical()
	second := BuildCanonical()
	shared := Canonical()

	for i := range first.Wavelengths {
		if first.Wavelengths[i] != second.Wavelengths[i] || first.Wavelengths[i] != shared.Wavelengths[i] {
			t.Fatalf("wavelength %d differs between builds", i)
		}
		if first.Widths[i] != second.Widths[i] || first.Widths[i] != shared.Widths[i] {
			t.Fatalf("width %d differs between builds", i)
		}
	}
	if first.DWLog != shared.DWLog {
		t.Fatalf("DWLog differs: %v vs %v", first.DWLog, shared.DWLog)
	}
	if Canonical() != shared {
		t.Fatal("Canonical returned a different instance")
	}
}

func TestCanonicalConcurrentReaders(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]*Axis, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Canonical()
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		if r != results[0] {
			t.Fatalf("reader %d saw a different axis", i)
		}
	}
}

func TestPixelToWavelength(t *testing.T) {
	a := Canonical()
	w := a.Wavelengths

	tests := []struct {
		pixel float64
		want  float64
	}{
		{pixel: 0, want: w[0]},
		{pixel: 1, want: w[0]},
		{pixel: 1.5, want: 0.5 * (w[0] + w[1])},
		{pixel: 512.25, want: w[511] + 0.25*(w[512]-w[511])},
		{pixel: Bins, want: w[Bins-1]},
		{pixel: Bins + 10, want: w[Bins-1]},
	}
	for _, tt := range tests {
		if got := a.PixelToWavelength(tt.pixel); math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("PixelToWavelength(%v) = %v, want %v", tt.pixel, got, tt.want)
		}
	}
}
