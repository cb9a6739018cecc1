package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxRelDiff(t *testing.T) {
	a := []float64{1.1, 2.0, 5.0, 0}
	b := []float64{1.0, 2.0, 0.0, 4}

	d, err := MaxRelDiff(a, b, 0, 3)
	if err != nil {
		t.Fatalf("MaxRelDiff error: %v", err)
	}
	if math.Abs(d-0.1) > 1e-12 {
		t.Fatalf("MaxRelDiff = %v, want 0.1", d)
	}

	if _, err := MaxRelDiff(a, b, 2, 9); err == nil {
		t.Fatal("expected error for out-of-range indices")
	}
}

func TestStdDev(t *testing.T) {
	x := []float64{9, 2, 4, 4, 4, 5, 5, 7, 9, 9}
	if got := StdDev(x, 1, 9); math.Abs(got-2) > 1e-12 {
		t.Fatalf("StdDev = %v, want 2", got)
	}
	if got := StdDev(x, 3, 3); got != 0 {
		t.Fatalf("StdDev of empty range = %v, want 0", got)
	}
}
