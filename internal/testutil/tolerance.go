package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance). NaN matches NaN.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if math.IsNaN(got[i]) && math.IsNaN(want[i]) {
			continue
		}
		diff := math.Abs(got[i] - want[i])
		if !(diff <= eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// MaxRelDiff returns the maximum of |a-b|/|b| over the index range [from, to).
// Pairs where b is zero are skipped.
func MaxRelDiff(a, b []float64, from, to int) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	if from < 0 || to > len(a) || from > to {
		return 0, fmt.Errorf("index range [%d,%d) outside [0,%d)", from, to, len(a))
	}
	maxDiff := 0.0
	for i := from; i < to; i++ {
		if b[i] == 0 {
			continue
		}
		d := math.Abs(a[i]-b[i]) / math.Abs(b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// StdDev returns the population standard deviation of x[from:to].
func StdDev(x []float64, from, to int) float64 {
	n := to - from
	if n <= 0 {
		return 0
	}
	mean := 0.0
	for _, v := range x[from:to] {
		mean += v
	}
	mean /= float64(n)
	ss := 0.0
	for _, v := range x[from:to] {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(n))
}
