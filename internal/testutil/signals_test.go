package testutil

import (
	"math"
	"testing"
)

func TestLogAxis(t *testing.T) {
	w := LogAxis(2500, 10000, 5)
	if len(w) != 5 {
		t.Fatalf("len = %d, want 5", len(w))
	}
	if w[0] != 2500 || w[4] != 10000 {
		t.Fatalf("endpoints = %v, %v", w[0], w[4])
	}
	if math.Abs(w[2]-5000) > 1e-9 {
		t.Fatalf("midpoint = %v, want 5000", w[2])
	}
	r0 := w[1] / w[0]
	for i := 2; i < len(w); i++ {
		if math.Abs(w[i]/w[i-1]-r0) > 1e-12 {
			t.Fatalf("ratio at %d = %v, want %v", i, w[i]/w[i-1], r0)
		}
	}
}

func TestLinearAxis(t *testing.T) {
	w := LinearAxis(4000, 4004, 5)
	want := []float64{4000, 4001, 4002, 4003, 4004}
	RequireSliceNearlyEqual(t, w, want, 1e-12)
}

func TestSupernovaLikePositive(t *testing.T) {
	f := SupernovaLike(LinearAxis(3000, 9500, 400))
	RequireFinite(t, f)
	for i, v := range f {
		if v <= 0 {
			t.Fatalf("flux[%d] = %v, want > 0", i, v)
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("noise[%d] = %v out of range", i, a[i])
		}
	}
}

func TestWithMissing(t *testing.T) {
	src := Constant(1, 4)
	out := WithMissing(src, 1, 3, 9)
	if !math.IsNaN(out[1]) || !math.IsNaN(out[3]) {
		t.Fatalf("expected NaN at 1 and 3: %v", out)
	}
	if out[0] != 1 || out[2] != 1 {
		t.Fatalf("unexpected values: %v", out)
	}
	if math.IsNaN(src[1]) {
		t.Fatal("source slice was modified")
	}
}
