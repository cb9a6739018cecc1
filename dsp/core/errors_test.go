package core

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{name: "format", err: Formatf("bad header %q", "x"), kind: ErrFormat},
		{name: "dimension", err: Dimensionf("length %d", 3), kind: ErrDimension},
		{name: "range", err: Rangef("window [%g,%g]", 1.0, 2.0), kind: ErrRange},
		{name: "fit", err: Fitf("knots %d", 2), kind: ErrFit},
		{name: "state", err: Statef("no continuum"), kind: ErrState},
	}

	all := []error{ErrFormat, ErrDimension, ErrRange, ErrFit, ErrState}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Fatalf("errors.Is(%v, %v) = false", tt.err, tt.kind)
			}
			for _, other := range all {
				if other != tt.kind && errors.Is(tt.err, other) {
					t.Fatalf("error %v unexpectedly matches %v", tt.err, other)
				}
			}
			if !strings.HasPrefix(tt.err.Error(), tt.kind.Error()+": ") {
				t.Fatalf("message %q does not start with kind", tt.err.Error())
			}
		})
	}
}

func TestCheckSameLength(t *testing.T) {
	if err := CheckSameLength([]float64{1, 2}, []float64{3, 4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := CheckSameLength([]float64{1, 2}, []float64{3}); !errors.Is(err, ErrDimension) {
		t.Fatalf("expected dimension error, got %v", err)
	}
}

func TestCheckIncreasing(t *testing.T) {
	if err := CheckIncreasing([]float64{1, 2, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := CheckIncreasing([]float64{1, 1, 3}); !errors.Is(err, ErrDimension) {
		t.Fatalf("expected dimension error, got %v", err)
	}
}
