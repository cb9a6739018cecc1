package loggrid_test

import (
	"fmt"

	"github.com/cwbudde/algo-snid/dsp/loggrid"
)

func ExampleCanonical() {
	a := loggrid.Canonical()
	n := a.Len()
	fmt.Printf("bins=%d first=%.2f last=%.2f\n", n, a.Wavelengths[0], a.Wavelengths[n-1])
	fmt.Printf("widths %.4f..%.4f\n", a.Widths[0], a.Widths[n-1])

	// Output:
	// bins=1024 first=2501.69 last=9993.24
	// widths 3.3868..13.5289
}

func ExampleRebin() {
	a := loggrid.Canonical()
	wave := []float64{5000, 5010, 5020, 5030}
	flux := []float64{1, 1, 1, 1}

	dest, _ := loggrid.Rebin(wave, flux, a.Len(), loggrid.Start, a.DWLog)
	total := 0.0
	for _, v := range dest {
		total += v
	}
	fmt.Printf("total=%.6f\n", total)

	// Output:
	// total=40.000000
}
