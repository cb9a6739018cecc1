package continuum_test

import (
	"fmt"

	"github.com/cwbudde/algo-snid/dsp/continuum"
)

func ExampleSelectKnots() {
	flux := make([]float64, 26)
	for i := range flux {
		flux[i] = 100
	}

	sel := continuum.SelectKnots(flux, -1)
	fmt.Printf("trim=[%d,%d] knots=%d first=(%.1f, %.1f)\n",
		sel.Start, sel.End, len(sel.Knots), sel.Knots[0].X, sel.Knots[0].Y)
	// Output: trim=[1,24] knots=12 first=(2.5, 2.0)
}

func ExampleModel_HeaderRow() {
	m := continuum.NewModel([]continuum.Fit{
		{Knots: []continuum.Knot{{X: 2, Y: 0.1}, {X: 2.5, Y: -0.1}}, MeanLogFlux: -14.25},
	})
	fmt.Println(m.HeaderRow())
	fmt.Println(m.KnotRows())
	// Output:
	// [2 2 -14.25]
	// [[1 2 0.1] [2 2.5 -0.1]]
}
