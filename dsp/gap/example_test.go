package gap_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-snid/dsp/gap"
)

func ExampleFind() {
	wave := []float64{4000, 4010, 4020, 4030, 4040, 4050, 4060}
	flux := []float64{1, math.NaN(), math.NaN(), 1, math.NaN(), 1, 1}

	gaps, _ := gap.Find(wave, flux)
	for _, g := range gaps {
		fmt.Printf("%.0f-%.0f (%.0f Å)\n", g.Start, g.End, g.Size())
	}
	fmt.Println(gap.LargeInRange(gaps, 4005, 4035, 10))

	// Output:
	// 4010-4020 (10 Å)
	// 4040-4040 (0 Å)
	// true
}
