package core_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-snid/dsp/core"
)

func ExampleRangef() {
	err := core.Rangef("no finite wavelength before %.1f", 4000.0)
	fmt.Println(errors.Is(err, core.ErrRange))
	fmt.Println(err)

	// Output:
	// true
	// snid: range error: no finite wavelength before 4000.0
}
