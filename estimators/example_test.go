package estimators_test

import (
	"fmt"

	"github.com/katalvlaran/paths/estimators"
)

// ExampleBAR recovers the free-energy difference from deterministic work.
func ExampleBAR() {
	wf := []float64{1.5, 1.5, 1.5}
	wr := []float64{-1.5, -1.5}
	dF, err := estimators.BAR(wf, wr, 1e-8)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.3f\n", dF)
	// Output:
	// 1.500
}
