package anneal_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/paths/anneal"
	"github.com/katalvlaran/paths/ising"
)

// ExampleForward anneals a small Ising lattice from infinite temperature.
func ExampleForward() {
	schedule, _ := anneal.Linspace(0, 1, 11)
	bridge, _ := anneal.NewBridge(ising.NewModel(8), schedule, 64)

	res, err := anneal.Forward(context.Background(), bridge, 16, anneal.WithSeed(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("paths:", res.Len())
	fmt.Println("energies per path:", len(res.Energies[0]))
	// Output:
	// paths: 16
	// energies per path: 11
}
