package potts_test

import (
	"fmt"

	"github.com/katalvlaran/paths/lattice"
	"github.com/katalvlaran/paths/mcmc"
	"github.com/katalvlaran/paths/potts"
)

// ExampleSample quenches a 10-state Potts lattice and bins the energy.
func ExampleSample() {
	const L, Q = 8, 10
	rng := mcmc.NewRand(1)
	x, _ := lattice.RandomStates(L, Q, rng)

	acc, _ := potts.Sample(rng, 2.0, 20*L*L, L, Q, x)
	e, _ := potts.TotalEnergy(L, x)

	fmt.Println("accepted within bounds:", acc >= 0 && acc <= 20*L*L)
	fmt.Println("energy within bounds:", e >= -2*L*L && e <= 0)
	// Output:
	// accepted within bounds: true
	// energy within bounds: true
}

// ExampleNewHistogram lists the lowest admissible energies of a 4×4 lattice.
func ExampleNewHistogram() {
	h, _ := potts.NewHistogram(4)
	fmt.Println(h.Energies()[:4])
	// Output:
	// [-32 -28 -26 -25]
}
