// SPDX-License-Identifier: MIT

package potts

import (
	"fmt"

	"github.com/katalvlaran/paths/lattice"
	"github.com/katalvlaran/paths/mcmc"
)

// Sample runs steps single-site Metropolis proposals at inverse temperature
// beta on the L×L lattice x with alphabet size Q, mutating x in place, and
// returns the number of accepted proposals (0 ≤ accepted ≤ steps).
//
// Each proposal draws i = rng.Intn(L), j = rng.Intn(L), q = rng.Intn(Q),
// computes E = β·ΔE and accepts per mcmc.Accept; an accepted proposal writes
// q into x[i·L+j], so every site stays in [0,Q).
//
// Errors (returned before any mutation): mcmc.ErrNilSource,
// mcmc.ErrNegativeSteps, lattice.ErrBadSize, lattice.ErrLength,
// lattice.ErrBadAlphabet, lattice.ErrInvalidState.
//
// Complexity: O(L²) validation + O(steps).
func Sample(rng mcmc.Source, beta float64, steps, L, Q int, x []int32) (int, error) {
	if err := mcmc.CheckRun(rng, steps); err != nil {
		return 0, fmt.Errorf("%s: %w", methodSample, err)
	}
	if err := lattice.Check(L, x); err != nil {
		return 0, fmt.Errorf("%s: %w", methodSample, err)
	}
	if err := lattice.CheckStates(x, Q); err != nil {
		return 0, fmt.Errorf("%s: %w", methodSample, err)
	}
	return sample(rng, beta, steps, L, Q, x), nil
}

func sample(rng mcmc.Source, beta float64, steps, L, Q int, x []int32) int {
	accepted := 0
	for n := 0; n < steps; n++ {
		i := rng.Intn(L)
		j := rng.Intn(L)
		q := int32(rng.Intn(Q))
		if mcmc.Accept(rng, beta, deltaE(L, x, i, j, q)) {
			x[i*L+j] = q
			accepted++
		}
	}
	return accepted
}
