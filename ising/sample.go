// SPDX-License-Identifier: MIT

package ising

import (
	"fmt"

	"github.com/katalvlaran/paths/lattice"
	"github.com/katalvlaran/paths/mcmc"
)

// Sample runs steps single-spin-flip Metropolis proposals at inverse
// temperature beta on the L×L lattice x, mutating x in place, and returns
// the number of accepted flips (0 ≤ accepted ≤ steps).
//
// Each proposal draws i = rng.Intn(L), then j = rng.Intn(L), computes
// E = β·ΔE and accepts per mcmc.Accept; an accepted proposal negates x[i·L+j].
// steps == 0 returns 0 and leaves x bitwise unchanged.
//
// Errors (returned before any mutation): mcmc.ErrNilSource,
// mcmc.ErrNegativeSteps, lattice.ErrBadSize, lattice.ErrLength,
// lattice.ErrInvalidSpin.
//
// Complexity: O(L²) validation + O(steps).
func Sample(rng mcmc.Source, beta float64, steps, L int, x []int32) (int, error) {
	if err := mcmc.CheckRun(rng, steps); err != nil {
		return 0, fmt.Errorf("%s: %w", methodSample, err)
	}
	if err := lattice.Check(L, x); err != nil {
		return 0, fmt.Errorf("%s: %w", methodSample, err)
	}
	if err := lattice.CheckSpins(x); err != nil {
		return 0, fmt.Errorf("%s: %w", methodSample, err)
	}
	return sample(rng, beta, steps, L, x), nil
}

// sample is the unchecked Metropolis loop.
func sample(rng mcmc.Source, beta float64, steps, L int, x []int32) int {
	accepted := 0
	for n := 0; n < steps; n++ {
		i := rng.Intn(L)
		j := rng.Intn(L)
		if mcmc.Accept(rng, beta, deltaE(L, x, i, j)) {
			x[i*L+j] = -x[i*L+j]
			accepted++
		}
	}
	return accepted
}
