// SPDX-License-Identifier: MIT

package mcmc

import (
	"fmt"
	"math"
)

// Source is the random stream consumed by samplers: Intn for site and state
// proposals, Float64 for the acceptance draw. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// Accept applies the Metropolis criterion to a proposal with energy change
// dE at inverse temperature beta. β < 0 is legal and mirrors the asymmetry.
// A uniform draw is consumed only when β·ΔE > 0; anything else, NaN
// included (β = ±Inf with ΔE = 0), is accepted without touching the stream.
// Complexity: O(1).
func Accept(rng Source, beta float64, dE int) bool {
	e := beta * float64(dE)
	if !(e > 0) {
		return true
	}
	return rng.Float64() < math.Exp(-e)
}

// CheckRun validates the arguments common to every sampler entry point.
func CheckRun(rng Source, steps int) error {
	if rng == nil {
		return ErrNilSource
	}
	if steps < 0 {
		return fmt.Errorf("steps=%d: %w", steps, ErrNegativeSteps)
	}
	return nil
}
