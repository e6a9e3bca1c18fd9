// SPDX-License-Identifier: MIT

package mcmc

import "fmt"

// Model is a discrete Boltzmann model over flat int32 configurations.
//
//   - Draw returns a fresh configuration from the β = 0 distribution.
//   - Energy returns the unscaled Hamiltonian H(x).
//   - Sample runs steps Metropolis proposals at β, mutating x in place, and
//     returns the number of accepted proposals.
type Model interface {
	Draw(rng Source) ([]int32, error)
	Energy(x []int32) (int, error)
	Sample(rng Source, beta float64, steps int, x []int32) (int, error)
}

// Kernel is a Markov transition of Model at fixed inverse temperature.
// Steps is the number of single-site proposals applied per transition.
type Kernel struct {
	Model Model
	Beta  float64
	Steps int
}

// Stationary reports the (model, β) pair whose Boltzmann distribution the
// kernel leaves invariant.
func (k Kernel) Stationary() (Model, float64) {
	return k.Model, k.Beta
}

// Transition applies the kernel to a copy of x and returns the new state and
// the number of accepted proposals. x is not modified.
//
// At β = 0 every proposal would be accepted and the stationary law is
// uniform, so Transition returns an independent Draw and reports 0 accepted
// proposals.
func (k Kernel) Transition(rng Source, x []int32) ([]int32, int, error) {
	if k.Model == nil {
		return nil, 0, ErrNilModel
	}
	if err := CheckRun(rng, k.Steps); err != nil {
		return nil, 0, err
	}
	if k.Beta == 0 {
		y, err := k.Model.Draw(rng)
		if err != nil {
			return nil, 0, fmt.Errorf("Kernel.Transition: %w", err)
		}
		return y, 0, nil
	}

	y := make([]int32, len(x))
	copy(y, x)
	accepted, err := k.Model.Sample(rng, k.Beta, k.Steps, y)
	if err != nil {
		return nil, 0, fmt.Errorf("Kernel.Transition(beta=%g): %w", k.Beta, err)
	}
	return y, accepted, nil
}
