// SPDX-License-Identifier: MIT

package potts

import (
	"github.com/katalvlaran/paths/lattice"
	"github.com/katalvlaran/paths/mcmc"
)

// Model is the L×L, Q-state Potts model as an mcmc.Model.
type Model struct {
	L int
	Q int
}

var _ mcmc.Model = Model{}

// NewModel returns the Potts model. Panics if L ≤ 0 or Q ≤ 0.
func NewModel(L, Q int) Model {
	if L <= 0 {
		panic("potts: NewModel: L must be positive")
	}
	if Q <= 0 {
		panic("potts: NewModel: Q must be positive")
	}
	return Model{L: L, Q: Q}
}

// Draw returns a configuration with every state uniform on [0,Q).
func (m Model) Draw(rng mcmc.Source) ([]int32, error) {
	if rng == nil {
		return nil, mcmc.ErrNilSource
	}
	return lattice.RandomStates(m.L, m.Q, rng)
}

// Energy returns the unscaled Hamiltonian of x.
func (m Model) Energy(x []int32) (int, error) {
	return TotalEnergy(m.L, x)
}

// Sample runs steps Metropolis proposals at beta on x in place.
func (m Model) Sample(rng mcmc.Source, beta float64, steps int, x []int32) (int, error) {
	return Sample(rng, beta, steps, m.L, m.Q, x)
}
