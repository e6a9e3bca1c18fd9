// SPDX-License-Identifier: MIT

package ising

import (
	"github.com/katalvlaran/paths/lattice"
	"github.com/katalvlaran/paths/mcmc"
)

// Model is the L×L Ising model as an mcmc.Model.
type Model struct {
	L int
}

var _ mcmc.Model = Model{}

// NewModel returns the Ising model on an L×L lattice.
// Panics if L ≤ 0 (programmer error).
func NewModel(L int) Model {
	if L <= 0 {
		panic("ising: NewModel: L must be positive")
	}
	return Model{L: L}
}

// Draw returns a uniform random spin configuration.
func (m Model) Draw(rng mcmc.Source) ([]int32, error) {
	if rng == nil {
		return nil, mcmc.ErrNilSource
	}
	return lattice.RandomSpins(m.L, rng)
}

// Energy returns the unscaled Hamiltonian of x.
func (m Model) Energy(x []int32) (int, error) {
	return TotalEnergy(m.L, x)
}

// Sample runs steps Metropolis proposals at beta on x in place.
func (m Model) Sample(rng mcmc.Source, beta float64, steps int, x []int32) (int, error) {
	return Sample(rng, beta, steps, m.L, x)
}
