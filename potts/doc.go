// SPDX-License-Identifier: MIT

// Package potts implements the Q-state Potts model on a periodic L×L square
// lattice with Hamiltonian
//
//	H(s) = −Σ_<ij> δ(s_i, s_j),   s_i ∈ {0, …, Q−1}.
//
// The API mirrors package ising: DeltaE, TotalEnergy and Sample validate at
// the boundary and run unchecked inner loops; Model adapts the model to
// mcmc.Model. Histogram bins energies onto the values a periodic lattice can
// actually take.
//
// Sampling draws, per proposal: row i, column j, proposed state q, and one
// uniform acceptance draw when β·ΔE > 0. Proposing the current state has
// ΔE = 0 and counts as an accepted proposal.
package potts
