// SPDX-License-Identifier: MIT

// Package ising implements the ferromagnetic Ising model on a periodic L×L
// square lattice with Hamiltonian
//
//	H(s) = −Σ_<ij> s_i·s_j,   s_i ∈ {−1,+1},
//
// summed over nearest-neighbour bonds.
//
// What:
//
//   - DeltaE:      energy change of flipping one spin, 2·s·Σ neighbours.
//   - TotalEnergy: H over the whole lattice; each site owns its right and
//     down bond, so every bond is counted exactly once.
//   - Sample:      single-spin-flip Metropolis, in place, returns accepted count.
//   - Model:       mcmc.Model adapter (Draw / Energy / Sample).
//
// Validated boundary, unchecked core:
//
//	Exported functions check L > 0, len(x) = L², spins ∈ {±1}, site range and
//	the random source once at entry and return lattice / mcmc sentinel
//	errors without touching the buffer. The inner loops then index the
//	buffer directly.
//
// Concurrency:
//
//	Sample holds an exclusive mutable borrow of x for the whole call. Nothing
//	else may read or write x meanwhile, and two concurrent Sample calls must
//	use different random sources.
//
// Complexity:
//
//   - DeltaE: O(1). TotalEnergy: O(L²). Sample: O(L² + steps).
package ising
