// SPDX-License-Identifier: MIT

// Package mcmc holds the pieces shared by every Metropolis sampler in paths:
// the random-source handle, the acceptance rule, deterministic stream
// derivation, and the Model / Kernel contracts used by annealing drivers.
//
// 🚀 Random streams
//
//	Every sampling call takes an explicit Source. There is no package-level
//	generator. *math/rand.Rand satisfies Source and is NOT goroutine-safe:
//	two chains running at the same time must each own a stream. NewStream
//	derives independent, reproducible streams from one seed so that N chains
//	can run on N goroutines and still give identical results for a given seed.
//
// ⚙️ Metropolis criterion
//
//	Accept(rng, β, ΔE) accepts unconditionally when β·ΔE ≤ 0 and otherwise
//	accepts iff one uniform draw u ∈ [0,1) satisfies u < exp(−β·ΔE). The
//	draw is consumed only in the second case. Because β·ΔE > 0 there,
//	exp(−β·ΔE) ∈ (0,1] and cannot overflow.
//
// Kernels:
//
//	Kernel{Model, Beta, Steps} is a Markov transition whose stationary law is
//	the Boltzmann distribution of Model at Beta. Transition copies its input;
//	Model.Sample mutates in place.
package mcmc
