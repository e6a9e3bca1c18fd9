// Package paths is a small toolkit for Monte Carlo on periodic lattices:
// the energy kernels and Metropolis samplers of the Ising and Potts models,
// the energy of a binary Restricted Boltzmann Machine, and nonequilibrium
// annealing paths with free-energy estimators on top.
//
// 🚀 What is inside?
//
//   - Kernels: local energy deltas and total energies on an L×L torus,
//     integer-exact, each bond counted once (right + down)
//   - Samplers: single-site Metropolis with an explicit random source, so
//     every chain is reproducible from its seed
//   - RBM: active-unit energy evaluation plus a gonum dense reference
//   - Annealing: bridges of kernels, forward/reverse paths run concurrently,
//     importance resampling
//   - Estimators: Jarzynski, cumulant expansions, Bennett acceptance ratio,
//     the self-consistent histogram estimator,
//     exact log Z from a tabulated density of states
//
// ✨ Guarantees
//
//   - Exported functions validate their input and never mutate the lattice
//     when they return an error
//   - Inner loops are unchecked and allocation-free
//   - No global random state: pass a *math/rand.Rand, or derive independent
//     streams with mcmc.NewStream
//
// Packages:
//
//	lattice/    — periodic addressing, validation, random configurations, domains
//	mcmc/       — random source, Metropolis acceptance, seeded streams, Model/Kernel
//	ising/      — Ising ΔE, energy, sampler, magnetization
//	potts/      — Potts ΔE, energy, sampler, energy histogram
//	rbm/        — RBM energy, dense reference, parameters
//	anneal/     — schedules, bridges, forward/reverse paths, resampling
//	estimators/ — free-energy estimators and tabulated entropies
//	config/     — JSON run configuration
//	logger/     — process-wide zap logger for the CLI
//	cmd/paths/  — command-line driver
//
// Quick ASCII example, a 3×3 Ising torus with one flipped spin:
//
//	+ + +
//	+ + +
//	+ + -
//
// has H = −10; flipping the corner back costs ΔE = −8.
//
//	go install github.com/katalvlaran/paths/cmd/paths@latest
package paths
