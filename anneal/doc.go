// Package anneal runs nonequilibrium annealing paths over a bridge of
// Metropolis kernels and accumulates the work needed by the free-energy
// estimators.
//
// A bridge is a sequence of kernels T_0 … T_{K−1}, one per inverse
// temperature β_k of a schedule, all on the same model. A forward path
//
//	x_0 ~ Draw,  x_k = T_k(x_{k−1}),  k = 1 … K−1,
//
// records the unscaled energies E_k = H(x_k) and the work
//
//	W = Σ_{k=0}^{K−2} (β_{k+1} − β_k)·E_k.
//
// When β_0 = 0 the initial Draw is an exact sample of T_0's stationary law;
// otherwise T_0 is applied once as burn-in before E_0 is recorded.
//
// Reverse runs the reversed bridge from caller-provided states, usually the
// forward end points after importance resampling (see Resample), giving the
// reverse work for BAR and the bidirectional cumulant estimator.
//
// Paths are independent and run concurrently on an errgroup bounded by
// WithWorkers. Path p always draws from mcmc.NewStream(seed, p), so results
// are identical for a given seed whatever the worker count.
package anneal
