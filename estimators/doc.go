// Package estimators turns nonequilibrium work samples into free-energy
// estimates.
//
// Work values are dimensionless (already multiplied by β). For a forward
// protocol from ensemble 0 to ensemble 1 the free-energy difference is
//
//	ΔF = −log(Z₁/Z₀),
//
// so −ΔF is the log-evidence ratio that annealed importance sampling
// estimates. Forward work W_f satisfies ⟨exp(−W_f)⟩ = exp(−ΔF); reverse work
// W_r (the same protocol run backwards) satisfies ⟨exp(−W_r)⟩ = exp(+ΔF).
//
// Estimators:
//
//   - Jarzynski: log N − logsumexp(−W_f).
//   - Cumulant: second-order cumulant expansion of one or both directions.
//   - BAR: Bennett's acceptance ratio, the minimum-variance combination of
//     forward and reverse work.
//   - Histogram: self-consistent density of states over the pooled work of
//     both directions, returned as an Entropy along with ΔF.
//
// Entropy holds a tabulated microcanonical entropy log g(E) and evaluates
// log Z(β) exactly, which gives tests and the CLI a reference value.
package estimators
