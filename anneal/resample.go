package anneal

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/paths/lattice"
	"github.com/katalvlaran/paths/mcmc"
)

// Weights returns the normalized importance weights p_k ∝ exp(−W_k).
// Returns ErrNoPaths for empty work and ErrBadWeights if no weight is
// finite and positive.
func Weights(work []float64) ([]float64, error) {
	if len(work) == 0 {
		return nil, fmt.Errorf("Weights: %w", ErrNoPaths)
	}
	p := make([]float64, len(work))
	floats.ScaleTo(p, -1, work)
	z := floats.LogSumExp(p)
	if math.IsInf(z, 0) || math.IsNaN(z) {
		return nil, fmt.Errorf("Weights: log-normalizer %g: %w", z, ErrBadWeights)
	}
	for k := range p {
		p[k] = math.Exp(p[k] - z)
	}
	return p, nil
}

// EffectiveSampleSize returns 1/Σp², between 1 and len(p) for normalized
// weights.
func EffectiveSampleSize(p []float64) float64 {
	return 1 / floats.Dot(p, p)
}

// Resample draws n path indices with replacement, index k with probability
// p_k ∝ exp(−W_k).
func Resample(rng mcmc.Source, work []float64, n int) ([]int, error) {
	if rng == nil {
		return nil, fmt.Errorf("Resample: %w", mcmc.ErrNilSource)
	}
	if n <= 0 {
		return nil, fmt.Errorf("Resample(n=%d): %w", n, ErrNoPaths)
	}
	p, err := Weights(work)
	if err != nil {
		return nil, fmt.Errorf("Resample: %w", err)
	}
	cdf := floats.CumSum(make([]float64, len(p)), p)
	total := cdf[len(cdf)-1]

	idx := make([]int, n)
	for i := range idx {
		u := rng.Float64() * total
		k := sort.Search(len(cdf), func(k int) bool { return cdf[k] > u })
		if k == len(cdf) {
			k--
		}
		idx[i] = k
	}
	return idx, nil
}

// Select returns copies of states[idx[0]], states[idx[1]], ….
func Select(states [][]int32, idx []int) [][]int32 {
	out := make([][]int32, len(idx))
	for i, k := range idx {
		out[i] = lattice.Clone(states[k])
	}
	return out
}
