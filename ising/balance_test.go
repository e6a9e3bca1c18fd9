package ising

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/paths/lattice"
	"github.com/katalvlaran/paths/mcmc"
)

// densityOfStates enumerates all 2^(L²) configurations and counts how many
// sit at each energy. Only sensible for L ≤ 4.
func densityOfStates(L int) map[int]float64 {
	n := L * L
	g := make(map[int]float64)
	x := make([]int32, n)
	for bits := 0; bits < 1<<n; bits++ {
		for k := 0; k < n; k++ {
			x[k] = int32(2*((bits>>k)&1) - 1)
		}
		g[energy(L, x)]++
	}
	return g
}

// TestSample_DetailedBalance compares the empirical energy histogram of a
// long chain on a 4×4 lattice with the exact Boltzmann law g(E)·exp(−βE)/Z
// using a chi-square goodness-of-fit test.
func TestSample_DetailedBalance(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	const (
		L       = 4
		beta    = 0.3
		burn    = 500 * L * L
		thin    = 4 * L * L
		samples = 40000
	)

	g := densityOfStates(L)
	z := 0.0
	for e, c := range g {
		z += c * math.Exp(-beta*float64(e))
	}

	rng := mcmc.NewRand(2024)
	x, err := lattice.RandomSpins(L, rng)
	require.NoError(t, err)
	_, err = Sample(rng, beta, burn, L, x)
	require.NoError(t, err)

	observed := make(map[int]float64)
	for s := 0; s < samples; s++ {
		_, err = Sample(rng, beta, thin, L, x)
		require.NoError(t, err)
		observed[energy(L, x)]++
	}

	// Bins with fewer than 5 expected counts are pooled into one.
	var chi2, poolObs, poolExp float64
	bins := 0
	for e, c := range g {
		exp := samples * c * math.Exp(-beta*float64(e)) / z
		if exp < 5 {
			poolObs += observed[e]
			poolExp += exp
			continue
		}
		d := observed[e] - exp
		chi2 += d * d / exp
		bins++
	}
	for e := range observed {
		_, ok := g[e]
		require.True(t, ok, "sampler produced impossible energy %d", e)
	}
	if poolExp > 0 {
		d := poolObs - poolExp
		chi2 += d * d / poolExp
		bins++
	}

	dist := distuv.ChiSquared{K: float64(bins - 1)}
	p := 1 - dist.CDF(chi2)
	t.Logf("chi2=%.2f bins=%d p=%.4f", chi2, bins, p)
	require.Greater(t, p, 1e-4, "energy histogram deviates from Boltzmann weights")
}
