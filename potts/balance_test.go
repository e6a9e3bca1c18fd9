package potts

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/paths/lattice"
	"github.com/katalvlaran/paths/mcmc"
)

// densityOfStates enumerates all Q^(L²) configurations by energy.
func densityOfStates(L, Q int) map[int]float64 {
	n := L * L
	total := 1
	for k := 0; k < n; k++ {
		total *= Q
	}
	g := make(map[int]float64)
	x := make([]int32, n)
	for code := 0; code < total; code++ {
		c := code
		for k := 0; k < n; k++ {
			x[k] = int32(c % Q)
			c /= Q
		}
		g[energy(L, x)]++
	}
	return g
}

// TestSample_DetailedBalance checks the 3×3, Q=3 chain against the exact
// Boltzmann energy distribution with a chi-square test.
func TestSample_DetailedBalance(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	const (
		L       = 3
		Q       = 3
		beta    = 0.6
		burn    = 500 * L * L
		thin    = 4 * L * L
		samples = 40000
	)
	g := densityOfStates(L, Q)
	z := 0.0
	for e, c := range g {
		z += c * math.Exp(-beta*float64(e))
	}

	rng := mcmc.NewRand(77)
	x, err := lattice.RandomStates(L, Q, rng)
	require.NoError(t, err)
	_, err = Sample(rng, beta, burn, L, Q, x)
	require.NoError(t, err)

	observed := make(map[int]float64)
	for s := 0; s < samples; s++ {
		_, err = Sample(rng, beta, thin, L, Q, x)
		require.NoError(t, err)
		observed[energy(L, x)]++
	}

	var chi2, poolObs, poolExp float64
	bins := 0
	for e, c := range g {
		want := samples * c * math.Exp(-beta*float64(e)) / z
		if want < 5 {
			poolObs += observed[e]
			poolExp += want
			continue
		}
		d := observed[e] - want
		chi2 += d * d / want
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

	p := 1 - distuv.ChiSquared{K: float64(bins - 1)}.CDF(chi2)
	t.Logf("chi2=%.2f bins=%d p=%.4f", chi2, bins, p)
	require.Greater(t, p, 1e-4)
}
