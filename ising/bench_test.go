package ising_test

import (
	"testing"

	"github.com/katalvlaran/paths/ising"
	"github.com/katalvlaran/paths/lattice"
	"github.com/katalvlaran/paths/mcmc"
)

// BenchmarkSample measures one sweep (L² proposals) on a 64×64 lattice near
// the critical inverse temperature.
func BenchmarkSample(b *testing.B) {
	const L = 64
	rng := mcmc.NewRand(42)
	x, err := lattice.RandomSpins(L, rng)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}
	beta := 0.5 * 0.8813735870195430 // ½·ln(1+√2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ising.Sample(rng, beta, L*L, L, x)
	}
}

// BenchmarkTotalEnergy measures a full O(L²) energy evaluation.
func BenchmarkTotalEnergy(b *testing.B) {
	const L = 256
	x, _ := lattice.RandomSpins(L, mcmc.NewRand(42))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ising.TotalEnergy(L, x)
	}
}
