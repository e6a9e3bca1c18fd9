package estimators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paths/ising"
)

func TestEntropy_TwoLevel(t *testing.T) {
	h, err := NewEntropy([]float64{0, 1}, []float64{0, 0})
	require.NoError(t, err)
	for _, beta := range []float64{0, 0.5, 2} {
		require.InDelta(t, math.Log(1+math.Exp(-beta)), h.LogZ(beta), 1e-12)
	}

	h.Normalize()
	require.InDelta(t, 0, h.LogZ(0), 1e-12)
	require.InDelta(t, -math.Log(2), h.S[0], 1e-12)
}

func TestEntropy_Errors(t *testing.T) {
	_, err := NewEntropy(nil, nil)
	require.ErrorIs(t, err, ErrEmptySample)
	_, err = NewEntropy([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, ErrLengthMismatch)
	_, err = Counts([]int{1}, nil)
	require.ErrorIs(t, err, ErrLengthMismatch)
	_, err = Counts([]int{1}, []int{0})
	require.ErrorIs(t, err, ErrEmptySample)
}

func TestEntropy_DoesNotAlias(t *testing.T) {
	e, s := []float64{0, 1}, []float64{0, 0}
	h, err := NewEntropy(e, s)
	require.NoError(t, err)
	h.Normalize()
	require.Equal(t, []float64{0, 0}, s)
}

// TestEntropy_IsingLogZ compares the tabulated partition function of a 3×3
// Ising lattice with a direct Boltzmann sum over all 512 configurations.
func TestEntropy_IsingLogZ(t *testing.T) {
	const L = 3
	n := L * L
	g := map[int]int{}
	var energies []float64
	x := make([]int32, n)
	for mask := 0; mask < 1<<n; mask++ {
		for k := 0; k < n; k++ {
			x[k] = int32(2*((mask>>k)&1) - 1)
		}
		e, err := ising.TotalEnergy(L, x)
		require.NoError(t, err)
		g[e]++
		energies = append(energies, float64(e))
	}

	var levels, counts []int
	for e := -2 * n; e <= 2*n; e++ {
		levels = append(levels, e)
		counts = append(counts, g[e])
	}
	h, err := Counts(levels, counts)
	require.NoError(t, err)
	require.InDelta(t, float64(n)*math.Log(2), h.LogZ(0), 1e-9)

	for _, beta := range []float64{0.2, 0.44, 1} {
		terms := make([]float64, len(energies))
		for k, e := range energies {
			terms[k] = -beta * e
		}
		require.InDelta(t, LogSumExp(terms), h.LogZ(beta), 1e-9, "beta=%g", beta)
	}

	dF := h.FreeEnergy(0, 1)
	require.InDelta(t, -(h.LogZ(1) - h.LogZ(0)), dF, 1e-12)
}
