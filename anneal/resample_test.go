package anneal

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paths/mcmc"
)

func newRand(seed int64) *rand.Rand { return mcmc.NewRand(seed) }

func TestWeights(t *testing.T) {
	p, err := Weights([]float64{-math.Log(3), 0})
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0.75, 0.25}, p, 1e-12)

	p, err = Weights([]float64{5, 5, 5, 5})
	require.NoError(t, err)
	require.InDelta(t, 4, EffectiveSampleSize(p), 1e-12)

	// a dominant path takes all the weight
	p, err = Weights([]float64{0, 1e9})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0}, p)
	require.InDelta(t, 1, EffectiveSampleSize(p), 1e-12)

	_, err = Weights(nil)
	require.ErrorIs(t, err, ErrNoPaths)
	_, err = Weights([]float64{math.Inf(1), math.Inf(1)})
	require.ErrorIs(t, err, ErrBadWeights)
}

func TestResample_Frequencies(t *testing.T) {
	const n = 40000
	idx, err := Resample(newRand(8), []float64{-math.Log(3), 0, 1e9}, n)
	require.NoError(t, err)
	require.Len(t, idx, n)

	var hits [3]int
	for _, k := range idx {
		hits[k]++
	}
	require.Zero(t, hits[2])
	require.InDelta(t, 0.75, float64(hits[0])/n, 0.01)
}

func TestResample_Errors(t *testing.T) {
	_, err := Resample(nil, []float64{0}, 1)
	require.ErrorIs(t, err, mcmc.ErrNilSource)
	_, err = Resample(newRand(1), []float64{0}, 0)
	require.ErrorIs(t, err, ErrNoPaths)
	_, err = Resample(newRand(1), nil, 1)
	require.ErrorIs(t, err, ErrNoPaths)
}

func TestSelect_Copies(t *testing.T) {
	states := [][]int32{{1, 1}, {-1, -1}}
	out := Select(states, []int{1, 1, 0})
	require.Equal(t, [][]int32{{-1, -1}, {-1, -1}, {1, 1}}, out)
	out[0][0] = 7
	require.Equal(t, int32(-1), states[1][0])
}
