// SPDX-License-Identifier: MIT

package lattice

// Intner is the part of a random stream needed to draw site values.
// *math/rand.Rand satisfies it.
type Intner interface {
	Intn(n int) int
}

// RandomSpins returns an L×L Ising configuration with every spin drawn
// uniformly from {-1,+1}. This is the stationary sample at β = 0.
// Returns ErrBadSize if L ≤ 0.
// Complexity: O(L²).
func RandomSpins(L int, rng Intner) ([]int32, error) {
	if L <= 0 {
		return nil, ErrBadSize
	}
	x := make([]int32, L*L)
	for k := range x {
		x[k] = int32(2*rng.Intn(2) - 1)
	}
	return x, nil
}

// RandomStates returns an L×L Potts configuration with every state drawn
// uniformly from [0,Q).
// Returns ErrBadSize if L ≤ 0 and ErrBadAlphabet if Q ≤ 0.
// Complexity: O(L²).
func RandomStates(L, Q int, rng Intner) ([]int32, error) {
	if L <= 0 {
		return nil, ErrBadSize
	}
	if Q <= 0 {
		return nil, ErrBadAlphabet
	}
	x := make([]int32, L*L)
	for k := range x {
		x[k] = int32(rng.Intn(Q))
	}
	return x, nil
}

// Uniform returns an L×L buffer with every site set to v.
func Uniform(L int, v int32) []int32 {
	if L <= 0 {
		return nil
	}
	x := make([]int32, L*L)
	for k := range x {
		x[k] = v
	}
	return x
}
