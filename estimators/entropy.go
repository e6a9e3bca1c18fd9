package estimators

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Entropy is a tabulated microcanonical entropy: S[k] = log g(E[k]), where
// g is the (possibly unnormalized) density of states at energy E[k].
type Entropy struct {
	E []float64
	S []float64
}

// NewEntropy copies e and s into an Entropy.
// Returns ErrEmptySample for no levels and ErrLengthMismatch if the slices
// differ in length.
func NewEntropy(e, s []float64) (*Entropy, error) {
	if len(e) == 0 {
		return nil, fmt.Errorf("NewEntropy: %w", ErrEmptySample)
	}
	if len(e) != len(s) {
		return nil, fmt.Errorf("NewEntropy: len(E)=%d, len(S)=%d: %w", len(e), len(s), ErrLengthMismatch)
	}
	out := &Entropy{E: make([]float64, len(e)), S: make([]float64, len(s))}
	copy(out.E, e)
	copy(out.S, s)
	return out, nil
}

// Counts builds an Entropy from integer energies and their multiplicities.
// Levels with zero count are dropped.
func Counts(energies []int, counts []int) (*Entropy, error) {
	if len(energies) != len(counts) {
		return nil, fmt.Errorf("Counts: %w", ErrLengthMismatch)
	}
	var e, s []float64
	for k, c := range counts {
		if c <= 0 {
			continue
		}
		e = append(e, float64(energies[k]))
		s = append(s, math.Log(float64(c)))
	}
	return NewEntropy(e, s)
}

// Normalize shifts S so that Σ exp(S) = 1.
func (h *Entropy) Normalize() {
	floats.AddConst(-floats.LogSumExp(h.S), h.S)
}

// LogZ returns log Σ_k exp(−β·E[k] + S[k]).
func (h *Entropy) LogZ(beta float64) float64 {
	t := make([]float64, len(h.E))
	for k := range t {
		t[k] = -beta*h.E[k] + h.S[k]
	}
	return floats.LogSumExp(t)
}

// FreeEnergy returns −(log Z(β₁) − log Z(β₀)), the free-energy difference
// that the work estimators target for an anneal from β₀ to β₁.
func (h *Entropy) FreeEnergy(beta0, beta1 float64) float64 {
	return -(h.LogZ(beta1) - h.LogZ(beta0))
}
