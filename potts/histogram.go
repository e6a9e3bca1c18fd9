// SPDX-License-Identifier: MIT

package potts

import (
	"errors"
	"sort"
)

// ErrHistogramSize indicates a lattice too small for the energy histogram.
var ErrHistogramSize = errors.New("potts: histogram needs L >= 2")

// Histogram bins Potts energies of an L×L periodic lattice.
//
// The admissible energies are −2L², −2L²+4, −2L²+6, −2L²+7, …, 0: starting
// from the uniform ground state the cheapest excitation breaks four bonds,
// and −2L²+1, −2L²+2, −2L²+3 and −2L²+5 are unreachable.
type Histogram struct {
	energies []int
}

// NewHistogram builds the bin layout for an L×L lattice.
// Complexity: O(L²).
func NewHistogram(L int) (*Histogram, error) {
	if L < 2 {
		return nil, ErrHistogramSize
	}
	lo := -2 * L * L
	energies := []int{lo, lo + 4}
	for e := lo + 6; e <= 0; e++ {
		energies = append(energies, e)
	}
	return &Histogram{energies: energies}, nil
}

// Energies returns a copy of the bin energies in ascending order.
func (h *Histogram) Energies() []int {
	out := make([]int, len(h.energies))
	copy(out, h.energies)
	return out
}

// Count returns per-bin counts for the given energies. An energy between two
// admissible values is counted in the lower bin; energies outside
// [−2L², 0] are dropped.
// Complexity: O(len(energies)·log bins).
func (h *Histogram) Count(energies []int) []int {
	counts := make([]int, len(h.energies))
	lo, hi := h.energies[0], h.energies[len(h.energies)-1]
	for _, e := range energies {
		if e < lo || e > hi {
			continue
		}
		k := sort.SearchInts(h.energies, e+1) - 1
		counts[k]++
	}
	return counts
}
