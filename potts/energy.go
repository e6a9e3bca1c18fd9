// SPDX-License-Identifier: MIT

package potts

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/paths/lattice"
)

const (
	methodDeltaE      = "potts.DeltaE"
	methodTotalEnergy = "potts.TotalEnergy"
	methodSample      = "potts.Sample"
)

// ErrNegativeState indicates a proposed state below zero.
var ErrNegativeState = errors.New("potts: proposed state must be non-negative")

// DeltaE returns H(after) − H(before) if site (i,j) were set to state q:
//
//	ΔE = −Σ_nb [δ(q, nb) − δ(s(i,j), nb)].
//
// x is not modified. q equal to the current state gives 0.
//
// The identity with TotalEnergy needs L ≥ 2. On a 1×1 torus every
// neighbour is the site itself and a change of state returns 4 while H is
// constant.
//
// Errors: lattice.ErrBadSize, lattice.ErrLength, lattice.ErrSiteOutOfRange,
// ErrNegativeState.
func DeltaE(L int, x []int32, i, j int, q int32) (int, error) {
	if err := lattice.Check(L, x); err != nil {
		return 0, fmt.Errorf("%s: %w", methodDeltaE, err)
	}
	if err := lattice.CheckSite(L, i, j); err != nil {
		return 0, fmt.Errorf("%s: %w", methodDeltaE, err)
	}
	if q < 0 {
		return 0, fmt.Errorf("%s: q=%d: %w", methodDeltaE, q, ErrNegativeState)
	}
	return deltaE(L, x, i, j, q), nil
}

// TotalEnergy returns H(x) = −Σ [δ(s(i,j), s(i,j+1)) + δ(s(i,j), s(i+1,j))]
// with periodic wrap. The result lies in [−2L², 0].
//
// Errors: lattice.ErrBadSize, lattice.ErrLength.
func TotalEnergy(L int, x []int32) (int, error) {
	if err := lattice.Check(L, x); err != nil {
		return 0, fmt.Errorf("%s: %w", methodTotalEnergy, err)
	}
	return energy(L, x), nil
}

func delta(a, b int32) int {
	if a == b {
		return 1
	}
	return 0
}

func deltaE(L int, x []int32, i, j int, q int32) int {
	cur := x[i*L+j]
	d := 0
	for _, k := range lattice.Neighbors(L, i, j) {
		d += delta(q, x[k]) - delta(cur, x[k])
	}
	return -d
}

func energy(L int, x []int32) int {
	e := 0
	for i := 0; i < L; i++ {
		for j := 0; j < L; j++ {
			s := x[i*L+j]
			e += delta(s, x[lattice.Right(L, i, j)]) + delta(s, x[lattice.Down(L, i, j)])
		}
	}
	return -e
}
