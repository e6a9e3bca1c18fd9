// SPDX-License-Identifier: MIT

package ising

import (
	"fmt"

	"github.com/katalvlaran/paths/lattice"
)

const (
	methodDeltaE      = "ising.DeltaE"
	methodTotalEnergy = "ising.TotalEnergy"
	methodSample      = "ising.Sample"
)

// DeltaE returns the energy change H(after) − H(before) if the spin at (i,j)
// were flipped. x is not modified.
//
// The identity with TotalEnergy needs L ≥ 2. On a 1×1 torus the site is its
// own neighbour four times and DeltaE returns 2·s·4s = 8 while H is constant.
//
// Errors: lattice.ErrBadSize, lattice.ErrLength, lattice.ErrSiteOutOfRange.
// Spin values are not checked here; a non-±1 site yields the same arithmetic
// as the formula would.
func DeltaE(L int, x []int32, i, j int) (int, error) {
	if err := lattice.Check(L, x); err != nil {
		return 0, fmt.Errorf("%s: %w", methodDeltaE, err)
	}
	if err := lattice.CheckSite(L, i, j); err != nil {
		return 0, fmt.Errorf("%s: %w", methodDeltaE, err)
	}
	return deltaE(L, x, i, j), nil
}

// TotalEnergy returns H(x) = −Σ s(i,j)·(s(i,j+1) + s(i+1,j)) with periodic
// wrap. The result lies in [−2L², 2L²].
//
// Errors: lattice.ErrBadSize, lattice.ErrLength.
func TotalEnergy(L int, x []int32) (int, error) {
	if err := lattice.Check(L, x); err != nil {
		return 0, fmt.Errorf("%s: %w", methodTotalEnergy, err)
	}
	return energy(L, x), nil
}

// Magnetization returns Σ s over all sites.
func Magnetization(x []int32) int {
	m := 0
	for _, s := range x {
		m += int(s)
	}
	return m
}

// deltaE is the unchecked flip cost: 2·s(i,j)·(N + S + W + E).
func deltaE(L int, x []int32, i, j int) int {
	nb := lattice.Neighbors(L, i, j)
	sum := x[nb[0]] + x[nb[1]] + x[nb[2]] + x[nb[3]]
	return int(2 * x[i*L+j] * sum)
}

// energy is the unchecked right+down bond sum.
func energy(L int, x []int32) int {
	e := 0
	for i := 0; i < L; i++ {
		for j := 0; j < L; j++ {
			s := x[i*L+j]
			e += int(s * (x[lattice.Right(L, i, j)] + x[lattice.Down(L, i, j)]))
		}
	}
	return -e
}
