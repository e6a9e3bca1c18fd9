// SPDX-License-Identifier: MIT

package lattice

import "fmt"

// Wrap folds k into [0, L). Go's % keeps the sign of the dividend, so a
// plain k%L would return -1 for k = -1; the extra +L corrects that.
// L must be positive.
// Complexity: O(1).
func Wrap(k, L int) int {
	k %= L
	if k < 0 {
		k += L
	}
	return k
}

// Index maps (i,j) to the row-major offset i·L + j.
// No bounds check; see CheckSite.
// Complexity: O(1).
func Index(L, i, j int) int {
	return i*L + j
}

// Coordinate converts a row-major offset back to (i,j).
// Complexity: O(1).
func Coordinate(L, idx int) (i, j int) {
	return idx / L, idx % L
}

// Neighbors returns the flat offsets of the four periodic nearest neighbours
// of (i,j) in the order north, south, west, east.
// Complexity: O(1).
func Neighbors(L, i, j int) [4]int {
	up, down := Wrap(i-1, L), Wrap(i+1, L)
	left, right := Wrap(j-1, L), Wrap(j+1, L)
	return [4]int{
		up*L + j,
		down*L + j,
		i*L + left,
		i*L + right,
	}
}

// Right returns the flat offset of the east neighbour of (i,j).
func Right(L, i, j int) int {
	return i*L + Wrap(j+1, L)
}

// Down returns the flat offset of the south neighbour of (i,j).
func Down(L, i, j int) int {
	return Wrap(i+1, L)*L + j
}

// Check verifies L > 0 and len(x) == L².
// Complexity: O(1).
func Check(L int, x []int32) error {
	if L <= 0 {
		return fmt.Errorf("L=%d: %w", L, ErrBadSize)
	}
	if len(x) != L*L {
		return fmt.Errorf("len=%d, want %d: %w", len(x), L*L, ErrLength)
	}
	return nil
}

// CheckSite verifies 0 ≤ i,j < L.
// Complexity: O(1).
func CheckSite(L, i, j int) error {
	if i < 0 || i >= L || j < 0 || j >= L {
		return fmt.Errorf("site (%d,%d) with L=%d: %w", i, j, L, ErrSiteOutOfRange)
	}
	return nil
}

// CheckSpins verifies every site of an Ising buffer holds -1 or +1.
// Complexity: O(len(x)).
func CheckSpins(x []int32) error {
	for k, s := range x {
		if s != 1 && s != -1 {
			return fmt.Errorf("x[%d]=%d: %w", k, s, ErrInvalidSpin)
		}
	}
	return nil
}

// CheckStates verifies every site of a Potts buffer holds a value in [0,Q).
// Complexity: O(len(x)).
func CheckStates(x []int32, Q int) error {
	if Q <= 0 {
		return fmt.Errorf("Q=%d: %w", Q, ErrBadAlphabet)
	}
	for k, s := range x {
		if s < 0 || int(s) >= Q {
			return fmt.Errorf("x[%d]=%d with Q=%d: %w", k, s, Q, ErrInvalidState)
		}
	}
	return nil
}

// Clone returns a copy of x that shares no memory with it.
func Clone(x []int32) []int32 {
	out := make([]int32, len(x))
	copy(out, x)
	return out
}
