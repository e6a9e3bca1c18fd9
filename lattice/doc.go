// SPDX-License-Identifier: MIT

// Package lattice addresses a square L×L grid with periodic boundary
// conditions, stored as a flat row-major buffer of int32 site values.
//
// What:
//
//   - Index / Coordinate map (i,j) ↔ i·L + j.
//   - Wrap folds any integer offset into [0, L), including negative offsets.
//   - Neighbors returns the four periodic nearest neighbours (N, S, W, E);
//     Right and Down give the two bonds each site owns when every bond is
//     visited exactly once.
//   - Check, CheckSite, CheckSpins and CheckStates form the validated boundary
//     used by the ising and potts packages before entering unchecked loops.
//   - RandomSpins / RandomStates draw uniform configurations (the β=0 sample).
//   - Domains finds clusters of equal-valued sites under periodic
//     4-connectivity.
//
// Ownership:
//
//	Buffers belong to the caller. Nothing here retains a reference after
//	returning, and only the random fillers write into a buffer.
//
// Complexity:
//
//   - Index, Coordinate, Wrap, Neighbors: O(1).
//   - Check*, Domains: O(L²) time; Domains uses O(L²) memory.
//
// Errors:
//
//   - ErrBadSize:          L ≤ 0.
//   - ErrLength:           len(x) ≠ L².
//   - ErrSiteOutOfRange:   (i,j) outside [0,L)².
//   - ErrInvalidSpin:      an Ising site holds a value other than ±1.
//   - ErrInvalidState:     a Potts site holds a value outside [0,Q).
//   - ErrBadAlphabet:      Q ≤ 0.
package lattice
