// SPDX-License-Identifier: MIT

// Package rbm evaluates the energy of a binary Restricted Boltzmann Machine
//
//	E(v, h) = −( Σ_i a_i·v_i + Σ_j b_j·h_j + Σ_ij W_ij·v_i·h_j ),
//
// for a fully specified configuration x = (v, h), visible units first.
//
// Energy walks active units only: every v_i = 1 adds a_i plus W_ij for each
// active h_j, then every h_j = 1 adds b_j. Inactive units contribute zero, so
// this equals the bilinear form above at O(m·n) worst case. DenseEnergy
// evaluates the same form with gonum/mat and serves as a reference; the two
// agree up to floating-point summation order.
//
// Weights are row-major: W[i][j] = w[i·n + j] couples visible i to hidden j.
// The package only reads its arguments and keeps no state.
package rbm
