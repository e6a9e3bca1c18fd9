// SPDX-License-Identifier: MIT

package rbm

import "errors"

var (
	// ErrConfigLength indicates len(x) ≠ m + n.
	ErrConfigLength = errors.New("rbm: configuration length must be m+n")
	// ErrWeightShape indicates a weight matrix that is not m×n.
	ErrWeightShape = errors.New("rbm: weight matrix must be m x n")
	// ErrInvalidUnit indicates a unit value other than 0 or 1.
	ErrInvalidUnit = errors.New("rbm: unit must be 0 or 1")
	// ErrEmptyLayer indicates a layer with no units.
	ErrEmptyLayer = errors.New("rbm: layers must have at least one unit")
)
