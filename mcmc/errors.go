// SPDX-License-Identifier: MIT

package mcmc

import "errors"

var (
	// ErrNilSource indicates a sampling call without a random source.
	ErrNilSource = errors.New("mcmc: random source is nil")
	// ErrNegativeSteps indicates a negative proposal count.
	ErrNegativeSteps = errors.New("mcmc: proposal count must be non-negative")
	// ErrNilModel indicates a kernel without a model.
	ErrNilModel = errors.New("mcmc: model is nil")
)
