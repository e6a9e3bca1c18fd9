// SPDX-License-Identifier: MIT

package lattice

import "errors"

// Sentinel errors for lattice validation. Callers match them with errors.Is;
// the checks below wrap them with the offending values.
var (
	// ErrBadSize indicates a non-positive lattice dimension.
	ErrBadSize = errors.New("lattice: dimension L must be positive")
	// ErrLength indicates a buffer whose length is not L².
	ErrLength = errors.New("lattice: buffer length must be L*L")
	// ErrSiteOutOfRange indicates a site coordinate outside [0,L).
	ErrSiteOutOfRange = errors.New("lattice: site out of range")
	// ErrInvalidSpin indicates an Ising site value other than -1 or +1.
	ErrInvalidSpin = errors.New("lattice: spin must be -1 or +1")
	// ErrInvalidState indicates a Potts site value outside [0,Q).
	ErrInvalidState = errors.New("lattice: state out of alphabet")
	// ErrBadAlphabet indicates a non-positive Potts alphabet size.
	ErrBadAlphabet = errors.New("lattice: alphabet size Q must be positive")
)
