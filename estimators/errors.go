package estimators

import "errors"

var (
	// ErrEmptySample indicates an estimator called with no work values.
	ErrEmptySample = errors.New("estimators: empty sample")
	// ErrLengthMismatch indicates paired slices of different lengths.
	ErrLengthMismatch = errors.New("estimators: length mismatch")
	// ErrNotConverged indicates an iterative estimator that did not reach
	// its tolerance within MaxIterations.
	ErrNotConverged = errors.New("estimators: iteration did not converge")
)
