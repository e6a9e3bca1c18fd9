package anneal

import "errors"

var (
	// ErrEmptySchedule indicates a schedule with no inverse temperatures.
	ErrEmptySchedule = errors.New("anneal: empty schedule")
	// ErrNoPaths indicates a request for zero paths or no start states.
	ErrNoPaths = errors.New("anneal: no paths")
	// ErrBadWeights indicates work values with no finite importance weight.
	ErrBadWeights = errors.New("anneal: importance weights are not finite")
)
