package anneal

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/paths/mcmc"
)

// Linspace returns n inverse temperatures evenly spaced from start to end,
// both included. n = 1 yields [start].
func Linspace(start, end float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Linspace(n=%d): %w", n, ErrEmptySchedule)
	}
	if n == 1 {
		return []float64{start}, nil
	}
	return floats.Span(make([]float64, n), start, end), nil
}

// Bridge is a sequence of kernels on one model, one per inverse temperature.
type Bridge struct {
	Kernels []mcmc.Kernel
}

// NewBridge builds one kernel per schedule entry, each applying steps
// single-site proposals per transition.
//
// Errors: mcmc.ErrNilModel, ErrEmptySchedule, mcmc.ErrNegativeSteps.
func NewBridge(model mcmc.Model, schedule []float64, steps int) (*Bridge, error) {
	if model == nil {
		return nil, fmt.Errorf("NewBridge: %w", mcmc.ErrNilModel)
	}
	if len(schedule) == 0 {
		return nil, fmt.Errorf("NewBridge: %w", ErrEmptySchedule)
	}
	if steps < 0 {
		return nil, fmt.Errorf("NewBridge(steps=%d): %w", steps, mcmc.ErrNegativeSteps)
	}
	b := &Bridge{Kernels: make([]mcmc.Kernel, len(schedule))}
	for k, beta := range schedule {
		b.Kernels[k] = mcmc.Kernel{Model: model, Beta: beta, Steps: steps}
	}
	return b, nil
}

// Len returns the number of kernels.
func (b *Bridge) Len() int { return len(b.Kernels) }

// Schedule returns the inverse temperatures of the kernels in order.
func (b *Bridge) Schedule() []float64 {
	out := make([]float64, len(b.Kernels))
	for k, T := range b.Kernels {
		out[k] = T.Beta
	}
	return out
}

// Reverse returns a new bridge with the kernels in opposite order.
func (b *Bridge) Reverse() *Bridge {
	n := len(b.Kernels)
	r := &Bridge{Kernels: make([]mcmc.Kernel, n)}
	for k, T := range b.Kernels {
		r.Kernels[n-1-k] = T
	}
	return r
}

func (b *Bridge) check() error {
	if len(b.Kernels) == 0 {
		return ErrEmptySchedule
	}
	for k, T := range b.Kernels {
		if T.Model == nil {
			return fmt.Errorf("kernel %d: %w", k, mcmc.ErrNilModel)
		}
	}
	return nil
}
