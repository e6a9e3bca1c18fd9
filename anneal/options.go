package anneal

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/paths/mcmc"
)

// Option customizes Forward and Reverse.
// Option constructors panic on meaningless input; runs never do.
type Option func(*options)

type options struct {
	seed     int64
	workers  int
	logger   *zap.Logger
	progress func()
}

func newOptions(opts []Option) options {
	o := options{
		seed:    mcmc.DefaultSeed,
		workers: runtime.GOMAXPROCS(0),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSeed sets the root seed of the per-path random streams.
// Zero selects mcmc.DefaultSeed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		if seed == 0 {
			seed = mcmc.DefaultSeed
		}
		o.seed = seed
	}
}

// WithWorkers bounds the number of paths simulated at once.
// Default: runtime.GOMAXPROCS(0). Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("anneal: WithWorkers(n<1)")
	}
	return func(o *options) {
		o.workers = n
	}
}

// WithLogger attaches a logger for run-level events. Default: zap.NewNop().
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("anneal: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// WithProgress registers fn to be called once per finished path.
// Calls are serialized. Panics on nil.
func WithProgress(fn func()) Option {
	if fn == nil {
		panic("anneal: WithProgress(nil)")
	}
	return func(o *options) {
		o.progress = fn
	}
}
