package anneal

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/paths/lattice"
	"github.com/katalvlaran/paths/mcmc"
)

// reverseStreams offsets the stream ids of reverse paths so that they never
// share a generator with forward paths of the same seed.
const reverseStreams uint64 = 1 << 32

// Result holds per-path outcomes indexed by path number.
type Result struct {
	// Work is W for each path.
	Work []float64
	// Energies[p][k] is the unscaled energy after kernel k of path p.
	Energies [][]int
	// Final is the end state of each path.
	Final [][]int32
	// Accepted counts accepted proposals over the whole path.
	Accepted []int
}

// Len returns the number of paths.
func (r *Result) Len() int { return len(r.Work) }

// startFunc produces the initial state of path p and the number of
// proposals accepted while producing it.
type startFunc func(p int, rng *rand.Rand) ([]int32, int, error)

// Forward simulates nPaths forward paths through b.
//
// Errors: ErrEmptySchedule, mcmc.ErrNilModel, ErrNoPaths, ctx.Err() on
// cancellation, and any model error wrapped with the failing path.
func Forward(ctx context.Context, b *Bridge, nPaths int, opts ...Option) (*Result, error) {
	if b == nil {
		return nil, fmt.Errorf("Forward: %w", ErrEmptySchedule)
	}
	if err := b.check(); err != nil {
		return nil, fmt.Errorf("Forward: %w", err)
	}
	if nPaths <= 0 {
		return nil, fmt.Errorf("Forward(nPaths=%d): %w", nPaths, ErrNoPaths)
	}
	first := b.Kernels[0]
	start := func(_ int, rng *rand.Rand) ([]int32, int, error) {
		x, err := first.Model.Draw(rng)
		if err != nil {
			return nil, 0, err
		}
		if first.Beta == 0 {
			return x, 0, nil
		}
		return first.Transition(rng, x)
	}
	return run(ctx, "forward", b, nPaths, 0, start, newOptions(opts))
}

// Reverse simulates one path per start state through the reversed bridge.
// starts is not modified.
//
// Errors: as Forward; ErrNoPaths for no start states.
func Reverse(ctx context.Context, b *Bridge, starts [][]int32, opts ...Option) (*Result, error) {
	if b == nil {
		return nil, fmt.Errorf("Reverse: %w", ErrEmptySchedule)
	}
	if err := b.check(); err != nil {
		return nil, fmt.Errorf("Reverse: %w", err)
	}
	if len(starts) == 0 {
		return nil, fmt.Errorf("Reverse: %w", ErrNoPaths)
	}
	start := func(p int, _ *rand.Rand) ([]int32, int, error) {
		return lattice.Clone(starts[p]), 0, nil
	}
	return run(ctx, "reverse", b.Reverse(), len(starts), reverseStreams, start, newOptions(opts))
}

func run(ctx context.Context, dir string, b *Bridge, n int, offset uint64, start startFunc, o options) (*Result, error) {
	res := &Result{
		Work:     make([]float64, n),
		Energies: make([][]int, n),
		Final:    make([][]int32, n),
		Accepted: make([]int, n),
	}
	betas := b.Schedule()
	log := o.logger.With(
		zap.String("direction", dir),
		zap.Int("paths", n),
		zap.Int("kernels", len(betas)),
		zap.Int64("seed", o.seed),
	)
	log.Info("anneal: start", zap.Int("workers", o.workers))
	began := time.Now()

	var mu sync.Mutex
	finished := func() {
		if o.progress == nil {
			return
		}
		mu.Lock()
		o.progress()
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for p := 0; p < n; p++ {
		p := p
		g.Go(func() error {
			rng := mcmc.NewStream(o.seed, offset+uint64(p))
			if err := walk(gctx, b, betas, p, rng, start, res); err != nil {
				return fmt.Errorf("%s path %d: %w", dir, p, err)
			}
			finished()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Warn("anneal: aborted", zap.Error(err))
		return nil, err
	}
	log.Info("anneal: done", zap.Duration("elapsed", time.Since(began)))
	return res, nil
}

// walk runs path p and writes its outcome into slot p of res.
func walk(ctx context.Context, b *Bridge, betas []float64, p int, rng *rand.Rand, start startFunc, res *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	x, accepted, err := start(p, rng)
	if err != nil {
		return err
	}
	energies := make([]int, len(betas))
	if energies[0], err = b.Kernels[0].Model.Energy(x); err != nil {
		return err
	}

	work := 0.0
	for k := 1; k < len(betas); k++ {
		if err = ctx.Err(); err != nil {
			return err
		}
		work += (betas[k] - betas[k-1]) * float64(energies[k-1])

		var a int
		T := b.Kernels[k]
		if x, a, err = T.Transition(rng, x); err != nil {
			return err
		}
		accepted += a
		if energies[k], err = T.Model.Energy(x); err != nil {
			return err
		}
	}

	res.Work[p] = work
	res.Energies[p] = energies
	res.Final[p] = x
	res.Accepted[p] = accepted
	return nil
}
