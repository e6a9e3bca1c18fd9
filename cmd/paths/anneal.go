package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/paths/anneal"
	"github.com/katalvlaran/paths/config"
	"github.com/katalvlaran/paths/estimators"
	"github.com/katalvlaran/paths/ising"
	"github.com/katalvlaran/paths/mcmc"
	"github.com/katalvlaran/paths/potts"
)

func newAnnealCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "anneal",
		Short: "Run annealing paths and estimate the free-energy difference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			applyAnneal(cmd, &a.cfg.Anneal)
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.runAnneal(cmd, a.cfg.Anneal)
		},
	}
	f := cmd.Flags()
	f.String("model", "", "ising or potts")
	f.Int("l", 0, "lattice side length")
	f.Int("q", 0, "number of Potts states")
	f.Float64("beta-start", 0, "first inverse temperature")
	f.Float64("beta-end", 0, "last inverse temperature")
	f.Int("kernels", 0, "number of inverse temperatures")
	f.Int("sweeps", 0, "sweeps per kernel")
	f.Int("paths", 0, "number of forward paths")
	f.Bool("reverse", false, "also run reverse paths from resampled end states")
	return cmd
}

func applyAnneal(cmd *cobra.Command, c *config.Anneal) {
	f := cmd.Flags()
	if f.Changed("model") {
		c.Model, _ = f.GetString("model")
	}
	if f.Changed("l") {
		c.L, _ = f.GetInt("l")
	}
	if f.Changed("q") {
		c.Q, _ = f.GetInt("q")
	}
	if f.Changed("beta-start") {
		c.BetaStart, _ = f.GetFloat64("beta-start")
	}
	if f.Changed("beta-end") {
		c.BetaEnd, _ = f.GetFloat64("beta-end")
	}
	if f.Changed("kernels") {
		c.Kernels, _ = f.GetInt("kernels")
	}
	if f.Changed("sweeps") {
		c.Sweeps, _ = f.GetInt("sweeps")
	}
	if f.Changed("paths") {
		c.Paths, _ = f.GetInt("paths")
	}
	if f.Changed("reverse") {
		c.Reverse, _ = f.GetBool("reverse")
	}
}

func (a *app) runAnneal(cmd *cobra.Command, c config.Anneal) error {
	var model mcmc.Model
	switch c.Model {
	case config.ModelPotts:
		model = potts.NewModel(c.L, c.Q)
	default:
		model = ising.NewModel(c.L)
	}
	schedule, err := anneal.Linspace(c.BetaStart, c.BetaEnd, c.Kernels)
	if err != nil {
		return err
	}
	bridge, err := anneal.NewBridge(model, schedule, c.Steps())
	if err != nil {
		return err
	}

	opts := []anneal.Option{anneal.WithSeed(a.cfg.Seed), anneal.WithLogger(a.log)}
	if a.cfg.Workers > 0 {
		opts = append(opts, anneal.WithWorkers(a.cfg.Workers))
	}
	ctx := cmd.Context()
	withBar := func(name string) ([]anneal.Option, func()) {
		bar := a.progress(cmd, c.Paths, name)
		return append(opts[:len(opts):len(opts)], anneal.WithProgress(func() { _ = bar.Add(1) })),
			func() { _ = bar.Finish() }
	}

	fopts, done := withBar("forward")
	fwd, err := anneal.Forward(ctx, bridge, c.Paths, fopts...)
	if err != nil {
		return err
	}
	done()

	rows := make([][]string, 0, 7)
	add := func(name string, dF float64, err error) {
		if err != nil {
			a.log.Warn("anneal: estimator failed", zap.String("estimator", name), zap.Error(err))
			rows = append(rows, []string{name, "-", "-"})
			return
		}
		rows = append(rows, []string{name, fmt.Sprintf("%.4f", dF), fmt.Sprintf("%.4f", -dF)})
	}
	jf, err := estimators.Jarzynski(fwd.Work)
	add("jarzynski forward", jf, err)
	cf, err := estimators.Cumulant(fwd.Work)
	add("cumulant forward", cf, err)

	weights, err := anneal.Weights(fwd.Work)
	if err != nil {
		return err
	}
	ess := anneal.EffectiveSampleSize(weights)
	a.log.Info("anneal: forward done", zap.Float64("ess", ess))

	if c.Reverse {
		idx, err := anneal.Resample(a.stream(streamResample), fwd.Work, c.Paths)
		if err != nil {
			return err
		}
		ropts, done := withBar("reverse")
		rev, err := anneal.Reverse(ctx, bridge, anneal.Select(fwd.Final, idx), ropts...)
		if err != nil {
			return err
		}
		done()

		jr, err := estimators.Jarzynski(rev.Work)
		add("jarzynski reverse", -jr, err)
		cb, err := estimators.CumulantBidirectional(fwd.Work, rev.Work)
		add("cumulant bidirectional", cb, err)
		b, err := estimators.BAR(fwd.Work, rev.Work, 0)
		add("bar", b, err)
		h, _, err := estimators.Histogram(fwd.Work, rev.Work, 0, 0, 0)
		add("histogram", h, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "model=%s L=%d kernels=%d paths=%d ess=%.1f\n\n", c.Model, c.L, c.Kernels, c.Paths, ess)
	renderTable(out, []string{"ESTIMATOR", "DELTA F", "LOG Z1/Z0"}, rows)
	return nil
}
