package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/paths/config"
	"github.com/katalvlaran/paths/ising"
	"github.com/katalvlaran/paths/lattice"
	"github.com/katalvlaran/paths/mcmc"
	"github.com/katalvlaran/paths/potts"
)

// checkpoints is the number of table rows printed per run.
const checkpoints = 10

func bindLattice(cmd *cobra.Command, withQ bool) {
	f := cmd.Flags()
	f.Int("l", 0, "lattice side length")
	f.Float64("beta", 0, "inverse temperature")
	f.Int("sweeps", 0, "number of sweeps (L² proposals each)")
	if withQ {
		f.Int("q", 0, "number of Potts states")
	}
}

func applyLattice(cmd *cobra.Command, c *config.Lattice) {
	f := cmd.Flags()
	if f.Changed("l") {
		c.L, _ = f.GetInt("l")
	}
	if f.Changed("beta") {
		c.Beta, _ = f.GetFloat64("beta")
	}
	if f.Changed("sweeps") {
		c.Sweeps, _ = f.GetInt("sweeps")
	}
	if f.Lookup("q") != nil && f.Changed("q") {
		c.Q, _ = f.GetInt("q")
	}
}

func newIsingCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ising",
		Short: "Sample an L×L Ising lattice at fixed β",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			applyLattice(cmd, &a.cfg.Ising)
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.runIsing(cmd, a.cfg.Ising)
		},
	}
	bindLattice(cmd, false)
	return cmd
}

func newPottsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "potts",
		Short: "Sample an L×L Q-state Potts lattice at fixed β",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			applyLattice(cmd, &a.cfg.Potts)
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.runPotts(cmd, a.cfg.Potts)
		},
	}
	bindLattice(cmd, true)
	return cmd
}

// chain runs sweeps Metropolis sweeps of m on x and calls visit at evenly
// spaced checkpoints with the acceptance rate since the previous one.
// Sweep 0 is always visited with the initial state.
func (a *app) chain(cmd *cobra.Command, name string, m mcmc.Model, c config.Lattice, x []int32,
	visit func(sweep int, rate float64) error) error {
	rng := a.stream(streamChain)
	if err := visit(0, 0); err != nil {
		return err
	}
	every := c.Sweeps / checkpoints
	if every < 1 {
		every = 1
	}
	siteCount := c.L * c.L

	bar := a.progress(cmd, c.Sweeps, name)
	accepted, proposed := 0, 0
	for s := 1; s <= c.Sweeps; s++ {
		n, err := m.Sample(rng, c.Beta, siteCount, x)
		if err != nil {
			return err
		}
		accepted += n
		proposed += siteCount
		_ = bar.Add(1)

		if s%every == 0 || s == c.Sweeps {
			if err = visit(s, float64(accepted)/float64(proposed)); err != nil {
				return err
			}
			accepted, proposed = 0, 0
		}
	}
	_ = bar.Finish()
	return nil
}

func (a *app) runIsing(cmd *cobra.Command, c config.Lattice) error {
	m := ising.NewModel(c.L)
	x, err := m.Draw(a.stream(streamInit))
	if err != nil {
		return err
	}
	a.log.Info("ising: start", zap.Int("L", c.L), zap.Float64("beta", c.Beta), zap.Int("sweeps", c.Sweeps))

	sites := float64(c.L * c.L)
	var rows [][]string
	err = a.chain(cmd, "ising", m, c, x, func(sweep int, rate float64) error {
		e, err := m.Energy(x)
		if err != nil {
			return err
		}
		domains, err := lattice.Domains(c.L, x)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			strconv.Itoa(sweep),
			fmt.Sprintf("%.3f", rate),
			strconv.Itoa(e),
			fmt.Sprintf("%.4f", float64(e)/sites),
			fmt.Sprintf("%.4f", float64(ising.Magnetization(x))/sites),
			strconv.Itoa(len(domains)),
			strconv.Itoa(lattice.Largest(domains)),
		})
		return nil
	})
	if err != nil {
		return err
	}
	renderTable(cmd.OutOrStdout(),
		[]string{"SWEEP", "ACCEPTANCE", "ENERGY", "E/SITE", "M/SITE", "DOMAINS", "LARGEST"}, rows)
	a.log.Info("ising: done")
	return nil
}

func (a *app) runPotts(cmd *cobra.Command, c config.Lattice) error {
	m := potts.NewModel(c.L, c.Q)
	x, err := m.Draw(a.stream(streamInit))
	if err != nil {
		return err
	}
	a.log.Info("potts: start", zap.Int("L", c.L), zap.Int("Q", c.Q), zap.Float64("beta", c.Beta), zap.Int("sweeps", c.Sweeps))

	sites := float64(c.L * c.L)
	var (
		rows     [][]string
		energies []int
	)
	err = a.chain(cmd, "potts", m, c, x, func(sweep int, rate float64) error {
		e, err := m.Energy(x)
		if err != nil {
			return err
		}
		energies = append(energies, e)
		domains, err := lattice.Domains(c.L, x)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			strconv.Itoa(sweep),
			fmt.Sprintf("%.3f", rate),
			strconv.Itoa(e),
			fmt.Sprintf("%.4f", float64(e)/sites),
			strconv.Itoa(len(domains)),
			strconv.Itoa(lattice.Largest(domains)),
		})
		return nil
	})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	renderTable(out, []string{"SWEEP", "ACCEPTANCE", "ENERGY", "E/SITE", "DOMAINS", "LARGEST"}, rows)

	h, err := potts.NewHistogram(c.L)
	if err != nil {
		a.log.Warn("potts: no energy histogram", zap.Error(err))
		return nil
	}
	bins, counts := h.Energies(), h.Count(energies)
	var hist [][]string
	for k, n := range counts {
		if n > 0 {
			hist = append(hist, []string{strconv.Itoa(bins[k]), strconv.Itoa(n)})
		}
	}
	fmt.Fprintln(out)
	renderTable(out, []string{"ENERGY BIN", "CHECKPOINTS"}, hist)
	a.log.Info("potts: done")
	return nil
}
