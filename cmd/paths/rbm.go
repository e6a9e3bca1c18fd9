package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/paths/rbm"
)

func newRBMCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rbm",
		Short: "Evaluate energies of random configurations of a random RBM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cmd.Flags()
			c := &a.cfg.RBM
			if f.Changed("visible") {
				c.Visible, _ = f.GetInt("visible")
			}
			if f.Changed("hidden") {
				c.Hidden, _ = f.GetInt("hidden")
			}
			if f.Changed("scale") {
				c.Scale, _ = f.GetFloat64("scale")
			}
			if f.Changed("samples") {
				c.Samples, _ = f.GetInt("samples")
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return a.runRBM(cmd)
		},
	}
	f := cmd.Flags()
	f.Int("visible", 0, "number of visible units")
	f.Int("hidden", 0, "number of hidden units")
	f.Float64("scale", 0, "standard deviation of the random parameters")
	f.Int("samples", 0, "number of random configurations")
	return cmd
}

func (a *app) runRBM(cmd *cobra.Command) error {
	c := a.cfg.RBM
	rng := a.stream(streamRBM)
	gauss := func(n int) []float64 {
		v := make([]float64, n)
		for i := range v {
			v[i] = c.Scale * rng.NormFloat64()
		}
		return v
	}
	machine, err := rbm.FromFlat(gauss(c.Visible), gauss(c.Hidden), gauss(c.Visible*c.Hidden))
	if err != nil {
		return err
	}
	a.log.Info("rbm: start", zap.Int("visible", c.Visible), zap.Int("hidden", c.Hidden), zap.Int("samples", c.Samples))

	rows := make([][]string, 0, c.Samples)
	for s := 0; s < c.Samples; s++ {
		x, err := machine.Draw(rng)
		if err != nil {
			return err
		}
		sparse, err := machine.Energy(x)
		if err != nil {
			return err
		}
		dense, err := machine.DenseEnergy(x)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			strconv.Itoa(s),
			strconv.Itoa(active(x[:c.Visible])),
			strconv.Itoa(active(x[c.Visible:])),
			fmt.Sprintf("%.6f", sparse),
			fmt.Sprintf("%.6f", dense),
		})
	}
	renderTable(cmd.OutOrStdout(), []string{"SAMPLE", "VISIBLE ON", "HIDDEN ON", "ENERGY", "DENSE"}, rows)
	return nil
}

func active(units []int32) int {
	n := 0
	for _, u := range units {
		n += int(u)
	}
	return n
}
