// Package config holds the JSON configuration of a paths run.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Model names accepted by Anneal.Model.
const (
	ModelIsing = "ising"
	ModelPotts = "potts"
)

// ParseConfig parses the raw JSON configuration on top of Default and
// validates the result.
func ParseConfig(raw []byte) (config Config, err error) {
	config = Default()
	if err = json.Unmarshal(raw, &config); err != nil {
		return config, fmt.Errorf("unmarshal config: %w", err)
	}
	if err = config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

type Config struct {
	LogLevel LogLevel `json:"log_level"`
	Seed     int64    `json:"seed"`
	Workers  int      `json:"workers"`
	Ising    Lattice  `json:"ising"`
	Potts    Lattice  `json:"potts"`
	RBM      RBM      `json:"rbm"`
	Anneal   Anneal   `json:"anneal"`
}

// Lattice configures a fixed-temperature sampling run.
// Q is ignored for the Ising model.
type Lattice struct {
	L      int     `json:"l"`
	Q      int     `json:"q,omitempty"`
	Beta   float64 `json:"beta"`
	Sweeps int     `json:"sweeps"`
}

// Steps returns the number of single-site proposals, Sweeps·L².
func (c Lattice) Steps() int {
	return c.Sweeps * c.L * c.L
}

// RBM configures a machine with Gaussian random parameters.
type RBM struct {
	Visible int     `json:"visible"`
	Hidden  int     `json:"hidden"`
	Scale   float64 `json:"scale"`
	Samples int     `json:"samples"`
}

// Anneal configures forward (and optionally reverse) annealing paths over
// a linear inverse-temperature schedule.
type Anneal struct {
	Model     string  `json:"model"`
	L         int     `json:"l"`
	Q         int     `json:"q,omitempty"`
	BetaStart float64 `json:"beta_start"`
	BetaEnd   float64 `json:"beta_end"`
	Kernels   int     `json:"kernels"`
	Sweeps    int     `json:"sweeps"`
	Paths     int     `json:"paths"`
	Reverse   bool    `json:"reverse"`
}

// Steps returns the proposals per kernel, Sweeps·L².
func (c Anneal) Steps() int {
	return c.Sweeps * c.L * c.L
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel: LogLevelInfo,
		Seed:     1,
		Ising:    Lattice{L: 32, Beta: 0.44, Sweeps: 100},
		Potts:    Lattice{L: 32, Q: 3, Beta: 1.0, Sweeps: 100},
		RBM:      RBM{Visible: 16, Hidden: 8, Scale: 0.1, Samples: 10},
		Anneal: Anneal{
			Model:   ModelIsing,
			L:       16,
			Q:       3,
			BetaEnd: 1,
			Kernels: 20,
			Sweeps:  4,
			Paths:   100,
			Reverse: true,
		},
	}
}

// Validate checks every field that a run would otherwise reject later.
func (c Config) Validate() error {
	var errs []error
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers=%d: %w", c.Workers, ErrInvalid))
	}
	errs = append(errs,
		c.Ising.validate("ising", false),
		c.Potts.validate("potts", true),
		c.RBM.validate(),
		c.Anneal.validate(),
	)
	return errors.Join(errs...)
}

func (c Lattice) validate(name string, needQ bool) error {
	switch {
	case c.L <= 0:
		return fmt.Errorf("%s.l=%d: %w", name, c.L, ErrInvalid)
	case needQ && c.Q <= 0:
		return fmt.Errorf("%s.q=%d: %w", name, c.Q, ErrInvalid)
	case c.Sweeps < 0:
		return fmt.Errorf("%s.sweeps=%d: %w", name, c.Sweeps, ErrInvalid)
	}
	return nil
}

func (c RBM) validate() error {
	switch {
	case c.Visible <= 0 || c.Hidden <= 0:
		return fmt.Errorf("rbm: %dx%d units: %w", c.Visible, c.Hidden, ErrInvalid)
	case c.Samples < 0:
		return fmt.Errorf("rbm.samples=%d: %w", c.Samples, ErrInvalid)
	}
	return nil
}

func (c Anneal) validate() error {
	switch {
	case c.Model != ModelIsing && c.Model != ModelPotts:
		return fmt.Errorf("anneal.model=%q: %w", c.Model, ErrInvalid)
	case c.L <= 0:
		return fmt.Errorf("anneal.l=%d: %w", c.L, ErrInvalid)
	case c.Model == ModelPotts && c.Q <= 0:
		return fmt.Errorf("anneal.q=%d: %w", c.Q, ErrInvalid)
	case c.Kernels <= 0:
		return fmt.Errorf("anneal.kernels=%d: %w", c.Kernels, ErrInvalid)
	case c.Sweeps < 0:
		return fmt.Errorf("anneal.sweeps=%d: %w", c.Sweeps, ErrInvalid)
	case c.Paths <= 0:
		return fmt.Errorf("anneal.paths=%d: %w", c.Paths, ErrInvalid)
	}
	return nil
}
