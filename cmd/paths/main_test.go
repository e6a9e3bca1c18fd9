package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/paths/config"
	"github.com/katalvlaran/paths/logger"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { logger.Set(nil) })

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--quiet", "--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestIsingCmd(t *testing.T) {
	out, err := execute(t, "ising", "--l", "6", "--beta", "0.5", "--sweeps", "20")
	require.NoError(t, err)
	require.Contains(t, out, "ACCEPTANCE")
	require.Contains(t, out, "M/SITE")
}

func TestPottsCmd(t *testing.T) {
	out, err := execute(t, "potts", "--l", "5", "--q", "3", "--sweeps", "10")
	require.NoError(t, err)
	require.Contains(t, out, "DOMAINS")
	require.Contains(t, out, "ENERGY BIN")
}

func TestRBMCmd(t *testing.T) {
	out, err := execute(t, "rbm", "--visible", "4", "--hidden", "3", "--samples", "5")
	require.NoError(t, err)
	require.Contains(t, out, "DENSE")
}

func TestAnnealCmd(t *testing.T) {
	out, err := execute(t, "anneal", "--l", "4", "--kernels", "5", "--sweeps", "1", "--paths", "8", "--reverse")
	require.NoError(t, err)
	require.Contains(t, out, "jarzynski forward")
	require.Contains(t, out, "bar")
	require.Contains(t, out, "histogram")
	require.Contains(t, out, "ess=")
}

func TestSeedReproducible(t *testing.T) {
	args := []string{"ising", "--l", "5", "--beta", "0.4", "--sweeps", "30"}
	first, err := execute(t, append([]string{"--seed", "7"}, args...)...)
	require.NoError(t, err)
	second, err := execute(t, append([]string{"--seed", "7"}, args...)...)
	require.NoError(t, err)
	require.Equal(t, first, second)

	other, err := execute(t, append([]string{"--seed", "8"}, args...)...)
	require.NoError(t, err)
	require.NotEqual(t, first, other)
}

func TestSetupInstallsLogger(t *testing.T) {
	_, err := execute(t, "rbm", "--visible", "2", "--hidden", "2", "--samples", "1")
	require.NoError(t, err)
	require.False(t, logger.L().Core().Enabled(zap.WarnLevel))
	require.True(t, logger.L().Core().Enabled(zap.ErrorLevel))
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paths.json")
	out, err := execute(t, "config", path)
	require.NoError(t, err)
	require.Contains(t, out, "wrote")

	c, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.Default(), c)

	_, err = execute(t, "--config", path, "ising", "--l", "4", "--sweeps", "2")
	require.NoError(t, err)
}

func TestInvalidFlags(t *testing.T) {
	_, err := execute(t, "ising", "--l", "0")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = execute(t, "anneal", "--model", "xy")
	require.ErrorIs(t, err, config.ErrInvalid)

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.json"), "rbm")
	require.Error(t, err)
}
