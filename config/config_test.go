package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseConfig_OverridesDefaults(t *testing.T) {
	c, err := ParseConfig([]byte(`{"seed": 7, "ising": {"l": 8, "beta": 0.3, "sweeps": 5}}`))
	require.NoError(t, err)
	require.Equal(t, int64(7), c.Seed)
	require.Equal(t, Lattice{L: 8, Beta: 0.3, Sweeps: 5}, c.Ising)
	require.Equal(t, 320, c.Ising.Steps())
	require.Equal(t, Default().Potts, c.Potts)
}

func TestParseConfig_Errors(t *testing.T) {
	_, err := ParseConfig([]byte(`{`))
	require.Error(t, err)

	_, err = ParseConfig([]byte(`{"potts": {"l": 4, "q": 0}}`))
	require.ErrorIs(t, err, ErrInvalid)
	require.Contains(t, err.Error(), "potts.q")

	_, err = ParseConfig([]byte(`{"anneal": {"model": "xy"}}`))
	require.ErrorIs(t, err, ErrInvalid)

	_, err = ParseConfig([]byte(`{"workers": -1, "rbm": {"visible": 0}}`))
	require.ErrorIs(t, err, ErrInvalid)
	require.Contains(t, err.Error(), "workers")
	require.Contains(t, err.Error(), "rbm")
}

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestCreateSample_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paths.json")
	require.NoError(t, CreateSample(path))
	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default(), c)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestLogLevel_Zap(t *testing.T) {
	cases := map[LogLevel]zap.AtomicLevel{
		LogLevelDebug: zap.NewAtomicLevelAt(zap.DebugLevel),
		"warning":     zap.NewAtomicLevelAt(zap.WarnLevel),
		LogLevelError: zap.NewAtomicLevelAt(zap.ErrorLevel),
		"":            zap.NewAtomicLevelAt(zap.InfoLevel),
		"bogus":       zap.NewAtomicLevelAt(zap.InfoLevel),
	}
	for in, want := range cases {
		require.Equal(t, want.Level(), in.Zap().Level(), "level %q", in)
	}
}
