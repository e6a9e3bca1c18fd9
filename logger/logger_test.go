package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetAndL(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	core, logs := observer.New(zap.DebugLevel)
	Set(zap.New(core))
	L().Info("hello", zap.Int("n", 3))
	L().With(zap.String("run", "r1")).Debug("tagged")

	require.Equal(t, 2, logs.Len())
	require.Equal(t, "hello", logs.All()[0].Message)
	require.Equal(t, "tagged", logs.All()[1].Message)
	require.Equal(t, "r1", logs.All()[1].ContextMap()["run"])

	Set(nil)
	require.NotNil(t, L())
	L().Info("dropped")
	require.Equal(t, 2, logs.Len())
}

func TestInit(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	l, err := Init(zap.NewAtomicLevelAt(zap.WarnLevel))
	require.NoError(t, err)
	require.Same(t, l, L())
	require.False(t, l.Core().Enabled(zap.InfoLevel))
	require.True(t, l.Core().Enabled(zap.WarnLevel))
}
