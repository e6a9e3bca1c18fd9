// Package logger owns the process-wide zap logger of the paths CLI.
// Library packages never log through it; they accept a *zap.Logger option.
package logger

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(zap.NewNop())
}

// New builds a console logger on stderr at the given level.
func New(level zap.AtomicLevel) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg.Build()
}

// Init replaces the global logger with New(level) and returns it.
func Init(level zap.AtomicLevel) (*zap.Logger, error) {
	l, err := New(level)
	if err != nil {
		return nil, err
	}
	Set(l)
	return l, nil
}

// Set replaces the global logger. A nil logger installs a no-op one.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	global.Store(l)
}

// L returns the global logger.
func L() *zap.Logger { return global.Load() }

// Sync flushes the global logger, ignoring errors from unsyncable stderr.
func Sync() { _ = global.Load().Sync() }
