package config

import "go.uber.org/zap"

type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

func (l LogLevel) String() string {
	return string(l)
}

// Zap maps the level to a zap level. Unknown names fall back to info.
func (l LogLevel) Zap() zap.AtomicLevel {
	switch l {
	case LogLevelDebug, "trace":
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case LogLevelInfo, "information", "":
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	case LogLevelWarn, "warning":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	case LogLevelError:
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
}
