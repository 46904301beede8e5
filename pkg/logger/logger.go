package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a named zap logger for the given environment.
// "production" logs JSON at info level; anything else logs colored console output.
func New(serviceName, env string) (*zap.Logger, error) {
	cfg := buildConfig(env)

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("cannot init zap logger: %w", err)
	}

	return l.Named(serviceName), nil
}

func buildConfig(env string) zap.Config {
	var cfg zap.Config

	switch strings.ToLower(strings.TrimSpace(env)) {
	case "production":
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)

	case "debug":
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncoderConfig.CallerKey = zapcore.OmitKey
	}

	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "msg"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stdout"}

	return cfg
}

// Sync flushes l, ignoring the errors stdout and terminals report on sync.
func Sync(l *zap.Logger) {
	if err := l.Sync(); err != nil && !isIgnorableSyncError(err) {
		l.Error("log sync error", zap.Error(err))
	}
}

func isIgnorableSyncError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "invalid argument") ||
		strings.Contains(s, "inappropriate ioctl for device") ||
		strings.Contains(s, "bad file descriptor")
}
