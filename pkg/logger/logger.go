package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global application logger. It is usable before Init is called
// (as a no-op) so that packages may log during early startup failures.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

var base *zap.Logger = zap.NewNop()

type Config struct {
	Debug bool
}

// Init builds the global logger. Debug enables the development encoder and
// debug-level output.
func Init(cfg Config) error {
	var (
		l   *zap.Logger
		err error
	)
	if cfg.Debug {
		zapCfg := zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		l, err = zapCfg.Build()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}

	base = l
	Log = l.Sugar()
	return nil
}

// Named returns a child logger with the given name attached.
func Named(name string) *zap.SugaredLogger {
	return base.Named(name).Sugar()
}

// Cleanup flushes any buffered log entries.
func Cleanup() error {
	return base.Sync()
}
