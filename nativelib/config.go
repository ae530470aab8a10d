package nativelib

import (
	"os"
	"strconv"

	"github.com/dropbox/godropbox/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvLogLevel = "NATIVELIB_LOG_LEVEL"
	EnvLogDev   = "NATIVELIB_LOG_DEV"
)

// Config controls the ambient behaviour of the library inside the host
// process. The host influences it through environment variables set
// before the library is loaded.
type Config struct {
	LogLevel    zapcore.Level
	Development bool
}

func DefaultConfig() Config {
	return Config{LogLevel: zapcore.WarnLevel}
}

// LoadConfig reads the config from the environment. Unset variables keep
// their defaults.
func LoadConfig() (Config, error) {
	return loadConfig(os.LookupEnv)
}

func loadConfig(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		lvl, err := zapcore.ParseLevel(v)
		if err != nil {
			return cfg, errors.Wrapf(err, "invalid %s %q: ", EnvLogLevel, v)
		}
		cfg.LogLevel = lvl
	}

	if v, ok := lookup(EnvLogDev); ok && v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, errors.Wrapf(err, "invalid %s %q: ", EnvLogDev, v)
		}
		cfg.Development = dev
	}

	return cfg, nil
}

// NewLogger builds a zap logger for cfg.
func (cfg Config) NewLogger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(cfg.LogLevel)

	l, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building logger: ")
	}
	return l.Named("nativelib"), nil
}
