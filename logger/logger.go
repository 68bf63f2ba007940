// Package logger builds the zap logger shared by the server and tools.
package logger

import (
	"fmt"

	"github.com/rodrigofez/food-order-admin/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a zap logger configured from cfg. Development mode switches to
// console encoding at debug level.
func New(cfg config.LoggerConfig, development bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if development {
		zcfg = zap.NewDevelopmentConfig()
	}

	level := cfg.Level
	encoding := cfg.Encoding
	if development {
		level = "debug"
		encoding = "console"
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.Encoding = encoding
	zcfg.DisableCaller = cfg.DisableCaller
	zcfg.DisableStacktrace = cfg.DisableStacktrace

	l, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l, nil
}
