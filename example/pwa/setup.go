package main

import (
	_ "embed"

	"github.com/cdvelop/pagectl"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//go:embed config.yaml
var configYAML []byte

// newLogger builds the console logger. Under js/wasm stdout ends up in the
// browser console.
func newLogger(debug bool) *zap.Logger {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stdout"}
	config.Sampling = nil
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// loadConfig parses the embedded page config, falling back to defaults
func loadConfig(data []byte, log *zap.SugaredLogger) *pagectl.Config {
	cfg, err := pagectl.LoadConfig(data)
	if err != nil {
		log.Warnw("page config rejected, using defaults", "error", err)
		return pagectl.DefaultConfig()
	}
	return cfg
}
