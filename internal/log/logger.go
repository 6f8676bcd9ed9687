// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package log

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const rootName = "dictionary"

var (
	mu     sync.Mutex
	logger *zap.Logger
	config *zap.Config
)

// Logger returns the logger used by the dictionaries. Until InitAndSetLevel
// runs it is derived from zap.L(), which is a no-op unless the embedding
// program installed a global logger with zap.ReplaceGlobals.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return zap.L().Named(rootName)
	}
	return logger
}

// InitAndSetLevel builds the console logger and installs it as the global
// logger. Calling it again only changes the level.
func InitAndSetLevel(level zapcore.Level) {
	mu.Lock()
	defer mu.Unlock()
	if config != nil {
		config.Level.SetLevel(level)
		return
	}
	config = createConfig(level)
	built, err := config.Build()
	// this should really not happen so just write to stdout and set a Nop logger
	if err != nil {
		fmt.Printf("Logging disabled, logger init failed with error: %v\n", err)
		built = zap.NewNop()
	}
	zap.ReplaceGlobals(built)
	logger = built.Named(rootName)
}

// IsDebugEnabled reports whether debug entries would be written.
func IsDebugEnabled() bool {
	return Logger().Core().Enabled(zapcore.DebugLevel)
}

// ParseLevel converts a textual level such as "debug" or "WARN".
func ParseLevel(text string) (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(text)); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level %q: %w", text, err)
	}
	return level, nil
}

// Console encoding on stderr, ISO8601 timestamps, stack traces from WarnLevel.
func createConfig(level zapcore.Level) *zap.Config {
	return &zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: true,
		Encoding:    "console",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:     "message",
			LevelKey:       "level",
			TimeKey:        "time",
			NameKey:        "name",
			CallerKey:      "caller",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
}
