package main

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/zap"
)

// Application logger, warnings only unless tracing
func NewLogger(trace bool) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	if !trace {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

// Logger handed to the search and arena packages
func NewTraceLogger(trace bool) zerolog.Logger {
	if !trace {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()
}

// Logs a failed run, returns false when err is nil or an interrupt
func reportFailure(logger *zap.SugaredLogger, err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	logger.Errorw("gomoku failed", "error", err)
	return true
}
