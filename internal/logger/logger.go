// Package logger provides logging utilities for git-weblink using the bullets library.
//
// Log output goes to stderr: stdout is reserved for the generated URL when the
// print action is used, so `git-weblink file -p main.go | pbcopy` stays clean.
//
// Usage:
//
//	log := logger.NewLogger("debug")
//	log.Debug("Resolving repository")
//
//	silentLog := logger.NoLogger() // Suppresses all output
package logger

import (
	"io"
	"os"

	"github.com/sgaunet/bullets"
)

// Levels accepted by [NewLogger].
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// NewLogger creates a new logger that writes to stderr at the specified level.
//
// Parameters:
//   - logLevel: one of "debug", "info", "warn", "error" (defaults to "info" for unknown values)
func NewLogger(logLevel string) *bullets.Logger {
	return NewLoggerTo(os.Stderr, logLevel)
}

// NewLoggerTo is [NewLogger] with an explicit destination.
func NewLoggerTo(w io.Writer, logLevel string) *bullets.Logger {
	logger := bullets.New(w)
	logger.SetLevel(ParseLevel(logLevel))
	return logger
}

// ParseLevel maps a level name to a bullets level, "info" when unknown.
func ParseLevel(logLevel string) bullets.Level {
	switch logLevel {
	case LevelDebug:
		return bullets.DebugLevel
	case LevelWarn:
		return bullets.WarnLevel
	case LevelError:
		return bullets.ErrorLevel
	default:
		return bullets.InfoLevel
	}
}

// NoLogger creates a logger that suppresses all output by setting the level to Fatal.
// Useful for tests and silent operation.
func NoLogger() *bullets.Logger {
	logger := bullets.New(io.Discard)
	logger.SetLevel(bullets.FatalLevel)
	return logger
}
