// Package logging wraps a process-wide logrus logger so packages can
// log without threading a logger through every constructor. Commands
// call Initialize once at startup.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Config holds logger configuration.
type Config struct {
	Level      logrus.Level
	JSONFormat bool
	Output     io.Writer // defaults to stderr
}

var logger *logrus.Logger

// DefaultConfig returns text logging to stderr at Info level, or Debug
// when verbose.
func DefaultConfig(verbose bool) Config {
	level := logrus.InfoLevel
	if verbose {
		level = logrus.DebugLevel
	}
	return Config{Level: level, Output: os.Stderr}
}

// Initialize configures the global logger.
func Initialize(cfg Config) {
	logger = NewLogger(cfg)
}

// NewLogger creates a logger instance with the given configuration.
func NewLogger(cfg Config) *logrus.Logger {
	l := logrus.New()
	if cfg.Output != nil {
		l.SetOutput(cfg.Output)
	} else {
		l.SetOutput(os.Stderr)
	}
	l.SetLevel(cfg.Level)
	if cfg.JSONFormat {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}

// L returns the global logger, creating a default one if Initialize has
// not been called (convenient in tests).
func L() *logrus.Logger {
	if logger == nil {
		logger = NewLogger(DefaultConfig(false))
	}
	return logger
}

// WithFields returns an entry with structured context attached.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return L().WithFields(fields)
}
