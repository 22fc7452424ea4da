// Package logger builds the logrus loggers used across salty-sim.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Options configures a logger. Output defaults to stderr.
type Options struct {
	Level       string
	Environment string
	Output      io.Writer
}

// New builds a logger from opts; an unknown level falls back to info with a warning
func New(opts Options) *logrus.Logger {
	log := logrus.New()
	if opts.Output != nil {
		log.SetOutput(opts.Output)
	} else {
		log.SetOutput(os.Stderr)
	}
	log.SetFormatter(formatterFor(opts.Environment))

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		log.WithField("level_requested", opts.Level).Warn("Unknown log level, using info")
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// NewLogger builds a stderr logger for the given level and environment
func NewLogger(logLevel, environment string) *logrus.Logger {
	return New(Options{Level: logLevel, Environment: environment})
}

// formatterFor picks JSON for deployed environments and timestamped text elsewhere
func formatterFor(environment string) logrus.Formatter {
	switch environment {
	case "production", "staging":
		return &logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano}
	default:
		return &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339}
	}
}
