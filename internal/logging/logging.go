// Package logging builds the structured logger shared by the CLI and the HTTP server.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options selects level, format and destination.
type Options struct {
	Level  string
	Format string // json or text
	Output io.Writer
}

// New returns a configured logrus logger. An empty level means info and an empty
// format means json; output defaults to stderr.
func New(opts Options) (*logrus.Logger, error) {
	logger := logrus.New()

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	logger.SetOutput(out)

	levelName := opts.Level
	if levelName == "" {
		levelName = "info"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}
	logger.SetLevel(level)

	switch strings.ToLower(opts.Format) {
	case "", "json":
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("invalid log format %q: must be json or text", opts.Format)
	}

	return logger, nil
}

// Discard returns a logger that drops everything. Used by tests and by callers that
// were not handed a logger.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
