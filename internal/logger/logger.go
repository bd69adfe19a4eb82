package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type implLogger struct {
	zl zerolog.Logger
}

// New creates a new Logger instance writing to stdout.
func New(level string) Logger {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter creates a Logger writing to w. Tests use this to capture
// output; the record mode uses it to keep stdout clean for results.
func NewWithWriter(level string, w io.Writer) Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	zl := zerolog.New(console).Level(parseLevel(level)).With().Timestamp().Logger()
	return &implLogger{zl: zl}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.zl.Debug().Msgf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.zl.Info().Msgf(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.zl.Warn().Msgf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.zl.Error().Msgf(msg, args...)
}
