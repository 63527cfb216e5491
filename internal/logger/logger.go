package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type ctxKey struct{}

type implLogger struct {
	logger *logrus.Logger
}

// New creates a new Logger instance writing text lines to stdout.
func New(level string) Logger {
	return NewWithOutput(level, "text", os.Stdout)
}

// NewWithOutput creates a Logger with an explicit format ("text" or "json") and writer.
func NewWithOutput(level, format string, out io.Writer) Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(parseLevel(level))

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	}

	return &implLogger{logger: l}
}

// parseLevel falls back to info for unknown levels.
func parseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// WithRequestID returns a context carrying id; every line logged with it is tagged.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// NewRequestID tags ctx with a fresh random request ID.
func NewRequestID(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return WithRequestID(ctx, id), id
}

// RequestID returns the request ID stored in ctx, if any.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func (l *implLogger) entry(ctx context.Context) *logrus.Entry {
	e := logrus.NewEntry(l.logger)
	if id := RequestID(ctx); id != "" {
		e = e.WithField("request_id", id)
	}
	return e
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.entry(ctx).Debugf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.entry(ctx).Infof(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.entry(ctx).Warnf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.entry(ctx).Errorf(msg, args...)
}
