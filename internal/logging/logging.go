// Package logging builds the process logger: tint on a console, JSON otherwise,
// optionally mirrored to Sentry.
package logging

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
	"github.com/lmittmann/tint"
)

// Options configures the logger
type Options struct {
	Level             string // debug, info, warn, error
	Format            string // "json" or "text"
	SentryDSN         string
	SentryEnvironment string
}

// New creates the logger. Without a Sentry DSN only out is written.
func New(out io.Writer, opts Options) *slog.Logger {
	var handler slog.Handler
	logLevel := ParseLevel(opts.Level)

	if opts.Format == "json" {
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level: logLevel,
		})
	} else {
		// Pretty colored output for console
		handler = tint.NewHandler(out, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.DateTime,
			NoColor:    false,
		})
	}

	if opts.SentryDSN == "" {
		return slog.New(handler)
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         opts.SentryDSN,
		Environment: opts.SentryEnvironment,
		EnableLogs:  true,
	}); err != nil {
		logger := slog.New(handler)
		logger.Error("failed to initialize sentry", "error", err)
		return logger
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
	}.NewSentryHandler(context.Background())

	return slog.New(newMultiHandler(handler, sentryHandler))
}

// Flush waits for buffered Sentry events to be delivered
func Flush(timeout time.Duration) {
	sentry.Flush(timeout)
}

// ParseLevel maps a config string to a slog level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
