// Package logger configures the application's logging.
//
// It uses *ZeroLog* for structured logs. The same logger is handed to the
// database layer (SQL tracing), the HTTP middleware (request logs) and the
// server lifecycle.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/deppfellow/questions/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// New builds the application logger from the observability config.
//
// Behavior:
//   - level comes from GetLogLevel (explicit level, else per-environment default)
//   - production, or format "json", writes JSON lines to stdout
//   - anything else writes human-friendly console output
//   - every entry carries timestamp, service and environment fields
func New(cfg *config.ObservabilityConfig) zerolog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

// NewWithWriter is New with an explicit destination; tests use it to
// capture output.
func NewWithWriter(cfg *config.ObservabilityConfig, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.GetLogLevel())
	if err != nil {
		level = zerolog.InfoLevel
	}

	// Stack() on an event renders the pkg/errors stack of the error.
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339

	var writer io.Writer = out
	if !cfg.IsProduction() && cfg.Logging.Format == "console" {
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName).
		Str("environment", cfg.Environment).
		Logger()
}

// WithContext stores l in ctx so code that only sees a context.Context
// (the repository and database layers) can reach the request logger.
func WithContext(ctx context.Context, l *zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}

// FromContext returns the logger stored in ctx, or fallback when the
// context carries none.
func FromContext(ctx context.Context, fallback *zerolog.Logger) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l == nil || l.GetLevel() == zerolog.Disabled {
		return fallback
	}
	return l
}
