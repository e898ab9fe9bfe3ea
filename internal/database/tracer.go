package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/deppfellow/questions/internal/logger"
	"github.com/rs/zerolog"
)

// queryTracer logs every statement the Database executes.
//
// Levels:
//   - error: the driver returned an error (sql.ErrNoRows excluded, that
//     is an ordinary empty result)
//   - warn: the statement took longer than slowThreshold
//   - debug: everything else, only when verbose (local env)
//
// When the context carries a request-scoped logger (set by the HTTP
// middleware) that logger is used so SQL lines share the request_id.
type queryTracer struct {
	log           *zerolog.Logger
	slowThreshold time.Duration
	verbose       bool
}

func newQueryTracer(log *zerolog.Logger, slowThreshold time.Duration, verbose bool) *queryTracer {
	return &queryTracer{
		log:           log,
		slowThreshold: slowThreshold,
		verbose:       verbose,
	}
}

func (t *queryTracer) trace(ctx context.Context, query string, args []any, elapsed time.Duration, err error) {
	l := logger.FromContext(ctx, t.log)

	var e *zerolog.Event
	switch {
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		e = l.Error().Err(err)
	case t.slowThreshold > 0 && elapsed > t.slowThreshold:
		e = l.Warn().Dur("threshold", t.slowThreshold)
	case t.verbose:
		e = l.Debug()
	default:
		return
	}

	e.Str("sql", compactSQL(query)).
		Interface("args", args).
		Dur("duration", elapsed).
		Msg("query")
}

// compactSQL folds the multi-line statements used by the repositories
// onto one line for log output.
func compactSQL(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
