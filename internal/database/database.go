// Package database contains the logic for opening the forum's SQLite
// file and running statements against it.
//
// It handles:
//   - building a DSN from config (pragmas for foreign keys and busy timeout)
//   - opening a single-connection sqlx handle on the pure-Go modernc driver
//   - tracing every statement through zerolog (tracer.go)
//   - bootstrapping the embedded schema (schema.go)
package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/deppfellow/questions/internal/config"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	// Registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

// DatabasePingTimeout is the number of seconds to wait for the initial
// ping before the file is considered unusable.
const DatabasePingTimeout = 10

// DefaultBusyTimeout is used when the config leaves busy_timeout at zero.
const DefaultBusyTimeout = 5000

func init() {
	// sqlx has no bindvar entry for the modernc driver name.
	sqlx.BindDriver(DriverName, sqlx.QUESTION)
}

// Database wraps the sqlx handle and a logger. It is the explicit storage
// handle handed to every repository; there is no package-level instance.
type Database struct {
	DB     *sqlx.DB
	log    *zerolog.Logger
	tracer *queryTracer
}

// DSN builds the modernc connection string for path.
//
// Example:
//
//	file:questions.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)
func DSN(path string, busyTimeout int) string {
	if busyTimeout <= 0 {
		busyTimeout = DefaultBusyTimeout
	}

	q := url.Values{}
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeout))

	return "file:" + path + "?" + q.Encode()
}

// New opens the SQLite file named by cfg.Database.Path.
//
// Behavior:
//   - Build the DSN with pragmas
//   - Open a sqlx handle limited to exactly one connection
//   - Attach the zerolog query tracer (debug SQL logging in local env)
//   - Ping with a timeout so startup fails fast on an unreadable file
func New(cfg *config.Config, logger *zerolog.Logger) (*Database, error) {
	db, err := sqlx.Open(DriverName, DSN(cfg.Database.Path, cfg.Database.BusyTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// One shared connection: statements are serialized by database/sql
	// and SQLite's own file lock covers other processes.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	var slowThreshold time.Duration
	if cfg.Observability != nil {
		slowThreshold = cfg.Observability.Logging.SlowQueryThreshold
	}

	database := &Database{
		DB:     db,
		log:    logger,
		tracer: newQueryTracer(logger, slowThreshold, cfg.IsLocal()),
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Str("path", cfg.Database.Path).Msg("connected to the database")

	return database, nil
}

// Close closes the underlying handle.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database connection")
	return db.DB.Close()
}

// PingContext verifies the file is still reachable.
func (db *Database) PingContext(ctx context.Context) error {
	return db.DB.PingContext(ctx)
}

// SelectContext runs query and scans every row into dest, which must be a
// pointer to a slice.
func (db *Database) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	start := time.Now()
	err := db.DB.SelectContext(ctx, dest, query, args...)
	db.tracer.trace(ctx, query, args, time.Since(start), err)
	return err
}

// GetContext runs query and scans the first row into dest. It returns
// sql.ErrNoRows when the result set is empty.
func (db *Database) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	start := time.Now()
	err := db.DB.GetContext(ctx, dest, query, args...)
	db.tracer.trace(ctx, query, args, time.Since(start), err)
	return err
}

// ExecContext runs a statement that returns no rows.
func (db *Database) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := db.DB.ExecContext(ctx, query, args...)
	db.tracer.trace(ctx, query, args, time.Since(start), err)
	return res, err
}
