package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

// Every table definition is embedded at compile time, so the binary does
// not depend on the filesystem layout at runtime.
//
//go:embed schema/*.sql
var schemaFiles embed.FS

// EnsureSchema creates any missing forum tables.
//
// Behavior:
//   - Read the embedded schema/*.sql files in lexical order
//   - Execute each one (statements use CREATE TABLE IF NOT EXISTS, so the
//     call is safe on an existing file)
//   - Log how many files were applied
//
// This is a bootstrap, not a migrator: there is no version table and no
// way to alter a table that already exists.
func (db *Database) EnsureSchema(ctx context.Context) error {
	subtree, err := fs.Sub(schemaFiles, "schema")
	if err != nil {
		return fmt.Errorf("retrieving database schema subtree: %w", err)
	}

	names, err := fs.Glob(subtree, "*.sql")
	if err != nil {
		return fmt.Errorf("listing database schema files: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		body, err := fs.ReadFile(subtree, name)
		if err != nil {
			return fmt.Errorf("reading schema file %s: %w", name, err)
		}
		if _, err := db.ExecContext(ctx, string(body)); err != nil {
			return fmt.Errorf("applying schema file %s: %w", name, err)
		}
	}

	db.log.Info().Int("files", len(names)).Msg("database schema ensured")
	return nil
}
