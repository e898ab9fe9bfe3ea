package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/deppfellow/questions/internal/model"
)

// Querier is the slice of the storage handle repositories need.
// *database.Database satisfies it.
type Querier interface {
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Errors carry a "table:<name>:" prefix; sqlerr.HandleError reads it back
// to name the entity in client-facing messages.
func tableErr(table string, err error) error {
	return fmt.Errorf("table:%s: %w", table, err)
}

func notFound(table string) error {
	return tableErr(table, model.ErrNotFound)
}

// findUnique runs an id lookup. Zero rows is ErrNotFound; more than one
// is ErrMultipleRecords, since the id column is expected to be unique.
func findUnique[T any](ctx context.Context, q Querier, table, query string, args ...any) (*T, error) {
	var rows []T
	if err := q.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, tableErr(table, err)
	}

	switch len(rows) {
	case 0:
		return nil, notFound(table)
	case 1:
		return &rows[0], nil
	default:
		return nil, tableErr(table, fmt.Errorf("%d rows for %v: %w", len(rows), args, model.ErrMultipleRecords))
	}
}

// findFirst returns the first row of query, for lookups on columns that
// are not unique (names, titles).
func findFirst[T any](ctx context.Context, q Querier, table, query string, args ...any) (*T, error) {
	var row T
	if err := q.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(table)
		}
		return nil, tableErr(table, err)
	}
	return &row, nil
}

// findMany returns every row of query. The result is never nil.
func findMany[T any](ctx context.Context, q Querier, table, query string, args ...any) ([]T, error) {
	rows := []T{}
	if err := q.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, tableErr(table, err)
	}
	return rows, nil
}
