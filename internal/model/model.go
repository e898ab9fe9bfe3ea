// Package model holds the forum's entity records.
//
// Each type is a snapshot of one table row, decoded by sqlx through its
// `db` tags. Records are plain values: nothing here talks to the database.
package model

import "errors"

var (
	// ErrNotFound is returned by finders when no row matches. Repositories
	// wrap it as "table:<name>: ..." so callers can tell which entity was
	// missing.
	ErrNotFound = errors.New("record not found")

	// ErrMultipleRecords means a lookup that must match at most one row
	// (an id lookup) matched several. It signals a broken table, not a
	// caller mistake.
	ErrMultipleRecords = errors.New("multiple records found")

	// ErrNoAuthoredQuestions is returned by the karma aggregate when the
	// user has no questions, where the average has no denominator.
	ErrNoAuthoredQuestions = errors.New("user has not authored any questions")
)
