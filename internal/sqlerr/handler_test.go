package sqlerr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/questions/internal/database/dbtest"
	"github.com/deppfellow/questions/internal/errs"
	"github.com/deppfellow/questions/internal/model"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("Expected *errs.HTTPError, got %T (%v)", err, err)
	}
	return httpErr
}

func TestHandleErrorNotFound(t *testing.T) {
	err := HandleError(fmt.Errorf("table:replies: %w", model.ErrNotFound))
	httpErr := asHTTPError(t, err)

	if httpErr.Status != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", httpErr.Status)
	}
	if httpErr.Message != "Reply not found" {
		t.Errorf("Expected 'Reply not found', got %q", httpErr.Message)
	}
	if httpErr.Code != "REPLY_NOT_FOUND" {
		t.Errorf("Expected REPLY_NOT_FOUND, got %s", httpErr.Code)
	}
}

func TestHandleErrorMultipleRecords(t *testing.T) {
	err := HandleError(fmt.Errorf("table:questions: 2 rows: %w", model.ErrMultipleRecords))
	httpErr := asHTTPError(t, err)

	if httpErr.Status != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", httpErr.Status)
	}
	if httpErr.Code != "QUESTION_INCONSISTENT" {
		t.Errorf("Expected QUESTION_INCONSISTENT, got %s", httpErr.Code)
	}
}

func TestHandleErrorPassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewNotFoundError("gone", true, nil)
	if got := HandleError(original); got != original {
		t.Errorf("Expected the same error back, got %v", got)
	}
}

func TestHandleErrorUnknown(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("boom")))
	if httpErr.Status != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", httpErr.Status)
	}
	if httpErr.Message == "boom" {
		t.Error("Internal error text must not leak to clients")
	}
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	db := dbtest.Open(t)

	_, err := db.ExecContext(context.Background(),
		`INSERT INTO question_likes (question_id, user_id) VALUES (?, ?)`, 123, 456)
	if err == nil {
		t.Fatal("Expected a foreign key violation")
	}
	httpErr := asHTTPError(t, HandleError(fmt.Errorf("table:question_likes: %w", err)))
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", httpErr.Status)
	}
	if httpErr.Code != "QUESTION_LIKE_NOT_FOUND" {
		t.Errorf("Expected QUESTION_LIKE_NOT_FOUND, got %s", httpErr.Code)
	}
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	db := dbtest.Open(t)

	_, err := db.ExecContext(context.Background(), `INSERT INTO users (fname, lname) VALUES (?, NULL)`, "Only")
	if err == nil {
		t.Fatal("Expected a not-null violation")
	}

	httpErr := asHTTPError(t, HandleError(err))
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", httpErr.Status)
	}
	if httpErr.Code != "USER_REQUIRED" {
		t.Errorf("Expected USER_REQUIRED, got %s", httpErr.Code)
	}
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "lname" {
		t.Errorf("Expected a field error for lname, got %+v", httpErr.Errors)
	}
	if httpErr.Message != "The Lname is required" {
		t.Errorf("Unexpected message %q", httpErr.Message)
	}
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	if _, err := db.ExecContext(ctx, `INSERT INTO users (id, fname, lname) VALUES (1, 'a', 'b')`); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	_, err := db.ExecContext(ctx, `INSERT INTO users (id, fname, lname) VALUES (1, 'c', 'd')`)
	if err == nil {
		t.Fatal("Expected a primary key violation")
	}

	httpErr := asHTTPError(t, HandleError(err))
	if httpErr.Code != "USER_ALREADY_EXISTS" {
		t.Errorf("Expected USER_ALREADY_EXISTS, got %s", httpErr.Code)
	}
	if httpErr.Message != "A User with this Id already exists" {
		t.Errorf("Unexpected message %q", httpErr.Message)
	}
}

func TestDomainName(t *testing.T) {
	cases := map[string]string{
		"users":            "USER",
		"replies":          "REPLY",
		"question_follows": "QUESTION_FOLLOW",
		"":                 "RECORD",
	}
	for in, want := range cases {
		if got := domainName(in); got != want {
			t.Errorf("domainName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTableFromMessage(t *testing.T) {
	if got := tableFromMessage("table:users: record not found"); got != "users" {
		t.Errorf("Expected users, got %q", got)
	}
	if got := tableFromMessage("no prefix here"); got != "" {
		t.Errorf("Expected empty table, got %q", got)
	}
}

func TestMapCode(t *testing.T) {
	cases := map[int]Code{
		2067: UniqueViolation,     // SQLITE_CONSTRAINT_UNIQUE
		1555: UniqueViolation,     // SQLITE_CONSTRAINT_PRIMARYKEY
		787:  ForeignKeyViolation, // SQLITE_CONSTRAINT_FOREIGNKEY
		1299: NotNullViolation,    // SQLITE_CONSTRAINT_NOTNULL
		275:  CheckViolation,      // SQLITE_CONSTRAINT_CHECK
		5:    Busy,                // SQLITE_BUSY
		517:  Busy,                // SQLITE_BUSY_SNAPSHOT
		19:   Other,               // bare SQLITE_CONSTRAINT
	}
	for code, want := range cases {
		if got := MapCode(code); got != want {
			t.Errorf("MapCode(%d) = %s, want %s", code, got, want)
		}
	}
}
