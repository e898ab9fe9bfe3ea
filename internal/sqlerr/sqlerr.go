// Package sqlerr specifically handles database driver errors.
//
// It parses cryptic result codes from the SQLite driver and converts
// them into user-friendly messages (e.g., converting a "foreign key
// violation" into a "Bad Request" error).
package sqlerr

import (
	"fmt"
	"regexp"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Code is the driver-independent category of a database error.
type Code string

const (
	Other               Code = "other"
	UniqueViolation     Code = "unique_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	NotNullViolation    Code = "not_null_violation"
	CheckViolation      Code = "check_violation"
	Busy                Code = "busy"
)

// Error is a classified database error. TableName and ColumnName are
// filled in when SQLite names them in its message.
type Error struct {
	Code         Code
	DatabaseCode int
	Message      string
	TableName    string
	ColumnName   string
	driverErr    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLite result code to a Code. Extended codes are checked
// first; a bare SQLITE_CONSTRAINT falls back to Other.
func MapCode(code int) Code {
	switch code {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return UniqueViolation
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return ForeignKeyViolation
	case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		return NotNullViolation
	case sqlite3.SQLITE_CONSTRAINT_CHECK:
		return CheckViolation
	}

	switch code & 0xff {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		return Busy
	}
	return Other
}

// SQLite words constraint failures as
//
//	UNIQUE constraint failed: users.fname
//	NOT NULL constraint failed: questions.title
//	CHECK constraint failed: positive_id
//	FOREIGN KEY constraint failed
var constraintRe = regexp.MustCompile(`(UNIQUE|NOT NULL|CHECK|FOREIGN KEY) constraint failed(?:: ([A-Za-z0-9_.]+))?`)

// ConvertSQLiteError converts a raw driver error into an *Error.
func ConvertSQLiteError(src *sqlite.Error) *Error {
	sqlErr := &Error{
		Code:         MapCode(src.Code()),
		DatabaseCode: src.Code(),
		Message:      src.Error(),
		driverErr:    src,
	}

	m := constraintRe.FindStringSubmatch(src.Error())
	if m == nil {
		return sqlErr
	}

	// The message is more reliable than the code when the driver only
	// reports the primary SQLITE_CONSTRAINT.
	if sqlErr.Code == Other {
		switch m[1] {
		case "UNIQUE":
			sqlErr.Code = UniqueViolation
		case "NOT NULL":
			sqlErr.Code = NotNullViolation
		case "CHECK":
			sqlErr.Code = CheckViolation
		case "FOREIGN KEY":
			sqlErr.Code = ForeignKeyViolation
		}
	}

	if table, column, ok := strings.Cut(m[2], "."); ok {
		sqlErr.TableName = table
		sqlErr.ColumnName = column
	} else if m[1] == "CHECK" {
		sqlErr.ColumnName = m[2]
	}

	return sqlErr
}
