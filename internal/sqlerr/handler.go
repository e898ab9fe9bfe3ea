package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/questions/internal/errs"
	"github.com/deppfellow/questions/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"modernc.org/sqlite"
)

// generateErrorCode creates machine-readable codes from a table and a
// violation, in the form <DOMAIN>_<ACTION>:
//
//	users + UniqueViolation       => USER_ALREADY_EXISTS
//	questions + ForeignKeyViolation => QUESTION_NOT_FOUND
func generateErrorCode(tableName string, errType Code) string {
	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	case Busy:
		action = "BUSY"
	}

	return fmt.Sprintf("%s_%s", domainName(tableName), action)
}

// domainName upper-cases and singularizes a table name:
// "question_likes" -> "QUESTION_LIKE". Empty becomes "RECORD".
func domainName(tableName string) string {
	if tableName == "" {
		return "RECORD"
	}
	domain := strings.ToUpper(tableName)
	if strings.HasSuffix(domain, "IES") {
		return strings.TrimSuffix(domain, "IES") + "Y"
	}
	if strings.HasSuffix(domain, "S") && len(domain) > 1 {
		return domain[:len(domain)-1]
	}
	return domain
}

// formatUserFriendlyMessage produces a client-facing message for a
// classified error. It never includes the raw driver text.
func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		// SQLite does not say which reference failed.
		return "A referenced record does not exist"

	case UniqueViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "identifier"
		}
		return fmt.Sprintf("A %s with this %s already exists", entityName, fieldName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		return "One or more values do not meet required conditions"

	case Busy:
		return "The database is busy, please retry"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName infers an entity name for messages.
//
// Priority rules:
//  1. A column ending in "_id" names the referenced entity ("user_id" -> "User")
//  2. Otherwise the singularized table name ("replies" -> "Reply")
//  3. Otherwise "record"
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		return humanizeText(strings.ToLower(domainName(tableName)))
	}

	return "record"
}

// humanizeText converts snake_case into Title Case:
// "question_like" -> "Question Like".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// tableFromMessage extracts <name> from the "table:<name>:" prefix that
// repositories put on their errors.
func tableFromMessage(msg string) string {
	const tablePrefix = "table:"
	_, rest, ok := strings.Cut(msg, tablePrefix)
	if !ok {
		return ""
	}
	table, _, _ := strings.Cut(rest, ":")
	return table
}

// HandleError converts a repository or driver error into an
// application-level *errs.HTTPError.
//
// Output:
//   - already *errs.HTTPError: returned unchanged
//   - model.ErrNotFound / sql.ErrNoRows: 404 "<Entity> not found"
//   - model.ErrMultipleRecords: 500 with code <ENTITY>_INCONSISTENT
//   - *sqlite.Error constraint violations: 400 with generated code
//   - *sqlite.Error busy/locked: 503
//   - anything else: generic 500
//
// It is called by the global error handler after a handler fails.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	table := tableFromMessage(err.Error())

	switch {
	case errors.Is(err, model.ErrNotFound), errors.Is(err, sql.ErrNoRows):
		if table != "" {
			code := domainName(table) + "_NOT_FOUND"
			return errs.NewNotFoundError(fmt.Sprintf("%s not found", getEntityName(table, "")), true, &code)
		}
		return errs.NewNotFoundError("Resource not found", false, nil)

	case errors.Is(err, model.ErrMultipleRecords):
		return errs.NewInternalServerErrorWithCode(domainName(table) + "_INCONSISTENT")
	}

	var driverErr *sqlite.Error
	if errors.As(err, &driverErr) {
		sqlErr := ConvertSQLiteError(driverErr)
		if sqlErr.TableName == "" {
			sqlErr.TableName = table
		}

		errorCode := generateErrorCode(sqlErr.TableName, sqlErr.Code)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation, CheckViolation, UniqueViolation:
			return errs.NewBadRequestError(userMessage, true, &errorCode, nil)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewBadRequestError(userMessage, true, &errorCode, fieldErrors)

		case Busy:
			return errs.NewServiceUnavailableError(userMessage)

		default:
			return errs.NewInternalServerError()
		}
	}

	return errs.NewInternalServerError()
}
