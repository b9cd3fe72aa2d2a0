// Package sqlerr handles database driver errors.
//
// It parses SQLSTATE codes from the Postgres driver and converts them
// into user-friendly application errors (e.g. converting a foreign key
// violation into a Bad Request error).
package sqlerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Code classifies a database error into a category the application
// can switch on without knowing SQLSTATE values.
type Code int

const (
	// Other is any error that does not map to a known category.
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
	UndefinedTable
	InsufficientPrivilege
	ConnectionFailure
)

// Severity mirrors the Postgres error severity field.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityError
	SeverityFatal
	SeverityPanic
)

// MapCode maps a Postgres SQLSTATE code to a sqlerr.Code.
//
// SQLSTATE reference: https://www.postgresql.org/docs/current/errcodes-appendix.html
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	case "42P01":
		return UndefinedTable
	case "42501":
		return InsufficientPrivilege
	}
	// Class 08 covers all connection exceptions.
	if len(sqlstate) >= 2 && sqlstate[:2] == "08" {
		return ConnectionFailure
	}
	return Other
}

// MapSeverity maps the Postgres severity string to a Severity.
func MapSeverity(severity string) Severity {
	switch severity {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	}
	return SeverityUnknown
}

// Error is the normalized form of a Postgres server error.
//
// It keeps the original SQLSTATE and the structural metadata
// (table, column, constraint) needed to phrase client messages.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr *pgconn.PgError
}

// Error satisfies the error interface with the database's own message.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes the original driver error for errors.As chains.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// ErrCode reports the mapped sqlerr.Code for a given error.
//
// If err cannot be unwrapped into *sqlerr.Error, it returns Other.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	return Other
}

// ConvertPgError converts a raw pgconn.PgError into a *sqlerr.Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}
