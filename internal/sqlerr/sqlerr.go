// Package sqlerr translates database driver errors into application errors.
//
// It parses SQLSTATE codes from the Postgres driver and converts them
// into user-friendly HTTPErrors (e.g. a unique violation becomes a
// "already exists" Bad Request instead of a cryptic driver message).
package sqlerr

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Code classifies the database errors this service cares about.
type Code int

const (
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
)

// Severity mirrors the Postgres error severity levels.
type Severity int

const (
	SeverityError Severity = iota
	SeverityFatal
	SeverityPanic
)

// Error is a normalized database error with the driver metadata needed
// to build user-facing messages.
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

	driverErr error
}

func (e *Error) Error() string {
	return fmt.Sprintf("sqlerr: %s (%s)", e.Message, e.DatabaseCode)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// MapCode maps a SQLSTATE code to a Code.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case pgerrUniqueViolation:
		return UniqueViolation
	case pgerrForeignKeyViolation:
		return ForeignKeyViolation
	case pgerrNotNullViolation:
		return NotNullViolation
	case pgerrCheckViolation:
		return CheckViolation
	default:
		return Other
	}
}

// SQLSTATE class 23 integrity constraint violations.
const (
	pgerrForeignKeyViolation = "23503"
	pgerrUniqueViolation     = "23505"
	pgerrNotNullViolation    = "23502"
	pgerrCheckViolation      = "23514"
)

// MapSeverity maps the driver severity string to a Severity.
func MapSeverity(severity string) Severity {
	switch severity {
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	default:
		return SeverityError
	}
}

// ConvertPgError converts a raw pgconn.PgError into an *Error.
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
