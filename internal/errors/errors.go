package errors

import (
	"fmt"

	crdberrors "github.com/cockroachdb/errors"
)

// Error represents a PostgreSQL-compatible error with SQLSTATE code
type Error struct {
	Code     string // SQLSTATE code
	Message  string // Primary error message
	Detail   string // Optional detailed error message
	Hint     string // Optional hint message
	Table    string // Table name if applicable
	Column   string // Column name if applicable
	DataType string // Data type name if applicable
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (SQLSTATE %s) DETAIL: %s", e.Message, e.Code, e.Detail)
	}
	return fmt.Sprintf("%s (SQLSTATE %s)", e.Message, e.Code)
}

// New creates a new Error with the given code and message
func New(code string, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new Error with a formatted message
func Newf(code string, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithDetail adds detail to the error
func (e *Error) WithDetail(detail string) *Error {
	e.Detail = detail
	return e
}

// WithDetailf adds formatted detail to the error
func (e *Error) WithDetailf(format string, args ...interface{}) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithHint adds a hint to the error
func (e *Error) WithHint(hint string) *Error {
	e.Hint = hint
	return e
}

// WithTable sets the table name
func (e *Error) WithTable(table string) *Error {
	e.Table = table
	return e
}

// WithColumn sets the column name
func (e *Error) WithColumn(column string) *Error {
	e.Column = column
	return e
}

// WithDataType sets the data type name
func (e *Error) WithDataType(dataType string) *Error {
	e.DataType = dataType
	return e
}

// Common error constructors

// SyntaxErrorf creates a formatted syntax error
func SyntaxErrorf(format string, args ...interface{}) *Error {
	return Newf(SyntaxError, format, args...)
}

// UndefinedTableError creates an undefined table error
func UndefinedTableError(tableName string) *Error {
	return Newf(UndefinedTable, "relation \"%s\" does not exist", tableName).
		WithTable(tableName)
}

// UndefinedColumnError creates an undefined column error
func UndefinedColumnError(columnName string, tableName string) *Error {
	return Newf(UndefinedColumn, "column \"%s\" of relation \"%s\" does not exist", columnName, tableName).
		WithTable(tableName).
		WithColumn(columnName)
}

// DuplicateTableError creates a duplicate table error
func DuplicateTableError(tableName string) *Error {
	return Newf(DuplicateTable, "relation \"%s\" already exists", tableName).
		WithTable(tableName)
}

// NotNullViolationError creates a not null violation error
func NotNullViolationError(columnName string, tableName string) *Error {
	return Newf(NotNullViolation, "null value in column \"%s\" violates not-null constraint", columnName).
		WithTable(tableName).
		WithColumn(columnName)
}

// DataTypeMismatchError creates a data type mismatch error
func DataTypeMismatchError(expected, actual string) *Error {
	return Newf(DatatypeMismatch, "column is of type %s but expression is of type %s", expected, actual).
		WithDataType(expected).
		WithHint("You will need to rewrite or cast the expression.")
}

// InternalErrorf creates an internal error
func InternalErrorf(format string, args ...interface{}) *Error {
	return Newf(InternalError, format, args...)
}

// FeatureNotSupportedError creates a feature not supported error
func FeatureNotSupportedError(feature string) *Error {
	return Newf(FeatureNotSupported, "%s is not supported", feature)
}

// IsError checks if an error, or anything it wraps, is an Error with a specific code
func IsError(err error, code string) bool {
	qErr, ok := asError(err)
	return ok && qErr.Code == code
}

// GetError attempts to extract an Error from any error
func GetError(err error) *Error {
	if err == nil {
		return nil
	}
	if qErr, ok := asError(err); ok {
		return qErr
	}
	// Wrap generic errors as internal errors
	return InternalErrorf("%v", err)
}

// Code returns the SQLSTATE of err, or InternalError for foreign errors.
func Code(err error) string {
	if err == nil {
		return SuccessfulCompletion
	}
	return GetError(err).Code
}

func asError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var qErr *Error
	if crdberrors.As(err, &qErr) {
		return qErr, true
	}
	return nil, false
}
