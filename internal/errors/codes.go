package errors

// PostgreSQL Error Codes (SQLSTATE) raised by the plan layer and its collaborators.
// Based on PostgreSQL error codes: https://www.postgresql.org/docs/current/errcodes-appendix.html

// Class 00 - Successful Completion
const (
	SuccessfulCompletion = "00000"
)

// Class 02 - No Data
const (
	NoData = "02000"
)

// Class 0A - Feature Not Supported
const (
	FeatureNotSupported = "0A000"
)

// Class 22 - Data Exception
const (
	DataException         = "22000"
	InvalidParameterValue = "22023"
)

// Class 23 - Integrity Constraint Violation
const (
	IntegrityConstraintViolation = "23000"
	NotNullViolation             = "23502"
)

// Class 42 - Syntax Error or Access Rule Violation
const (
	SyntaxErrorOrAccessRuleViolation = "42000"
	SyntaxError                      = "42601"
	DatatypeMismatch                 = "42804"
	UndefinedColumn                  = "42703"
	UndefinedTable                   = "42P01"
	DuplicateColumn                  = "42701"
	DuplicateTable                   = "42P07"
	InvalidTableDefinition           = "42P16"
)

// Class F0 - Configuration File Error
const (
	ConfigFileError = "F0000"
)

// Class XX - Internal Error
const (
	InternalError  = "XX000"
	DataCorrupted  = "XX001"
	IndexCorrupted = "XX002"
)
