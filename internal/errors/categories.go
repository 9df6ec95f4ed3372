package errors

// Category-specific error constructors for the plan layer and its collaborators

// Catalog errors
func ColumnNotFoundError(columnName, tableName string) *Error {
	if tableName != "" {
		return UndefinedColumnError(columnName, tableName)
	}
	return Newf(UndefinedColumn, "column \"%s\" does not exist", columnName).
		WithColumn(columnName)
}

func TableNotFoundError(tableName string) *Error {
	return UndefinedTableError(tableName)
}

func DuplicateColumnError(columnName, tableName string) *Error {
	return Newf(DuplicateColumn, "column \"%s\" specified more than once", columnName).
		WithTable(tableName).
		WithColumn(columnName)
}

func InvalidTableDefinitionError(tableName, reason string) *Error {
	return Newf(InvalidTableDefinition, "invalid definition for table \"%s\": %s", tableName, reason).
		WithTable(tableName)
}

// Storage errors
func RowNotFoundError(rowID uint64, tableName string) *Error {
	return Newf(NoData, "row %d not found", rowID).
		WithTable(tableName)
}

func RowCorruptedError(rowID uint64, tableName string, reason string) *Error {
	return Newf(DataCorrupted, "row %d of relation \"%s\" is corrupted", rowID, tableName).
		WithTable(tableName).
		WithDetail(reason)
}

// Planner errors
func InsertArityError(columns, values int) *Error {
	if values > columns {
		return SyntaxErrorf("INSERT has more expressions than target columns").
			WithDetailf("%d target columns, %d expressions", columns, values)
	}
	return SyntaxErrorf("INSERT has more target columns than expressions").
		WithDetailf("%d target columns, %d expressions", columns, values)
}

// Configuration errors
func ConfigError(format string, args ...interface{}) *Error {
	return Newf(ConfigFileError, format, args...)
}
