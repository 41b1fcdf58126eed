package constants

// Literal texts shared by the serializer and the statement builder.
const (
	// AlwaysTrue is the condition of a WHERE that matches every row.
	// Statements built from it omit the WHERE clause.
	AlwaysTrue  = "1"
	AlwaysFalse = "0"

	Null = "NULL"

	// InvalidType replaces values that have no SQL literal. It is deliberately
	// not valid SQL so that executing the statement fails.
	InvalidType = "[INVALID TYPE]"
)

// MySQL DATETIME layout used for time values.
const (
	DateTimeLayout      = "2006-01-02 15:04:05"
	DateTimeMicroLayout = "2006-01-02 15:04:05.000000"
)

const OneSecondToNanoSecond = 1_000_000_000
