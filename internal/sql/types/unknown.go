package types

// unknownType represents an unknown type (used for NULL literals without context)
type unknownType struct{}

func (t *unknownType) Name() string {
	return "UNKNOWN"
}

func (t *unknownType) ID() TypeID {
	return TypeIDInvalid
}

func (t *unknownType) IsValid(v Value) bool {
	return v.Null
}

// Unknown is the unknown type instance
var Unknown DataType = &unknownType{}

// NullRow returns a row of width NULL values.
func NullRow(width int) []Value {
	row := make([]Value, width)
	for i := range row {
		row[i] = NewNullValue()
	}
	return row
}
