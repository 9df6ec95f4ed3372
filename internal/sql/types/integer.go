package types

func init() {
	Integer = &integerType{}
}

// integerType implements the INTEGER data type (64-bit)
type integerType struct{}

func (t *integerType) Name() string {
	return "INTEGER"
}

func (t *integerType) ID() TypeID {
	return TypeIDInteger
}

func (t *integerType) IsValid(v Value) bool {
	if v.Null {
		return true
	}
	_, ok := v.Data.(int64)
	return ok
}

// NewIntegerValue creates a new INTEGER value
func NewIntegerValue(i int64) Value {
	return NewValue(i)
}
