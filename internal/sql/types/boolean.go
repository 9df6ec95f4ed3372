package types

func init() {
	Boolean = &booleanType{}
}

// booleanType implements the BOOLEAN data type.
type booleanType struct{}

func (t *booleanType) Name() string {
	return "BOOLEAN"
}

func (t *booleanType) ID() TypeID {
	return TypeIDBoolean
}

func (t *booleanType) IsValid(v Value) bool {
	if v.Null {
		return true
	}

	_, ok := v.Data.(bool)
	return ok
}

// NewBooleanValue creates a new BOOLEAN value.
func NewBooleanValue(b bool) Value {
	return NewValue(b)
}
