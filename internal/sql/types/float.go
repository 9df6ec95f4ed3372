package types

func init() {
	Double = &doubleType{}
}

// doubleType implements the DOUBLE PRECISION data type (64-bit)
type doubleType struct{}

func (t *doubleType) Name() string {
	return "DOUBLE PRECISION"
}

func (t *doubleType) ID() TypeID {
	return TypeIDDouble
}

func (t *doubleType) IsValid(v Value) bool {
	if v.Null {
		return true
	}
	_, ok := v.Data.(float64)
	return ok
}

// NewDoubleValue creates a new DOUBLE PRECISION value
func NewDoubleValue(f float64) Value {
	return NewValue(f)
}
