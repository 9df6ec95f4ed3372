package types

func init() {
	// Text is unbounded text
	Text = &textType{}
}

// textType implements the TEXT data type
type textType struct{}

func (t *textType) Name() string {
	return "TEXT"
}

func (t *textType) ID() TypeID {
	return TypeIDText
}

func (t *textType) IsValid(v Value) bool {
	if v.Null {
		return true
	}
	_, ok := v.Data.(string)
	return ok
}

// NewTextValue creates a new TEXT value
func NewTextValue(s string) Value {
	return NewValue(s)
}
