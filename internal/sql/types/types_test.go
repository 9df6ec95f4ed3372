package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerType(t *testing.T) {
	assert.Equal(t, "INTEGER", Integer.Name())
	assert.Equal(t, TypeIDInteger, Integer.ID())

	v1 := NewIntegerValue(42)
	null := NewNullValue()

	assert.True(t, Integer.IsValid(v1))
	assert.True(t, Integer.IsValid(null))
	assert.False(t, Integer.IsValid(NewTextValue("42")))
}

func TestTextAndBooleanTypes(t *testing.T) {
	assert.Equal(t, "TEXT", Text.Name())
	assert.False(t, Text.IsValid(NewIntegerValue(1)))

	assert.Equal(t, TypeIDBoolean, Boolean.ID())
	assert.True(t, Boolean.IsValid(NewBooleanValue(false)))
	assert.False(t, Boolean.IsValid(NewIntegerValue(0)))
}

func TestDoubleType(t *testing.T) {
	assert.Equal(t, "DOUBLE PRECISION", Double.Name())
	assert.True(t, Double.IsValid(NewDoubleValue(1.5)))
	assert.False(t, Double.IsValid(NewIntegerValue(1)))
}

func TestValueType(t *testing.T) {
	assert.Equal(t, Integer, NewIntegerValue(1).Type())
	assert.Equal(t, Text, NewTextValue("x").Type())
	assert.Equal(t, Boolean, NewBooleanValue(true).Type())
	assert.Equal(t, Double, NewDoubleValue(1).Type())
	assert.Equal(t, Unknown, NewNullValue().Type())
}

func TestValueConversions(t *testing.T) {
	i, err := NewIntegerValue(7).AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(7), i)

	_, err = NewNullValue().AsInt()
	require.Error(t, err)

	_, err = NewTextValue("x").AsBool()
	require.Error(t, err)

	d, err := NewIntegerValue(3).AsDouble()
	require.NoError(t, err)
	assert.Equal(t, float64(3), d)

	assert.Equal(t, "NULL", NewNullValue().String())
	assert.Equal(t, "abc", NewTextValue("abc").String())
}

func TestParseTypeName(t *testing.T) {
	tests := []struct {
		name string
		want DataType
	}{
		{"int", Integer},
		{"BIGINT", Integer},
		{"varchar", Text},
		{"TEXT", Text},
		{"boolean", Boolean},
		{"double", Double},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTypeName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseTypeName("BLOB")
	require.Error(t, err)
}

func TestNullRow(t *testing.T) {
	row := NullRow(3)
	require.Len(t, row, 3)
	for _, v := range row {
		assert.True(t, v.IsNull())
	}
	assert.Empty(t, NullRow(0))
}
