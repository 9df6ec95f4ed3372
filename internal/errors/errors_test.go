package errors

import (
	"fmt"
	"testing"

	crdberrors "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	err := TableNotFoundError("users")
	assert.Equal(t, UndefinedTable, err.Code)
	assert.Equal(t, "users", err.Table)
	assert.Equal(t, `relation "users" does not exist (SQLSTATE 42P01)`, err.Error())

	err = InsertArityError(1, 2)
	assert.Equal(t, SyntaxError, err.Code)
	assert.Contains(t, err.Error(), "more expressions than target columns")
	assert.Contains(t, err.Error(), "DETAIL: 1 target columns, 2 expressions")
}

func TestIsErrorWalksWrapChain(t *testing.T) {
	base := ColumnNotFoundError("age", "users")
	wrapped := crdberrors.Wrap(base, "bind insert")
	stdWrapped := fmt.Errorf("outer: %w", wrapped)

	assert.True(t, IsError(base, UndefinedColumn))
	assert.True(t, IsError(wrapped, UndefinedColumn))
	assert.True(t, IsError(stdWrapped, UndefinedColumn))
	assert.False(t, IsError(stdWrapped, UndefinedTable))
	assert.False(t, IsError(nil, UndefinedColumn))
}

func TestGetError(t *testing.T) {
	assert.Nil(t, GetError(nil))

	qErr := GetError(fmt.Errorf("boom"))
	require.NotNil(t, qErr)
	assert.Equal(t, InternalError, qErr.Code)
	assert.Equal(t, "boom", qErr.Message)

	orig := RowNotFoundError(7, "t")
	assert.Same(t, orig, GetError(crdberrors.Wrap(orig, "scan")))
}

func TestCode(t *testing.T) {
	assert.Equal(t, SuccessfulCompletion, Code(nil))
	assert.Equal(t, FeatureNotSupported, Code(FeatureNotSupportedError("JOIN")))
	assert.Equal(t, InternalError, Code(fmt.Errorf("plain")))
}

func TestColumnNotFoundWithoutTable(t *testing.T) {
	err := ColumnNotFoundError("x", "")
	assert.Equal(t, `column "x" does not exist (SQLSTATE 42703)`, err.Error())
	assert.Empty(t, err.Table)
}

func TestDataTypeMismatchCarriesType(t *testing.T) {
	err := DataTypeMismatchError("INTEGER", "TEXT")
	assert.Equal(t, DatatypeMismatch, err.Code)
	assert.Equal(t, "INTEGER", err.DataType)
	assert.NotEmpty(t, err.Hint)
}
