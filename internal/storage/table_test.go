package storage

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qerrors "github.com/dshills/quantaplan/internal/errors"
	"github.com/dshills/quantaplan/internal/sql/types"
)

func usersTable(t *testing.T, opts Options) *Table {
	t.Helper()
	table, err := NewTable("users", []Column{
		{Name: "id", Type: types.Integer},
		{Name: "name", Type: types.Text, Nullable: true},
	}, opts)
	require.NoError(t, err)
	return table
}

func TestNewTableValidation(t *testing.T) {
	_, err := NewTable("t", nil, DefaultOptions())
	assert.True(t, qerrors.IsError(err, qerrors.InvalidTableDefinition))

	_, err = NewTable("t", []Column{
		{Name: "a", Type: types.Integer},
		{Name: "A", Type: types.Text},
	}, DefaultOptions())
	assert.True(t, qerrors.IsError(err, qerrors.DuplicateColumn))

	_, err = NewTable("t", []Column{{Name: "a"}}, DefaultOptions())
	assert.True(t, qerrors.IsError(err, qerrors.InvalidTableDefinition))
}

func TestInsertAndGetRow(t *testing.T) {
	table := usersTable(t, DefaultOptions())

	id1, err := table.InsertRow([]types.Value{types.NewIntegerValue(1), types.NewTextValue("ada")})
	require.NoError(t, err)
	id2, err := table.InsertRow([]types.Value{types.NewIntegerValue(2), types.NewNullValue()})
	require.NoError(t, err)

	assert.Equal(t, RowID(1), id1)
	assert.Equal(t, RowID(2), id2)
	assert.Equal(t, 2, table.Len())

	row, err := table.GetRow(id1)
	require.NoError(t, err)
	assert.Equal(t, []types.Value{types.NewIntegerValue(1), types.NewTextValue("ada")}, row)

	row, err = table.GetRow(id2)
	require.NoError(t, err)
	require.Len(t, row, 2)
	assert.True(t, row[1].IsNull())
}

func TestInsertRowRejects(t *testing.T) {
	table := usersTable(t, DefaultOptions())

	t.Run("width", func(t *testing.T) {
		_, err := table.InsertRow([]types.Value{types.NewIntegerValue(1)})
		assert.True(t, errors.Is(err, ErrRowWidth))
	})

	t.Run("not null", func(t *testing.T) {
		_, err := table.InsertRow([]types.Value{types.NewNullValue(), types.NewTextValue("x")})
		assert.True(t, qerrors.IsError(err, qerrors.NotNullViolation))
	})

	t.Run("type", func(t *testing.T) {
		_, err := table.InsertRow([]types.Value{types.NewTextValue("1"), types.NewNullValue()})
		require.True(t, qerrors.IsError(err, qerrors.DatatypeMismatch))
		assert.Equal(t, "id", qerrors.GetError(err).Column)
	})

	assert.Equal(t, 0, table.Len())
}

func TestInsertWidensIntegerToDouble(t *testing.T) {
	table, err := NewTable("m", []Column{{Name: "x", Type: types.Double}}, DefaultOptions())
	require.NoError(t, err)

	id, err := table.InsertRow([]types.Value{types.NewIntegerValue(3)})
	require.NoError(t, err)

	row, err := table.GetRow(id)
	require.NoError(t, err)
	assert.Equal(t, types.NewDoubleValue(3), row[0])
}

func TestRowIDIteratorIsSnapshot(t *testing.T) {
	table := usersTable(t, DefaultOptions())
	for i := int64(1); i <= 3; i++ {
		_, err := table.InsertRow([]types.Value{types.NewIntegerValue(i), types.NewNullValue()})
		require.NoError(t, err)
	}

	it := table.RowIDIter()
	_, err := table.InsertRow([]types.Value{types.NewIntegerValue(4), types.NewNullValue()})
	require.NoError(t, err)
	assert.Equal(t, 3, it.Remaining())

	var got []RowID
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		got = append(got, id)
	}
	assert.Equal(t, []RowID{1, 2, 3}, got)

	_, ok := it.Next()
	assert.False(t, ok)
}

func TestDeleteRow(t *testing.T) {
	table := usersTable(t, DefaultOptions())
	id, err := table.InsertRow([]types.Value{types.NewIntegerValue(1), types.NewNullValue()})
	require.NoError(t, err)

	it := table.RowIDIter()
	require.NoError(t, table.DeleteRow(id))
	assert.Equal(t, 0, table.Len())

	gone, ok := it.Next()
	require.True(t, ok)
	_, err = table.GetRow(gone)
	assert.True(t, qerrors.IsError(err, qerrors.NoData))

	assert.True(t, qerrors.IsError(table.DeleteRow(id), qerrors.NoData))
}

func TestLargeRowsAreCompressed(t *testing.T) {
	table := usersTable(t, Options{Compression: CompressionLZ4, CompressionMinSize: 16})
	long := strings.Repeat("quanta", 100)

	id, err := table.InsertRow([]types.Value{types.NewIntegerValue(1), types.NewTextValue(long)})
	require.NoError(t, err)
	_, err = table.InsertRow([]types.Value{types.NewIntegerValue(2), types.NewNullValue()})
	require.NoError(t, err)

	stats := table.CompressionStats()
	assert.Equal(t, int64(1), stats.CompressedRows)
	assert.Equal(t, int64(1), stats.RawRows)
	assert.Positive(t, stats.TotalSavings)

	row, err := table.GetRow(id)
	require.NoError(t, err)
	assert.Equal(t, long, row[1].Data)
}

func TestCompressionDisabled(t *testing.T) {
	table := usersTable(t, Options{Compression: CompressionNone})
	_, err := table.InsertRow([]types.Value{types.NewIntegerValue(1), types.NewTextValue(strings.Repeat("a", 500))})
	require.NoError(t, err)
	assert.Zero(t, table.CompressionStats().CompressedRows)
}
