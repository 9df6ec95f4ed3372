package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshills/quantaplan/internal/catalog"
	"github.com/dshills/quantaplan/internal/sql/types"
	"github.com/dshills/quantaplan/internal/storage"
)

// UsersColumns is the users(id INTEGER NOT NULL, name TEXT) layout.
func UsersColumns() []storage.Column {
	return []storage.Column{
		{Name: "id", Type: types.Integer},
		{Name: "name", Type: types.Text, Nullable: true},
	}
}

// User builds a users row. An empty name is NULL.
func User(id int64, name string) []types.Value {
	if name == "" {
		return []types.Value{types.NewIntegerValue(id), types.NewNullValue()}
	}
	return []types.Value{types.NewIntegerValue(id), types.NewTextValue(name)}
}

// NewSchema returns an empty schema with default storage options.
func NewSchema(t *testing.T) *catalog.Schema {
	t.Helper()
	return catalog.NewSchema(storage.DefaultOptions())
}

// CreateTable creates a table or fails the test.
func CreateTable(t *testing.T, s *catalog.Schema, name string, columns []storage.Column) catalog.TableIndex {
	t.Helper()
	idx, err := s.CreateTable(name, columns)
	require.NoError(t, err)
	return idx
}

// TableRows reads every row of the table at idx straight from storage.
func TableRows(t *testing.T, s *catalog.Schema, idx catalog.TableIndex) [][]types.Value {
	t.Helper()
	rows, err := catalog.MapOnTable(s, idx, func(tbl *storage.Table) ([][]types.Value, error) {
		var out [][]types.Value
		it := tbl.RowIDIter()
		for id, ok := it.Next(); ok; id, ok = it.Next() {
			row, err := tbl.GetRow(id)
			if err != nil {
				return nil, err
			}
			out = append(out, row)
		}
		return out, nil
	})
	require.NoError(t, err)
	return rows
}
