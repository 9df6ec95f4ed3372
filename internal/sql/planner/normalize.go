package planner

import (
	"github.com/dshills/quantaplan/internal/catalog"
	"github.com/dshills/quantaplan/internal/errors"
	"github.com/dshills/quantaplan/internal/sql/ir"
	"github.com/dshills/quantaplan/internal/sql/types"
	"github.com/dshills/quantaplan/internal/storage"
)

// normalizeInsertRow expands an insert into a full-width row. Columns not
// named stay NULL; when a column is named twice the later value wins.
func normalizeInsertRow(insert *ir.InsertIR, s *catalog.Schema) ([]types.Value, error) {
	if len(insert.Columns) != len(insert.Values) {
		return nil, errors.InsertArityError(len(insert.Columns), len(insert.Values))
	}

	width, err := catalog.MapOnTable(s, insert.Table.Index, func(t *storage.Table) (int, error) {
		return len(t.Columns()), nil
	})
	if err != nil {
		return nil, err
	}

	row := types.NullRow(width)
	for i, col := range insert.Columns {
		if col.Index < 0 || int(col.Index) >= width {
			return nil, errors.InternalErrorf("column %q resolved to position %d of a %d-column row",
				col.Name, col.Index, width).WithTable(insert.Table.Name)
		}
		row[col.Index] = insert.Values[i]
	}
	return row, nil
}
