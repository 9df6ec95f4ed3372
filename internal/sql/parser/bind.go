package parser

import (
	"github.com/dshills/quantaplan/internal/catalog"
	"github.com/dshills/quantaplan/internal/errors"
	"github.com/dshills/quantaplan/internal/sql/ir"
	"github.com/dshills/quantaplan/internal/storage"
)

// BindInsert resolves an INSERT against the catalog and returns one IR per
// VALUES tuple. Without a column list the values fill the table's columns in
// order. A column named twice is kept twice.
func BindInsert(stmt *InsertStmt, s *catalog.Schema) ([]*ir.InsertIR, error) {
	idx, err := s.FindTable(stmt.Table)
	if err != nil {
		return nil, err
	}
	table := ir.TableRef{Name: stmt.Table, Index: idx}

	var named []ir.ColumnRef
	if len(stmt.Columns) > 0 {
		named = make([]ir.ColumnRef, len(stmt.Columns))
		for i, name := range stmt.Columns {
			col, err := s.FindColumn(idx, name)
			if err != nil {
				return nil, err
			}
			named[i] = ir.ColumnRef{Name: name, Index: col}
		}
	}

	all, err := catalog.MapOnTable(s, idx, func(t *storage.Table) ([]ir.ColumnRef, error) {
		cols := t.Columns()
		refs := make([]ir.ColumnRef, len(cols))
		for i, col := range cols {
			refs[i] = ir.ColumnRef{Name: col.Name, Index: catalog.ColumnIndex(i)}
		}
		return refs, nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]*ir.InsertIR, 0, len(stmt.Rows))
	for _, row := range stmt.Rows {
		columns := named
		if columns == nil {
			if len(row) > len(all) {
				return nil, errors.InsertArityError(len(all), len(row))
			}
			columns = all[:len(row)]
		}
		if len(columns) != len(row) {
			return nil, errors.InsertArityError(len(columns), len(row))
		}
		out = append(out, &ir.InsertIR{
			Table:   table,
			Columns: columns,
			Values:  row,
		})
	}
	return out, nil
}
