package executor

import (
	"github.com/dshills/quantaplan/internal/catalog"
	"github.com/dshills/quantaplan/internal/sql/types"
	"github.com/dshills/quantaplan/internal/storage"
)

// ScanOperator reads every row of a table in storage order.
type ScanOperator struct {
	table    catalog.TableIndex
	iterator *storage.RowIDIterator
	rowCount int64
	done     bool
}

// NewScanOperator resolves tableName and opens a cursor over its rows.
func NewScanOperator(tableName string, s *catalog.Schema) (*ScanOperator, error) {
	idx, err := s.FindTable(tableName)
	if err != nil {
		return nil, err
	}

	iter, err := catalog.MapOnTable(s, idx, func(t *storage.Table) (*storage.RowIDIterator, error) {
		return t.RowIDIter(), nil
	})
	if err != nil {
		return nil, err
	}

	return &ScanOperator{
		table:    idx,
		iterator: iter,
	}, nil
}

// Table returns the index of the scanned table.
func (o *ScanOperator) Table() catalog.TableIndex {
	return o.table
}

// Next returns the next row. The table is re-resolved on every call, so a
// table dropped mid-scan surfaces as an undefined table error.
func (o *ScanOperator) Next(s *catalog.Schema) (*Row, error) {
	if o.done {
		return nil, nil // nolint:nilnil // EOF
	}

	id, ok := o.iterator.Next()
	if !ok {
		o.done = true
		return nil, nil // nolint:nilnil // EOF
	}

	values, err := catalog.MapOnTable(s, o.table, func(t *storage.Table) ([]types.Value, error) {
		return t.GetRow(id)
	})
	if err != nil {
		return nil, err
	}

	o.rowCount++
	return &Row{Values: values}, nil
}

// RowsRead returns the number of rows produced so far.
func (o *ScanOperator) RowsRead() int64 {
	return o.rowCount
}
