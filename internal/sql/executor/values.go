package executor

import (
	"github.com/dshills/quantaplan/internal/catalog"
	"github.com/dshills/quantaplan/internal/sql/types"
)

// ValuesOperator yields a fixed list of rows once, in order.
type ValuesOperator struct {
	rows    [][]types.Value
	current int
}

// NewValuesOperator creates a new values operator.
func NewValuesOperator(rows [][]types.Value) *ValuesOperator {
	return &ValuesOperator{
		rows:    rows,
		current: -1,
	}
}

// Next returns the next row.
func (v *ValuesOperator) Next(_ *catalog.Schema) (*Row, error) {
	if v.current >= len(v.rows) {
		return nil, nil // nolint:nilnil // EOF
	}
	v.current++
	if v.current >= len(v.rows) {
		return nil, nil // nolint:nilnil // EOF
	}

	return &Row{Values: v.rows[v.current]}, nil
}

// Len returns the number of rows the operator was built with.
func (v *ValuesOperator) Len() int {
	return len(v.rows)
}
