package executor

import (
	"strings"

	"github.com/dshills/quantaplan/internal/catalog"
	"github.com/dshills/quantaplan/internal/sql/types"
)

// Row represents a row of data.
type Row struct {
	Values []types.Value
}

// String renders the row as a comma separated list.
func (r *Row) String() string {
	parts := make([]string, len(r.Values))
	for i, v := range r.Values {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}

// RowSource is a pull-based producer of rows.
//
// Next returns the next row, or (nil, nil) once the source is exhausted.
// Exhaustion is terminal: every later call also returns (nil, nil).
// The schema is passed on every call so a source never holds catalog
// state between pulls.
type RowSource interface {
	Next(s *catalog.Schema) (*Row, error)
}

// Drain pulls src to completion and returns every row it produced.
func Drain(src RowSource, s *catalog.Schema) ([]*Row, error) {
	var rows []*Row
	for {
		row, err := src.Next(s)
		if err != nil {
			return rows, err
		}
		if row == nil {
			return rows, nil
		}
		rows = append(rows, row)
	}
}
