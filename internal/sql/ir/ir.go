// Package ir holds the resolved statement forms the planner consumes.
package ir

import (
	"strings"

	"github.com/dshills/quantaplan/internal/catalog"
	"github.com/dshills/quantaplan/internal/sql/types"
)

// SelectStmt is a SELECT with its FROM list. Projection and filtering are
// not represented; every column of the source is produced.
type SelectStmt struct {
	From []FromItem
}

// FromItem is one entry of a FROM list.
type FromItem interface {
	fromItem()
	String() string
}

// NamedTable references a table by name.
type NamedTable struct {
	Name string
}

// JoinedTables is a join of two FROM items.
type JoinedTables struct {
	Left  FromItem
	Right FromItem
}

// Subquery is a parenthesized SELECT used as a FROM item.
type Subquery struct {
	Select *SelectStmt
}

func (*NamedTable) fromItem()   {}
func (*JoinedTables) fromItem() {}
func (*Subquery) fromItem()     {}

func (n *NamedTable) String() string { return n.Name }

func (j *JoinedTables) String() string {
	return j.Left.String() + " JOIN " + j.Right.String()
}

func (*Subquery) String() string { return "(subquery)" }

// TableRef is a table resolved against the catalog.
type TableRef struct {
	Name  string
	Index catalog.TableIndex
}

// ColumnRef is a column resolved against its table.
type ColumnRef struct {
	Name  string
	Index catalog.ColumnIndex
}

// InsertIR is one resolved row to insert. Columns and Values are parallel.
type InsertIR struct {
	Table   TableRef
	Columns []ColumnRef
	Values  []types.Value
}

// String renders the statement for logs and plan output.
func (s *SelectStmt) String() string {
	parts := make([]string, len(s.From))
	for i, f := range s.From {
		parts[i] = f.String()
	}
	return "SELECT * FROM " + strings.Join(parts, ", ")
}
