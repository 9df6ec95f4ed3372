package planner

import (
	"fmt"

	"github.com/dshills/quantaplan/internal/catalog"
	"github.com/dshills/quantaplan/internal/sql/executor"
	"github.com/dshills/quantaplan/internal/storage"
)

// Plan is an executable statement plan bound to one table slot.
type Plan interface {
	// Table returns the index of the table the plan reads or writes.
	Table() catalog.TableIndex
	// String returns a string representation for debugging.
	String() string
	planNode()
}

var (
	_ Plan = (*ResultSet)(nil)
	_ Plan = (*InsertPlan)(nil)
)

// ResultSet is a plan that produces rows.
type ResultSet struct {
	table string
	scan  *executor.ScanOperator
}

func (*ResultSet) planNode() {}

// Table returns the index of the scanned table.
func (r *ResultSet) Table() catalog.TableIndex {
	return r.scan.Table()
}

// Next returns the next row, or nil once the result set is exhausted.
func (r *ResultSet) Next(s *catalog.Schema) (*executor.Row, error) {
	return r.scan.Next(s)
}

// Columns returns the column names of the scanned table.
func (r *ResultSet) Columns(s *catalog.Schema) ([]string, error) {
	return catalog.MapOnTable(s, r.scan.Table(), func(t *storage.Table) ([]string, error) {
		cols := t.Columns()
		names := make([]string, len(cols))
		for i, col := range cols {
			names[i] = col.Name
		}
		return names, nil
	})
}

// RowsRead returns the number of rows produced so far.
func (r *ResultSet) RowsRead() int64 {
	return r.scan.RowsRead()
}

func (r *ResultSet) String() string {
	return fmt.Sprintf("Scan(%s)", r.table)
}

// InsertPlan is a plan that writes rows.
type InsertPlan struct {
	table  string
	rows   int
	insert *executor.InsertOperator
}

func (*InsertPlan) planNode() {}

// Table returns the index of the target table.
func (p *InsertPlan) Table() catalog.TableIndex {
	return p.insert.Table()
}

// Run performs the insert and returns the number of rows written. A failed
// run returns the rows written before the failure along with the error.
func (p *InsertPlan) Run(s *catalog.Schema) (int64, error) {
	return p.insert.Run(s)
}

// Len returns the number of rows the plan will insert.
func (p *InsertPlan) Len() int {
	return p.rows
}

func (p *InsertPlan) String() string {
	return fmt.Sprintf("Insert(%s, rows=%d)", p.table, p.rows)
}
