package planner

import (
	"github.com/dshills/quantaplan/internal/catalog"
	"github.com/dshills/quantaplan/internal/errors"
	"github.com/dshills/quantaplan/internal/log"
	"github.com/dshills/quantaplan/internal/sql/executor"
	"github.com/dshills/quantaplan/internal/sql/ir"
	"github.com/dshills/quantaplan/internal/sql/types"
)

// BuildSelectPlan builds a full scan of the single table named in FROM.
func BuildSelectPlan(stmt *ir.SelectStmt, s *catalog.Schema) (*ResultSet, error) {
	if stmt == nil {
		return nil, errors.InternalErrorf("nil SELECT statement")
	}

	switch len(stmt.From) {
	case 0:
		return nil, errors.FeatureNotSupportedError("SELECT without FROM")
	case 1:
	default:
		return nil, errors.FeatureNotSupportedError("SELECT from more than one FROM item")
	}

	var name string
	switch from := stmt.From[0].(type) {
	case *ir.NamedTable:
		name = from.Name
	case *ir.JoinedTables:
		return nil, errors.FeatureNotSupportedError("JOIN")
	case *ir.Subquery:
		return nil, errors.FeatureNotSupportedError("subquery in FROM")
	default:
		return nil, errors.InternalErrorf("unexpected FROM item %T", from)
	}

	scan, err := executor.NewScanOperator(name, s)
	if err != nil {
		return nil, err
	}

	log.Debug("built select plan",
		log.String("table", name),
		log.Int("table_index", int(scan.Table())))
	return &ResultSet{table: name, scan: scan}, nil
}

// BuildInsertPlan builds an insert of one row.
func BuildInsertPlan(insert *ir.InsertIR, s *catalog.Schema) (*InsertPlan, error) {
	if insert == nil {
		return nil, errors.InternalErrorf("nil INSERT statement")
	}
	return BuildBatchInsertPlan([]*ir.InsertIR{insert}, s)
}

// BuildBatchInsertPlan builds an insert of many rows into one table. Every
// element must target the same table slot.
func BuildBatchInsertPlan(inserts []*ir.InsertIR, s *catalog.Schema) (*InsertPlan, error) {
	if len(inserts) == 0 {
		return nil, errors.InternalErrorf("INSERT without rows")
	}

	target := inserts[0].Table
	rows := make([][]types.Value, 0, len(inserts))
	for _, insert := range inserts {
		if insert == nil {
			return nil, errors.InternalErrorf("nil INSERT statement")
		}
		if insert.Table.Index != target.Index {
			return nil, errors.InternalErrorf("INSERT batch targets tables %q and %q",
				target.Name, insert.Table.Name)
		}

		row, err := normalizeInsertRow(insert, s)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	op := executor.NewInsertOperator(target.Index, executor.NewValuesOperator(rows))

	log.Debug("built insert plan",
		log.String("table", target.Name),
		log.Int("table_index", int(target.Index)),
		log.Int("rows", len(rows)))
	return &InsertPlan{table: target.Name, rows: len(rows), insert: op}, nil
}
