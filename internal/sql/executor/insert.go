package executor

import (
	"time"

	"github.com/dshills/quantaplan/internal/catalog"
	"github.com/dshills/quantaplan/internal/log"
	"github.com/dshills/quantaplan/internal/storage"
)

// InsertOperator writes every row of its source into one table.
type InsertOperator struct {
	table        catalog.TableIndex
	source       RowSource
	logger       log.Logger
	rowsInserted int64
	done         bool
}

// NewInsertOperator creates an insert into table fed by source. Nothing is
// written until Run.
func NewInsertOperator(table catalog.TableIndex, source RowSource) *InsertOperator {
	return &InsertOperator{
		table:  table,
		source: source,
		logger: log.Default().With(log.String("component", "executor")),
	}
}

// SetLogger replaces the operator's logger.
func (i *InsertOperator) SetLogger(l log.Logger) {
	i.logger = l
}

// Table returns the index of the target table.
func (i *InsertOperator) Table() catalog.TableIndex {
	return i.table
}

// Run drains the source into the table and returns the number of rows
// inserted. On failure the rows written before it stay, and their count is
// returned with the error. Run is one-shot; later calls return 0.
func (i *InsertOperator) Run(s *catalog.Schema) (int64, error) {
	if i.done {
		return 0, nil
	}
	i.done = true
	start := time.Now()

	var count int64
	for {
		row, err := i.source.Next(s)
		if err != nil {
			return i.abort(count, err)
		}
		if row == nil {
			break
		}

		_, err = catalog.MapOnTableMut(s, i.table, func(t *storage.Table) (storage.RowID, error) {
			return t.InsertRow(row.Values)
		})
		if err != nil {
			return i.abort(count, err)
		}
		count++
	}

	i.rowsInserted = count
	i.logger.Debug("insert finished",
		log.Int("table_index", int(i.table)),
		log.Int64("rows_inserted", count),
		log.Duration("elapsed", time.Since(start)))
	return count, nil
}

// RowsInserted returns the number of rows Run wrote.
func (i *InsertOperator) RowsInserted() int64 {
	return i.rowsInserted
}

func (i *InsertOperator) abort(count int64, err error) (int64, error) {
	i.rowsInserted = count
	if count > 0 {
		i.logger.Warn("insert aborted after partial write",
			log.Int("table_index", int(i.table)),
			log.Int64("rows_inserted", count),
			log.Err(err))
	}
	return count, err
}
