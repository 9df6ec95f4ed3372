package storage

import (
	"strings"

	"github.com/cockroachdb/errors"

	qerrors "github.com/dshills/quantaplan/internal/errors"
	"github.com/dshills/quantaplan/internal/sql/types"
)

// RowID identifies a row within one table. Ids start at 1 and are never reused.
type RowID uint64

// Column describes one column of a table.
type Column struct {
	Name     string
	Type     types.DataType
	Nullable bool
}

// Options controls how a table stores its rows.
type Options struct {
	Compression        CompressionType
	CompressionMinSize int
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		Compression:        CompressionLZ4,
		CompressionMinSize: 64,
	}
}

// Table is an in-memory heap of encoded rows kept in insertion order.
// Table is not safe for concurrent use; the catalog serializes access.
type Table struct {
	name    string
	columns []Column
	codec   *RowCodec
	frames  *frameCodec

	rows   map[RowID][]byte
	order  []RowID
	nextID RowID
}

// NewTable creates an empty table. Column names must be unique and non-empty.
func NewTable(name string, columns []Column, opts Options) (*Table, error) {
	if len(columns) == 0 {
		return nil, qerrors.InvalidTableDefinitionError(name, "a table must have at least one column")
	}

	seen := make(map[string]bool, len(columns))
	cols := make([]Column, len(columns))
	for i, col := range columns {
		key := strings.ToLower(col.Name)
		if key == "" {
			return nil, qerrors.InvalidTableDefinitionError(name, "column names must not be empty")
		}
		if seen[key] {
			return nil, qerrors.DuplicateColumnError(col.Name, name)
		}
		if col.Type == nil {
			return nil, qerrors.InvalidTableDefinitionError(name, "column \""+col.Name+"\" has no type")
		}
		seen[key] = true
		cols[i] = col
	}

	return &Table{
		name:    name,
		columns: cols,
		codec:   NewRowCodec(cols),
		frames:  newFrameCodec(opts),
		rows:    make(map[RowID][]byte),
		nextID:  1,
	}, nil
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Columns returns the column layout. Callers must not modify it.
func (t *Table) Columns() []Column {
	return t.columns
}

// Len returns the number of live rows.
func (t *Table) Len() int {
	return len(t.order)
}

// RowIDIter returns a cursor over the ids live at the time of the call.
func (t *Table) RowIDIter() *RowIDIterator {
	ids := make([]RowID, len(t.order))
	copy(ids, t.order)
	return &RowIDIterator{ids: ids}
}

// InsertRow validates and stores a full-width row, returning its id.
func (t *Table) InsertRow(values []types.Value) (RowID, error) {
	if len(values) != len(t.columns) {
		return 0, errors.Wrapf(ErrRowWidth, "table %q expects %d values, got %d", t.name, len(t.columns), len(values))
	}

	row := make([]types.Value, len(values))
	for i, v := range values {
		col := t.columns[i]
		if v.IsNull() {
			if !col.Nullable {
				return 0, qerrors.NotNullViolationError(col.Name, t.name)
			}
			row[i] = v
			continue
		}
		v = coerce(col.Type, v)
		if !col.Type.IsValid(v) {
			return 0, qerrors.DataTypeMismatchError(col.Type.Name(), v.Type().Name()).
				WithTable(t.name).
				WithColumn(col.Name)
		}
		row[i] = v
	}

	encoded, err := t.codec.Encode(row)
	if err != nil {
		return 0, err
	}
	frame, err := t.frames.pack(encoded)
	if err != nil {
		return 0, err
	}

	id := t.nextID
	t.nextID++
	t.rows[id] = frame
	t.order = append(t.order, id)
	return id, nil
}

// GetRow materializes the row stored under id.
func (t *Table) GetRow(id RowID) ([]types.Value, error) {
	frame, ok := t.rows[id]
	if !ok {
		return nil, qerrors.RowNotFoundError(uint64(id), t.name)
	}

	encoded, err := t.frames.unpack(frame)
	if err != nil {
		return nil, qerrors.RowCorruptedError(uint64(id), t.name, err.Error())
	}
	row, err := t.codec.Decode(encoded)
	if err != nil {
		return nil, qerrors.RowCorruptedError(uint64(id), t.name, err.Error())
	}
	return row, nil
}

// DeleteRow removes the row stored under id.
func (t *Table) DeleteRow(id RowID) error {
	if _, ok := t.rows[id]; !ok {
		return qerrors.RowNotFoundError(uint64(id), t.name)
	}
	delete(t.rows, id)
	for i, rid := range t.order {
		if rid == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return nil
}

// CompressionStats reports how the table's rows were framed.
func (t *Table) CompressionStats() CompressionStats {
	return t.frames.Stats()
}

// coerce applies the implicit casts storage accepts on insert.
func coerce(target types.DataType, v types.Value) types.Value {
	if target.ID() == types.TypeIDDouble {
		if n, ok := v.Data.(int64); ok {
			return types.NewDoubleValue(float64(n))
		}
	}
	return v
}
