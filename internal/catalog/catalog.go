package catalog

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dshills/quantaplan/internal/errors"
	"github.com/dshills/quantaplan/internal/storage"
)

// TableIndex identifies a table slot in a Schema. Slots are never reused.
type TableIndex int

// ColumnIndex is the position of a column within a table row.
type ColumnIndex int

// slot holds one table. A dropped slot keeps its name and loses its table.
type slot struct {
	name  string
	table *storage.Table
}

// Schema is an arena of tables addressed by stable index.
// Access to a table goes through MapOnTable and MapOnTableMut, which hold
// the schema lock for the duration of the callback only.
type Schema struct {
	mu    sync.RWMutex
	opts  storage.Options
	slots []slot
	names map[string]TableIndex
}

// NewSchema creates an empty schema whose tables use opts.
func NewSchema(opts storage.Options) *Schema {
	return &Schema{
		opts:  opts,
		names: make(map[string]TableIndex),
	}
}

func normalize(name string) string {
	return strings.ToLower(name)
}

// CreateTable adds a table and returns its index.
func (s *Schema) CreateTable(name string, columns []storage.Column) (TableIndex, error) {
	key := normalize(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.names[key]; exists {
		return 0, errors.DuplicateTableError(key)
	}

	table, err := storage.NewTable(key, columns, s.opts)
	if err != nil {
		return 0, err
	}

	idx := TableIndex(len(s.slots))
	s.slots = append(s.slots, slot{name: key, table: table})
	s.names[key] = idx
	return idx, nil
}

// DropTable removes a table. Its slot stays tombstoned.
func (s *Schema) DropTable(name string) error {
	key := normalize(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx, exists := s.names[key]
	if !exists {
		return errors.TableNotFoundError(key)
	}
	s.slots[idx].table = nil
	delete(s.names, key)
	return nil
}

// FindTable resolves a table name to its index.
func (s *Schema) FindTable(name string) (TableIndex, error) {
	key := normalize(name)

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, exists := s.names[key]
	if !exists {
		return 0, errors.TableNotFoundError(key)
	}
	return idx, nil
}

// FindColumn resolves a column name within the table at idx.
func (s *Schema) FindColumn(idx TableIndex, name string) (ColumnIndex, error) {
	key := normalize(name)
	return MapOnTable(s, idx, func(t *storage.Table) (ColumnIndex, error) {
		for i, col := range t.Columns() {
			if normalize(col.Name) == key {
				return ColumnIndex(i), nil
			}
		}
		return 0, errors.ColumnNotFoundError(name, t.Name())
	})
}

// ListTables returns the names of live tables in sorted order.
func (s *Schema) ListTables() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.names))
	for name := range s.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// lookup must be called with s.mu held.
func (s *Schema) lookup(idx TableIndex) (*storage.Table, error) {
	if idx < 0 || int(idx) >= len(s.slots) {
		return nil, errors.TableNotFoundError(fmt.Sprintf("#%d", idx))
	}
	sl := s.slots[idx]
	if sl.table == nil {
		return nil, errors.TableNotFoundError(sl.name)
	}
	return sl.table, nil
}

// MapOnTable runs fn against the table at idx under the read lock.
func MapOnTable[T any](s *Schema, idx TableIndex, fn func(*storage.Table) (T, error)) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	table, err := s.lookup(idx)
	if err != nil {
		var zero T
		return zero, err
	}
	return fn(table)
}

// MapOnTableMut runs fn against the table at idx under the write lock.
func MapOnTableMut[T any](s *Schema, idx TableIndex, fn func(*storage.Table) (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.lookup(idx)
	if err != nil {
		var zero T
		return zero, err
	}
	return fn(table)
}
