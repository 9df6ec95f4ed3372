package storage

// RowIDIterator is a forward-only cursor over a fixed set of row ids.
type RowIDIterator struct {
	ids []RowID
	pos int
}

// Next returns the next id, or false once the cursor is exhausted.
func (it *RowIDIterator) Next() (RowID, bool) {
	if it.pos >= len(it.ids) {
		return 0, false
	}
	id := it.ids[it.pos]
	it.pos++
	return id, true
}

// Remaining returns how many ids have not been returned yet.
func (it *RowIDIterator) Remaining() int {
	return len(it.ids) - it.pos
}
