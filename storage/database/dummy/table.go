package dummydb

import "sync"

// table is an ordered in-memory collection with sequential integer ids.
// Rows are stored and handed out by value; clone deep-copies nested data.
type table[T any] struct {
	sync.RWMutex
	rows  []T
	getID func(T) int
	setID func(*T, int)
	clone func(T) T
}

func newTable[T any](getID func(T) int, setID func(*T, int), clone func(T) T) *table[T] {
	if clone == nil {
		clone = func(row T) T { return row }
	}
	return &table[T]{getID: getID, setID: setID, clone: clone}
}

// query returns a copy of all rows in insertion order. Caller must hold the lock.
func (tbl *table[T]) query() []T {
	rows := make([]T, 0, len(tbl.rows))
	for _, row := range tbl.rows {
		rows = append(rows, tbl.clone(row))
	}
	return rows
}

func (tbl *table[T]) index(id int) int {
	for i, row := range tbl.rows {
		if tbl.getID(row) == id {
			return i
		}
	}
	return -1
}

// nextID is one more than the highest id, or 1 for an empty table.
func (tbl *table[T]) nextID() int {
	max := 0
	for _, row := range tbl.rows {
		if id := tbl.getID(row); id > max {
			max = id
		}
	}
	return max + 1
}

func (tbl *table[T]) all() []T {
	tbl.RLock()
	defer tbl.RUnlock()
	return tbl.query()
}

func (tbl *table[T]) get(id int) (T, bool) {
	tbl.RLock()
	defer tbl.RUnlock()

	if i := tbl.index(id); i >= 0 {
		return tbl.clone(tbl.rows[i]), true
	}
	var zero T
	return zero, false
}

func (tbl *table[T]) insert(row T) T {
	tbl.Lock()
	defer tbl.Unlock()

	row = tbl.clone(row)
	tbl.setID(&row, tbl.nextID())
	tbl.rows = append(tbl.rows, row)
	return tbl.clone(row)
}

// update applies merge to a copy of the row and stores the result.
func (tbl *table[T]) update(id int, merge func(*T)) (T, bool) {
	tbl.Lock()
	defer tbl.Unlock()

	i := tbl.index(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	row := tbl.clone(tbl.rows[i])
	merge(&row)
	tbl.setID(&row, id) // identity never changes
	tbl.rows[i] = row
	return tbl.clone(row), true
}

func (tbl *table[T]) remove(id int) (T, bool) {
	tbl.Lock()
	defer tbl.Unlock()

	i := tbl.index(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	removed := tbl.rows[i]
	tbl.rows = append(tbl.rows[:i:i], tbl.rows[i+1:]...)
	return removed, true
}

// load replaces the rows, keeping their ids.
func (tbl *table[T]) load(rows []T) {
	tbl.Lock()
	defer tbl.Unlock()

	tbl.rows = make([]T, 0, len(rows))
	for _, row := range rows {
		tbl.rows = append(tbl.rows, tbl.clone(row))
	}
}
