// Package memory holds the process-local state behind the in-memory repositories.
//
// A single Store owns every table and the lock that guards them, so a write to one
// table (for example a reservation) is serialized against reads and writes to all of them.
package memory

import (
	"sync"
)

type Store struct {
	mu       sync.RWMutex
	sequence map[string]int64
}

func New() *Store {
	return &Store{
		sequence: map[string]int64{},
	}
}

// next returns the following id for the named table. Callers must hold the write lock.
func (s *Store) next(table string) int64 {
	s.sequence[table]++

	return s.sequence[table]
}

// Table is an append-only collection of rows identified by a monotonic id.
type Table[T any] struct {
	store *Store
	name  string
	rows  []T
}

func NewTable[T any](store *Store, name string) *Table[T] {
	return &Table[T]{
		store: store,
		name:  name,
	}
}

// Insert assigns the next id and appends the row built from it.
func (t *Table[T]) Insert(build func(id int64) T) T {
	row, _ := t.InsertIf(nil, build)

	return row
}

// InsertIf runs check against the current rows and appends the built row only when check
// returns nil. Both steps happen under the store's write lock, and a rejected insert does not
// consume an id.
func (t *Table[T]) InsertIf(check func(rows []T) error, build func(id int64) T) (T, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	if check != nil {
		if err := check(t.rows); err != nil {
			var zero T

			return zero, err
		}
	}

	row := build(t.store.next(t.name))
	t.rows = append(t.rows, row)

	return row, nil
}

// Find returns the first row matching pred.
func (t *Table[T]) Find(pred func(T) bool) (T, bool) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	for _, row := range t.rows {
		if pred(row) {
			return row, true
		}
	}

	var zero T

	return zero, false
}

// Select returns a copy of the rows matching pred in insertion order. A nil pred matches all.
func (t *Table[T]) Select(pred func(T) bool) []T {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	rows := make([]T, 0, len(t.rows))

	for _, row := range t.rows {
		if pred == nil || pred(row) {
			rows = append(rows, row)
		}
	}

	return rows
}
