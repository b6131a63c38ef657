package memory_test

import (
	"errors"
	"sync"
	"testing"

	"roomio/infras/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID    int64
	Value string
}

func TestTable_InsertAssignsSequentialIDs(t *testing.T) {
	store := memory.New()
	table := memory.NewTable[row](store, "rows")

	first := table.Insert(func(id int64) row { return row{ID: id, Value: "a"} })
	second := table.Insert(func(id int64) row { return row{ID: id, Value: "b"} })

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Len(t, table.Select(nil), 2)
}

func TestTable_SequencesArePerTable(t *testing.T) {
	store := memory.New()
	rooms := memory.NewTable[row](store, "rooms")
	bookings := memory.NewTable[row](store, "bookings")

	rooms.Insert(func(id int64) row { return row{ID: id} })
	rooms.Insert(func(id int64) row { return row{ID: id} })
	booking := bookings.Insert(func(id int64) row { return row{ID: id} })

	assert.Equal(t, int64(1), booking.ID)
}

func TestTable_InsertIfRejectsWithoutConsumingID(t *testing.T) {
	store := memory.New()
	table := memory.NewTable[row](store, "rows")
	errTaken := errors.New("taken")

	_, err := table.InsertIf(func(_ []row) error { return errTaken }, func(id int64) row { return row{ID: id} })
	require.ErrorIs(t, err, errTaken)
	assert.Len(t, table.Select(nil), 0)

	inserted, err := table.InsertIf(func(_ []row) error { return nil }, func(id int64) row { return row{ID: id} })
	require.NoError(t, err)
	assert.Equal(t, int64(1), inserted.ID)
}

func TestTable_FindAndSelect(t *testing.T) {
	store := memory.New()
	table := memory.NewTable[row](store, "rows")

	for _, value := range []string{"a", "b", "a"} {
		table.Insert(func(id int64) row { return row{ID: id, Value: value} })
	}

	found, ok := table.Find(func(r row) bool { return r.Value == "b" })
	assert.True(t, ok)
	assert.Equal(t, int64(2), found.ID)

	_, ok = table.Find(func(r row) bool { return r.Value == "z" })
	assert.False(t, ok)

	matches := table.Select(func(r row) bool { return r.Value == "a" })
	assert.Equal(t, []row{{ID: 1, Value: "a"}, {ID: 3, Value: "a"}}, matches)
	assert.Len(t, table.Select(nil), 3)
}

func TestTable_ConcurrentInsertIf(t *testing.T) {
	store := memory.New()
	table := memory.NewTable[row](store, "rows")
	errFull := errors.New("full")

	var wg sync.WaitGroup

	for range 50 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, _ = table.InsertIf(func(rows []row) error {
				if len(rows) >= 10 {
					return errFull
				}

				return nil
			}, func(id int64) row { return row{ID: id} })
		}()
	}

	wg.Wait()

	assert.Len(t, table.Select(nil), 10)
}
