package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"roomio/infras/memory"
	"roomio/internal/domains/booking/model"
	"roomio/internal/domains/booking/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBooking(roomID int64, date string, start, end model.Clock) model.Booking {
	return model.Booking{
		CustomerName: "Ana",
		RoomID:       roomID,
		Date:         model.Date(date),
		StartTime:    start,
		EndTime:      end,
	}
}

func TestMemory_Reserve(t *testing.T) {
	repo := repository.NewMemory(memory.New())
	ctx := context.Background()

	first, err := repo.Reserve(ctx, newBooking(1, "2024-01-01", 540, 600))
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, model.StatusConfirmed, first.Status)
	assert.False(t, first.CreatedAt.IsZero())

	_, err = repo.Reserve(ctx, newBooking(1, "2024-01-01", 570, 630))
	assert.True(t, errors.Is(err, model.ErrSlotTaken))

	second, err := repo.Reserve(ctx, newBooking(1, "2024-01-01", 600, 660))
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	all, err := repo.GetAll(ctx, model.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMemory_ReserveConcurrentSameSlot(t *testing.T) {
	repo := repository.NewMemory(memory.New())
	ctx := context.Background()

	const attempts = 50

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		rejected int
	)

	for range attempts {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := repo.Reserve(ctx, newBooking(1, "2024-01-01", 540, 600))

			mu.Lock()
			defer mu.Unlock()

			if errors.Is(err, model.ErrSlotTaken) {
				rejected++
			} else if err == nil {
				accepted++
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, accepted)
	assert.Equal(t, attempts-1, rejected)
}

func TestMemory_GetAndFilter(t *testing.T) {
	repo := repository.NewMemory(memory.New())
	ctx := context.Background()

	withCustomer := newBooking(2, "2024-01-02", 540, 600)
	withCustomer.CustomerID = 9

	_, err := repo.Reserve(ctx, newBooking(1, "2024-01-01", 540, 600))
	require.NoError(t, err)
	_, err = repo.Reserve(ctx, withCustomer)
	require.NoError(t, err)

	found, err := repo.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(9), found.CustomerID)

	missing, err := repo.Get(ctx, 42)
	require.NoError(t, err)
	assert.Zero(t, missing.ID)

	byRoom, err := repo.GetAll(ctx, model.Filter{RoomID: 1})
	require.NoError(t, err)
	require.Len(t, byRoom, 1)
	assert.Equal(t, int64(1), byRoom[0].ID)

	byCustomer, err := repo.GetAll(ctx, model.Filter{CustomerID: 9})
	require.NoError(t, err)
	require.Len(t, byCustomer, 1)
	assert.Equal(t, int64(2), byCustomer[0].ID)

	none, err := repo.GetAll(ctx, model.Filter{Date: "2030-01-01"})
	require.NoError(t, err)
	assert.Empty(t, none)
}
