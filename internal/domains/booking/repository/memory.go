package repository

import (
	"context"
	"time"

	"roomio/infras/memory"
	"roomio/internal/domains/booking/model"
)

type memoryImpl struct {
	table *memory.Table[model.Booking]
}

func NewMemory(store *memory.Store) Booking {
	return &memoryImpl{
		table: memory.NewTable[model.Booking](store, model.TableName),
	}
}

func (repo *memoryImpl) Reserve(_ context.Context, booking model.Booking) (model.Booking, error) {
	slot := booking.Slot()

	return repo.table.InsertIf(func(rows []model.Booking) error {
		if model.Conflicts(slot, rows) {
			return model.ErrSlotTaken
		}

		return nil
	}, func(id int64) model.Booking {
		booking.ID = id
		booking.Status = model.StatusConfirmed
		booking.CreatedAt = time.Now().UTC()

		return booking
	})
}

func (repo *memoryImpl) Get(_ context.Context, id int64) (model.Booking, error) {
	booking, _ := repo.table.Find(func(booking model.Booking) bool {
		return booking.ID == id
	})

	return booking, nil
}

func (repo *memoryImpl) GetAll(_ context.Context, filter model.Filter) ([]model.Booking, error) {
	return repo.table.Select(filter.Match), nil
}
