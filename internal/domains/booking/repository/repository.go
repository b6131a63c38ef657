package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"roomio/infras/memory"
	"roomio/infras/otel"
	"roomio/infras/postgres"
	"roomio/internal/domains/booking/model"
)

type Booking interface {
	// Reserve stores booking unless it overlaps a confirmed booking of the same room and day,
	// in which case it returns model.ErrSlotTaken and stores nothing. The stored booking carries
	// its new id, acceptance time and status.
	Reserve(ctx context.Context, booking model.Booking) (model.Booking, error)
	Get(ctx context.Context, id int64) (model.Booking, error)
	GetAll(ctx context.Context, filter model.Filter) ([]model.Booking, error)
}

func New(db *postgres.Connection, store *memory.Store, otel otel.Otel) Booking {
	if db != nil {
		return NewPostgres(db, otel)
	}

	return NewMemory(store)
}
