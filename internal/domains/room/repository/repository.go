package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"roomio/infras/memory"
	"roomio/infras/otel"
	"roomio/infras/postgres"
	"roomio/internal/domains/room/model"
)

type Room interface {
	Insert(ctx context.Context, room model.Room) (model.Room, error)
	Get(ctx context.Context, id int64) (model.Room, error)
	GetAll(ctx context.Context) ([]model.Room, error)
	Exist(ctx context.Context, id int64) (bool, error)
}

// New returns the postgres repository when a connection is configured and the in-memory one otherwise.
func New(db *postgres.Connection, store *memory.Store, otel otel.Otel) Room {
	if db != nil {
		return NewPostgres(db, otel)
	}

	return NewMemory(store)
}
