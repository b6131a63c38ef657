package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"roomio/infras/memory"
	"roomio/infras/otel"
	"roomio/infras/postgres"
	"roomio/internal/domains/customer/model"
)

type Customer interface {
	Insert(ctx context.Context, customer model.Customer) (model.Customer, error)
	Get(ctx context.Context, id int64) (model.Customer, error)
	GetAll(ctx context.Context) ([]model.Customer, error)
}

func New(db *postgres.Connection, store *memory.Store, otel otel.Otel) Customer {
	if db != nil {
		return NewPostgres(db, otel)
	}

	return NewMemory(store)
}
