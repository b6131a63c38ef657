package repository

import (
	"context"

	"roomio/infras/memory"
	"roomio/internal/domains/customer/model"
)

type memoryImpl struct {
	table *memory.Table[model.Customer]
}

func NewMemory(store *memory.Store) Customer {
	return &memoryImpl{
		table: memory.NewTable[model.Customer](store, model.TableName),
	}
}

func (repo *memoryImpl) Insert(_ context.Context, customer model.Customer) (model.Customer, error) {
	return repo.table.Insert(func(id int64) model.Customer {
		customer.ID = id

		return customer
	}), nil
}

func (repo *memoryImpl) Get(_ context.Context, id int64) (model.Customer, error) {
	customer, _ := repo.table.Find(func(customer model.Customer) bool {
		return customer.ID == id
	})

	return customer, nil
}

func (repo *memoryImpl) GetAll(_ context.Context) ([]model.Customer, error) {
	return repo.table.Select(nil), nil
}
