package repository

import (
	"context"
	"fmt"

	"roomio/infras/otel"
	"roomio/infras/postgres"
	"roomio/internal/domains/customer/model"
	"roomio/shared"
	gDto "roomio/shared/dto"
	gRepo "roomio/shared/repository"
)

type postgresImpl struct {
	gRepo.Repository[model.Customer]
}

func NewPostgres(db *postgres.Connection, otel otel.Otel) Customer {
	return &postgresImpl{
		Repository: gRepo.NewRepository[model.Customer](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (repo *postgresImpl) Insert(ctx context.Context, customer model.Customer) (model.Customer, error) {
	id, err := repo.Repository.Insert(ctx, customer)
	if err != nil {
		return customer, fmt.Errorf("failed to insert customer: %w", err)
	}

	customer.ID = id

	return customer, nil
}

func (repo *postgresImpl) Get(ctx context.Context, id int64) (model.Customer, error) {
	return repo.Repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (repo *postgresImpl) GetAll(ctx context.Context) ([]model.Customer, error) {
	return repo.Repository.GetAll(ctx, gDto.FilterGroup{}) //nolint:wrapcheck
}
