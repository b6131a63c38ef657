package repository

import (
	"context"
	"fmt"

	"roomio/infras/otel"
	"roomio/infras/postgres"
	"roomio/internal/domains/room/model"
	"roomio/shared"
	gDto "roomio/shared/dto"
	gRepo "roomio/shared/repository"
)

type postgresImpl struct {
	gRepo.Repository[model.Room]
}

func NewPostgres(db *postgres.Connection, otel otel.Otel) Room {
	return &postgresImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (repo *postgresImpl) Insert(ctx context.Context, room model.Room) (model.Room, error) {
	id, err := repo.Repository.Insert(ctx, room)
	if err != nil {
		return room, fmt.Errorf("failed to insert room: %w", err)
	}

	room.ID = id

	return room, nil
}

func (repo *postgresImpl) Get(ctx context.Context, id int64) (model.Room, error) {
	return repo.Repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (repo *postgresImpl) GetAll(ctx context.Context) ([]model.Room, error) {
	return repo.Repository.GetAll(ctx, gDto.FilterGroup{}) //nolint:wrapcheck
}

func (repo *postgresImpl) Exist(ctx context.Context, id int64) (bool, error) {
	return repo.Repository.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}
