package repository

import (
	"context"
	"slices"

	"roomio/infras/memory"
	"roomio/internal/domains/room/model"
)

type memoryImpl struct {
	table *memory.Table[model.Room]
}

func NewMemory(store *memory.Store) Room {
	return &memoryImpl{
		table: memory.NewTable[model.Room](store, model.TableName),
	}
}

func (repo *memoryImpl) Insert(_ context.Context, room model.Room) (model.Room, error) {
	room.Amenities = slices.Clone(room.Amenities)

	return repo.table.Insert(func(id int64) model.Room {
		room.ID = id

		return room
	}), nil
}

func (repo *memoryImpl) Get(_ context.Context, id int64) (model.Room, error) {
	room, _ := repo.table.Find(func(room model.Room) bool {
		return room.ID == id
	})

	return room, nil
}

func (repo *memoryImpl) GetAll(_ context.Context) ([]model.Room, error) {
	return repo.table.Select(nil), nil
}

func (repo *memoryImpl) Exist(_ context.Context, id int64) (bool, error) {
	_, found := repo.table.Find(func(room model.Room) bool {
		return room.ID == id
	})

	return found, nil
}
