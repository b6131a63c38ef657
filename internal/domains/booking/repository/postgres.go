package repository

import (
	"context"
	"fmt"
	"time"

	"roomio/infras/otel"
	"roomio/infras/postgres"
	"roomio/internal/domains/booking/model"
	"roomio/shared"
	"roomio/shared/constant"
	gDto "roomio/shared/dto"
	"roomio/shared/logger"
	gRepo "roomio/shared/repository"
)

// lockRoomQuery serializes reservations per room until the surrounding transaction ends.
const lockRoomQuery = "SELECT pg_advisory_xact_lock($1)"

type postgresImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func NewPostgres(db *postgres.Connection, otel otel.Otel) Booking {
	return &postgresImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *postgresImpl) Reserve(ctx context.Context, booking model.Booking) (res model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Reserve")
	defer scope.End()

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to begin reservation: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	scope.SetAttribute(constant.OtelQueryAttributeKey, lockRoomQuery)

	if _, err = tx.ExecContext(ctx, lockRoomQuery, booking.RoomID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to lock room %d: %w", booking.RoomID, err)
	}

	filter := gDto.FilterGroup{}
	filter.And(model.TableName, model.FieldRoomID, booking.RoomID)
	filter.And(model.TableName, model.FieldBookingDate, booking.Date)
	filter.And(model.TableName, model.FieldStatus, model.StatusConfirmed)

	existing, err := repo.GetAllTx(ctx, tx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to load bookings of room %d: %w", booking.RoomID, err)
	}

	if model.Conflicts(booking.Slot(), existing) {
		return res, model.ErrSlotTaken
	}

	booking.Status = model.StatusConfirmed
	booking.CreatedAt = time.Now().UTC()

	id, err := repo.InsertTx(ctx, tx, booking)
	if err != nil {
		return res, fmt.Errorf("failed to insert booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return res, fmt.Errorf("failed to commit reservation: %w", err)
	}

	booking.ID = id

	return booking, nil
}

func (repo *postgresImpl) Get(ctx context.Context, id int64) (model.Booking, error) {
	return repo.Repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (repo *postgresImpl) GetAll(ctx context.Context, filter model.Filter) ([]model.Booking, error) {
	group := gDto.FilterGroup{}

	if filter.RoomID != 0 {
		group.And(model.TableName, model.FieldRoomID, filter.RoomID)
	}

	if filter.Date != "" {
		group.And(model.TableName, model.FieldBookingDate, filter.Date)
	}

	if filter.CustomerID != 0 {
		group.And(model.TableName, model.FieldCustomerID, filter.CustomerID)
	}

	return repo.Repository.GetAll(ctx, group) //nolint:wrapcheck
}
