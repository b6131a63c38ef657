package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"roomio/config"
	"roomio/infras/kafka"
	"roomio/infras/otel"
	"roomio/internal/domains/booking/model"
	"roomio/internal/domains/booking/model/dto"
	"roomio/internal/domains/booking/repository"
	customerRepo "roomio/internal/domains/customer/repository"
	roomRepo "roomio/internal/domains/room/repository"
	"roomio/shared"
	"roomio/shared/cache"
	"roomio/shared/constant"
	"roomio/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking = "booking:get"
)

type Booking interface {
	Reserve(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req dto.GetBookingsRequest) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	roomRepo     roomRepo.Room
	customerRepo customerRepo.Customer
	cfg          *config.Config
	cache        cache.RedisCache
	kafka        kafka.Client
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	customerRepo customerRepo.Customer,
	cfg *config.Config,
	cache cache.RedisCache,
	kafka kafka.Client,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		customerRepo: customerRepo,
		cfg:          cfg,
		cache:        cache,
		kafka:        kafka,
		otel:         otel,
	}
}

// Reserve validates the request against the catalogs and hands it to the registry, which admits
// it only if no confirmed booking of the room overlaps the requested interval on that day.
func (s *serviceImpl) Reserve(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Reserve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	slot, err := req.ToSlot()
	if err != nil {
		return res, err
	}

	scope.SetAttributes(map[string]any{
		"room.id":      slot.RoomID,
		"booking.date": slot.Date.String(),
		"booking.slot": slot.Start.String() + "-" + slot.End.String(),
	})

	if err = s.checkRoom(ctx, slot.RoomID); err != nil {
		return res, err
	}

	customerName, err := s.resolveCustomer(ctx, req)
	if err != nil {
		return res, err
	}

	booking, err := s.repo.Reserve(ctx, req.ToModel(slot, customerName))
	if errors.Is(err, model.ErrSlotTaken) {
		log.Info().Int64("roomId", slot.RoomID).Str("date", slot.Date.String()).Msg("booking rejected, slot taken")

		return res, failure.Wrap(http.StatusBadRequest, err) //nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to reserve room")

		return res, fmt.Errorf("failed to reserve room: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheListingPrefix)

	res.FromModel(booking)
	s.publishConfirmed(ctx, res)

	return res, nil
}

func (s *serviceImpl) checkRoom(ctx context.Context, roomID int64) error {
	if s.cfg.App.Booking.AllowUnknownRoom {
		return nil
	}

	exist, err := s.roomRepo.Exist(ctx, roomID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return failure.Wrap(http.StatusNotFound, model.ErrRoomNotFound) //nolint:wrapcheck
	}

	return nil
}

// resolveCustomer returns the name stored on the booking. A customer id must exist in the
// catalog and supplies the name unless the request gives one.
func (s *serviceImpl) resolveCustomer(ctx context.Context, req dto.CreateBookingRequest) (string, error) {
	if req.CustomerID == 0 {
		return req.CustomerName, nil
	}

	customer, err := s.customerRepo.Get(ctx, req.CustomerID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return "", fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == 0 {
		return "", failure.Wrap(http.StatusNotFound, model.ErrCustomerNotFound) //nolint:wrapcheck
	}

	if req.CustomerName != constant.Empty {
		return req.CustomerName, nil
	}

	return customer.Name, nil
}

func (s *serviceImpl) publishConfirmed(ctx context.Context, booking dto.BookingResponse) {
	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{
			Key:   strconv.FormatInt(booking.RoomID, 10),
			Value: dto.NewConfirmedEvent(booking, time.Now()),
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic, message); err != nil {
			log.Error().Err(err).Int64("bookingId", booking.BookingID).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req dto.GetBookingsRequest) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.repo.GetAll(ctx, req.ToFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings)

	return res, nil
}
