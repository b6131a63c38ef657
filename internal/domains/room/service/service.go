package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"roomio/config"
	"roomio/infras/otel"
	bookingModel "roomio/internal/domains/booking/model"
	bookingRepo "roomio/internal/domains/booking/repository"
	"roomio/internal/domains/room/model/dto"
	"roomio/internal/domains/room/repository"
	"roomio/shared"
	"roomio/shared/cache"
	"roomio/shared/constant"
	"roomio/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room"
	cacheGetAllRoom = "rooms"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	RoomsWithBookings(ctx context.Context) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, id int64) (dto.RoomWithBookingsResponse, error)
}

type serviceImpl struct {
	repo        repository.Room
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Room, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.repo.Insert(ctx, req.ToModel(time.Now().UTC()))
	if err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheListingPrefix)

	scope.SetAttribute("room.id", room.ID)
	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) RoomsWithBookings(ctx context.Context) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.RoomsWithBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey, cacheErr := shared.VersionedCacheKey(ctx, s.cache, constant.CacheListingPrefix, cacheGetAllRoom)
	if cacheErr == nil && s.cache.Get(ctx, cacheKey, &res) == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	rooms, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	bookings, err := s.bookingRepo.GetAll(ctx, bookingModel.Filter{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(rooms, bookings)

	if cacheErr == nil {
		s.saveCache(ctx, cacheKey, res)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.RoomWithBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey, cacheErr := shared.VersionedCacheKey(ctx, s.cache, constant.CacheListingPrefix, cacheGetRoom, id)
	if cacheErr == nil && s.cache.Get(ctx, cacheKey, &res) == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == 0 {
		return res, failure.Wrap(http.StatusNotFound, bookingModel.ErrRoomNotFound) //nolint:wrapcheck
	}

	bookings, err := s.bookingRepo.GetAll(ctx, bookingModel.Filter{RoomID: id})
	if err != nil {
		log.Error().Err(err).Msg("failed to get room bookings")

		return res, fmt.Errorf("failed to get room bookings: %w", err)
	}

	res.FromModel(room, bookings)

	if cacheErr == nil {
		s.saveCache(ctx, cacheKey, res)
	}

	return res, nil
}

func (s *serviceImpl) saveCache(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save rooms to cache")
		}
	}()
}
