package service

import (
	"context"
	"fmt"
	"time"

	"roomio/config"
	"roomio/infras/otel"
	bookingModel "roomio/internal/domains/booking/model"
	bookingDto "roomio/internal/domains/booking/model/dto"
	bookingRepo "roomio/internal/domains/booking/repository"
	"roomio/internal/domains/customer/model/dto"
	"roomio/internal/domains/customer/repository"
	"roomio/shared"
	"roomio/shared/cache"
	"roomio/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllCustomer     = "customers"
	cacheGetCustomerBooking = "customer"
)

type Customer interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (dto.CustomerResponse, error)
	CustomersWithBookings(ctx context.Context) (dto.GetCustomersResponse, error)
	BookingsForCustomer(ctx context.Context, id int64) (bookingDto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo        repository.Customer
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Customer, bookingRepo bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Customer {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCustomerRequest) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customer, err := s.repo.Insert(ctx, req.ToModel(time.Now().UTC()))
	if err != nil {
		log.Error().Err(err).Msg("failed to create customer")

		return res, fmt.Errorf("failed to create customer: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheListingPrefix)

	res.FromModel(customer)

	return res, nil
}

// CustomersWithBookings lists every customer with the bookings made under its id.
// Bookings made with a free-text name only are not attributed to any customer.
func (s *serviceImpl) CustomersWithBookings(ctx context.Context) (res dto.GetCustomersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.CustomersWithBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey, cacheErr := shared.VersionedCacheKey(ctx, s.cache, constant.CacheListingPrefix, cacheGetAllCustomer)
	if cacheErr == nil && s.cache.Get(ctx, cacheKey, &res) == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customers")

		return res, nil
	}

	customers, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customers")

		return res, fmt.Errorf("failed to get customers: %w", err)
	}

	bookings, err := s.bookingRepo.GetAll(ctx, bookingModel.Filter{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	byCustomer := make(map[int64][]bookingModel.Booking, len(customers))

	for _, booking := range bookings {
		if booking.CustomerID != 0 {
			byCustomer[booking.CustomerID] = append(byCustomer[booking.CustomerID], booking)
		}
	}

	res = make(dto.GetCustomersResponse, len(customers))

	for i, customer := range customers {
		res[i].FromModel(customer)
		res[i].Bookings.FromModels(byCustomer[customer.ID])
	}

	if cacheErr == nil {
		s.saveCache(ctx, cacheKey, res)
	}

	return res, nil
}

// BookingsForCustomer returns the bookings carrying the customer id, empty when there are none.
func (s *serviceImpl) BookingsForCustomer(ctx context.Context, id int64) (res bookingDto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.BookingsForCustomer")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey, cacheErr := shared.VersionedCacheKey(ctx, s.cache, constant.CacheListingPrefix, cacheGetCustomerBooking, id, "bookings")
	if cacheErr == nil && s.cache.Get(ctx, cacheKey, &res) == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for customer bookings")

		return res, nil
	}

	bookings, err := s.bookingRepo.GetAll(ctx, bookingModel.Filter{CustomerID: id})
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer bookings")

		return res, fmt.Errorf("failed to get customer bookings: %w", err)
	}

	res.FromModels(bookings)

	if cacheErr == nil {
		s.saveCache(ctx, cacheKey, res)
	}

	return res, nil
}

func (s *serviceImpl) saveCache(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save customers to cache")
		}
	}()
}
