//go:build wireinject
// +build wireinject

package di

import (
	"roomio/config"
	"roomio/infras/memory"
	"roomio/shared/cache"
	"roomio/transport/http"
	"roomio/transport/http/middleware"
	"roomio/transport/http/router"

	bookingRepository "roomio/internal/domains/booking/repository"
	bookingService "roomio/internal/domains/booking/service"
	bookingHandler "roomio/internal/handlers/booking"

	customerRepository "roomio/internal/domains/customer/repository"
	customerService "roomio/internal/domains/customer/service"
	customerHandler "roomio/internal/handlers/customer"

	roomRepository "roomio/internal/domains/room/repository"
	roomService "roomio/internal/domains/room/service"
	roomHandler "roomio/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	providePostgres,
	provideRedis,
	provideKafka,
	provideOtel,
	memory.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	roomDomain,
	customerDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	customerHandler.New,
	bookingHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func()) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
