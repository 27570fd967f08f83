//go:build wireinject
// +build wireinject

package di

import (
	"arena/config"
	"arena/infras/jwt"
	"arena/infras/kafka"
	"arena/infras/otel"
	"arena/infras/postgres"
	"arena/infras/redis"
	"arena/infras/s3"
	"arena/permissions"
	"arena/shared/cache"
	"arena/transport/http"
	"arena/transport/http/middleware"
	"arena/transport/http/router"

	bookingRepository "arena/internal/domains/booking/repository"
	bookingService "arena/internal/domains/booking/service"
	fieldRepository "arena/internal/domains/field/repository"
	fieldService "arena/internal/domains/field/service"
	venueRepository "arena/internal/domains/venue/repository"

	"github.com/google/wire"

	authService "arena/internal/domains/auth/service"
	userRepository "arena/internal/domains/user/repository"
	authHandler "arena/internal/handlers/auth"
	bookingHandler "arena/internal/handlers/booking"
	fieldHandler "arena/internal/handlers/field"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var fieldDomain = wire.NewSet(
	venueRepository.New,
	fieldRepository.New,
	fieldService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	fieldDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	fieldHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
