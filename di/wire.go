//go:build wireinject
// +build wireinject

package di

import (
	"tzdate/config"
	"tzdate/infras/otel"
	"tzdate/infras/redis"
	conversionService "tzdate/internal/domains/conversion/service"
	conversionHandler "tzdate/internal/handlers/conversion"
	"tzdate/shared/cache"
	"tzdate/transport/http"
	"tzdate/transport/http/middleware"
	"tzdate/transport/http/router"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var conversionDomain = wire.NewSet(
	conversionService.NewConverter,
	conversionService.New,
)

var domains = wire.NewSet(
	conversionDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	conversionHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
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
