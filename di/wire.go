//go:build wireinject
// +build wireinject

package di

import (
	"eljardin/config"
	"eljardin/infras/jwt"
	"eljardin/infras/mysql"
	"eljardin/infras/otel"
	"eljardin/infras/redis"
	"eljardin/shared/cache"
	"eljardin/transport/http"
	"eljardin/transport/http/middleware"
	"eljardin/transport/http/router"

	auditRepository "eljardin/internal/domains/audit/repository"
	auditService "eljardin/internal/domains/audit/service"
	authService "eljardin/internal/domains/auth/service"
	bookingRepository "eljardin/internal/domains/booking/repository"
	bookingService "eljardin/internal/domains/booking/service"
	orderRepository "eljardin/internal/domains/order/repository"
	orderService "eljardin/internal/domains/order/service"
	userRepository "eljardin/internal/domains/user/repository"
	userService "eljardin/internal/domains/user/service"

	auditHandler "eljardin/internal/handlers/audit"
	authHandler "eljardin/internal/handlers/auth"
	bookingHandler "eljardin/internal/handlers/booking"
	orderHandler "eljardin/internal/handlers/order"
	statusHandler "eljardin/internal/handlers/status"
	userHandler "eljardin/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	mysql.New,
	otel.New,
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var auditDomain = wire.NewSet(
	auditRepository.New,
	auditService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var orderDomain = wire.NewSet(
	orderRepository.New,
	orderService.New,
)

var domains = wire.NewSet(
	auditDomain,
	userDomain,
	authDomain,
	bookingDomain,
	orderDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	orderHandler.New,
	userHandler.New,
	auditHandler.New,
	statusHandler.New,
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
