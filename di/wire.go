//go:build wireinject
// +build wireinject

package di

import (
	"inn/config"
	"inn/infras/jwt"
	"inn/infras/kafka"
	"inn/infras/otel"
	"inn/infras/postgres"
	"inn/infras/redis"
	"inn/infras/s3"
	"inn/permissions"
	"inn/shared/cache"
	"inn/transport/http"
	"inn/transport/http/middleware"
	"inn/transport/http/router"

	"github.com/google/wire"

	authService "inn/internal/domains/auth/service"
	bookingRepository "inn/internal/domains/booking/repository"
	bookingService "inn/internal/domains/booking/service"
	couponRepository "inn/internal/domains/coupon/repository"
	couponService "inn/internal/domains/coupon/service"
	guestRepository "inn/internal/domains/guest/repository"
	guestService "inn/internal/domains/guest/service"
	hallRepository "inn/internal/domains/hall/repository"
	hallService "inn/internal/domains/hall/service"
	paidServiceRepository "inn/internal/domains/paidservice/repository"
	paidServiceService "inn/internal/domains/paidservice/service"
	roomRepository "inn/internal/domains/room/repository"
	roomService "inn/internal/domains/room/service"
	userRepository "inn/internal/domains/user/repository"
	userService "inn/internal/domains/user/service"

	authHandler "inn/internal/handlers/auth"
	bookingHandler "inn/internal/handlers/booking"
	couponHandler "inn/internal/handlers/coupon"
	guestHandler "inn/internal/handlers/guest"
	hallHandler "inn/internal/handlers/hall"
	paidServiceHandler "inn/internal/handlers/paidservice"
	roomHandler "inn/internal/handlers/room"
	userHandler "inn/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
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
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomRepository.NewRoomType,
	roomService.New,
	roomService.NewRoomType,
)

var hallDomain = wire.NewSet(
	hallRepository.New,
	hallRepository.NewHallType,
	hallService.New,
	hallService.NewHallType,
)

var paidServiceDomain = wire.NewSet(
	paidServiceRepository.New,
	paidServiceService.New,
)

var couponDomain = wire.NewSet(
	couponRepository.New,
	couponService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	guestDomain,
	roomDomain,
	hallDomain,
	paidServiceDomain,
	couponDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	guestHandler.New,
	roomHandler.New,
	hallHandler.New,
	paidServiceHandler.New,
	couponHandler.New,
	bookingHandler.New,
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
