//go:build wireinject
// +build wireinject

package di

import (
	"resort/config"
	"resort/infras/jwt"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/infras/redis"
	"resort/infras/s3"
	"resort/internal/events"
	"resort/permissions"
	"resort/shared/cache"
	"resort/transport/http"
	"resort/transport/http/middleware"
	"resort/transport/http/router"

	"github.com/google/wire"

	amenityRepository "resort/internal/domains/amenity/repository"
	amenityService "resort/internal/domains/amenity/service"
	authService "resort/internal/domains/auth/service"
	billingRepository "resort/internal/domains/billing/repository"
	billingService "resort/internal/domains/billing/service"
	dashboardRepository "resort/internal/domains/dashboard/repository"
	dashboardService "resort/internal/domains/dashboard/service"
	guestRepository "resort/internal/domains/guest/repository"
	guestService "resort/internal/domains/guest/service"
	inventoryRepository "resort/internal/domains/inventory/repository"
	inventoryService "resort/internal/domains/inventory/service"
	rentalRepository "resort/internal/domains/rental/repository"
	rentalService "resort/internal/domains/rental/service"
	reportRepository "resort/internal/domains/report/repository"
	reportService "resort/internal/domains/report/service"
	reservationRepository "resort/internal/domains/reservation/repository"
	reservationService "resort/internal/domains/reservation/service"
	roomRepository "resort/internal/domains/room/repository"
	roomService "resort/internal/domains/room/service"
	staffRepository "resort/internal/domains/staff/repository"
	staffService "resort/internal/domains/staff/service"

	amenityHandler "resort/internal/handlers/amenity"
	authHandler "resort/internal/handlers/auth"
	billingHandler "resort/internal/handlers/billing"
	dashboardHandler "resort/internal/handlers/dashboard"
	guestHandler "resort/internal/handlers/guest"
	inventoryHandler "resort/internal/handlers/inventory"
	rentalHandler "resort/internal/handlers/rental"
	reportHandler "resort/internal/handlers/report"
	reservationHandler "resort/internal/handlers/reservation"
	roomHandler "resort/internal/handlers/room"
	staffHandler "resort/internal/handlers/staff"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	ProvideKafkaClient,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewPublisher,
	events.NewSubscriber,
)

var staffDomain = wire.NewSet(
	staffRepository.New,
	staffService.New,
	authService.New,
)

var catalogDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
	roomRepository.New,
	roomService.New,
	amenityRepository.New,
	amenityService.New,
	inventoryRepository.NewItem,
	inventoryRepository.NewRestock,
	inventoryService.New,
)

var stayDomain = wire.NewSet(
	reservationRepository.New,
	reservationRepository.NewAmenity,
	reservationRepository.NewLog,
	reservationService.New,
	billingRepository.NewCharge,
	billingRepository.NewPayment,
	billingService.New,
	rentalRepository.New,
	rentalService.New,
)

var insightDomain = wire.NewSet(
	reportRepository.New,
	reportService.New,
	dashboardRepository.New,
	dashboardService.New,
)

var domains = wire.NewSet(
	staffDomain,
	catalogDomain,
	stayDomain,
	insightDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	staffHandler.New,
	guestHandler.New,
	roomHandler.New,
	amenityHandler.New,
	inventoryHandler.New,
	reservationHandler.New,
	billingHandler.New,
	rentalHandler.New,
	reportHandler.New,
	dashboardHandler.New,
	router.New,
)

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		NewApp,
	)

	return &App{}
}
