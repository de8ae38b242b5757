//go:build wireinject
// +build wireinject

package di

import (
	"marketplace/config"
	"marketplace/infras/jwt"
	"marketplace/infras/kafka"
	"marketplace/infras/otel"
	"marketplace/infras/postgres"
	"marketplace/infras/push"
	"marketplace/infras/redis"
	"marketplace/infras/sms"
	"marketplace/internal/subscribers"
	"marketplace/permissions"
	"marketplace/shared/cache"
	"marketplace/shared/clock"
	"marketplace/transport/http"
	"marketplace/transport/http/middleware"
	"marketplace/transport/http/router"

	accountRepository "marketplace/internal/domains/account/repository"
	accountService "marketplace/internal/domains/account/service"
	authService "marketplace/internal/domains/auth/service"
	bookingRepository "marketplace/internal/domains/booking/repository"
	bookingService "marketplace/internal/domains/booking/service"
	notificationRepository "marketplace/internal/domains/notification/repository"
	notificationService "marketplace/internal/domains/notification/service"
	otpRepository "marketplace/internal/domains/otp/repository"
	otpService "marketplace/internal/domains/otp/service"
	reconciliationService "marketplace/internal/domains/reconciliation/service"
	settingRepository "marketplace/internal/domains/setting/repository"
	settingService "marketplace/internal/domains/setting/service"

	accountHandler "marketplace/internal/handlers/account"
	authHandler "marketplace/internal/handlers/auth"
	bookingHandler "marketplace/internal/handlers/booking"
	reconciliationHandler "marketplace/internal/handlers/reconciliation"
	settingHandler "marketplace/internal/handlers/setting"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	clock.Real,
	jwt.New,
	sms.New,
	kafka.New,
	push.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	subscribers.NewCacheInvalidator,
	provideEventBus,
)

var accountDomain = wire.NewSet(
	accountRepository.New,
	accountService.New,
	provideOpenBookings,
)

var authDomain = wire.NewSet(
	otpRepository.New,
	otpService.New,
	authService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	settingRepository.New,
	settingService.New,
	notificationRepository.New,
	notificationService.New,
	reconciliationService.New,
)

var domains = wire.NewSet(
	accountDomain,
	authDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	accountHandler.New,
	bookingHandler.New,
	settingHandler.New,
	reconciliationHandler.New,
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

func InitializeApp() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		subscribers.NewDeliveryConsumer,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}

func InitializeReconciler() *Reconciler {
	wire.Build(
		config.Get,
		infrastructures,
		sharedHelpers,
		domains,
		wire.Struct(new(Reconciler), "*"),
	)

	return &Reconciler{}
}
