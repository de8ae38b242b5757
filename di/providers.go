package di

import (
	"context"
	"fmt"
	"marketplace/infras/kafka"
	"marketplace/infras/otel"
	"marketplace/infras/postgres"
	accountService "marketplace/internal/domains/account/service"
	bookingRepository "marketplace/internal/domains/booking/repository"
	reconciliationService "marketplace/internal/domains/reconciliation/service"
	"marketplace/internal/subscribers"
	"marketplace/shared/event"
	"marketplace/transport/http"

	"github.com/hashicorp/go-multierror"
	goRedis "github.com/redis/go-redis/v9"
)

// App is the long running process: the HTTP server plus the delivery report
// consumer that shares its graph.
type App struct {
	HTTP     *http.HTTP
	Delivery *subscribers.DeliveryConsumer
	Kafka    kafka.Client
	Otel     otel.Otel
	DB       *postgres.Connection
	Redis    *goRedis.Client
}

// Reconciler is the one-shot sweep process.
type Reconciler struct {
	Service reconciliationService.Reconciliation
	Bus     event.Bus
	Kafka   kafka.Client
	Otel    otel.Otel
	DB      *postgres.Connection
	Redis   *goRedis.Client
}

// Close releases the infrastructure shared by the process.
func (a *App) Close(ctx context.Context) error {
	return closeAll(ctx, a.Kafka, a.DB, a.Redis, a.Otel)
}

func (r *Reconciler) Close(ctx context.Context) error {
	return closeAll(ctx, r.Kafka, r.DB, r.Redis, r.Otel)
}

func closeAll(ctx context.Context, client kafka.Client, db *postgres.Connection, rdb *goRedis.Client, tracer otel.Otel) error {
	var result *multierror.Error

	if err := client.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("kafka: %w", err))
	}

	if err := db.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("postgres: %w", err))
	}

	if err := rdb.Close(); err != nil {
		result = multierror.Append(result, fmt.Errorf("redis: %w", err))
	}

	if err := tracer.Shutdown(ctx); err != nil {
		result = multierror.Append(result, fmt.Errorf("otel: %w", err))
	}

	return result.ErrorOrNil()
}

func provideEventBus(invalidator *subscribers.CacheInvalidator) event.Bus {
	bus := event.NewBus()
	invalidator.Register(bus)

	return bus
}

func provideOpenBookings(repo bookingRepository.Booking) accountService.OpenBookings {
	return repo
}
