package subscribers

import (
	"context"
	"marketplace/config"
	"marketplace/infras/kafka"
	"marketplace/infras/otel"
	"marketplace/infras/push"
	notificationService "marketplace/internal/domains/notification/service"
	"marketplace/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const defaultConsumerGroup = "marketplace"

// DeliveryConsumer settles notification log entries from the push worker's
// delivery reports.
type DeliveryConsumer struct {
	client        kafka.Client
	notifications notificationService.Notification
	otel          otel.Otel
	topic         string
	group         string
}

func NewDeliveryConsumer(client kafka.Client, notifications notificationService.Notification, cfg *config.Config, otel otel.Otel) *DeliveryConsumer {
	group := cfg.Kafka.ConsumerGroup
	if group == constant.Empty {
		group = defaultConsumerGroup
	}

	return &DeliveryConsumer{
		client:        client,
		notifications: notifications,
		otel:          otel,
		topic:         cfg.Kafka.Topic.PushResult,
		group:         group,
	}
}

// Run blocks until ctx is done.
func (d *DeliveryConsumer) Run(ctx context.Context) {
	log.Info().Str("topic", d.topic).Str("group", d.group).Msg("Starting delivery report consumer.")

	d.client.Consume(ctx, d.group, d.topic, d.Handle)
}

// Handle settles one report. Undecodable messages are dropped so they do not
// block the partition.
func (d *DeliveryConsumer) Handle(ctx context.Context, message kafkaGo.Message) error {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".delivery.Handle")
	defer scope.End()

	report, err := kafka.Decode[push.DeliveryReport](message)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("key", string(message.Key)).Msg("dropping malformed delivery report")

		return nil
	}

	if err := d.notifications.HandleDeliveryReport(ctx, report); err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	return nil
}
