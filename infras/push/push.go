package push

//go:generate go run go.uber.org/mock/mockgen -source=./push.go -destination=./mocks/push_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"marketplace/config"
	"marketplace/infras/kafka"
	"marketplace/infras/otel"
	"marketplace/shared/clock"
	"marketplace/shared/constant"
	"time"

	"github.com/google/uuid"
)

const (
	JobKindUser  = "user"
	JobKindTopic = "topic"
)

var ErrMissingTarget = errors.New("push target is required")

// Message is the visible part of a push notification.
type Message struct {
	Title string
	Body  string
	Data  map[string]string
}

// Job is the payload handed to the push worker through Kafka. The worker owns
// delivery and retries, and reports back with a DeliveryReport.
type Job struct {
	ID          string            `json:"id"`
	Kind        string            `json:"kind"`
	UserID      string            `json:"user_id,omitempty"`
	Token       string            `json:"token,omitempty"`
	Topic       string            `json:"topic,omitempty"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Data        map[string]string `json:"data,omitempty"`
	RequestedAt time.Time         `json:"requested_at"`
}

// DeliveryReport is published by the push worker once a job is settled.
type DeliveryReport struct {
	JobID     string    `json:"job_id"`
	Delivered bool      `json:"delivered"`
	Error     string    `json:"error,omitempty"`
	SettledAt time.Time `json:"settled_at"`
}

type Sender interface {
	SendToUser(ctx context.Context, userID, token string, message Message) (string, error)
	SendToTopic(ctx context.Context, topic string, message Message) (string, error)
}

type kafkaSender struct {
	client     kafka.Client
	otel       otel.Otel
	clock      clock.Clock
	userTopic  string
	topicTopic string
}

func New(cfg *config.Config, client kafka.Client, otl otel.Otel, clk clock.Clock) Sender {
	return &kafkaSender{
		client:     client,
		otel:       otl,
		clock:      clk,
		userTopic:  cfg.Kafka.Topic.PushUser,
		topicTopic: cfg.Kafka.Topic.PushTopic,
	}
}

// SendToUser queues a push to a single device registration and returns the job id.
func (s *kafkaSender) SendToUser(ctx context.Context, userID, token string, message Message) (jobID string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".push.SendToUser")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if userID == "" || token == "" {
		return "", ErrMissingTarget
	}

	job := s.newJob(JobKindUser, message)
	job.UserID = userID
	job.Token = token

	return s.publish(ctx, s.userTopic, userID, job)
}

// SendToTopic queues a push to every device subscribed to topic.
func (s *kafkaSender) SendToTopic(ctx context.Context, topic string, message Message) (jobID string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".push.SendToTopic")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if topic == "" {
		return "", ErrMissingTarget
	}

	job := s.newJob(JobKindTopic, message)
	job.Topic = topic

	return s.publish(ctx, s.topicTopic, topic, job)
}

func (s *kafkaSender) newJob(kind string, message Message) Job {
	return Job{
		ID:          uuid.New().String(),
		Kind:        kind,
		Title:       message.Title,
		Body:        message.Body,
		Data:        message.Data,
		RequestedAt: s.clock.Now(),
	}
}

func (s *kafkaSender) publish(ctx context.Context, kafkaTopic, key string, job Job) (string, error) {
	err := s.client.SendMessages(ctx, kafkaTopic, kafka.Message{Key: key, Value: job})
	if err != nil {
		return "", fmt.Errorf("failed to queue push job: %w", err)
	}

	return job.ID, nil
}
