package push_test

import (
	"context"
	"errors"
	"marketplace/config"
	"marketplace/infras/kafka"
	kafkaMocks "marketplace/infras/kafka/mocks"
	"marketplace/infras/otel/mocks"
	"marketplace/infras/push"
	"marketplace/shared/clock"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.Topic.PushUser = "push.user"
	cfg.Kafka.Topic.PushTopic = "push.topic"

	return cfg
}

func TestSendToUser(t *testing.T) {
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	message := push.Message{Title: "Booking accepted", Body: "Your booking was accepted", Data: map[string]string{"booking_id": "bk-1"}}

	tests := []struct {
		name      string
		userID    string
		token     string
		setupMock func(client *kafkaMocks.MockClient)
		wantErr   error
	}{
		{
			name:   "queues a user job keyed by user",
			userID: "acc-1",
			token:  "device-token",
			setupMock: func(client *kafkaMocks.MockClient) {
				client.EXPECT().
					SendMessages(gomock.Any(), "push.user", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
						assert.Len(t, messages, 1)
						assert.Equal(t, "acc-1", messages[0].Key)

						job, ok := messages[0].Value.(push.Job)
						assert.True(t, ok)
						assert.Equal(t, push.JobKindUser, job.Kind)
						assert.Equal(t, "device-token", job.Token)
						assert.Equal(t, "Booking accepted", job.Title)
						assert.Equal(t, "bk-1", job.Data["booking_id"])
						assert.Equal(t, now, job.RequestedAt)
						assert.NotEmpty(t, job.ID)

						return nil
					})
			},
		},
		{
			name:      "missing token",
			userID:    "acc-1",
			setupMock: func(*kafkaMocks.MockClient) {},
			wantErr:   push.ErrMissingTarget,
		},
		{
			name:   "broker failure",
			userID: "acc-1",
			token:  "device-token",
			setupMock: func(client *kafkaMocks.MockClient) {
				client.EXPECT().SendMessages(gomock.Any(), "push.user", gomock.Any()).Return(errors.New("broker down"))
			},
			wantErr: errors.New("broker down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := kafkaMocks.NewMockClient(ctrl)
			tt.setupMock(client)

			sender := push.New(newConfig(), client, mocks.NewOtel(), clock.Fake(now))

			jobID, err := sender.SendToUser(context.Background(), tt.userID, tt.token, message)

			if tt.wantErr != nil {
				assert.ErrorContains(t, err, tt.wantErr.Error())
				assert.Empty(t, jobID)

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, jobID)
		})
	}
}

func TestSendToTopic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := kafkaMocks.NewMockClient(ctrl)
	client.EXPECT().
		SendMessages(gomock.Any(), "push.topic", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			job, _ := messages[0].Value.(push.Job)

			assert.Equal(t, "admins", messages[0].Key)
			assert.Equal(t, push.JobKindTopic, job.Kind)
			assert.Equal(t, "admins", job.Topic)

			return nil
		})

	sender := push.New(newConfig(), client, mocks.NewOtel(), clock.Real())

	_, err := sender.SendToTopic(context.Background(), "admins", push.Message{Title: "Booking cancelled"})
	assert.NoError(t, err)

	_, err = sender.SendToTopic(context.Background(), "", push.Message{})
	assert.ErrorIs(t, err, push.ErrMissingTarget)
}
