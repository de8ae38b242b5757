package service_test

import (
	"context"
	"errors"
	"marketplace/config"
	"marketplace/infras/otel/mocks"
	"marketplace/infras/push"
	pushMocks "marketplace/infras/push/mocks"
	accountDto "marketplace/internal/domains/account/model/dto"
	accountMocks "marketplace/internal/domains/account/service/mocks"
	notificationMocks "marketplace/internal/domains/notification/mocks"
	"marketplace/internal/domains/notification/model"
	"marketplace/internal/domains/notification/model/dto"
	"marketplace/internal/domains/notification/service"
	"marketplace/shared/clock"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

var subject = dto.Subject{
	BookingID:      "bk-1",
	Number:         "BK-20260501-ABC123",
	ClientID:       "client-1",
	ProviderID:     "provider-1",
	ScheduledStart: time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC),
}

type deps struct {
	repo     *notificationMocks.MockNotification
	accounts *accountMocks.MockAccount
	push     *pushMocks.MockSender
}

func newService(t *testing.T) (service.Notification, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		repo:     notificationMocks.NewMockNotification(ctrl),
		accounts: accountMocks.NewMockAccount(ctrl),
		push:     pushMocks.NewMockSender(ctrl),
	}

	cfg := &config.Config{}
	cfg.Push.AdminTopic = "ops"

	return service.New(d.repo, d.accounts, d.push, cfg, clock.Fake(now), mocks.NewOtel()), d
}

func statuses(records []model.Notification) map[string]string {
	res := make(map[string]string, len(records))
	for _, record := range records {
		res[record.RecipientID] = record.Status
	}

	return res
}

func TestNotificationService_NotifyParties(t *testing.T) {
	tests := []struct {
		name         string
		audience     model.Audience
		setupMock    func(d deps)
		wantStatuses map[string]string
		wantErr      bool
	}{
		{
			name:     "client only",
			audience: model.AudienceClient,
			setupMock: func(d deps) {
				d.accounts.EXPECT().Recipients(gomock.Any(), "client-1").
					Return([]accountDto.Recipient{{AccountID: "client-1", PushToken: "tc"}}, nil)
				d.push.EXPECT().
					SendToUser(gomock.Any(), "client-1", "tc", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ string, message push.Message) (string, error) {
						assert.Equal(t, "Booking accepted", message.Title)
						assert.Contains(t, message.Body, "BK-20260501-ABC123")
						assert.Equal(t, "bk-1", message.Data["booking_id"])

						return "job-1", nil
					})
			},
			wantStatuses: map[string]string{"client-1": model.StatusQueued},
		},
		{
			name:     "recipient without push registration is skipped",
			audience: model.AudienceBoth,
			setupMock: func(d deps) {
				d.accounts.EXPECT().Recipients(gomock.Any(), "client-1", "provider-1").
					Return([]accountDto.Recipient{{AccountID: "client-1"}, {AccountID: "provider-1", PushToken: "tp"}}, nil)
				d.push.EXPECT().SendToUser(gomock.Any(), "provider-1", "tp", gomock.Any()).Return("job-2", nil)
			},
			wantStatuses: map[string]string{"client-1": model.StatusSkipped, "provider-1": model.StatusQueued},
		},
		{
			name:     "one failed push does not stop the other party",
			audience: model.AudienceBoth,
			setupMock: func(d deps) {
				d.accounts.EXPECT().Recipients(gomock.Any(), "client-1", "provider-1").
					Return([]accountDto.Recipient{{AccountID: "client-1", PushToken: "tc"}, {AccountID: "provider-1", PushToken: "tp"}}, nil)
				d.push.EXPECT().SendToUser(gomock.Any(), "client-1", "tc", gomock.Any()).Return("", errors.New("broker down"))
				d.push.EXPECT().SendToUser(gomock.Any(), "provider-1", "tp", gomock.Any()).Return("job-3", nil)
			},
			wantStatuses: map[string]string{"client-1": model.StatusFailed, "provider-1": model.StatusQueued},
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			tt.setupMock(d)

			var recorded []model.Notification

			d.repo.EXPECT().
				InsertBulk(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, records []model.Notification) error {
					recorded = records

					return nil
				})

			err := svc.NotifyParties(context.Background(), subject, model.EventBookingAccepted, tt.audience)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantStatuses, statuses(recorded))

			for _, record := range recorded {
				assert.Equal(t, "bk-1", *record.BookingID)
				assert.Equal(t, model.EventBookingAccepted, record.Event)
			}
		})
	}
}

func TestNotificationService_NotifyPartiesDirectoryFailure(t *testing.T) {
	svc, d := newService(t)

	d.accounts.EXPECT().Recipients(gomock.Any(), "provider-1").Return(nil, errors.New("database error"))

	err := svc.NotifyParties(context.Background(), subject, model.EventCancelledByClient, model.AudienceProvider)
	assert.Error(t, err)
}

func TestNotificationService_NotifyAdmins(t *testing.T) {
	svc, d := newService(t)
	notice := dto.NewAdminNotice(model.EventCancelledByAdmin, subject)

	d.accounts.EXPECT().ResolveAdminRecipients(gomock.Any()).Return([]accountDto.Recipient{
		{AccountID: "admin-1", PushToken: "ta"},
		{AccountID: "admin-2"},
		{AccountID: "admin-3", PushToken: "tb"},
	}, nil).Times(1)
	d.push.EXPECT().SendToUser(gomock.Any(), "admin-1", "ta", gomock.Any()).Return("", errors.New("broker down"))
	d.push.EXPECT().SendToUser(gomock.Any(), "admin-3", "tb", gomock.Any()).Return("job-3", nil)
	d.push.EXPECT().SendToTopic(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	var recorded []model.Notification

	d.repo.EXPECT().
		InsertBulk(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []model.Notification) error {
			recorded = records

			return nil
		})

	err := svc.NotifyAdmins(context.Background(), notice)

	assert.Error(t, err)
	assert.Equal(t, map[string]string{
		"admin-1": model.StatusFailed,
		"admin-2": model.StatusSkipped,
		"admin-3": model.StatusQueued,
	}, statuses(recorded))
}

func TestNotificationService_NotifyAdminsFallsBackToTopic(t *testing.T) {
	svc, d := newService(t)
	notice := dto.NewAdminNotice(model.EventCancelledByAdmin, subject)

	d.accounts.EXPECT().ResolveAdminRecipients(gomock.Any()).Return([]accountDto.Recipient{
		{AccountID: "admin-1"},
		{AccountID: "admin-2", PushToken: "tb"},
	}, nil)
	d.push.EXPECT().SendToUser(gomock.Any(), "admin-2", "tb", gomock.Any()).Return("", errors.New("broker down"))
	d.push.EXPECT().
		SendToTopic(gomock.Any(), "ops", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, message push.Message) (string, error) {
			assert.Equal(t, "Booking cancelled", message.Title)
			assert.Contains(t, message.Body, "cancelled by an admin")

			return "job-topic", nil
		})

	var recorded []model.Notification

	d.repo.EXPECT().
		InsertBulk(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []model.Notification) error {
			recorded = records

			return nil
		})

	err := svc.NotifyAdmins(context.Background(), notice)

	assert.Error(t, err)
	assert.Equal(t, map[string]string{
		"admin-1": model.StatusSkipped,
		"admin-2": model.StatusFailed,
		"ops":     model.StatusQueued,
	}, statuses(recorded))
	assert.Equal(t, model.ChannelTopic, recorded[2].Channel)
}

func TestNotificationService_HandleDeliveryReport(t *testing.T) {
	settledAt := now.Add(time.Minute)

	tests := []struct {
		name      string
		report    push.DeliveryReport
		setupMock func(d deps)
		wantErr   bool
	}{
		{
			name:   "delivered",
			report: push.DeliveryReport{JobID: "job-1", Delivered: true, SettledAt: settledAt},
			setupMock: func(d deps) {
				d.repo.EXPECT().SettleJob(gomock.Any(), "job-1", model.StatusDelivered, "", settledAt).Return(int64(1), nil)
			},
		},
		{
			name:   "failed without settle time",
			report: push.DeliveryReport{JobID: "job-1", Error: "unregistered"},
			setupMock: func(d deps) {
				d.repo.EXPECT().SettleJob(gomock.Any(), "job-1", model.StatusFailed, "unregistered", now).Return(int64(0), nil)
			},
		},
		{
			name:      "missing job id",
			report:    push.DeliveryReport{Delivered: true},
			setupMock: func(deps) {},
		},
		{
			name:   "store error",
			report: push.DeliveryReport{JobID: "job-1", Delivered: true, SettledAt: settledAt},
			setupMock: func(d deps) {
				d.repo.EXPECT().SettleJob(gomock.Any(), "job-1", model.StatusDelivered, "", settledAt).Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			tt.setupMock(d)

			err := svc.HandleDeliveryReport(context.Background(), tt.report)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPartyMessage(t *testing.T) {
	title, body := dto.PartyMessage(model.EventCancelledByProvider, dto.RoleClient, dto.Subject{
		Number:         "BK-20260501-ABC123",
		ScheduledStart: time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC),
		Reason:         "provider unavailable",
	})

	assert.Equal(t, "Booking cancelled", title)
	assert.Equal(t, "The provider cancelled your booking BK-20260501-ABC123 for 02 May 2026 09:00. Reason: provider unavailable", body)

	title, _ = dto.PartyMessage("booking.unknown", dto.RoleProvider, dto.Subject{})
	assert.Equal(t, "Booking updated", title)
}
