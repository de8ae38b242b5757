package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"marketplace/config"
	"marketplace/infras/otel"
	"marketplace/infras/push"
	accountDto "marketplace/internal/domains/account/model/dto"
	accountService "marketplace/internal/domains/account/service"
	"marketplace/internal/domains/notification/model"
	"marketplace/internal/domains/notification/model/dto"
	"marketplace/internal/domains/notification/repository"
	"marketplace/shared/clock"
	"marketplace/shared/constant"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"
)

const defaultAdminTopic = "admins"

// Notification fans booking events out to push. Delivery failures never undo
// the change that caused them.
type Notification interface {
	NotifyParties(ctx context.Context, subject dto.Subject, event string, audience model.Audience) error
	NotifyAdmins(ctx context.Context, notice dto.AdminNotice) error
	HandleDeliveryReport(ctx context.Context, report push.DeliveryReport) error
	ListForBooking(ctx context.Context, bookingID string) ([]dto.NotificationResponse, error)
}

type serviceImpl struct {
	repo       repository.Notification
	accounts   accountService.Account
	push       push.Sender
	clock      clock.Clock
	otel       otel.Otel
	adminTopic string
}

func New(repo repository.Notification, accounts accountService.Account, sender push.Sender, cfg *config.Config, clk clock.Clock, otel otel.Otel) Notification {
	adminTopic := cfg.Push.AdminTopic
	if adminTopic == "" {
		adminTopic = defaultAdminTopic
	}

	return &serviceImpl{
		repo:       repo,
		accounts:   accounts,
		push:       sender,
		clock:      clk,
		otel:       otel,
		adminTopic: adminTopic,
	}
}

type party struct {
	id   string
	role string
}

func parties(subject dto.Subject, audience model.Audience) []party {
	var res []party

	if audience.Includes(model.AudienceClient) && subject.ClientID != "" {
		res = append(res, party{id: subject.ClientID, role: dto.RoleClient})
	}

	if audience.Includes(model.AudienceProvider) && subject.ProviderID != "" {
		res = append(res, party{id: subject.ProviderID, role: dto.RoleProvider})
	}

	return res
}

func (s *serviceImpl) NotifyParties(ctx context.Context, subject dto.Subject, event string, audience model.Audience) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.NotifyParties")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	targets := parties(subject, audience)
	if len(targets) == 0 {
		return nil
	}

	ids := make([]string, len(targets))
	for i, target := range targets {
		ids[i] = target.id
	}

	recipients, err := s.accounts.Recipients(ctx, ids...)
	if err != nil {
		log.Error().Err(err).Str("booking_id", subject.BookingID).Msg("failed to resolve booking parties")

		return fmt.Errorf("failed to resolve booking parties: %w", err)
	}

	byID := make(map[string]accountDto.Recipient, len(recipients))
	for _, recipient := range recipients {
		byID[recipient.AccountID] = recipient
	}

	var (
		result  *multierror.Error
		records = make([]model.Notification, 0, len(targets))
		now     = s.clock.Now()
	)

	for _, target := range targets {
		title, body := dto.PartyMessage(event, target.role, subject)
		entry := dto.Entry{
			BookingID:   subject.BookingID,
			RecipientID: target.id,
			Channel:     model.ChannelUser,
			Event:       event,
			Title:       title,
			Body:        body,
		}

		recipient, ok := byID[target.id]
		if !ok || recipient.PushToken == "" {
			log.Debug().Str("account_id", target.id).Str("event", event).Msg("recipient has no push registration")

			records = append(records, entry.ToModel(model.StatusSkipped, "", "", now))

			continue
		}

		message := push.Message{Title: title, Body: body, Data: subject.Data(event)}

		jobID, sendErr := s.push.SendToUser(ctx, target.id, recipient.PushToken, message)
		if sendErr != nil {
			log.Error().Err(sendErr).Str("account_id", target.id).Str("event", event).Msg("failed to queue push")

			result = multierror.Append(result, fmt.Errorf("push to %s: %w", target.id, sendErr))
			records = append(records, entry.ToModel(model.StatusFailed, "", sendErr.Error(), now))

			continue
		}

		records = append(records, entry.ToModel(model.StatusQueued, jobID, "", now))
	}

	if err := s.repo.InsertBulk(ctx, records); err != nil {
		log.Error().Err(err).Int("entries", len(records)).Msg("failed to record notifications")

		result = multierror.Append(result, fmt.Errorf("failed to record notifications: %w", err))
	}

	return result.ErrorOrNil()
}

// NotifyAdmins resolves the admin recipients once and delivers to each of them
// independently. The admin topic is used only when no admin push was queued.
func (s *serviceImpl) NotifyAdmins(ctx context.Context, notice dto.AdminNotice) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.NotifyAdmins")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	admins, err := s.accounts.ResolveAdminRecipients(ctx)
	if err != nil {
		log.Error().Err(err).Str("event", notice.Event).Msg("failed to resolve admin recipients")

		return fmt.Errorf("failed to resolve admin recipients: %w", err)
	}

	var (
		result  *multierror.Error
		records = make([]model.Notification, 0, len(admins)+1)
		now     = s.clock.Now()
		message = push.Message{Title: notice.Title, Body: notice.Body, Data: notice.Data}
		queued  int
	)

	entryFor := func(recipientID, channel string) dto.Entry {
		return dto.Entry{
			BookingID:   notice.BookingID,
			RecipientID: recipientID,
			Channel:     channel,
			Event:       notice.Event,
			Title:       notice.Title,
			Body:        notice.Body,
		}
	}

	for _, admin := range admins {
		entry := entryFor(admin.AccountID, model.ChannelUser)

		if admin.PushToken == "" {
			records = append(records, entry.ToModel(model.StatusSkipped, "", "", now))

			continue
		}

		jobID, sendErr := s.push.SendToUser(ctx, admin.AccountID, admin.PushToken, message)
		if sendErr != nil {
			log.Error().Err(sendErr).Str("account_id", admin.AccountID).Str("event", notice.Event).Msg("failed to queue admin push")

			result = multierror.Append(result, fmt.Errorf("push to admin %s: %w", admin.AccountID, sendErr))
			records = append(records, entry.ToModel(model.StatusFailed, "", sendErr.Error(), now))

			continue
		}

		records = append(records, entry.ToModel(model.StatusQueued, jobID, "", now))
		queued++
	}

	if queued == 0 {
		record, sendErr := s.broadcastAdmins(ctx, entryFor(s.adminTopic, model.ChannelTopic), message, now)
		if sendErr != nil {
			result = multierror.Append(result, sendErr)
		}

		records = append(records, record)
	}

	if err := s.repo.InsertBulk(ctx, records); err != nil {
		log.Error().Err(err).Msg("failed to record admin notifications")

		result = multierror.Append(result, fmt.Errorf("failed to record admin notifications: %w", err))
	}

	return result.ErrorOrNil()
}

func (s *serviceImpl) broadcastAdmins(ctx context.Context, entry dto.Entry, message push.Message, now time.Time) (model.Notification, error) {
	jobID, err := s.push.SendToTopic(ctx, s.adminTopic, message)
	if err != nil {
		log.Error().Err(err).Str("topic", s.adminTopic).Str("event", entry.Event).Msg("failed to queue admin broadcast")

		return entry.ToModel(model.StatusFailed, "", err.Error(), now), fmt.Errorf("broadcast to %s: %w", s.adminTopic, err)
	}

	return entry.ToModel(model.StatusQueued, jobID, "", now), nil
}

func (s *serviceImpl) HandleDeliveryReport(ctx context.Context, report push.DeliveryReport) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.HandleDeliveryReport")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if report.JobID == "" {
		log.Warn().Msg("delivery report without job id")

		return nil
	}

	status := model.StatusFailed
	if report.Delivered {
		status = model.StatusDelivered
	}

	settledAt := report.SettledAt
	if settledAt.IsZero() {
		settledAt = s.clock.Now()
	}

	updated, err := s.repo.SettleJob(ctx, report.JobID, status, report.Error, settledAt)
	if err != nil {
		log.Error().Err(err).Str("job_id", report.JobID).Msg("failed to settle notification")

		return fmt.Errorf("failed to settle notification: %w", err)
	}

	if updated == 0 {
		log.Debug().Str("job_id", report.JobID).Msg("no queued notification for delivery report")
	}

	return nil
}

func (s *serviceImpl) ListForBooking(ctx context.Context, bookingID string) (res []dto.NotificationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.ListForBooking")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	notifications, err := s.repo.ListByBooking(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list notifications")

		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return dto.FromModels(notifications), nil
}
