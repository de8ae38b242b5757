package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"marketplace/config"
	"marketplace/infras/otel"
	accountModel "marketplace/internal/domains/account/model"
	accountRepo "marketplace/internal/domains/account/repository"
	"marketplace/internal/domains/booking/model"
	"marketplace/internal/domains/booking/model/dto"
	"marketplace/internal/domains/booking/repository"
	notificationModel "marketplace/internal/domains/notification/model"
	notificationDto "marketplace/internal/domains/notification/model/dto"
	notificationService "marketplace/internal/domains/notification/service"
	settingModel "marketplace/internal/domains/setting/model"
	settingService "marketplace/internal/domains/setting/service"
	"marketplace/shared"
	"marketplace/shared/cache"
	"marketplace/shared/clock"
	"marketplace/shared/constant"
	gDto "marketplace/shared/dto"
	"marketplace/shared/failure"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultAcceptanceTimeout = 30
	defaultPaymentTimeout    = 5
	defaultCurrency          = "IDR"

	numberAttempts = 3
)

// Booking moves bookings through their lifecycle. Every transition is a single
// guarded write followed by exactly one party and one admin notification.
type Booking interface {
	Create(ctx context.Context, actor dto.Actor, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Accept(ctx context.Context, id, providerID string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string, actor dto.Actor, reason string) (dto.BookingResponse, error)
	MarkPaid(ctx context.Context, id string) (dto.BookingResponse, error)
	MarkPaymentFailed(ctx context.Context, id string) (dto.BookingResponse, error)

	ExpireAcceptance(ctx context.Context, booking model.Booking) (bool, error)
	ExpirePayment(ctx context.Context, booking model.Booking) (bool, error)
	Complete(ctx context.Context, booking model.Booking) (bool, error)

	AcceptanceTimeout(ctx context.Context) time.Duration
	PaymentTimeout(ctx context.Context) time.Duration
}

type serviceImpl struct {
	repo          repository.Booking
	accounts      accountRepo.Account
	notifications notificationService.Notification
	settings      settingService.Setting
	cfg           *config.Config
	cache         cache.RedisCache
	clock         clock.Clock
	otel          otel.Otel
}

func New(
	repo repository.Booking,
	accounts accountRepo.Account,
	notifications notificationService.Notification,
	settings settingService.Setting,
	cfg *config.Config,
	cache cache.RedisCache,
	clk clock.Clock,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:          repo,
		accounts:      accounts,
		notifications: notifications,
		settings:      settings,
		cfg:           cfg,
		cache:         cache,
		clock:         clk,
		otel:          otel,
	}
}

// transition describes one edge of the lifecycle.
type transition struct {
	guard    model.Guard
	change   model.Change
	event    string
	audience notificationModel.Audience
}

func (s *serviceImpl) Create(ctx context.Context, actor dto.Actor, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if actor.Role == constant.RoleClient {
		req.ClientID = actor.ID
	}

	if req.ClientID == constant.Empty {
		return res, failure.BadRequestField("client_id", "client_id is required") // nolint:wrapcheck
	}

	if !req.ScheduledEnd.After(req.ScheduledStart) {
		return res, failure.BadRequestField("scheduled_end", "scheduled_end must be after scheduled_start") // nolint:wrapcheck
	}

	now := s.clock.Now()

	if !req.ScheduledStart.After(now) {
		return res, failure.BadRequestField("scheduled_start", "scheduled_start must be in the future") // nolint:wrapcheck
	}

	if err = s.checkParties(ctx, req.ClientID, req.ProviderID); err != nil {
		return res, err
	}

	currency := s.cfg.Booking.Currency
	if currency == constant.Empty {
		currency = defaultCurrency
	}

	var booking model.Booking

	for attempt := 0; attempt < numberAttempts; attempt++ {
		number, numErr := newNumber(now)
		if numErr != nil {
			log.Error().Err(numErr).Msg("failed to generate booking number")

			return res, fmt.Errorf("failed to generate booking number: %w", numErr)
		}

		booking = req.ToModel(number, currency, actor, now)

		err = s.repo.Insert(ctx, booking)
		if !errors.Is(err, repository.ErrNumberTaken) {
			break
		}

		log.Warn().Str("number", number).Msg("booking number collision, retrying")
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	log.Info().Str("booking_id", booking.ID).Str("number", booking.Number).Msg("booking created")

	s.dispatch(ctx, booking, notificationModel.EventBookingCreated, notificationModel.AudienceProvider)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) checkParties(ctx context.Context, clientID, providerID string) error {
	if clientID == providerID {
		return failure.BadRequestField("provider_id", "client and provider must be different accounts") // nolint:wrapcheck
	}

	accounts, err := s.accounts.ListByIDs(ctx, []string{clientID, providerID})
	if err != nil {
		log.Error().Err(err).Msg("failed to load booking parties")

		return fmt.Errorf("failed to load booking parties: %w", err)
	}

	found := make(map[string]accountModel.Account, len(accounts))
	for _, account := range accounts {
		found[account.ID] = account
	}

	parties := []struct {
		id, field, wantType string
	}{
		{clientID, "client_id", accountModel.TypeClient},
		{providerID, "provider_id", accountModel.TypeProvider},
	}

	for _, party := range parties {
		account, ok := found[party.id]
		if !ok || account.Type != party.wantType {
			return failure.BadRequestField(party.field, fmt.Sprintf("%s is not a %s account", party.field, party.wantType)) // nolint:wrapcheck
		}

		if !account.CanSignIn() {
			return failure.BadRequestField(party.field, fmt.Sprintf("%s account is not active", party.wantType)) // nolint:wrapcheck
		}
	}

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(model.CacheKeyGet, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	// Open bookings move through transitions; only settled ones are safe to serve from cache.
	if !booking.IsTerminal() {
		return res, nil
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Accept(ctx context.Context, id, providerID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Accept")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.ProviderID != providerID {
		return res, failure.Forbidden("only the booked provider can accept this booking") // nolint:wrapcheck
	}

	if booking.Status != model.StatusPending {
		return res, invalidTransition(booking, model.StatusConfirmed)
	}

	now := s.clock.Now()

	return s.manual(ctx, booking, transition{
		guard:    model.Guard{ID: id, Status: model.StatusPending, ProviderID: providerID},
		change:   model.Change{Status: model.StatusConfirmed, ConfirmedAt: &now, At: now, Actor: providerID},
		event:    notificationModel.EventBookingAccepted,
		audience: notificationModel.AudienceClient,
	})
}

var cancelEvents = map[string]struct {
	event    string
	audience notificationModel.Audience
}{
	model.CancelledByClient:   {notificationModel.EventCancelledByClient, notificationModel.AudienceProvider},
	model.CancelledByProvider: {notificationModel.EventCancelledByProvider, notificationModel.AudienceClient},
	model.CancelledByAdmin:    {notificationModel.EventCancelledByAdmin, notificationModel.AudienceBoth},
}

// Cancel stops a pending or confirmed booking on behalf of one of its parties
// or an admin.
func (s *serviceImpl) Cancel(ctx context.Context, id string, actor dto.Actor, reason string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	outcome, ok := cancelEvents[actor.Role]
	if !ok {
		return res, failure.Forbidden("you are not allowed to cancel bookings") // nolint:wrapcheck
	}

	switch actor.Role {
	case constant.RoleClient:
		ok = booking.ClientID == actor.ID
	case constant.RoleProvider:
		ok = booking.ProviderID == actor.ID
	}

	if !ok {
		return res, failure.Forbidden("you are not a party of this booking") // nolint:wrapcheck
	}

	if booking.IsTerminal() {
		return res, invalidTransition(booking, model.StatusCancelled)
	}

	now := s.clock.Now()

	return s.manual(ctx, booking, transition{
		guard: model.Guard{ID: id, Status: booking.Status},
		change: model.Change{
			Status:      model.StatusCancelled,
			CancelledAt: &now,
			CancelledBy: actor.Role,
			Reason:      reason,
			At:          now,
			Actor:       actor.ID,
		},
		event:    outcome.event,
		audience: outcome.audience,
	})
}

// MarkPaid records a successful payment callback. A failed payment may be
// retried, so both pending and failed payments can become paid.
func (s *serviceImpl) MarkPaid(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.MarkPaid")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.Status != model.StatusConfirmed || (booking.PaymentStatus != model.PaymentPending && booking.PaymentStatus != model.PaymentFailed) {
		return res, invalidPayment(booking, model.PaymentPaid)
	}

	now := s.clock.Now()

	return s.manual(ctx, booking, transition{
		guard:    model.Guard{ID: id, Status: model.StatusConfirmed, PaymentStatus: booking.PaymentStatus},
		change:   model.Change{PaymentStatus: model.PaymentPaid, At: now, Actor: constant.RoleSystem},
		event:    notificationModel.EventPaymentReceived,
		audience: notificationModel.AudienceProvider,
	})
}

func (s *serviceImpl) MarkPaymentFailed(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.MarkPaymentFailed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if booking.Status != model.StatusConfirmed || booking.PaymentStatus != model.PaymentPending {
		return res, invalidPayment(booking, model.PaymentFailed)
	}

	now := s.clock.Now()

	return s.manual(ctx, booking, transition{
		guard:    model.Guard{ID: id, Status: model.StatusConfirmed, PaymentStatus: model.PaymentPending},
		change:   model.Change{PaymentStatus: model.PaymentFailed, At: now, Actor: constant.RoleSystem},
		event:    notificationModel.EventPaymentFailed,
		audience: notificationModel.AudienceClient,
	})
}

// ExpireAcceptance cancels a booking the provider did not accept in time.
func (s *serviceImpl) ExpireAcceptance(ctx context.Context, booking model.Booking) (ok bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ExpireAcceptance")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := s.clock.Now()

	return s.automatic(ctx, booking, transition{
		guard: model.Guard{
			ID:            booking.ID,
			Status:        model.StatusPending,
			CreatedBefore: now.Add(-s.AcceptanceTimeout(ctx)),
		},
		change: model.Change{
			Status:      model.StatusCancelled,
			CancelledAt: &now,
			CancelledBy: model.CancelledBySystem,
			Reason:      "provider did not respond in time",
			At:          now,
			Actor:       constant.RoleSystem,
		},
		event:    notificationModel.EventAcceptanceTimeout,
		audience: notificationModel.AudienceClient,
	})
}

// ExpirePayment cancels a confirmed booking whose payment never arrived.
func (s *serviceImpl) ExpirePayment(ctx context.Context, booking model.Booking) (ok bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ExpirePayment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := s.clock.Now()

	return s.automatic(ctx, booking, transition{
		guard: model.Guard{
			ID:              booking.ID,
			Status:          model.StatusConfirmed,
			PaymentStatus:   model.PaymentPending,
			ConfirmedBefore: now.Add(-s.PaymentTimeout(ctx)),
		},
		change: model.Change{
			Status:      model.StatusCancelled,
			CancelledAt: &now,
			CancelledBy: model.CancelledBySystem,
			Reason:      "payment was not received in time",
			At:          now,
			Actor:       constant.RoleSystem,
		},
		event:    notificationModel.EventPaymentTimeout,
		audience: notificationModel.AudienceBoth,
	})
}

// Complete closes a paid booking once its scheduled end has passed.
func (s *serviceImpl) Complete(ctx context.Context, booking model.Booking) (ok bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Complete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := s.clock.Now()

	return s.automatic(ctx, booking, transition{
		guard: model.Guard{
			ID:            booking.ID,
			Status:        model.StatusConfirmed,
			PaymentStatus: model.PaymentPaid,
			EndedBefore:   now,
		},
		change: model.Change{
			Status:      model.StatusCompleted,
			CompletedAt: &now,
			At:          now,
			Actor:       constant.RoleSystem,
		},
		event:    notificationModel.EventBookingCompleted,
		audience: notificationModel.AudienceBoth,
	})
}

func (s *serviceImpl) AcceptanceTimeout(ctx context.Context) time.Duration {
	def := s.cfg.Booking.AcceptanceTimeoutMin
	if def <= 0 {
		def = defaultAcceptanceTimeout
	}

	return time.Duration(s.settings.GetInt(ctx, settingModel.KeyAcceptanceTimeoutMinutes, def)) * time.Minute
}

func (s *serviceImpl) PaymentTimeout(ctx context.Context) time.Duration {
	def := s.cfg.Booking.PaymentTimeoutMin
	if def <= 0 {
		def = defaultPaymentTimeout
	}

	return time.Duration(s.settings.GetInt(ctx, settingModel.KeyPaymentTimeoutMinutes, def)) * time.Minute
}

// manual runs a transition requested by a caller. Losing the race to another
// writer is reported as a conflict so the caller can reload.
func (s *serviceImpl) manual(ctx context.Context, booking model.Booking, t transition) (res dto.BookingResponse, err error) {
	updated, ok, err := s.apply(ctx, t)
	if err != nil {
		return res, err
	}

	if !ok {
		log.Debug().Str("booking_id", booking.ID).Str("event", t.event).Msg("booking changed concurrently")

		return res, failure.New(http.StatusConflict, failure.ReasonInvalidTransition, "status", "booking was changed by another request, please reload it") // nolint:wrapcheck
	}

	res.FromModel(updated)

	return res, nil
}

// automatic runs a time driven transition. A booking that no longer qualifies
// is skipped without touching the store.
func (s *serviceImpl) automatic(ctx context.Context, booking model.Booking, t transition) (bool, error) {
	if !t.guard.Matches(booking) {
		log.Debug().Str("booking_id", booking.ID).Str("event", t.event).Msg("booking no longer qualifies")

		return false, nil
	}

	_, ok, err := s.apply(ctx, t)
	if err != nil {
		return false, err
	}

	if !ok {
		log.Debug().Str("booking_id", booking.ID).Str("event", t.event).Msg("booking changed concurrently")
	}

	return ok, nil
}

func (s *serviceImpl) apply(ctx context.Context, t transition) (model.Booking, bool, error) {
	updated, ok, err := s.repo.Transition(ctx, t.guard, t.change)
	if err != nil {
		log.Error().Err(err).Str("booking_id", t.guard.ID).Str("event", t.event).Msg("failed to transition booking")

		return updated, false, fmt.Errorf("failed to transition booking: %w", err)
	}

	if !ok {
		return updated, false, nil
	}

	log.Info().Str("booking_id", updated.ID).Str("status", updated.Status).Str("payment_status", updated.PaymentStatus).Str("event", t.event).Msg("booking transitioned")

	s.dispatch(ctx, updated, t.event, t.audience)

	return updated, true, nil
}

// dispatch notifies the parties and the admins once each. Failures are logged
// and never undo the write.
func (s *serviceImpl) dispatch(ctx context.Context, booking model.Booking, event string, audience notificationModel.Audience) {
	c := context.WithoutCancel(ctx)
	subject := dto.Subject(booking)

	if err := s.notifications.NotifyParties(c, subject, event, audience); err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Str("event", event).Msg("failed to notify booking parties")
	}

	if err := s.notifications.NotifyAdmins(c, notificationDto.NewAdminNotice(event, subject)); err != nil {
		log.Error().Err(err).Str("booking_id", booking.ID).Str("event", event).Msg("failed to notify admins")
	}
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func invalidTransition(booking model.Booking, target string) error {
	msg := fmt.Sprintf("booking %s is %s and cannot become %s", booking.Number, booking.Status, target)

	return failure.New(http.StatusConflict, failure.ReasonInvalidTransition, "status", msg) // nolint:wrapcheck
}

func invalidPayment(booking model.Booking, target string) error {
	msg := fmt.Sprintf("booking %s is %s with payment %s, payment cannot become %s", booking.Number, booking.Status, booking.PaymentStatus, target)

	return failure.New(http.StatusConflict, failure.ReasonInvalidTransition, "payment_status", msg) // nolint:wrapcheck
}
