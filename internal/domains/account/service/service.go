package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"marketplace/config"
	"marketplace/infras/otel"
	"marketplace/internal/domains/account/model"
	"marketplace/internal/domains/account/model/dto"
	"marketplace/internal/domains/account/repository"
	"marketplace/shared"
	"marketplace/shared/cache"
	"marketplace/shared/clock"
	"marketplace/shared/constant"
	gDto "marketplace/shared/dto"
	"marketplace/shared/failure"

	"github.com/rs/zerolog/log"
)

// OpenBookings counts bookings that are neither completed nor cancelled for
// an account on either side.
type OpenBookings interface {
	CountOpen(ctx context.Context, accountID string) (int, error)
}

type Account interface {
	Get(ctx context.Context, id string) (dto.AccountResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAccountsResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (dto.AccountResponse, error)
	RegisterPushToken(ctx context.Context, id, token string) error
	Delete(ctx context.Context, id string) error
	Recipients(ctx context.Context, ids ...string) ([]dto.Recipient, error)
	ResolveAdminRecipients(ctx context.Context) ([]dto.Recipient, error)
}

type serviceImpl struct {
	repo     repository.Account
	bookings OpenBookings
	cfg      *config.Config
	cache    cache.RedisCache
	clock    clock.Clock
	otel     otel.Otel
}

func New(repo repository.Account, bookings OpenBookings, cfg *config.Config, cache cache.RedisCache, clk clock.Clock, otel otel.Otel) Account {
	return &serviceImpl{
		repo:     repo,
		bookings: bookings,
		cfg:      cfg,
		cache:    cache,
		clock:    clk,
		otel:     otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AccountResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".account.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(model.CacheKeyGet, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for account")

		return res, nil
	}

	account, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get account")

		return res, fmt.Errorf("failed to get account: %w", err)
	}

	if account.ID == constant.Empty {
		return res, failure.NotFound("account not found") // nolint:wrapcheck
	}

	res.FromModel(account)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save account to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAccountsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".account.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count accounts")

		return res, fmt.Errorf("failed to count accounts: %w", err)
	}

	accounts, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get accounts")

		return res, fmt.Errorf("failed to get accounts: %w", err)
	}

	res.FromModels(accounts, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (res dto.AccountResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".account.UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	mod := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: s.clock.Now(),
		constant.FieldModifiedBy: actor,
	}

	if req.Active != nil {
		mod[model.FieldActive] = *req.Active
	}

	account, ok, err := s.repo.Update(ctx, id, mod)
	if err != nil {
		log.Error().Err(err).Msg("failed to update account status")

		return res, fmt.Errorf("failed to update account status: %w", err)
	}

	if !ok {
		return res, failure.NotFound("account not found") // nolint:wrapcheck
	}

	res.FromModel(account)

	return res, nil
}

// RegisterPushToken stores the device token of an account. An empty token
// clears the registration.
func (s *serviceImpl) RegisterPushToken(ctx context.Context, id, token string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".account.RegisterPushToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var value *string
	if token != constant.Empty {
		value = &token
	}

	mod := map[string]any{
		model.FieldPushToken:     value,
		constant.FieldModifiedAt: s.clock.Now(),
		constant.FieldModifiedBy: id,
	}

	_, ok, err := s.repo.Update(ctx, id, mod)
	if err != nil {
		log.Error().Err(err).Msg("failed to register push token")

		return fmt.Errorf("failed to register push token: %w", err)
	}

	if !ok {
		return failure.NotFound("account not found") // nolint:wrapcheck
	}

	return nil
}

// Delete removes an account that has no booking still in flight.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".account.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	open, err := s.bookings.CountOpen(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to count open bookings")

		return fmt.Errorf("failed to count open bookings: %w", err)
	}

	if open > 0 {
		return failure.Conflict(fmt.Sprintf("account has %d booking(s) still in progress", open)) // nolint:wrapcheck
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete account")

		return fmt.Errorf("failed to delete account: %w", err)
	}

	if deleted == 0 {
		return failure.NotFound("account not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Recipients(ctx context.Context, ids ...string) (res []dto.Recipient, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".account.Recipients")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	accounts, err := s.repo.ListByIDs(ctx, ids)
	if err != nil {
		log.Error().Err(err).Msg("failed to list recipients")

		return nil, fmt.Errorf("failed to list recipients: %w", err)
	}

	return dto.RecipientsFromModels(accounts), nil
}

func (s *serviceImpl) ResolveAdminRecipients(ctx context.Context) (res []dto.Recipient, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".account.ResolveAdminRecipients")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	accounts, err := s.repo.ListAdminRecipients(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve admin recipients")

		return nil, fmt.Errorf("failed to resolve admin recipients: %w", err)
	}

	return dto.RecipientsFromModels(accounts), nil
}
