package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"marketplace/config"
	"marketplace/infras/otel"
	"marketplace/internal/domains/setting/model"
	"marketplace/internal/domains/setting/model/dto"
	"marketplace/internal/domains/setting/repository"
	"marketplace/shared"
	"marketplace/shared/cache"
	"marketplace/shared/clock"
	"marketplace/shared/constant"
	"marketplace/shared/failure"
	"slices"
	"strconv"

	"github.com/rs/zerolog/log"
)

// Setting reads runtime overrides. Reads never fail the caller: a missing or
// unreadable value resolves to the supplied default.
type Setting interface {
	GetInt(ctx context.Context, key string, def int) int
	GetAll(ctx context.Context) ([]dto.SettingResponse, error)
	Set(ctx context.Context, key string, req dto.SetRequest) (dto.SettingResponse, error)
}

type serviceImpl struct {
	repo  repository.Setting
	cfg   *config.Config
	cache cache.RedisCache
	clock clock.Clock
	otel  otel.Otel
}

func New(repo repository.Setting, cfg *config.Config, cache cache.RedisCache, clk clock.Clock, otel otel.Otel) Setting {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		clock: clk,
		otel:  otel,
	}
}

func (s *serviceImpl) GetInt(ctx context.Context, key string, def int) int {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".setting.GetInt")
	defer scope.End()

	raw, err := s.value(ctx, key)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("key", key).Int("default", def).Msg("failed to read setting, using default")

		return def
	}

	if raw == constant.Empty {
		return def
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		log.Warn().Str("key", key).Str("value", raw).Int("default", def).Msg("invalid setting value, using default")

		return def
	}

	return value
}

// value returns the stored string for key, empty when the key is not set.
func (s *serviceImpl) value(ctx context.Context, key string) (string, error) {
	cacheKey := shared.BuildCacheKey(model.CacheKeyGet, key)

	var cached string
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return cached, nil
	}

	setting, err := s.repo.Get(ctx, key)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to get setting: %w", err)
	}

	if setting.Key == constant.Empty {
		return constant.Empty, nil
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, setting.Value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save setting to cache")
		}
	}()

	return setting.Value, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.SettingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".setting.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	settings, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return dto.FromModels(settings), nil
}

func (s *serviceImpl) Set(ctx context.Context, key string, req dto.SetRequest) (res dto.SettingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".setting.Set")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !slices.Contains(model.Known, key) {
		return res, failure.NotFound(fmt.Sprintf("unknown setting %s", key)) // nolint:wrapcheck
	}

	if value, convErr := strconv.Atoi(req.Value); convErr != nil || value <= 0 {
		return res, failure.BadRequestField("value", "value must be a positive whole number") // nolint:wrapcheck
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	setting, err := s.repo.Upsert(ctx, model.Setting{
		Key:       key,
		Value:     req.Value,
		UpdatedAt: s.clock.Now(),
		UpdatedBy: actor,
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to save setting")

		return res, fmt.Errorf("failed to save setting: %w", err)
	}

	log.Info().Str("key", key).Str("value", req.Value).Str("actor", actor).Msg("setting changed")

	res.FromModel(setting)

	return res, nil
}
