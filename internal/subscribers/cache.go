package subscribers

import (
	"context"
	"marketplace/infras/otel"
	accountModel "marketplace/internal/domains/account/model"
	bookingModel "marketplace/internal/domains/booking/model"
	settingModel "marketplace/internal/domains/setting/model"
	"marketplace/shared"
	"marketplace/shared/cache"
	"marketplace/shared/constant"
	"marketplace/shared/event"

	"github.com/rs/zerolog/log"
)

// cachedEntities maps an entity to the prefix of its cached single-row reads.
var cachedEntities = map[string]string{
	accountModel.EntityName: accountModel.CacheKeyGet,
	bookingModel.EntityName: bookingModel.CacheKeyGet,
	settingModel.EntityName: settingModel.CacheKeyGet,
}

type CacheInvalidator struct {
	cache cache.RedisCache
	otel  otel.Otel
}

func NewCacheInvalidator(redisCache cache.RedisCache, otel otel.Otel) *CacheInvalidator {
	return &CacheInvalidator{cache: redisCache, otel: otel}
}

// Register subscribes the invalidator to every cached entity on bus.
func (c *CacheInvalidator) Register(bus event.Bus) {
	for entity := range cachedEntities {
		bus.Subscribe(entity, c.Handle)
	}
}

func (c *CacheInvalidator) Handle(ctx context.Context, change event.Change) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".cache.Invalidate")
	defer scope.End()

	prefix, ok := cachedEntities[change.Entity]
	if !ok || change.ID == constant.Empty {
		return
	}

	key := shared.BuildCacheKey(prefix, change.ID)

	if err := c.cache.Delete(ctx, key); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Str("op", change.Op).Msg("failed to invalidate cache")

		return
	}

	log.Debug().Str("key", key).Str("op", change.Op).Msg("cache invalidated")
}
