package subscribers_test

import (
	"context"
	"errors"
	"marketplace/infras/otel/mocks"
	"marketplace/internal/subscribers"
	cacheMocks "marketplace/shared/cache/mocks"
	"marketplace/shared/event"
	"testing"

	"go.uber.org/mock/gomock"
)

func TestCacheInvalidator(t *testing.T) {
	tests := []struct {
		name      string
		change    event.Change
		setupMock func(c *cacheMocks.MockRedisCache)
	}{
		{
			name:   "booking update",
			change: event.Change{Entity: "booking", ID: "bk-1", Op: event.OpUpdate},
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Delete(gomock.Any(), "booking:get:bk-1").Return(nil)
			},
		},
		{
			name:   "account delete",
			change: event.Change{Entity: "account", ID: "acc-1", Op: event.OpDelete},
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Delete(gomock.Any(), "account:get:acc-1").Return(nil)
			},
		},
		{
			name:   "setting update with cache failure",
			change: event.Change{Entity: "setting", ID: "booking.payment_timeout_minutes", Op: event.OpUpdate},
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Delete(gomock.Any(), "setting:get:booking.payment_timeout_minutes").Return(errors.New("redis down"))
			},
		},
		{
			name:      "uncached entity",
			change:    event.Change{Entity: "notification", ID: "n-1", Op: event.OpInsert},
			setupMock: func(*cacheMocks.MockRedisCache) {},
		},
		{
			name:      "change without id",
			change:    event.Change{Entity: "booking", Op: event.OpUpdate},
			setupMock: func(*cacheMocks.MockRedisCache) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			redisCache := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(redisCache)

			bus := event.NewBus()
			subscribers.NewCacheInvalidator(redisCache, mocks.NewOtel()).Register(bus)

			bus.Publish(context.Background(), tt.change)
			event.Wait(bus)
		})
	}
}
