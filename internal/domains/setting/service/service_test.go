package service_test

import (
	"context"
	"errors"
	"marketplace/config"
	"marketplace/infras/otel/mocks"
	settingMocks "marketplace/internal/domains/setting/mocks"
	"marketplace/internal/domains/setting/model"
	"marketplace/internal/domains/setting/model/dto"
	"marketplace/internal/domains/setting/service"
	"marketplace/shared/cache"
	cacheMocks "marketplace/shared/cache/mocks"
	"marketplace/shared/clock"
	"marketplace/shared/constant"
	"marketplace/shared/failure"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

type deps struct {
	repo  *settingMocks.MockSetting
	cache *cacheMocks.MockRedisCache
}

func newService(t *testing.T) (service.Setting, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		repo:  settingMocks.NewMockSetting(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	return service.New(d.repo, &config.Config{}, d.cache, clock.Fake(now), mocks.NewOtel()), d
}

func TestSettingService_GetInt(t *testing.T) {
	key := model.KeyAcceptanceTimeoutMinutes

	tests := []struct {
		name      string
		setupMock func(d deps)
		want      int
	}{
		{
			name: "cached value",
			setupMock: func(d deps) {
				d.cache.EXPECT().Get(gomock.Any(), "setting:get:"+key, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*(value.(*string)) = "45"

						return nil
					})
			},
			want: 45,
		},
		{
			name: "stored value on cache miss",
			setupMock: func(d deps) {
				d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				d.repo.EXPECT().Get(gomock.Any(), key).Return(model.Setting{Key: key, Value: "20"}, nil)
				d.cache.EXPECT().Save(gomock.Any(), "setting:get:"+key, "20", gomock.Any()).Return(nil).AnyTimes()
			},
			want: 20,
		},
		{
			name: "missing key falls back",
			setupMock: func(d deps) {
				d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				d.repo.EXPECT().Get(gomock.Any(), key).Return(model.Setting{}, nil)
			},
			want: 30,
		},
		{
			name: "store error falls back",
			setupMock: func(d deps) {
				d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				d.repo.EXPECT().Get(gomock.Any(), key).Return(model.Setting{}, errors.New("database error"))
			},
			want: 30,
		},
		{
			name: "garbage value falls back",
			setupMock: func(d deps) {
				d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*(value.(*string)) = "soon"

						return nil
					})
			},
			want: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			tt.setupMock(d)

			assert.Equal(t, tt.want, svc.GetInt(context.Background(), key, 30))
		})
	}
}

func TestSettingService_Set(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		setupMock func(d deps)
		wantCode  int
		wantErr   bool
	}{
		{
			name:  "success",
			key:   model.KeyPaymentTimeoutMinutes,
			value: "10",
			setupMock: func(d deps) {
				d.repo.EXPECT().
					Upsert(gomock.Any(), model.Setting{Key: model.KeyPaymentTimeoutMinutes, Value: "10", UpdatedAt: now, UpdatedBy: "admin-1"}).
					DoAndReturn(func(_ context.Context, setting model.Setting) (model.Setting, error) {
						return setting, nil
					})
			},
		},
		{
			name:      "unknown key",
			key:       "booking.anything",
			value:     "10",
			setupMock: func(deps) {},
			wantCode:  http.StatusNotFound,
			wantErr:   true,
		},
		{
			name:      "non positive value",
			key:       model.KeyPaymentTimeoutMinutes,
			value:     "0",
			setupMock: func(deps) {},
			wantCode:  http.StatusBadRequest,
			wantErr:   true,
		},
		{
			name:  "store error",
			key:   model.KeyAcceptanceTimeoutMinutes,
			value: "15",
			setupMock: func(d deps) {
				d.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(model.Setting{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			tt.setupMock(d)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")

			res, err := svc.Set(ctx, tt.key, dto.SetRequest{Value: tt.value})

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.value, res.Value)
			assert.Equal(t, "admin-1", res.UpdatedBy)
		})
	}
}
