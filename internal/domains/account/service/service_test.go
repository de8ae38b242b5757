package service_test

import (
	"context"
	"errors"
	"marketplace/config"
	"marketplace/infras/otel/mocks"
	accountMocks "marketplace/internal/domains/account/mocks"
	"marketplace/internal/domains/account/model"
	"marketplace/internal/domains/account/model/dto"
	"marketplace/internal/domains/account/service"
	serviceMocks "marketplace/internal/domains/account/service/mocks"
	cacheMocks "marketplace/shared/cache/mocks"
	"marketplace/shared/clock"
	"marketplace/shared/failure"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

type deps struct {
	repo     *accountMocks.MockAccount
	bookings *serviceMocks.MockOpenBookings
	cache    *cacheMocks.MockRedisCache
}

func newService(t *testing.T) (service.Account, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		repo:     accountMocks.NewMockAccount(ctrl),
		bookings: serviceMocks.NewMockOpenBookings(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(d.repo, d.bookings, cfg, d.cache, clock.Fake(now), mocks.NewOtel()), d
}

func token(v string) *string {
	return &v
}

func TestAccountService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(d deps)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "loads from the store on cache miss",
			setupMock: func(d deps) {
				d.cache.EXPECT().Get(gomock.Any(), "account:get:acc-1", gomock.Any()).Return(errors.New("cache miss"))
				d.repo.EXPECT().Get(gomock.Any(), "acc-1").Return(model.Account{ID: "acc-1", Name: "Rina", PushToken: token("t")}, nil)
				d.cache.EXPECT().Save(gomock.Any(), "account:get:acc-1", gomock.Any(), 3600).Return(nil).AnyTimes()
			},
		},
		{
			name: "cache hit",
			setupMock: func(d deps) {
				d.cache.EXPECT().Get(gomock.Any(), "account:get:acc-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res, _ := value.(*dto.AccountResponse)
						res.ID = "acc-1"
						res.Name = "Rina"
						res.PushEnabled = true

						return nil
					})
			},
		},
		{
			name: "not found",
			setupMock: func(d deps) {
				d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				d.repo.EXPECT().Get(gomock.Any(), "acc-1").Return(model.Account{}, nil)
			},
			wantCode: http.StatusNotFound,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			tt.setupMock(d)

			res, err := svc.Get(context.Background(), "acc-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "acc-1", res.ID)
			assert.Equal(t, "Rina", res.Name)
			assert.True(t, res.PushEnabled)
		})
	}
}

func TestAccountService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(d deps)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "deletes an account without open bookings",
			setupMock: func(d deps) {
				d.bookings.EXPECT().CountOpen(gomock.Any(), "acc-1").Return(0, nil)
				d.repo.EXPECT().Delete(gomock.Any(), "acc-1").Return(int64(1), nil)
			},
		},
		{
			name: "rejects while bookings are in flight",
			setupMock: func(d deps) {
				d.bookings.EXPECT().CountOpen(gomock.Any(), "acc-1").Return(2, nil)
			},
			wantCode: http.StatusConflict,
			wantErr:  true,
		},
		{
			name: "unknown account",
			setupMock: func(d deps) {
				d.bookings.EXPECT().CountOpen(gomock.Any(), "acc-1").Return(0, nil)
				d.repo.EXPECT().Delete(gomock.Any(), "acc-1").Return(int64(0), nil)
			},
			wantCode: http.StatusNotFound,
			wantErr:  true,
		},
		{
			name: "count error",
			setupMock: func(d deps) {
				d.bookings.EXPECT().CountOpen(gomock.Any(), "acc-1").Return(0, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)
			tt.setupMock(d)

			err := svc.Delete(context.Background(), "acc-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestAccountService_RegisterPushToken(t *testing.T) {
	svc, d := newService(t)

	d.repo.EXPECT().
		Update(gomock.Any(), "acc-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, mod map[string]any) (model.Account, bool, error) {
			value, _ := mod[model.FieldPushToken].(*string)
			assert.Equal(t, "device", *value)
			assert.Equal(t, now, mod["modified_at"])

			return model.Account{ID: "acc-1"}, true, nil
		})

	assert.NoError(t, svc.RegisterPushToken(context.Background(), "acc-1", "device"))

	d.repo.EXPECT().
		Update(gomock.Any(), "acc-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, mod map[string]any) (model.Account, bool, error) {
			value, _ := mod[model.FieldPushToken].(*string)
			assert.Nil(t, value)

			return model.Account{}, false, nil
		})

	err := svc.RegisterPushToken(context.Background(), "acc-1", "")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestAccountService_UpdateStatus(t *testing.T) {
	svc, d := newService(t)
	active := false

	d.repo.EXPECT().
		Update(gomock.Any(), "acc-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, mod map[string]any) (model.Account, bool, error) {
			assert.Equal(t, model.StatusSuspended, mod[model.FieldStatus])
			assert.Equal(t, false, mod[model.FieldActive])

			return model.Account{ID: "acc-1", Status: model.StatusSuspended}, true, nil
		})

	res, err := svc.UpdateStatus(context.Background(), "acc-1", dto.UpdateStatusRequest{Status: model.StatusSuspended, Active: &active})

	assert.NoError(t, err)
	assert.Equal(t, model.StatusSuspended, res.Status)
}

func TestAccountService_Recipients(t *testing.T) {
	svc, d := newService(t)

	d.repo.EXPECT().
		ListByIDs(gomock.Any(), []string{"c-1", "p-1"}).
		Return([]model.Account{{ID: "c-1", PushToken: token("tc")}, {ID: "p-1"}}, nil)

	recipients, err := svc.Recipients(context.Background(), "c-1", "p-1")

	assert.NoError(t, err)
	assert.Equal(t, []dto.Recipient{{AccountID: "c-1", PushToken: "tc"}, {AccountID: "p-1"}}, recipients)

	d.repo.EXPECT().ListAdminRecipients(gomock.Any()).Return([]model.Account{{ID: "adm-1", Name: "Ops", PushToken: token("ta")}}, nil)

	admins, err := svc.ResolveAdminRecipients(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []dto.Recipient{{AccountID: "adm-1", Name: "Ops", PushToken: "ta"}}, admins)
}
