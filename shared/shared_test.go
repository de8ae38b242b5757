package shared_test

import (
	"context"
	"errors"
	"marketplace/shared"
	cacheMocks "marketplace/shared/cache/mocks"
	"marketplace/shared/constant"
	"marketplace/shared/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestTransformFields(t *testing.T) {
	type statusUpdate struct {
		Status string     `db:"status"`
		Reason string     `db:"cancellation_reason"`
		At     *time.Time `db:"cancelled_at"`
		Note   string
	}

	at := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		data     any
		expected map[string]any
	}{
		{
			name: "populated fields are kept",
			data: statusUpdate{Status: "cancelled", Reason: "no response", At: &at, Note: "ignored"},
			expected: map[string]any{
				"status":              "cancelled",
				"cancellation_reason": "no response",
				"cancelled_at":        &at,
			},
		},
		{
			name:     "zero values are skipped",
			data:     statusUpdate{},
			expected: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data, "system")

			assert.Equal(t, "system", result[constant.FieldModifiedBy])
			assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])

			delete(result, constant.FieldModifiedAt)
			delete(result, constant.FieldModifiedBy)

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("bk-1", "id", "bookings")

	assert.Equal(t, dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "id", Value: "bk-1", Operator: dto.FilterOperatorEq, Table: "bookings"},
		},
	}, result)
}

func TestAndEq(t *testing.T) {
	group := shared.And(
		shared.Eq("bookings", "id", "bk-1"),
		shared.Eq("bookings", "status", "pending"),
	)

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.id = :id AND bookings.status = :status)", where)
	assert.Equal(t, map[string]any{"id": "bk-1", "status": "pending"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get", shared.BuildCacheKey("booking:get"))
	assert.Equal(t, "booking:get:bk-1", shared.BuildCacheKey("booking:get", "bk-1"))
	assert.Equal(t, "limiter:10.0.0.1:curl", shared.BuildCacheKey("limiter", "10.0.0.1", "curl"))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "setting:get*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "setting:get")

	// failures are swallowed
	mockCache.EXPECT().Clear(gomock.Any(), "booking:get*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "booking:get")
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 101, limit: 10, expected: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}
