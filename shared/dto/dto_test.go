package dto_test

import (
	"marketplace/shared/constant"
	"marketplace/shared/dto"
	"marketplace/shared/model"
	"marketplace/shared/timezone"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		source   model.Metadata
		expected dto.Metadata
	}{
		{
			name:   "modified record",
			source: model.Metadata{CreatedAt: createdAt, ModifiedAt: modifiedAt, CreatedBy: "creator", ModifiedBy: "modifier"},
			expected: dto.Metadata{
				CreatedAt:  timezone.Format(createdAt, constant.DateFormat),
				ModifiedAt: timezone.Format(modifiedAt, constant.DateFormat),
				CreatedBy:  "creator",
				ModifiedBy: "modifier",
			},
		},
		{
			name:     "never modified",
			source:   model.Metadata{CreatedAt: createdAt, CreatedBy: "system"},
			expected: dto.Metadata{CreatedAt: timezone.Format(createdAt, constant.DateFormat), CreatedBy: "system"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metadata := dto.Metadata{ModifiedAt: "stale"}
			metadata.FromModel(tt.source)

			assert.Equal(t, tt.expected, metadata)
		})
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	sortable := dto.Sortable{
		"created_at": "bookings.created_at",
		"start":      "bookings.scheduled_start",
	}

	tests := []struct {
		name     string
		query    map[string]string
		sortable dto.Sortable
		expected dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    map[string]string{"page": "2", "limit": "20", "sort_by": "start", "sort_dir": "asc"},
			sortable: sortable,
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "bookings.scheduled_start", SortDir: "ASC"},
		},
		{
			name:     "defaults",
			query:    map[string]string{},
			sortable: sortable,
			expected: dto.QueryParams{Page: 1, Limit: 10, SortBy: "bookings.created_at", SortDir: "DESC"},
		},
		{
			name:     "invalid numbers fall back",
			query:    map[string]string{"page": "-1", "limit": "abc"},
			sortable: sortable,
			expected: dto.QueryParams{Page: 1, Limit: 10, SortBy: "bookings.created_at", SortDir: "DESC"},
		},
		{
			name:     "limit is capped",
			query:    map[string]string{"limit": "5000"},
			sortable: sortable,
			expected: dto.QueryParams{Page: 1, Limit: dto.MaxLimit, SortBy: "bookings.created_at", SortDir: "DESC"},
		},
		{
			name:     "unmapped column is ignored",
			query:    map[string]string{"sort_by": "id; DROP TABLE bookings", "sort_dir": "sideways"},
			sortable: sortable,
			expected: dto.QueryParams{Page: 1, Limit: 10, SortBy: "bookings.created_at", SortDir: "DESC"},
		},
		{
			name:     "no sortable columns",
			query:    map[string]string{"sort_by": "created_at"},
			sortable: nil,
			expected: dto.QueryParams{Page: 1, Limit: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.query {
				values.Set(key, value)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			params := dto.QueryParams{}
			params.FromRequest(req, tt.sortable)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	cutoff := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq with table",
			filter:    dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq, Table: "bookings"},
			wantWhere: "bookings.status = :status",
			wantArgs:  map[string]any{"status": "pending"},
		},
		{
			name:      "strictly greater with arg name",
			filter:    dto.Filter{ArgName: "now", Field: "expires_at", Value: cutoff, Operator: dto.FilterOperatorGreater},
			wantWhere: "expires_at > :now",
			wantArgs:  map[string]any{"now": cutoff},
		},
		{
			name:      "strictly less",
			filter:    dto.Filter{Field: "created_at", Value: cutoff, Operator: dto.FilterOperatorLess},
			wantWhere: "created_at < :created_at",
			wantArgs:  map[string]any{"created_at": cutoff},
		},
		{
			name:      "less or equal",
			filter:    dto.Filter{Field: "scheduled_end", Value: cutoff, Operator: dto.FilterOperatorLessEq, Table: "bookings"},
			wantWhere: "bookings.scheduled_end <= :scheduled_end",
			wantArgs:  map[string]any{"scheduled_end": cutoff},
		},
		{
			name:      "in expands named args",
			filter:    dto.Filter{Field: "id", Value: []string{"a", "b"}, Operator: dto.FilterOperatorIn},
			wantWhere: "id IN (:id_0, :id_1)",
			wantArgs:  map[string]any{"id_0": "a", "id_1": "b"},
		},
		{
			name:      "in with a single value",
			filter:    dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorIn, Table: "bookings"},
			wantWhere: "bookings.status IN (:status_0)",
			wantArgs:  map[string]any{"status_0": "pending"},
		},
		{
			name:      "in with no values matches nothing",
			filter:    dto.Filter{Field: "id", Value: []string{}, Operator: dto.FilterOperatorIn},
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "like",
			filter:    dto.Filter{Field: "name", Value: "Ani", Operator: dto.FilterOperatorLike},
			wantWhere: "LOWER(name) LIKE LOWER(:name)",
			wantArgs:  map[string]any{"name": "%Ani%"},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "name", Value: "x", Operator: "plan"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "cancelled_at", Operator: dto.FilterIsNull},
			wantWhere: "cancelled_at IS NULL",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_Nested(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "phone", Value: "+6281234567890", Operator: dto.FilterOperatorEq},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "client_id", Value: "acc-1", Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "provider_id", Value: "acc-1", Operator: dto.FilterOperatorEq},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(phone = :phone AND (client_id = :client_id OR provider_id = :provider_id))", where)
	assert.Len(t, args, 3)
}

func TestFilterGroup_SkipsEmptyMembers(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.FilterGroup{Operator: dto.FilterGroupOperatorOr},
			dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
			"not a filter",
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(status = :status)", where)
	assert.Equal(t, map[string]any{"status": "pending"}, args)

	empty := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}
	where, _ = empty.GetWhereClause()

	assert.Empty(t, where)
}
