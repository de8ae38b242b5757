package dto

import (
	"marketplace/shared/constant"
	"net/http"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"

	MaxLimit = 100
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// Sortable maps the sort_by values a listing accepts to the column they
// order by. SortBy ends up in raw SQL, so only mapped columns get through.
type Sortable map[string]string

// FromRequest reads page, limit and sorting from the query string. Page and
// limit default to the first page of DefaultValueLimit rows and limit is capped
// at MaxLimit. Unknown sort_by values fall back to the created_at column when
// the listing maps one.
func (q *QueryParams) FromRequest(r *http.Request, sortable Sortable) {
	query := r.URL.Query()

	q.Page = positiveInt(query.Get(constant.RequestParamPage), constant.DefaultValuePage)
	q.Limit = min(positiveInt(query.Get(constant.RequestParamLimit), constant.DefaultValueLimit), MaxLimit)

	column, ok := sortable[query.Get(constant.RequestParamSortBy)]
	if !ok {
		column, ok = sortable[constant.DefaultValueSortBy]
	}

	if !ok {
		return
	}

	q.SortBy = column
	q.SortDir = constant.DefaultValueSortDir

	if dir := strings.ToUpper(query.Get(constant.RequestParamSortDir)); dir == SortDirAsc || dir == SortDirDesc {
		q.SortDir = dir
	}
}

func positiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return fallback
	}

	return n
}
