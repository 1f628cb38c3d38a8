package handlers

import (
	"net/http"
	"strconv"

	"github.com/Deep6432/Blinkrloan-Dashboard/src/models"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/processors"
	"github.com/Deep6432/Blinkrloan-Dashboard/src/utils"
)

// parseFilterSpec reads the shared dashboard filter parameters. Malformed
// dates are treated as unset; the filter pipeline only applies the date
// bound when both ends parsed.
func parseFilterSpec(r *http.Request) models.FilterSpec {
	q := r.URL.Query()

	spec := models.FilterSpec{
		DateType:      q.Get("date_type"),
		ClosingStatus: q.Get("closing_status"),
		DPD:           q.Get("dpd"),
		State:         q.Get("state"),
		City:          q.Get("city"),
	}
	if spec.DateType == "" {
		spec.DateType = models.DateTypeRepayment
	}
	if from, ok := utils.ParseQueryDate(q.Get("date_from")); ok {
		spec.DateFrom = from
	}
	if to, ok := utils.ParseQueryDate(q.Get("date_to")); ok {
		spec.DateTo = to
	}
	return spec
}

// parseDetailQuery reads the search/sort/pagination parameters of the detail
// list endpoints. Sort defaults differ per endpoint.
func parseDetailQuery(r *http.Request, defaultSortBy, defaultSortOrder string) processors.DetailQuery {
	q := r.URL.Query()

	dq := processors.DetailQuery{
		Search:    q.Get("search"),
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
		Page:      1,
		PerPage:   20,
	}
	if dq.SortBy == "" {
		dq.SortBy = defaultSortBy
	}
	if dq.SortOrder == "" {
		dq.SortOrder = defaultSortOrder
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		dq.Page = page
	}
	if perPage, err := strconv.Atoi(q.Get("per_page")); err == nil && perPage > 0 {
		dq.PerPage = perPage
	}
	return dq
}
