package server

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/FrumiousOwl/Teses-front-sub000/apiclient"
	"github.com/FrumiousOwl/Teses-front-sub000/listview"
	"github.com/FrumiousOwl/Teses-front-sub000/services"
	"github.com/FrumiousOwl/Teses-front-sub000/utils"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

// listPayload is the common envelope every list view renders from. Filters
// echoes the active terms so the view re-renders its inputs from state.
type listPayload[T any] struct {
	Items         []T               `json:"items"`
	Filters       map[string]string `json:"filters"`
	Page          int               `json:"page"`
	PageCount     int               `json:"pageCount"`
	FilteredCount int               `json:"filteredCount"`
	TotalCount    int               `json:"totalCount"`
	State         listview.State    `json:"state"`
}

type pageable[T any] interface {
	Page() []T
	PageIndex() int
	PageCount() int
	FilteredCount() int
	TotalCount() int
	State() listview.State
}

func listResponse[T any](svc pageable[T]) listPayload[T] {
	return listPayload[T]{
		Items:         svc.Page(),
		Page:          svc.PageIndex(),
		PageCount:     svc.PageCount(),
		FilteredCount: svc.FilteredCount(),
		TotalCount:    svc.TotalCount(),
		State:         svc.State(),
	}
}

// sortParam maps the optional ?sort= value onto a sort order. An absent or
// unrecognized value leaves the view's current order alone, so refreshes are
// idempotent.
func sortParam(q url.Values) (listview.SortOrder, bool) {
	switch q.Get("sort") {
	case "asc":
		return listview.SortAscending, true
	case "desc":
		return listview.SortDescending, true
	case "none":
		return listview.SortNone, true
	}
	return listview.SortNone, false
}

func pageParam(q url.Values) int {
	n, err := strconv.Atoi(q.Get("page"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func idParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// respondServiceError maps the shared view-service sentinels onto shell
// status codes; unrecognized upstream failures surface as a bad gateway.
func respondServiceError(w http.ResponseWriter, err error, msg string) {
	var apiErr *apiclient.APIError

	switch {
	case errors.Is(err, services.ErrValidation):
		utils.RespondError(w, http.StatusBadRequest, err, msg)
	case errors.Is(err, services.ErrCounterBound):
		utils.RespondError(w, http.StatusConflict, err, msg)
	case errors.Is(err, services.ErrNoModal):
		utils.RespondError(w, http.StatusConflict, err, msg)
	case errors.Is(err, services.ErrNotFound):
		utils.RespondError(w, http.StatusNotFound, err, msg)
	case errors.As(err, &apiErr) && apiErr.StatusCode > 0:
		utils.RespondError(w, apiErr.StatusCode, err, msg)
	default:
		utils.RespondError(w, http.StatusBadGateway, err, msg)
	}
}
