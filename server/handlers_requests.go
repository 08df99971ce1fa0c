package server

import (
	"net/http"

	"github.com/FrumiousOwl/Teses-front-sub000/models"
	requestservice "github.com/FrumiousOwl/Teses-front-sub000/services/request"
	"github.com/FrumiousOwl/Teses-front-sub000/utils"
)

func (srv *Server) handleRequestList(w http.ResponseWriter, r *http.Request) {
	if err := srv.Requests.Load(r.Context()); err != nil {
		respondServiceError(w, err, "failed to load hardware requests")
		return
	}

	q := r.URL.Query()
	srv.Requests.ClearFilters()
	srv.Requests.SetRequesterFilter(q.Get("requester"))
	srv.Requests.SetDepartmentFilter(q.Get("department"))
	srv.Requests.SetDateFilter(q.Get("date"))
	if order, ok := sortParam(q); ok {
		srv.Requests.SetRecencySort(order)
	}
	srv.Requests.SetPage(pageParam(q))

	payload := listResponse[models.HardwareRequest](srv.Requests)
	payload.Filters = map[string]string{
		"requester":  srv.Requests.FilterTerm("requester"),
		"department": srv.Requests.FilterTerm("department"),
		"date":       srv.Requests.FilterTerm("date"),
	}
	utils.RespondJSON(w, http.StatusOK, payload)
}

func (srv *Server) handleRequestCreate(w http.ResponseWriter, r *http.Request) {
	var draft requestservice.RequestDraft
	if err := utils.ParseJSONBody(r, &draft); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request payload")
		return
	}

	srv.Requests.OpenCreate()
	srv.Requests.SetDraft(draft)
	if err := srv.Requests.SaveDraft(r.Context()); err != nil {
		srv.Requests.CloseModal()
		respondServiceError(w, err, "failed to create hardware request")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, listResponse[models.HardwareRequest](srv.Requests))
}

func (srv *Server) handleRequestUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request id")
		return
	}
	var draft requestservice.RequestDraft
	if err := utils.ParseJSONBody(r, &draft); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request payload")
		return
	}

	if err := srv.Requests.Load(r.Context()); err != nil {
		respondServiceError(w, err, "failed to load hardware requests")
		return
	}
	if err := srv.Requests.OpenEdit(id); err != nil {
		respondServiceError(w, err, "hardware request not found")
		return
	}
	srv.Requests.SetDraft(draft)
	if err := srv.Requests.SaveDraft(r.Context()); err != nil {
		srv.Requests.CloseModal()
		respondServiceError(w, err, "failed to update hardware request")
		return
	}
	utils.RespondJSON(w, http.StatusOK, listResponse[models.HardwareRequest](srv.Requests))
}

func (srv *Server) handleRequestDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request id")
		return
	}

	if err := srv.Requests.Load(r.Context()); err != nil {
		respondServiceError(w, err, "failed to load hardware requests")
		return
	}
	if err := srv.Requests.OpenDelete(id); err != nil {
		respondServiceError(w, err, "hardware request not found")
		return
	}
	if err := srv.Requests.ConfirmDelete(r.Context()); err != nil {
		srv.Requests.CloseModal()
		respondServiceError(w, err, "failed to delete hardware request")
		return
	}
	utils.RespondJSON(w, http.StatusOK, listResponse[models.HardwareRequest](srv.Requests))
}

type fulfillReq struct {
	Fulfilled bool `json:"fulfilled"`
}

func (srv *Server) handleRequestFulfill(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request id")
		return
	}
	var req fulfillReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid fulfill payload")
		return
	}

	if err := srv.Requests.Load(r.Context()); err != nil {
		respondServiceError(w, err, "failed to load hardware requests")
		return
	}
	if err := srv.Requests.SetFulfilled(r.Context(), id, req.Fulfilled); err != nil {
		respondServiceError(w, err, "failed to update fulfillment")
		return
	}
	utils.RespondJSON(w, http.StatusOK, listResponse[models.HardwareRequest](srv.Requests))
}
