package server

import (
	"net/http"

	"github.com/FrumiousOwl/Teses-front-sub000/models"
	hardwareservice "github.com/FrumiousOwl/Teses-front-sub000/services/hardware"
	"github.com/FrumiousOwl/Teses-front-sub000/utils"
)

func (srv *Server) handleAssetList(w http.ResponseWriter, r *http.Request) {
	srv.serveAssetList(w, r, srv.Hardware, "failed to load hardware assets")
}

func (srv *Server) handleDefectiveList(w http.ResponseWriter, r *http.Request) {
	srv.serveAssetList(w, r, srv.Defective, "failed to load defective assets")
}

func (srv *Server) handleLowStockList(w http.ResponseWriter, r *http.Request) {
	srv.serveAssetList(w, r, srv.LowStock, "failed to load low stock assets")
}

func (srv *Server) serveAssetList(w http.ResponseWriter, r *http.Request, svc hardwareservice.HardwareService, failMsg string) {
	if err := svc.Load(r.Context()); err != nil {
		respondServiceError(w, err, failMsg)
		return
	}

	// filter state is the query string, nothing lingers from earlier requests
	q := r.URL.Query()
	svc.ClearFilters()
	svc.SetNameFilter(q.Get("name"))
	svc.SetSupplierFilter(q.Get("supplier"))
	svc.SetDateFilter(q.Get("date"))
	svc.SetPage(pageParam(q))

	payload := listResponse[models.HardwareAsset](svc)
	payload.Filters = map[string]string{
		"name":     svc.FilterTerm("name"),
		"supplier": svc.FilterTerm("supplier"),
		"date":     svc.FilterTerm("date"),
	}
	utils.RespondJSON(w, http.StatusOK, payload)
}

func (srv *Server) handleAssetCreate(w http.ResponseWriter, r *http.Request) {
	var draft hardwareservice.HardwareDraft
	if err := utils.ParseJSONBody(r, &draft); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid asset payload")
		return
	}

	srv.Hardware.OpenCreate()
	srv.Hardware.SetDraft(draft)
	if err := srv.Hardware.SaveDraft(r.Context()); err != nil {
		srv.Hardware.CloseModal()
		respondServiceError(w, err, "failed to create hardware asset")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, listResponse[models.HardwareAsset](srv.Hardware))
}

func (srv *Server) handleAssetUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid asset id")
		return
	}
	var draft hardwareservice.HardwareDraft
	if err := utils.ParseJSONBody(r, &draft); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid asset payload")
		return
	}

	if err := srv.Hardware.Load(r.Context()); err != nil {
		respondServiceError(w, err, "failed to load hardware assets")
		return
	}
	if err := srv.Hardware.OpenEdit(id); err != nil {
		respondServiceError(w, err, "hardware asset not found")
		return
	}
	srv.Hardware.SetDraft(draft)
	if err := srv.Hardware.SaveDraft(r.Context()); err != nil {
		srv.Hardware.CloseModal()
		respondServiceError(w, err, "failed to update hardware asset")
		return
	}
	utils.RespondJSON(w, http.StatusOK, listResponse[models.HardwareAsset](srv.Hardware))
}

func (srv *Server) handleAssetDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid asset id")
		return
	}

	if err := srv.Hardware.Load(r.Context()); err != nil {
		respondServiceError(w, err, "failed to load hardware assets")
		return
	}
	if err := srv.Hardware.OpenDelete(id); err != nil {
		respondServiceError(w, err, "hardware asset not found")
		return
	}
	if err := srv.Hardware.ConfirmDelete(r.Context()); err != nil {
		srv.Hardware.CloseModal()
		respondServiceError(w, err, "failed to delete hardware asset")
		return
	}
	utils.RespondJSON(w, http.StatusOK, listResponse[models.HardwareAsset](srv.Hardware))
}

type counterReq struct {
	Field hardwareservice.CounterField `json:"field"`
	Delta int                          `json:"delta"`
}

func (srv *Server) handleAssetCounter(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid asset id")
		return
	}
	var req counterReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid counter payload")
		return
	}

	if err := srv.Hardware.Load(r.Context()); err != nil {
		respondServiceError(w, err, "failed to load hardware assets")
		return
	}
	if err := srv.Hardware.AdjustCounter(r.Context(), id, req.Field, req.Delta); err != nil {
		respondServiceError(w, err, "failed to adjust counter")
		return
	}
	utils.RespondJSON(w, http.StatusOK, listResponse[models.HardwareAsset](srv.Hardware))
}
