package server

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/FrumiousOwl/Teses-front-sub000/export"
	"github.com/FrumiousOwl/Teses-front-sub000/models"
	"github.com/FrumiousOwl/Teses-front-sub000/services"
	"github.com/FrumiousOwl/Teses-front-sub000/utils"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

func (srv *Server) handleAnomalyList(w http.ResponseWriter, r *http.Request) {
	if err := srv.Anomalies.Load(r.Context()); err != nil {
		respondServiceError(w, err, "failed to load anomaly logs")
		return
	}

	q := r.URL.Query()
	srv.Anomalies.ClearFilters()
	srv.Anomalies.SetTextFilter(q.Get("q"))
	srv.Anomalies.SetDateFilter(q.Get("date"))
	if order, ok := sortParam(q); ok {
		srv.Anomalies.SetFlaggedSort(order)
	}
	srv.Anomalies.SetPage(pageParam(q))

	payload := listResponse[models.AnomalyLog](srv.Anomalies)
	payload.Filters = map[string]string{
		"q":    srv.Anomalies.FilterTerm("text"),
		"date": srv.Anomalies.FilterTerm("date"),
	}
	utils.RespondJSON(w, http.StatusOK, payload)
}

// handleReport exports the named view's current filtered set. The file is
// written to the export dir first, same as the desktop download flow, then
// streamed out with a per-download name.
func (srv *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	report, name, err := srv.buildReport(r)
	if err != nil {
		respondServiceError(w, err, "failed to build report")
		return
	}

	format := chi.URLParam(r, "format")
	path := filepath.Join(srv.exportDir, export.FileName(name, format))

	switch format {
	case "xlsx":
		err = export.WriteExcel(path, report)
	case "pdf":
		err = export.WritePDF(path, report)
	default:
		utils.RespondError(w, http.StatusBadRequest, nil, "unknown report format")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to write report file")
		return
	}
	defer os.Remove(path)

	w.Header().Set("Content-Disposition", `attachment; filename="`+filepath.Base(path)+`"`)
	http.ServeFile(w, r, path)
}

func (srv *Server) buildReport(r *http.Request) (export.Report, string, error) {
	ctx := r.Context()

	switch view := chi.URLParam(r, "view"); view {
	case "assets":
		if err := srv.Hardware.Load(ctx); err != nil {
			return export.Report{}, "", err
		}
		return export.AssetReport(srv.Hardware.Filtered()), "hardware-inventory", nil
	case "defective":
		if err := srv.Defective.Load(ctx); err != nil {
			return export.Report{}, "", err
		}
		return export.AssetReport(srv.Defective.Filtered()), "defective-assets", nil
	case "low-stock":
		if err := srv.LowStock.Load(ctx); err != nil {
			return export.Report{}, "", err
		}
		return export.AssetReport(srv.LowStock.Filtered()), "low-stock-assets", nil
	case "requests":
		if err := srv.Requests.Load(ctx); err != nil {
			return export.Report{}, "", err
		}
		return export.RequestReport(srv.Requests.Filtered()), "srrf-tickets", nil
	case "users":
		if err := srv.Users.Load(ctx); err != nil {
			return export.Report{}, "", err
		}
		return export.UserReport(srv.Users.Filtered()), "user-accounts", nil
	case "anomalies":
		if err := srv.Anomalies.Load(ctx); err != nil {
			return export.Report{}, "", err
		}
		return export.AnomalyReport(srv.Anomalies.Filtered()), "anomaly-logs", nil
	default:
		return export.Report{}, "", errors.Wrapf(services.ErrNotFound, "unknown report view %q", view)
	}
}
