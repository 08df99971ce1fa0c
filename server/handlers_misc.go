package server

import (
	"net/http"

	"github.com/FrumiousOwl/Teses-front-sub000/models"
	"github.com/FrumiousOwl/Teses-front-sub000/navigation"
	"github.com/FrumiousOwl/Teses-front-sub000/utils"
)

type loginReq struct {
	Credential string `json:"credential"`
}

type sessionPayload struct {
	DisplayName   string      `json:"displayName"`
	Role          models.Role `json:"role"`
	Authenticated bool        `json:"authenticated"`
}

func (srv *Server) handleLoginView(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]bool{
		"authenticated": srv.Session.HasCredential(),
	})
}

// handleLogin stores whatever credential was submitted; the inventory API
// rejects bad tokens on their first use, not here.
func (srv *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid login payload")
		return
	}
	if req.Credential == "" {
		utils.RespondError(w, http.StatusBadRequest, nil, "credential is required")
		return
	}
	if err := srv.Session.Login(req.Credential); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to store credential")
		return
	}
	srv.respondSession(w)
}

func (srv *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := srv.Session.Logout(); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to clear credential")
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (srv *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	srv.respondSession(w)
}

func (srv *Server) respondSession(w http.ResponseWriter) {
	sess := srv.Session.Current()
	utils.RespondJSON(w, http.StatusOK, sessionPayload{
		DisplayName:   sess.DisplayName,
		Role:          sess.Role,
		Authenticated: sess.IsAuthenticated,
	})
}

// handleNavigation returns the menu for the current session's role. The menu
// is the only role gate in the shell; the routes themselves stay reachable.
func (srv *Server) handleNavigation(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, navigation.MenuFor(srv.Session.Current().Role))
}

type dashboardPayload struct {
	TotalAssets  int `json:"totalAssets"`
	LowStock     int `json:"lowStock"`
	Defective    int `json:"defective"`
	OpenRequests int `json:"openRequests"`
}

// handleDashboard refreshes the summary views and reports their headline
// counts. Each view fetches independently, so the numbers can disagree for a
// beat after a mutation elsewhere.
func (srv *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := srv.Hardware.Load(ctx); err != nil {
		respondServiceError(w, err, "failed to load inventory summary")
		return
	}
	if err := srv.LowStock.Load(ctx); err != nil {
		respondServiceError(w, err, "failed to load low stock summary")
		return
	}
	if err := srv.Defective.Load(ctx); err != nil {
		respondServiceError(w, err, "failed to load defective summary")
		return
	}
	// counted off a direct read so lingering list filters don't skew it
	var requests []models.HardwareRequest
	if err := srv.API.Read(ctx, "/HardwareRequest", &requests); err != nil {
		respondServiceError(w, err, "failed to load request summary")
		return
	}

	open := 0
	for _, req := range requests {
		if !req.Fulfilled {
			open++
		}
	}

	utils.RespondJSON(w, http.StatusOK, dashboardPayload{
		TotalAssets:  srv.Hardware.TotalCount(),
		LowStock:     srv.LowStock.TotalCount(),
		Defective:    srv.Defective.TotalCount(),
		OpenRequests: open,
	})
}
