package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (srv *Server) InjectRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(srv.externalOriginGuard)

	//public routes
	r.Get("/login", srv.handleLoginView)
	r.Post("/login", srv.handleLogin)

	//protected
	r.Group(func(protected chi.Router) {
		protected.Use(srv.credentialGate)

		protected.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/dashboard", http.StatusFound)
		})
		protected.Post("/logout", srv.handleLogout)
		protected.Get("/session", srv.handleSession)
		protected.Get("/navigation", srv.handleNavigation)
		protected.Get("/dashboard", srv.handleDashboard)

		protected.Route("/assets", func(assets chi.Router) {
			assets.Get("/", srv.handleAssetList)
			assets.Post("/", srv.handleAssetCreate)
			assets.Get("/defective", srv.handleDefectiveList)
			assets.Get("/low-stock", srv.handleLowStockList)
			assets.Put("/{id}", srv.handleAssetUpdate)
			assets.Delete("/{id}", srv.handleAssetDelete)
			assets.Post("/{id}/counters", srv.handleAssetCounter)
		})

		protected.Route("/requests", func(requests chi.Router) {
			requests.Get("/", srv.handleRequestList)
			requests.Post("/", srv.handleRequestCreate)
			requests.Put("/{id}", srv.handleRequestUpdate)
			requests.Delete("/{id}", srv.handleRequestDelete)
			requests.Post("/{id}/fulfill", srv.handleRequestFulfill)
		})

		protected.Route("/users", func(users chi.Router) {
			users.Get("/", srv.handleUserList)
			users.Post("/", srv.handleUserRegister)
			users.Put("/{id}", srv.handleUserUpdate)
			users.Delete("/{id}", srv.handleUserDelete)
			users.Post("/{id}/role", srv.handleUserRole)
		})

		protected.Post("/account/reset-password", srv.handleResetPassword)
		protected.Post("/account/change-password", srv.handleChangePassword)

		protected.Get("/anomalies", srv.handleAnomalyList)

		protected.Get("/reports/{view}/{format}", srv.handleReport)
	})

	return r
}
