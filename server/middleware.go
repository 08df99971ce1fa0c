package server

import (
	"net"
	"net/http"
)

// credentialGate is the whole client-side auth story: a non-empty stored
// credential passes, anything else bounces to the login view. Roles are never
// checked here, they only shape the navigation menu.
func (srv *Server) credentialGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !srv.Session.HasCredential() {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// externalOriginGuard sends navigation aimed at a foreign origin back to the
// bundled document. The shell binds loopback only, so any request carrying a
// non-loopback Host header means the window wandered off the app.
func (srv *Server) externalOriginGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host := r.Host
		if h, _, err := net.SplitHostPort(host); err == nil {
			host = h
		}
		switch host {
		case "127.0.0.1", "localhost", "::1":
			next.ServeHTTP(w, r)
		default:
			http.Redirect(w, r, "/", http.StatusFound)
		}
	})
}
