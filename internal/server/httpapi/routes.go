package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

// routes builds the full handler. Middleware wraps the router rather than
// being registered with Use, because mux only runs Use middleware for
// matched routes and CORS, logging and recovery must cover the fallback too.
func (s *HTTPServer) routes() http.Handler {
	r := mux.NewRouter()
	// unclean paths fall through to the asset lookup, which rejects them,
	// instead of being redirected
	r.SkipClean(true)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/save", s.handleSave).Methods(http.MethodPost)
	api.HandleFunc("/load", s.handleLoad).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard", s.handleLeaderboard).Methods(http.MethodGet)
	api.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	fallback := http.HandlerFunc(s.serveStatic)
	r.NotFoundHandler = fallback
	r.MethodNotAllowedHandler = fallback
	api.NotFoundHandler = fallback
	api.MethodNotAllowedHandler = fallback

	var h http.Handler = r
	h = s.recoverer(h)
	h = cors(h)
	h = s.requestLogger(h)
	return h
}
