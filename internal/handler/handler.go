package handler

import (
	"net/http"
	"time"

	"github.com/primelaser/backend/internal/service"
)

// Handler serves the introspection endpoints (health, db-status, root) and
// provides the CORS middleware.
type Handler struct {
	conn         service.ConnectivitySource
	emailEnabled bool
	env          string
	corsOrigin   string
	startedAt    time.Time
}

func New(conn service.ConnectivitySource, emailEnabled bool, env, corsOrigin string) *Handler {
	return &Handler{
		conn:         conn,
		emailEnabled: emailEnabled,
		env:          env,
		corsOrigin:   corsOrigin,
		startedAt:    time.Now(),
	}
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Debug-Token")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
