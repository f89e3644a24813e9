package handler

import (
	"encoding/json"
	"net/http"
	"time"
)

// availableEndpoints is echoed by the 404 handler and the root banner.
var availableEndpoints = []string{
	"GET /",
	"GET /health",
	"POST /contact",
	"GET /api/contacts",
	"GET /api/db-status",
}

type dbStatusResponse struct {
	Status string `json:"status"`
	Code   int    `json:"code"`
}

// DBStatus handles GET /api/db-status and reflects the connectivity enum.
func (h *Handler) DBStatus(w http.ResponseWriter, r *http.Request) {
	state := h.conn.State()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dbStatusResponse{
		Status: state.String(),
		Code:   int(state),
	})
}

type rootResponse struct {
	Service     string   `json:"service"`
	Status      string   `json:"status"`
	Environment string   `json:"environment"`
	Uptime      float64  `json:"uptime"`
	Endpoints   []string `json:"endpoints"`
}

// Root handles GET /{$} with a small service banner.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rootResponse{
		Service:     "primelaser-backend",
		Status:      "online",
		Environment: h.env,
		Uptime:      time.Since(h.startedAt).Seconds(),
		Endpoints:   availableEndpoints,
	})
}

type notFoundResponse struct {
	Error     string    `json:"error"`
	Available []string  `json:"available"`
	Timestamp time.Time `json:"timestamp"`
}

// NotFound is the catch-all for unknown paths.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(notFoundResponse{
		Error:     "endpoint not found",
		Available: availableEndpoints,
		Timestamp: time.Now().UTC(),
	})
}
