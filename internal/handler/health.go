package handler

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/primelaser/backend/internal/model"
)

const serviceVersion = "1.0.0"

type healthDatabase struct {
	Connected bool   `json:"connected"`
	Status    string `json:"status"`
}

type healthEmail struct {
	Enabled bool   `json:"enabled"`
	Status  string `json:"status"`
}

type healthMemory struct {
	HeapUsed  uint64 `json:"heapUsed"`
	HeapTotal uint64 `json:"heapTotal"`
	RSS       uint64 `json:"rss"`
}

type healthResponse struct {
	Status      string         `json:"status"`
	Service     string         `json:"service"`
	Timestamp   time.Time      `json:"timestamp"`
	Uptime      float64        `json:"uptime"`
	Database    healthDatabase `json:"database"`
	Email       healthEmail    `json:"email"`
	Environment string         `json:"environment"`
	Memory      healthMemory   `json:"memory"`
	Version     string         `json:"version"`
}

// Health handles GET /health. It must respond even when the store is down:
// 503 then distinguishes "service up" from "store up" for uptime monitors.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	connected := h.conn.State() == model.StateConnected

	status := "healthy"
	code := http.StatusOK
	if !connected {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	emailStatus := "not_configured"
	if h.emailEnabled {
		emailStatus = "configured"
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:    status,
		Service:   "primelaser-backend",
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.startedAt).Seconds(),
		Database: healthDatabase{
			Connected: connected,
			Status:    h.conn.State().String(),
		},
		Email: healthEmail{
			Enabled: h.emailEnabled,
			Status:  emailStatus,
		},
		Environment: h.env,
		Memory: healthMemory{
			HeapUsed:  mem.HeapAlloc / 1024 / 1024,
			HeapTotal: mem.HeapSys / 1024 / 1024,
			RSS:       mem.Sys / 1024 / 1024,
		},
		Version: serviceVersion,
	})
}
