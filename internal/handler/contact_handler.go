package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/primelaser/backend/internal/model"
	"github.com/primelaser/backend/internal/service"
)

// ContactHandler handles contact form submission and the debug listing.
type ContactHandler struct {
	contactService service.ContactService
	debugToken     string
	production     bool
}

// NewContactHandler creates a ContactHandler. In production the listing
// endpoint requires the debug token; in development it is open.
func NewContactHandler(contactService service.ContactService, debugToken string, production bool) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		debugToken:     debugToken,
		production:     production,
	}
}

// submitRequest is the expected JSON body for POST /contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// submitResponse is the success body for POST /contact.
type submitResponse struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	ContactID string              `json:"contactId"`
	Email     model.NotifyOutcome `json:"email"`
	Database  string              `json:"database"`
	Timestamp time.Time           `json:"timestamp"`
}

// Submit handles POST /contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid JSON body"})
		return
	}

	result, err := h.contactService.Submit(r.Context(), service.SubmitInput{
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		ClientIP:  clientIP(r),
		UserAgent: r.UserAgent(),
	})
	if err != nil {
		h.writeSubmitError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(submitResponse{
		Success:   true,
		Message:   "message received and processed",
		ContactID: result.ContactID,
		Email:     result.Email,
		Database:  "saved",
		Timestamp: time.Now().UTC(),
	})
}

// writeSubmitError translates the intake error taxonomy to HTTP. Validation
// failures are client errors with the offending detail; store failures are
// generic 500s with driver detail only outside production.
func (h *ContactHandler) writeSubmitError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")

	var verr *service.ValidationError
	if errors.As(err, &verr) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validationBody(verr))
		return
	}

	slog.Error("contact submission failed", "error", err)
	body := map[string]any{
		"error":     "failed to process the message",
		"timestamp": time.Now().UTC(),
	}
	if !h.production {
		body["details"] = err.Error()
	}
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(body)
}

func validationBody(verr *service.ValidationError) map[string]any {
	switch verr.Reason {
	case service.ReasonMissingField:
		return map[string]any{
			"error":    "all fields are required",
			"required": []string{"name", "email", "message"},
		}
	case service.ReasonInvalidEmail:
		return map[string]any{
			"error":    "invalid email address",
			"received": verr.Value,
		}
	case service.ReasonFieldTooLong:
		return map[string]any{
			"error":  verr.Field + " exceeds the maximum length",
			"length": verr.Length,
		}
	default:
		return map[string]any{"error": verr.Error()}
	}
}

// listContact is the projected record shape for the debug listing. Request
// metadata (client IP, user agent) stays out of the response.
type listContact struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// listResponse is the JSON response for GET /api/contacts.
type listResponse struct {
	Success  bool          `json:"success"`
	Count    int           `json:"count"`
	Total    int64         `json:"total"`
	Contacts []listContact `json:"contacts"`
}

// List handles GET /api/contacts?limit=n, gated by the debug token in
// production.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.production && r.Header.Get("X-Debug-Token") != h.debugToken {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":   "unauthorized",
			"message": "debug token required",
		})
		return
	}

	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil {
			limit = n
		}
	}

	records, total, err := h.contactService.ListRecent(r.Context(), limit)
	if err != nil {
		slog.Error("contact listing failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "failed to list contacts"})
		return
	}

	// make keeps the JSON an empty array rather than null.
	contacts := make([]listContact, 0, len(records))
	for _, rec := range records {
		contacts = append(contacts, listContact{
			ID:          rec.ID,
			Name:        rec.Name,
			Email:       rec.Email,
			Message:     rec.Message,
			SubmittedAt: rec.SubmittedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(listResponse{
		Success:  true,
		Count:    len(contacts),
		Total:    total,
		Contacts: contacts,
	})
}

// clientIP extracts the originating address, preferring the first
// X-Forwarded-For entry when a proxy is in front.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
