package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ignite/email-validator/internal/disposable"
	"github.com/ignite/email-validator/internal/storage"
	"github.com/ignite/email-validator/internal/validator"
)

const (
	serviceName    = "email-validator"
	serviceVersion = "1.0.0"

	// Latency placeholder reported in response metadata. Timing is not
	// measured; the field exists so the contract is stable once it is.
	placeholderProcessingMS = 0

	simplifiedNote = "Validation is intentionally simplified: syntax check only, no MX or SMTP verification"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	stores    *storage.Stores
	apiPrefix string
	startTime time.Time
}

// NewHandlers creates a new Handlers instance. The stores handle may hold nil
// clients; no handler depends on them being available.
func NewHandlers(stores *storage.Stores, apiPrefix string) *Handlers {
	return &Handlers{
		stores:    stores,
		apiPrefix: apiPrefix,
		startTime: time.Now(),
	}
}

// responseMeta accompanies every single-validation response.
type responseMeta struct {
	Timestamp        time.Time `json:"timestamp"`
	ProcessingTimeMS int       `json:"processing_time_ms"`
	RequestID        string    `json:"request_id"`
	Note             string    `json:"note"`
}

// validateResponse is the body of a successful POST /validate.
type validateResponse struct {
	validator.Result
	Meta responseMeta `json:"meta"`
}

// HandleValidate validates a single email address.
//
//	POST {prefix}/validate  {"email": "a@b.com"}
func (h *Handlers) HandleValidate(w http.ResponseWriter, r *http.Request) {
	var req validator.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		respondError(w, ValidationError("Email is required"))
		return
	}

	respondJSON(w, http.StatusOK, validateResponse{
		Result: validator.Validate(req.Email),
		Meta: responseMeta{
			Timestamp:        time.Now().UTC(),
			ProcessingTimeMS: placeholderProcessingMS,
			RequestID:        uuid.NewString(),
			Note:             simplifiedNote,
		},
	})
}

// batchRequest decodes "emails" as raw JSON so a present-but-wrong-type value
// is distinguishable from a missing field.
type batchRequest struct {
	Emails json.RawMessage `json:"emails"`
}

// HandleBatch validates a batch of email addresses independently, preserving
// input order. Invalid entries are marked, never rejected; only a missing or
// non-array "emails" field fails the request.
//
//	POST {prefix}/batch  {"emails": ["a@b.com", "bad"]}
func (h *Handlers) HandleBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Emails) == 0 {
		respondError(w, ValidationError("Emails must be an array"))
		return
	}

	// json.Unmarshal accepts "null" for a slice; reject it explicitly so a
	// present-but-null field fails the same way as any other non-array.
	var emails []string
	if err := json.Unmarshal(req.Emails, &emails); err != nil || string(req.Emails) == "null" {
		respondError(w, ValidationError("Emails must be an array"))
		return
	}

	respondJSON(w, http.StatusOK, validator.ValidateBatch(emails))
}

// HandleDisposable is a standalone lookup against the disposable-domain list.
// Deliberately not part of validation (see package disposable).
//
//	GET {prefix}/disposable/{domain}
func (h *Handlers) HandleDisposable(w http.ResponseWriter, r *http.Request) {
	domain := chi.URLParam(r, "domain")

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"domain":     domain,
		"disposable": disposable.IsDisposable(domain),
	})
}

// HandleRoot returns the service descriptor.
//
//	GET /
func (h *Handlers) HandleRoot(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"service": serviceName,
		"version": serviceVersion,
		"status":  "ok",
		"endpoints": map[string]string{
			"health":     "/health",
			"readiness":  "/health/ready",
			"liveness":   "/health/live",
			"validate":   h.apiPrefix + "/validate",
			"batch":      h.apiPrefix + "/batch",
			"disposable": h.apiPrefix + "/disposable/{domain}",
		},
	})
}

// HandleNotFound is the JSON 404 fallback; it echoes the requested path.
func (h *Handlers) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusNotFound, map[string]string{
		"error":   CodeNotFound,
		"message": "Route not found",
		"path":    r.URL.Path,
	})
}

// HandleMethodNotAllowed is the JSON 405 fallback.
func (h *Handlers) HandleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error":   CodeMethodNotAllowed,
		"message": "Method not allowed",
		"path":    r.URL.Path,
	})
}
